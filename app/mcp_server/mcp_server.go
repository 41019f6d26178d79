package main

import (
	formatter "github.com/bluexlab/logrus-formatter"
)

func main() {
	formatter.InitLogger()
	app := App{}
	app.Run()
}
