package config

import (
	"os"
	"strconv"
	"strings"
	"text/template"

	"gopkg.in/yaml.v2"
)

// FromFile read and parse config from given path and apply environment on it
func FromFile(filePath string, cfg interface{}) error {
	envMap := make(map[string]string)
	for _, envStr := range os.Environ() {
		pair := strings.SplitN(envStr, "=", 2)
		envMap[pair[0]] = pair[1]
	}

	t, err := template.ParseFiles(filePath)
	if err != nil {
		return err
	}
	strWriter := &strings.Builder{}
	err = t.Execute(strWriter, envMap)
	if err != nil {
		return err
	}

	content := os.ExpandEnv(strWriter.String())
	err = yaml.Unmarshal([]byte(content), cfg)
	return err
}

// EnvOr returns the value of the environment variable key, or fallback when
// the variable is unset or empty.
func EnvOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// EnvBool returns the boolean value of the environment variable key, or
// fallback when the variable is unset or not a valid boolean.
func EnvBool(key string, fallback bool) bool {
	v, err := strconv.ParseBool(strings.ToLower(os.Getenv(key)))
	if err != nil {
		return fallback
	}
	return v
}

// EnvInt returns the integer value of the environment variable key, or
// fallback when the variable is unset or not a valid integer.
func EnvInt(key string, fallback int) int {
	v, err := strconv.Atoi(os.Getenv(key))
	if err != nil {
		return fallback
	}
	return v
}
