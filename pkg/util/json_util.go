package util

import (
	"bytes"
	"io"

	"github.com/goccy/go-json"
)

func StructToJSONReader(data interface{}) io.Reader {
	jsonBytes, err := json.Marshal(data)
	if err != nil {
		return nil
	}
	return bytes.NewReader(jsonBytes)
}

func StructToJSON(data interface{}) string {
	jsonBytes, err := json.Marshal(data)
	if err != nil {
		return ""
	}
	return string(jsonBytes)
}

// StructToJSONIndent renders data as two-space indented JSON for
// human-readable tool output.
func StructToJSONIndent(data interface{}) string {
	jsonBytes, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return ""
	}
	return string(jsonBytes)
}
