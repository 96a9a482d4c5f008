package wise4

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Indent is the indentation used for every JSON file.
const Indent = "   "

// File is one file of the converted project, relative to the project folder.
type File struct {
	Name    string
	Content []byte
}

// Marshal encodes v as indented JSON without HTML escaping.
func Marshal(v any) ([]byte, error) {
	var buf bytes.Buffer

	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", Indent)

	if err := enc.Encode(v); err != nil {
		return nil, err
	}

	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

// JSONFile encodes v into a File named name.
func JSONFile(name string, v any) (File, error) {
	data, err := Marshal(v)
	if err != nil {
		return File{}, fmt.Errorf("encoding %s: %w", name, err)
	}

	return File{Name: name, Content: data}, nil
}

// RawFile wraps already rendered content, such as HTML markup.
func RawFile(name, content string) File {
	return File{Name: name, Content: []byte(content)}
}

// Object is a free-form JSON object.
type Object = map[string]any

// EmptyObject returns a JSON object with no members.
func EmptyObject() Object {
	return Object{}
}
