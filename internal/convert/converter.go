package convert

import (
	"context"
	"fmt"

	"wise-migrator/internal/assets"
	"wise-migrator/internal/legacy"
	"wise-migrator/internal/wise4"
)

// ErrMissingField is returned when a step lacks an expected element or attribute.
var ErrMissingField = legacy.ErrMissingField

const titlePath = "title"

// Converter converts one legacy step.
type Converter interface {
	Convert(ctx context.Context, step *legacy.Node, counter int) (*Output, error)
}

// Output is a converted step.
type Output struct {
	// Node is the manifest entry.
	Node wise4.Node
	// Files are the content files to write into the project folder.
	Files []wise4.File
	// Payload is the value encoded into the step's JSON content file.
	Payload any
}

// Rewriter localizes references in step markup.
type Rewriter interface {
	Rewrite(ctx context.Context, text string) string
}

// Prober measures a remote image.
type Prober interface {
	Probe(ctx context.Context, url string) (assets.Size, error)
}

// stepTitle returns the required step title.
func stepTitle(step *legacy.Node) (string, error) {
	return step.TextAt(titlePath)
}

// jsonOutput builds the output of a step stored in a single JSON file.
func jsonOutput(nodeType, class, ext, title string, counter int, payload any) (*Output, error) {
	name := wise4.StepFileName(counter, ext)

	file, err := wise4.JSONFile(name, payload)
	if err != nil {
		return nil, err
	}

	return &Output{
		Node:    wise4.NewNode(nodeType, name, title, class),
		Files:   []wise4.File{file},
		Payload: payload,
	}, nil
}

// requireText returns the text at path, failing with ErrMissingField when absent.
func requireText(step *legacy.Node, path string) (string, error) {
	text, err := step.TextAt(path)
	if err != nil {
		return "", fmt.Errorf("reading step content: %w", err)
	}

	return text, nil
}
