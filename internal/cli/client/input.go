// Package client implements the clauselens end-user commands. They run the
// analysis pipeline locally on documents read from files or stdin.
package client

import (
	"fmt"
	"io"
	"os"

	"github.com/clauselens/clauselens/internal/domain"
)

// readDocument loads document text from a file path, or from stdin when the
// path is empty or "-".
func readDocument(path string) (*domain.ExtractedText, error) {
	var data []byte
	var err error

	if path == "" || path == "-" {
		data, err = io.ReadAll(os.Stdin)
		if err != nil {
			return nil, fmt.Errorf("failed to read stdin: %w", err)
		}
	} else {
		data, err = os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", path, err)
		}
	}

	content := string(data)
	return &domain.ExtractedText{
		Content: content,
		Metadata: domain.DocumentMetadata{
			CharacterCount: len(content),
		},
	}, nil
}
