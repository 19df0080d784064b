package ruleset

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-json"
	"gopkg.in/yaml.v3"
)

// ErrUnsupportedFormat indicates a rules file extension the loader does not
// understand.
var ErrUnsupportedFormat = errors.New("unsupported rules format")

func jsonUnmarshal(data []byte, v any) error {
	return json.Unmarshal(data, v)
}

// Load reads and parses a rules document, selecting the codec from the file
// extension.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read rules: %w", err)
	}
	return Parse(data, filepath.Ext(path))
}

// Parse decodes a rules document from raw bytes. The ext argument selects
// the codec: ".yaml"/".yml" or ".json" (case-insensitive).
func Parse(data []byte, ext string) (*Document, error) {
	var doc Document

	switch strings.ToLower(ext) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("parse rules: %w", err)
		}
	case ".json":
		if err := json.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("parse rules: %w", err)
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}

	return &doc, nil
}

// Save writes a rules document to path, selecting the codec from the file
// extension.
func Save(path string, doc *Document) error {
	var (
		data []byte
		err  error
	)

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		data, err = yaml.Marshal(doc)
	case ".json":
		data, err = json.MarshalIndent(doc, "", "  ")
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(path))
	}
	if err != nil {
		return fmt.Errorf("encode rules: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write rules: %w", err)
	}

	return nil
}
