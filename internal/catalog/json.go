package catalog

import (
	"encoding/json"
	"fmt"
	"os"

	"Investle/internal/model"
)

// JSONSource loads the catalog from a stocks.json array, the format the
// original deployment ships to clients.
type JSONSource struct {
	Path string
}

// NewJSONSource creates a JSONSource for the given file path.
func NewJSONSource(path string) *JSONSource {
	return &JSONSource{Path: path}
}

func (s *JSONSource) Name() string { return "json" }

// Load reads and decodes the JSON catalog file.
func (s *JSONSource) Load() ([]model.Entity, error) {
	data, err := os.ReadFile(s.Path)
	if err != nil {
		return nil, fmt.Errorf("read catalog json: %w", err)
	}

	var entities []model.Entity
	if err := json.Unmarshal(data, &entities); err != nil {
		return nil, fmt.Errorf("parse catalog json: %w", err)
	}
	return entities, nil
}
