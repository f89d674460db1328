package importer

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// CatalogSchema is the top-level structure of a catalog seed file.
type CatalogSchema struct {
	Exercises []ExerciseImport `json:"exercises" yaml:"exercises"`
}

// ExerciseImport defines one catalog entry in the seed file.
type ExerciseImport struct {
	Name             string         `json:"name" yaml:"name"`
	Category         string         `json:"category,omitempty" yaml:"category,omitempty"`
	PrimaryMuscle    string         `json:"primary_muscle" yaml:"primary_muscle"`
	SecondaryMuscles []string       `json:"secondary_muscles,omitempty" yaml:"secondary_muscles,omitempty"`
	Equipment        string         `json:"equipment,omitempty" yaml:"equipment,omitempty"`
	StretchBonus     bool           `json:"stretch_bonus,omitempty" yaml:"stretch_bonus,omitempty"`
	Tags             []string       `json:"tags,omitempty" yaml:"tags,omitempty"`
	Machine          *MachineImport `json:"machine,omitempty" yaml:"machine,omitempty"`
}

// MachineImport defines the machine an entry is performed on.
type MachineImport struct {
	Brand             string `json:"brand" yaml:"brand"`
	ResistanceProfile string `json:"resistance_profile,omitempty" yaml:"resistance_profile,omitempty"`
}

// Format is the encoding of a seed file.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// FormatForPath picks the format from the file extension. Anything that is
// not .yaml or .yml is read as JSON.
func FormatForPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatJSON
	}
}

// LoadCatalogSchema reads and parses a catalog seed file.
func LoadCatalogSchema(path string) (*CatalogSchema, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseCatalogSchema(data, FormatForPath(path))
}

// ParseCatalogSchema decodes a seed document. Unknown fields are rejected in
// both formats so a typo never silently drops data.
func ParseCatalogSchema(data []byte, format Format) (*CatalogSchema, error) {
	var schema CatalogSchema
	switch format {
	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&schema); err != nil {
			return nil, fmt.Errorf("parsing catalog file: %w", err)
		}
	default:
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&schema); err != nil {
			return nil, fmt.Errorf("parsing catalog file: %w", err)
		}
	}
	return &schema, nil
}
