package catalog

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/osse101/BabyBank_Go/internal/domain"
	"github.com/osse101/BabyBank_Go/internal/validation"
)

//go:embed catalog.schema.json
var schemaJSON []byte

// File is the JSON layout of a catalog override file
type File struct {
	Version       string             `json:"version"`
	Description   string             `json:"description,omitempty"`
	Categories    []domain.Category  `json:"categories"`
	Conditions    []domain.Condition `json:"conditions"`
	AgeGroups     []string           `json:"age_groups"`
	ClothingSizes []string           `json:"clothing_sizes,omitempty"`
}

// Loader reads catalog files
type Loader interface {
	Load(path string) (*Catalog, error)
	Parse(data []byte) (*Catalog, error)
}

type loader struct {
	schemaValidator validation.SchemaValidator
}

// NewLoader creates a Loader that checks files against the catalog schema
func NewLoader(v validation.SchemaValidator) (Loader, error) {
	if err := v.Register(SchemaName, schemaJSON); err != nil {
		return nil, err
	}
	return &loader{schemaValidator: v}, nil
}

// Load reads path, or returns the built-in catalog when path is empty
func (l *loader) Load(path string) (*Catalog, error) {
	if path == "" {
		slog.Default().Info(LogMsgCatalogDefaults)
		return Default(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgReadConfigFileFailed, err)
	}

	c, err := l.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	slog.Default().Info(LogMsgCatalogLoaded,
		"path", path,
		"categories", len(c.categories),
		"conditions", len(c.conditions),
		"age_groups", len(c.ageGroups))
	return c, nil
}

// Parse validates data against the schema and builds a catalog from it
func (l *loader) Parse(data []byte) (*Catalog, error) {
	if err := l.schemaValidator.ValidateBytes(data, SchemaName); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidCatalog, err)
	}

	var f File
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf(ErrMsgParseConfigFailed, err)
	}

	return New(f.Categories, f.Conditions, f.AgeGroups, f.ClothingSizes)
}
