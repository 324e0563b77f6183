package catalog

import "errors"

// ErrInvalidCatalog is returned when catalog data fails structural checks
var ErrInvalidCatalog = errors.New("invalid catalog")

// SchemaName is the name the catalog schema is registered under
const SchemaName = "catalog.schema.json"

// Error message formats
const (
	ErrMsgEmptyList            = "categories, conditions and age groups must not be empty"
	ErrMsgReadConfigFileFailed = "failed to read catalog file: %w"
	ErrMsgParseConfigFailed    = "failed to parse catalog file: %w"
)

// Log messages
const (
	LogMsgCatalogLoaded   = "Catalog loaded"
	LogMsgCatalogDefaults = "Using built-in catalog"
)
