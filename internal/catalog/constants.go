package catalog

// Schema paths
const (
	CatalogSchemaPath = "configs/schemas/catalog.schema.json"
)

// ConfigVersion is the catalog file format version this loader understands
const ConfigVersion = "1.0"

// Error context messages for wrapped errors during catalog loading
const (
	ErrContextFailedToReadCatalog  = "failed to read catalog file"
	ErrContextFailedToParseCatalog = "failed to parse catalog"
	ErrContextSchemaValidation     = "schema validation failed"
)

// Log messages
const (
	LogMsgCatalogLoaded = "Catalog loaded"
)
