package catalog

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"

	"github.com/21in7/tos-fronet-sub000/internal/utils"
	"github.com/21in7/tos-fronet-sub000/internal/validation"
)

// Loader reads catalog files from disk
type Loader interface {
	Load(path string) (*Catalog, error)
}

type fileLoader struct {
	schemaValidator validation.SchemaValidator
	schemaPath      string
}

// NewLoader creates a Loader validating against the bundled catalog schema
func NewLoader() Loader {
	return &fileLoader{
		schemaValidator: validation.NewSchemaValidator(),
		schemaPath:      CatalogSchemaPath,
	}
}

// Load reads, schema-checks, decodes and validates a JSON or YAML catalog file
func (l *fileLoader) Load(path string) (*Catalog, error) {
	format, err := utils.DetectFormat(path)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", ErrContextFailedToReadCatalog, path, err)
	}

	if err := l.validateSchema(data, format); err != nil {
		return nil, fmt.Errorf("%s for %s: %w", ErrContextSchemaValidation, path, err)
	}

	var file File
	if err := utils.Decode(data, format, &file); err != nil {
		return nil, fmt.Errorf("%s %s: %w", ErrContextFailedToParseCatalog, path, err)
	}

	if err := Validate(&file); err != nil {
		return nil, err
	}

	sum := sha256.Sum256(data)
	return newCatalog(&file, path, hex.EncodeToString(sum[:])), nil
}

func (l *fileLoader) validateSchema(data []byte, format utils.DataFormat) error {
	if format == utils.FormatJSON {
		return l.schemaValidator.ValidateBytes(data, l.schemaPath)
	}

	var doc interface{}
	if err := utils.Decode(data, format, &doc); err != nil {
		return err
	}
	return l.schemaValidator.ValidateValue(doc, l.schemaPath)
}
