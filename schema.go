package folio

import (
	"strings"
	"sync"

	"github.com/zoobzio/sentinel"
)

// schemaFormats are the struct tags every raw field must carry.
// CBOR reads the json tag, so it needs no tag of its own.
var schemaFormats = []string{"json", "yaml", "msgpack", "bson"}

func init() {
	for _, format := range schemaFormats {
		sentinel.Tag(format)
	}
}

// SchemaField describes one field of the persisted format.
type SchemaField struct {
	Type      string // Raw type name (RawDocument, RawCell, RawOutput)
	Field     string // Go field name
	Name      string // Wire name shared by every format
	OmitEmpty bool   // Field is omitted when empty
}

var (
	schemaOnce   sync.Once
	schemaFields []SchemaField
	schemaErr    error
)

// Schema returns the persisted field table, scanned once from the raw types.
// It fails with a SchemaError if any format names a field differently.
func Schema() ([]SchemaField, error) {
	schemaOnce.Do(func() {
		schemaFields, schemaErr = scanSchema()
	})
	if schemaErr != nil {
		return nil, schemaErr
	}
	out := make([]SchemaField, len(schemaFields))
	copy(out, schemaFields)
	return out, nil
}

func scanSchema() ([]SchemaField, error) {
	types := []sentinel.Metadata{
		sentinel.Scan[RawDocument](),
		sentinel.Scan[RawCell](),
		sentinel.Scan[RawOutput](),
	}

	var fields []SchemaField
	for _, meta := range types {
		for _, field := range meta.Fields {
			sf, err := schemaField(meta.TypeName, field)
			if err != nil {
				return nil, err
			}
			fields = append(fields, sf)
		}
	}
	return fields, nil
}

// schemaField resolves a field's wire name and checks that every format
// agrees on it, including the omitempty option.
func schemaField(typeName string, field sentinel.FieldMetadata) (SchemaField, error) {
	sf := SchemaField{Type: typeName, Field: field.Name}
	for i, format := range schemaFormats {
		tag, ok := field.Tags[format]
		if !ok {
			return SchemaField{}, &SchemaError{Err: ErrSchema, Type: typeName, Field: field.Name, Format: format}
		}
		name, opts, _ := strings.Cut(tag, ",")
		omit := strings.Contains(opts, "omitempty")
		if i == 0 {
			sf.Name, sf.OmitEmpty = name, omit
			continue
		}
		if name != sf.Name || omit != sf.OmitEmpty {
			return SchemaField{}, &SchemaError{Err: ErrSchema, Type: typeName, Field: field.Name, Format: format}
		}
	}
	return sf, nil
}
