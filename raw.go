package folio

import (
	"fmt"
	"math"
	"reflect"
	"sort"
	"strconv"
	"strings"
)

// RawDocument is the persisted shape of a notebook as encode writes it.
// Decode does not read into these types: it walks an untyped tree so that
// one badly typed cell cannot fail the whole document.
type RawDocument struct {
	Cells []RawCell `json:"cells" yaml:"cells" msgpack:"cells" bson:"cells"`
}

// RawCell is one persisted cell.
type RawCell struct {
	CellType string      `json:"cell_type" yaml:"cell_type" msgpack:"cell_type" bson:"cell_type"`
	Language string      `json:"language" yaml:"language" msgpack:"language" bson:"language"`
	Source   []string    `json:"source" yaml:"source" msgpack:"source" bson:"source"`
	Editable *bool       `json:"editable,omitempty" yaml:"editable,omitempty" msgpack:"editable,omitempty" bson:"editable,omitempty"`
	Outputs  []RawOutput `json:"outputs,omitempty" yaml:"outputs,omitempty" msgpack:"outputs,omitempty" bson:"outputs,omitempty"`
}

// RawOutput is one persisted execution result.
//
// Data is loosely typed: a mapping from MIME type to an arbitrary value. It
// stays untyped here so every wire format can decode it, and is classified
// into MimeValue arms afterwards.
type RawOutput struct {
	Data any `json:"data" yaml:"data" msgpack:"data" bson:"data"`
}

// MimeValue is a classified output payload entry.
// The arms are TextLines and Opaque.
type MimeValue interface {
	isMimeValue()
}

// TextLines is a text/plain payload given as an array, one line per element.
type TextLines []string

// Opaque is any payload the codec does not understand. It contributes no
// output items.
type Opaque struct {
	Value any
}

func (TextLines) isMimeValue() {}
func (Opaque) isMimeValue()    {}

// MimeEntry pairs a MIME type with its classified value.
type MimeEntry struct {
	MIME  string
	Value MimeValue
}

// ClassifyMime classifies one data entry. Only an array under text/plain is
// TextLines; every other key or shape is Opaque. Array elements that are not
// strings are rendered the way a JavaScript host would coerce them: null as
// "null", nested arrays comma-joined, objects as "[object Object]".
func ClassifyMime(mime string, value any) MimeValue {
	if mime != MIMETextPlain {
		return Opaque{Value: value}
	}
	elems, ok := sequence(value)
	if !ok {
		return Opaque{Value: value}
	}
	lines := make(TextLines, len(elems))
	for i, elem := range elems {
		lines[i] = jsString(elem)
	}
	return lines
}

// Entries returns the classified entries of the output's data, sorted by
// MIME type. ok is false when data is absent or not a mapping; such outputs
// are dropped on decode.
func (o RawOutput) Entries() (entries []MimeEntry, ok bool) {
	data, ok := mapping(o.Data)
	if !ok {
		return nil, false
	}

	entries = make([]MimeEntry, 0, len(data))
	for mime, value := range data {
		entries = append(entries, MimeEntry{
			MIME:  mime,
			Value: ClassifyMime(mime, value),
		})
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].MIME < entries[j].MIME
	})
	return entries, true
}

// mapping views an untyped decoded value as a string-keyed map. Each wire
// library produces its own map type (map[string]any, bson.M, map[any]any),
// so keys are matched exactly after conversion to strings.
func mapping(v any) (map[string]any, bool) {
	if m, ok := v.(map[string]any); ok {
		return m, m != nil
	}
	rv := reflect.ValueOf(v)
	if !rv.IsValid() || rv.Kind() != reflect.Map || rv.IsNil() {
		return nil, false
	}
	m := make(map[string]any, rv.Len())
	iter := rv.MapRange()
	for iter.Next() {
		m[fmt.Sprint(iter.Key().Interface())] = iter.Value().Interface()
	}
	return m, true
}

// sequence views an untyped decoded value as an array. Byte strings from the
// binary formats are not arrays.
func sequence(v any) ([]any, bool) {
	if s, ok := v.([]any); ok {
		return s, true
	}
	rv := reflect.ValueOf(v)
	if !rv.IsValid() || (rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array) {
		return nil, false
	}
	if rv.Type().Elem().Kind() == reflect.Uint8 {
		return nil, false
	}
	out := make([]any, rv.Len())
	for i := range out {
		out[i] = rv.Index(i).Interface()
	}
	return out, true
}

// jsString converts a decoded value to text with JavaScript String()
// semantics, which is how notebook hosts render loose output values.
func jsString(v any) string {
	switch t := v.(type) {
	case nil:
		return "null"
	case string:
		return t
	case bool:
		return strconv.FormatBool(t)
	case float64:
		return jsNumber(t)
	case float32:
		return jsNumber(float64(t))
	}

	if elems, ok := sequence(v); ok {
		return jsJoin(elems, ",")
	}
	if _, ok := mapping(v); ok {
		return "[object Object]"
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(rv.Int(), 10)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return strconv.FormatUint(rv.Uint(), 10)
	case reflect.String:
		return rv.String()
	default:
		return fmt.Sprint(v)
	}
}

// jsJoin joins elements like Array.prototype.join: null elements become
// empty strings.
func jsJoin(elems []any, sep string) string {
	parts := make([]string, len(elems))
	for i, elem := range elems {
		if elem != nil {
			parts[i] = jsString(elem)
		}
	}
	return strings.Join(parts, sep)
}

// jsNumber formats a float the way JavaScript prints numbers.
func jsNumber(f float64) string {
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	case f == 0:
		return "0"
	}
	if abs := math.Abs(f); abs >= 1e-6 && abs < 1e21 {
		return strconv.FormatFloat(f, 'f', -1, 64)
	}
	s := strconv.FormatFloat(f, 'g', -1, 64)
	s = strings.Replace(s, "e+0", "e+", 1)
	return strings.Replace(s, "e-0", "e-", 1)
}
