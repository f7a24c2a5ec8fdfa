package pipeline

import (
	"bytes"
	"encoding/json"
	"io"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	apperr "github.com/odfkit/odsgen/pkg/errors"
)

// Format identifies the input encoding of a document description.
type Format string

// Supported input formats.
const (
	FormatAuto Format = "auto"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

// ValidFormats is the set of accepted format names.
var ValidFormats = map[Format]bool{
	FormatAuto: true,
	FormatJSON: true,
	FormatYAML: true,
	FormatTOML: true,
}

// ValidateFormat checks that a format name is one we can decode.
func ValidateFormat(f Format) error {
	if !ValidFormats[f] {
		return apperr.New(apperr.ErrCodeInvalidFormat,
			"invalid format: %q (must be one of: auto, json, yaml, toml)", f)
	}
	return nil
}

// DetectFormat picks a format from a file extension. YAML is the
// fallback because it is a superset of JSON, so any extension we do not
// recognize still decodes JSON input correctly.
func DetectFormat(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON
	case ".toml":
		return FormatTOML
	default:
		return FormatYAML
	}
}

// Decode parses raw input into the loosely-typed value the normalizer
// consumes. JSON numbers arrive as json.Number so integer values are
// not silently degraded to float64; FormatAuto decodes as YAML.
func Decode(input []byte, format Format) (any, error) {
	switch format {
	case FormatJSON:
		dec := json.NewDecoder(bytes.NewReader(input))
		dec.UseNumber()
		var v any
		if err := dec.Decode(&v); err != nil {
			return nil, apperr.Wrap(apperr.ErrCodeInvalidFormat, err, "decoding JSON input")
		}
		// Trailing garbage after the document is an error, not ignored.
		if err := dec.Decode(new(any)); err != io.EOF {
			return nil, apperr.New(apperr.ErrCodeInvalidFormat, "unexpected data after JSON document")
		}
		return v, nil
	case FormatYAML, FormatAuto, "":
		var v any
		if err := yaml.Unmarshal(input, &v); err != nil {
			return nil, apperr.Wrap(apperr.ErrCodeInvalidFormat, err, "decoding YAML input")
		}
		return v, nil
	case FormatTOML:
		// TOML has no top-level sequence, so only the annotated map
		// shape is expressible in it.
		var v map[string]any
		if err := toml.Unmarshal(input, &v); err != nil {
			return nil, apperr.Wrap(apperr.ErrCodeInvalidFormat, err, "decoding TOML input")
		}
		return tomlValue(v), nil
	default:
		return nil, ValidateFormat(format)
	}
}

// tomlValue flattens the decoder's typed array-of-tables slices into
// plain []any so the normalizer sees a single sequence type.
func tomlValue(v any) any {
	switch t := v.(type) {
	case map[string]any:
		for k, e := range t {
			t[k] = tomlValue(e)
		}
		return t
	case []map[string]any:
		out := make([]any, len(t))
		for i, e := range t {
			out[i] = tomlValue(e)
		}
		return out
	case []any:
		for i, e := range t {
			t[i] = tomlValue(e)
		}
		return t
	default:
		return v
	}
}
