// Package normalize converts loosely-typed nested descriptions into the
// canonical sheet model.
//
// Every grammar level (document, tab, row, cell) accepts two equivalent
// shapes: a bare sequence, or an annotated map whose payload sits under a
// well-known key ("body", "table", "row", "value"). Shape detection is
// explicit: unrecognized shapes produce a coded error instead of a silent
// misread. Style names are recorded but not resolved here; resolution is
// a later pass (sheet.ResolveStyles).
package normalize

import (
	"encoding/json"
	"fmt"

	apperr "github.com/odfkit/odsgen/pkg/errors"
	"github.com/odfkit/odsgen/pkg/sheet"
	"github.com/odfkit/odsgen/pkg/style"
)

// Description keys of the raw grammar.
const (
	keyBody     = "body"
	keyTable    = "table"
	keyRow      = "row"
	keyValue    = "value"
	keyStyle    = "style"
	keyStyles   = "styles"
	keyDefaults = "defaults"
	keyName     = "name"
	keyWidth    = "width"
	keySpan     = "span"
	keyText     = "text"
	keyFormula  = "formula"
	keyColspan  = "colspanned"
	keyRowspan  = "rowspanned"
	keyAttr     = "attr"
	keyDef      = "definition"
)

const tabPrefix = "Tab"

// Document assembles a raw top-level value into a canonical document.
// The value is either a sequence of raw tabs or a map with a "body" key
// plus optional "styles" and "defaults"; anything else fails with
// INVALID_DOCUMENT_SHAPE. User styles register into a document-scoped
// clone of the builtin catalog before any tab is read, so tabs may
// reference them.
func Document(raw any) (*sheet.Document, error) {
	doc := &sheet.Document{
		Styles:   style.Builtin(),
		Defaults: sheet.DefaultBindings(),
	}

	var tabs []any
	switch v := raw.(type) {
	case []any:
		tabs = v
	case map[string]any:
		body, ok := v[keyBody]
		if !ok {
			return nil, apperr.New(apperr.ErrCodeInvalidDocumentShape,
				"document map has no %q key", keyBody)
		}
		tabs, ok = body.([]any)
		if !ok {
			return nil, apperr.New(apperr.ErrCodeInvalidDocumentShape,
				"document %q must be a sequence of tabs", keyBody)
		}
		if err := registerStyles(doc.Styles, v[keyStyles]); err != nil {
			return nil, err
		}
		if err := applyDefaults(&doc.Defaults, v[keyDefaults]); err != nil {
			return nil, err
		}
	default:
		return nil, apperr.New(apperr.ErrCodeInvalidDocumentShape,
			"document must be a sequence or a map with a %q key, got %T", keyBody, raw)
	}

	doc.Tabs = make([]sheet.Tab, 0, len(tabs))
	for i, rawTab := range tabs {
		tab, err := Tab(rawTab, i)
		if err != nil {
			return nil, err
		}
		doc.Tabs = append(doc.Tabs, tab)
	}
	return doc, nil
}

// registerStyles parses "styles" entries ({name?, definition}) into the
// document registry. A missing name falls back to the fragment's own
// style:name attribute.
func registerStyles(reg *style.Registry, raw any) error {
	if raw == nil {
		return nil
	}
	entries, ok := raw.([]any)
	if !ok {
		return apperr.New(apperr.ErrCodeInvalidDocumentShape,
			"document %q must be a sequence of style definitions", keyStyles)
	}
	for i, entry := range entries {
		m, ok := entry.(map[string]any)
		if !ok {
			return apperr.New(apperr.ErrCodeInvalidDocumentShape,
				"style definition %d must be a map", i)
		}
		name, err := optionalString(m, keyName, "style definition")
		if err != nil {
			return err
		}
		fragment, ok := m[keyDef].(string)
		if !ok {
			return apperr.New(apperr.ErrCodeMissingField,
				"style definition %d has no %q string", i, keyDef)
		}
		def, err := style.ParseDefinition(name, fragment)
		if err != nil {
			return err
		}
		reg.Register(def)
	}
	return nil
}

// applyDefaults merges the "defaults" map over the seed bindings. Both
// the short kind names and the original generator's key spellings are
// accepted.
func applyDefaults(d *sheet.Defaults, raw any) error {
	if raw == nil {
		return nil
	}
	m, ok := raw.(map[string]any)
	if !ok {
		return apperr.New(apperr.ErrCodeInvalidDocumentShape,
			"document %q must be a map of element kinds to style names", keyDefaults)
	}
	for kind, v := range m {
		name, ok := v.(string)
		if !ok {
			return apperr.New(apperr.ErrCodeInvalidDocumentShape,
				"default binding %q must be a style name string", kind)
		}
		switch kind {
		case "row", "style_table_row":
			d.Row = name
		case "cell", "style_table_cell":
			d.Cell = name
		case "str", "style_str":
			d.String = name
		case "int", "style_int":
			d.Int = name
		case "float", "style_float":
			d.Float = name
		case "other", "style_other":
			d.Other = name
		default:
			return apperr.New(apperr.ErrCodeInvalidDocumentShape,
				"unknown default binding kind: %q", kind)
		}
	}
	return nil
}

// optionalString reads a string-valued key that may be absent.
func optionalString(m map[string]any, key, context string) (string, error) {
	v, ok := m[key]
	if !ok || v == nil {
		return "", nil
	}
	s, ok := v.(string)
	if !ok {
		return "", apperr.New(apperr.ErrCodeInvalidDocumentShape,
			"%s %q must be a string, got %T", context, key, v)
	}
	return s, nil
}

// styleNames normalizes a "style" entry (single name or sequence of
// names) to an ordered list. Empty entries are dropped.
func styleNames(raw any) ([]string, error) {
	switch v := raw.(type) {
	case nil:
		return nil, nil
	case string:
		if v == "" {
			return nil, nil
		}
		return []string{v}, nil
	case []any:
		names := make([]string, 0, len(v))
		for _, item := range v {
			s, ok := item.(string)
			if !ok {
				return nil, apperr.New(apperr.ErrCodeInvalidDocumentShape,
					"style list entries must be strings, got %T", item)
			}
			if s != "" {
				names = append(names, s)
			}
		}
		return names, nil
	default:
		return nil, apperr.New(apperr.ErrCodeInvalidDocumentShape,
			"style must be a name or list of names, got %T", raw)
	}
}

// scalarValue coerces a raw scalar into the model's value types: nil,
// string, bool, int64, or float64. JSON numbers arrive as json.Number
// and are narrowed to int64 when integral.
func scalarValue(raw any) (any, error) {
	switch v := raw.(type) {
	case nil, string, bool, int64, float64:
		return v, nil
	case int:
		return int64(v), nil
	case uint64:
		return int64(v), nil
	case float32:
		return float64(v), nil
	case json.Number:
		if n, err := v.Int64(); err == nil {
			return n, nil
		}
		f, err := v.Float64()
		if err != nil {
			return nil, apperr.New(apperr.ErrCodeInvalidDocumentShape, "unreadable number: %q", string(v))
		}
		return f, nil
	default:
		return nil, apperr.New(apperr.ErrCodeInvalidDocumentShape,
			"cell value must be a scalar, got %T", raw)
	}
}

// positiveInt reads an optional positive integer key (colspanned /
// rowspanned). Absent keys return 1.
func positiveInt(m map[string]any, key string) (int, error) {
	raw, ok := m[key]
	if !ok || raw == nil {
		return 1, nil
	}
	var n int64
	switch v := raw.(type) {
	case int:
		n = int64(v)
	case int64:
		n = v
	case uint64:
		n = int64(v)
	case json.Number:
		i, err := v.Int64()
		if err != nil {
			return 0, apperr.New(apperr.ErrCodeInvalidSpan, "%s must be an integer, got %q", key, string(v))
		}
		n = i
	case float64:
		if v != float64(int64(v)) {
			return 0, apperr.New(apperr.ErrCodeInvalidSpan, "%s must be an integer, got %v", key, v)
		}
		n = int64(v)
	default:
		return 0, apperr.New(apperr.ErrCodeInvalidSpan, "%s must be an integer, got %T", key, raw)
	}
	if n < 1 {
		return 0, apperr.New(apperr.ErrCodeInvalidSpan, "%s must be positive, got %d", key, n)
	}
	return int(n), nil
}

// widthString renders a column width entry. Widths are ODF lengths
// ("10.5mm"); bare numbers are passed through as written.
func widthString(raw any) (string, error) {
	switch v := raw.(type) {
	case nil:
		return "", nil
	case string:
		return v, nil
	case int:
		return fmt.Sprintf("%d", v), nil
	case int64:
		return fmt.Sprintf("%d", v), nil
	case float64:
		return fmt.Sprintf("%g", v), nil
	case json.Number:
		return string(v), nil
	default:
		return "", apperr.New(apperr.ErrCodeInvalidDocumentShape,
			"column width must be a string or number, got %T", raw)
	}
}
