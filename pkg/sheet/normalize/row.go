package normalize

import (
	"fmt"

	apperr "github.com/odfkit/odsgen/pkg/errors"
	"github.com/odfkit/odsgen/pkg/sheet"
)

// Row converts a raw row (sequence of cells, or map with a "row" key)
// into a canonical row. Row-level style names are recorded, never copied
// into the cells; inheritance is resolved later against the full
// document.
func Row(raw any) (sheet.Row, error) {
	var (
		row   sheet.Row
		cells []any
	)
	switch v := raw.(type) {
	case []any:
		cells = v
	case map[string]any:
		inner, ok := v[keyRow]
		if !ok {
			return row, apperr.New(apperr.ErrCodeMissingField, "row map has no %q key", keyRow)
		}
		cells, ok = inner.([]any)
		if !ok {
			return row, apperr.New(apperr.ErrCodeInvalidDocumentShape,
				"row %q must be a sequence of cells", keyRow)
		}
		var err error
		if row.Styles, err = styleNames(v[keyStyle]); err != nil {
			return row, err
		}
	default:
		return row, apperr.New(apperr.ErrCodeInvalidDocumentShape,
			"row must be a sequence or a map with a %q key, got %T", keyRow, raw)
	}

	row.Cells = make([]sheet.Cell, 0, len(cells))
	for i, rawCell := range cells {
		cell, err := Cell(rawCell)
		if err != nil {
			return row, fmt.Errorf("cell %d: %w", i+1, err)
		}
		row.Cells = append(row.Cells, cell)
	}
	return row, nil
}
