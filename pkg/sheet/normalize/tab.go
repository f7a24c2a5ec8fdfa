package normalize

import (
	"fmt"

	apperr "github.com/odfkit/odsgen/pkg/errors"
	"github.com/odfkit/odsgen/pkg/sheet"
)

// Tab converts a raw tab (sequence of rows, or map with a "table" key)
// into a canonical tab. index is the zero-based position among tabs and
// drives the "Tab N" default name. Span directives (the explicit "span"
// key and the spans implied by colspanned/rowspanned cells) are
// collected as requests, not applied; resolving them needs the finished
// grid.
func Tab(raw any, index int) (sheet.Tab, error) {
	tab := sheet.Tab{Name: fmt.Sprintf("%s %d", tabPrefix, index+1)}

	var rows []any
	switch v := raw.(type) {
	case []any:
		rows = v
	case map[string]any:
		inner, ok := v[keyTable]
		if !ok {
			return tab, apperr.New(apperr.ErrCodeMissingField,
				"tab %d has no %q key", index+1, keyTable)
		}
		rows, ok = inner.([]any)
		if !ok {
			return tab, apperr.New(apperr.ErrCodeInvalidDocumentShape,
				"tab %d %q must be a sequence of rows", index+1, keyTable)
		}
		name, err := optionalString(v, keyName, "tab")
		if err != nil {
			return tab, err
		}
		if name != "" {
			tab.Name = name
		}
		if tab.Styles, err = styleNames(v[keyStyle]); err != nil {
			return tab, err
		}
		if tab.ColumnWidths, err = columnWidths(v[keyWidth], rows); err != nil {
			return tab, err
		}
		if tab.Requests, err = spanRequests(v[keySpan]); err != nil {
			return tab, err
		}
	default:
		return tab, apperr.New(apperr.ErrCodeInvalidDocumentShape,
			"tab %d must be a sequence or a map with a %q key, got %T", index+1, keyTable, raw)
	}

	tab.Rows = make([]sheet.Row, 0, len(rows))
	for y, rawRow := range rows {
		row, err := Row(rawRow)
		if err != nil {
			return tab, fmt.Errorf("tab %q, row %d: %w", tab.Name, y+1, err)
		}
		// Cells spanning several columns or rows queue a merge at their
		// own grid position, after any explicit span areas.
		for x := range row.Cells {
			cell := &row.Cells[x]
			if cell.Colspan > 1 || cell.Rowspan > 1 {
				tab.Requests = append(tab.Requests, sheet.SpanRequest{
					Numeric: sheet.Span{
						StartCol: x,
						StartRow: y,
						EndCol:   x + cell.Colspan - 1,
						EndRow:   y + cell.Rowspan - 1,
					},
				})
			}
		}
		tab.Rows = append(tab.Rows, row)
	}
	return tab, nil
}

// columnWidths normalizes the "width" entry: a sequence applies
// positionally, a scalar applies to every column of the tab's widest
// row.
func columnWidths(raw any, rows []any) ([]string, error) {
	if raw == nil {
		return nil, nil
	}
	if list, ok := raw.([]any); ok {
		widths := make([]string, 0, len(list))
		for _, item := range list {
			w, err := widthString(item)
			if err != nil {
				return nil, err
			}
			widths = append(widths, w)
		}
		return widths, nil
	}
	w, err := widthString(raw)
	if err != nil {
		return nil, err
	}
	cols := 0
	for _, rawRow := range rows {
		if n := rowLength(rawRow); n > cols {
			cols = n
		}
	}
	widths := make([]string, cols)
	for i := range widths {
		widths[i] = w
	}
	return widths, nil
}

// rowLength peeks at a raw row's cell count without normalizing it.
func rowLength(raw any) int {
	switch v := raw.(type) {
	case []any:
		return len(v)
	case map[string]any:
		if cells, ok := v[keyRow].([]any); ok {
			return len(cells)
		}
	}
	return 0
}

// spanRequests normalizes the explicit "span" entry: one area or a list
// of areas, each symbolic ("A1:B3") or a numeric quadruple.
func spanRequests(raw any) ([]sheet.SpanRequest, error) {
	if raw == nil {
		return nil, nil
	}
	if areas, ok := raw.([]any); ok && !isQuad(areas) {
		reqs := make([]sheet.SpanRequest, 0, len(areas))
		for _, area := range areas {
			req, err := spanRequest(area)
			if err != nil {
				return nil, err
			}
			reqs = append(reqs, req)
		}
		return reqs, nil
	}
	req, err := spanRequest(raw)
	if err != nil {
		return nil, err
	}
	return []sheet.SpanRequest{req}, nil
}

// isQuad reports whether a sequence looks like a single numeric
// quadruple rather than a list of areas.
func isQuad(list []any) bool {
	if len(list) != 4 {
		return false
	}
	for _, v := range list {
		if _, err := spanCoord(v); err != nil {
			return false
		}
	}
	return true
}

func spanRequest(raw any) (sheet.SpanRequest, error) {
	switch v := raw.(type) {
	case string:
		return sheet.SpanRequest{Symbolic: v}, nil
	case []any:
		if len(v) != 4 {
			return sheet.SpanRequest{}, apperr.New(apperr.ErrCodeInvalidSpan,
				"numeric span area must have 4 coordinates, got %d", len(v))
		}
		coords := make([]int, 4)
		for i, item := range v {
			n, err := spanCoord(item)
			if err != nil {
				return sheet.SpanRequest{}, err
			}
			coords[i] = n
		}
		return sheet.SpanRequest{Numeric: sheet.Span{
			StartCol: coords[0],
			StartRow: coords[1],
			EndCol:   coords[2],
			EndRow:   coords[3],
		}}, nil
	default:
		return sheet.SpanRequest{}, apperr.New(apperr.ErrCodeInvalidSpan,
			"span area must be a range string or 4 coordinates, got %T", raw)
	}
}

func spanCoord(raw any) (int, error) {
	v, err := scalarValue(raw)
	if err != nil {
		return 0, apperr.New(apperr.ErrCodeInvalidSpan, "span coordinate must be an integer, got %T", raw)
	}
	n, ok := v.(int64)
	if !ok {
		return 0, apperr.New(apperr.ErrCodeInvalidSpan, "span coordinate must be an integer, got %v", v)
	}
	return int(n), nil
}
