// Package span resolves merge directives against a normalized tab.
//
// Directives arrive as symbolic spreadsheet ranges ("A1:B3") or numeric
// quadruples. Resolution happens only after all rows of a tab exist,
// because bounds checking needs the full grid extent.
package span

import (
	"strconv"
	"strings"

	apperr "github.com/odfkit/odsgen/pkg/errors"
	"github.com/odfkit/odsgen/pkg/sheet"
)

// ParseArea converts a symbolic range into zero-based grid coordinates.
// Column letters use the standard spreadsheet encoding (A=0, Z=25,
// AA=26, ...), row numbers are 1-based in the input. A reference without
// a colon ("B2") denotes a 1x1 area.
func ParseArea(area string) (sheet.Span, error) {
	start, end := area, area
	if i := strings.IndexByte(area, ':'); i >= 0 {
		start, end = area[:i], area[i+1:]
	}
	sc, sr, err := parseRef(start, area)
	if err != nil {
		return sheet.Span{}, err
	}
	ec, er, err := parseRef(end, area)
	if err != nil {
		return sheet.Span{}, err
	}
	if ec < sc || er < sr {
		return sheet.Span{}, apperr.New(apperr.ErrCodeInvalidSpan,
			"span area %q ends before it starts", area)
	}
	return sheet.Span{StartCol: sc, StartRow: sr, EndCol: ec, EndRow: er}, nil
}

// parseRef splits one cell reference like "AB12" into zero-based column
// and row indexes. area is only used for error messages.
func parseRef(ref, area string) (col, row int, err error) {
	i := 0
	for i < len(ref) && ref[i] >= 'A' && ref[i] <= 'Z' {
		col = col*26 + int(ref[i]-'A') + 1
		i++
	}
	if i == 0 || i == len(ref) {
		return 0, 0, apperr.New(apperr.ErrCodeInvalidSpan, "malformed span area: %q", area)
	}
	n, convErr := strconv.Atoi(ref[i:])
	if convErr != nil || n < 1 {
		return 0, 0, apperr.New(apperr.ErrCodeInvalidSpan, "malformed span area: %q", area)
	}
	return col - 1, n - 1, nil
}

// Resolve translates the tab's collected span requests into concrete
// merges, validating each against the tab's dimensions (row count, max
// column count across rows). Out-of-bounds requests fail with
// SPAN_OUT_OF_BOUNDS; they are never clamped. Overlapping merges are
// applied independently, last one wins.
func Resolve(tab *sheet.Tab) error {
	rows := len(tab.Rows)
	cols := tab.Columns()

	merges := make([]sheet.Span, 0, len(tab.Requests))
	for _, req := range tab.Requests {
		var (
			sp  sheet.Span
			err error
		)
		if req.Symbolic != "" {
			sp, err = ParseArea(req.Symbolic)
			if err != nil {
				return err
			}
		} else {
			sp = req.Numeric
			if sp.StartCol < 0 || sp.StartRow < 0 || sp.EndCol < sp.StartCol || sp.EndRow < sp.StartRow {
				return apperr.New(apperr.ErrCodeInvalidSpan,
					"malformed span coordinates (%d,%d)-(%d,%d)",
					sp.StartCol, sp.StartRow, sp.EndCol, sp.EndRow)
			}
		}
		if sp.EndRow >= rows || sp.EndCol >= cols {
			return apperr.New(apperr.ErrCodeSpanOutOfBounds,
				"span (%d,%d)-(%d,%d) exceeds tab %q (%d columns, %d rows)",
				sp.StartCol, sp.StartRow, sp.EndCol, sp.EndRow, tab.Name, cols, rows)
		}
		merges = append(merges, sp)
	}
	tab.Merges = merges
	return nil
}
