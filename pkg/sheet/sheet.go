// Package sheet defines the canonical spreadsheet document model produced
// by normalization and consumed by the ODF writer.
//
// Entities are built once during a single top-to-bottom normalization
// pass. After that, only two in-place annotations happen: the span
// resolver fills Tab.Merges, and ResolveStyles fills the resolved
// StyleName fields. No entity is shared across documents.
package sheet

import (
	"github.com/odfkit/odsgen/pkg/style"
)

// Cell is one grid cell.
//
// Value is nil, string, bool, int64, or float64. Styles holds the style
// names recorded during normalization; StyleName is the single effective
// cell style chosen by ResolveStyles.
type Cell struct {
	Value   any
	Text    string   // display text override, verbatim from the description
	Styles  []string // recorded names, resolved lazily
	Formula string   // OpenFormula string, passed through verbatim
	Colspan int      // >= 1; 1 means no span
	Rowspan int
	Attrs   map[string]string // extra ODF attributes, passed through

	StyleName string // effective style, set by ResolveStyles
}

// Row is an ordered sequence of cells with optional row-level styles.
type Row struct {
	Cells  []Cell
	Styles []string

	StyleName string // effective table-row style, set by ResolveStyles
}

// Span is a resolved merge region in zero-based grid coordinates,
// end-inclusive.
type Span struct {
	StartCol, StartRow, EndCol, EndRow int
}

// SpanRequest is a pending merge directive: either a symbolic
// spreadsheet range ("A1:B3") or a numeric quadruple. Symbolic takes
// precedence when non-empty.
type SpanRequest struct {
	Symbolic string
	Numeric  Span
}

// Tab is one sheet of the document.
type Tab struct {
	Name         string
	Rows         []Row
	ColumnWidths []string // positional; "" keeps the format default width
	Styles       []string
	Requests     []SpanRequest // collected during normalization

	Merges []Span // resolved merges, set by span.Resolve
}

// Columns reports the widest row of the tab.
func (t *Tab) Columns() int {
	max := 0
	for i := range t.Rows {
		if n := len(t.Rows[i].Cells); n > max {
			max = n
		}
	}
	return max
}

// Defaults binds element kinds to fallback style names, applied when no
// more specific style matches. An empty Cell binding defers to the
// per-value-type bindings.
type Defaults struct {
	Row    string // table-row style for rows
	Cell   string // table-cell style for cells of any value type
	String string // cells holding strings (and nulls)
	Int    string // cells holding integers
	Float  string // cells holding floats
	Other  string // cells holding anything else (booleans bind as Int)
}

// DefaultBindings returns the seed bindings: rows get the compact
// default row style, text aligns left, numbers align right.
func DefaultBindings() Defaults {
	return Defaults{
		Row:    "default_table_row",
		String: "left",
		Int:    "right",
		Float:  "right",
		Other:  "left",
	}
}

// Document is a fully assembled spreadsheet description. It owns its
// style registry and tabs exclusively.
type Document struct {
	Tabs     []Tab
	Styles   *style.Registry
	Defaults Defaults
}
