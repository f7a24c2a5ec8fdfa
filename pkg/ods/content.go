package ods

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	apperr "github.com/odfkit/odsgen/pkg/errors"
	"github.com/odfkit/odsgen/pkg/sheet"
	"github.com/odfkit/odsgen/pkg/style"
)

const contentHeader = `<?xml version="1.0" encoding="UTF-8"?>
<office:document-content xmlns:office="urn:oasis:names:tc:opendocument:xmlns:office:1.0" xmlns:style="urn:oasis:names:tc:opendocument:xmlns:style:1.0" xmlns:text="urn:oasis:names:tc:opendocument:xmlns:text:1.0" xmlns:table="urn:oasis:names:tc:opendocument:xmlns:table:1.0" xmlns:fo="urn:oasis:names:tc:opendocument:xmlns:xsl-fo-compatible:1.0" xmlns:number="urn:oasis:names:tc:opendocument:xmlns:datastyle:1.0" xmlns:of="urn:oasis:names:tc:opendocument:xmlns:of:1.2" xmlns:calcext="urn:org:documentfoundation:names:experimental:calc:xmlns:calcext:1.0" xmlns:loext="urn:org:documentfoundation:names:experimental:office:xmlns:loext:1.0" office:version="1.2">
`

// styleSink accumulates the automatic styles a document actually uses,
// chasing *-style-name dependencies so data styles land in the output
// alongside the cell styles that reference them.
type styleSink struct {
	reg  *style.Registry
	seen map[string]bool
	defs []style.Definition
}

func newStyleSink(reg *style.Registry) *styleSink {
	return &styleSink{reg: reg, seen: make(map[string]bool)}
}

// add inserts the named style and, recursively, every registered style
// it references. Unregistered references (e.g. the "Default" parent
// living in styles.xml) are skipped.
func (s *styleSink) add(name string) error {
	if name == "" || s.seen[name] {
		return nil
	}
	def, ok := s.reg.Lookup(name)
	if !ok {
		return apperr.New(apperr.ErrCodeUnknownStyle, "unknown style: %q", name)
	}
	s.seen[name] = true
	s.defs = append(s.defs, def)
	for _, ref := range styleRefs(def.XML) {
		if _, ok := s.reg.Lookup(ref); ok {
			if err := s.add(ref); err != nil {
				return err
			}
		}
	}
	return nil
}

// gridPos addresses one cell of a tab.
type gridPos struct{ row, col int }

// tabMerges precomputes span layout for a tab: which positions start a
// merge and which are covered by one. When merges overlap, the last
// applied wins: a later merge deletes earlier origins inside its area,
// and its own origin sheds any covered flag an earlier merge left.
func tabMerges(tab *sheet.Tab) (origins map[gridPos]sheet.Span, covered map[gridPos]bool) {
	origins = make(map[gridPos]sheet.Span)
	covered = make(map[gridPos]bool)
	for _, m := range tab.Merges {
		origin := gridPos{m.StartRow, m.StartCol}
		origins[origin] = m
		delete(covered, origin)
		for r := m.StartRow; r <= m.EndRow; r++ {
			for c := m.StartCol; c <= m.EndCol; c++ {
				if r == m.StartRow && c == m.StartCol {
					continue
				}
				covered[gridPos{r, c}] = true
				delete(origins, gridPos{r, c})
			}
		}
	}
	return origins, covered
}

// buildContent renders content.xml for a resolved document: used styles
// (plus generated column-width styles) in office:automatic-styles, then
// the spreadsheet body with tabs, columns, rows, cells, and merges.
func buildContent(doc *sheet.Document) (string, error) {
	sink := newStyleSink(doc.Styles)

	// Column width styles are generated, one per distinct width.
	colStyles := make(map[string]string)
	var colOrder []string
	colStyleFor := func(width string) string {
		if name, ok := colStyles[width]; ok {
			return name
		}
		name := fmt.Sprintf("co%d", len(colStyles)+1)
		colStyles[width] = name
		colOrder = append(colOrder, width)
		return name
	}

	var body strings.Builder
	for ti := range doc.Tabs {
		tab := &doc.Tabs[ti]
		origins, covered := tabMerges(tab)

		body.WriteString(`<table:table table:name="` + escape(tab.Name) + "\">\n")

		// Columns: one element per column, styled where a width applies.
		cols := tab.Columns()
		if len(tab.ColumnWidths) > cols {
			cols = len(tab.ColumnWidths)
		}
		for c := 0; c < cols; c++ {
			width := ""
			if c < len(tab.ColumnWidths) {
				width = tab.ColumnWidths[c]
			}
			if width == "" {
				body.WriteString("<table:table-column/>\n")
			} else {
				body.WriteString(`<table:table-column table:style-name="` + escape(colStyleFor(width)) + "\"/>\n")
			}
		}

		for ri := range tab.Rows {
			row := &tab.Rows[ri]
			if row.StyleName != "" {
				if err := sink.add(row.StyleName); err != nil {
					return "", err
				}
				body.WriteString(`<table:table-row table:style-name="` + escape(row.StyleName) + "\">\n")
			} else {
				body.WriteString("<table:table-row>\n")
			}
			for ci := range row.Cells {
				cell := &row.Cells[ci]
				if cell.StyleName != "" {
					if err := sink.add(cell.StyleName); err != nil {
						return "", err
					}
				}
				pos := gridPos{ri, ci}
				tag := "table:table-cell"
				var span *sheet.Span
				if covered[pos] {
					tag = "table:covered-table-cell"
				} else if m, ok := origins[pos]; ok {
					span = &m
				}
				writeCell(&body, cell, tag, span)
			}
			body.WriteString("</table:table-row>\n")
		}
		body.WriteString("</table:table>\n")
	}

	var out strings.Builder
	out.WriteString(contentHeader)
	out.WriteString("<office:automatic-styles>\n")
	for _, def := range sink.defs {
		out.WriteString(namedFragment(def))
		out.WriteString("\n")
	}
	for _, width := range colOrder {
		name := colStyles[width]
		out.WriteString(`<style:style style:name="` + escape(name) + `" style:family="table-column">` +
			`<style:table-column-properties fo:break-before="auto" style:column-width="` + escape(width) + `"/></style:style>` + "\n")
	}
	out.WriteString("</office:automatic-styles>\n")
	out.WriteString("<office:body>\n<office:spreadsheet>\n")
	out.WriteString(body.String())
	out.WriteString("</office:spreadsheet>\n</office:body>\n</office:document-content>\n")
	return out.String(), nil
}

// writeCell renders one cell element. span, when non-nil, marks the
// origin of a merge region.
func writeCell(b *strings.Builder, cell *sheet.Cell, tag string, span *sheet.Span) {
	b.WriteString("<" + tag)
	if cell.StyleName != "" {
		b.WriteString(` table:style-name="` + escape(cell.StyleName) + `"`)
	}
	if cell.Formula != "" {
		b.WriteString(` table:formula="` + escape(cell.Formula) + `"`)
	}

	display := cell.Text
	switch v := cell.Value.(type) {
	case nil:
		// value-less cell, text only when given
	case string:
		b.WriteString(` office:value-type="string" calcext:value-type="string"`)
		if display == "" {
			display = v
		}
	case int64:
		b.WriteString(` office:value-type="float" calcext:value-type="float" office:value="` + strconv.FormatInt(v, 10) + `"`)
		if display == "" {
			display = strconv.FormatInt(v, 10)
		}
	case float64:
		formatted := strconv.FormatFloat(v, 'f', -1, 64)
		b.WriteString(` office:value-type="float" calcext:value-type="float" office:value="` + formatted + `"`)
		if display == "" {
			display = formatted
		}
	case bool:
		b.WriteString(` office:value-type="boolean" office:boolean-value="` + strconv.FormatBool(v) + `"`)
		if display == "" {
			if v {
				display = "TRUE"
			} else {
				display = "FALSE"
			}
		}
	}

	if span != nil {
		b.WriteString(` table:number-columns-spanned="` + strconv.Itoa(span.EndCol-span.StartCol+1) + `"`)
		b.WriteString(` table:number-rows-spanned="` + strconv.Itoa(span.EndRow-span.StartRow+1) + `"`)
	}
	for _, k := range sortedKeys(cell.Attrs) {
		b.WriteString(" " + k + `="` + escape(cell.Attrs[k]) + `"`)
	}

	if display == "" && cell.Value == nil {
		b.WriteString("/>\n")
		return
	}
	b.WriteString("><text:p>" + escape(display) + "</text:p></" + tag + ">\n")
}

func sortedKeys(m map[string]string) []string {
	if len(m) == 0 {
		return nil
	}
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
