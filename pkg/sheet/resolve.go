package sheet

import (
	apperr "github.com/odfkit/odsgen/pkg/errors"
	"github.com/odfkit/odsgen/pkg/style"
)

// ResolveStyles computes the effective style for every row and cell,
// top-down: the entity's own styles win over the tab's, which win over
// the document defaults. Tab and row style lists may mix table-row and
// table-cell entries (the cell entries cascade down to cells); a cell's
// own list must contain only table-cell styles.
//
// Resolution validates every referenced name against the document's
// registry: UNKNOWN_STYLE for absent names, STYLE_CONFLICT for family
// mismatches. It is a pure pass over the tree aside from filling the
// StyleName fields.
func ResolveStyles(doc *Document) error {
	reg := doc.Styles
	for ti := range doc.Tabs {
		tab := &doc.Tabs[ti]

		tabRow, err := reg.First(tab.Styles, style.FamilyRow, style.FamilyRow, style.FamilyCell)
		if err != nil {
			return err
		}
		tabCell, err := reg.First(tab.Styles, style.FamilyCell, style.FamilyRow, style.FamilyCell)
		if err != nil {
			return err
		}
		if tabRow == "" {
			if tabRow, err = defaultStyle(reg, doc.Defaults.Row, style.FamilyRow, "row"); err != nil {
				return err
			}
		}
		if tabCell == "" {
			if tabCell, err = defaultStyle(reg, doc.Defaults.Cell, style.FamilyCell, "cell"); err != nil {
				return err
			}
		}

		for ri := range tab.Rows {
			row := &tab.Rows[ri]

			rowStyle, err := reg.First(row.Styles, style.FamilyRow, style.FamilyRow, style.FamilyCell)
			if err != nil {
				return err
			}
			if rowStyle == "" {
				rowStyle = tabRow
			}
			row.StyleName = rowStyle

			rowCell, err := reg.First(row.Styles, style.FamilyCell, style.FamilyRow, style.FamilyCell)
			if err != nil {
				return err
			}
			if rowCell == "" {
				rowCell = tabCell
			}

			for ci := range row.Cells {
				cell := &row.Cells[ci]
				name, err := reg.First(cell.Styles, style.FamilyCell, style.FamilyCell)
				if err != nil {
					return err
				}
				if name == "" {
					name = rowCell
				}
				if name == "" {
					if name, err = typeDefault(reg, doc.Defaults, cell.Value); err != nil {
						return err
					}
				}
				cell.StyleName = name
			}
		}
	}
	return nil
}

// defaultStyle validates a default binding before use. An empty binding
// means no default applies.
func defaultStyle(reg *style.Registry, name string, want style.Family, kind string) (string, error) {
	if name == "" {
		return "", nil
	}
	def, ok := reg.Lookup(name)
	if !ok {
		return "", apperr.New(apperr.ErrCodeUnknownStyle, "default %s style %q is not registered", kind, name)
	}
	if def.Family != want {
		return "", apperr.New(apperr.ErrCodeStyleConflict,
			"default %s style %q has family %s, want %s", kind, name, def.Family, want)
	}
	return name, nil
}

// typeDefault picks the per-value-type cell binding, matching the
// original generator: strings and nulls read as text, numbers as
// numerals, anything else as text. Booleans count as integers there,
// so they take the integer binding.
func typeDefault(reg *style.Registry, d Defaults, value any) (string, error) {
	var name string
	switch value.(type) {
	case nil, string:
		name = d.String
	case int64, bool:
		name = d.Int
	case float64:
		name = d.Float
	default:
		name = d.Other
	}
	return defaultStyle(reg, name, style.FamilyCell, "cell")
}
