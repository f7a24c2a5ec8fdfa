package normalize

import (
	apperr "github.com/odfkit/odsgen/pkg/errors"
	"github.com/odfkit/odsgen/pkg/sheet"
)

// Cell converts a raw cell into a canonical cell. A scalar becomes a
// plain value with no styles, text, formula, or span. A map must carry a
// "value" key (the value itself may be null); "style" is a name or list
// of names, "text" and "formula" pass through verbatim, and
// "colspanned"/"rowspanned" must be positive integers.
func Cell(raw any) (sheet.Cell, error) {
	cell := sheet.Cell{Colspan: 1, Rowspan: 1}

	m, ok := raw.(map[string]any)
	if !ok {
		value, err := scalarValue(raw)
		if err != nil {
			return cell, err
		}
		cell.Value = value
		return cell, nil
	}

	rawValue, ok := m[keyValue]
	if !ok {
		return cell, apperr.New(apperr.ErrCodeMissingField, "cell map has no %q key", keyValue)
	}
	value, err := scalarValue(rawValue)
	if err != nil {
		return cell, err
	}
	cell.Value = value

	if cell.Styles, err = styleNames(m[keyStyle]); err != nil {
		return cell, err
	}
	if cell.Text, err = optionalString(m, keyText, "cell"); err != nil {
		return cell, err
	}
	if cell.Formula, err = optionalString(m, keyFormula, "cell"); err != nil {
		return cell, err
	}
	if cell.Colspan, err = positiveInt(m, keyColspan); err != nil {
		return cell, err
	}
	if cell.Rowspan, err = positiveInt(m, keyRowspan); err != nil {
		return cell, err
	}
	if cell.Attrs, err = attrMap(m[keyAttr]); err != nil {
		return cell, err
	}
	return cell, nil
}

// attrMap normalizes the raw attribute passthrough ("attr" key): a map
// of ODF attribute names to string values, handed to the writer as-is.
func attrMap(raw any) (map[string]string, error) {
	if raw == nil {
		return nil, nil
	}
	m, ok := raw.(map[string]any)
	if !ok {
		return nil, apperr.New(apperr.ErrCodeInvalidDocumentShape,
			"cell %q must be a map of attribute names to values, got %T", keyAttr, raw)
	}
	attrs := make(map[string]string, len(m))
	for k, v := range m {
		s, ok := v.(string)
		if !ok {
			return nil, apperr.New(apperr.ErrCodeInvalidDocumentShape,
				"cell attribute %q must be a string", k)
		}
		attrs[k] = s
	}
	return attrs, nil
}
