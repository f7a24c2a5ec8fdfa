package style

// builtinCatalog lists the styles every document can reference by name.
// The fragments are ODF automatic styles; the decimalN / integer entries
// are number formats pulled in as dependencies of the cell styles that
// reference them via style:data-style-name.
var builtinCatalog = []struct {
	name string
	xml  string
}{
	{"default_table_row", `<style:style style:family="table-row">
<style:table-row-properties style:row-height="4.52mm"
fo:break-before="auto" style:use-optimal-row-height="true"/>
</style:style>`},
	{"table_row_1cm", `<style:style style:family="table-row">
<style:table-row-properties style:row-height="1cm"
fo:break-before="auto"/>
</style:style>`},
	{"bold", `<style:style style:family="table-cell"
style:parent-style-name="Default">
<style:text-properties fo:font-weight="bold"
style:font-weight-asian="bold" style:font-weight-complex="bold"/>
<style:table-cell-properties style:text-align-source="value-type"/>
<style:paragraph-properties fo:margin-right="1mm"/>
</style:style>`},
	{"bold_center", `<style:style style:family="table-cell"
style:parent-style-name="Default">
<style:text-properties fo:font-weight="bold"
style:font-weight-asian="bold" style:font-weight-complex="bold"/>
<style:table-cell-properties style:text-align-source="fix"/>
<style:paragraph-properties fo:text-align="center"/>
</style:style>`},
	{"left", `<style:style style:family="table-cell"
style:parent-style-name="Default">
<style:table-cell-properties style:text-align-source="fix"/>
<style:paragraph-properties fo:text-align="start"
fo:margin-left="1mm"/>
</style:style>`},
	{"right", `<style:style style:family="table-cell"
style:parent-style-name="Default">
<style:table-cell-properties style:text-align-source="fix"/>
<style:paragraph-properties fo:text-align="end"
fo:margin-right="1mm"/>
</style:style>`},
	{"center", `<style:style style:family="table-cell"
style:parent-style-name="Default">
<style:table-cell-properties style:text-align-source="fix"/>
<style:paragraph-properties fo:text-align="center"/>
</style:style>`},
	{"decimal1", `<number:number-style><number:number number:decimal-places="1"
loext:min-decimal-places="1" number:min-integer-digits="1"
number:grouping="false"/>
</number:number-style>`},
	{"cell_decimal1", `<style:style style:family="table-cell"
style:parent-style-name="Default"
style:data-style-name="decimal1">
<style:paragraph-properties fo:margin-right="1.2mm"/>
</style:style>`},
	{"decimal2", `<number:number-style><number:number number:decimal-places="2"
loext:min-decimal-places="2" number:min-integer-digits="1"
number:grouping="false"/>
</number:number-style>`},
	{"cell_decimal2", `<style:style style:family="table-cell"
style:parent-style-name="Default"
style:data-style-name="decimal2">
<style:paragraph-properties fo:margin-right="1.2mm"/>
</style:style>`},
	{"decimal3", `<number:number-style><number:number number:decimal-places="3"
loext:min-decimal-places="3" number:min-integer-digits="1"
number:grouping="false"/>
</number:number-style>`},
	{"cell_decimal3", `<style:style style:family="table-cell"
style:parent-style-name="Default"
style:data-style-name="decimal3">
<style:paragraph-properties fo:margin-right="1.2mm"/>
</style:style>`},
	{"decimal4", `<number:number-style><number:number number:decimal-places="4"
loext:min-decimal-places="4" number:min-integer-digits="1"
number:grouping="false"/>
</number:number-style>`},
	{"cell_decimal4", `<style:style style:family="table-cell"
style:parent-style-name="Default"
style:data-style-name="decimal4">
<style:paragraph-properties fo:margin-right="1.2mm"/>
</style:style>`},
	{"decimal6", `<number:number-style><number:number number:decimal-places="6"
loext:min-decimal-places="6" number:min-integer-digits="1"
number:grouping="false"/>
</number:number-style>`},
	{"cell_decimal6", `<style:style style:family="table-cell"
style:parent-style-name="Default"
style:data-style-name="decimal6">
<style:paragraph-properties fo:margin-right="1.2mm"/>
</style:style>`},
	{"integer", `<number:number-style><number:number number:decimal-places="0"
loext:min-decimal-places="0" number:min-integer-digits="1"
number:grouping="false"/>
</number:number-style>`},
	{"integer_no_zero", `<number:number-style><number:number number:decimal-places="0"
loext:min-decimal-places="0" number:min-integer-digits="0"
number:grouping="false"/>
</number:number-style>`},
	{"grid_06pt", `<style:style style:family="table-cell"
style:parent-style-name="Default">
<style:table-cell-properties fo:border="0.06pt solid #000000"/>
<style:paragraph-properties
fo:margin-left="1.2mm" fo:margin-right="1.2mm"/>
</style:style>`},
	{"bold_left_bg_gray_grid_06pt", `<style:style style:family="table-cell"
style:parent-style-name="Default">
<style:table-cell-properties
fo:background-color="#dddddd" fo:border="0.06pt solid #000000"
style:text-align-source="fix"/>
<style:paragraph-properties fo:text-align="start"
fo:margin-left="1.2mm"/>
<style:text-properties fo:font-weight="bold"
style:font-weight-asian="bold" style:font-weight-complex="bold"/>
</style:style>`},
	{"bold_right_bg_gray_grid_06pt", `<style:style style:family="table-cell"
style:parent-style-name="Default">
<style:table-cell-properties
fo:background-color="#dddddd" fo:border="0.06pt solid #000000"
style:text-align-source="fix"/>
<style:paragraph-properties fo:text-align="end"
fo:margin-right="1.2mm"/>
<style:text-properties fo:font-weight="bold"
style:font-weight-asian="bold" style:font-weight-complex="bold"/>
</style:style>`},
	{"bold_center_bg_gray_grid_06pt", `<style:style style:family="table-cell"
style:parent-style-name="Default">
<style:table-cell-properties
fo:background-color="#dddddd" fo:border="0.06pt solid #000000"
style:text-align-source="fix"/>
<style:paragraph-properties fo:text-align="center"/>
<style:text-properties fo:font-weight="bold"
style:font-weight-asian="bold" style:font-weight-complex="bold"/>
</style:style>`},
	{"bold_left_grid_06pt", `<style:style style:family="table-cell"
style:parent-style-name="Default">
<style:table-cell-properties
fo:border="0.06pt solid #000000"
style:text-align-source="fix"/>
<style:paragraph-properties fo:text-align="start"
fo:margin-left="1.2mm"/>
<style:text-properties fo:font-weight="bold"
style:font-weight-asian="bold" style:font-weight-complex="bold"/>
</style:style>`},
	{"bold_right_grid_06pt", `<style:style style:family="table-cell"
style:parent-style-name="Default">
<style:table-cell-properties
fo:border="0.06pt solid #000000"
style:text-align-source="fix"/>
<style:paragraph-properties fo:text-align="end"
fo:margin-right="1.2mm"/>
<style:text-properties fo:font-weight="bold"
style:font-weight-asian="bold" style:font-weight-complex="bold"/>
</style:style>`},
	{"bold_center_grid_06pt", `<style:style style:family="table-cell"
style:parent-style-name="Default">
<style:table-cell-properties
fo:border="0.06pt solid #000000"
style:text-align-source="fix"/>
<style:paragraph-properties fo:text-align="center"/>
<style:text-properties fo:font-weight="bold"
style:font-weight-asian="bold" style:font-weight-complex="bold"/>
</style:style>`},
	{"left_grid_06pt", `<style:style style:family="table-cell"
style:parent-style-name="Default">
<style:table-cell-properties style:text-align-source="fix"
fo:border="0.06pt solid #000000"/>
<style:paragraph-properties
fo:margin-left="1.2mm" fo:text-align="start"/>
</style:style>`},
	{"right_grid_06pt", `<style:style style:family="table-cell"
style:parent-style-name="Default">
<style:table-cell-properties style:text-align-source="fix"
fo:border="0.06pt solid #000000"/>
<style:paragraph-properties
fo:margin-right="1.2mm" fo:text-align="end"/>
</style:style>`},
	{"center_grid_06pt", `<style:style style:family="table-cell"
style:parent-style-name="Default">
<style:table-cell-properties style:text-align-source="fix"
fo:border="0.06pt solid #000000"/>
<style:paragraph-properties fo:text-align="center"/>
</style:style>`},
	{"integer_grid_06pt", `<style:style style:family="table-cell"
style:parent-style-name="Default"
style:data-style-name="integer">
<style:table-cell-properties fo:border="0.06pt solid #000000"/>
<style:paragraph-properties
fo:margin-left="1.2mm" fo:margin-right="1.2mm"/>
</style:style>`},
	{"integer_no_zero_grid_06pt", `<style:style style:family="table-cell"
style:parent-style-name="Default"
style:data-style-name="integer_no_zero">
<style:table-cell-properties fo:border="0.06pt solid #000000"/>
</style:style>`},
	{"center_integer_no_zero_grid_06pt", `<style:style style:family="table-cell"
style:parent-style-name="Default"
style:data-style-name="integer_no_zero">
<style:table-cell-properties fo:border="0.06pt solid #000000"/>
<style:paragraph-properties fo:text-align="center"/>
</style:style>`},
	{"decimal1_grid_06pt", `<style:style style:family="table-cell"
style:parent-style-name="Default"
style:data-style-name="decimal1">
<style:table-cell-properties fo:border="0.06pt solid #000000"/>
<style:paragraph-properties
fo:margin-left="1.2mm" fo:margin-right="1.2mm"/>
</style:style>`},
	{"decimal2_grid_06pt", `<style:style style:family="table-cell"
style:parent-style-name="Default"
style:data-style-name="decimal2">
<style:table-cell-properties fo:border="0.06pt solid #000000"/>
<style:paragraph-properties
fo:margin-left="1.2mm" fo:margin-right="1.2mm"/>
</style:style>`},
	{"decimal3_grid_06pt", `<style:style style:family="table-cell"
style:parent-style-name="Default"
style:data-style-name="decimal3">
<style:table-cell-properties fo:border="0.06pt solid #000000"/>
<style:paragraph-properties
fo:margin-left="1.2mm" fo:margin-right="1.2mm"/>
</style:style>`},
	{"decimal4_grid_06pt", `<style:style style:family="table-cell"
style:parent-style-name="Default"
style:data-style-name="decimal4">
<style:table-cell-properties fo:border="0.06pt solid #000000"/>
<style:paragraph-properties
fo:margin-left="1.2mm" fo:margin-right="1.2mm"/>
</style:style>`},
	{"decimal6_grid_06pt", `<style:style style:family="table-cell"
style:parent-style-name="Default"
style:data-style-name="decimal6">
<style:table-cell-properties fo:border="0.06pt solid #000000"/>
<style:paragraph-properties
fo:margin-left="1.2mm" fo:margin-right="1.2mm"/>
</style:style>`},
}

// Builtin returns a fresh registry seeded with the builtin catalog.
// Each call returns an independent copy, so user registrations never
// leak between conversions.
func Builtin() *Registry {
	r := NewRegistry()
	for _, entry := range builtinCatalog {
		def, err := ParseDefinition(entry.name, entry.xml)
		if err != nil {
			// The catalog is compiled in; a bad entry is a programming error.
			panic(err)
		}
		r.Register(def)
	}
	return r
}
