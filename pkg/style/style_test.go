package style

import (
	"testing"

	apperr "github.com/odfkit/odsgen/pkg/errors"
)

func TestDetectFamily(t *testing.T) {
	tests := []struct {
		name    string
		xml     string
		want    Family
		wantErr bool
	}{
		{
			name: "RowStyle",
			xml:  `<style:style style:family="table-row"><style:table-row-properties/></style:style>`,
			want: FamilyRow,
		},
		{
			name: "CellStyle",
			xml:  `<style:style style:family="table-cell"/>`,
			want: FamilyCell,
		},
		{
			name: "ColumnStyle",
			xml:  `<style:style style:family="table-column"/>`,
			want: FamilyColumn,
		},
		{
			name: "NumberStyle",
			xml:  `<number:number-style><number:number number:decimal-places="2"/></number:number-style>`,
			want: FamilyData,
		},
		{
			name: "LeadingWhitespace",
			xml:  "\n  <style:style style:family=\"table-cell\"/>",
			want: FamilyCell,
		},
		{
			name:    "NoFamily",
			xml:     `<style:style/>`,
			wantErr: true,
		},
		{
			name:    "UnsupportedFamily",
			xml:     `<style:style style:family="graphic"/>`,
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DetectFamily(tt.xml)
			if tt.wantErr {
				if !apperr.Is(err, apperr.ErrCodeInvalidStyle) {
					t.Fatalf("err = %v, want INVALID_STYLE", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("DetectFamily: %v", err)
			}
			if got != tt.want {
				t.Errorf("family = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestParseDefinitionNameFallback(t *testing.T) {
	// No explicit name: the fragment's style:name attribute is used.
	def, err := ParseDefinition("", `<style:style style:name="my_style" style:family="table-cell"/>`)
	if err != nil {
		t.Fatalf("ParseDefinition: %v", err)
	}
	if def.Name != "my_style" {
		t.Errorf("Name = %q, want my_style", def.Name)
	}

	// Explicit name wins over the fragment attribute.
	def, err = ParseDefinition("outer", `<style:style style:name="inner" style:family="table-cell"/>`)
	if err != nil {
		t.Fatalf("ParseDefinition: %v", err)
	}
	if def.Name != "outer" {
		t.Errorf("Name = %q, want outer", def.Name)
	}

	// No name anywhere is an error.
	if _, err := ParseDefinition("", `<style:style style:family="table-cell"/>`); !apperr.Is(err, apperr.ErrCodeInvalidStyle) {
		t.Errorf("err = %v, want INVALID_STYLE", err)
	}
}

func TestRegisterOverwrites(t *testing.T) {
	r := NewRegistry()
	r.Register(Definition{Name: "bold", Family: FamilyCell, XML: "<a/>"})
	r.Register(Definition{Name: "bold", Family: FamilyCell, XML: "<b/>"})

	def, ok := r.Lookup("bold")
	if !ok {
		t.Fatal("bold not registered")
	}
	if def.XML != "<b/>" {
		t.Errorf("XML = %q, want latest definition", def.XML)
	}
	if r.Len() != 1 {
		t.Errorf("Len = %d, want 1", r.Len())
	}
}

func TestResolveUnknown(t *testing.T) {
	r := Builtin()
	if _, err := r.Resolve([]string{"bold", "no_such_style"}); !apperr.Is(err, apperr.ErrCodeUnknownStyle) {
		t.Errorf("err = %v, want UNKNOWN_STYLE", err)
	}

	defs, err := r.Resolve([]string{"bold", "left"})
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if len(defs) != 2 || defs[0].Name != "bold" || defs[1].Name != "left" {
		t.Errorf("Resolve order not preserved: %v", defs)
	}
}

func TestFirst(t *testing.T) {
	r := Builtin()

	// Mixed row/cell list: First picks by family.
	names := []string{"cell_decimal2", "table_row_1cm"}
	got, err := r.First(names, FamilyRow, FamilyRow, FamilyCell)
	if err != nil {
		t.Fatalf("First: %v", err)
	}
	if got != "table_row_1cm" {
		t.Errorf("First(row) = %q, want table_row_1cm", got)
	}

	got, err = r.First(names, FamilyCell, FamilyRow, FamilyCell)
	if err != nil {
		t.Fatalf("First: %v", err)
	}
	if got != "cell_decimal2" {
		t.Errorf("First(cell) = %q, want cell_decimal2", got)
	}

	// A family outside the allowed set is a conflict.
	if _, err := r.First([]string{"table_row_1cm"}, FamilyCell, FamilyCell); !apperr.Is(err, apperr.ErrCodeStyleConflict) {
		t.Errorf("err = %v, want STYLE_CONFLICT", err)
	}

	// Unknown names always fail.
	if _, err := r.First([]string{"ghost"}, FamilyCell, FamilyCell); !apperr.Is(err, apperr.ErrCodeUnknownStyle) {
		t.Errorf("err = %v, want UNKNOWN_STYLE", err)
	}

	// Empty entries are skipped.
	got, err = r.First([]string{"", "center"}, FamilyCell, FamilyCell)
	if err != nil || got != "center" {
		t.Errorf("First = %q, %v, want center", got, err)
	}
}

func TestCloneIsolation(t *testing.T) {
	base := Builtin()
	n := base.Len()

	clone := base.Clone()
	clone.Register(Definition{Name: "custom", Family: FamilyCell, XML: "<x/>"})

	if _, ok := base.Lookup("custom"); ok {
		t.Error("registering on clone mutated the original")
	}
	if base.Len() != n {
		t.Errorf("base Len changed: %d -> %d", n, base.Len())
	}
	if _, ok := clone.Lookup("custom"); !ok {
		t.Error("clone lost its own registration")
	}
}

func TestBuiltinCatalog(t *testing.T) {
	r := Builtin()

	if r.Len() != len(builtinCatalog) {
		t.Fatalf("Len = %d, want %d", r.Len(), len(builtinCatalog))
	}

	// Spot-check families.
	for name, want := range map[string]Family{
		"default_table_row":             FamilyRow,
		"table_row_1cm":                 FamilyRow,
		"bold":                          FamilyCell,
		"cell_decimal2":                 FamilyCell,
		"decimal2":                      FamilyData,
		"integer_no_zero":               FamilyData,
		"bold_center_bg_gray_grid_06pt": FamilyCell,
	} {
		def, ok := r.Lookup(name)
		if !ok {
			t.Errorf("builtin %q missing", name)
			continue
		}
		if def.Family != want {
			t.Errorf("%s family = %s, want %s", name, def.Family, want)
		}
	}

	// Independent copies per call.
	other := Builtin()
	other.Register(Definition{Name: "bold", Family: FamilyCell, XML: "<changed/>"})
	if def, _ := r.Lookup("bold"); def.XML == "<changed/>" {
		t.Error("Builtin registries are not independent")
	}
}
