package pipeline

import (
	"archive/zip"
	"bytes"
	"context"
	"io"
	"strings"
	"testing"

	"github.com/odfkit/odsgen/pkg/cache"
	apperr "github.com/odfkit/odsgen/pkg/errors"
)

func contentXML(t *testing.T, archive []byte) string {
	t.Helper()
	zr, err := zip.NewReader(bytes.NewReader(archive), int64(len(archive)))
	if err != nil {
		t.Fatalf("reading archive: %v", err)
	}
	for _, f := range zr.File {
		if f.Name != "content.xml" {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			t.Fatalf("opening content.xml: %v", err)
		}
		defer rc.Close()
		b, err := io.ReadAll(rc)
		if err != nil {
			t.Fatalf("reading content.xml: %v", err)
		}
		return string(b)
	}
	t.Fatal("archive has no content.xml")
	return ""
}

func TestConvertMinimalJSON(t *testing.T) {
	input := []byte(`[[["a","b","c"],[10,20,30]]]`)
	result, err := Convert(context.Background(), input, Options{Format: FormatJSON})
	if err != nil {
		t.Fatalf("Convert: %v", err)
	}

	if result.Stats.Tabs != 1 || result.Stats.Rows != 2 || result.Stats.Cells != 6 {
		t.Errorf("stats = %+v, want 1 tab, 2 rows, 6 cells", result.Stats)
	}
	doc := result.Document
	if doc.Tabs[0].Name != "Tab 1" {
		t.Errorf("tab name = %q, want Tab 1", doc.Tabs[0].Name)
	}
	// Unannotated strings align left, integers right.
	if got := doc.Tabs[0].Rows[0].Cells[0].StyleName; got != "left" {
		t.Errorf("string cell style = %q, want left", got)
	}
	if got := doc.Tabs[0].Rows[1].Cells[0].StyleName; got != "right" {
		t.Errorf("int cell style = %q, want right", got)
	}

	content := contentXML(t, result.ODS)
	for _, want := range []string{
		`table:name="Tab 1"`,
		`<text:p>a</text:p>`,
		`office:value="10"`,
	} {
		if !strings.Contains(content, want) {
			t.Errorf("content.xml missing %q", want)
		}
	}
}

func TestConvertAnnotatedJSON(t *testing.T) {
	input := []byte(`[{"name":"first tab","style":"cell_decimal2",` +
		`"table":[{"row":["a","b","c"],"style":"bold_center_bg_gray_grid_06pt"},[10,20,30]]}]`)
	result, err := Convert(context.Background(), input, Options{Format: FormatJSON})
	if err != nil {
		t.Fatalf("Convert: %v", err)
	}

	tab := result.Document.Tabs[0]
	if tab.Name != "first tab" {
		t.Errorf("tab name = %q, want %q", tab.Name, "first tab")
	}
	for i, cell := range tab.Rows[0].Cells {
		if cell.StyleName != "bold_center_bg_gray_grid_06pt" {
			t.Errorf("row 1 cell %d style = %q, want row annotation", i, cell.StyleName)
		}
	}
	for i, cell := range tab.Rows[1].Cells {
		if cell.StyleName != "cell_decimal2" {
			t.Errorf("row 2 cell %d style = %q, want tab annotation", i, cell.StyleName)
		}
	}
}

func TestConvertAnnotatedYAML(t *testing.T) {
	input := []byte(`
body:
  - name: report
    style: grid_06pt
    width: [4cm, 2.5cm]
    span: "A1:B1"
    table:
      - row:
          - value: total
          - {value: 3.14159, style: cell_decimal2}
        style: bold_center_bg_gray_grid_06pt
      - [1, 2]
`)
	result, err := Convert(context.Background(), input, Options{Format: FormatYAML})
	if err != nil {
		t.Fatalf("Convert: %v", err)
	}

	tab := result.Document.Tabs[0]
	if tab.Name != "report" {
		t.Errorf("tab name = %q", tab.Name)
	}
	if len(tab.Merges) != 1 {
		t.Fatalf("merges = %v, want one", tab.Merges)
	}
	// Row annotation wins over tab annotation; cell annotation wins
	// over both.
	if got := tab.Rows[0].Cells[0].StyleName; got != "bold_center_bg_gray_grid_06pt" {
		t.Errorf("row-styled cell = %q", got)
	}
	if got := tab.Rows[0].Cells[1].StyleName; got != "cell_decimal2" {
		t.Errorf("cell-styled cell = %q", got)
	}
	if got := tab.Rows[1].Cells[0].StyleName; got != "grid_06pt" {
		t.Errorf("tab-styled cell = %q", got)
	}

	content := contentXML(t, result.ODS)
	for _, want := range []string{
		`table:name="report"`,
		`style:column-width="4cm"`,
		`table:number-columns-spanned="2"`,
		`style:name="decimal2"`,
	} {
		if !strings.Contains(content, want) {
			t.Errorf("content.xml missing %q", want)
		}
	}
}

func TestConvertTOML(t *testing.T) {
	input := []byte(`
[[body]]
name = "sheet"
table = [["a", "b"], [1, 2]]
`)
	result, err := Convert(context.Background(), input, Options{Format: FormatTOML})
	if err != nil {
		t.Fatalf("Convert: %v", err)
	}
	if result.Document.Tabs[0].Name != "sheet" {
		t.Errorf("tab name = %q, want sheet", result.Document.Tabs[0].Name)
	}
	if got := result.Document.Tabs[0].Rows[1].Cells[0].Value; got != int64(1) {
		t.Errorf("value = %v (%T), want int64(1)", got, got)
	}
}

func TestConvertInputErrors(t *testing.T) {
	cases := []struct {
		name   string
		input  string
		format Format
		code   apperr.Code
	}{
		{"malformed json", `{"body":`, FormatJSON, apperr.ErrCodeInvalidFormat},
		{"scalar document", `42`, FormatJSON, apperr.ErrCodeInvalidDocumentShape},
		{"unknown style", `[[[{"value": 1, "style": "nope"}]]]`, FormatJSON, apperr.ErrCodeUnknownStyle},
		{"span out of bounds", `{"body": [{"table": [["a"]], "span": "A1:C3"}]}`, FormatJSON, apperr.ErrCodeSpanOutOfBounds},
		{"bad format name", `[]`, Format("xml"), apperr.ErrCodeInvalidFormat},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Convert(context.Background(), []byte(tc.input), Options{Format: tc.format})
			if err == nil {
				t.Fatal("expected error")
			}
			if got := apperr.GetCode(err); got != tc.code {
				t.Errorf("code = %q, want %q (err: %v)", got, tc.code, err)
			}
			if !apperr.IsInputError(err) {
				t.Errorf("IsInputError = false for %v", err)
			}
		})
	}
}

func TestDetectFormat(t *testing.T) {
	cases := []struct {
		path string
		want Format
	}{
		{"doc.json", FormatJSON},
		{"doc.JSON", FormatJSON},
		{"doc.toml", FormatTOML},
		{"doc.yaml", FormatYAML},
		{"doc.yml", FormatYAML},
		{"doc", FormatYAML},
	}
	for _, tc := range cases {
		if got := DetectFormat(tc.path); got != tc.want {
			t.Errorf("DetectFormat(%q) = %q, want %q", tc.path, got, tc.want)
		}
	}
}

func TestRunnerCaching(t *testing.T) {
	c, err := cache.NewFileCache(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileCache: %v", err)
	}
	r := NewRunner(c, nil)
	defer r.Close()
	ctx := context.Background()
	input := []byte(`[[["a"]]]`)

	first, hit, err := r.Execute(ctx, input, Options{Format: FormatJSON})
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if hit {
		t.Error("first run reported a cache hit")
	}

	second, hit, err := r.Execute(ctx, input, Options{Format: FormatJSON})
	if err != nil {
		t.Fatalf("Execute (cached): %v", err)
	}
	if !hit {
		t.Error("second run missed the cache")
	}
	if !bytes.Equal(first.ODS, second.ODS) {
		t.Error("cached archive differs from original")
	}

	// Different format means a different key even for the same bytes.
	_, hit, err = r.Execute(ctx, input, Options{Format: FormatYAML})
	if err != nil {
		t.Fatalf("Execute (yaml): %v", err)
	}
	if hit {
		t.Error("format change still hit the cache")
	}
}
