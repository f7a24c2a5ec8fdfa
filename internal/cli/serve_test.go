package cli

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/odfkit/odsgen/pkg/ods"
	"github.com/odfkit/odsgen/pkg/pipeline"
)

func testServer(t *testing.T) *httptest.Server {
	t.Helper()
	c := newTestCLI()
	srv := httptest.NewServer(c.router(pipeline.NewRunner(nil, c.Logger)))
	t.Cleanup(srv.Close)
	return srv
}

func TestServeConvert(t *testing.T) {
	srv := testServer(t)

	resp, err := http.Post(srv.URL+"/v1/convert", "application/json",
		strings.NewReader(`[[["a","b"],[1,2]]]`))
	if err != nil {
		t.Fatalf("POST /v1/convert: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	if got := resp.Header.Get("Content-Type"); got != ods.Mimetype {
		t.Errorf("Content-Type = %q, want %q", got, ods.Mimetype)
	}
	if resp.Header.Get("X-Request-Id") == "" {
		t.Error("missing X-Request-Id header")
	}
}

func TestServeConvertInputError(t *testing.T) {
	srv := testServer(t)

	resp, err := http.Post(srv.URL+"/v1/convert", "application/json",
		strings.NewReader(`42`))
	if err != nil {
		t.Fatalf("POST /v1/convert: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", resp.StatusCode)
	}
	var body errorResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decoding error body: %v", err)
	}
	if body.Code != "INVALID_DOCUMENT_SHAPE" {
		t.Errorf("code = %q, want INVALID_DOCUMENT_SHAPE", body.Code)
	}
}

func TestServeConvertUnsupportedType(t *testing.T) {
	srv := testServer(t)

	resp, err := http.Post(srv.URL+"/v1/convert", "application/xml",
		strings.NewReader(`<doc/>`))
	if err != nil {
		t.Fatalf("POST /v1/convert: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", resp.StatusCode)
	}
}

func TestServeStyles(t *testing.T) {
	srv := testServer(t)

	resp, err := http.Get(srv.URL + "/v1/styles")
	if err != nil {
		t.Fatalf("GET /v1/styles: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	var entries []struct {
		Name   string `json:"name"`
		Family string `json:"family"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&entries); err != nil {
		t.Fatalf("decoding styles: %v", err)
	}
	if len(entries) != 37 {
		t.Errorf("catalog size = %d, want 37", len(entries))
	}
}

func TestServeHealthz(t *testing.T) {
	srv := testServer(t)

	resp, err := http.Get(srv.URL + "/healthz")
	if err != nil {
		t.Fatalf("GET /healthz: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Errorf("status = %d, want 200", resp.StatusCode)
	}
}

func TestFormatFromContentType(t *testing.T) {
	cases := []struct {
		header string
		want   pipeline.Format
		err    bool
	}{
		{"application/json", pipeline.FormatJSON, false},
		{"application/json; charset=utf-8", pipeline.FormatJSON, false},
		{"application/yaml", pipeline.FormatYAML, false},
		{"text/yaml", pipeline.FormatYAML, false},
		{"application/toml", pipeline.FormatTOML, false},
		{"", pipeline.FormatAuto, false},
		{"text/plain", pipeline.FormatAuto, false},
		{"application/xml", "", true},
	}
	for _, tc := range cases {
		got, err := formatFromContentType(tc.header)
		if tc.err {
			if err == nil {
				t.Errorf("formatFromContentType(%q) expected error", tc.header)
			}
			continue
		}
		if err != nil {
			t.Errorf("formatFromContentType(%q): %v", tc.header, err)
		} else if got != tc.want {
			t.Errorf("formatFromContentType(%q) = %q, want %q", tc.header, got, tc.want)
		}
	}
}
