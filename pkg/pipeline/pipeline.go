// Package pipeline provides the core conversion pipeline for odsgen.
//
// This package implements the complete decode → normalize → resolve →
// write sequence used by both the CLI and the HTTP service. Centralizing
// it keeps the two entry points byte-for-byte consistent.
//
// # Architecture
//
// The pipeline consists of four stages:
//
//  1. Decode: Parse JSON, YAML, or TOML input into a loose value
//  2. Normalize: Shape the value into a canonical document
//  3. Resolve: Compute merge regions and the effective style of every cell
//  4. Write: Serialize the document as an .ods archive
//
// # Usage
//
//	opts := pipeline.Options{Format: pipeline.FormatJSON}
//	result, err := pipeline.Convert(ctx, input, opts)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	os.WriteFile("out.ods", result.ODS, 0644)
package pipeline

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"

	apperr "github.com/odfkit/odsgen/pkg/errors"
	"github.com/odfkit/odsgen/pkg/ods"
	"github.com/odfkit/odsgen/pkg/sheet"
	"github.com/odfkit/odsgen/pkg/sheet/normalize"
	"github.com/odfkit/odsgen/pkg/sheet/span"
)

// Options configures a conversion.
type Options struct {
	// Format selects the input decoder; FormatAuto decodes as YAML.
	Format Format `json:"format,omitempty"`

	// Logger receives stage-level progress. Not serialized.
	Logger *log.Logger `json:"-"`
}

// Validate checks the options and applies defaults.
func (o *Options) Validate() error {
	if o.Format == "" {
		o.Format = FormatAuto
	}
	if err := ValidateFormat(o.Format); err != nil {
		return err
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	return nil
}

// Result contains the outputs of a conversion.
type Result struct {
	// Document is the canonical document after style resolution.
	Document *sheet.Document

	// ODS is the rendered archive.
	ODS []byte

	// Stats contains size and timing information.
	Stats Stats
}

// Stats describes one conversion run.
type Stats struct {
	Tabs          int
	Rows          int
	Cells         int
	NormalizeTime time.Duration
	WriteTime     time.Duration
}

// Convert runs the complete pipeline on one input document.
func Convert(ctx context.Context, input []byte, opts Options) (*Result, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	raw, err := Decode(input, opts.Format)
	if err != nil {
		return nil, err
	}

	normalizeStart := time.Now()
	doc, err := normalize.Document(raw)
	if err != nil {
		return nil, err
	}
	for i := range doc.Tabs {
		if err := span.Resolve(&doc.Tabs[i]); err != nil {
			return nil, err
		}
	}
	if err := sheet.ResolveStyles(doc); err != nil {
		return nil, err
	}

	result := &Result{Document: doc}
	result.Stats.NormalizeTime = time.Since(normalizeStart)
	result.Stats.Tabs = len(doc.Tabs)
	for i := range doc.Tabs {
		result.Stats.Rows += len(doc.Tabs[i].Rows)
		for j := range doc.Tabs[i].Rows {
			result.Stats.Cells += len(doc.Tabs[i].Rows[j].Cells)
		}
	}
	opts.Logger.Info("normalized document",
		"tabs", result.Stats.Tabs,
		"rows", result.Stats.Rows,
		"cells", result.Stats.Cells,
		"duration", result.Stats.NormalizeTime)

	if err := ctx.Err(); err != nil {
		return nil, apperr.Wrap(apperr.ErrCodeInternal, err, "conversion canceled")
	}

	writeStart := time.Now()
	result.ODS, err = ods.Bytes(doc)
	if err != nil {
		return nil, err
	}
	result.Stats.WriteTime = time.Since(writeStart)
	opts.Logger.Info("wrote archive",
		"bytes", len(result.ODS),
		"duration", result.Stats.WriteTime)

	return result, nil
}
