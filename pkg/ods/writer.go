// Package ods serializes a resolved spreadsheet document into the
// OpenDocument Spreadsheet container format: a zip archive whose first
// entry is an uncompressed mimetype, followed by the manifest and the
// content, styles, and meta parts.
package ods

import (
	"archive/zip"
	"bytes"
	"io"

	"github.com/odfkit/odsgen/pkg/buildinfo"
	apperr "github.com/odfkit/odsgen/pkg/errors"
	"github.com/odfkit/odsgen/pkg/sheet"
)

const (
	// Mimetype identifies the archive as an ODF spreadsheet. It must be
	// the first zip entry and must be stored uncompressed.
	Mimetype = "application/vnd.oasis.opendocument.spreadsheet"

	manifestXML = `<?xml version="1.0" encoding="UTF-8"?>
<manifest:manifest xmlns:manifest="urn:oasis:names:tc:opendocument:xmlns:manifest:1.0" manifest:version="1.2">
<manifest:file-entry manifest:full-path="/" manifest:media-type="application/vnd.oasis.opendocument.spreadsheet"/>
<manifest:file-entry manifest:full-path="content.xml" manifest:media-type="text/xml"/>
<manifest:file-entry manifest:full-path="styles.xml" manifest:media-type="text/xml"/>
<manifest:file-entry manifest:full-path="meta.xml" manifest:media-type="text/xml"/>
</manifest:manifest>
`

	stylesXML = `<?xml version="1.0" encoding="UTF-8"?>
<office:document-styles xmlns:office="urn:oasis:names:tc:opendocument:xmlns:office:1.0" xmlns:style="urn:oasis:names:tc:opendocument:xmlns:style:1.0" office:version="1.2">
<office:styles>
<style:style style:name="Default" style:family="table-cell"/>
</office:styles>
</office:document-styles>
`
)

func metaXML() string {
	return `<?xml version="1.0" encoding="UTF-8"?>
<office:document-meta xmlns:office="urn:oasis:names:tc:opendocument:xmlns:office:1.0" xmlns:meta="urn:oasis:names:tc:opendocument:xmlns:meta:1.0" office:version="1.2">
<office:meta>
<meta:generator>odsgen/` + escape(buildinfo.Version) + `</meta:generator>
</office:meta>
</office:document-meta>
`
}

// Write serializes the document and writes the .ods archive to w.
func Write(w io.Writer, doc *sheet.Document) error {
	content, err := buildContent(doc)
	if err != nil {
		return err
	}

	zw := zip.NewWriter(w)

	mime, err := zw.CreateHeader(&zip.FileHeader{Name: "mimetype", Method: zip.Store})
	if err != nil {
		return apperr.Wrap(apperr.ErrCodeInternal, err, "writing mimetype entry")
	}
	if _, err := mime.Write([]byte(Mimetype)); err != nil {
		return apperr.Wrap(apperr.ErrCodeInternal, err, "writing mimetype entry")
	}

	parts := []struct {
		name string
		data string
	}{
		{"META-INF/manifest.xml", manifestXML},
		{"content.xml", content},
		{"styles.xml", stylesXML},
		{"meta.xml", metaXML()},
	}
	for _, part := range parts {
		f, err := zw.Create(part.name)
		if err != nil {
			return apperr.Wrap(apperr.ErrCodeInternal, err, "writing %s", part.name)
		}
		if _, err := f.Write([]byte(part.data)); err != nil {
			return apperr.Wrap(apperr.ErrCodeInternal, err, "writing %s", part.name)
		}
	}
	if err := zw.Close(); err != nil {
		return apperr.Wrap(apperr.ErrCodeInternal, err, "closing archive")
	}
	return nil
}

// Bytes serializes the document and returns the .ods archive.
func Bytes(doc *sheet.Document) ([]byte, error) {
	var buf bytes.Buffer
	if err := Write(&buf, doc); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
