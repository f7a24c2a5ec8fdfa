package ods

import (
	"regexp"
	"strings"

	"github.com/odfkit/odsgen/pkg/style"
)

var (
	nameAttrRe = regexp.MustCompile(`style:name="[^"]*"`)
	// Any attribute ending in style-name references another style
	// (style:data-style-name, style:parent-style-name, ...).
	styleRefRe = regexp.MustCompile(`[a-zA-Z]+:[a-zA-Z-]*style-name="([^"]+)"`)
)

// namedFragment returns the definition's XML with its registered name
// injected as the style:name attribute of the root element, replacing
// any name the fragment already carried.
func namedFragment(def style.Definition) string {
	xml := strings.TrimSpace(def.XML)
	attr := `style:name="` + escape(def.Name) + `"`
	if nameAttrRe.MatchString(xml) {
		replaced := false
		return nameAttrRe.ReplaceAllStringFunc(xml, func(m string) string {
			if replaced {
				return m
			}
			replaced = true
			return attr
		})
	}
	// Insert right after the root tag name.
	end := strings.IndexAny(xml, " \t\n/>")
	if end < 0 {
		return xml
	}
	return xml[:end] + " " + attr + xml[end:]
}

// styleRefs lists the names of styles a fragment references through
// *-style-name attributes, in document order.
func styleRefs(xml string) []string {
	var refs []string
	for _, m := range styleRefRe.FindAllStringSubmatch(xml, -1) {
		refs = append(refs, m[1])
	}
	return refs
}

var escaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&apos;",
)

// escape encodes a string for use in XML attribute values and text.
func escape(s string) string {
	return escaper.Replace(s)
}
