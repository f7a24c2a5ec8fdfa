// Package style holds named ODF style definitions and resolves style
// names to concrete definitions.
//
// A definition pairs a name with a raw ODF style XML fragment and the
// family the fragment applies to (rows, cells, columns, or data/number
// formats referenced by cell styles). The builtin catalog is loaded as a
// fresh registry per conversion; user-supplied definitions extend the
// per-document copy and never the shared catalog.
package style

import (
	"regexp"
	"sort"
	"strings"

	apperr "github.com/odfkit/odsgen/pkg/errors"
)

// Family classifies which spreadsheet element a style applies to.
type Family string

// Style families recognized in definitions.
const (
	FamilyRow    Family = "table-row"
	FamilyCell   Family = "table-cell"
	FamilyColumn Family = "table-column"
	FamilyData   Family = "data" // number formats (number:*-style fragments)
)

// Definition is a named, immutable ODF style.
//
// XML holds the fragment as supplied; the container writer injects the
// style:name attribute when the style is emitted, so fragments need not
// carry one.
type Definition struct {
	Name   string
	Family Family
	XML    string
}

var (
	familyAttrRe = regexp.MustCompile(`style:family="([^"]*)"`)
	nameAttrRe   = regexp.MustCompile(`style:name="([^"]*)"`)
	dataStyleRe  = regexp.MustCompile(`^<\s*number:[a-z-]*style[\s>]`)
)

// DetectFamily inspects an ODF style fragment and reports its family.
// It fails with INVALID_STYLE when the fragment declares no recognizable
// family.
func DetectFamily(xml string) (Family, error) {
	trimmed := strings.TrimSpace(xml)
	if dataStyleRe.MatchString(trimmed) {
		return FamilyData, nil
	}
	m := familyAttrRe.FindStringSubmatch(trimmed)
	if m == nil {
		return "", apperr.New(apperr.ErrCodeInvalidStyle, "style definition declares no family")
	}
	switch Family(m[1]) {
	case FamilyRow, FamilyCell, FamilyColumn:
		return Family(m[1]), nil
	}
	return "", apperr.New(apperr.ErrCodeInvalidStyle, "unsupported style family: %q", m[1])
}

// FragmentName returns the style:name attribute of a fragment, or "".
func FragmentName(xml string) string {
	if m := nameAttrRe.FindStringSubmatch(xml); m != nil {
		return m[1]
	}
	return ""
}

// ParseDefinition builds a Definition from a fragment, detecting the
// family. When name is empty the fragment's own style:name attribute is
// used; a definition without any name fails with INVALID_STYLE.
func ParseDefinition(name, xml string) (Definition, error) {
	fam, err := DetectFamily(xml)
	if err != nil {
		return Definition{}, err
	}
	if name == "" {
		name = FragmentName(xml)
	}
	if name == "" {
		return Definition{}, apperr.New(apperr.ErrCodeInvalidStyle, "style definition has no name")
	}
	return Definition{Name: name, Family: fam, XML: xml}, nil
}

// Registry maps case-sensitive style names to definitions.
// The zero value is not usable; construct with NewRegistry or Builtin.
type Registry struct {
	defs map[string]Definition
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{defs: make(map[string]Definition)}
}

// Register inserts or overwrites a definition. Re-registering a name
// replaces the previous definition.
func (r *Registry) Register(def Definition) {
	r.defs[def.Name] = def
}

// Lookup returns the definition for name.
func (r *Registry) Lookup(name string) (Definition, bool) {
	def, ok := r.defs[name]
	return def, ok
}

// Resolve maps an ordered list of names to definitions. It fails with
// UNKNOWN_STYLE on the first absent name.
func (r *Registry) Resolve(names []string) ([]Definition, error) {
	defs := make([]Definition, 0, len(names))
	for _, name := range names {
		def, ok := r.defs[name]
		if !ok {
			return nil, apperr.New(apperr.ErrCodeUnknownStyle, "unknown style: %q", name)
		}
		defs = append(defs, def)
	}
	return defs, nil
}

// First returns the name of the first style in names whose family is
// want. Every name must be registered (UNKNOWN_STYLE otherwise), and
// every family encountered must be in allowed; a name outside allowed
// fails with STYLE_CONFLICT. An empty result means no style of the
// wanted family was listed.
func (r *Registry) First(names []string, want Family, allowed ...Family) (string, error) {
	for _, name := range names {
		if name == "" {
			continue
		}
		def, ok := r.defs[name]
		if !ok {
			return "", apperr.New(apperr.ErrCodeUnknownStyle, "unknown style: %q", name)
		}
		if def.Family == want {
			return name, nil
		}
		permitted := false
		for _, fam := range allowed {
			if def.Family == fam {
				permitted = true
				break
			}
		}
		if !permitted {
			return "", apperr.New(apperr.ErrCodeStyleConflict,
				"style %q has family %s, which cannot apply here", name, def.Family)
		}
	}
	return "", nil
}

// Len reports the number of registered definitions.
func (r *Registry) Len() int {
	return len(r.defs)
}

// Names returns all registered names in sorted order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.defs))
	for name := range r.defs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Clone returns an independent copy of the registry. Registrations on
// the clone do not affect the original, so the builtin catalog stays
// stable across conversions.
func (r *Registry) Clone() *Registry {
	defs := make(map[string]Definition, len(r.defs))
	for name, def := range r.defs {
		defs[name] = def
	}
	return &Registry{defs: defs}
}
