// Package prologue models a structured documentation header extracted
// from the top of a legacy source file: named sections of text lines,
// the comment character used to write them, and the serialization rules
// that reproduce the canonical layout.
package prologue

import (
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"github.com/starlink/prologue/internal/lang"
)

// Prologue is a single documentation header. Section content is stored
// without comment markers or indentation; those are layout details
// re-applied by Stringify.
type Prologue struct {
	// CommentChar prefixes every emitted line ('*' or '#').
	CommentChar byte

	// StartsEmbeddedComment and EndsEmbeddedComment record whether the
	// prologue's span opened or closed a surrounding C block comment.
	StartsEmbeddedComment bool
	EndsEmbeddedComment   bool

	// StyleTag identifies the convention that produced this document.
	// Empty when the document was built directly rather than parsed.
	// The parser sets it once; editing operations never change it.
	StyleTag string

	// WriteDefaults controls whether sections with no content but a
	// registered placeholder are emitted anyway.
	WriteDefaults bool

	sections map[string][]string
}

// New returns an empty prologue with the conventional comment character.
func New() *Prologue {
	return &Prologue{
		CommentChar: '*',
		sections:    make(map[string][]string),
	}
}

// Content returns the stored lines for a section, or nil when the
// section is absent. Absence is a normal empty result, not an error.
func (p *Prologue) Content(name string) []string {
	return p.sections[NormalizeName(name)]
}

// SetContent stores lines under a normalized section name. Supplying no
// lines (or only blank lines) removes the entry; a section is never
// present with empty content. An unusable name is a caller error.
func (p *Prologue) SetContent(name string, lines []string) error {
	normalized := NormalizeName(name)
	if normalized == "" {
		return fmt.Errorf("invalid section name %q", name)
	}
	trimmed := trimTrailingBlank(lines)
	if len(trimmed) == 0 {
		delete(p.sections, normalized)
		return nil
	}
	p.sections[normalized] = trimmed
	return nil
}

// Sections returns all populated section names, sorted lexicographically.
func (p *Prologue) Sections() []string {
	names := make([]string, 0, len(p.sections))
	for name := range p.sections {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// MiscSections returns the populated sections that are not part of the
// canonical catalog, sorted. These fill the catalog's miscellaneous slot
// at serialization time.
func (p *Prologue) MiscSections() []string {
	var names []string
	for name := range p.sections {
		if !IsCatalogName(name) {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names
}

// HasSection resolves a name to the stored entry, consulting the alias
// table (Authors/Author, Licence/License) when the literal name is
// absent. When both the literal name and its alias are independently
// populated the document is inconsistent; a diagnostic is emitted and
// the literal name wins.
func (p *Prologue) HasSection(name string) (string, bool) {
	normalized := NormalizeName(name)
	_, literal := p.sections[normalized]

	alias, hasAlias := aliases[normalized]
	if hasAlias {
		if _, aliased := p.sections[alias]; aliased {
			if literal {
				slog.Warn("Section present under both name and alias, preferring the literal name",
					"name", normalized, "alias", alias)
				return normalized, true
			}
			return alias, true
		}
	}
	if literal {
		return normalized, true
	}
	return "", false
}

// IsAdamTask reports whether the document describes an ADAM task: an
// "ADAM Parameters" section is present, or "Type of Module" mentions
// ADAM. ADAM tasks use a different section layout on output.
func (p *Prologue) IsAdamTask() bool {
	if name, ok := p.HasSection("ADAM Parameters"); ok && len(p.sections[name]) > 0 {
		return true
	}
	for _, line := range p.Content("Type of Module") {
		if strings.Contains(line, "ADAM") {
			return true
		}
	}
	return false
}

// GuessDefaults fills Language and Type of Module from the file name
// when they are currently empty. Fields that already have content are
// never touched.
func (p *Prologue) GuessDefaults(filename string) {
	if filename == "" {
		return
	}
	if _, ok := p.HasSection("Language"); !ok {
		if language, ok := lang.BySuffix(filename); ok {
			_ = p.SetContent("Language", []string{language})
		} else if language, ok := lang.ByConvention(filename); ok {
			_ = p.SetContent("Language", []string{language})
		}
	}
	if _, ok := p.HasSection("Type of Module"); !ok {
		if typ, ok := lang.ModuleType(filename); ok {
			_ = p.SetContent("Type of Module", []string{typ})
		}
	}
}

func trimTrailingBlank(lines []string) []string {
	end := len(lines)
	for end > 0 && strings.TrimSpace(lines[end-1]) == "" {
		end--
	}
	return lines[:end]
}
