package prologue

import "strings"

// Stringify produces the canonical textual form of the prologue: the
// open marker, each populated section in catalog order with the
// miscellaneous slot expanded, and the close marker. Section content is
// prefixed with the comment character and standard indentation; the
// layout is deterministic regardless of how the document was populated.
func (p *Prologue) Stringify() string {
	var b strings.Builder
	c := string(p.CommentChar)

	if p.StartsEmbeddedComment {
		b.WriteString("/*\n")
	}
	b.WriteString(c + "+\n")

	for _, name := range p.serializationOrder() {
		var lines []string
		if resolved, ok := p.HasSection(name); ok {
			lines = p.sections[resolved]
		} else if p.WriteDefaults {
			if placeholder, ok := defaultText[name]; ok {
				lines = []string{placeholder}
			}
		}
		if len(lines) == 0 {
			continue
		}

		// Open-ended list sections carry a trailing placeholder so the
		// next editor knows where to add entries.
		if terminator, ok := terminatorText[name]; ok && !placeholderPattern.MatchString(lines[len(lines)-1]) {
			lines = append(lines[:len(lines):len(lines)], terminator)
		}

		b.WriteString(c + "  " + name + ":\n")
		for _, line := range lines {
			if strings.TrimSpace(line) == "" {
				b.WriteString(c + "\n")
				continue
			}
			indent := "     "
			if name == "Invocation" && strings.HasPrefix(line, ":") {
				// Continuation-marker lines sit one column to the left.
				indent = "    "
			}
			b.WriteString(c + indent + line + "\n")
		}
		b.WriteString("\n")
	}

	b.WriteString(c + "-\n")
	if p.EndsEmbeddedComment {
		b.WriteString("*/\n")
	}
	return b.String()
}

// serializationOrder expands the miscellaneous slot with the sorted
// non-catalog sections and, for ADAM tasks, moves Arguments to sit
// immediately before Description.
func (p *Prologue) serializationOrder() []string {
	order := make([]string, 0, len(canonicalOrder)+len(p.sections))
	for _, name := range canonicalOrder {
		if name == miscSlot {
			order = append(order, p.MiscSections()...)
			continue
		}
		order = append(order, name)
	}
	if p.IsAdamTask() {
		order = relocateArguments(order)
	}
	return order
}

// relocateArguments removes Arguments from its catalog position and
// re-inserts it directly before Description, exactly once.
func relocateArguments(order []string) []string {
	out := make([]string, 0, len(order))
	for _, name := range order {
		if name == "Arguments" {
			continue
		}
		if name == "Description" {
			out = append(out, "Arguments")
		}
		out = append(out, name)
	}
	return out
}
