package prologue

import "regexp"

// miscSlot marks the position in the canonical order where sections not
// named in the catalog are emitted, sorted. The value can never collide
// with a normalized section name because headers must start with a letter.
const miscSlot = "<misc>"

// canonicalOrder is the fixed serialization order for sections. Insertion
// order of a document is irrelevant; output order always comes from here.
var canonicalOrder = []string{
	"Name",
	"Purpose",
	"Language",
	"Type of Module",
	"Invocation",
	"Synopsis",
	"Description",
	"Arguments",
	"Usage",
	"Parameters",
	"ADAM Parameters",
	"Returned Value",
	"Examples",
	"Notes",
	"Algorithm",
	"References",
	"Related Applications",
	"Implementation Status",
	"Implementation Deficiencies",
	miscSlot,
	"Copyright",
	"Licence",
	"Authors",
	"History",
	"Bugs",
}

// defaultText is the placeholder emitted for a missing section when the
// document is serialized with WriteDefaults set.
var defaultText = map[string]string{
	"Name":           "{routine_name}",
	"Purpose":        "{routine_purpose}",
	"Language":       "{routine_language}",
	"Type of Module": "{routine_type}",
	"Invocation":     "{routine_invocation}",
	"Description":    "{routine_description}",
	"Arguments":      "{argument_description}",
	"Copyright":      "{copyright}",
	"Licence":        "{licence}",
	"Authors":        "{original_author_entry}",
	"History":        "{original_version_entry}",
	"Bugs":           "{note_any_bugs_here}",
}

// terminatorText is appended as the final line of open-ended list
// sections unless the section already ends in a placeholder token.
var terminatorText = map[string]string{
	"Authors": "{enter_new_authors_here}",
	"History": "{enter_further_changes_here}",
	"Bugs":    "{note_new_bugs_here}",
}

// aliases maps each section name to its historically interchangeable
// spelling, in both directions.
var aliases = map[string]string{
	"Authors": "Author",
	"Author":  "Authors",
	"Licence": "License",
	"License": "Licence",
}

// placeholderPattern matches a placeholder token occupying a whole line,
// e.g. "{enter_further_changes_here}".
var placeholderPattern = regexp.MustCompile(`^\s*\{[a-z_]+\}\s*$`)

// catalogNames holds the normalized catalog entries and alias targets for
// membership tests; anything outside it lands in the miscellaneous slot.
var catalogNames = func() map[string]struct{} {
	m := make(map[string]struct{}, len(canonicalOrder)+len(aliases))
	for _, name := range canonicalOrder {
		if name == miscSlot {
			continue
		}
		m[NormalizeName(name)] = struct{}{}
	}
	for from, to := range aliases {
		m[NormalizeName(from)] = struct{}{}
		m[NormalizeName(to)] = struct{}{}
	}
	return m
}()

// IsCatalogName reports whether a normalized name belongs to the
// canonical catalog (directly or via an alias).
func IsCatalogName(name string) bool {
	_, ok := catalogNames[NormalizeName(name)]
	return ok
}
