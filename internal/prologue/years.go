package prologue

import (
	"regexp"
	"sort"
	"strconv"
)

var (
	fourDigitYear = regexp.MustCompile(`\d{4}`)
	// A date written with two-digit year, e.g. "14.03.99" or "14/03/99".
	shortDate = regexp.MustCompile(`\d{1,2}[./]\d{1,2}[./](\d{2})(?:\D|$)`)
)

// Years mines distinct years out of the History section, one candidate
// per line: the first four-digit run wins, otherwise the trailing
// two-digit year of a dotted or slashed date. Two-digit years above 50
// belong to the 1900s, the rest to the 2000s. Lines without a match
// contribute nothing. The result is sorted ascending.
func (p *Prologue) Years() []int {
	seen := make(map[int]struct{})
	for _, line := range p.Content("History") {
		if m := fourDigitYear.FindString(line); m != "" {
			year, _ := strconv.Atoi(m)
			seen[year] = struct{}{}
			continue
		}
		if m := shortDate.FindStringSubmatch(line); m != nil {
			year, _ := strconv.Atoi(m[1])
			if year > 50 {
				year += 1900
			} else {
				year += 2000
			}
			seen[year] = struct{}{}
		}
	}
	years := make([]int, 0, len(seen))
	for year := range seen {
		years = append(years, year)
	}
	sort.Ints(years)
	return years
}
