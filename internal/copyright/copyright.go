// Package copyright builds the Copyright section text from the years a
// file was touched, attributing each year to the research council that
// funded Starlink at the time.
package copyright

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/muesli/reflow/wordwrap"
)

// WrapWidth is the column the assembled text is wrapped to.
const WrapWidth = 66

// FundingBody attributes an inclusive year range to a copyright holder.
// A zero From or To leaves that end of the range open.
type FundingBody struct {
	Label string
	From  int
	To    int
}

// DefaultBodies is the historical funding sequence.
var DefaultBodies = []FundingBody{
	{Label: "Science & Engineering Research Council", To: 1994},
	{Label: "Central Laboratory of the Research Councils", From: 1995, To: 2004},
	{Label: "Particle Physics & Astronomy Research Council", From: 2005, To: 2006},
	{Label: "Science and Technology Facilities Council", From: 2007},
}

func (b FundingBody) contains(year int) bool {
	if b.From != 0 && year < b.From {
		return false
	}
	if b.To != 0 && year > b.To {
		return false
	}
	return true
}

// CompressRanges folds a strictly increasing sequence of years into
// range strings: consecutive runs become "start-end", isolated years
// stand alone. Unsorted or duplicated input is a caller error and is
// not handled.
func CompressRanges(years []int) []string {
	if len(years) == 0 {
		return nil
	}
	var ranges []string
	start, end := years[0], years[0]
	flush := func() {
		if start == end {
			ranges = append(ranges, strconv.Itoa(start))
		} else {
			ranges = append(ranges, fmt.Sprintf("%d-%d", start, end))
		}
	}
	for _, year := range years[1:] {
		if year == end+1 {
			end = year
			continue
		}
		flush()
		start, end = year, year
	}
	flush()
	return ranges
}

// Assemble produces the wrapped Copyright text for a sorted sequence of
// distinct years. When override is non-empty it replaces the generated
// attribution entirely (still collapsed and wrapped). With no years and
// no override the result is empty; the assembler never invents a year.
func Assemble(years []int, bodies []FundingBody, override string) string {
	if override != "" {
		return wrap(override)
	}
	if len(bodies) == 0 {
		bodies = DefaultBodies
	}

	var sentences []string
	for _, body := range bodies {
		var bucket []int
		for _, year := range years {
			if body.contains(year) {
				bucket = append(bucket, year)
			}
		}
		if len(bucket) == 0 {
			continue
		}
		sentences = append(sentences,
			fmt.Sprintf("Copyright (C) %s %s.", strings.Join(CompressRanges(bucket), ","), body.Label))
	}
	if len(sentences) == 0 {
		return ""
	}
	sentences = append(sentences, "All Rights Reserved.")
	return wrap(strings.Join(sentences, " "))
}

// Lines is Assemble split into lines for storage as section content.
func Lines(years []int, bodies []FundingBody, override string) []string {
	text := Assemble(years, bodies, override)
	if text == "" {
		return nil
	}
	return strings.Split(text, "\n")
}

func wrap(text string) string {
	collapsed := strings.Join(strings.Fields(text), " ")
	return wordwrap.String(collapsed, WrapWidth)
}
