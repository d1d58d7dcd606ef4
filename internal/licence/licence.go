// Package licence holds the stock licence text injected into prologues
// that lack one.
package licence

import (
	"strings"

	"github.com/muesli/reflow/wordwrap"
)

// WrapWidth matches the copyright section's wrap column.
const WrapWidth = 66

var paragraphs = []string{
	"This program is free software; you can redistribute it and/or " +
		"modify it under the terms of the GNU General Public License as " +
		"published by the Free Software Foundation; either version 2 of " +
		"the License, or (at your option) any later version.",
	"This program is distributed in the hope that it will be " +
		"useful, but WITHOUT ANY WARRANTY; without even the implied " +
		"warranty of MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. " +
		"See the GNU General Public License for more details.",
	"You should have received a copy of the GNU General Public " +
		"License along with this program; if not, write to the Free " +
		"Software Foundation, Inc., 51 Franklin Street, Fifth Floor, " +
		"Boston, MA 02110-1301, USA.",
}

// Lines returns the standard GPL notice wrapped for section storage,
// with a blank line between paragraphs.
func Lines() []string {
	var lines []string
	for i, paragraph := range paragraphs {
		if i > 0 {
			lines = append(lines, "")
		}
		wrapped := wordwrap.String(strings.Join(strings.Fields(paragraph), " "), WrapWidth)
		lines = append(lines, strings.Split(wrapped, "\n")...)
	}
	return lines
}
