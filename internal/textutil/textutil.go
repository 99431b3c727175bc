// Package textutil provides small display-width-aware text helpers shared by
// the line readers, mainly for laying out completion candidates.
package textutil

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// columnGap is the number of spaces between columns in a listing.
const columnGap = 2

// Columns lays cells out in rows of equal-width columns that fit within
// width display columns. It is display-width-aware, so CJK characters and
// emoji that occupy two columns stay aligned. A non-positive width yields
// one cell per line.
func Columns(cells []string, width int) []string {
	if len(cells) == 0 {
		return nil
	}

	cellWidth := 0
	for _, c := range cells {
		if w := runewidth.StringWidth(c); w > cellWidth {
			cellWidth = w
		}
	}

	perRow := 1
	if width > 0 && cellWidth > 0 {
		perRow = (width + columnGap) / (cellWidth + columnGap)
		if perRow < 1 {
			perRow = 1
		}
	}

	var lines []string
	for i := 0; i < len(cells); i += perRow {
		end := i + perRow
		if end > len(cells) {
			end = len(cells)
		}
		row := cells[i:end]

		var b strings.Builder
		for j, c := range row {
			b.WriteString(c)
			if j < len(row)-1 {
				b.WriteString(strings.Repeat(" ", cellWidth+columnGap-runewidth.StringWidth(c)))
			}
		}
		lines = append(lines, b.String())
	}
	return lines
}

// CommonPrefix returns the longest prefix, in runes, shared by all strings.
// An empty slice yields the empty string.
func CommonPrefix(ss []string) string {
	if len(ss) == 0 {
		return ""
	}
	prefix := []rune(ss[0])
	for _, s := range ss[1:] {
		runes := []rune(s)
		if len(runes) < len(prefix) {
			prefix = prefix[:len(runes)]
		}
		for i := range prefix {
			if runes[i] != prefix[i] {
				prefix = prefix[:i]
				break
			}
		}
		if len(prefix) == 0 {
			break
		}
	}
	return string(prefix)
}
