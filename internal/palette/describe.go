package palette

import (
	"fmt"
	"strings"

	"golang.org/x/text/unicode/runenames"
)

// Describe names every rune of text, joined with " + ".
func Describe(text string) string {
	names := make([]string, 0, len(text))
	for _, r := range text {
		name := runenames.Name(r)
		if name == "" {
			name = fmt.Sprintf("U+%04X", r)
		}
		names = append(names, name)
	}
	return strings.Join(names, " + ")
}

// CodePoints formats text as space separated U+XXXX values.
func CodePoints(text string) string {
	points := make([]string, 0, len(text))
	for _, r := range text {
		points = append(points, fmt.Sprintf("U+%04X", r))
	}
	return strings.Join(points, " ")
}
