package table

// align.go — column alignment: the tagged variant, keyword parsing, and the
// classification of separator-row cells (":---", "---:", ":---:").

import (
	"regexp"
	"strings"
)

// Alignment is a column's text alignment within a markdown table.
type Alignment int

const (
	Left Alignment = iota
	Center
	Right
)

func (a Alignment) String() string {
	switch a {
	case Center:
		return "center"
	case Right:
		return "right"
	}
	return "left"
}

// ParseAlignment matches a keyword case-insensitively against "left",
// "right", and "center". Any other value, including the empty string,
// yields fallback.
func ParseAlignment(s string, fallback Alignment) Alignment {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "left":
		return Left
	case "right":
		return Right
	case "center":
		return Center
	}
	return fallback
}

// Separator-cell patterns, in precedence order. A cell matching none of them
// (missing colons, malformed markers) means Left.
var (
	sepCenter = regexp.MustCompile(`^:-+:$`)
	sepLeft   = regexp.MustCompile(`^:-+$`)
	sepRight  = regexp.MustCompile(`^-+:$`)
)

// classifySeparator maps one separator-row cell to the Alignment it encodes.
func classifySeparator(cell string) Alignment {
	switch {
	case sepCenter.MatchString(cell):
		return Center
	case sepLeft.MatchString(cell):
		return Left
	case sepRight.MatchString(cell):
		return Right
	}
	return Left
}

// marker renders a separator cell of exactly width characters for the given
// alignment. Width 1 degenerates to a single edge character.
func marker(a Alignment, width int) string {
	if width < 1 {
		width = 1
	}
	switch a {
	case Center:
		if width < 2 {
			return ":"
		}
		return ":" + strings.Repeat("-", width-2) + ":"
	case Right:
		return strings.Repeat("-", width-1) + ":"
	default:
		return ":" + strings.Repeat("-", width-1)
	}
}
