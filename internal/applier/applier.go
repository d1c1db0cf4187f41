// Package applier turns a committed article state into named style
// variables and into the terminal styling that stands in for them.
package applier

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/zam-dot/articlestyle/internal/options"
)

// Variable names, in the order they are applied.
const (
	VarFontFamily     = "--font-family"
	VarFontSize       = "--font-size"
	VarFontColor      = "--font-color"
	VarContainerWidth = "--container-width"
	VarBgColor        = "--bg-color"
)

// pxPerColumn converts CSS pixel widths into terminal columns.
const pxPerColumn = 14

// minColumns is the narrowest content width used when the terminal allows it.
const minColumns = 20

// Variable is one named style variable and its value.
type Variable struct {
	Name  string
	Value string
}

// Variables maps the five fields of s to their style variables.
func Variables(s options.ArticleState) []Variable {
	return []Variable{
		{VarFontFamily, s.FontFamily.Value},
		{VarFontSize, s.FontSize.Value},
		{VarFontColor, s.FontColor.Value},
		{VarContainerWidth, s.ContentWidth.Value},
		{VarBgColor, s.BackgroundColor.Value},
	}
}

// CSS renders the variables of s as a :root block.
func CSS(s options.ArticleState) string {
	var b strings.Builder
	b.WriteString(":root {\n")
	for _, v := range Variables(s) {
		fmt.Fprintf(&b, "  %s: %s;\n", v.Name, cssValue(v))
	}
	b.WriteString("}\n")
	return b.String()
}

func cssValue(v Variable) string {
	if v.Name == VarFontFamily {
		return strconv.Quote(v.Value)
	}
	return v.Value
}

// HeadingCase is how headings are set for a font family.
type HeadingCase int

const (
	HeadingPlain HeadingCase = iota
	HeadingItalic
	HeadingUpper
)

// Theme is the terminal rendition of an article state.
type Theme struct {
	Foreground lipgloss.Color
	Background lipgloss.Color
	Width      int // content columns
	Scale      int // 1 for the base size, growing with the font size
	Headings   HeadingCase
	Family     string
}

// NewTheme maps s onto a terminal that is termWidth columns wide.
func NewTheme(s options.ArticleState, termWidth int) Theme {
	return Theme{
		Foreground: lipgloss.Color(s.FontColor.Value),
		Background: lipgloss.Color(s.BackgroundColor.Value),
		Width:      columns(s.ContentWidth.Value, termWidth),
		Scale:      scale(s.FontSize.Value),
		Headings:   headingCase(s.FontFamily.ClassName),
		Family:     s.FontFamily.Title,
	}
}

// Body is the style for article body text.
func (t Theme) Body() lipgloss.Style {
	st := lipgloss.NewStyle().
		Foreground(t.Foreground).
		Background(t.Background).
		Width(t.Width).
		Padding(t.Scale-1, t.Scale)
	if t.Scale > 1 {
		st = st.Bold(true)
	}
	return st
}

// Heading is the style for titles and headings.
func (t Theme) Heading() lipgloss.Style {
	st := lipgloss.NewStyle().
		Foreground(t.Foreground).
		Background(t.Background).
		Bold(true)
	switch t.Headings {
	case HeadingItalic:
		st = st.Italic(true)
	case HeadingUpper:
		st = st.Transform(strings.ToUpper)
	}
	return st
}

func columns(px string, termWidth int) int {
	n, err := strconv.Atoi(strings.TrimSuffix(strings.TrimSpace(px), "px"))
	if err != nil || n <= 0 {
		n = 1394
	}
	cols := n / pxPerColumn
	cols = max(cols, minColumns)
	if termWidth > 0 {
		cols = min(cols, termWidth)
	}
	return cols
}

func scale(size string) int {
	n, err := strconv.Atoi(strings.TrimSuffix(strings.TrimSpace(size), "px"))
	switch {
	case err != nil, n < 24:
		return 1
	case n < 38:
		return 2
	default:
		return 3
	}
}

func headingCase(class string) HeadingCase {
	switch class {
	case "cormorant-garamond", "merriweather":
		return HeadingItalic
	case "days-one":
		return HeadingUpper
	}
	return HeadingPlain
}
