// Package options holds the fixed catalog of article style choices and the
// ArticleState record built from them.
package options

import (
	"errors"
	"fmt"
	"strings"
)

// Option is one selectable value of a style dimension.
type Option struct {
	Title     string // Shown in controls
	Value     string // Applied as the style variable value
	ClassName string // Optional, only font families carry one
}

// Field names one of the five style dimensions of an ArticleState.
type Field int

const (
	FieldFontFamily Field = iota
	FieldFontSize
	FieldFontColor
	FieldBackgroundColor
	FieldContentWidth
)

var (
	// ErrUnknownOption is returned when a value is not part of a dimension's catalog.
	ErrUnknownOption = errors.New("unknown style option")
	// ErrUnknownField is returned when a field name cannot be parsed.
	ErrUnknownField = errors.New("unknown style field")
)

var fieldNames = [...]string{
	FieldFontFamily:      "fontFamily",
	FieldFontSize:        "fontSize",
	FieldFontColor:       "fontColor",
	FieldBackgroundColor: "backgroundColor",
	FieldContentWidth:    "contentWidth",
}

// Fields returns all dimensions in form order.
func Fields() []Field {
	return []Field{FieldFontFamily, FieldFontSize, FieldFontColor, FieldBackgroundColor, FieldContentWidth}
}

func (f Field) String() string {
	if f < 0 || int(f) >= len(fieldNames) {
		return fmt.Sprintf("Field(%d)", int(f))
	}
	return fieldNames[f]
}

// Label is the form title of the dimension.
func (f Field) Label() string {
	switch f {
	case FieldFontFamily:
		return "font"
	case FieldFontSize:
		return "font size"
	case FieldFontColor:
		return "font color"
	case FieldBackgroundColor:
		return "background color"
	case FieldContentWidth:
		return "content width"
	}
	return f.String()
}

// ParseField maps a field name (fontSize, font-size, font_size) to a Field.
func ParseField(name string) (Field, error) {
	norm := strings.NewReplacer("-", "", "_", "").Replace(strings.ToLower(strings.TrimSpace(name)))
	for i, n := range fieldNames {
		if strings.ToLower(n) == norm {
			return Field(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownField, name)
}

var (
	FontFamilies = []Option{
		{Title: "Open Sans", Value: "Open Sans", ClassName: "open-sans"},
		{Title: "Ubuntu", Value: "Ubuntu", ClassName: "ubuntu"},
		{Title: "Cormorant Garamond", Value: "Cormorant Garamond", ClassName: "cormorant-garamond"},
		{Title: "Days One", Value: "Days One", ClassName: "days-one"},
		{Title: "Merriweather", Value: "Merriweather", ClassName: "merriweather"},
	}

	FontSizes = []Option{
		{Title: "18px", Value: "18px"},
		{Title: "24px", Value: "24px"},
		{Title: "38px", Value: "38px"},
	}

	FontColors = []Option{
		{Title: "Black", Value: "#000000"},
		{Title: "White", Value: "#FFFFFF"},
		{Title: "Gray", Value: "#C4C4C4"},
		{Title: "Pink", Value: "#FEAFE8"},
		{Title: "Fuchsia", Value: "#FD24AF"},
		{Title: "Yellow", Value: "#FFC802"},
		{Title: "Green", Value: "#80D994"},
		{Title: "Blue", Value: "#6FC1FD"},
		{Title: "Purple", Value: "#5F00D0"},
	}

	BackgroundColors = []Option{
		{Title: "White", Value: "#FFFFFF"},
		{Title: "Black", Value: "#000000"},
		{Title: "Gray", Value: "#C4C4C4"},
		{Title: "Pink", Value: "#FEAFE8"},
		{Title: "Fuchsia", Value: "#FD24AF"},
		{Title: "Yellow", Value: "#FFC802"},
		{Title: "Green", Value: "#80D994"},
		{Title: "Blue", Value: "#6FC1FD"},
		{Title: "Purple", Value: "#5F00D0"},
	}

	ContentWidths = []Option{
		{Title: "Wide", Value: "1394px"},
		{Title: "Narrow", Value: "948px"},
	}
)

// Catalog returns the option list of a dimension. Callers must not modify it.
func Catalog(f Field) []Option {
	switch f {
	case FieldFontFamily:
		return FontFamilies
	case FieldFontSize:
		return FontSizes
	case FieldFontColor:
		return FontColors
	case FieldBackgroundColor:
		return BackgroundColors
	case FieldContentWidth:
		return ContentWidths
	}
	return nil
}

// Lookup finds the option of a dimension by value or, failing that, by title.
func Lookup(f Field, value string) (Option, error) {
	for _, o := range Catalog(f) {
		if strings.EqualFold(o.Value, value) {
			return o, nil
		}
	}
	for _, o := range Catalog(f) {
		if strings.EqualFold(o.Title, value) {
			return o, nil
		}
	}
	return Option{}, fmt.Errorf("%w: %s=%q", ErrUnknownOption, f, value)
}

// Index returns the catalog position of o, or -1.
func Index(f Field, o Option) int {
	for i, c := range Catalog(f) {
		if c == o {
			return i
		}
	}
	return -1
}

// ArticleState is one value per style dimension. It serves as both the
// committed state applied to the article and the draft edited in the panel.
type ArticleState struct {
	FontFamily      Option
	FontSize        Option
	FontColor       Option
	BackgroundColor Option
	ContentWidth    Option
}

// DefaultState returns the designated default selection.
func DefaultState() ArticleState {
	return ArticleState{
		FontFamily:      FontFamilies[0],
		FontSize:        FontSizes[0],
		FontColor:       FontColors[0],
		BackgroundColor: BackgroundColors[0],
		ContentWidth:    ContentWidths[0],
	}
}

// Get returns the option held for f.
func (s ArticleState) Get(f Field) Option {
	switch f {
	case FieldFontFamily:
		return s.FontFamily
	case FieldFontSize:
		return s.FontSize
	case FieldFontColor:
		return s.FontColor
	case FieldBackgroundColor:
		return s.BackgroundColor
	case FieldContentWidth:
		return s.ContentWidth
	}
	return Option{}
}

// With returns a copy of s with only f replaced.
func (s ArticleState) With(f Field, o Option) ArticleState {
	switch f {
	case FieldFontFamily:
		s.FontFamily = o
	case FieldFontSize:
		s.FontSize = o
	case FieldFontColor:
		s.FontColor = o
	case FieldBackgroundColor:
		s.BackgroundColor = o
	case FieldContentWidth:
		s.ContentWidth = o
	}
	return s
}

// Validate reports the first field whose option is not in its catalog.
func (s ArticleState) Validate() error {
	for _, f := range Fields() {
		if Index(f, s.Get(f)) < 0 {
			return fmt.Errorf("%w: %s=%q", ErrUnknownOption, f, s.Get(f).Value)
		}
	}
	return nil
}
