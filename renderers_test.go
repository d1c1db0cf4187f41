package main

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zam-dot/articlestyle/internal/applier"
	"github.com/zam-dot/articlestyle/internal/options"
)

func themeFor(t *testing.T, family, size string) applier.Theme {
	t.Helper()
	s := options.DefaultState()
	if family != "" {
		o, err := options.Lookup(options.FieldFontFamily, family)
		require.NoError(t, err)
		s = s.With(options.FieldFontFamily, o)
	}
	if size != "" {
		o, err := options.Lookup(options.FieldFontSize, size)
		require.NoError(t, err)
		s = s.With(options.FieldFontSize, o)
	}
	return applier.NewTheme(s, 80)
}

func TestRenderArticle(t *testing.T) {
	out := ansi.Strip(renderArticle(sampleArticle(), themeFor(t, "", ""), false))

	assert.Contains(t, out, "mountain goat")
	assert.Contains(t, out, "Balance first")
	assert.Contains(t, out, "Look before you leap")
}

func TestRenderArticleUppercaseHeadings(t *testing.T) {
	out := ansi.Strip(renderArticle(sampleArticle(), themeFor(t, "Days One", ""), false))

	assert.Contains(t, out, "BALANCE FIRST")
	assert.Contains(t, out, "IS A MOUNTAIN GOAT AN ENGINEER?")
	assert.NotContains(t, out, "Balance first")
}

func TestRenderArticleNoColor(t *testing.T) {
	out := ansi.Strip(renderArticle(sampleArticle(), themeFor(t, "", ""), true))
	assert.Contains(t, out, "Reading the wall")
}

func TestArticleStyleConfig(t *testing.T) {
	theme := themeFor(t, "Merriweather", "38px")
	cfg := articleStyleConfig(theme, false)

	require.NotNil(t, cfg.Document.Color)
	assert.Equal(t, "#000000", *cfg.Document.Color)
	assert.Equal(t, "#FFFFFF", *cfg.Document.BackgroundColor)
	assert.Equal(t, uint(3), *cfg.Document.Margin)
	assert.True(t, *cfg.Document.Bold)
	assert.True(t, *cfg.Heading.Italic)
	assert.Equal(t, "#000000", *cfg.H1.Color)
}

func TestRenderPlain(t *testing.T) {
	out := ansi.Strip(renderPlain(sampleArticle(), themeFor(t, "Days One", "")))

	assert.Contains(t, out, "IS A MOUNTAIN GOAT AN ENGINEER?")
	assert.Contains(t, out, "WHAT WE CAN LEARN")
	assert.True(t, strings.Contains(out, "Mountain goats climb slopes"))
}
