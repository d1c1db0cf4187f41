package main

import (
	"regexp"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/glamour/ansi"
	"github.com/charmbracelet/glamour/styles"
	"github.com/charmbracelet/lipgloss"

	"github.com/zam-dot/articlestyle/internal/applier"
)

var headingLine = regexp.MustCompile(`(?m)^(#{1,6} )(.+)$`)

// renderArticle renders a with the committed theme. Glamour does the
// markdown layout; if it fails the article is shown as styled plain text.
func renderArticle(a article, theme applier.Theme, noColor bool) string {
	md := "# " + a.Title + "\n\n" + a.Markdown
	if theme.Headings == applier.HeadingUpper {
		md = headingLine.ReplaceAllStringFunc(md, strings.ToUpper)
	}

	styled, err := renderWithStyle(md, theme, noColor)
	if err != nil {
		return renderPlain(a, theme)
	}
	return lipgloss.NewStyle().
		Background(theme.Background).
		Width(theme.Width).
		Render(strings.Trim(styled, "\n"))
}

// renderWithStyle runs glamour with a style config derived from theme
func renderWithStyle(md string, theme applier.Theme, noColor bool) (string, error) {
	cfg := articleStyleConfig(theme, noColor)
	r, err := glamour.NewTermRenderer(
		glamour.WithStyles(cfg),
		glamour.WithWordWrap(max(theme.Width-2*theme.Scale, 10)),
	)
	if err != nil {
		return "", err
	}
	return r.Render(md)
}

func articleStyleConfig(theme applier.Theme, noColor bool) ansi.StyleConfig {
	if noColor {
		return styles.NoTTYStyleConfig
	}

	cfg := styles.DarkStyleConfig
	fg := string(theme.Foreground)
	bg := string(theme.Background)
	margin := uint(theme.Scale)

	cfg.Document.Color = &fg
	cfg.Document.BackgroundColor = &bg
	cfg.Document.Margin = &margin
	if theme.Scale > 1 {
		cfg.Document.Bold = boolPtr(true)
	}

	cfg.Heading.Color = &fg
	cfg.Heading.BackgroundColor = &bg
	cfg.H1.Color = &fg
	cfg.H1.BackgroundColor = &bg
	if theme.Headings == applier.HeadingItalic {
		cfg.Heading.Italic = boolPtr(true)
		cfg.H1.Italic = boolPtr(true)
	}

	cfg.BlockQuote.Color = &fg
	return cfg
}

// renderPlain is the glamour-free fallback
func renderPlain(a article, theme applier.Theme) string {
	var b strings.Builder
	b.WriteString(theme.Heading().Render(a.Title))
	b.WriteString("\n\n")
	for _, para := range strings.Split(strings.TrimSpace(a.Markdown), "\n\n") {
		if m := headingLine.FindStringSubmatch(para); m != nil {
			b.WriteString(theme.Heading().Render(m[2]))
		} else {
			b.WriteString(theme.Body().Render(strings.Join(strings.Fields(para), " ")))
		}
		b.WriteString("\n\n")
	}
	return b.String()
}

func boolPtr(b bool) *bool { return &b }
