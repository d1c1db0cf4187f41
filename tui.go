package main

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/zam-dot/articlestyle/internal/applier"
	"github.com/zam-dot/articlestyle/internal/controls"
	"github.com/zam-dot/articlestyle/internal/options"
	"github.com/zam-dot/articlestyle/internal/panel"
	"github.com/zam-dot/articlestyle/internal/watcher"
)

// For mocking in tests
var writeClipboard = clipboard.WriteAll

// ============================================================================
// MESSAGE TYPES FOR ASYNC OPERATIONS
// ============================================================================

// articleLoadedMsg is sent when the article source has been read and parsed
type articleLoadedMsg struct {
	article article
}

// errorMsg is sent when the article fails to load
type errorMsg struct {
	err    error
	source string
}

// ============================================================================
// MAIN APPLICATION MODEL
// ============================================================================

// Screen layout: one header row, the body, then the status row (or the
// full help while it is shown).
const (
	headerHeight = 1
	arrowWidth   = 5 // " > " plus padding
)

// model owns the committed article style. The panel controller edits a
// draft and hands it back through setArticleState.
type model struct {
	cfg    Config
	logger *slog.Logger
	keys   keyMap
	help   help.Model

	viewport viewport.Model
	ready    bool
	width    int
	height   int

	doc       *watcher.Document
	panel     *panel.Controller
	committed options.ArticleState
	focus     int // focused control in the panel form

	source  string
	article article
	loading bool
	loadErr error
	status  string
}

func newModel(cfg Config, source string, logger *slog.Logger) *model {
	if logger == nil {
		logger = slog.Default()
	}
	m := &model{
		cfg:       cfg,
		logger:    logger,
		keys:      defaultKeyMap(),
		help:      help.New(),
		doc:       watcher.NewDocument(),
		committed: options.DefaultState(),
		source:    source,
		loading:   true,
	}
	m.keys.setPanelOpen(false)
	m.panel = panel.New(m.setArticleState, m.doc, m.committed)
	m.panel.SetLogger(logger.With("component", "panel"))
	return m
}

// setArticleState is the commit callback handed to the panel controller.
func (m *model) setArticleState(s options.ArticleState) {
	m.committed = s
	m.refreshArticle()
}

func (m *model) Init() tea.Cmd {
	return loadArticleCmd(m.source, m.cfg)
}

func loadArticleCmd(source string, cfg Config) tea.Cmd {
	return func() tea.Msg {
		a, err := loadArticle(context.Background(), source, cfg)
		if err != nil {
			return errorMsg{err: err, source: source}
		}
		return articleLoadedMsg{article: a}
	}
}

// ============================================================================
// LAYOUT
// ============================================================================

func (m *model) footerHeight() int {
	if m.help.ShowAll {
		return lipgloss.Height(m.help.View(m.keys))
	}
	return 1
}

func (m *model) bodyHeight() int {
	return max(m.height-headerHeight-m.footerHeight(), 1)
}

// panelWidth leaves the article at least 10 columns when it can, never goes
// below 24 unless the terminal itself is narrower, and always leaves one
// column for the article.
func (m *model) panelWidth() int {
	w := max(min(m.cfg.PanelWidth, m.width-10), 24)
	return max(min(w, m.width-1), 0)
}

// articleWidth is the viewport width for the current panel state.
func (m *model) articleWidth() int {
	if !m.panel.IsOpen() {
		return max(m.width, 1)
	}
	return max(m.width-m.panelWidth(), 1)
}

// panelOrigin is the screen position of the form's top-left corner.
func (m *model) panelOrigin() (x, y int) {
	return panelStyle.GetBorderLeftSize() + panelStyle.GetPaddingLeft(),
		headerHeight + panelStyle.GetBorderTopSize() + panelStyle.GetPaddingTop()
}

func (m *model) arrowRect() watcher.Rect {
	return watcher.Rect{X: 0, Y: 0, Width: arrowWidth, Height: headerHeight}
}

// region is the boundary of the panel: the toggle button plus the panel.
func (m *model) region() watcher.Region {
	return watcher.Regions{
		m.arrowRect(),
		watcher.Rect{X: 0, Y: headerHeight, Width: m.panelWidth(), Height: m.bodyHeight()},
	}
}

// layout resizes the viewport for the current panel state and refreshes the
// watcher's boundary.
func (m *model) layout() {
	m.help.Width = max(m.width-statusStyle.GetHorizontalFrameSize(), 0)
	m.keys.setPanelOpen(m.panel.IsOpen())

	articleWidth := m.articleWidth()
	if !m.ready {
		m.viewport = viewport.New(articleWidth, m.bodyHeight())
		m.viewport.YPosition = headerHeight
		m.ready = true
	} else {
		m.viewport.Width = articleWidth
		m.viewport.Height = m.bodyHeight()
	}
	m.panel.SetRegion(m.region())
	m.refreshArticle()
}

// refreshArticle re-renders the article with the committed style.
func (m *model) refreshArticle() {
	if !m.ready {
		return
	}
	switch {
	case m.loadErr != nil:
		m.viewport.SetContent(errorStyle.Render(fmt.Sprintf("❌ Error loading %s: %v", m.source, m.loadErr)))
	case m.loading:
		m.viewport.SetContent("🔄 Loading...")
	default:
		theme := applier.NewTheme(m.committed, m.viewport.Width)
		m.viewport.SetContent(renderArticle(m.article, theme, m.cfg.NoColor))
	}
}

// ============================================================================
// PANEL FORM
// ============================================================================

// form builds the panel controls from the current draft. It is rebuilt on
// every update so controls always show the latest draft values.
func (m *model) form() controls.Form {
	d := m.panel.Draft()
	f := controls.Form{
		Controls: []controls.Control{
			controls.Text{Content: "Set parameters", Uppercase: true},
			controls.Select{
				Title:    options.FieldFontFamily.Label(),
				Options:  options.FontFamilies,
				Selected: d.FontFamily,
				OnChange: m.panel.OnChange(options.FieldFontFamily),
			},
			controls.RadioGroup{
				Name:     "fontSizeOptions",
				Title:    options.FieldFontSize.Label(),
				Options:  options.FontSizes,
				Selected: d.FontSize,
				OnChange: m.panel.OnChange(options.FieldFontSize),
			},
			controls.Select{
				Title:    options.FieldFontColor.Label(),
				Options:  options.FontColors,
				Selected: d.FontColor,
				OnChange: m.panel.OnChange(options.FieldFontColor),
			},
			controls.Separator{},
			controls.Select{
				Title:    options.FieldBackgroundColor.Label(),
				Options:  options.BackgroundColors,
				Selected: d.BackgroundColor,
				OnChange: m.panel.OnChange(options.FieldBackgroundColor),
			},
			controls.Select{
				Title:    options.FieldContentWidth.Label(),
				Options:  options.ContentWidths,
				Selected: d.ContentWidth,
				OnChange: m.panel.OnChange(options.FieldContentWidth),
			},
			controls.Button{Title: "Reset", Kind: controls.ButtonClear, OnClick: m.reset},
			controls.Button{Title: "Apply", Kind: controls.ButtonApply, OnClick: m.submit},
		},
		Width: max(m.panelWidth()-panelStyle.GetHorizontalFrameSize(), 1),
	}
	f.Focus = min(max(m.focus, 0), max(f.Focusables()-1, 0))
	return f
}

func (m *model) submit() {
	m.panel.Submit()
	m.status = "Style applied"
}

func (m *model) reset() {
	m.panel.Reset()
	m.status = "Style reset to defaults"
}

func (m *model) copyCSS() {
	if err := writeClipboard(applier.CSS(m.committed)); err != nil {
		m.logger.Warn("clipboard write failed", "error", err)
		m.status = "Copy failed: " + err.Error()
		return
	}
	m.status = "Copied style variables"
}

// ============================================================================
// RENDERING THE USER INTERFACE
// ============================================================================

func (m *model) View() string {
	if !m.ready {
		return "\n  Initializing..."
	}

	body := m.viewport.View()
	if m.panel.IsOpen() {
		body = lipgloss.JoinHorizontal(lipgloss.Top, m.renderPanel(), body)
	}

	view := lipgloss.JoinVertical(
		lipgloss.Left,
		m.renderHeader(),
		lipgloss.NewStyle().Height(m.bodyHeight()).MaxHeight(m.bodyHeight()).Render(body),
		m.renderStatus(),
	)
	// Mouse hit-testing assumes the view fills the screen exactly
	return lipgloss.NewStyle().MaxWidth(max(m.width, 1)).MaxHeight(max(m.height, 1)).Render(view)
}

func (m *model) renderHeader() string {
	arrow := arrowStyle.Render(">")
	if m.panel.IsOpen() {
		arrow = arrowOpenStyle.Render("<")
	}
	title := m.article.Title
	if m.loading {
		title = "Loading " + m.source
	}
	return lipgloss.JoinHorizontal(lipgloss.Top,
		lipgloss.NewStyle().Width(arrowWidth).Render(arrow),
		headerStyle.MaxWidth(max(m.width-arrowWidth, 1)).MaxHeight(headerHeight).Render(title),
	)
}

func (m *model) renderPanel() string {
	var b strings.Builder
	b.WriteString(m.form().View())

	if pending := applier.Diff(m.committed, m.panel.Draft()); pending != "" {
		b.WriteString("\n\n")
		b.WriteString(pendingTitleStyle.Render("pending (ctrl+s to apply)"))
		b.WriteString("\n")
		b.WriteString(strings.TrimRight(pending, "\n"))
	}

	h := m.bodyHeight() - panelStyle.GetVerticalBorderSize()
	return panelStyle.
		Width(max(m.panelWidth()-panelStyle.GetHorizontalBorderSize(), 1)).
		Height(max(h, 1)).
		MaxHeight(m.bodyHeight()).
		Render(b.String())
}

func (m *model) renderStatus() string {
	text := m.help.View(m.keys)
	if m.status != "" && !m.help.ShowAll {
		text = m.status + " • " + text
	}
	// Truncate instead of letting the style wrap: every row is accounted for
	lines := strings.Split(text, "\n")
	for i, l := range lines {
		lines[i] = ansi.Truncate(l, m.help.Width, "…")
	}
	return statusStyle.Width(m.width).
		MaxWidth(m.width).
		MaxHeight(m.footerHeight()).
		Render(strings.Join(lines, "\n"))
}
