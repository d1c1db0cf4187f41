// Package controls provides the small form widgets shown in the style panel.
// Each widget renders a selected value and reports user choices through an
// onChange callback; none of them keeps state of its own.
package controls

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/zam-dot/articlestyle/internal/options"
)

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("255"))
	labelStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("246"))
	focusStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true)
	valueStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	selectedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true)
	ruleStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))

	applyButton = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(lipgloss.Color("#000000")).
			Padding(0, 2)
	clearButton = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#000000")).
			Background(lipgloss.Color("#FFFFFF")).
			Padding(0, 2)
)

// Control is one row of the form.
type Control interface {
	// View renders the control at the given width.
	View(focused bool, width int) string
	// Focusable reports whether the control takes keyboard focus.
	Focusable() bool
	// HandleKey reacts to a key while focused and reports whether it was used.
	HandleKey(msg tea.KeyMsg) bool
	// Click reacts to a mouse press at (x, y), relative to the control's
	// top-left corner, and reports whether it changed anything.
	Click(x, y int) bool
}

// valueRow is the line below the label in Select and RadioGroup.
const valueRow = 1

// Select shows the selected option and cycles through the others.
type Select struct {
	Title    string
	Options  []options.Option
	Selected options.Option
	OnChange func(options.Option)
}

func (s Select) Focusable() bool { return true }

func (s Select) HandleKey(msg tea.KeyMsg) bool {
	switch msg.String() {
	case "left", "h":
		s.step(-1)
	case "right", "l", " ":
		s.step(1)
	default:
		return false
	}
	return true
}

func (s Select) step(delta int) {
	if len(s.Options) == 0 || s.OnChange == nil {
		return
	}
	i := indexOf(s.Options, s.Selected)
	if i < 0 {
		i = 0
	} else {
		i = (i + delta + len(s.Options)) % len(s.Options)
	}
	s.OnChange(s.Options[i])
}

// Click on the value row steps back on the left arrow and forward anywhere else.
func (s Select) Click(x, y int) bool {
	if y != valueRow {
		return false
	}
	if x < lipgloss.Width("‹ ") {
		s.step(-1)
	} else {
		s.step(1)
	}
	return true
}

func (s Select) View(focused bool, width int) string {
	label := labelStyle.Render(s.Title)
	value := fmt.Sprintf("‹ %s ›", s.Selected.Title)
	if focused {
		label = focusStyle.Render(s.Title)
		value = focusStyle.Render(value)
	} else {
		value = valueStyle.Render(value)
	}
	return lipgloss.NewStyle().Width(width).Render(label + "\n" + value)
}

// RadioGroup shows every option with the selected one marked.
type RadioGroup struct {
	Name     string
	Title    string
	Options  []options.Option
	Selected options.Option
	OnChange func(options.Option)
}

func (r RadioGroup) Focusable() bool { return true }

func (r RadioGroup) HandleKey(msg tea.KeyMsg) bool {
	i := indexOf(r.Options, r.Selected)
	switch msg.String() {
	case "left", "h":
		i--
	case "right", "l", " ":
		i++
	default:
		return false
	}
	if len(r.Options) == 0 || r.OnChange == nil {
		return true
	}
	i = (i + len(r.Options)) % len(r.Options)
	r.OnChange(r.Options[i])
	return true
}

// Click selects the option whose item is under x.
func (r RadioGroup) Click(x, y int) bool {
	if y != valueRow || r.OnChange == nil {
		return false
	}
	left := 0
	for _, o := range r.Options {
		w := lipgloss.Width(radioItem(o, false))
		if x >= left && x < left+w {
			r.OnChange(o)
			return true
		}
		left += w + lipgloss.Width(radioGap)
	}
	return false
}

func (r RadioGroup) View(focused bool, width int) string {
	label := labelStyle.Render(r.Title)
	if focused {
		label = focusStyle.Render(r.Title)
	}
	items := make([]string, 0, len(r.Options))
	for _, o := range r.Options {
		if o == r.Selected {
			items = append(items, selectedStyle.Render(radioItem(o, true)))
		} else {
			items = append(items, valueStyle.Render(radioItem(o, false)))
		}
	}
	return lipgloss.NewStyle().Width(width).Render(label + "\n" + strings.Join(items, radioGap))
}

const radioGap = "  "

func radioItem(o options.Option, selected bool) string {
	if selected {
		return "(•) " + o.Title
	}
	return "( ) " + o.Title
}

// ButtonKind selects the look of a Button.
type ButtonKind int

const (
	ButtonApply ButtonKind = iota
	ButtonClear
)

// Button fires OnClick on enter or space.
type Button struct {
	Title   string
	Kind    ButtonKind
	OnClick func()
}

func (b Button) Focusable() bool { return true }

func (b Button) HandleKey(msg tea.KeyMsg) bool {
	switch msg.String() {
	case "enter", " ":
		if b.OnClick != nil {
			b.OnClick()
		}
		return true
	}
	return false
}

func (b Button) Click(_, _ int) bool {
	if b.OnClick == nil {
		return false
	}
	b.OnClick()
	return true
}

func (b Button) View(focused bool, width int) string {
	st := applyButton
	if b.Kind == ButtonClear {
		st = clearButton
	}
	if focused {
		st = st.Underline(true).Bold(true)
	}
	return st.Render(strings.ToUpper(b.Title))
}

// Text is a static heading.
type Text struct {
	Content   string
	Uppercase bool
}

func (Text) Focusable() bool           { return false }
func (Text) HandleKey(tea.KeyMsg) bool { return false }
func (Text) Click(_, _ int) bool       { return false }

func (t Text) View(_ bool, width int) string {
	c := t.Content
	if t.Uppercase {
		c = strings.ToUpper(c)
	}
	return titleStyle.Width(width).Render(c)
}

// Separator is a horizontal rule.
type Separator struct{}

func (Separator) Focusable() bool           { return false }
func (Separator) HandleKey(tea.KeyMsg) bool { return false }
func (Separator) Click(_, _ int) bool       { return false }

func (Separator) View(_ bool, width int) string {
	return ruleStyle.Render(strings.Repeat("─", max(width, 1)))
}

func indexOf(opts []options.Option, o options.Option) int {
	for i, c := range opts {
		if c == o {
			return i
		}
	}
	return -1
}
