package controls

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Form lays controls out top to bottom. Focus counts focusable controls
// only; consecutive buttons share one row.
type Form struct {
	Controls []Control
	Focus    int
	Width    int
}

// Focusables returns the number of controls that take focus.
func (f Form) Focusables() int {
	n := 0
	for _, c := range f.Controls {
		if c.Focusable() {
			n++
		}
	}
	return n
}

// Move returns the focus index delta steps away, wrapping at both ends.
func (f Form) Move(delta int) int {
	n := f.Focusables()
	if n == 0 {
		return 0
	}
	return ((f.Focus+delta)%n + n) % n
}

// Focused returns the focused control, or nil.
func (f Form) Focused() Control {
	i := 0
	for _, c := range f.Controls {
		if !c.Focusable() {
			continue
		}
		if i == f.Focus {
			return c
		}
		i++
	}
	return nil
}

// HandleKey forwards msg to the focused control.
func (f Form) HandleKey(msg tea.KeyMsg) bool {
	c := f.Focused()
	if c == nil {
		return false
	}
	return c.HandleKey(msg)
}

// buttonGap separates buttons sharing a row.
const buttonGap = "  "

type formCell struct {
	control Control
	focus   int // focus index, -1 for static controls
	view    string
}

// rows renders every control and groups consecutive buttons into one row.
func (f Form) rows() [][]formCell {
	var rows [][]formCell
	var buttons []formCell
	flush := func() {
		if len(buttons) > 0 {
			rows = append(rows, buttons)
			buttons = nil
		}
	}

	focus := 0
	for _, c := range f.Controls {
		cell := formCell{control: c, focus: -1}
		if c.Focusable() {
			cell.focus = focus
			focus++
		}
		cell.view = c.View(cell.focus >= 0 && cell.focus == f.Focus, f.Width)
		if _, ok := c.(Button); ok {
			buttons = append(buttons, cell)
			continue
		}
		flush()
		rows = append(rows, []formCell{cell})
	}
	flush()
	return rows
}

func (f Form) View() string {
	rows := f.rows()
	out := make([]string, 0, len(rows))
	for _, row := range rows {
		views := make([]string, 0, 2*len(row))
		for i, cell := range row {
			if i > 0 {
				views = append(views, buttonGap)
			}
			views = append(views, cell.view)
		}
		out = append(out, lipgloss.JoinHorizontal(lipgloss.Top, views...))
	}
	return strings.Join(out, "\n\n")
}

// Click routes a mouse press at (x, y), relative to the form's top-left
// corner, to the control under it. It returns the focus index of that
// control and whether one was hit; static controls and gaps are misses.
func (f Form) Click(x, y int) (int, bool) {
	top := 0
	for _, row := range f.rows() {
		h := 0
		for _, cell := range row {
			h = max(h, lipgloss.Height(cell.view))
		}
		if y >= top && y < top+h {
			left := 0
			for _, cell := range row {
				w := lipgloss.Width(cell.view)
				if x >= left && x < left+w {
					if cell.focus < 0 {
						return f.Focus, false
					}
					cell.control.Click(x-left, y-top)
					return cell.focus, true
				}
				left += w + lipgloss.Width(buttonGap)
			}
			return f.Focus, false
		}
		top += h + 1 // blank line between rows
	}
	return f.Focus, false
}
