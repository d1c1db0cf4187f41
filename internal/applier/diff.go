package applier

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	dmp "github.com/sergi/go-diff/diffmatchpatch"

	"github.com/zam-dot/articlestyle/internal/options"
)

var (
	diffDelLine = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "160", Dark: "203"})
	diffAddLine = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "28", Dark: "114"})
)

// Diff lists the variables that would change if draft were submitted over
// committed, one "- old" / "+ new" pair per variable. It returns "" when
// there is nothing pending.
func Diff(committed, draft options.ArticleState) string {
	before, after := variableLines(committed), variableLines(draft)
	if before == after {
		return ""
	}

	d := dmp.New()
	a, b, lines := d.DiffLinesToChars(before, after)
	diffs := d.DiffCharsToLines(d.DiffMain(a, b, false), lines)

	var sb strings.Builder
	for _, df := range diffs {
		for _, l := range strings.Split(strings.TrimSuffix(df.Text, "\n"), "\n") {
			switch df.Type {
			case dmp.DiffDelete:
				sb.WriteString(diffDelLine.Render("- "+l) + "\n")
			case dmp.DiffInsert:
				sb.WriteString(diffAddLine.Render("+ "+l) + "\n")
			}
		}
	}
	return sb.String()
}

func variableLines(s options.ArticleState) string {
	var sb strings.Builder
	for _, v := range Variables(s) {
		sb.WriteString(v.Name + ": " + v.Value + "\n")
	}
	return sb.String()
}
