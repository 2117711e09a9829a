// Package report renders key-path differences for the terminal.
package report

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"

	"github.com/dlcarv/keycomp/internal/models"
	"github.com/dlcarv/keycomp/internal/rootmap"
)

const (
	headerOnlyInBase = "Keys present in the base document but missing from the comparison:"
	headerOnlyInCmp  = "Keys present in the comparison document but missing from the base:"
	noDifferences    = "No key differences found. Both JSON documents have the same key paths."

	tagRoot = "[ROOT]"
	tagAll  = "[ALL]"
)

var (
	greenStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	redStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
)

// ColorEnabled reports whether colored output should be used for f.
func ColorEnabled(f *os.File, noColor bool) bool {
	if noColor {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// Reporter writes difference views to a writer. Entries exclusive to the
// base document render green, entries exclusive to the comparison
// document render red; styling is dropped entirely when color is off.
type Reporter struct {
	w     io.Writer
	color bool
}

// New creates a Reporter writing to w.
func New(w io.Writer, color bool) *Reporter {
	return &Reporter{w: w, color: color}
}

func (r *Reporter) paint(s string, style lipgloss.Style) string {
	if !r.color {
		return s
	}
	return style.Render(s)
}

func (r *Reporter) section(header, tag string, paths []string, style lipgloss.Style) {
	fmt.Fprintf(r.w, "\n%s\n", header)
	for _, p := range paths {
		fmt.Fprintln(r.w, r.paint(tag+" "+p, style))
	}
}

// PrintDifferences renders a single view of the comparison: the full
// path list when fullPaths is set, otherwise one entry per duplicated
// root. Prints a notice when there is nothing to report.
func (r *Reporter) PrintDifferences(c models.Comparison, fullPaths bool) {
	if c.Empty() {
		fmt.Fprintln(r.w, noDifferences)
		return
	}

	tag := tagRoot
	if fullPaths {
		tag = tagAll
	}
	if len(c.OnlyInBase) > 0 {
		paths := c.OnlyInBase
		if !fullPaths {
			paths = rootmap.GroupRoots(paths)
		}
		r.section(headerOnlyInBase, tag, paths, greenStyle)
	}
	if len(c.OnlyInCmp) > 0 {
		paths := c.OnlyInCmp
		if !fullPaths {
			paths = rootmap.GroupRoots(paths)
		}
		r.section(headerOnlyInCmp, tag, paths, redStyle)
	}
}

// PrintBothViews renders the grouped and full-path views one after the
// other, each tagged so the lines stay distinguishable when piped.
func (r *Reporter) PrintBothViews(c models.Comparison) {
	if c.Empty() {
		fmt.Fprintln(r.w, noDifferences)
		return
	}

	fmt.Fprintf(r.w, "\n%s — summary by root:\n", tagRoot)
	if grouped := rootmap.GroupRoots(c.OnlyInBase); len(grouped) > 0 {
		r.section(headerOnlyInBase, tagRoot, grouped, greenStyle)
	}
	if grouped := rootmap.GroupRoots(c.OnlyInCmp); len(grouped) > 0 {
		r.section(headerOnlyInCmp, tagRoot, grouped, redStyle)
	}

	fmt.Fprintf(r.w, "\n%s — full list of differing paths:\n", tagAll)
	if len(c.OnlyInBase) > 0 {
		r.section(headerOnlyInBase, tagAll, c.OnlyInBase, greenStyle)
	}
	if len(c.OnlyInCmp) > 0 {
		r.section(headerOnlyInCmp, tagAll, c.OnlyInCmp, redStyle)
	}
}
