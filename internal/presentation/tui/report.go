// Package tui renders terminal output for the report command: a
// markdown summary of an element's entry set and computed stability
// domains, drawn with glamour.
package tui

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/glamour"
	"golang.org/x/term"

	"github.com/elchem/pourbaix/pkg/domain"
)

// BuildReport assembles the markdown summary for one element system.
func BuildReport(symbols []string, d *domain.Diagram) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# Pourbaix report: %s\n\n", strings.Join(symbols, "-"))
	fmt.Fprintf(&b, "Window pH %.1f to %.1f, E %.1f to %.1f V vs SHE. %d candidate species, %d stable.\n\n",
		d.Limits.PHMin, d.Limits.PHMax, d.Limits.EMin, d.Limits.EMax, len(d.Entries), len(d.Domains))

	b.WriteString("## Stable domains\n\n")
	b.WriteString("| Species | Share | Centroid (pH, E) |\n")
	b.WriteString("|---------|-------|------------------|\n")
	total := float64(d.PHSteps * d.ESteps)
	for _, dom := range d.Domains {
		fmt.Fprintf(&b, "| %s | %.1f%% | (%.1f, %.2f V) |\n",
			dom.Label, 100*float64(dom.Cells)/total, dom.CentroidPH, dom.CentroidE)
	}

	b.WriteString("\n## Landmark conditions\n\n")
	landmarks := []struct {
		name  string
		pH, v float64
	}{
		{"acidic, oxidizing", d.Limits.PHMin + 1, 1.0},
		{"neutral, open circuit", domain.NeutralPH, 0},
		{"alkaline, reducing", d.Limits.PHMax - 1, -1.0},
	}
	for _, lm := range landmarks {
		if e, ok := d.StableAt(lm.pH, lm.v); ok {
			fmt.Fprintf(&b, "- %s (pH %.0f, %+.1f V): **%s**\n", lm.name, lm.pH, lm.v, e.Label())
		}
	}

	b.WriteString("\n## Candidate species\n\n")
	b.WriteString("| Species | Phase | dG (eV) | Charge |\n")
	b.WriteString("|---------|-------|---------|--------|\n")
	for _, e := range d.Entries {
		fmt.Fprintf(&b, "| %s | %s | %.2f | %+.0f |\n", e.Label(), e.Phase, e.Energy, e.Charge)
	}

	return b.String()
}

// Render draws markdown for the current terminal. It falls back to the
// raw markdown when a styled renderer cannot be built.
func Render(markdown string) string {
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(terminalWidth()),
	)
	if err != nil {
		return markdown
	}
	out, err := r.Render(markdown)
	if err != nil {
		return markdown
	}
	return out
}

// terminalWidth returns the stdout width, or a conventional default
// when stdout is not a terminal.
func terminalWidth() int {
	if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 20 {
		if w > 120 {
			return 120
		}
		return w
	}
	return 80
}
