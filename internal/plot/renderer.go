// Package plot renders computed diagrams to image files using
// gonum.org/v1/plot: a heatmap of the stability domains, species
// labels at domain centroids, and the conventional water stability
// and neutrality reference lines.
package plot

import (
	"fmt"
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/elchem/pourbaix/pkg/domain"
)

// Renderer implements ports.DiagramRenderer. The output format follows
// the file extension (.png by convention here).
type Renderer struct {
	width        vg.Length
	height       vg.Length
	fontSize     vg.Length
	title        string
	labelDomains bool
	waterLines   bool
	neutralAxes  bool
}

// Option configures the Renderer.
type Option func(*Renderer)

// WithSize sets the canvas size.
func WithSize(width, height vg.Length) Option {
	return func(r *Renderer) {
		r.width, r.height = width, height
	}
}

// WithFontSize sets the size used for axis and domain labels.
func WithFontSize(size vg.Length) Option {
	return func(r *Renderer) {
		r.fontSize = size
	}
}

// WithTitle sets a plot title. Empty means no title.
func WithTitle(title string) Option {
	return func(r *Renderer) {
		r.title = title
	}
}

// WithoutDomainLabels disables the species labels.
func WithoutDomainLabels() Option {
	return func(r *Renderer) {
		r.labelDomains = false
	}
}

// WithoutReferenceLines disables the water stability lines and the
// neutral axes.
func WithoutReferenceLines() Option {
	return func(r *Renderer) {
		r.waterLines = false
		r.neutralAxes = false
	}
}

// New creates a Renderer with conventional defaults.
func New(opts ...Option) *Renderer {
	r := &Renderer{
		width:        7 * vg.Inch,
		height:       6 * vg.Inch,
		fontSize:     vg.Points(12),
		labelDomains: true,
		waterLines:   true,
		neutralAxes:  true,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Render writes the diagram to path.
func (r *Renderer) Render(d *domain.Diagram, path string) error {
	p := plot.New()
	p.Title.Text = r.title
	p.X.Label.Text = "pH"
	p.Y.Label.Text = "E (V vs SHE)"
	p.Title.TextStyle.Font.Size = r.fontSize
	p.X.Label.TextStyle.Font.Size = r.fontSize
	p.Y.Label.TextStyle.Font.Size = r.fontSize
	p.X.Min, p.X.Max = d.Limits.PHMin, d.Limits.PHMax
	p.Y.Min, p.Y.Max = d.Limits.EMin, d.Limits.EMax

	grid := newDomainGrid(d)
	colors := len(d.Domains)
	if colors < 2 {
		colors = 2
	}
	heatmap := plotter.NewHeatMap(grid, palette.Rainbow(colors, palette.Blue, palette.Red, 0.35, 1, 1))
	p.Add(heatmap)

	if r.waterLines {
		if err := r.addWaterLines(p, d.Limits); err != nil {
			return err
		}
	}
	if r.neutralAxes {
		if err := r.addNeutralAxes(p, d.Limits); err != nil {
			return err
		}
	}
	if r.labelDomains {
		if err := r.addDomainLabels(p, d); err != nil {
			return err
		}
	}

	if err := p.Save(r.width, r.height, path); err != nil {
		return fmt.Errorf("render diagram: %w", err)
	}
	return nil
}

// addWaterLines draws the oxygen and hydrogen evolution potentials as
// dashed black lines; between them water itself is stable.
func (r *Renderer) addWaterLines(p *plot.Plot, limits domain.Limits) error {
	for _, line := range []func(float64) float64{domain.OxygenLine, domain.HydrogenLine} {
		pts := plotter.XYs{
			{X: limits.PHMin, Y: line(limits.PHMin)},
			{X: limits.PHMax, Y: line(limits.PHMax)},
		}
		l, err := plotter.NewLine(pts)
		if err != nil {
			return fmt.Errorf("water line: %w", err)
		}
		l.LineStyle.Width = vg.Points(1.5)
		l.LineStyle.Dashes = []vg.Length{vg.Points(6), vg.Points(3)}
		l.LineStyle.Color = color.Black
		p.Add(l)
	}
	return nil
}

// addNeutralAxes draws pH 7 and E 0 as faint dotted guides.
func (r *Renderer) addNeutralAxes(p *plot.Plot, limits domain.Limits) error {
	gray := color.Gray{Y: 80}
	axes := []plotter.XYs{
		{{X: domain.NeutralPH, Y: limits.EMin}, {X: domain.NeutralPH, Y: limits.EMax}},
		{{X: limits.PHMin, Y: 0}, {X: limits.PHMax, Y: 0}},
	}
	for _, pts := range axes {
		l, err := plotter.NewLine(pts)
		if err != nil {
			return fmt.Errorf("neutral axis: %w", err)
		}
		l.LineStyle.Width = vg.Points(0.75)
		l.LineStyle.Dashes = []vg.Length{vg.Points(1.5), vg.Points(3)}
		l.LineStyle.Color = gray
		p.Add(l)
	}
	return nil
}

// addDomainLabels places each species name at its region centroid.
func (r *Renderer) addDomainLabels(p *plot.Plot, d *domain.Diagram) error {
	xys := make(plotter.XYs, len(d.Domains))
	names := make([]string, len(d.Domains))
	for i, dom := range d.Domains {
		xys[i] = plotter.XY{X: dom.CentroidPH, Y: dom.CentroidE}
		names[i] = dom.Label
	}

	labels, err := plotter.NewLabels(plotter.XYLabels{XYs: xys, Labels: names})
	if err != nil {
		return fmt.Errorf("domain labels: %w", err)
	}
	for i := range labels.TextStyle {
		labels.TextStyle[i].Font.Size = r.fontSize
	}
	p.Add(labels)
	return nil
}

// domainGrid adapts a diagram to plotter.GridXYZ. Z is the ordinal of
// the cell's stable domain, so the palette spreads over the species
// actually present.
type domainGrid struct {
	d       *domain.Diagram
	ordinal map[int]int
}

func newDomainGrid(d *domain.Diagram) domainGrid {
	ordinal := make(map[int]int, len(d.Domains))
	for i, dom := range d.Domains {
		ordinal[dom.Entry] = i
	}
	return domainGrid{d: d, ordinal: ordinal}
}

func (g domainGrid) Dims() (c, r int)   { return g.d.PHSteps, g.d.ESteps }
func (g domainGrid) X(c int) float64    { return g.d.PH(c) }
func (g domainGrid) Y(r int) float64    { return g.d.E(r) }
func (g domainGrid) Z(c, r int) float64 { return float64(g.ordinal[g.d.WinnerAt(c, r)]) }
