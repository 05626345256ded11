package report

import (
	"fmt"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"

	"github.com/katalvlaran/rootfind/core"
)

// Plot collects an iteration trace as (k, err) points and renders the
// convergence history as a line chart. Unlike Table and CSV it buffers
// everything: rendering needs the whole series.
type Plot struct {
	title string
	pts   plotter.XYs
}

// NewPlot returns an empty convergence plot with the given title.
func NewPlot(title string) *Plot {
	return &Plot{title: title}
}

// Record appends one (iteration, error metric) point. Safe to pass as an
// OnIterate hook.
func (p *Plot) Record(rec core.Record) error {
	p.pts = append(p.pts, plotter.XY{X: float64(rec.K), Y: rec.Err})
	return nil
}

// Len reports how many points have been collected.
func (p *Plot) Len() int { return len(p.pts) }

// Render builds the chart: error metric against iteration index, linear
// axes. Callers wanting different styling can decorate the returned plot
// before saving it themselves.
func (p *Plot) Render() (*plot.Plot, error) {
	pl := plot.New()
	pl.Title.Text = p.title
	pl.X.Label.Text = "iteration"
	pl.Y.Label.Text = "error metric"
	if err := plotutil.AddLinePoints(pl, "err", p.pts); err != nil {
		return nil, fmt.Errorf("report: build convergence line: %w", err)
	}
	return pl, nil
}

// Save renders the chart and writes it to path; the format follows the
// file extension (.png, .svg, .pdf, ...).
func (p *Plot) Save(path string) error {
	pl, err := p.Render()
	if err != nil {
		return err
	}
	if err := pl.Save(6*vg.Inch, 4*vg.Inch, path); err != nil {
		return fmt.Errorf("report: save plot: %w", err)
	}
	return nil
}
