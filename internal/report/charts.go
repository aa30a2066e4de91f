package report

import (
	"context"
	"fmt"
	"image/color"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/pscheid92/tweetpulse/internal/domain"
	apperrors "github.com/pscheid92/tweetpulse/internal/errors"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

const (
	chartWidth  = 12 * vg.Inch
	chartHeight = 4 * vg.Inch
	heatWidth   = 6 * vg.Inch
	heatHeight  = 5 * vg.Inch

	// maxMonths is how many month groups the monthly figures show.
	maxMonths = 10
)

// Chart file names without extension.
const (
	CorrelationMatrixChart = "correlation_matrix"
	SentimentByMonthChart  = "sentiment_by_month"
	LikesByMonthChart      = "likes_by_month"
	PolarityByMonthChart   = "polarity_by_month"
)

var (
	red  = color.RGBA{R: 214, G: 39, B: 40, A: 255}
	blue = color.RGBA{R: 31, G: 119, B: 180, A: 255}
)

// Charts renders the report figures into a directory.
type Charts struct {
	dir    string
	format string
}

// NewCharts creates a renderer writing files with the given extension into dir.
// An empty dir disables rendering.
func NewCharts(dir, format string) *Charts {
	return &Charts{dir: dir, format: format}
}

type chart struct {
	name          string
	width, height vg.Length
	build         func(*domain.Summary) (*plot.Plot, error)
}

var charts = []chart{
	{CorrelationMatrixChart, heatWidth, heatHeight, correlationHeatmap},
	{SentimentByMonthChart, chartWidth, chartHeight, sentimentByMonth},
	{LikesByMonthChart, chartWidth, chartHeight, likesByMonth},
	{PolarityByMonthChart, chartWidth, chartHeight, polarityByMonth},
}

// Render writes every chart that has data and returns the written paths in render order.
func (c *Charts) Render(ctx context.Context, summary *domain.Summary) ([]string, error) {
	if c.dir == "" {
		slog.DebugContext(ctx, "Chart rendering disabled")
		return nil, nil
	}
	if err := os.MkdirAll(c.dir, 0o755); err != nil {
		return nil, apperrors.InternalError("failed to create chart directory", err).WithField("dir", c.dir)
	}

	var written []string
	for _, ch := range charts {
		if err := ctx.Err(); err != nil {
			return written, fmt.Errorf("chart rendering aborted: %w", err)
		}

		p, err := ch.build(summary)
		if err != nil {
			return written, apperrors.InternalError("failed to build chart", err).WithField("chart", ch.name)
		}
		if p == nil {
			slog.InfoContext(ctx, "Skipping chart without data", "chart", ch.name)
			continue
		}

		path := filepath.Join(c.dir, ch.name+"."+c.format)
		if err := p.Save(ch.width, ch.height, path); err != nil {
			return written, apperrors.InternalError("failed to save chart", err).WithField("chart", ch.name)
		}
		slog.DebugContext(ctx, "Chart written", "chart", ch.name, "path", path)
		written = append(written, path)
	}

	return written, nil
}

// matrixGrid presents a correlation matrix as a heat map grid with the first column on top.
type matrixGrid struct {
	m domain.CorrelationMatrix
}

func (g matrixGrid) Dims() (c, r int)   { return len(g.m.Columns), len(g.m.Columns) }
func (g matrixGrid) Z(c, r int) float64 { return g.m.At(g.row(r), c) }
func (g matrixGrid) X(c int) float64    { return float64(c) }
func (g matrixGrid) Y(r int) float64    { return float64(r) }
func (g matrixGrid) row(r int) int      { return len(g.m.Columns) - 1 - r }

func correlationHeatmap(s *domain.Summary) (*plot.Plot, error) {
	n := len(s.Correlations.Columns)
	if n == 0 {
		return nil, nil
	}

	grid := matrixGrid{m: s.Correlations}
	heat := plotter.NewHeatMap(grid, palette.Heat(64, 1))
	heat.Min, heat.Max = -1, 1
	heat.NaN = color.Gray{Y: 200}

	var cells plotter.XYLabels
	for c := 0; c < n; c++ {
		for r := 0; r < n; r++ {
			cells.XYs = append(cells.XYs, plotter.XY{X: grid.X(c), Y: grid.Y(r)})
			cells.Labels = append(cells.Labels, fmt.Sprintf("%.2f", grid.Z(c, r)))
		}
	}
	labels, err := plotter.NewLabels(cells)
	if err != nil {
		return nil, err
	}

	p := plot.New()
	p.Title.Text = "Correlation matrix"
	p.Add(heat, labels)

	reversed := make([]string, n)
	for i, name := range s.Correlations.Columns {
		reversed[n-1-i] = name
	}
	p.NominalX(s.Correlations.Columns...)
	p.NominalY(reversed...)

	return p, nil
}

func firstMonths(s *domain.Summary) []domain.MonthlyAggregate {
	if len(s.Monthly) > maxMonths {
		return s.Monthly[:maxMonths]
	}
	return s.Monthly
}

func monthNames(months []domain.MonthlyAggregate) []string {
	names := make([]string, len(months))
	for i, m := range months {
		names[i] = m.Month.String()
	}
	return names
}

func monthlyBars(title string, months []domain.MonthlyAggregate, fill color.Color, value func(domain.MonthlyAggregate) float64) (*plot.Plot, error) {
	values := make(plotter.Values, len(months))
	for i, m := range months {
		values[i] = value(m)
	}

	bars, err := plotter.NewBarChart(values, vg.Points(40))
	if err != nil {
		return nil, err
	}
	bars.Color = fill
	bars.LineStyle.Width = 0

	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "Month"
	p.Add(bars)
	p.NominalX(monthNames(months)...)
	return p, nil
}

func sentimentByMonth(s *domain.Summary) (*plot.Plot, error) {
	months := firstMonths(s)
	if len(months) == 0 {
		return nil, nil
	}

	p, err := monthlyBars("Average sentiment scale per month", months, blue, func(m domain.MonthlyAggregate) float64 { return m.MeanLabel })
	if err != nil {
		return nil, err
	}
	p.Y.Min, p.Y.Max = 0.7, 1
	return p, nil
}

func likesByMonth(s *domain.Summary) (*plot.Plot, error) {
	months := firstMonths(s)
	if len(months) == 0 {
		return nil, nil
	}
	return monthlyBars("Likes evolution", months, red, func(m domain.MonthlyAggregate) float64 { return m.MeanLikes })
}

func polarityByMonth(s *domain.Summary) (*plot.Plot, error) {
	months := firstMonths(s)
	if len(months) == 0 {
		return nil, nil
	}

	neg := make(plotter.XYs, len(months))
	pos := make(plotter.XYs, len(months))
	for i, m := range months {
		neg[i] = plotter.XY{X: float64(i), Y: m.MeanNegative}
		pos[i] = plotter.XY{X: float64(i), Y: m.MeanPositive}
	}

	negLine, err := plotter.NewLine(neg)
	if err != nil {
		return nil, err
	}
	negLine.Color = red
	negLine.Width = vg.Points(2)

	posLine, err := plotter.NewLine(pos)
	if err != nil {
		return nil, err
	}
	posLine.Color = blue
	posLine.Width = vg.Points(2)

	p := plot.New()
	p.Title.Text = "Evolution of negative and positive scale"
	p.X.Label.Text = "Month"
	p.Add(plotter.NewGrid(), negLine, posLine)
	p.Legend.Add("Negativity", negLine)
	p.Legend.Add("Positivity", posLine)
	p.Legend.Top = true
	p.NominalX(monthNames(months)...)

	return p, nil
}
