package charts

import (
	"bytes"
	"fmt"

	"github.com/fintrack/fintrack/internal/core/domain"
	"github.com/wcharczuk/go-chart/v2"
)

// ChartGenerator renders analytics output as images.
type ChartGenerator struct{}

// NewChartGenerator creates a chart generator.
func NewChartGenerator() *ChartGenerator {
	return &ChartGenerator{}
}

// RenderCategoryBreakdown renders the expense breakdown as a PNG bar chart.
// Zero-amount categories are omitted; with nothing to plot it returns nil.
func (g *ChartGenerator) RenderCategoryBreakdown(summaries []domain.CategorySummary) ([]byte, error) {
	bars := make([]chart.Value, 0, len(summaries))
	for _, s := range summaries {
		if !s.Amount.IsPositive() {
			continue
		}
		bars = append(bars, chart.Value{
			Label: fmt.Sprintf("%s (%.1f%%)", s.Category, s.Percentage),
			Value: s.Amount.InexactFloat64(),
		})
	}
	if len(bars) == 0 {
		return nil, nil
	}

	graph := chart.BarChart{
		Title:    "Expenses by Category",
		Width:    1200,
		Height:   600,
		BarWidth: 60,
		Background: chart.Style{
			Padding: chart.Box{
				Top:    50,
				Left:   50,
				Right:  50,
				Bottom: 50,
			},
			FillColor: chart.ColorWhite,
		},
		XAxis: chart.Style{
			FontSize:  10,
			FontColor: chart.ColorBlack,
		},
		YAxis: chart.YAxis{
			Style: chart.Style{
				FontSize:  12,
				FontColor: chart.ColorBlack,
			},
		},
		Bars: bars,
	}

	var buf bytes.Buffer
	if err := graph.Render(chart.PNG, &buf); err != nil {
		return nil, fmt.Errorf("failed to render category chart: %w", err)
	}
	return buf.Bytes(), nil
}
