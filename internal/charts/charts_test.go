package charts_test

import (
	"testing"

	"github.com/fintrack/fintrack/internal/charts"
	"github.com/fintrack/fintrack/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderCategoryBreakdown(t *testing.T) {
	g := charts.NewChartGenerator()

	t.Run("renders a png for non-empty breakdown", func(t *testing.T) {
		png, err := g.RenderCategoryBreakdown([]domain.CategorySummary{
			{Category: "Food & Dining", Amount: decimal.NewFromInt(40), Percentage: 57.1},
			{Category: "Transport", Amount: decimal.NewFromInt(30), Percentage: 42.9},
			{Category: "Rent", Amount: decimal.Zero, Percentage: 0},
		})
		require.NoError(t, err)
		require.NotEmpty(t, png)
		// PNG magic bytes.
		assert.Equal(t, []byte{0x89, 'P', 'N', 'G'}, png[:4])
	})

	t.Run("nothing to plot yields nil", func(t *testing.T) {
		png, err := g.RenderCategoryBreakdown([]domain.CategorySummary{
			{Category: "Rent", Amount: decimal.Zero},
		})
		require.NoError(t, err)
		assert.Nil(t, png)
	})
}
