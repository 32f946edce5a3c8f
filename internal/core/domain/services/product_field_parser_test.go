package services_test

import (
	"testing"

	"deliverymanager/internal/core/domain/model/order"
	"deliverymanager/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func linesAsPairs(lines []order.Line) [][2]any {
	pairs := make([][2]any, 0, len(lines))
	for _, l := range lines {
		pairs = append(pairs, [2]any{l.ProductCode(), l.Quantity()})
	}
	return pairs
}

func TestParseProductField(t *testing.T) {
	t.Run("should parse all supported entry forms", func(t *testing.T) {
		lines := services.ParseProductField("CA x 2, TA:3, CG, BS 100")

		assert.Equal(t, [][2]any{
			{"CA", 2},
			{"TA", 3},
			{"CG", 1},
			{"BS", 100},
		}, linesAsPairs(lines))
	})

	t.Run("should uppercase codes", func(t *testing.T) {
		lines := services.ParseProductField("ca x 2, ta")

		assert.Equal(t, [][2]any{{"CA", 2}, {"TA", 1}}, linesAsPairs(lines))
	})

	t.Run("should tolerate whitespace and semicolons", func(t *testing.T) {
		lines := services.ParseProductField("  CA x 2 ;  TA : 1 ,, CG  ")

		assert.Equal(t, [][2]any{{"CA", 2}, {"TA", 1}, {"CG", 1}}, linesAsPairs(lines))
	})

	t.Run("should emit unknown codes rather than reject them", func(t *testing.T) {
		lines := services.ParseProductField("ZZZZ x 4")

		assert.Equal(t, [][2]any{{"ZZZZ", 4}}, linesAsPairs(lines))
	})

	t.Run("should treat ambiguous tokens as bare codes with quantity 1", func(t *testing.T) {
		lines := services.ParseProductField("CA x")

		assert.Equal(t, [][2]any{{"CA", 1}}, linesAsPairs(lines))
	})

	t.Run("should clamp non-positive quantities to 1", func(t *testing.T) {
		lines := services.ParseProductField("CA x -2, TA 0")

		assert.Equal(t, [][2]any{{"CA", 1}, {"TA", 1}}, linesAsPairs(lines))
	})

	t.Run("should yield no lines for empty input", func(t *testing.T) {
		assert.Empty(t, services.ParseProductField(""))
		assert.Empty(t, services.ParseProductField("   "))
		assert.Empty(t, services.ParseProductField(" , ; "))
	})

	t.Run("formatting then re-parsing is stable", func(t *testing.T) {
		inputs := []string{
			"CA x 2, TA:3, CG, BS 100",
			"ca, ta x 1",
			"G:5; SG",
		}

		for _, input := range inputs {
			once := services.ParseProductField(input)
			text := order.LinesText(once)
			twice := services.ParseProductField(text)

			require.Equal(t, linesAsPairs(once), linesAsPairs(twice), "input %q", input)
			assert.Equal(t, text, order.LinesText(twice), "input %q", input)
		}
	})
}
