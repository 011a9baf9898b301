package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSelectInsights(t *testing.T) {
	base := time.Date(2024, 5, 10, 12, 0, 0, 0, time.UTC)

	oldHigh := &Insight{ID: 1, Priority: InsightPriorityHigh, CreatedAt: base.Add(-48 * time.Hour)}
	newLow := &Insight{ID: 2, Priority: InsightPriorityLow, CreatedAt: base}
	newMedium := &Insight{ID: 3, Priority: InsightPriorityMedium, CreatedAt: base}
	newHigh := &Insight{ID: 4, Priority: InsightPriorityHigh, CreatedAt: base}
	unknown := &Insight{ID: 5, Priority: "urgent", CreatedAt: base.Add(time.Hour)}
	tieA := &Insight{ID: 6, Priority: InsightPriorityLow, CreatedAt: base}

	t.Run("prioridade alta antiga vence baixa recente", func(t *testing.T) {
		result := SelectInsights([]*Insight{newLow, oldHigh}, 1)

		assert.Len(t, result, 1)
		assert.Equal(t, int64(1), result[0].ID)
	})

	t.Run("ordena por prioridade e data", func(t *testing.T) {
		result := SelectInsights([]*Insight{unknown, newLow, oldHigh, newMedium, newHigh}, 10)

		ids := make([]int64, 0, len(result))
		for _, i := range result {
			ids = append(ids, i.ID)
		}
		assert.Equal(t, []int64{4, 1, 3, 2, 5}, ids)
	})

	t.Run("empates mantêm a ordem de entrada", func(t *testing.T) {
		result := SelectInsights([]*Insight{newLow, tieA}, 2)

		assert.Equal(t, int64(2), result[0].ID)
		assert.Equal(t, int64(6), result[1].ID)
	})

	t.Run("não altera a slice original", func(t *testing.T) {
		input := []*Insight{newLow, oldHigh}
		SelectInsights(input, 2)

		assert.Equal(t, int64(2), input[0].ID)
		assert.Equal(t, int64(1), input[1].ID)
	})

	t.Run("entrada vazia", func(t *testing.T) {
		result := SelectInsights(nil, 10)

		assert.NotNil(t, result)
		assert.Empty(t, result)
	})
}
