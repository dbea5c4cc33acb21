package recipe

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSampleRecipes(t *testing.T) {
	recipes := SampleRecipes()
	require.Len(t, recipes, 3)

	wantTotals := map[string]float64{"1": 6.17, "2": 5.97, "3": 8.96}
	ids := map[string]bool{}
	for _, r := range recipes {
		assert.False(t, ids[r.ID], "duplicate id %s", r.ID)
		ids[r.ID] = true

		assert.InDelta(t, wantTotals[r.ID], r.TotalPrice, 1e-9, r.Title)
		assert.InDelta(t, sumPrices(r.Ingredients), r.TotalPrice, 1e-9, r.Title)
		assert.Positive(t, r.Servings)
		assert.InDelta(t, r.TotalPrice/float64(r.Servings), r.PricePerServing, 1e-9)
		assert.NotEmpty(t, r.Instructions)
	}
}

func TestSampleRecipes_ReturnsCopies(t *testing.T) {
	first := SampleRecipes()
	first[0].Ingredients[0].Price = 100
	first[0].Tags[0] = "changed"

	second := SampleRecipes()
	assert.Equal(t, 0.89, second[0].Ingredients[0].Price)
	assert.Equal(t, "vegetarian", second[0].Tags[0])
}
