package recipe

import (
	"context"
	"testing"

	"recipe-planner/internal/core/spoonacular"
	"recipe-planner/internal/pkg/common"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSearcher struct {
	resp    *spoonacular.SearchResponse
	err     error
	calls   int
	queries []spoonacular.Query
}

func (f *fakeSearcher) Search(ctx context.Context, q spoonacular.Query) (*spoonacular.SearchResponse, error) {
	f.calls++
	f.queries = append(f.queries, q)
	return f.resp, f.err
}

func testPreferences() UserPreferences {
	return UserPreferences{
		Location:            "Austin",
		DietaryRestrictions: []string{"Vegan"},
		CalorieTarget:       1800,
		Budget:              10,
		ExcludedIngredients: []string{"peanuts"},
	}
}

func TestGenerateRecipes_NoCredential(t *testing.T) {
	searcher := &fakeSearcher{}
	svc := NewRecipeService(searcher)

	result := svc.GenerateRecipes(context.Background(), testPreferences(), "")

	assert.Equal(t, 0, searcher.calls)
	assert.Equal(t, StatusUsingSampleData, result.Status)
	assert.Equal(t, ReasonNoCredential, result.Reason)
	assert.NotEmpty(t, result.Message)
	assert.Equal(t, SampleRecipes(), result.Recipes)
}

func TestGenerateRecipes_TransportFailure(t *testing.T) {
	failures := []error{
		common.Wrap(common.ErrTransportFailure, assert.AnError),
		common.Wrap(common.ErrMalformedResponse, assert.AnError),
		assert.AnError,
	}
	for _, failure := range failures {
		searcher := &fakeSearcher{err: failure}
		svc := NewRecipeService(searcher)

		result := svc.GenerateRecipes(context.Background(), testPreferences(), "key")

		assert.Equal(t, 1, searcher.calls)
		assert.Equal(t, StatusUsingSampleData, result.Status)
		assert.Equal(t, ReasonFetchFailed, result.Reason)
		assert.Equal(t, SampleRecipes(), result.Recipes)
	}
}

func TestGenerateRecipes_FallbackReasonsDiffer(t *testing.T) {
	svc := NewRecipeService(&fakeSearcher{err: assert.AnError})

	noCredential := svc.GenerateRecipes(context.Background(), testPreferences(), "")
	failed := svc.GenerateRecipes(context.Background(), testPreferences(), "key")

	assert.Equal(t, noCredential.Recipes, failed.Recipes)
	assert.NotEqual(t, noCredential.Reason, failed.Reason)
	assert.NotEqual(t, noCredential.Message, failed.Message)
}

func TestGenerateRecipes_NilResponseFallsBack(t *testing.T) {
	svc := NewRecipeService(&fakeSearcher{})
	result := svc.GenerateRecipes(context.Background(), testPreferences(), "key")

	assert.Equal(t, StatusUsingSampleData, result.Status)
	assert.Equal(t, ReasonFetchFailed, result.Reason)
}

func TestGenerateRecipes_NoMatches(t *testing.T) {
	searcher := &fakeSearcher{resp: &spoonacular.SearchResponse{Results: []spoonacular.RawRecipe{}}}
	svc := NewRecipeService(searcher)

	result := svc.GenerateRecipes(context.Background(), testPreferences(), "key")

	assert.Equal(t, StatusNoMatches, result.Status)
	assert.Empty(t, result.Reason)
	assert.NotNil(t, result.Recipes)
	assert.Empty(t, result.Recipes)
}

func TestGenerateRecipes_Success(t *testing.T) {
	resp, err := spoonacular.ParseSearchResponse([]byte(`{"results": [
		` + fullRecipe + `,
		{"id": 716429, "title": "Duplicate"},
		{"title": "No id", "servings": 3}
	], "totalResults": 86}`))
	require.NoError(t, err)

	searcher := &fakeSearcher{resp: resp}
	svc := NewRecipeService(searcher)

	result := svc.GenerateRecipes(context.Background(), testPreferences(), "key")

	require.Equal(t, StatusSuccess, result.Status)
	assert.Empty(t, result.Reason)
	assert.Equal(t, "Found 3 recipes that match your preferences.", result.Message)
	require.Len(t, result.Recipes, 3)
	assert.Equal(t, "716429", result.Recipes[0].ID)
	assert.Equal(t, "716429-2", result.Recipes[1].ID)
	assert.Equal(t, "untitled-3", result.Recipes[2].ID)

	for _, r := range result.Recipes {
		assert.InDelta(t, sumPrices(r.Ingredients), r.TotalPrice, 1e-9)
		assert.NotEmpty(t, r.Instructions)
		assert.Positive(t, r.Servings)
	}

	require.Len(t, searcher.queries, 1)
	v, _ := searcher.queries[0].Get(spoonacular.ParamMaxPrice)
	assert.Equal(t, "30", v)
}
