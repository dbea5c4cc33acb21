package recipe

import (
	"encoding/json"
	"testing"

	"recipe-planner/internal/core/spoonacular"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rawRecipe(t *testing.T, body string) spoonacular.RawRecipe {
	t.Helper()
	var r spoonacular.RawRecipe
	require.NoError(t, json.Unmarshal([]byte(body), &r))
	return r
}

const fullRecipe = `{
	"id": 716429,
	"title": "Pasta with Garlic, Scallions, Cauliflower & Breadcrumbs",
	"image": "https://img.spoonacular.com/recipes/716429-312x231.jpg",
	"summary": "You can never have too many main course recipes. This one has <b>584 calories</b>.",
	"servings": 2,
	"preparationMinutes": 10,
	"cookingMinutes": 35,
	"vegetarian": true,
	"vegan": false,
	"glutenFree": false,
	"dairyFree": true,
	"veryHealthy": true,
	"cheap": true,
	"extendedIngredients": [
		{"name": "butter", "amount": 1, "unit": "tbsp", "estimatedCost": {"value": 25.5, "unit": "US Cents"}},
		{"name": "cauliflower florets", "amount": 2.5, "unit": "cups", "estimatedCost": {"value": 150, "unit": "US Cents"}},
		{"name": "garlic", "amount": 5, "unit": "cloves"}
	],
	"nutrition": {
		"nutrients": [
			{"name": "Calories", "amount": 584.46, "unit": "kcal"},
			{"name": "Fat", "amount": 19.83, "unit": "g"},
			{"name": "Carbohydrates", "amount": 83.55, "unit": "g"},
			{"name": "Sugar", "amount": 5.24, "unit": "g"},
			{"name": "Protein", "amount": 19.04, "unit": "g"},
			{"name": "Fiber", "amount": 7.53, "unit": "g"}
		]
	},
	"analyzedInstructions": [
		{"name": "", "steps": [
			{"number": 1, "step": "Boil the pasta."},
			{"number": 2, "step": "Toast the breadcrumbs."}
		]},
		{"name": "Sauce", "steps": [{"number": 1, "step": "Ignored."}]}
	]
}`

func TestNormalize_FullRecord(t *testing.T) {
	r := Normalize(rawRecipe(t, fullRecipe))

	assert.Equal(t, "716429", r.ID)
	assert.Equal(t, "Pasta with Garlic, Scallions, Cauliflower & Breadcrumbs", r.Title)
	assert.Equal(t, "You can never have too many main course recipes.", r.Description)
	assert.Equal(t, "https://img.spoonacular.com/recipes/716429-312x231.jpg", r.ImageURL)
	assert.Equal(t, 2, r.Servings)
	assert.Equal(t, 10, r.PrepTime)
	assert.Equal(t, 35, r.CookTime)

	require.Len(t, r.Ingredients, 3)
	assert.Equal(t, Ingredient{Name: "butter", Amount: "1", Unit: "tbsp", Price: 0.255}, r.Ingredients[0])
	assert.Equal(t, "2.5", r.Ingredients[1].Amount)
	assert.InDelta(t, 1.5, r.Ingredients[1].Price, 1e-9)
	assert.InDelta(t, DefaultIngredientPrice, r.Ingredients[2].Price, 1e-9)

	assert.InDelta(t, 0.255+1.5+0.99, r.TotalPrice, 1e-9)
	assert.InDelta(t, r.TotalPrice/2, r.PricePerServing, 1e-9)

	assert.Equal(t, NutritionInfo{
		Calories: 584.46, Protein: 19.04, Carbs: 83.55, Fat: 19.83, Fiber: 7.53, Sugar: 5.24,
	}, r.NutritionInfo)

	assert.Equal(t, []string{"Boil the pasta.", "Toast the breadcrumbs."}, r.Instructions)
	assert.Equal(t, []string{TagVegetarian, TagDairyFree, TagHealthy, TagBudgetFriendly}, r.Tags)
}

func TestNormalize_EmptyRecord(t *testing.T) {
	r := Normalize(rawRecipe(t, `{}`))

	assert.Equal(t, "", r.ID)
	assert.Equal(t, DefaultTitle, r.Title)
	assert.Equal(t, DefaultDescription, r.Description)
	assert.Equal(t, DefaultImageURL, r.ImageURL)
	assert.NotNil(t, r.Ingredients)
	assert.Empty(t, r.Ingredients)
	assert.Equal(t, []string{DefaultInstruction}, r.Instructions)
	assert.Equal(t, DefaultPrepTime, r.PrepTime)
	assert.Equal(t, DefaultCookTime, r.CookTime)
	assert.Equal(t, DefaultServings, r.Servings)
	assert.Equal(t, NutritionInfo{}, r.NutritionInfo)
	assert.Equal(t, 0.0, r.TotalPrice)
	assert.Equal(t, 0.0, r.PricePerServing)
	assert.NotNil(t, r.Tags)
	assert.Empty(t, r.Tags)
}

func TestNormalize_MissingIngredients(t *testing.T) {
	for _, body := range []string{
		`{"title": "Water"}`,
		`{"title": "Water", "extendedIngredients": null}`,
		`{"title": "Water", "extendedIngredients": "n/a"}`,
	} {
		r := Normalize(rawRecipe(t, body))
		assert.Empty(t, r.Ingredients, body)
		assert.Equal(t, 0.0, r.TotalPrice, body)
		assert.Equal(t, 0.0, r.PricePerServing, body)
	}
}

func TestNormalize_ServingsDefault(t *testing.T) {
	ingredients := `"extendedIngredients": [{"name": "rice", "estimatedCost": {"value": 200}}]`
	for _, servings := range []string{``, `"servings": 0,`, `"servings": -3,`, `"servings": null,`, `"servings": "four",`} {
		r := Normalize(rawRecipe(t, `{`+servings+ingredients+`}`))
		assert.Equal(t, DefaultServings, r.Servings, servings)
		assert.InDelta(t, r.TotalPrice/4, r.PricePerServing, 1e-9, servings)
		assert.InDelta(t, 0.5, r.PricePerServing, 1e-9, servings)
	}
}

func TestNormalize_MissingInstructions(t *testing.T) {
	for _, body := range []string{
		`{}`,
		`{"analyzedInstructions": []}`,
		`{"analyzedInstructions": [{"steps": []}]}`,
		`{"analyzedInstructions": [{"name": "no steps"}]}`,
		`{"analyzedInstructions": [{"steps": [{"step": "  "}, {"number": 2}]}]}`,
	} {
		r := Normalize(rawRecipe(t, body))
		assert.Equal(t, []string{"No instructions available."}, r.Instructions, body)
	}
}

func TestNormalize_TimesDefaultWhenNonPositive(t *testing.T) {
	r := Normalize(rawRecipe(t, `{"preparationMinutes": -1, "cookingMinutes": 0}`))
	assert.Equal(t, DefaultPrepTime, r.PrepTime)
	assert.Equal(t, DefaultCookTime, r.CookTime)
}

func TestNormalize_IngredientDefaults(t *testing.T) {
	r := Normalize(rawRecipe(t, `{"extendedIngredients": [
		{},
		{"name": "salt", "amount": "a pinch", "unit": null, "estimatedCost": {"value": 0}},
		{"name": "oil", "estimatedCost": {"value": -40}},
		{"name": "milk", "estimatedCost": "cheap"},
		42
	]}`))

	require.Len(t, r.Ingredients, 5)
	assert.Equal(t, Ingredient{Name: DefaultIngredientName, Amount: DefaultAmount, Unit: "", Price: DefaultIngredientPrice}, r.Ingredients[0])
	assert.Equal(t, Ingredient{Name: "salt", Amount: "a pinch", Unit: "", Price: DefaultIngredientPrice}, r.Ingredients[1])
	assert.Equal(t, DefaultIngredientPrice, r.Ingredients[2].Price)
	assert.Equal(t, DefaultIngredientPrice, r.Ingredients[3].Price)
	assert.Equal(t, DefaultIngredientName, r.Ingredients[4].Name)
	assert.InDelta(t, 5*DefaultIngredientPrice, r.TotalPrice, 1e-9)
}

func TestNormalize_Description(t *testing.T) {
	cases := map[string]string{
		`{"summary": "One sentence only"}`:     "One sentence only.",
		`{"summary": "First. Second. Third."}`: "First.",
		`{"summary": ". Leading period"}`:      DefaultDescription,
		`{"summary": "   "}`:                   DefaultDescription,
	}
	for body, want := range cases {
		assert.Equal(t, want, Normalize(rawRecipe(t, body)).Description, body)
	}
}

func TestNormalize_NutrientMatchingIsExact(t *testing.T) {
	r := Normalize(rawRecipe(t, `{"nutrition": {"nutrients": [
		{"name": "calories", "amount": 100},
		{"name": "Protein", "amount": "12.5"},
		{"name": "Fat"}
	]}}`))

	assert.Equal(t, 0.0, r.NutritionInfo.Calories)
	assert.Equal(t, 12.5, r.NutritionInfo.Protein)
	assert.Equal(t, 0.0, r.NutritionInfo.Fat)
}

// Nutrient names are matched against the English labels only, so a localized
// payload yields all-zero nutrition. This is a known limitation.
func TestNormalize_LocalizedNutrientNamesYieldZero(t *testing.T) {
	r := Normalize(rawRecipe(t, `{"nutrition": {"nutrients": [
		{"name": "Kalorien", "amount": 500},
		{"name": "Eiweiß", "amount": 20},
		{"name": "Kohlenhydrate", "amount": 60},
		{"name": "Fett", "amount": 15},
		{"name": "Ballaststoffe", "amount": 8},
		{"name": "Zucker", "amount": 4}
	]}}`))

	assert.Equal(t, NutritionInfo{}, r.NutritionInfo)
}

func TestNormalize_TagOrder(t *testing.T) {
	r := Normalize(rawRecipe(t, `{
		"cheap": true, "veryHealthy": true, "dairyFree": true,
		"glutenFree": true, "vegan": true, "vegetarian": true
	}`))
	assert.Equal(t, []string{
		TagVegetarian, TagVegan, TagGlutenFree, TagDairyFree, TagHealthy, TagBudgetFriendly,
	}, r.Tags)
}

func TestNormalize_IsDeterministic(t *testing.T) {
	raw := rawRecipe(t, fullRecipe)
	assert.Equal(t, Normalize(raw), Normalize(raw))
}

func TestUniqueIDs(t *testing.T) {
	recipes := []Recipe{{ID: "7"}, {ID: ""}, {ID: "7"}, {ID: "7"}, {ID: ""}}
	uniqueIDs(recipes)

	ids := make([]string, 0, len(recipes))
	for _, r := range recipes {
		ids = append(ids, r.ID)
	}
	assert.Equal(t, []string{"7", "untitled-2", "7-2", "7-3", "untitled-5"}, ids)
}

func TestNormalize_PricesAreUnadjusted(t *testing.T) {
	r := Normalize(rawRecipe(t, `{"servings": 2, "extendedIngredients": [{"name": "rice", "estimatedCost": {"value": 200}}]}`))
	require.Len(t, r.Ingredients, 1)
	assert.InDelta(t, 2.0, r.Ingredients[0].Price, 1e-9)

	adjusted := AdjustPrices(r, "San Francisco")
	assert.InDelta(t, 2.6, adjusted.TotalPrice, 1e-9)
	assert.InDelta(t, 1.3, adjusted.PricePerServing, 1e-9)
	assert.InDelta(t, 2.0, r.TotalPrice, 1e-9)
}
