package recipe

import (
	"strconv"
	"strings"

	"recipe-planner/internal/core/spoonacular"
)

// 欄位缺漏時的預設值
const (
	DefaultTitle          = "Untitled recipe"
	DefaultDescription    = "No description available."
	DefaultImageURL       = "/placeholder.svg"
	DefaultInstruction    = "No instructions available."
	DefaultIngredientName = "Unknown ingredient"
	DefaultAmount         = "0"
	DefaultPrepTime       = 15
	DefaultCookTime       = 25
	DefaultServings       = 4
	// DefaultIngredientPrice 來源沒有估價時的單一食材價格
	DefaultIngredientPrice = 0.99
)

// 營養素名稱，大小寫需完全相符
const (
	NutrientCalories = "Calories"
	NutrientProtein  = "Protein"
	NutrientCarbs    = "Carbohydrates"
	NutrientFat      = "Fat"
	NutrientFiber    = "Fiber"
	NutrientSugar    = "Sugar"
)

// 飲食標籤
const (
	TagVegetarian     = "vegetarian"
	TagVegan          = "vegan"
	TagGlutenFree     = "gluten-free"
	TagDairyFree      = "dairy-free"
	TagHealthy        = "healthy"
	TagBudgetFriendly = "budget-friendly"
)

// Normalize 將外部食譜轉為標準 Recipe。
// 每個欄位都有預設值，任何缺漏或型別不符的欄位都不會造成錯誤。
// 價格為未調整的美元價格，地區係數由 AdjustPrices 另外套用。
func Normalize(raw spoonacular.RawRecipe) Recipe {
	ingredients := normalizeIngredients(raw.ExtendedIngredients)
	servings := raw.Servings.Positive(DefaultServings)
	total := sumPrices(ingredients)

	return Recipe{
		ID:              raw.ID.Or(""),
		Title:           raw.Title.Or(DefaultTitle),
		Description:     describe(raw.Summary),
		ImageURL:        raw.Image.Or(DefaultImageURL),
		Ingredients:     ingredients,
		Instructions:    instructions(raw.AnalyzedInstructions),
		PrepTime:        raw.PreparationMinutes.Positive(DefaultPrepTime),
		CookTime:        raw.CookingMinutes.Positive(DefaultCookTime),
		Servings:        servings,
		NutritionInfo:   nutrition(raw.Nutrition),
		TotalPrice:      total,
		PricePerServing: perServing(total, servings),
		Tags:            tags(raw),
	}
}

func normalizeIngredients(raw spoonacular.List[spoonacular.RawIngredient]) []Ingredient {
	out := make([]Ingredient, 0, len(raw))
	for _, ing := range raw {
		out = append(out, Ingredient{
			Name:   ing.Name.Or(DefaultIngredientName),
			Amount: ing.Amount.Or(DefaultAmount),
			Unit:   ing.Unit.Or(""),
			Price:  ingredientPrice(ing.EstimatedCost),
		})
	}
	return out
}

// ingredientPrice 估價以美分計，缺漏或非正數時使用預設價格
func ingredientPrice(cost spoonacular.Object[spoonacular.RawEstimatedCost]) float64 {
	if !cost.Valid || !cost.Value.Value.Valid {
		return DefaultIngredientPrice
	}
	if price := cost.Value.Value.Value / 100; price > 0 {
		return price
	}
	return DefaultIngredientPrice
}

func nutrition(raw spoonacular.Object[spoonacular.RawNutrition]) NutritionInfo {
	if !raw.Valid {
		return NutritionInfo{}
	}
	n := raw.Value.Nutrients
	return NutritionInfo{
		Calories: findNutrient(n, NutrientCalories),
		Protein:  findNutrient(n, NutrientProtein),
		Carbs:    findNutrient(n, NutrientCarbs),
		Fat:      findNutrient(n, NutrientFat),
		Fiber:    findNutrient(n, NutrientFiber),
		Sugar:    findNutrient(n, NutrientSugar),
	}
}

func findNutrient(nutrients spoonacular.List[spoonacular.RawNutrient], name string) float64 {
	for _, n := range nutrients {
		if n.Name.Valid && n.Name.Value == name {
			if n.Amount.Valid {
				return n.Amount.Value
			}
			return 0
		}
	}
	return 0
}

// describe 取摘要第一個句點之前的文字
func describe(summary spoonacular.OptString) string {
	s := summary.Or("")
	if s == "" {
		return DefaultDescription
	}
	first, _, _ := strings.Cut(s, ".")
	first = strings.TrimSpace(first)
	if first == "" {
		return DefaultDescription
	}
	return first + "."
}

func instructions(groups spoonacular.List[spoonacular.RawInstructionGroup]) []string {
	if len(groups) > 0 {
		steps := make([]string, 0, len(groups[0].Steps))
		for _, step := range groups[0].Steps {
			if s := step.Step.Or(""); s != "" {
				steps = append(steps, s)
			}
		}
		if len(steps) > 0 {
			return steps
		}
	}
	return []string{DefaultInstruction}
}

func tags(raw spoonacular.RawRecipe) []string {
	flags := []struct {
		set bool
		tag string
	}{
		{raw.Vegetarian.True(), TagVegetarian},
		{raw.Vegan.True(), TagVegan},
		{raw.GlutenFree.True(), TagGlutenFree},
		{raw.DairyFree.True(), TagDairyFree},
		{raw.VeryHealthy.True(), TagHealthy},
		{raw.Cheap.True(), TagBudgetFriendly},
	}
	out := []string{}
	for _, f := range flags {
		if f.set {
			out = append(out, f.tag)
		}
	}
	return out
}

// uniqueIDs 補上缺漏的 id 並確保同一結果集內不重複
func uniqueIDs(recipes []Recipe) {
	seen := make(map[string]bool, len(recipes))
	for i := range recipes {
		base := recipes[i].ID
		if base == "" {
			base = "untitled-" + strconv.Itoa(i+1)
		}
		id := base
		for n := 2; seen[id]; n++ {
			id = base + "-" + strconv.Itoa(n)
		}
		seen[id] = true
		recipes[i].ID = id
	}
}
