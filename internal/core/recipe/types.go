package recipe

// Ingredient 食材
type Ingredient struct {
	Name   string  `json:"name"`
	Amount string  `json:"amount"`
	Unit   string  `json:"unit"`
	Price  float64 `json:"price"`
}

// NutritionInfo 六項營養素
type NutritionInfo struct {
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
	Fiber    float64 `json:"fiber"`
	Sugar    float64 `json:"sugar"`
}

// Recipe 標準化後的食譜；建立後視為不可變的值
// --------------------------------------------------
type Recipe struct {
	ID              string        `json:"id"`
	Title           string        `json:"title"`
	Description     string        `json:"description"`
	ImageURL        string        `json:"imageUrl"`
	Ingredients     []Ingredient  `json:"ingredients"`
	Instructions    []string      `json:"instructions"`
	PrepTime        int           `json:"prepTime"`
	CookTime        int           `json:"cookTime"`
	Servings        int           `json:"servings"`
	NutritionInfo   NutritionInfo `json:"nutritionInfo"`
	TotalPrice      float64       `json:"totalPrice"`
	PricePerServing float64       `json:"pricePerServing"`
	Tags            []string      `json:"tags"`
}

// Clone 深拷貝，避免呼叫端共用底層切片
func (r Recipe) Clone() Recipe {
	out := r
	out.Ingredients = append([]Ingredient(nil), r.Ingredients...)
	out.Instructions = append([]string(nil), r.Instructions...)
	out.Tags = append([]string(nil), r.Tags...)
	if out.Ingredients == nil {
		out.Ingredients = []Ingredient{}
	}
	if out.Tags == nil {
		out.Tags = []string{}
	}
	return out
}

// UserPreferences 使用者提交的偏好設定
type UserPreferences struct {
	Location            string   `json:"location"`
	DietaryRestrictions []string `json:"dietaryRestrictions"`
	CalorieTarget       int      `json:"calorieTarget"`
	Budget              float64  `json:"budget"`
	ExcludedIngredients []string `json:"excludedIngredients"`
}

func sumPrices(ingredients []Ingredient) float64 {
	total := 0.0
	for _, ing := range ingredients {
		total += ing.Price
	}
	return total
}

func perServing(total float64, servings int) float64 {
	if servings <= 0 {
		return 0
	}
	return total / float64(servings)
}
