package recipe

import (
	"strconv"
	"strings"

	"recipe-planner/internal/core/spoonacular"
	"recipe-planner/internal/pkg/common"
)

const (
	// PageSize 每次搜尋固定請求的結果數
	PageSize = 12
	// MealsPerDay 預算換算每日上限時假設的餐數
	MealsPerDay = 3
)

// EncodeQuery 將偏好轉為 complexSearch 查詢參數。
// 憑證空白時回傳 ErrMissingCredential，不會產生任何查詢。
func EncodeQuery(prefs UserPreferences, credential string) (spoonacular.Query, error) {
	credential = strings.TrimSpace(credential)
	if credential == "" {
		return nil, common.ErrMissingCredential
	}

	q := spoonacular.Query{}.
		Add(spoonacular.ParamAPIKey, credential).
		Add(spoonacular.ParamNumber, strconv.Itoa(PageSize))

	if diets := common.CleanStringList(prefs.DietaryRestrictions); len(diets) > 0 {
		q = q.Add(spoonacular.ParamDiet, strings.Join(diets, ","))
	}
	if excluded := common.CleanStringList(prefs.ExcludedIngredients); len(excluded) > 0 {
		q = q.Add(spoonacular.ParamExcludeIngredients, strings.Join(excluded, ","))
	}
	if prefs.CalorieTarget > 0 {
		q = q.Add(spoonacular.ParamMaxCalories, strconv.Itoa(prefs.CalorieTarget))
	}
	// 粗估：每餐預算乘以每日餐數作為價格上限。
	// 非正數預算不送出 maxPrice，與 maxCalories 相同；HTTP 層要求 budget > 0。
	if prefs.Budget > 0 {
		q = q.Add(spoonacular.ParamMaxPrice, strconv.FormatFloat(prefs.Budget*MealsPerDay, 'f', -1, 64))
	}

	return q.
		Add(spoonacular.ParamAddRecipeInformation, "true").
		Add(spoonacular.ParamFillIngredients, "true").
		Add(spoonacular.ParamAddRecipeNutrition, "true"), nil
}
