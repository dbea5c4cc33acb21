package spoonacular

import (
	"net/url"
	"strings"
)

// complexSearch 查詢參數名稱
const (
	ParamAPIKey               = "apiKey"
	ParamNumber               = "number"
	ParamDiet                 = "diet"
	ParamExcludeIngredients   = "excludeIngredients"
	ParamMaxCalories          = "maxCalories"
	ParamMaxPrice             = "maxPrice"
	ParamAddRecipeInformation = "addRecipeInformation"
	ParamFillIngredients      = "fillIngredients"
	ParamAddRecipeNutrition   = "addRecipeNutrition"
)

// Param 查詢參數
type Param struct {
	Key   string
	Value string
}

// Query 有序的查詢參數
type Query []Param

// Add 附加參數並回傳新的 Query
func (q Query) Add(key, value string) Query {
	return append(q, Param{Key: key, Value: value})
}

// Get 取得第一個符合的參數值
func (q Query) Get(key string) (string, bool) {
	for _, p := range q {
		if p.Key == key {
			return p.Value, true
		}
	}
	return "", false
}

// Without 移除指定參數，不修改原本的 Query
func (q Query) Without(keys ...string) Query {
	out := make(Query, 0, len(q))
	for _, p := range q {
		drop := false
		for _, k := range keys {
			if p.Key == k {
				drop = true
				break
			}
		}
		if !drop {
			out = append(out, p)
		}
	}
	return out
}

// Encode 依插入順序編碼為 query string
func (q Query) Encode() string {
	var sb strings.Builder
	for i, p := range q {
		if i > 0 {
			sb.WriteByte('&')
		}
		sb.WriteString(url.QueryEscape(p.Key))
		sb.WriteByte('=')
		sb.WriteString(url.QueryEscape(p.Value))
	}
	return sb.String()
}
