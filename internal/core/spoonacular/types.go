package spoonacular

import (
	"encoding/json"
	"fmt"

	"recipe-planner/internal/pkg/common"
)

// RawRecipe complexSearch 回傳的單筆食譜，每個欄位都可能缺漏
type RawRecipe struct {
	ID                   OptString                 `json:"id"`
	Title                OptString                 `json:"title"`
	Summary              OptString                 `json:"summary"`
	Image                OptString                 `json:"image"`
	Servings             OptFloat                  `json:"servings"`
	PreparationMinutes   OptFloat                  `json:"preparationMinutes"`
	CookingMinutes       OptFloat                  `json:"cookingMinutes"`
	Vegetarian           OptBool                   `json:"vegetarian"`
	Vegan                OptBool                   `json:"vegan"`
	GlutenFree           OptBool                   `json:"glutenFree"`
	DairyFree            OptBool                   `json:"dairyFree"`
	VeryHealthy          OptBool                   `json:"veryHealthy"`
	Cheap                OptBool                   `json:"cheap"`
	ExtendedIngredients  List[RawIngredient]       `json:"extendedIngredients"`
	Nutrition            Object[RawNutrition]      `json:"nutrition"`
	AnalyzedInstructions List[RawInstructionGroup] `json:"analyzedInstructions"`
}

// RawIngredient 食材
type RawIngredient struct {
	Name          OptString                `json:"name"`
	Amount        OptString                `json:"amount"`
	Unit          OptString                `json:"unit"`
	EstimatedCost Object[RawEstimatedCost] `json:"estimatedCost"`
}

// RawEstimatedCost 估計價格，value 以美分計
type RawEstimatedCost struct {
	Value OptFloat  `json:"value"`
	Unit  OptString `json:"unit"`
}

// RawNutrition 營養資訊
type RawNutrition struct {
	Nutrients List[RawNutrient] `json:"nutrients"`
}

// RawNutrient 單一營養素
type RawNutrient struct {
	Name   OptString `json:"name"`
	Amount OptFloat  `json:"amount"`
	Unit   OptString `json:"unit"`
}

// RawInstructionGroup 步驟群組
type RawInstructionGroup struct {
	Name  OptString     `json:"name"`
	Steps List[RawStep] `json:"steps"`
}

// RawStep 單一步驟
type RawStep struct {
	Number OptFloat  `json:"number"`
	Step   OptString `json:"step"`
}

// SearchResponse 搜尋結果
type SearchResponse struct {
	Results      []RawRecipe
	TotalResults int
}

// ParseSearchResponse 解析搜尋回應；results 缺漏或不是陣列時視為無法解析
func ParseSearchResponse(body []byte) (*SearchResponse, error) {
	var envelope struct {
		Results      json.RawMessage `json:"results"`
		TotalResults OptFloat        `json:"totalResults"`
	}
	if err := common.ParseJSONBytes(body, &envelope); err != nil {
		return nil, common.Wrap(common.ErrMalformedResponse, err)
	}
	if len(envelope.Results) == 0 || isNull(envelope.Results) {
		return nil, common.Wrap(common.ErrMalformedResponse, fmt.Errorf("missing results field"))
	}

	var items []json.RawMessage
	if err := json.Unmarshal(envelope.Results, &items); err != nil {
		return nil, common.Wrap(common.ErrMalformedResponse, fmt.Errorf("results is not an array: %w", err))
	}

	resp := &SearchResponse{
		Results:      make([]RawRecipe, 0, len(items)),
		TotalResults: envelope.TotalResults.Positive(0),
	}
	for _, item := range items {
		var r RawRecipe
		if err := json.Unmarshal(item, &r); err != nil {
			r = RawRecipe{}
		}
		resp.Results = append(resp.Results, r)
	}
	if resp.TotalResults < len(resp.Results) {
		resp.TotalResults = len(resp.Results)
	}
	return resp, nil
}
