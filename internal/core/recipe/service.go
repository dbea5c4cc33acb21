package recipe

import (
	"context"
	"fmt"
	"strings"
	"time"

	"recipe-planner/internal/core/spoonacular"
	"recipe-planner/internal/pkg/common"

	"go.uber.org/zap"
)

// Status 一次搜尋的最終狀態
type Status string

const (
	StatusSuccess         Status = "success"
	StatusNoMatches       Status = "no_matches"
	StatusUsingSampleData Status = "using_sample_data"
)

// 使用範例資料的原因
const (
	ReasonNoCredential = "no credential configured"
	ReasonFetchFailed  = "fetch failed"
)

// Searcher 外部食譜來源
type Searcher interface {
	Search(ctx context.Context, q spoonacular.Query) (*spoonacular.SearchResponse, error)
}

// Result 搜尋結果；Recipes 永遠不為 nil
type Result struct {
	Recipes []Recipe `json:"recipes"`
	Status  Status   `json:"status"`
	Reason  string   `json:"reason,omitempty"`
	Message string   `json:"message"`
}

// RecipeService 食譜取得流程：外部搜尋失敗或未設定憑證時改用內建範例資料
// --------------------------------------------------
type RecipeService struct {
	searcher Searcher
}

// NewRecipeService 創建新的食譜服務
func NewRecipeService(searcher Searcher) *RecipeService {
	return &RecipeService{searcher: searcher}
}

// GenerateRecipes 依偏好取得食譜。此方法不回傳錯誤：
// 任何失敗都轉為範例資料並在 Result 中標明原因。
func (s *RecipeService) GenerateRecipes(ctx context.Context, prefs UserPreferences, credential string) Result {
	q, err := EncodeQuery(prefs, credential)
	if err != nil {
		common.LogInfo("未設定憑證，使用範例資料")
		return sampleResult(ReasonNoCredential,
			"No recipe API key configured. Showing sample recipes instead.")
	}

	start := time.Now()
	resp, err := s.searcher.Search(ctx, q)
	if err == nil && resp == nil {
		err = common.ErrMalformedResponse
	}
	if err != nil {
		common.LogWarn("食譜搜尋失敗，改用範例資料",
			zap.String("code", common.CodeOf(err)),
			zap.Error(err),
			zap.Duration("duration", time.Since(start)),
		)
		return sampleResult(ReasonFetchFailed,
			"Could not reach the recipe service. Showing sample recipes instead.")
	}

	if len(resp.Results) == 0 {
		common.LogInfo("沒有符合條件的食譜",
			zap.String("diet", strings.Join(prefs.DietaryRestrictions, ",")),
			zap.Int("calorie_target", prefs.CalorieTarget),
		)
		return Result{
			Recipes: []Recipe{},
			Status:  StatusNoMatches,
			Message: "No recipes match your preferences. Try relaxing your filters.",
		}
	}

	recipes := make([]Recipe, 0, len(resp.Results))
	for _, raw := range resp.Results {
		recipes = append(recipes, Normalize(raw))
	}
	uniqueIDs(recipes)

	common.LogInfo("食譜搜尋完成",
		zap.Int("count", len(recipes)),
		zap.Int("total_results", resp.TotalResults),
		zap.Duration("duration", time.Since(start)),
	)
	return Result{
		Recipes: recipes,
		Status:  StatusSuccess,
		Message: fmt.Sprintf("Found %d recipes that match your preferences.", len(recipes)),
	}
}

func sampleResult(reason, message string) Result {
	return Result{
		Recipes: SampleRecipes(),
		Status:  StatusUsingSampleData,
		Reason:  reason,
		Message: message,
	}
}
