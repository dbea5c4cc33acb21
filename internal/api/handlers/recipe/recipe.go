package recipe

import (
	"net/http"

	"recipe-planner/internal/api/handlers"
	"recipe-planner/internal/core/collection"
	"recipe-planner/internal/core/currency"
	recipeService "recipe-planner/internal/core/recipe"
	"recipe-planner/internal/pkg/common"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// PreferencesRequest 表單送出的偏好設定
type PreferencesRequest struct {
	Location            string   `json:"location"`
	DietaryRestrictions []string `json:"dietaryRestrictions"`
	CalorieTarget       int      `json:"calorieTarget" binding:"gt=0"`
	Budget              float64  `json:"budget" binding:"gt=0"`
	ExcludedIngredients []string `json:"excludedIngredients"`
}

// GenerateRequest 產生食譜請求
type GenerateRequest struct {
	Preferences  PreferencesRequest `json:"preferences"`
	AdjustPrices bool               `json:"adjust_prices"`
}

// GenerateResponse 產生食譜響應
type GenerateResponse struct {
	Status  recipeService.Status `json:"status"`
	Reason  string               `json:"reason,omitempty"`
	Message string               `json:"message"`
	Recipes []RecipeView         `json:"recipes"`
}

// AdjustPricesRequest 依地區調整價格請求
type AdjustPricesRequest struct {
	Recipe   recipeService.Recipe `json:"recipe"`
	Location string               `json:"location"`
}

// RecipeView 食譜加上列伊顯示價格
type RecipeView struct {
	recipeService.Recipe
	TotalPriceRON      string `json:"total_price_ron"`
	PricePerServingRON string `json:"price_per_serving_ron"`
}

// Handler 食譜處理器
type Handler struct {
	recipes     *recipeService.RecipeService
	credentials *collection.Credentials
}

// NewHandler 創建食譜處理器
func NewHandler(recipes *recipeService.RecipeService, credentials *collection.Credentials) *Handler {
	return &Handler{
		recipes:     recipes,
		credentials: credentials,
	}
}

// ToPreferences 轉為核心偏好設定，清理清單中的空白與重複項目
func (p PreferencesRequest) ToPreferences() recipeService.UserPreferences {
	return recipeService.UserPreferences{
		Location:            p.Location,
		DietaryRestrictions: common.CleanStringList(p.DietaryRestrictions),
		CalorieTarget:       p.CalorieTarget,
		Budget:              p.Budget,
		ExcludedIngredients: common.CleanStringList(p.ExcludedIngredients),
	}
}

// NewRecipeView 計算列伊顯示價格
func NewRecipeView(r recipeService.Recipe) RecipeView {
	return RecipeView{
		Recipe:             r,
		TotalPriceRON:      currency.FormatRON(currency.USDToRON(r.TotalPrice)),
		PricePerServingRON: currency.FormatRON(currency.USDToRON(r.PricePerServing)),
	}
}

// NewRecipeViews 批次轉換
func NewRecipeViews(recipes []recipeService.Recipe) []RecipeView {
	views := make([]RecipeView, 0, len(recipes))
	for _, r := range recipes {
		views = append(views, NewRecipeView(r))
	}
	return views
}

// HandleGenerate 依偏好取得食譜；外部來源失敗時仍回傳 200 與範例資料
func (h *Handler) HandleGenerate(c *gin.Context) {
	requestID := requestid.Get(c)

	var req GenerateRequest
	if !handlers.BindJSON(c, &req) {
		return
	}
	prefs := req.Preferences.ToPreferences()

	credential, err := h.credentials.Get(c.Request.Context())
	if err != nil {
		handlers.WriteError(c, err)
		return
	}

	result := h.recipes.GenerateRecipes(c.Request.Context(), prefs, credential)

	recipes := result.Recipes
	if req.AdjustPrices {
		recipes = recipeService.AdjustAll(recipes, prefs.Location)
	}

	common.LogInfo("食譜請求完成",
		zap.String("request_id", requestID),
		zap.String("status", string(result.Status)),
		zap.String("reason", result.Reason),
		zap.Int("count", len(recipes)),
		zap.String("location", prefs.Location),
		zap.Bool("adjust_prices", req.AdjustPrices),
	)

	c.JSON(http.StatusOK, GenerateResponse{
		Status:  result.Status,
		Reason:  result.Reason,
		Message: result.Message,
		Recipes: NewRecipeViews(recipes),
	})
}

// HandleAdjustPrices 依地區係數重新計算單一食譜的價格
func (h *Handler) HandleAdjustPrices(c *gin.Context) {
	var req AdjustPricesRequest
	if !handlers.BindJSON(c, &req) {
		return
	}

	adjusted := recipeService.AdjustPrices(req.Recipe, req.Location)
	c.JSON(http.StatusOK, gin.H{
		"factor": recipeService.FactorFor(req.Location),
		"recipe": NewRecipeView(adjusted),
	})
}
