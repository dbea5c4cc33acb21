package api

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"recipe-planner/internal/api/handlers/admin"
	collectionHandler "recipe-planner/internal/api/handlers/collection"
	"recipe-planner/internal/api/handlers/health"
	recipeHandler "recipe-planner/internal/api/handlers/recipe"
	"recipe-planner/internal/api/middleware"
	"recipe-planner/internal/core/cache"
	"recipe-planner/internal/core/collection"
	recipeService "recipe-planner/internal/core/recipe"
	"recipe-planner/internal/core/storage"
	"recipe-planner/internal/infrastructure/config"
	"recipe-planner/internal/pkg/common"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// timeoutDuration 單一請求的處理上限
const timeoutDuration = 60 * time.Second

// Dependencies 路由需要的服務
type Dependencies struct {
	Store        storage.Store
	Searcher     recipeService.Searcher
	CacheManager *cache.CacheManager
}

// SetupRouter 設置路由
func SetupRouter(cfg *config.Config, deps Dependencies) (*gin.Engine, error) {
	if deps.Store == nil {
		return nil, fmt.Errorf("storage is required")
	}
	if deps.Searcher == nil {
		return nil, fmt.Errorf("recipe searcher is required")
	}

	common.LogInfo("Starting router setup",
		zap.Bool("debug_mode", cfg.App.Debug),
		zap.String("version", cfg.App.Version),
		zap.String("environment", cfg.App.Env),
	)

	// 設置 gin 模式
	if !cfg.App.Debug {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	// 註冊基礎中間件
	router.Use(middleware.Recovery())
	router.Use(middleware.Logger())
	router.Use(requestid.New())

	// CORS 設置
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "X-Request-ID"},
		ExposeHeaders:    []string{"Content-Length", "X-Request-ID"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	// 請求體大小限制
	router.Use(middleware.BodySizeLimit(cfg.Server.MaxBodyBytes))

	if cfg.RateLimit.Enabled {
		router.Use(middleware.RateLimit(cfg.RateLimit.Requests, cfg.RateLimit.Window))
	}

	// 初始化服務
	credentials := collection.NewCredentials(deps.Store)
	savedRecipes := collection.NewSavedRecipes(deps.Store)
	shoppingList := collection.NewShoppingList(deps.Store)
	recipeSvc := recipeService.NewRecipeService(deps.Searcher)

	common.LogInfo("Services initialized",
		zap.String("storage_driver", cfg.Storage.Driver),
		zap.Bool("cache_enabled", deps.CacheManager != nil),
		zap.Bool("rate_limit_enabled", cfg.RateLimit.Enabled),
		zap.Duration("dedup_window", cfg.DedupWindow),
	)

	// 全局中間件：設置超時並注入健康檢查需要的資源
	router.Use(func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), timeoutDuration)
		defer cancel()
		c.Request = c.Request.WithContext(ctx)

		c.Set(health.ContextKeyConfig, cfg)
		c.Set(health.ContextKeyStorage, deps.Store)
		if deps.CacheManager != nil {
			c.Set(health.ContextKeyCache, deps.CacheManager)
		}

		c.Next()

		// 檢查是否超時
		if ctx.Err() == context.DeadlineExceeded && !c.Writer.Written() {
			common.LogError("Request timeout",
				zap.String("path", c.Request.URL.Path),
				zap.String("request_id", requestid.Get(c)),
				zap.Duration("timeout", timeoutDuration),
			)
			c.AbortWithStatusJSON(http.StatusGatewayTimeout, common.ErrorResponse{
				Code:    "REQUEST_TIMEOUT",
				Message: "request timeout",
			})
		}
	})

	// 健康檢查路由
	router.GET("/health", health.HealthCheck)
	router.GET("/ready", health.ReadinessCheck)
	router.GET("/live", health.LivenessCheck)

	// API 路由組
	api := router.Group("/api/v1")
	{
		recipes := recipeHandler.NewHandler(recipeSvc, credentials)
		recipeGroup := api.Group("/recipes", middleware.Deduplication(cfg.DedupWindow))
		{
			recipeGroup.POST("/generate", recipes.HandleGenerate)
			recipeGroup.POST("/adjust-prices", recipes.HandleAdjustPrices)
		}

		collections := collectionHandler.NewHandler(savedRecipes, shoppingList)
		savedGroup := api.Group("/saved-recipes")
		{
			savedGroup.GET("", collections.ListSaved)
			savedGroup.POST("", collections.SaveRecipe)
			savedGroup.POST("/toggle", collections.ToggleSaved)
			savedGroup.DELETE("/:id", collections.DeleteSaved)
		}

		shoppingGroup := api.Group("/shopping-list")
		{
			shoppingGroup.GET("", collections.ListItems)
			shoppingGroup.POST("", collections.AddItem)
			shoppingGroup.POST("/from-recipe", collections.AddFromRecipe)
			shoppingGroup.PATCH("/:id/toggle", collections.ToggleItem)
			shoppingGroup.DELETE("/checked", collections.ClearChecked)
			shoppingGroup.DELETE("/:id", collections.DeleteItem)
		}

		adminHandler := admin.NewHandler(credentials)
		adminGroup := api.Group("/admin")
		{
			adminGroup.GET("/credential", adminHandler.GetCredential)
			adminGroup.PUT("/credential", adminHandler.SetCredential)
			adminGroup.DELETE("/credential", adminHandler.ClearCredential)
		}
	}

	common.LogInfo("Router setup completed successfully",
		zap.Duration("timeout", timeoutDuration),
		zap.Int64("max_body_size", cfg.Server.MaxBodyBytes),
	)

	return router, nil
}
