package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"recipe-planner/internal/api"
	"recipe-planner/internal/core/cache"
	"recipe-planner/internal/core/collection"
	"recipe-planner/internal/core/spoonacular"
	"recipe-planner/internal/core/storage"
	"recipe-planner/internal/infrastructure/config"
	"recipe-planner/internal/pkg/common"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	// 載入 .env
	if err := godotenv.Load(); err != nil {
		fmt.Println("Warning: .env file not found")
	}

	// 載入設定
	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// 初始化 logger（需在載入 config 後）
	if err := common.InitLogger(cfg.LogLevel, cfg.LogFile); err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer common.Sync()

	common.LogInfo("載入設定",
		zap.String("spoonacular_base_url", cfg.Spoonacular.BaseURL),
		zap.String("spoonacular_key", config.MaskAPIKey(cfg.Spoonacular.APIKey)),
		zap.String("storage_driver", cfg.Storage.Driver),
	)

	// 初始化儲存
	startupCtx, cancelStartup := context.WithTimeout(context.Background(), 10*time.Second)
	store, err := storage.New(startupCtx, cfg.Storage)
	if err != nil {
		cancelStartup()
		common.LogFatal("Failed to initialize storage", zap.Error(err))
	}
	defer store.Close()

	// 環境變數中的金鑰視為管理員預先設定
	if cfg.Spoonacular.APIKey != "" {
		if err := collection.NewCredentials(store).Set(startupCtx, cfg.Spoonacular.APIKey); err != nil {
			common.LogError("Failed to seed API key", zap.Error(err))
		}
	}
	cancelStartup()

	// 初始化快取，關閉時不可傳入 nil 指標作為介面
	cacheManager := cache.NewManager(cfg.Cache)
	defer cacheManager.Close()
	var responseCache spoonacular.ResponseCache
	if cacheManager != nil {
		responseCache = cacheManager
	}
	searcher := spoonacular.NewClient(cfg.Spoonacular, responseCache)

	// 設置路由
	router, err := api.SetupRouter(cfg, api.Dependencies{
		Store:        store,
		Searcher:     searcher,
		CacheManager: cacheManager,
	})
	if err != nil {
		common.LogError("Failed to setup router", zap.Error(err))
		os.Exit(1)
	}

	// 設置 HTTP 服務器
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	// 啟動服務器
	go func() {
		common.LogInfo("啟動應用",
			zap.String("version", cfg.App.Version),
			zap.String("env", cfg.App.Env),
			zap.Int("port", cfg.Server.Port),
		)

		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			common.LogFatal("Failed to start server", zap.Error(err))
		}
	}()

	// 等待中斷信號
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	common.LogInfo("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		common.LogError("Server forced to shutdown", zap.Error(err))
	}

	common.LogInfo("Server exited")
}
