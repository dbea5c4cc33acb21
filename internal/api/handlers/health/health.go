package health

import (
	"context"
	"net/http"
	"runtime"
	"time"

	"recipe-planner/internal/core/cache"
	"recipe-planner/internal/core/storage"
	"recipe-planner/internal/infrastructure/config"
	"recipe-planner/internal/pkg/common"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// 注入到 gin.Context 的鍵
const (
	ContextKeyConfig  = "config"
	ContextKeyStorage = "storage"
	ContextKeyCache   = "cache_manager"
)

// readinessTimeout 儲存後端 ping 的上限
const readinessTimeout = 2 * time.Second

// HealthResponse 健康檢查響應
type HealthResponse struct {
	Status    string                 `json:"status"`
	Timestamp time.Time              `json:"timestamp"`
	Version   string                 `json:"version"`
	Storage   string                 `json:"storage"`
	Runtime   map[string]interface{} `json:"runtime"`
	Cache     *cache.Stats           `json:"cache,omitempty"`
}

// HealthCheck 健康檢查處理器
func HealthCheck(c *gin.Context) {
	// 獲取配置
	cfg, ok := c.MustGet(ContextKeyConfig).(*config.Config)
	if !ok {
		common.LogError("Invalid configuration type in context")
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Invalid configuration type",
		})
		return
	}

	// 獲取運行時信息
	var m runtime.MemStats
	runtime.ReadMemStats(&m)

	response := HealthResponse{
		Status:    "ok",
		Timestamp: time.Now(),
		Version:   cfg.App.Version,
		Storage:   cfg.Storage.Driver,
		Runtime: map[string]interface{}{
			"goroutines": runtime.NumGoroutine(),
			"memory": map[string]interface{}{
				"alloc":       m.Alloc,
				"total_alloc": m.TotalAlloc,
				"sys":         m.Sys,
				"num_gc":      m.NumGC,
			},
		},
	}

	if v, exists := c.Get(ContextKeyCache); exists {
		if manager, ok := v.(*cache.CacheManager); ok && manager != nil {
			stats := manager.GetStats()
			response.Cache = &stats
		}
	}

	common.LogDebug("Health check request",
		zap.String("client_ip", c.ClientIP()),
		zap.String("path", c.Request.URL.Path),
	)

	c.JSON(http.StatusOK, response)
}

// ReadinessCheck 就緒檢查處理器，確認儲存後端可用
func ReadinessCheck(c *gin.Context) {
	store, ok := c.MustGet(ContextKeyStorage).(storage.Store)
	if !ok {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "not ready"})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), readinessTimeout)
	defer cancel()
	if err := store.Ping(ctx); err != nil {
		common.LogWarn("Storage not ready", zap.Error(err))
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status": "not ready",
			"error":  "storage unavailable",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "ready",
	})
}

// LivenessCheck 存活檢查處理器
func LivenessCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "alive",
	})
}
