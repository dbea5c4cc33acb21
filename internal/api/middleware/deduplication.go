package middleware

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"io"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"recipe-planner/internal/pkg/common"
)

// deduplicator 記錄最近的 POST 請求指紋
type deduplicator struct {
	mu        sync.Mutex
	window    time.Duration
	now       func() time.Time
	requests  map[string]time.Time
	lastSweep time.Time
}

func newDeduplicator(window time.Duration, now func() time.Time) *deduplicator {
	return &deduplicator{
		window:    window,
		now:       now,
		requests:  make(map[string]time.Time),
		lastSweep: now(),
	}
}

// seen 回傳指紋是否在時間窗內出現過，並記錄本次請求
func (d *deduplicator) seen(fingerprint string) bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	now := d.now()
	// 過期指紋在請求時順帶清理，不需要背景協程
	if now.Sub(d.lastSweep) > 10*d.window {
		for k, t := range d.requests {
			if now.Sub(t) > d.window {
				delete(d.requests, k)
			}
		}
		d.lastSweep = now
	}

	if last, exists := d.requests[fingerprint]; exists && now.Sub(last) <= d.window {
		return true
	}
	d.requests[fingerprint] = now
	return false
}

// Deduplication 拒絕時間窗內內容完全相同的 POST 請求；window <= 0 時停用
func Deduplication(window time.Duration) gin.HandlerFunc {
	if window <= 0 {
		return func(c *gin.Context) { c.Next() }
	}
	return deduplicate(newDeduplicator(window, time.Now))
}

func deduplicate(d *deduplicator) gin.HandlerFunc {
	return func(c *gin.Context) {
		// 只處理 POST 請求
		if c.Request.Method != http.MethodPost {
			c.Next()
			return
		}

		// 計算請求體哈希
		bodyHash := ""
		if c.Request.Body != nil {
			body, err := io.ReadAll(c.Request.Body)
			if err != nil {
				common.LogError("Failed to read request body", zap.Error(err))
				c.Next()
				return
			}
			hash := sha256.Sum256(body)
			bodyHash = hex.EncodeToString(hash[:])

			// 恢復請求體
			c.Request.Body = io.NopCloser(bytes.NewBuffer(body))
		}

		fingerprint := c.ClientIP() + ":" + c.Request.URL.Path + ":" + bodyHash
		if d.seen(fingerprint) {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, common.ErrorResponse{
				Code:    common.ErrCodeTooManyRequests,
				Message: "duplicate request",
			})
			return
		}

		c.Next()
	}
}
