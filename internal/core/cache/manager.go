package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"sync"
	"time"

	"recipe-planner/internal/infrastructure/config"
	"recipe-planner/internal/pkg/common"

	"go.uber.org/zap"
)

var (
	// ErrCacheMiss 快取未命中或已過期
	ErrCacheMiss = errors.New("cache miss")
	// ErrCacheFull 淘汰後仍無空間
	ErrCacheFull = errors.New("cache full")
)

// CacheManager 搜尋回應快取管理器
type CacheManager struct {
	config config.CacheConfig
	now    func() time.Time
	mu     sync.Mutex
	store  map[string]cacheEntry
	stats  cacheStats
	done   chan struct{}
	once   sync.Once
}

type cacheEntry struct {
	value       string
	expiresAt   time.Time
	createdAt   time.Time
	lastAccess  time.Time
	accessCount int
}

type cacheStats struct {
	hits      int64
	misses    int64
	evictions int64
	errors    int64
}

// Stats 快取統計
type Stats struct {
	Size      int     `json:"size"`
	MaxSize   int     `json:"max_size"`
	Hits      int64   `json:"hits"`
	Misses    int64   `json:"misses"`
	Evictions int64   `json:"evictions"`
	Errors    int64   `json:"errors"`
	HitRatio  float64 `json:"hit_ratio"`
}

// NewManager 創建新的緩存管理器；快取關閉時回傳 nil
func NewManager(cfg config.CacheConfig) *CacheManager {
	if !cfg.Enabled {
		common.LogInfo("Cache disabled")
		return nil
	}

	m := newManager(cfg, time.Now)
	go m.startCleanup()

	common.LogInfo("快取管理員已初始化",
		zap.Int("最大容量", cfg.MaxSize),
		zap.Duration("存活時間", cfg.TTL),
		zap.Duration("清理間隔", cfg.CleanupInterval),
	)
	return m
}

func newManager(cfg config.CacheConfig, now func() time.Time) *CacheManager {
	return &CacheManager{
		config: cfg,
		now:    now,
		store:  make(map[string]cacheEntry),
		done:   make(chan struct{}),
	}
}

// Get 獲取緩存值
func (m *CacheManager) Get(ctx context.Context, key string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	k := hashKey(key)
	entry, exists := m.store[k]
	if !exists {
		m.stats.misses++
		common.LogCacheMiss("search")
		return "", ErrCacheMiss
	}

	if m.now().After(entry.expiresAt) {
		delete(m.store, k)
		m.stats.evictions++
		m.stats.misses++
		common.LogCacheMiss("search")
		return "", ErrCacheMiss
	}

	entry.lastAccess = m.now()
	entry.accessCount++
	m.store[k] = entry
	m.stats.hits++
	common.LogCacheHit("search")
	return entry.value, nil
}

// Set 設置緩存值
func (m *CacheManager) Set(ctx context.Context, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	k := hashKey(key)
	if _, exists := m.store[k]; !exists && len(m.store) >= m.config.MaxSize {
		if evicted := m.cleanup(); evicted > 0 {
			common.LogDebug("快取清理執行", zap.Int("清理數量", evicted))
		}
		if len(m.store) >= m.config.MaxSize {
			m.evictLRU()
		}
		if len(m.store) >= m.config.MaxSize {
			m.stats.errors++
			common.LogWarn("快取已滿", zap.Int("目前容量", len(m.store)))
			return ErrCacheFull
		}
	}

	now := m.now()
	m.store[k] = cacheEntry{
		value:      value,
		expiresAt:  now.Add(m.config.TTL),
		createdAt:  now,
		lastAccess: now,
	}
	return nil
}

// hashKey 計算鍵的 SHA-256，避免把查詢內容直接留在記憶體索引中
func hashKey(s string) string {
	hash := sha256.Sum256([]byte(s))
	return hex.EncodeToString(hash[:])
}

func (m *CacheManager) startCleanup() {
	ticker := time.NewTicker(m.config.CleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			m.mu.Lock()
			m.cleanup()
			m.mu.Unlock()
		case <-m.done:
			return
		}
	}
}

// cleanup 清理過期的緩存，呼叫端需持有鎖
func (m *CacheManager) cleanup() int {
	now := m.now()
	count := 0
	for key, entry := range m.store {
		if now.After(entry.expiresAt) {
			delete(m.store, key)
			count++
			m.stats.evictions++
		}
	}

	if count > 0 {
		common.LogDebug("Cleaned up expired cache entries",
			zap.Int("count", count),
			zap.Int64("total_evictions", m.stats.evictions),
			zap.Int("remaining_size", len(m.store)),
		)
	}
	return count
}

// evictLRU 淘汰存取次數最少、最久未使用的項目，呼叫端需持有鎖
func (m *CacheManager) evictLRU() {
	var oldestKey string
	var oldestAccess time.Time
	var lowestAccessCount int

	for key, entry := range m.store {
		if oldestKey == "" ||
			entry.accessCount < lowestAccessCount ||
			(entry.accessCount == lowestAccessCount && entry.lastAccess.Before(oldestAccess)) {
			oldestKey = key
			oldestAccess = entry.lastAccess
			lowestAccessCount = entry.accessCount
		}
	}

	if oldestKey != "" {
		delete(m.store, oldestKey)
		m.stats.evictions++
		common.LogDebug("快取已淘汰(LRU)", zap.String("鍵", oldestKey))
	}
}

// GetStats 獲取緩存統計信息
func (m *CacheManager) GetStats() Stats {
	m.mu.Lock()
	defer m.mu.Unlock()

	s := Stats{
		Size:      len(m.store),
		MaxSize:   m.config.MaxSize,
		Hits:      m.stats.hits,
		Misses:    m.stats.misses,
		Evictions: m.stats.evictions,
		Errors:    m.stats.errors,
	}
	if total := s.Hits + s.Misses; total > 0 {
		s.HitRatio = float64(s.Hits) / float64(total)
	}
	return s
}

// Close 停止清理協程並清空快取
func (m *CacheManager) Close() error {
	if m == nil {
		return nil
	}
	m.once.Do(func() { close(m.done) })

	m.mu.Lock()
	defer m.mu.Unlock()
	m.store = make(map[string]cacheEntry)
	common.LogInfo("快取管理員已關閉",
		zap.Int64("命中次數", m.stats.hits),
		zap.Int64("未命中次數", m.stats.misses),
		zap.Int64("淘汰次數", m.stats.evictions),
	)
	return nil
}
