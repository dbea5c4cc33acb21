package storage

import (
	"context"
	"fmt"

	"recipe-planner/internal/infrastructure/config"
)

// Store 字串鍵值儲存；每個集合以單一 JSON 字串存放在固定的鍵下
type Store interface {
	// Get 取得值，鍵不存在時 ok 為 false
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
	Ping(ctx context.Context) error
	Close() error
}

// New 依設定建立儲存後端
func New(ctx context.Context, cfg config.StorageConfig) (Store, error) {
	switch cfg.Driver {
	case config.StorageDriverMemory, "":
		return NewMemoryStore(), nil
	case config.StorageDriverRedis:
		return NewRedisStore(ctx, cfg)
	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.Driver)
	}
}
