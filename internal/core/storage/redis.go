package storage

import (
	"context"
	"errors"
	"fmt"

	"recipe-planner/internal/infrastructure/config"
	"recipe-planner/internal/pkg/common"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// keyPrefix Redis 鍵前綴
const keyPrefix = "recipe-planner:"

// RedisStore 以 Redis 作為持久化儲存，不設過期時間
type RedisStore struct {
	client *redis.Client
}

// NewRedisStore 創建 Redis 儲存並測試連線
func NewRedisStore(ctx context.Context, cfg config.StorageConfig) (*RedisStore, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})

	// 測試連接
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, common.Wrap(common.ErrStorageFailure, fmt.Errorf("failed to connect to Redis: %w", err))
	}

	common.LogInfo("Redis 儲存已連線",
		zap.String("addr", cfg.RedisAddr),
		zap.Int("db", cfg.RedisDB),
	)
	return &RedisStore{client: client}, nil
}

func (s *RedisStore) Get(ctx context.Context, key string) (string, bool, error) {
	v, err := s.client.Get(ctx, keyPrefix+key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", false, nil
		}
		return "", false, common.Wrap(common.ErrStorageFailure, fmt.Errorf("get %s: %w", key, err))
	}
	return v, true, nil
}

func (s *RedisStore) Set(ctx context.Context, key, value string) error {
	if err := s.client.Set(ctx, keyPrefix+key, value, 0).Err(); err != nil {
		return common.Wrap(common.ErrStorageFailure, fmt.Errorf("set %s: %w", key, err))
	}
	return nil
}

func (s *RedisStore) Delete(ctx context.Context, key string) error {
	if err := s.client.Del(ctx, keyPrefix+key).Err(); err != nil {
		return common.Wrap(common.ErrStorageFailure, fmt.Errorf("delete %s: %w", key, err))
	}
	return nil
}

func (s *RedisStore) Ping(ctx context.Context) error {
	if err := s.client.Ping(ctx).Err(); err != nil {
		return common.Wrap(common.ErrStorageFailure, err)
	}
	return nil
}

func (s *RedisStore) Close() error {
	return s.client.Close()
}
