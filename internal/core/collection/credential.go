package collection

import (
	"context"
	"errors"
	"strings"

	"recipe-planner/internal/core/storage"
	"recipe-planner/internal/pkg/common"
)

var errBlankCredential = errors.New("api key must not be blank")

// Credentials 管理員設定的外部食譜 API 金鑰，以純字串儲存
type Credentials struct {
	store storage.Store
}

// NewCredentials 創建憑證儲存
func NewCredentials(store storage.Store) *Credentials {
	return &Credentials{store: store}
}

// Get 取得憑證，未設定時回傳空字串
func (c *Credentials) Get(ctx context.Context) (string, error) {
	v, ok, err := c.store.Get(ctx, KeyCredential)
	if err != nil || !ok {
		return "", err
	}
	return strings.TrimSpace(v), nil
}

// Set 設定憑證
func (c *Credentials) Set(ctx context.Context, key string) error {
	key = strings.TrimSpace(key)
	if key == "" {
		return common.Wrap(common.ErrInvalidRequest, errBlankCredential)
	}
	return c.store.Set(ctx, KeyCredential, key)
}

// Clear 清除憑證
func (c *Credentials) Clear(ctx context.Context) error {
	return c.store.Delete(ctx, KeyCredential)
}

// IsSet 是否已設定憑證
func (c *Credentials) IsSet(ctx context.Context) (bool, error) {
	v, err := c.Get(ctx)
	return v != "", err
}
