package collection

import (
	"context"
	"fmt"

	"recipe-planner/internal/core/storage"
	"recipe-planner/internal/pkg/common"

	"go.uber.org/zap"
)

// 儲存鍵，與瀏覽器端 localStorage 使用的名稱相同
const (
	KeySavedRecipes = "savedRecipes"
	KeyShoppingList = "shoppingList"
	KeyCredential   = "spoonacular_api_key"
)

// loadList 讀取整個集合；無法解析的內容視為空集合
func loadList[T any](ctx context.Context, store storage.Store, key string) ([]T, error) {
	raw, ok, err := store.Get(ctx, key)
	if err != nil {
		return nil, err
	}
	if !ok || raw == "" {
		return []T{}, nil
	}

	var items []T
	if err := common.ParseJSON(raw, &items); err != nil {
		common.LogWarn("集合內容無法解析，視為空集合",
			zap.String("key", key),
			zap.Error(err),
		)
		return []T{}, nil
	}
	if items == nil {
		items = []T{}
	}
	return items, nil
}

// saveList 以單一 JSON 字串覆寫整個集合
func saveList[T any](ctx context.Context, store storage.Store, key string, items []T) error {
	if items == nil {
		items = []T{}
	}
	data, err := common.ToJSON(items)
	if err != nil {
		return fmt.Errorf("failed to marshal %s: %w", key, err)
	}
	return store.Set(ctx, key, data)
}
