package collection

import (
	"context"
	"strings"
	"sync"

	"recipe-planner/internal/core/recipe"
	"recipe-planner/internal/core/storage"
	"recipe-planner/internal/pkg/common"

	"go.uber.org/zap"
)

// SavedRecipes 使用者收藏的食譜
type SavedRecipes struct {
	store storage.Store
	mu    sync.Mutex
}

// NewSavedRecipes 創建收藏集合
func NewSavedRecipes(store storage.Store) *SavedRecipes {
	return &SavedRecipes{store: store}
}

// List 列出所有收藏
func (s *SavedRecipes) List(ctx context.Context) ([]recipe.Recipe, error) {
	return loadList[recipe.Recipe](ctx, s.store, KeySavedRecipes)
}

// IsSaved 是否已收藏
func (s *SavedRecipes) IsSaved(ctx context.Context, id string) (bool, error) {
	items, err := s.List(ctx)
	if err != nil {
		return false, err
	}
	return indexOfRecipe(items, id) >= 0, nil
}

// Save 收藏食譜；相同 id 時取代原本的項目
func (s *SavedRecipes) Save(ctx context.Context, r recipe.Recipe) error {
	if strings.TrimSpace(r.ID) == "" {
		return common.Wrap(common.ErrInvalidRequest, errMissingID)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	items, err := s.List(ctx)
	if err != nil {
		return err
	}
	if i := indexOfRecipe(items, r.ID); i >= 0 {
		items[i] = r.Clone()
	} else {
		items = append(items, r.Clone())
	}
	return saveList(ctx, s.store, KeySavedRecipes, items)
}

// Delete 移除收藏；不存在時回傳 ErrNotFound
func (s *SavedRecipes) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	items, err := s.List(ctx)
	if err != nil {
		return err
	}
	i := indexOfRecipe(items, id)
	if i < 0 {
		return common.ErrNotFound
	}
	items = append(items[:i], items[i+1:]...)
	if err := saveList(ctx, s.store, KeySavedRecipes, items); err != nil {
		return err
	}
	common.LogDebug("已刪除收藏", zap.String("recipe_id", id))
	return nil
}

// Toggle 切換收藏狀態，回傳切換後是否為已收藏
func (s *SavedRecipes) Toggle(ctx context.Context, r recipe.Recipe) (bool, error) {
	if strings.TrimSpace(r.ID) == "" {
		return false, common.Wrap(common.ErrInvalidRequest, errMissingID)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	items, err := s.List(ctx)
	if err != nil {
		return false, err
	}
	saved := false
	if i := indexOfRecipe(items, r.ID); i >= 0 {
		items = append(items[:i], items[i+1:]...)
	} else {
		items = append(items, r.Clone())
		saved = true
	}
	if err := saveList(ctx, s.store, KeySavedRecipes, items); err != nil {
		return false, err
	}
	return saved, nil
}

func indexOfRecipe(items []recipe.Recipe, id string) int {
	for i, r := range items {
		if r.ID == id {
			return i
		}
	}
	return -1
}
