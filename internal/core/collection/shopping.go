package collection

import (
	"context"
	"errors"
	"strings"
	"sync"

	"recipe-planner/internal/core/recipe"
	"recipe-planner/internal/core/storage"
	"recipe-planner/internal/pkg/common"
)

var (
	errMissingID   = errors.New("id is required")
	errMissingName = errors.New("item name is required")
)

// Item 購物清單項目
type Item struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Quantity string `json:"quantity"`
	Checked  bool   `json:"checked"`
}

// ShoppingList 購物清單
type ShoppingList struct {
	store storage.Store
	newID func() string
	mu    sync.Mutex
}

// NewShoppingList 創建購物清單
func NewShoppingList(store storage.Store) *ShoppingList {
	return &ShoppingList{
		store: store,
		newID: common.GenerateUUID,
	}
}

// List 列出所有項目
func (l *ShoppingList) List(ctx context.Context) ([]Item, error) {
	return loadList[Item](ctx, l.store, KeyShoppingList)
}

// Add 新增項目；名稱空白時回傳 ErrInvalidRequest
func (l *ShoppingList) Add(ctx context.Context, name, quantity string) (Item, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Item{}, common.Wrap(common.ErrInvalidRequest, errMissingName)
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	items, err := l.List(ctx)
	if err != nil {
		return Item{}, err
	}
	item := Item{
		ID:       l.newID(),
		Name:     name,
		Quantity: strings.TrimSpace(quantity),
	}
	items = append(items, item)
	if err := saveList(ctx, l.store, KeyShoppingList, items); err != nil {
		return Item{}, err
	}
	return item, nil
}

// AddIngredients 將食譜的所有食材加入清單，數量為「數量 單位」
func (l *ShoppingList) AddIngredients(ctx context.Context, r recipe.Recipe) ([]Item, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	items, err := l.List(ctx)
	if err != nil {
		return nil, err
	}
	added := make([]Item, 0, len(r.Ingredients))
	for _, ing := range r.Ingredients {
		name := strings.TrimSpace(ing.Name)
		if name == "" {
			continue
		}
		added = append(added, Item{
			ID:       l.newID(),
			Name:     name,
			Quantity: strings.TrimSpace(strings.TrimSpace(ing.Amount) + " " + strings.TrimSpace(ing.Unit)),
		})
	}
	if len(added) == 0 {
		return added, nil
	}
	if err := saveList(ctx, l.store, KeyShoppingList, append(items, added...)); err != nil {
		return nil, err
	}
	return added, nil
}

// Toggle 切換勾選狀態
func (l *ShoppingList) Toggle(ctx context.Context, id string) (Item, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	items, err := l.List(ctx)
	if err != nil {
		return Item{}, err
	}
	i := indexOfItem(items, id)
	if i < 0 {
		return Item{}, common.ErrNotFound
	}
	items[i].Checked = !items[i].Checked
	if err := saveList(ctx, l.store, KeyShoppingList, items); err != nil {
		return Item{}, err
	}
	return items[i], nil
}

// Delete 刪除項目
func (l *ShoppingList) Delete(ctx context.Context, id string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	items, err := l.List(ctx)
	if err != nil {
		return err
	}
	i := indexOfItem(items, id)
	if i < 0 {
		return common.ErrNotFound
	}
	return saveList(ctx, l.store, KeyShoppingList, append(items[:i], items[i+1:]...))
}

// ClearChecked 移除所有已勾選的項目，回傳移除數量
func (l *ShoppingList) ClearChecked(ctx context.Context) (int, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	items, err := l.List(ctx)
	if err != nil {
		return 0, err
	}
	kept := make([]Item, 0, len(items))
	for _, item := range items {
		if !item.Checked {
			kept = append(kept, item)
		}
	}
	removed := len(items) - len(kept)
	if removed == 0 {
		return 0, nil
	}
	if err := saveList(ctx, l.store, KeyShoppingList, kept); err != nil {
		return 0, err
	}
	return removed, nil
}

func indexOfItem(items []Item, id string) int {
	for i, item := range items {
		if item.ID == id {
			return i
		}
	}
	return -1
}
