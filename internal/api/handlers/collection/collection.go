package collection

import (
	"net/http"

	"recipe-planner/internal/api/handlers"
	collectionService "recipe-planner/internal/core/collection"
	recipeService "recipe-planner/internal/core/recipe"

	"github.com/gin-gonic/gin"
)

// AddItemRequest 新增購物清單項目
type AddItemRequest struct {
	Name     string `json:"name" binding:"required"`
	Quantity string `json:"quantity"`
}

// Handler 收藏與購物清單處理器
type Handler struct {
	saved    *collectionService.SavedRecipes
	shopping *collectionService.ShoppingList
}

// NewHandler 創建集合處理器
func NewHandler(saved *collectionService.SavedRecipes, shopping *collectionService.ShoppingList) *Handler {
	return &Handler{
		saved:    saved,
		shopping: shopping,
	}
}

// ListSaved 列出收藏的食譜
func (h *Handler) ListSaved(c *gin.Context) {
	recipes, err := h.saved.List(c.Request.Context())
	if err != nil {
		handlers.WriteError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"recipes": recipes})
}

// SaveRecipe 收藏食譜
func (h *Handler) SaveRecipe(c *gin.Context) {
	var r recipeService.Recipe
	if !handlers.BindJSON(c, &r) {
		return
	}
	if err := h.saved.Save(c.Request.Context(), r); err != nil {
		handlers.WriteError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"recipe": r})
}

// DeleteSaved 刪除收藏
func (h *Handler) DeleteSaved(c *gin.Context) {
	if err := h.saved.Delete(c.Request.Context(), c.Param("id")); err != nil {
		handlers.WriteError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// ToggleSaved 切換收藏狀態
func (h *Handler) ToggleSaved(c *gin.Context) {
	var r recipeService.Recipe
	if !handlers.BindJSON(c, &r) {
		return
	}
	saved, err := h.saved.Toggle(c.Request.Context(), r)
	if err != nil {
		handlers.WriteError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": r.ID, "saved": saved})
}

// ListItems 列出購物清單
func (h *Handler) ListItems(c *gin.Context) {
	items, err := h.shopping.List(c.Request.Context())
	if err != nil {
		handlers.WriteError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": items})
}

// AddItem 新增購物清單項目
func (h *Handler) AddItem(c *gin.Context) {
	var req AddItemRequest
	if !handlers.BindJSON(c, &req) {
		return
	}
	item, err := h.shopping.Add(c.Request.Context(), req.Name, req.Quantity)
	if err != nil {
		handlers.WriteError(c, err)
		return
	}
	c.JSON(http.StatusCreated, item)
}

// AddFromRecipe 將食譜食材加入購物清單
func (h *Handler) AddFromRecipe(c *gin.Context) {
	var r recipeService.Recipe
	if !handlers.BindJSON(c, &r) {
		return
	}
	items, err := h.shopping.AddIngredients(c.Request.Context(), r)
	if err != nil {
		handlers.WriteError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"items": items})
}

// ToggleItem 切換項目勾選狀態
func (h *Handler) ToggleItem(c *gin.Context) {
	item, err := h.shopping.Toggle(c.Request.Context(), c.Param("id"))
	if err != nil {
		handlers.WriteError(c, err)
		return
	}
	c.JSON(http.StatusOK, item)
}

// DeleteItem 刪除項目
func (h *Handler) DeleteItem(c *gin.Context) {
	if err := h.shopping.Delete(c.Request.Context(), c.Param("id")); err != nil {
		handlers.WriteError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// ClearChecked 移除已勾選的項目
func (h *Handler) ClearChecked(c *gin.Context) {
	removed, err := h.shopping.ClearChecked(c.Request.Context())
	if err != nil {
		handlers.WriteError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"removed": removed})
}
