package admin

import (
	"net/http"

	"recipe-planner/internal/api/handlers"
	"recipe-planner/internal/core/collection"
	"recipe-planner/internal/infrastructure/config"
	"recipe-planner/internal/pkg/common"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// SetCredentialRequest 設定 API 金鑰
type SetCredentialRequest struct {
	APIKey string `json:"api_key" binding:"required"`
}

// CredentialStatus 金鑰狀態，只回傳遮罩後的值
type CredentialStatus struct {
	IsSet  bool   `json:"is_set"`
	Masked string `json:"masked,omitempty"`
}

// Handler 管理員處理器
type Handler struct {
	credentials *collection.Credentials
}

// NewHandler 創建管理員處理器
func NewHandler(credentials *collection.Credentials) *Handler {
	return &Handler{credentials: credentials}
}

// GetCredential 查詢金鑰是否已設定
func (h *Handler) GetCredential(c *gin.Context) {
	key, err := h.credentials.Get(c.Request.Context())
	if err != nil {
		handlers.WriteError(c, err)
		return
	}
	c.JSON(http.StatusOK, CredentialStatus{
		IsSet:  key != "",
		Masked: config.MaskAPIKey(key),
	})
}

// SetCredential 設定金鑰
func (h *Handler) SetCredential(c *gin.Context) {
	var req SetCredentialRequest
	if !handlers.BindJSON(c, &req) {
		return
	}
	if err := h.credentials.Set(c.Request.Context(), req.APIKey); err != nil {
		handlers.WriteError(c, err)
		return
	}

	common.LogInfo("API 金鑰已更新",
		zap.String("masked", config.MaskAPIKey(req.APIKey)),
		zap.String("request_id", requestid.Get(c)),
	)
	h.GetCredential(c)
}

// ClearCredential 清除金鑰，之後的請求改用範例資料
func (h *Handler) ClearCredential(c *gin.Context) {
	if err := h.credentials.Clear(c.Request.Context()); err != nil {
		handlers.WriteError(c, err)
		return
	}
	common.LogInfo("API 金鑰已清除", zap.String("request_id", requestid.Get(c)))
	c.Status(http.StatusNoContent)
}
