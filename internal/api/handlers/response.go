package handlers

import (
	"errors"
	"net/http"

	"recipe-planner/internal/pkg/common"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// WriteError 依錯誤類型輸出統一的錯誤響應並中止請求
func WriteError(c *gin.Context, err error) {
	status := common.StatusOf(err)
	resp := common.ErrorResponse{
		Code:    common.CodeOf(err),
		Message: messageOf(err),
	}
	// 僅在開發模式顯示詳細信息
	if gin.IsDebugging() {
		resp.Details = err.Error()
	}

	fields := []zap.Field{
		zap.String("code", resp.Code),
		zap.Int("status", status),
		zap.String("path", c.Request.URL.Path),
		zap.String("request_id", requestid.Get(c)),
		zap.Error(err),
	}
	if status >= http.StatusInternalServerError {
		common.LogError("請求處理失敗", fields...)
	} else {
		common.LogDebug("請求被拒絕", fields...)
	}

	c.AbortWithStatusJSON(status, resp)
}

// BindJSON 解析請求體；失敗時輸出 400 或 413 並回傳 false
func BindJSON(c *gin.Context, v interface{}) bool {
	if err := c.ShouldBindJSON(v); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			c.AbortWithStatusJSON(http.StatusRequestEntityTooLarge, common.ErrorResponse{
				Code:    "REQUEST_TOO_LARGE",
				Message: "request body too large",
			})
			return false
		}
		WriteError(c, common.Wrap(common.ErrInvalidRequest, err))
		return false
	}
	return true
}

func messageOf(err error) string {
	var ce *common.CustomError
	if errors.As(err, &ce) {
		return ce.Message
	}
	return common.ErrInternalError.Message
}
