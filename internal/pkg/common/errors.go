package common

import (
	"errors"
	"net/http"
)

// ErrorResponse 定義 API 錯誤響應結構
type ErrorResponse struct {
	Code    string `json:"code"`              // 錯誤代碼
	Message string `json:"message"`           // 錯誤信息
	Details string `json:"details,omitempty"` // 詳細信息（僅在開發模式顯示）
}

// CustomError 定義自定義錯誤類型
type CustomError struct {
	Code    string // 錯誤代碼
	Message string // 錯誤信息
	Err     error  // 原始錯誤
	Status  int    // HTTP 狀態碼
}

func (e *CustomError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap 回傳原始錯誤
func (e *CustomError) Unwrap() error {
	return e.Err
}

// Is 以錯誤代碼比對，讓包裝過的錯誤仍可與預定義錯誤比較
func (e *CustomError) Is(target error) bool {
	t, ok := target.(*CustomError)
	if !ok {
		return false
	}
	return e.Code == t.Code
}

// NewError 創建新的自定義錯誤
func NewError(code string, message string, status int, err error) *CustomError {
	return &CustomError{
		Code:    code,
		Message: message,
		Status:  status,
		Err:     err,
	}
}

// Wrap 以預定義錯誤為範本包裝原始錯誤
func Wrap(base *CustomError, err error) *CustomError {
	return NewError(base.Code, base.Message, base.Status, err)
}

// StatusOf 取得錯誤對應的 HTTP 狀態碼
func StatusOf(err error) int {
	var ce *CustomError
	if errors.As(err, &ce) && ce.Status != 0 {
		return ce.Status
	}
	return http.StatusInternalServerError
}

// CodeOf 取得錯誤代碼
func CodeOf(err error) string {
	var ce *CustomError
	if errors.As(err, &ce) {
		return ce.Code
	}
	return ErrCodeInternalError
}

// 預定義錯誤代碼
const (
	// 客戶端錯誤 (4xx)
	ErrCodeInvalidRequest    = "INVALID_REQUEST"    // 400
	ErrCodeMissingCredential = "MISSING_CREDENTIAL" // 400
	ErrCodeNotFound          = "NOT_FOUND"          // 404
	ErrCodeTooManyRequests   = "TOO_MANY_REQUESTS"  // 429

	// 服務器錯誤 (5xx)
	ErrCodeInternalError     = "INTERNAL_ERROR"     // 500
	ErrCodeTransportFailure  = "TRANSPORT_FAILURE"  // 502
	ErrCodeMalformedResponse = "MALFORMED_RESPONSE" // 502
	ErrCodeStorageFailure    = "STORAGE_FAILURE"    // 503
)

// 預定義錯誤
var (
	ErrInvalidRequest    = NewError(ErrCodeInvalidRequest, "invalid request", http.StatusBadRequest, nil)
	ErrMissingCredential = NewError(ErrCodeMissingCredential, "recipe API credential is required", http.StatusBadRequest, nil)
	ErrNotFound          = NewError(ErrCodeNotFound, "resource not found", http.StatusNotFound, nil)
	ErrTooManyRequests   = NewError(ErrCodeTooManyRequests, "too many requests", http.StatusTooManyRequests, nil)

	ErrInternalError     = NewError(ErrCodeInternalError, "internal server error", http.StatusInternalServerError, nil)
	ErrTransportFailure  = NewError(ErrCodeTransportFailure, "recipe source request failed", http.StatusBadGateway, nil)
	ErrMalformedResponse = NewError(ErrCodeMalformedResponse, "recipe source returned an unreadable response", http.StatusBadGateway, nil)
	ErrStorageFailure    = NewError(ErrCodeStorageFailure, "local storage unavailable", http.StatusServiceUnavailable, nil)
)
