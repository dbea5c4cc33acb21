package spoonacular

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"net/url"
	"strings"
	"time"
	"unicode/utf8"

	"recipe-planner/internal/infrastructure/config"
	"recipe-planner/internal/pkg/common"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"
)

// SearchPath complexSearch 端點
const SearchPath = "/recipes/complexSearch"

// ResponseCache 搜尋回應快取
type ResponseCache interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
}

// Client Spoonacular API 客戶端
type Client struct {
	client *resty.Client
	cache  ResponseCache
}

// NewClient 創建 Spoonacular 客戶端；cache 可為 nil
func NewClient(cfg config.SpoonacularConfig, cache ResponseCache) *Client {
	client := resty.New().
		SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
		SetTimeout(cfg.Timeout).
		SetHeader("Accept", "application/json")

	return &Client{
		client: client,
		cache:  cache,
	}
}

// Search 呼叫 complexSearch；每次呼叫最多發出一個 HTTP 請求
func (c *Client) Search(ctx context.Context, q Query) (*SearchResponse, error) {
	credential, _ := q.Get(ParamAPIKey)
	redacted := q.Without(ParamAPIKey).Encode()
	cacheKey := credentialDigest(credential) + ":" + redacted

	if c.cache != nil {
		if body, err := c.cache.Get(ctx, cacheKey); err == nil {
			if resp, err := ParseSearchResponse([]byte(body)); err == nil {
				return resp, nil
			}
		}
	}

	common.LogDebug("Sending request to Spoonacular",
		zap.String("path", SearchPath),
		zap.String("query", redacted),
	)

	start := time.Now()
	resp, err := c.client.R().
		SetContext(ctx).
		Get(SearchPath + "?" + q.Encode())
	if err != nil {
		wrapped := common.Wrap(common.ErrTransportFailure, redact(err, credential))
		common.LogUpstreamCall(SearchPath, time.Since(start), wrapped)
		return nil, wrapped
	}

	if !resp.IsSuccess() {
		wrapped := common.Wrap(common.ErrTransportFailure,
			fmt.Errorf("status %d: %s", resp.StatusCode(), truncate(resp.String(), 200)))
		common.LogUpstreamCall(SearchPath, time.Since(start), wrapped)
		return nil, wrapped
	}

	parsed, err := ParseSearchResponse(resp.Body())
	if err != nil {
		common.LogUpstreamCall(SearchPath, time.Since(start), err)
		return nil, err
	}
	common.LogUpstreamCall(SearchPath, time.Since(start), nil)

	if c.cache != nil {
		if err := c.cache.Set(ctx, cacheKey, string(resp.Body())); err != nil {
			common.LogDebug("Failed to cache search response", zap.Error(err))
		}
	}

	return parsed, nil
}

// redactedError 移除錯誤訊息中的憑證，保留原始錯誤鏈
type redactedError struct {
	msg string
	err error
}

func (e *redactedError) Error() string { return e.msg }

func (e *redactedError) Unwrap() error { return e.err }

func redact(err error, secret string) error {
	if secret == "" {
		return err
	}
	msg := err.Error()
	for _, s := range []string{url.QueryEscape(secret), secret} {
		msg = strings.ReplaceAll(msg, s, "****")
	}
	return &redactedError{msg: msg, err: err}
}

// credentialDigest 快取鍵中代表憑證的雜湊，不保存明文
func credentialDigest(credential string) string {
	sum := sha256.Sum256([]byte(credential))
	return hex.EncodeToString(sum[:8])
}

// truncate 截斷至最多 n 位元組，不切開多位元組字元
func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	for n > 0 && !utf8.RuneStart(s[n]) {
		n--
	}
	return s[:n] + "..."
}
