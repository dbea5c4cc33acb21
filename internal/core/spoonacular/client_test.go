package spoonacular

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"unicode/utf8"
	"testing"
	"time"

	"recipe-planner/internal/infrastructure/config"
	"recipe-planner/internal/pkg/common"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memoryCache struct {
	data map[string]string
}

func (m *memoryCache) Get(ctx context.Context, key string) (string, error) {
	v, ok := m.data[key]
	if !ok {
		return "", errors.New("miss")
	}
	return v, nil
}

func (m *memoryCache) Set(ctx context.Context, key, value string) error {
	m.data[key] = value
	return nil
}

func newTestClient(t *testing.T, handler http.HandlerFunc, cache ResponseCache) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(config.SpoonacularConfig{
		BaseURL: srv.URL,
		Timeout: 5 * time.Second,
	}, cache)
}

func testQuery() Query {
	return Query{}.
		Add(ParamAPIKey, "secret-key").
		Add(ParamNumber, "12").
		Add(ParamDiet, "Vegan")
}

func TestClient_Search(t *testing.T) {
	var gotPath, gotQuery string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.RawQuery
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"results":[{"id":7,"title":"Tofu Bowl"}],"totalResults":1}`))
	}, nil)

	resp, err := client.Search(context.Background(), testQuery())
	require.NoError(t, err)
	require.Len(t, resp.Results, 1)
	assert.Equal(t, "Tofu Bowl", resp.Results[0].Title.Value)
	assert.Equal(t, SearchPath, gotPath)
	assert.Equal(t, "apiKey=secret-key&number=12&diet=Vegan", gotQuery)
}

func TestClient_SearchNonSuccessStatus(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusPaymentRequired)
		w.Write([]byte(`{"status":"failure","message":"daily points limit"}`))
	}, nil)

	_, err := client.Search(context.Background(), testQuery())
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrTransportFailure)
	assert.Contains(t, err.Error(), "402")
}

func TestClient_SearchMalformedBody(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`not json`))
	}, nil)

	_, err := client.Search(context.Background(), testQuery())
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrMalformedResponse)
}

func TestClient_SearchTransportErrorIsRedacted(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	baseURL := srv.URL
	srv.Close()

	client := NewClient(config.SpoonacularConfig{BaseURL: baseURL, Timeout: time.Second}, nil)
	_, err := client.Search(context.Background(), testQuery())
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrTransportFailure)
	assert.NotContains(t, err.Error(), "secret-key")
}

func TestClient_SearchUsesCache(t *testing.T) {
	var calls int32
	cache := &memoryCache{data: map[string]string{}}
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.Write([]byte(`{"results":[{"id":1}]}`))
	}, cache)

	for i := 0; i < 3; i++ {
		resp, err := client.Search(context.Background(), testQuery())
		require.NoError(t, err)
		require.Len(t, resp.Results, 1)
	}
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))

	require.Len(t, cache.data, 1)
	for key := range cache.data {
		assert.NotContains(t, key, "secret-key")
		assert.True(t, strings.HasSuffix(key, ":"+testQuery().Without(ParamAPIKey).Encode()))
	}
}

func TestClient_SearchCacheIsScopedToCredential(t *testing.T) {
	var calls int32
	cache := &memoryCache{data: map[string]string{}}
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		if r.URL.Query().Get(ParamAPIKey) != "good-key" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		w.Write([]byte(`{"results":[{"id":1}]}`))
	}, cache)

	query := func(key string) Query {
		return Query{}.Add(ParamAPIKey, key).Add(ParamNumber, "12")
	}

	resp, err := client.Search(context.Background(), query("good-key"))
	require.NoError(t, err)
	require.Len(t, resp.Results, 1)

	_, err = client.Search(context.Background(), query("revoked-key"))
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrTransportFailure)
	assert.Contains(t, err.Error(), "401")
	assert.Equal(t, int32(2), atomic.LoadInt32(&calls))

	_, err = client.Search(context.Background(), query("good-key"))
	require.NoError(t, err)
	assert.Equal(t, int32(2), atomic.LoadInt32(&calls))
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 10))
	assert.Equal(t, "abc...", truncate("abcdef", 3))

	// "é" 佔兩個位元組，截斷點落在字元中間時往前退
	got := truncate("aé", 2)
	assert.Equal(t, "a...", got)
	assert.True(t, utf8.ValidString(got))

	long := strings.Repeat("食", 100)
	assert.True(t, utf8.ValidString(truncate(long, 200)))
}

func TestClient_SearchDoesNotCacheFailures(t *testing.T) {
	cache := &memoryCache{data: map[string]string{}}
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}, cache)

	_, err := client.Search(context.Background(), testQuery())
	require.Error(t, err)
	assert.Empty(t, cache.data)
}
