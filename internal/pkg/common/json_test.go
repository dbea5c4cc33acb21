package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToJSON(t *testing.T) {
	out, err := ToJSON([]string{"a", "b"})
	require.NoError(t, err)
	assert.Equal(t, `["a","b"]`, out)

	_, err = ToJSON(make(chan int))
	assert.Error(t, err)
}

func TestParseJSON(t *testing.T) {
	var items []map[string]interface{}
	require.NoError(t, ParseJSON(`[{"id":"1"}]`, &items))
	assert.Equal(t, "1", items[0]["id"])

	assert.Error(t, ParseJSON(`[{"id":"1"}] [{"id":"2"}]`, &items))
	assert.Error(t, ParseJSONBytes([]byte(`{`), &items))
}

func TestCleanStringList(t *testing.T) {
	assert.Nil(t, CleanStringList(nil))
	assert.Nil(t, CleanStringList([]string{" ", ""}))
	assert.Equal(t, []string{"Vegan", "Keto"}, CleanStringList([]string{" Vegan", "Keto", "Vegan ", ""}))
}
