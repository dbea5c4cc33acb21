package spoonacular

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// 寬鬆型別：外部資料欄位缺漏或型別不符時一律視為「不存在」，解析本身不會失敗

// OptString 可選字串；接受字串或數字
type OptString struct {
	Value string
	Valid bool
}

// UnmarshalJSON 實作 json.Unmarshaler
func (o *OptString) UnmarshalJSON(b []byte) error {
	*o = OptString{}
	if isNull(b) {
		return nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		o.Value, o.Valid = s, true
		return nil
	}
	var f float64
	if err := json.Unmarshal(b, &f); err == nil {
		o.Value, o.Valid = strconv.FormatFloat(f, 'f', -1, 64), true
	}
	return nil
}

// Or 回傳去除空白後的值，空值時回傳 def
func (o OptString) Or(def string) string {
	if !o.Valid {
		return def
	}
	if v := strings.TrimSpace(o.Value); v != "" {
		return v
	}
	return def
}

// OptFloat 可選數值；接受數字或可解析為數字的字串
type OptFloat struct {
	Value float64
	Valid bool
}

// UnmarshalJSON 實作 json.Unmarshaler
func (o *OptFloat) UnmarshalJSON(b []byte) error {
	*o = OptFloat{}
	if isNull(b) {
		return nil
	}
	var f float64
	if err := json.Unmarshal(b, &f); err != nil {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return nil
		}
		parsed, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
		if err != nil {
			return nil
		}
		f = parsed
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return nil
	}
	o.Value, o.Valid = f, true
	return nil
}

// Positive 回傳正整數值，缺漏或非正數時回傳 def
func (o OptFloat) Positive(def int) int {
	if !o.Valid {
		return def
	}
	if n := int(o.Value); n > 0 {
		return n
	}
	return def
}

// OptBool 可選布林值
type OptBool struct {
	Value bool
	Valid bool
}

// UnmarshalJSON 實作 json.Unmarshaler
func (o *OptBool) UnmarshalJSON(b []byte) error {
	*o = OptBool{}
	if isNull(b) {
		return nil
	}
	var v bool
	if err := json.Unmarshal(b, &v); err == nil {
		o.Value, o.Valid = v, true
		return nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		if parsed, err := strconv.ParseBool(strings.TrimSpace(s)); err == nil {
			o.Value, o.Valid = parsed, true
		}
	}
	return nil
}

// True 只有明確為 true 時回傳 true
func (o OptBool) True() bool {
	return o.Valid && o.Value
}

// List 寬鬆陣列：非陣列視為空，無法解析的元素以零值保留位置
type List[T any] []T

// UnmarshalJSON 實作 json.Unmarshaler
func (l *List[T]) UnmarshalJSON(b []byte) error {
	*l = nil
	var raws []json.RawMessage
	if err := json.Unmarshal(b, &raws); err != nil {
		return nil
	}
	out := make(List[T], 0, len(raws))
	for _, raw := range raws {
		var v T
		if err := json.Unmarshal(raw, &v); err != nil {
			var zero T
			v = zero
		}
		out = append(out, v)
	}
	*l = out
	return nil
}

// Object 寬鬆物件：非物件或解析失敗時 Valid 為 false
type Object[T any] struct {
	Value T
	Valid bool
}

// UnmarshalJSON 實作 json.Unmarshaler
func (o *Object[T]) UnmarshalJSON(b []byte) error {
	*o = Object[T]{}
	if isNull(b) {
		return nil
	}
	var v T
	if err := json.Unmarshal(b, &v); err != nil {
		return nil
	}
	o.Value, o.Valid = v, true
	return nil
}

func isNull(b []byte) bool {
	return bytes.Equal(bytes.TrimSpace(b), []byte("null"))
}
