// Package conv 提供类型转换、map/slice 转换等泛型工具，
// 主要服务于 core 的记录适配（map[string]any → Seeker/Job）与配置解析。
package conv

import (
	"strconv"
	"strings"
)

// ToFloat64 将 any 转为 float64。
// 支持各类数值、bool（1.0/0.0）以及可解析的数字字符串。
func ToFloat64(v any) (float64, bool) {
	switch val := v.(type) {
	case nil:
		return 0, false
	case float64:
		return val, true
	case float32:
		return float64(val), true
	case int:
		return float64(val), true
	case int64:
		return float64(val), true
	case int32:
		return float64(val), true
	case uint:
		return float64(val), true
	case uint64:
		return float64(val), true
	case bool:
		if val {
			return 1.0, true
		}
		return 0.0, true
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(val), 64)
		if err != nil {
			return 0, false
		}
		return f, true
	default:
		return 0, false
	}
}

// ToInt64 将 any 转为 int64，浮点数向零截断。
func ToInt64(v any) (int64, bool) {
	switch val := v.(type) {
	case int:
		return int64(val), true
	case int64:
		return val, true
	case int32:
		return int64(val), true
	default:
		f, ok := ToFloat64(v)
		if !ok {
			return 0, false
		}
		return int64(f), true
	}
}

// AnyToString 把字符串或数值转为字符串，用于 ID 之类既可能是数字也可能是字符串的字段。
// 整数值不带小数部分："42" 而非 "42.000000"。
func AnyToString(v any) (string, bool) {
	switch val := v.(type) {
	case nil:
		return "", false
	case string:
		return val, true
	case int:
		return strconv.Itoa(val), true
	case int64:
		return strconv.FormatInt(val, 10), true
	case int32:
		return strconv.FormatInt(int64(val), 10), true
	}
	f, ok := ToFloat64(v)
	if !ok {
		return "", false
	}
	return strconv.FormatFloat(f, 'f', -1, 64), true
}

// ToBool 将 any 转为 bool。
// 支持 bool、数值（非 0 为 true）以及 "true"/"false"/"1"/"0" 等字符串。
func ToBool(v any) (bool, bool) {
	switch val := v.(type) {
	case bool:
		return val, true
	case string:
		b, err := strconv.ParseBool(strings.TrimSpace(val))
		if err != nil {
			return false, false
		}
		return b, true
	}
	f, ok := ToFloat64(v)
	if !ok {
		return false, false
	}
	return f != 0, true
}

// TypeAssert 对 v 做类型断言为 T，等价于 v.(T) 的 (val, ok) 形式。
func TypeAssert[T any](v any) (T, bool) {
	t, ok := v.(T)
	return t, ok
}

// ConvertSlice 将 []T 按 convert 转为 []U，convert 返回 false 的元素被跳过。
func ConvertSlice[T, U any](s []T, convert func(T) (U, bool)) []U {
	if s == nil {
		return nil
	}
	out := make([]U, 0, len(s))
	for _, v := range s {
		if u, ok := convert(v); ok {
			out = append(out, u)
		}
	}
	return out
}

// ToStringSlice 将 []string、[]any 或逗号分隔字符串转为 []string。
// 空白元素被丢弃。
func ToStringSlice(v any) []string {
	var raw []string
	switch val := v.(type) {
	case nil:
		return nil
	case []string:
		raw = val
	case []any:
		raw = ConvertSlice(val, AnyToString)
	case string:
		raw = strings.Split(val, ",")
	default:
		return nil
	}
	return ConvertSlice(raw, func(s string) (string, bool) {
		s = strings.TrimSpace(s)
		return s, s != ""
	})
}

// ToMapSlice 将 []any（元素为 map[string]any）转为 []map[string]any，非 map 元素被跳过。
func ToMapSlice(v any) []map[string]any {
	switch val := v.(type) {
	case []map[string]any:
		return val
	case []any:
		return ConvertSlice(val, TypeAssert[map[string]any])
	default:
		return nil
	}
}

// ConfigGet 从 map[string]any（如 YAML/JSON 解析结果）按 key 取 T，取不到或类型不符时返回 defaultVal。
func ConfigGet[T any](m map[string]any, key string, defaultVal T) T {
	if m == nil {
		return defaultVal
	}
	v, ok := m[key]
	if !ok {
		return defaultVal
	}
	t, ok := v.(T)
	if !ok {
		return defaultVal
	}
	return t
}

