// Package conv 提供类型转换、slice 转换与配置取值等泛型工具，用于简化各模块中的重复逻辑。
package conv

import "fmt"

// ToFloat64 将 any 转为 float64。
// 支持 float64、float32、int、int64、int32；bool 视为 1.0/0.0。
func ToFloat64(v any) (float64, bool) {
	if v == nil {
		return 0, false
	}
	switch val := v.(type) {
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
	case bool:
		if val {
			return 1.0, true
		}
		return 0.0, true
	default:
		return 0, false
	}
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

// SliceAnyToString 将 []any（即 []interface{}）转为 []string。
// 元素为 string 直接保留，为数字时格式化为 "%.0f"。
func SliceAnyToString(v any) []string {
	if v == nil {
		return nil
	}
	raw, ok := v.([]any)
	if !ok {
		return nil
	}
	return ConvertSlice(raw, func(e any) (string, bool) {
		if s, ok := e.(string); ok {
			return s, true
		}
		if f, ok := ToFloat64(e); ok {
			return fmt.Sprintf("%.0f", f), true
		}
		return "", false
	})
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

// ConfigGetInt64 从 config 取 int64。YAML/JSON 常得到 int 或 float64，此处兼容并统一为 int64。
func ConfigGetInt64(m map[string]any, key string, defaultVal int64) int64 {
	if m == nil {
		return defaultVal
	}
	v, ok := m[key]
	if !ok {
		return defaultVal
	}
	switch val := v.(type) {
	case int:
		return int64(val)
	case int64:
		return val
	case float64:
		return int64(val)
	case float32:
		return int64(val)
	default:
		return defaultVal
	}
}

// ToInt64 将 any 转为 int64，仅接受整数类型及无小数部分的浮点数。
func ToInt64(v any) (int64, bool) {
	switch val := v.(type) {
	case int:
		return int64(val), true
	case int64:
		return val, true
	case int32:
		return int64(val), true
	case uint64:
		return int64(val), true
	case uint32:
		return int64(val), true
	case float64:
		if val == float64(int64(val)) {
			return int64(val), true
		}
	case float32:
		if val == float32(int64(val)) {
			return int64(val), true
		}
	}
	return 0, false
}

// ToIDList 把单元格中的行 ID 值规整为列表，元素统一为 int64 或 string。
// 支持 []any / []int / []int64 / []string 以及单个标量；nil 返回空列表（非 nil）。
// 无法识别的元素用 fmt 格式化为 string。
func ToIDList(v any) []any {
	norm := func(e any) any {
		if n, ok := ToInt64(e); ok {
			return n
		}
		if s, ok := e.(string); ok {
			return s
		}
		return fmt.Sprint(e)
	}

	switch val := v.(type) {
	case nil:
		return []any{}
	case []any:
		out := make([]any, 0, len(val))
		for _, e := range val {
			if e == nil {
				continue
			}
			out = append(out, norm(e))
		}
		return out
	case []int:
		out := make([]any, 0, len(val))
		for _, e := range val {
			out = append(out, int64(e))
		}
		return out
	case []int64:
		out := make([]any, 0, len(val))
		for _, e := range val {
			out = append(out, e)
		}
		return out
	case []string:
		out := make([]any, 0, len(val))
		for _, e := range val {
			out = append(out, e)
		}
		return out
	default:
		return []any{norm(val)}
	}
}
