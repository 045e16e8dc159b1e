package utils

import (
	"fmt"
	"strconv"
	"strings"
)

// NetList 卡片参数列表
type NetList []string

// FromAnySlice 将 []any 转换为 NetList 类型
// any 只能是基础类型，不考虑结构体的解析
func FromAnySlice(slice []any) NetList {
	if slice == nil {
		return NetList{}
	}
	result := make(NetList, len(slice))
	for i, v := range slice {
		result[i] = anyToString(v)
	}
	return result
}

// anyToString 将任意基础类型转换为字符串
func anyToString(v any) string {
	if v == nil {
		return ""
	}
	switch val := v.(type) {
	case string:
		return val
	case bool:
		return strconv.FormatBool(val)
	case int:
		return strconv.FormatInt(int64(val), 10)
	case int64:
		return strconv.FormatInt(val, 10)
	case float32:
		return strconv.FormatFloat(float64(val), 'f', -1, 32)
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case fmt.Stringer:
		return val.String()
	default:
		return fmt.Sprint(v)
	}
}

// Has 是否存在第 i 个参数
func (value NetList) Has(i int) bool { return i >= 0 && i < len(value) }

// String 以空格连接
func (value NetList) String() string { return strings.Join(value, " ") }

// Float64 解析64位浮点数，缺失或格式错误时返回错误
func (value NetList) Float64(i int) (float64, error) {
	if !value.Has(i) {
		return 0, fmt.Errorf("缺少第 %d 个参数", i+1)
	}
	val, err := strconv.ParseFloat(value[i], 64)
	if err != nil {
		return 0, fmt.Errorf("第 %d 个参数不是数值: %q", i+1, value[i])
	}
	return val, nil
}

// Float64Or 解析可选浮点数
func (value NetList) Float64Or(i int, defaultValue float64) (float64, error) {
	if !value.Has(i) {
		return defaultValue, nil
	}
	return value.Float64(i)
}

// BoolOr 解析可选布尔值
// 同时接受 yes/no 与 on/off。
func (value NetList) BoolOr(i int, defaultValue bool) (bool, error) {
	if !value.Has(i) {
		return defaultValue, nil
	}
	switch strings.ToLower(value[i]) {
	case "yes", "on":
		return true, nil
	case "no", "off":
		return false, nil
	}
	val, err := strconv.ParseBool(value[i])
	if err != nil {
		return defaultValue, fmt.Errorf("第 %d 个参数不是布尔值: %q", i+1, value[i])
	}
	return val, nil
}

// Ratio 解析 "N/1" 形式的变比
// 仅有一个数时次级取 1。
func (value NetList) Ratio(i int) (primary, secondary float64, err error) {
	if !value.Has(i) {
		return 0, 0, fmt.Errorf("缺少第 %d 个参数", i+1)
	}
	return ParseRatio(value[i])
}

// ParseRatio 解析变比字符串，如 "600/1"、"1200/5"、"400"
func ParseRatio(s string) (primary, secondary float64, err error) {
	p, q, found := strings.Cut(strings.TrimSpace(s), "/")
	primary, err = strconv.ParseFloat(strings.TrimSpace(p), 64)
	if err != nil {
		return 0, 0, fmt.Errorf("变比格式错误: %q", s)
	}
	secondary = 1
	if found {
		secondary, err = strconv.ParseFloat(strings.TrimSpace(q), 64)
		if err != nil {
			return 0, 0, fmt.Errorf("变比格式错误: %q", s)
		}
	}
	if primary <= 0 || secondary <= 0 {
		return 0, 0, fmt.Errorf("变比必须为正: %q", s)
	}
	return primary, secondary, nil
}

// FormatRatio 变比格式化为 "N/M"
func FormatRatio(primary, secondary float64) string {
	if secondary == 0 {
		secondary = 1
	}
	return anyToString(primary) + "/" + anyToString(secondary)
}
