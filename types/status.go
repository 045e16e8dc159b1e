package types

import "fmt"

// CoordinationStatus 高低压侧配合状态
type CoordinationStatus uint8

// 配合状态定义
const (
	StatusUnknown       CoordinationStatus = iota
	StatusPass                             // 级差满足要求
	StatusFail                             // 级差不足
	StatusNotComparable                    // 任一侧不动作，级差无物理意义
)

var statusNames = [...]string{"", "PASS", "FAIL", "NOT_COMPARABLE"}

// Valid 是否为有效状态
func (s CoordinationStatus) Valid() bool { return s >= StatusPass && s <= StatusNotComparable }

func (s CoordinationStatus) String() string {
	if s.Valid() {
		return statusNames[s]
	}
	return fmt.Sprintf("CoordinationStatus(%d)", uint8(s))
}

// MarshalText 文本编码
func (s CoordinationStatus) MarshalText() ([]byte, error) {
	if !s.Valid() {
		return nil, fmt.Errorf("无效的配合状态: %d", uint8(s))
	}
	return []byte(statusNames[s]), nil
}

// UnmarshalText 文本解码
func (s *CoordinationStatus) UnmarshalText(text []byte) error {
	for i := StatusPass; i <= StatusNotComparable; i++ {
		if statusNames[i] == string(text) {
			*s = i
			return nil
		}
	}
	return fmt.Errorf("未知配合状态: %q", text)
}
