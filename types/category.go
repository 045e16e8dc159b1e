package types

import "fmt"

// Category 变压器容量分类(IEEE C57.109)
type Category uint8

// 容量分类定义
const (
	CategoryUnknown Category = iota
	CategoryI                // < 0.5 MVA
	CategoryII               // 0.5 ~ 5 MVA
	CategoryIII              // 5 ~ 30 MVA
	CategoryIV               // >= 30 MVA
)

var categoryNames = [...]string{"", "I", "II", "III", "IV"}

// CategoryOf 按额定容量划分类别
func CategoryOf(ratedMVA float64) Category {
	switch {
	case ratedMVA < CategoryIIMinMVA:
		return CategoryI
	case ratedMVA < CategoryIIIMinMVA:
		return CategoryII
	case ratedMVA < CategoryIVMinMVA:
		return CategoryIII
	default:
		return CategoryIV
	}
}

// Valid 是否为有效分类
func (c Category) Valid() bool { return c >= CategoryI && c <= CategoryIV }

// Large 大容量变压器(III/IV)，机械强度随故障水平变化
func (c Category) Large() bool { return c == CategoryIII || c == CategoryIV }

func (c Category) String() string {
	if c.Valid() {
		return categoryNames[c]
	}
	return fmt.Sprintf("Category(%d)", uint8(c))
}

// MarshalText 文本编码
func (c Category) MarshalText() ([]byte, error) {
	if !c.Valid() {
		return nil, fmt.Errorf("无效的容量分类: %d", uint8(c))
	}
	return []byte(categoryNames[c]), nil
}

// UnmarshalText 文本解码
func (c *Category) UnmarshalText(text []byte) error {
	for i := CategoryI; i <= CategoryIV; i++ {
		if categoryNames[i] == string(text) {
			*c = i
			return nil
		}
	}
	return fmt.Errorf("未知容量分类: %q", text)
}
