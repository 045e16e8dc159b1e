package types

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidInput 输入超出定义域
var ErrInvalidInput = errors.New("invalid input")

// FieldError 单个字段校验失败
type FieldError struct {
	Field string `json:"field"` // 字段路径，如 transformer.rated_mva
	Value any    `json:"value"` // 实际值
	Rule  string `json:"rule"`  // 违反的规则，如 gt=0
}

func (e FieldError) String() string {
	return fmt.Sprintf("%s=%v 不满足 %s", e.Field, e.Value, e.Rule)
}

// InvalidInputError 输入校验错误集合
type InvalidInputError struct {
	Fields []FieldError
}

func (e *InvalidInputError) Error() string {
	list := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		list[i] = f.String()
	}
	return fmt.Sprintf("%s: %s", ErrInvalidInput, strings.Join(list, "; "))
}

// Unwrap 支持 errors.Is(err, ErrInvalidInput)
func (e *InvalidInputError) Unwrap() error { return ErrInvalidInput }

// Has 是否包含指定字段的错误
func (e *InvalidInputError) Has(field string) bool {
	for _, f := range e.Fields {
		if f.Field == field {
			return true
		}
	}
	return false
}
