package types

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"protection/maths"
)

// checker 输入校验器，并发安全
var checker = newChecker()

func newChecker() *validator.Validate {
	v := validator.New()
	// 错误信息使用 json 字段名
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		if name == "" || name == "-" {
			return field.Name
		}
		return name
	})
	// 拒绝 NaN 与 ±Inf
	if err := v.RegisterValidation("finite", func(fl validator.FieldLevel) bool {
		return maths.IsFinite(fl.Field().Float())
	}); err != nil {
		panic(err)
	}
	return v
}

// TransformerInput 变压器铭牌数据
type TransformerInput struct {
	RatedMVA      float64 `json:"rated_mva" validate:"finite,gt=0"`       // 额定容量(MVA)
	HVkV          float64 `json:"hv_kv" validate:"finite,gt=0"`           // 高压侧额定电压(kV)
	LVkV          float64 `json:"lv_kv" validate:"finite,gt=0"`           // 低压侧额定电压(kV)
	ImpedancePct  float64 `json:"impedance_pct" validate:"finite,gt=0"`   // 短路阻抗(%)
	MagCurrentPct float64 `json:"mag_current_pct" validate:"finite,gte=0"` // 励磁电流(%)
	LTCPresent    bool    `json:"ltc_present"`                            // 是否带有载调压
	LTCRangePct   float64 `json:"ltc_range_pct" validate:"finite,gte=0"`  // 有载调压范围(%)
}

// Validate 校验铭牌数据
func (t TransformerInput) Validate() error { return validateStruct("transformer", t) }

// CTInput 电流互感器数据
// 变比仅作记录，当前计算公式不使用。
type CTInput struct {
	HVPrimary   float64 `json:"hv_ct_primary" validate:"finite,gt=0"`
	LVPrimary   float64 `json:"lv_ct_primary" validate:"finite,gt=0"`
	HVSecondary float64 `json:"hv_ct_secondary,omitempty" validate:"omitempty,finite,gt=0"` // 缺省为 1
	LVSecondary float64 `json:"lv_ct_secondary,omitempty" validate:"omitempty,finite,gt=0"` // 缺省为 1
}

// Validate 校验互感器数据
func (c CTInput) Validate() error { return validateStruct("ct", c) }

// HVRatio 高压侧变比
func (c CTInput) HVRatio() float64 { return c.HVPrimary / secondaryOrOne(c.HVSecondary) }

// LVRatio 低压侧变比
func (c CTInput) LVRatio() float64 { return c.LVPrimary / secondaryOrOne(c.LVSecondary) }

func secondaryOrOne(v float64) float64 {
	if v == 0 {
		return 1
	}
	return v
}

// SystemFaultInput 系统短路容量
type SystemFaultInput struct {
	HVFaultMVA float64 `json:"hv_fault_mva" validate:"finite,gt=0"`
	LVFaultMVA float64 `json:"lv_fault_mva" validate:"finite,gt=0"`
}

// Validate 校验短路容量
func (f SystemFaultInput) Validate() error { return validateStruct("fault", f) }

// Input 一次计算的完整输入
type Input struct {
	Transformer TransformerInput `json:"transformer"`
	CT          CTInput          `json:"ct"`
	Fault       SystemFaultInput `json:"fault"`
}

// Validate 在任何计算之前校验全部字段
func (in Input) Validate() error { return validateStruct("", in) }

// validateStruct 执行结构体校验并转换为 InvalidInputError
func validateStruct(prefix string, v any) error {
	err := checker.Struct(v)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	out := &InvalidInputError{Fields: make([]FieldError, 0, len(verrs))}
	for _, fe := range verrs {
		// 去掉顶层结构体名称
		field := fe.Namespace()
		if _, rest, ok := strings.Cut(field, "."); ok {
			field = rest
		}
		if prefix != "" {
			field = prefix + "." + field
		}
		rule := fe.Tag()
		if fe.Param() != "" {
			rule += "=" + fe.Param()
		}
		out.Fields = append(out.Fields, FieldError{Field: field, Value: fe.Value(), Rule: rule})
	}
	return out
}
