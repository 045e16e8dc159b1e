package types

import (
	"fmt"

	"protection/maths"
)

// BaseValues 基准电气量
type BaseValues struct {
	HVRatedCurrentA   float64  `json:"hv_rated_current_a"`
	LVRatedCurrentA   float64  `json:"lv_rated_current_a"`
	MaxThroughFaultPU float64  `json:"max_through_fault_pu"`
	Category          Category `json:"category"`
}

// Setting 单项整定值
// ValueSet 只由调用方(人工修改)填写，计算引擎不设置。
type Setting struct {
	Recommended       float64  `json:"recommended"`
	ValueSet          *float64 `json:"value_set"`
	Unit              string   `json:"unit"`
	StandardReference string   `json:"standard_reference"`
}

// Effective 生效值，人工值优先
func (s Setting) Effective() float64 {
	if s.ValueSet != nil {
		return *s.ValueSet
	}
	return s.Recommended
}

// SettingName 差动整定项名称
type SettingName string

// 差动整定项
const (
	SettingPickup      SettingName = "pickup"
	SettingSlope1      SettingName = "slope_1"
	SettingSlope2      SettingName = "slope_2"
	SettingHarmonic2nd SettingName = "harmonic_2nd"
	SettingHarmonic5th SettingName = "harmonic_5th"
	SettingHighSet     SettingName = "high_set"
)

// SettingNames 差动整定项的固定顺序
var SettingNames = []SettingName{
	SettingPickup, SettingSlope1, SettingSlope2,
	SettingHarmonic2nd, SettingHarmonic5th, SettingHighSet,
}

// NamedSetting 带名称的整定值
type NamedSetting struct {
	Name SettingName
	Setting
}

// DifferentialSettings 87T 差动保护整定
type DifferentialSettings struct {
	Pickup      Setting `json:"pickup"`
	Slope1      Setting `json:"slope_1"`
	Slope2      Setting `json:"slope_2"`
	Harmonic2nd Setting `json:"harmonic_2nd"`
	Harmonic5th Setting `json:"harmonic_5th"`
	HighSet     Setting `json:"high_set"`
}

// field 按名称取字段指针
func (d *DifferentialSettings) field(name SettingName) (*Setting, bool) {
	switch name {
	case SettingPickup:
		return &d.Pickup, true
	case SettingSlope1:
		return &d.Slope1, true
	case SettingSlope2:
		return &d.Slope2, true
	case SettingHarmonic2nd:
		return &d.Harmonic2nd, true
	case SettingHarmonic5th:
		return &d.Harmonic5th, true
	case SettingHighSet:
		return &d.HighSet, true
	}
	return nil, false
}

// Settings 按固定顺序列出全部整定项
func (d DifferentialSettings) Settings() []NamedSetting {
	list := make([]NamedSetting, 0, len(SettingNames))
	for _, name := range SettingNames {
		s, _ := d.field(name)
		list = append(list, NamedSetting{Name: name, Setting: *s})
	}
	return list
}

// Get 按名称获取整定项
func (d DifferentialSettings) Get(name SettingName) (Setting, bool) {
	s, ok := d.field(name)
	if !ok {
		return Setting{}, false
	}
	return *s, true
}

// WithValueSet 返回填写了人工值的副本，原值不变
// 人工值必须为有限数，否则返回 ErrInvalidInput。
func (d DifferentialSettings) WithValueSet(name SettingName, value float64) (DifferentialSettings, error) {
	s, ok := d.field(name)
	if !ok {
		return d, fmt.Errorf("未知差动整定项: %q", name)
	}
	if !maths.IsFinite(value) {
		return d, fmt.Errorf("%w: 整定项 %s 人工值 %v 不是有限数", ErrInvalidInput, name, value)
	}
	s.ValueSet = &value
	return d, nil
}

// OvercurrentSide 单侧 51/50 整定
type OvercurrentSide struct {
	PickupPU        float64 `json:"pickup_pu"`
	TimeMultiplier  float64 `json:"time_multiplier"`
	TripTimeSeconds float64 `json:"trip_time_seconds"`
	FaultCurrentA   float64 `json:"fault_current_a"`
	PSM             float64 `json:"psm"`
	Operates        bool    `json:"operates"` // false 时 TripTimeSeconds 为 NonOperatingTripTime
}

// OvercurrentSettings 过流保护整定与配合
type OvercurrentSettings struct {
	HV                        OvercurrentSide    `json:"hv"`
	LV                        OvercurrentSide    `json:"lv"`
	CoordinationMarginSeconds float64            `json:"coordination_margin_seconds"`
	CoordinationStatus        CoordinationStatus `json:"coordination_status"`
}

// ThermalSettings 穿越故障热/机械耐受
type ThermalSettings struct {
	Category           Category `json:"category"`
	ThermalLimitA2s    float64  `json:"thermal_limit_a2s"`
	MechanicalLimitA2s float64  `json:"mechanical_limit_a2s"`
	EffectiveLimitA2s  float64  `json:"effective_limit_a2s"`
	AlarmThresholdA2s  float64  `json:"alarm_threshold_a2s"`
	TripThresholdA2s   float64  `json:"trip_threshold_a2s"`
}

// Result 一次计算的全部输出
type Result struct {
	Base         BaseValues           `json:"base"`
	Differential DifferentialSettings `json:"differential"`
	Overcurrent  OvercurrentSettings  `json:"overcurrent"`
	Thermal      ThermalSettings      `json:"thermal"`
}
