package types

import (
	"errors"
	"math"
	"testing"
)

func sampleDifferential() DifferentialSettings {
	return DifferentialSettings{
		Pickup:      Setting{Recommended: 0.28, Unit: "pu", StandardReference: RefIEEEC3791},
		Slope1:      Setting{Recommended: 30, Unit: "%", StandardReference: RefIEEEC3791},
		Slope2:      Setting{Recommended: 60, Unit: "%", StandardReference: RefIEEEC3791},
		Harmonic2nd: Setting{Recommended: 15, Unit: "%", StandardReference: RefIEC602551871},
		Harmonic5th: Setting{Recommended: 35, Unit: "%", StandardReference: RefIEC602551871},
		HighSet:     Setting{Recommended: 10, Unit: "pu", StandardReference: RefIEEEC3791},
	}
}

func TestDifferentialSettingsOrder(t *testing.T) {
	list := sampleDifferential().Settings()
	if len(list) != 6 {
		t.Fatalf("整定项数量错误: %d", len(list))
	}
	for i, s := range list {
		if s.Name != SettingNames[i] {
			t.Errorf("第 %d 项名称错误: %s", i, s.Name)
		}
		if s.Unit == "" || s.StandardReference == "" {
			t.Errorf("整定项 %s 缺少单位或标准引用", s.Name)
		}
	}
	if list[0].Recommended != 0.28 || list[5].Recommended != 10 {
		t.Errorf("整定值错误: %+v", list)
	}
}

func TestWithValueSet(t *testing.T) {
	orig := sampleDifferential()
	got, err := orig.WithValueSet(SettingPickup, 0.3)
	if err != nil {
		t.Fatalf("填写人工值失败: %s", err)
	}
	if orig.Pickup.ValueSet != nil {
		t.Error("原记录被修改")
	}
	if got.Pickup.ValueSet == nil || *got.Pickup.ValueSet != 0.3 {
		t.Errorf("人工值错误: %v", got.Pickup.ValueSet)
	}
	if got.Pickup.Effective() != 0.3 || orig.Pickup.Effective() != 0.28 {
		t.Errorf("生效值错误: %v %v", got.Pickup.Effective(), orig.Pickup.Effective())
	}
	if _, err := orig.WithValueSet("slope_3", 1); err == nil {
		t.Error("未知整定项应当报错")
	}
	if _, ok := got.Get(SettingHighSet); !ok {
		t.Error("按名称获取失败")
	}
}

func TestWithValueSetNonFinite(t *testing.T) {
	orig := sampleDifferential()
	for _, v := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		got, err := orig.WithValueSet(SettingPickup, v)
		if !errors.Is(err, ErrInvalidInput) {
			t.Errorf("人工值 %v 应当返回 ErrInvalidInput: %v", v, err)
		}
		if got.Pickup.ValueSet != nil {
			t.Errorf("人工值 %v 不应写入", v)
		}
	}
}
