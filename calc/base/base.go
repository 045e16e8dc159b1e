// Package base 计算变压器基准电气量：额定电流、穿越故障倍数和容量分类。
package base

import (
	"protection/maths"
	"protection/types"
)

// Calculate 由铭牌数据得到基准值
// 输入不满足定义域时返回 types.ErrInvalidInput。
func Calculate(t types.TransformerInput) (types.BaseValues, error) {
	if err := t.Validate(); err != nil {
		return types.BaseValues{}, err
	}
	return types.BaseValues{
		HVRatedCurrentA:   maths.Round(maths.LineCurrent(t.RatedMVA, t.HVkV), types.RatedCurrentPrecision),
		LVRatedCurrentA:   maths.Round(maths.LineCurrent(t.RatedMVA, t.LVkV), types.RatedCurrentPrecision),
		MaxThroughFaultPU: maths.Round(maths.ThroughFaultPU(t.ImpedancePct), types.ThroughFaultPUPrecision),
		Category:          types.CategoryOf(t.RatedMVA),
	}, nil
}
