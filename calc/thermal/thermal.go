// Package thermal 计算穿越故障 I²t 热稳定与机械强度限值。
package thermal

import (
	"math"

	"protection/maths"
	"protection/types"
)

// Calculate 计算热/机械耐受及告警、跳闸阈值
// 全部结果取整到 A²s。有效限值不小于 20 A²s 时取整后仍满足
// 告警 < 跳闸 < 有效限值；III/IV 类阻抗超过约 31.6% 时限值低于 20 A²s，取整后三者可能相等。
func Calculate(category types.Category, maxThroughFaultPU float64) types.ThermalSettings {
	thermal := float64(types.ThermalLimitA2s)
	mechanical := MechanicalLimit(category, maxThroughFaultPU)
	effective := math.Min(thermal, mechanical)
	return types.ThermalSettings{
		Category:           category,
		ThermalLimitA2s:    maths.Round(thermal, 0),
		MechanicalLimitA2s: maths.Round(mechanical, 0),
		EffectiveLimitA2s:  maths.Round(effective, 0),
		AlarmThresholdA2s:  maths.Round(effective*types.AlarmFraction, 0),
		TripThresholdA2s:   maths.Round(effective*types.TripFraction, 0),
	}
}

// MechanicalLimit 机械强度限值(A²s)
// III/IV 类随穿越故障水平变化，小容量变压器取固定值。
func MechanicalLimit(category types.Category, maxThroughFaultPU float64) float64 {
	if category.Large() {
		return maxThroughFaultPU * maxThroughFaultPU * types.MechanicalDurationScale
	}
	return types.FlatMechanicalLimitA2s
}
