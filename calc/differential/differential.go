// Package differential 计算 87T 变压器差动保护整定值。
//
// 启动值按误差预算累加：CT 变比误差、有载调压范围、励磁电流与固定裕度之和乘以可靠系数，
// 并以 0.40 pu 为上限。上限是工程安全边界，误差预算再大也不突破。
package differential

import (
	"math"

	"protection/maths"
	"protection/types"
)

// Calculate 计算差动整定
// 速断判据使用未舍入的穿越故障倍数。
func Calculate(t types.TransformerInput) types.DifferentialSettings {
	return types.DifferentialSettings{
		Pickup: types.Setting{
			Recommended:       Pickup(t),
			Unit:              "pu",
			StandardReference: types.RefIEEEC3791,
		},
		Slope1: types.Setting{
			Recommended:       Slope1(t.LTCPresent),
			Unit:              "%",
			StandardReference: types.RefIEEEC3791,
		},
		Slope2: types.Setting{
			Recommended:       types.Slope2,
			Unit:              "%",
			StandardReference: types.RefIEEEC3791,
		},
		Harmonic2nd: types.Setting{
			Recommended:       types.Harmonic2ndRestraint,
			Unit:              "%",
			StandardReference: types.RefIEC602551871,
		},
		Harmonic5th: types.Setting{
			Recommended:       types.Harmonic5thRestraint,
			Unit:              "%",
			StandardReference: types.RefIEC602551871,
		},
		HighSet: types.Setting{
			Recommended:       HighSet(maths.ThroughFaultPU(t.ImpedancePct)),
			Unit:              "pu",
			StandardReference: types.RefIEEEC3791,
		},
	}
}

// Pickup 差动启动值(pu)
func Pickup(t types.TransformerInput) float64 {
	var ltcError float64
	if t.LTCPresent {
		ltcError = t.LTCRangePct / 100
	}
	sum := types.CTErrorAllowance + ltcError + t.MagCurrentPct/100 + types.DifferentialMargin
	pickup := math.Min(sum*types.DifferentialSafety, types.DifferentialPickupCap)
	return maths.Round(pickup, types.DifferentialPrecision)
}

// Slope1 第一斜率(%)，有载调压引起的变比偏差需要更宽的制动
func Slope1(ltcPresent bool) float64 {
	if ltcPresent {
		return types.Slope1WithLTC
	}
	return types.Slope1WithoutLTC
}

// HighSet 差动速断(pu)，必须高于最大外部穿越故障电流
func HighSet(maxThroughFaultPU float64) float64 {
	if maxThroughFaultPU < types.HighSetThresholdPU {
		return types.HighSetLow
	}
	return types.HighSetHigh
}
