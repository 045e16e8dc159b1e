package maths

import (
	"math"

	"gonum.org/v1/gonum/floats/scalar"
)

// Epsilon 浮点比较容差
const Epsilon = 1e-9

// Sqrt3 三相线电流换算系数 √3
const Sqrt3 = 1.73205080756887729352744634150587236694280525381038062805580697

// Round 四舍五入到 prec 位小数(远离零方向)
func Round(x float64, prec int) float64 { return scalar.Round(x, prec) }

// LineCurrent 三相线电流(A)
// mva: 容量(MVA)，kv: 线电压(kV)。
func LineCurrent(mva, kv float64) float64 {
	return mva * 1000 / (Sqrt3 * kv)
}

// ThroughFaultPU 无穷大系统下的最大穿越故障电流倍数 1/z_pu
// 不做舍入，整定判据直接使用该值。
func ThroughFaultPU(impedancePct float64) float64 { return 100 / impedancePct }

// PlugSetting 插头整定倍数，故障电流与启动电流之比
// 故障电流不为正时返回 1。
func PlugSetting(faultA, pickupPU, ratedA float64) float64 {
	if faultA <= 0 {
		return 1
	}
	return faultA / (pickupPU * ratedA)
}

// EqualWithin 相对容差比较
func EqualWithin(a, b, tol float64) bool {
	return scalar.EqualWithinAbsOrRel(a, b, tol, tol)
}

// IsFinite 非 NaN 且非无穷
func IsFinite(x float64) bool { return !math.IsNaN(x) && !math.IsInf(x, 0) }
