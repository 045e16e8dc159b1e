package maths

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// Curve 反时限特性 t = TMS·K / (M^Alpha − 1)
type Curve struct {
	K     float64
	Alpha float64
}

// IECNormalInverse IEC 60255-151 一般反时限
var IECNormalInverse = Curve{K: 0.14, Alpha: 0.02}

// TripTime 动作时间
// psm <= 1 时曲线无定义，返回 ok=false 表示不动作。
func (c Curve) TripTime(tms, psm float64) (t float64, ok bool) {
	if !(psm > 1) {
		return 0, false
	}
	return tms * c.K / (math.Pow(psm, c.Alpha) - 1), true
}

// Sample 在 [lo, hi] 按对数间隔取 n 个倍数点并计算动作时间
// lo 必须大于 1。
func (c Curve) Sample(tms, lo, hi float64, n int) (psm, t []float64) {
	if n < 2 || !(lo > 1) || hi <= lo {
		return nil, nil
	}
	psm = floats.LogSpan(make([]float64, n), lo, hi)
	t = make([]float64, n)
	for i, m := range psm {
		t[i], _ = c.TripTime(tms, m)
	}
	return psm, t
}
