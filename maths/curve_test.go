package maths

import (
	"math"
	"testing"
)

func TestTripTimeNonOperating(t *testing.T) {
	for _, psm := range []float64{0, 0.5, 0.999, 1, math.NaN()} {
		if _, ok := IECNormalInverse.TripTime(0.2, psm); ok {
			t.Errorf("PSM=%v 不应动作", psm)
		}
	}
}

func TestTripTimeDecreasing(t *testing.T) {
	prev := math.Inf(1)
	for psm := 1.05; psm < 200; psm *= 1.1 {
		tt, ok := IECNormalInverse.TripTime(0.1, psm)
		if !ok {
			t.Fatalf("PSM=%v 应当动作", psm)
		}
		if !(tt < prev) {
			t.Fatalf("动作时间未随 PSM 递减: PSM=%v t=%v 前值=%v", psm, tt, prev)
		}
		prev = tt
	}
}

func TestTripTimeKnownPoints(t *testing.T) {
	// t = 0.14 / (10^0.02 - 1) ≈ 2.971 s
	tt, _ := IECNormalInverse.TripTime(1, 10)
	if math.Abs(tt-2.971) > 1e-3 {
		t.Errorf("TMS=1 PSM=10 动作时间错误: %.4f", tt)
	}
	tt, _ = IECNormalInverse.TripTime(0.1, 24)
	if Round(tt, 3) != 0.213 {
		t.Errorf("TMS=0.1 PSM=24 动作时间错误: %.4f", tt)
	}
}

func TestSample(t *testing.T) {
	psm, tt := IECNormalInverse.Sample(0.2, 1.1, 100, 50)
	if len(psm) != 50 || len(tt) != 50 {
		t.Fatalf("采样点数错误: %d %d", len(psm), len(tt))
	}
	if !EqualWithin(psm[0], 1.1, Epsilon) || !EqualWithin(psm[49], 100, Epsilon) {
		t.Errorf("采样范围错误: %v ~ %v", psm[0], psm[49])
	}
	for i := 1; i < len(psm); i++ {
		if psm[i] <= psm[i-1] || tt[i] >= tt[i-1] {
			t.Fatalf("第 %d 点单调性错误", i)
		}
	}
	if p, _ := IECNormalInverse.Sample(0.2, 1, 100, 50); p != nil {
		t.Error("下限不大于 1 时应当返回空")
	}
}
