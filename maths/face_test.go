package maths

import (
	"math"
	"testing"
)

func TestLineCurrent(t *testing.T) {
	if got := Round(LineCurrent(50, 132), 2); got != 218.69 {
		t.Errorf("高压侧额定电流错误: %v", got)
	}
	if got := Round(LineCurrent(50, 33), 2); got != 874.77 {
		t.Errorf("低压侧额定电流错误: %v", got)
	}
}

func TestRound(t *testing.T) {
	cases := []struct {
		x    float64
		prec int
		want float64
	}{
		{0.2838, 2, 0.28},
		{1187.5, 0, 1188},
		{0.0935, 3, 0.094},
		{-0.125, 2, -0.13},
	}
	for _, c := range cases {
		if got := Round(c.x, c.prec); got != c.want {
			t.Errorf("Round(%v, %d) = %v, 期望 %v", c.x, c.prec, got, c.want)
		}
	}
}

func TestPlugSetting(t *testing.T) {
	if got := PlugSetting(0, 1.25, 100); got != 1 {
		t.Errorf("零故障电流 PSM 应为 1: %v", got)
	}
	if got := PlugSetting(-5, 1.25, 100); got != 1 {
		t.Errorf("负故障电流 PSM 应为 1: %v", got)
	}
	if got := PlugSetting(1250, 1.25, 100); got != 10 {
		t.Errorf("PSM 错误: %v", got)
	}
}

func TestIsFinite(t *testing.T) {
	for _, x := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		if IsFinite(x) {
			t.Errorf("%v 不是有限数", x)
		}
	}
	if !IsFinite(0) || !IsFinite(-1e300) {
		t.Error("有限数判断错误")
	}
}

func TestThroughFaultPU(t *testing.T) {
	if got := ThroughFaultPU(12.5); got != 8 {
		t.Errorf("穿越故障倍数错误: %v", got)
	}
	if got := ThroughFaultPU(8.333336); !(got < 12) {
		t.Errorf("不应舍入: %v", got)
	}
}
