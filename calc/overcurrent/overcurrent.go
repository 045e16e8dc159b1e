// Package overcurrent 计算 51/50 过流保护整定和高低压侧时间配合。
package overcurrent

import (
	"protection/maths"
	"protection/types"
)

// Calculate 计算两侧过流整定与配合级差
// 短路容量不满足定义域时返回 types.ErrInvalidInput。
func Calculate(t types.TransformerInput, f types.SystemFaultInput, bv types.BaseValues) (types.OvercurrentSettings, error) {
	if err := f.Validate(); err != nil {
		return types.OvercurrentSettings{}, err
	}
	hv := Side(f.HVFaultMVA, t.HVkV, bv.HVRatedCurrentA, types.HVTimeMultiplier)
	lv := Side(f.LVFaultMVA, t.LVkV, bv.LVRatedCurrentA, types.LVTimeMultiplier)
	margin, status := Coordinate(hv, lv)
	return types.OvercurrentSettings{
		HV:                        hv,
		LV:                        lv,
		CoordinationMarginSeconds: margin,
		CoordinationStatus:        status,
	}, nil
}

// Side 单侧整定
// 插头倍数不大于 1 时不动作，动作时间取 types.NonOperatingTripTime。
func Side(faultMVA, kv, ratedA, tms float64) types.OvercurrentSide {
	fault := maths.LineCurrent(faultMVA, kv)
	psm := maths.PlugSetting(fault, types.OvercurrentPickupPU, ratedA)
	side := types.OvercurrentSide{
		PickupPU:        types.OvercurrentPickupPU,
		TimeMultiplier:  tms,
		TripTimeSeconds: types.NonOperatingTripTime,
		FaultCurrentA:   maths.Round(fault, types.FaultCurrentPrecision),
		PSM:             maths.Round(psm, types.PlugSettingPrecision),
	}
	if t, ok := maths.IECNormalInverse.TripTime(tms, psm); ok {
		side.TripTimeSeconds = maths.Round(t, types.TripTimePrecision)
		side.Operates = true
	}
	return side
}

// Coordinate 计算级差并判定配合状态
// 级差按算术计算；任一侧不动作时状态为 NOT_COMPARABLE。
func Coordinate(hv, lv types.OvercurrentSide) (float64, types.CoordinationStatus) {
	margin := maths.Round(hv.TripTimeSeconds-lv.TripTimeSeconds, types.TripTimePrecision)
	switch {
	case !hv.Operates || !lv.Operates:
		return margin, types.StatusNotComparable
	case margin >= types.CoordinationMinMargin:
		return margin, types.StatusPass
	default:
		return margin, types.StatusFail
	}
}
