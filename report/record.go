// Package report 把计算结果导出为报告、持久化文档和时间-电流曲线。
package report

import (
	"encoding/json"
	"io"
	"math"

	"protection/maths"
	"protection/types"
)

// DefaultPoints 曲线默认采样点数
const DefaultPoints = 60

// 曲线采样范围(插头倍数)
const (
	minPSM = 1.1
	maxPSM = 20
)

// Point 工作点
type Point struct {
	PSM      float64 `json:"psm"`
	Time     float64 `json:"time"`
	Operates bool    `json:"operates"`
}

// Record 两侧反时限曲线采样
type Record struct {
	PSM    []float64                `json:"psm"`     // 插头倍数列
	HVTime []float64                `json:"hv_time"` // 高压侧动作时间列
	LVTime []float64                `json:"lv_time"` // 低压侧动作时间列
	HV     Point                    `json:"hv"`      // 高压侧工作点
	LV     Point                    `json:"lv"`      // 低压侧工作点
	Margin float64                  `json:"margin"`
	Status types.CoordinationStatus `json:"status"`
}

// NewRecord 按整定结果采样曲线
// 采样上限覆盖两侧工作点。
func NewRecord(oc types.OvercurrentSettings, points int) Record {
	if points < 2 {
		points = DefaultPoints
	}
	hi := math.Max(maxPSM, 1.5*math.Max(oc.HV.PSM, oc.LV.PSM))
	psm, hv := maths.IECNormalInverse.Sample(oc.HV.TimeMultiplier, minPSM, hi, points)
	_, lv := maths.IECNormalInverse.Sample(oc.LV.TimeMultiplier, minPSM, hi, points)
	return Record{
		PSM:    psm,
		HVTime: hv,
		LVTime: lv,
		HV:     Point{PSM: oc.HV.PSM, Time: oc.HV.TripTimeSeconds, Operates: oc.HV.Operates},
		LV:     Point{PSM: oc.LV.PSM, Time: oc.LV.TripTimeSeconds, Operates: oc.LV.Operates},
		Margin: oc.CoordinationMarginSeconds,
		Status: oc.CoordinationStatus,
	}
}

// Render 格式和输出内容
func (list *Record) Render(w io.Writer) error { return json.NewEncoder(w).Encode(list) }
