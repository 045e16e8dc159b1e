package report

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/shopspring/decimal"

	"protection/maths"
	"protection/types"
)

// fixed 定点格式，非有限数输出 "-"
func fixed(v float64, places int32) string {
	if !maths.IsFinite(v) {
		return "-"
	}
	return decimal.NewFromFloat(v).StringFixed(places)
}

// WriteText 输出文本报告
// 每项整定都带数值、单位与标准引用，报告不需要额外的领域知识。
func WriteText(w io.Writer, in types.Input, res types.Result) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	t := in.Transformer
	fmt.Fprintln(tw, "== 变压器")
	fmt.Fprintf(tw, "额定容量\t%s\tMVA\n", fixed(t.RatedMVA, 2))
	fmt.Fprintf(tw, "电压\t%s / %s\tkV\n", fixed(t.HVkV, 2), fixed(t.LVkV, 2))
	fmt.Fprintf(tw, "短路阻抗\t%s\t%%\n", fixed(t.ImpedancePct, 2))
	if t.LTCPresent {
		fmt.Fprintf(tw, "有载调压\t±%s\t%%\n", fixed(t.LTCRangePct, 1))
	}
	fmt.Fprintf(tw, "CT 变比\t%s / %s\t\n", fixed(in.CT.HVRatio(), 0), fixed(in.CT.LVRatio(), 0))

	b := res.Base
	fmt.Fprintln(tw, "== 基准值")
	fmt.Fprintf(tw, "高压侧额定电流\t%s\tA\n", fixed(b.HVRatedCurrentA, 2))
	fmt.Fprintf(tw, "低压侧额定电流\t%s\tA\n", fixed(b.LVRatedCurrentA, 2))
	fmt.Fprintf(tw, "最大穿越故障\t%s\tpu\n", fixed(b.MaxThroughFaultPU, 2))
	fmt.Fprintf(tw, "容量分类\t%s\t\n", b.Category)

	fmt.Fprintln(tw, "== 差动保护 87T")
	fmt.Fprintln(tw, "项目\t推荐值\t人工值\t单位\t标准")
	for _, s := range res.Differential.Settings() {
		set := "-"
		if s.ValueSet != nil {
			set = fixed(*s.ValueSet, 2)
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n", s.Name, fixed(s.Recommended, 2), set, s.Unit, s.StandardReference)
	}

	oc := res.Overcurrent
	fmt.Fprintln(tw, "== 过流保护 51/50")
	fmt.Fprintln(tw, "侧\t启动值(pu)\tTMS\t故障电流(A)\tPSM\t动作时间(s)")
	for _, side := range []struct {
		name string
		types.OvercurrentSide
	}{{"HV", oc.HV}, {"LV", oc.LV}} {
		trip := fixed(side.TripTimeSeconds, 3)
		if !side.Operates {
			trip = "不动作"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\n", side.name, fixed(side.PickupPU, 2),
			fixed(side.TimeMultiplier, 2), fixed(side.FaultCurrentA, 0), fixed(side.PSM, 2), trip)
	}
	fmt.Fprintf(tw, "级差\t%s\ts\t%s\n", fixed(oc.CoordinationMarginSeconds, 3), oc.CoordinationStatus)

	th := res.Thermal
	fmt.Fprintln(tw, "== 穿越故障耐受 I²t")
	fmt.Fprintf(tw, "热稳定限值\t%s\tA²s\n", fixed(th.ThermalLimitA2s, 0))
	fmt.Fprintf(tw, "机械强度限值\t%s\tA²s\t%s\n", fixed(th.MechanicalLimitA2s, 0), types.RefIEEEC57109)
	fmt.Fprintf(tw, "有效限值\t%s\tA²s\n", fixed(th.EffectiveLimitA2s, 0))
	fmt.Fprintf(tw, "告警阈值\t%s\tA²s\n", fixed(th.AlarmThresholdA2s, 0))
	fmt.Fprintf(tw, "跳闸阈值\t%s\tA²s\n", fixed(th.TripThresholdA2s, 0))
	return tw.Flush()
}
