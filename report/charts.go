package report

import (
	"fmt"
	"io"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/go-echarts/go-echarts/v2/types"

	ptypes "protection/types"
)

// Charts 曲线绘制
type Charts struct {
	Record
	Differential []ptypes.NamedSetting // 差动整定项
}

// NewCharts 由计算结果生成绘图数据
func NewCharts(res ptypes.Result, points int) *Charts {
	return &Charts{
		Record:       NewRecord(res.Overcurrent, points),
		Differential: res.Differential.Settings(),
	}
}

// Render 格式化
func (c *Charts) Render(w io.Writer) error {
	// 时间-电流曲线
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle: "变压器保护整定",
			Theme:     types.ThemeWesteros,
		}),
		charts.WithTitleOpts(opts.Title{
			Title:    "过流保护时间-电流特性",
			Subtitle: fmt.Sprintf("IEC 一般反时限，级差 %.3f s (%s)", c.Margin, c.Status),
		}),
		charts.WithLegendOpts(opts.Legend{
			Type:   "scroll",
			Orient: "vertical",
			Right:  "10",
			Top:    "20",
			Bottom: "20",
		}),
		charts.WithTooltipOpts(opts.Tooltip{
			Show:    opts.Bool(true),
			Trigger: "item",
		}),
		charts.WithXAxisOpts(opts.XAxis{
			Type: "log",
			Name: "PSM",
		}),
		charts.WithYAxisOpts(opts.YAxis{
			Type: "log",
			Name: "t (s)",
		}),
	)
	line.AddSeries("高压侧", pairs(c.PSM, c.HVTime))
	line.AddSeries("低压侧", pairs(c.PSM, c.LVTime))
	// 不动作的工作点不绘制
	for _, p := range []struct {
		name string
		Point
	}{{"高压侧工作点", c.HV}, {"低压侧工作点", c.LV}} {
		if p.Operates {
			line.AddSeries(p.name, []opts.LineData{{Value: []float64{p.PSM, p.Time}}})
		}
	}

	// 差动整定
	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			Theme: types.ThemeWesteros,
		}),
		charts.WithTitleOpts(opts.Title{
			Title:    "差动保护整定",
			Subtitle: "推荐值与人工值",
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
	)
	names := make([]string, len(c.Differential))
	recommended := make([]opts.BarData, len(c.Differential))
	set := make([]opts.BarData, len(c.Differential))
	for i, s := range c.Differential {
		names[i] = fmt.Sprintf("%s (%s)", s.Name, s.Unit)
		recommended[i] = opts.BarData{Value: s.Recommended}
		set[i] = opts.BarData{Value: s.Effective()}
	}
	bar.SetXAxis(names).
		AddSeries("推荐值", recommended).
		AddSeries("生效值", set)

	// 构建界面
	page := components.NewPage()
	page.AddCharts(
		line,
		bar,
	)
	return page.Render(w)
}

// pairs 组合 x-y 数据
func pairs(x, y []float64) []opts.LineData {
	items := make([]opts.LineData, len(x))
	for i := range x {
		items[i] = opts.LineData{Value: []float64{x[i], y[i]}}
	}
	return items
}
