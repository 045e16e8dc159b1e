package report

import (
	"fmt"
	"io"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
)

// 图片尺寸
const (
	plotWidth  = 6 * vg.Inch
	plotHeight = 4 * vg.Inch
)

// WritePlot 输出时间-电流配合图
// format 为 gonum/plot 支持的格式: png, svg, pdf, jpg ...
func WritePlot(w io.Writer, rec Record, format string) error {
	if len(rec.PSM) == 0 {
		return fmt.Errorf("曲线没有采样点")
	}
	p := plot.New()
	p.Title.Text = fmt.Sprintf("Overcurrent coordination, margin %.3f s (%s)", rec.Margin, rec.Status)
	p.X.Label.Text = "PSM (multiple of pickup)"
	p.Y.Label.Text = "Trip time (s)"
	p.X.Scale = plot.LogScale{}
	p.Y.Scale = plot.LogScale{}
	p.X.Tick.Marker = plot.LogTicks{Prec: -1}
	p.Y.Tick.Marker = plot.LogTicks{Prec: -1}
	p.Legend.Top = true
	p.Add(plotter.NewGrid())

	hv, err := plotter.NewLine(xys(rec.PSM, rec.HVTime))
	if err != nil {
		return err
	}
	hv.Color = plotutil.Color(0)
	lv, err := plotter.NewLine(xys(rec.PSM, rec.LVTime))
	if err != nil {
		return err
	}
	lv.Color = plotutil.Color(1)
	lv.Dashes = plotutil.Dashes(1)
	p.Add(hv, lv)
	p.Legend.Add("HV 51", hv)
	p.Legend.Add("LV 51", lv)

	// 工作点
	var points plotter.XYs
	for _, pt := range []Point{rec.HV, rec.LV} {
		if pt.Operates {
			points = append(points, plotter.XY{X: pt.PSM, Y: pt.Time})
		}
	}
	if len(points) > 0 {
		sc, err := plotter.NewScatter(points)
		if err != nil {
			return err
		}
		sc.Color = plotutil.Color(2)
		p.Add(sc)
		p.Legend.Add("operating point", sc)
	}

	wt, err := p.WriterTo(plotWidth, plotHeight, format)
	if err != nil {
		return err
	}
	_, err = wt.WriteTo(w)
	return err
}

// xys 组合绘图数据
func xys(x, y []float64) plotter.XYs {
	pts := make(plotter.XYs, len(x))
	for i := range x {
		pts[i].X = x[i]
		pts[i].Y = y[i]
	}
	return pts
}
