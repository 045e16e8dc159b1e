package report

import (
	"bytes"
	"encoding/json"
	"math"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"protection"
	"protection/types"
)

func example(t *testing.T) (types.Input, types.Result) {
	t.Helper()
	in := types.Input{
		Transformer: types.TransformerInput{
			RatedMVA:      50,
			HVkV:          132,
			LVkV:          33,
			ImpedancePct:  12.5,
			MagCurrentPct: 0.8,
			LTCPresent:    true,
			LTCRangePct:   10,
		},
		CT:    types.CTInput{HVPrimary: 300, LVPrimary: 1000},
		Fault: types.SystemFaultInput{HVFaultMVA: 5000, LVFaultMVA: 1500},
	}
	res, err := protection.Calculate(in)
	require.NoError(t, err)
	return in, res
}

func TestNewRecord(t *testing.T) {
	_, res := example(t)
	rec := NewRecord(res.Overcurrent, 40)

	require.Len(t, rec.PSM, 40)
	require.Len(t, rec.HVTime, 40)
	require.Len(t, rec.LVTime, 40)
	assert.InDelta(t, minPSM, rec.PSM[0], 1e-9)
	// 上限覆盖高压侧工作点 PSM 80
	assert.InDelta(t, 120, rec.PSM[39], 1e-9)
	for i := range rec.PSM {
		assert.Greater(t, rec.HVTime[i], rec.LVTime[i], "高压侧 TMS 较大，曲线应在低压侧之上")
	}
	assert.Equal(t, Point{PSM: 80, Time: 0.306, Operates: true}, rec.HV)
	assert.Equal(t, types.StatusFail, rec.Status)

	var buf bytes.Buffer
	require.NoError(t, rec.Render(&buf))
	assert.Contains(t, buf.String(), `"status":"FAIL"`)
}

func TestNewRecordDefaultPoints(t *testing.T) {
	_, res := example(t)
	rec := NewRecord(res.Overcurrent, 0)
	assert.Len(t, rec.PSM, DefaultPoints)
}

func TestDocumentMap(t *testing.T) {
	in, res := example(t)
	doc := NewDocument(uuid.Nil, in, res)
	require.NotEqual(t, uuid.Nil, doc.ProjectID)

	m, err := doc.Map()
	require.NoError(t, err)
	assert.Equal(t, doc.ProjectID.String(), m["project_id"])
	result := m["result"].(map[string]any)
	assert.Equal(t, "IV", result["thermal"].(map[string]any)["category"])
	assert.Equal(t, "FAIL", result["overcurrent"].(map[string]any)["coordination_status"])

	back, err := DocumentFromMap(m)
	require.NoError(t, err)
	assert.Equal(t, doc, back)
}

func TestDocumentFromMapMissingID(t *testing.T) {
	_, err := DocumentFromMap(map[string]any{"input": map[string]any{}})
	assert.Error(t, err)
	_, err = DocumentFromMap(map[string]any{"project_id": "x"})
	assert.Error(t, err)
}

func TestApplyOverrides(t *testing.T) {
	in, res := example(t)
	doc := NewDocument(uuid.New(), in, res)

	got, err := doc.ApplyOverrides(map[types.SettingName]float64{
		types.SettingPickup: 0.3,
		types.SettingSlope2: 55,
	})
	require.NoError(t, err)
	assert.Equal(t, 0.3, got.Result.Differential.Pickup.Effective())
	assert.Equal(t, 0.28, got.Result.Differential.Pickup.Recommended)
	assert.Equal(t, 55.0, got.Result.Differential.Slope2.Effective())
	assert.Nil(t, got.Result.Differential.Slope1.ValueSet)
	assert.Nil(t, doc.Result.Differential.Pickup.ValueSet, "原文档不应被修改")

	_, err = doc.ApplyOverrides(map[types.SettingName]float64{"slope_3": 1})
	assert.Error(t, err)

	_, err = doc.ApplyOverrides(map[types.SettingName]float64{types.SettingPickup: math.NaN()})
	assert.ErrorIs(t, err, types.ErrInvalidInput)
	_, err = doc.ApplyOverrides(map[types.SettingName]float64{types.SettingHighSet: math.Inf(1)})
	assert.ErrorIs(t, err, types.ErrInvalidInput)
}

func TestFixedNonFinite(t *testing.T) {
	assert.Equal(t, "-", fixed(math.NaN(), 2))
	assert.Equal(t, "-", fixed(math.Inf(-1), 2))
	assert.Equal(t, "0.28", fixed(0.28, 2))
}

func TestWriteText(t *testing.T) {
	in, res := example(t)
	var buf bytes.Buffer
	require.NoError(t, WriteText(&buf, in, res))
	out := buf.String()
	for _, s := range []string{
		"218.69", "874.77", "IV",
		"pickup", "0.28", types.RefIEEEC3791, types.RefIEC602551871,
		"0.306", "0.213", "0.093", "FAIL",
		"128", "102", "122", types.RefIEEEC57109,
	} {
		assert.Contains(t, out, s)
	}
	assert.NotContains(t, out, "不动作")
}

func TestWriteTextNonOperating(t *testing.T) {
	in, _ := example(t)
	in.Fault.HVFaultMVA = 40
	res, err := protection.Calculate(in)
	require.NoError(t, err)
	require.Equal(t, types.StatusNotComparable, res.Overcurrent.CoordinationStatus)

	var buf bytes.Buffer
	require.NoError(t, WriteText(&buf, in, res))
	assert.Contains(t, buf.String(), "不动作")
	assert.Contains(t, buf.String(), "NOT_COMPARABLE")
}

func TestChartsRender(t *testing.T) {
	_, res := example(t)
	var buf bytes.Buffer
	require.NoError(t, NewCharts(res, 20).Render(&buf))
	out := buf.String()
	assert.Contains(t, out, "过流保护时间-电流特性")
	assert.Contains(t, out, "差动保护整定")
}

func TestWritePlot(t *testing.T) {
	_, res := example(t)
	rec := NewRecord(res.Overcurrent, 30)

	var png bytes.Buffer
	require.NoError(t, WritePlot(&png, rec, "png"))
	assert.True(t, bytes.HasPrefix(png.Bytes(), []byte("\x89PNG")))

	var svg bytes.Buffer
	require.NoError(t, WritePlot(&svg, rec, "svg"))
	assert.True(t, strings.Contains(svg.String(), "<svg"))

	assert.Error(t, WritePlot(&svg, rec, "bmp"))
	assert.Error(t, WritePlot(&svg, Record{}, "png"))
}

func TestRecordJSON(t *testing.T) {
	_, res := example(t)
	data, err := json.Marshal(NewRecord(res.Overcurrent, 5))
	require.NoError(t, err)
	var back Record
	require.NoError(t, json.Unmarshal(data, &back))
	assert.Equal(t, types.StatusFail, back.Status)
	assert.Len(t, back.PSM, 5)
}
