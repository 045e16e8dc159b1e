package load

import (
	"bytes"
	"strings"
	"testing"

	"protection/types"
)

const deck = `
# 50 MVA 132/33 kV
.title 主变
.value z 12.5
transformer 50 132 33 %z 0.8 true 10
ct 300/1 1000/5 // 两侧 CT
FAULT 5000 1500
`

func TestLoadString(t *testing.T) {
	in, err := LoadString(deck)
	if err != nil {
		t.Fatalf("加载失败: %s", err)
	}
	want := types.Input{
		Transformer: types.TransformerInput{
			RatedMVA:      50,
			HVkV:          132,
			LVkV:          33,
			ImpedancePct:  12.5,
			MagCurrentPct: 0.8,
			LTCPresent:    true,
			LTCRangePct:   10,
		},
		CT: types.CTInput{
			HVPrimary:   300,
			HVSecondary: 1,
			LVPrimary:   1000,
			LVSecondary: 5,
		},
		Fault: types.SystemFaultInput{HVFaultMVA: 5000, LVFaultMVA: 1500},
	}
	if in != want {
		t.Errorf("加载结果错误:\n%+v\n期望:\n%+v", in, want)
	}
}

func TestLoadOptional(t *testing.T) {
	in, err := LoadString("transformer 10 33 11 8\nct 200 600\nfault 1000 300\n")
	if err != nil {
		t.Fatalf("加载失败: %s", err)
	}
	if in.Transformer.LTCPresent || in.Transformer.MagCurrentPct != 0 || in.Transformer.LTCRangePct != 0 {
		t.Errorf("可选参数应取默认值: %+v", in.Transformer)
	}
	if in.CT.HVSecondary != 1 || in.CT.LVSecondary != 1 {
		t.Errorf("未写次级时应为 1: %+v", in.CT)
	}
}

func TestLoadErrors(t *testing.T) {
	cases := []struct {
		name string
		deck string
		msg  string
	}{
		{"未知卡片", "relay 1 2\n", "第 1 行: 未知卡片 'relay'"},
		{"参数不足", "transformer 50 132\n", "参数不足"},
		{"参数过多", "fault 1 2 3\n", "参数过多"},
		{"非数值", "fault abc 2\n", "不是数值"},
		{"变比错误", "ct 300/0 1000/1\n", "变比必须为正"},
		{"未定义变量", "fault %hv 1500\n", "未定义变量 'hv'"},
		{"value 格式", ".value z\n", ".value 命令需要名称和值"},
		{"重复卡片", "fault 1 2\nfault 3 4\n", "第 2 行: 卡片 'fault' 重复定义，首次出现在第 1 行"},
		{"缺少卡片", "transformer 50 132 33 12.5\nfault 1 2\n", "缺少卡片 'ct'"},
	}
	for _, c := range cases {
		_, err := LoadString(c.deck)
		if err == nil {
			t.Errorf("%s: 应当返回错误", c.name)
			continue
		}
		if !strings.Contains(err.Error(), c.msg) {
			t.Errorf("%s: 错误信息 %q 不含 %q", c.name, err, c.msg)
		}
	}
}

func TestExport(t *testing.T) {
	in, err := LoadString(deck)
	if err != nil {
		t.Fatalf("加载失败: %s", err)
	}
	var buf bytes.Buffer
	if err := Export(&buf, in); err != nil {
		t.Fatalf("导出失败: %s", err)
	}
	want := "transformer 50 132 33 12.5 0.8 true 10\nct 300/1 1000/5\nfault 5000 1500\n"
	if buf.String() != want {
		t.Errorf("导出内容错误:\n%s", buf.String())
	}
	again, err := LoadString(buf.String())
	if err != nil {
		t.Fatalf("重新加载失败: %s", err)
	}
	if again != in {
		t.Errorf("导出后重新加载不一致: %+v", again)
	}
}

func TestGetCard(t *testing.T) {
	for _, name := range []string{"transformer", "CT", "Fault"} {
		if _, ok := GetCard(name); !ok {
			t.Errorf("未找到卡片 %s", name)
		}
	}
	if _, ok := GetCard("bus"); ok {
		t.Error("不应找到未注册卡片")
	}
}
