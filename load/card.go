package load

import (
	"fmt"
	"strings"

	"protection/types"
	"protection/utils"
)

// Card 卡片配置，描述一行输入的名称与参数
type Card struct {
	Name      string   // 卡片名称(如 "transformer")
	ValueName []string // 参数名称
	Required  int      // 必填参数数量
	// apply 将参数写入输入记录
	apply func(in *types.Input, values utils.NetList) error
	// export 从输入记录导出参数
	export func(in types.Input) []any
}

// cardList 已注册卡片，按导出顺序排列
var cardList = []*Card{
	{
		Name:      "transformer",
		ValueName: []string{"rated_mva", "hv_kv", "lv_kv", "impedance_pct", "mag_current_pct", "ltc_present", "ltc_range_pct"},
		Required:  4,
		apply: func(in *types.Input, values utils.NetList) (err error) {
			t := &in.Transformer
			if t.RatedMVA, err = values.Float64(0); err != nil {
				return err
			}
			if t.HVkV, err = values.Float64(1); err != nil {
				return err
			}
			if t.LVkV, err = values.Float64(2); err != nil {
				return err
			}
			if t.ImpedancePct, err = values.Float64(3); err != nil {
				return err
			}
			if t.MagCurrentPct, err = values.Float64Or(4, 0); err != nil {
				return err
			}
			if t.LTCPresent, err = values.BoolOr(5, false); err != nil {
				return err
			}
			t.LTCRangePct, err = values.Float64Or(6, 0)
			return err
		},
		export: func(in types.Input) []any {
			t := in.Transformer
			return []any{t.RatedMVA, t.HVkV, t.LVkV, t.ImpedancePct, t.MagCurrentPct, t.LTCPresent, t.LTCRangePct}
		},
	},
	{
		Name:      "ct",
		ValueName: []string{"hv_ratio", "lv_ratio"},
		Required:  2,
		apply: func(in *types.Input, values utils.NetList) (err error) {
			c := &in.CT
			if c.HVPrimary, c.HVSecondary, err = values.Ratio(0); err != nil {
				return err
			}
			c.LVPrimary, c.LVSecondary, err = values.Ratio(1)
			return err
		},
		export: func(in types.Input) []any {
			c := in.CT
			return []any{
				utils.FormatRatio(c.HVPrimary, c.HVSecondary),
				utils.FormatRatio(c.LVPrimary, c.LVSecondary),
			}
		},
	},
	{
		Name:      "fault",
		ValueName: []string{"hv_fault_mva", "lv_fault_mva"},
		Required:  2,
		apply: func(in *types.Input, values utils.NetList) (err error) {
			f := &in.Fault
			if f.HVFaultMVA, err = values.Float64(0); err != nil {
				return err
			}
			f.LVFaultMVA, err = values.Float64(1)
			return err
		},
		export: func(in types.Input) []any {
			return []any{in.Fault.HVFaultMVA, in.Fault.LVFaultMVA}
		},
	},
}

// cardNames 名称索引
var cardNames = func() map[string]*Card {
	m := make(map[string]*Card, len(cardList))
	for _, c := range cardList {
		m[c.Name] = c
	}
	return m
}()

// GetCard 按名称查找卡片，不区分大小写
func GetCard(name string) (*Card, bool) {
	c, ok := cardNames[strings.ToLower(name)]
	return c, ok
}

// Load 解析参数并写入输入记录
func (c *Card) Load(in *types.Input, values utils.NetList) error {
	if len(values) < c.Required {
		return fmt.Errorf("卡片 '%s' 参数不足。需要 %d (%s)，得到 %d",
			c.Name, c.Required, strings.Join(c.ValueName[:c.Required], " "), len(values))
	}
	if len(values) > len(c.ValueName) {
		return fmt.Errorf("卡片 '%s' 参数过多。最多 %d，得到 %d", c.Name, len(c.ValueName), len(values))
	}
	return c.apply(in, values)
}

// Export 导出参数
func (c *Card) Export(in types.Input) utils.NetList {
	return utils.FromAnySlice(c.export(in))
}
