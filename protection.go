// Package protection 计算双绕组电力变压器的保护整定值。
//
// 计算流程: 输入校验 → 基准电气量 → 差动(87T)、过流(51/50)、热稳定(I²t) 三项并行计算。
// 所有计算都是无状态的纯函数，输入输出均为值类型记录。
package protection

import (
	"fmt"
	"os"

	"golang.org/x/sync/errgroup"

	"protection/calc/base"
	"protection/calc/differential"
	"protection/calc/overcurrent"
	"protection/calc/thermal"
	"protection/load"
	"protection/maths"
	"protection/types"
)

// Calculate 完整计算
// 输入在任何计算之前校验，失败时返回的错误满足 errors.Is(err, types.ErrInvalidInput)。
func Calculate(in types.Input) (types.Result, error) {
	if err := in.Validate(); err != nil {
		return types.Result{}, err
	}
	bv, err := base.Calculate(in.Transformer)
	if err != nil {
		return types.Result{}, err
	}
	res := types.Result{Base: bv}
	// 三项计算只依赖输入与基准值，互不影响
	// 穿越故障倍数在 bv 中已舍入，判据取未舍入值
	var g errgroup.Group
	g.Go(func() error {
		res.Differential = differential.Calculate(in.Transformer)
		return nil
	})
	g.Go(func() (err error) {
		res.Overcurrent, err = overcurrent.Calculate(in.Transformer, in.Fault, bv)
		return err
	})
	g.Go(func() error {
		res.Thermal = thermal.Calculate(bv.Category, maths.ThroughFaultPU(in.Transformer.ImpedancePct))
		return nil
	})
	if err := g.Wait(); err != nil {
		return types.Result{}, err
	}
	return res, nil
}

// Study 一个整定计算项目
type Study struct {
	Input  types.Input
	Result *types.Result
}

// NewStudy 初始化
func NewStudy() *Study { return &Study{} }

// Load 加载输入卡片文件
func (s *Study) Load(filename string) error {
	file, err := os.Open(filename)
	if err != nil {
		return err
	}
	defer file.Close()
	in, err := load.LoadContext(file)
	if err != nil {
		return fmt.Errorf("%s: %w", filename, err)
	}
	s.Input, s.Result = in, nil
	return nil
}

// Export 导出输入卡片文件
func (s *Study) Export(filename string) error {
	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	if err := load.Export(file, s.Input); err != nil {
		file.Close()
		return err
	}
	return file.Close()
}

// Calculate 计算并保存结果
func (s *Study) Calculate() (types.Result, error) {
	res, err := Calculate(s.Input)
	if err != nil {
		return res, err
	}
	s.Result = &res
	return res, nil
}
