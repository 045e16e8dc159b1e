// 命令行整定计算工具。
//
//	go run ./cmd -deck study.deck -html curves.html -plot curves.png -json study.json -override pickup=0.3
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"protection"
	"protection/config"
	"protection/report"
	"protection/types"
)

// overrideFlag 可重复的 name=value 人工值
type overrideFlag map[types.SettingName]float64

func (o overrideFlag) String() string { return fmt.Sprint(map[types.SettingName]float64(o)) }

func (o overrideFlag) Set(s string) error {
	name, value, ok := strings.Cut(s, "=")
	if !ok {
		return fmt.Errorf("格式应为 name=value: %q", s)
	}
	v, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return fmt.Errorf("人工值不是数值: %q", value)
	}
	o[types.SettingName(strings.TrimSpace(name))] = v
	return nil
}

func main() {
	var (
		deck      = flag.String("deck", "", "输入卡片文件")
		jsonOut   = flag.String("json", "", "输出持久化文档(JSON)")
		htmlOut   = flag.String("html", "", "输出 HTML 曲线页面")
		plotOut   = flag.String("plot", "", "输出配合图(.png/.svg/.pdf)")
		exportOut = flag.String("export", "", "重新导出输入卡片")
		project   = flag.String("project", "", "项目编号(UUID)，为空时自动生成")
		overrides = overrideFlag{}
	)
	flag.Var(overrides, "override", "差动整定人工值 name=value，可重复")
	flag.Parse()

	zerolog.TimeFieldFormat = time.RFC3339
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("加载配置失败")
	}
	if level, err := zerolog.ParseLevel(cfg.LogLevel); err == nil {
		zerolog.SetGlobalLevel(level)
	}
	if *deck == "" {
		flag.Usage()
		os.Exit(2)
	}

	study := protection.NewStudy()
	if err := study.Load(*deck); err != nil {
		log.Fatal().Err(err).Msg("加载输入卡片失败")
	}
	res, err := study.Calculate()
	if err != nil {
		log.Fatal().Err(err).Msg("计算失败")
	}
	projectID := uuid.Nil
	if *project != "" {
		if projectID, err = uuid.Parse(*project); err != nil {
			log.Fatal().Err(err).Msg("项目编号无效")
		}
	}
	doc, err := report.NewDocument(projectID, study.Input, res).ApplyOverrides(overrides)
	if err != nil {
		log.Fatal().Err(err).Msg("人工值无效")
	}
	log.Debug().
		Str("project", doc.ProjectID.String()).
		Str("category", res.Base.Category.String()).
		Str("coordination", res.Overcurrent.CoordinationStatus.String()).
		Msg("计算完成")

	if err := report.WriteText(os.Stdout, doc.Input, doc.Result); err != nil {
		log.Fatal().Err(err).Msg("输出报告失败")
	}
	if *exportOut != "" {
		if err := study.Export(*exportOut); err != nil {
			log.Fatal().Err(err).Msg("导出输入卡片失败")
		}
	}
	if *jsonOut != "" {
		writeFile(*jsonOut, func(f io.Writer) error {
			enc := json.NewEncoder(f)
			enc.SetIndent("", "  ")
			return enc.Encode(doc)
		})
	}
	if *htmlOut != "" {
		writeFile(*htmlOut, report.NewCharts(doc.Result, cfg.CurvePoints).Render)
	}
	if *plotOut != "" {
		format := strings.TrimPrefix(filepath.Ext(*plotOut), ".")
		rec := report.NewRecord(doc.Result.Overcurrent, cfg.CurvePoints)
		writeFile(*plotOut, func(f io.Writer) error { return report.WritePlot(f, rec, format) })
	}
}

// writeFile 创建文件并写入，失败时退出
func writeFile(name string, write func(io.Writer) error) {
	file, err := os.Create(name)
	if err != nil {
		log.Fatal().Err(err).Str("file", name).Msg("创建文件失败")
	}
	if err := write(file); err != nil {
		file.Close()
		log.Fatal().Err(err).Str("file", name).Msg("写入文件失败")
	}
	if err := file.Close(); err != nil {
		log.Fatal().Err(err).Str("file", name).Msg("关闭文件失败")
	}
	log.Info().Str("file", name).Msg("已写入")
}
