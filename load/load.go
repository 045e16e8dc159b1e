// Package load 读写整定计算输入卡片文件。
//
// 文件按行书写，每行一张卡片，格式与网表类似:
//
//	# 50 MVA 132/33 kV
//	.value z 12.5
//	transformer 50 132 33 %z 0.8 true 10
//	ct 300/1 1000/1
//	fault 5000 1500
//
// "#" 或 "//" 开始注释，".value 名称 值" 定义变量，参数中以 % 开头的记号引用变量，
// 其余以 "." 开头的行忽略。
package load

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"protection/types"
	"protection/utils"
)

// LoadString 加载输入卡片
func LoadString(s string) (types.Input, error) {
	return LoadContext(strings.NewReader(s))
}

// LoadContext 加载输入卡片
func LoadContext(r io.Reader) (in types.Input, err error) {
	scanner := bufio.NewScanner(r)
	values := map[string]string{}
	seen := map[string]int{}
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		fields := tokens(scanner.Text())
		if len(fields) == 0 {
			continue
		}
		// 解析命令
		if fields[0][0] == '.' {
			if strings.EqualFold(fields[0], ".value") {
				if len(fields) != 3 {
					return in, errorAtLine(lineNum, ".value 命令需要名称和值")
				}
				values[fields[1]] = fields[2]
			}
			continue
		}
		card, ok := GetCard(fields[0])
		if !ok {
			return in, errorAtLine(lineNum, "未知卡片 '%s'", fields[0])
		}
		if prev, ok := seen[card.Name]; ok {
			return in, errorAtLine(lineNum, "卡片 '%s' 重复定义，首次出现在第 %d 行", card.Name, prev)
		}
		seen[card.Name] = lineNum
		// 替换变量
		list := make(utils.NetList, 0, len(fields)-1)
		for _, f := range fields[1:] {
			if f[0] == '%' {
				v, ok := values[f[1:]]
				if !ok {
					return in, errorAtLine(lineNum, "未定义变量 '%s'", f[1:])
				}
				f = v
			}
			list = append(list, f)
		}
		if err := card.Load(&in, list); err != nil {
			return in, fmt.Errorf("第 %d 行: %w", lineNum, err)
		}
	}
	if err := scanner.Err(); err != nil {
		return in, fmt.Errorf("读取输入卡片时出错: %w", err)
	}
	for _, c := range cardList {
		if _, ok := seen[c.Name]; !ok {
			return in, fmt.Errorf("缺少卡片 '%s'", c.Name)
		}
	}
	return in, nil
}

// Export 导出输入卡片
func Export(w io.Writer, in types.Input) error {
	writer := bufio.NewWriter(w)
	for _, c := range cardList {
		writer.WriteString(c.Name)
		for _, v := range c.Export(in) {
			writer.WriteRune(' ')
			writer.WriteString(v)
		}
		writer.WriteRune('\n')
	}
	return writer.Flush()
}

// tokens 分割一行，去掉注释
func tokens(line string) []string {
	fields := strings.Fields(line)
	for i, f := range fields {
		if f[0] == '#' || strings.HasPrefix(f, "//") {
			return fields[:i]
		}
	}
	return fields
}

// errorAtLine 生成带行号的错误信息
func errorAtLine(lineNum int, format string, args ...any) error {
	msg := fmt.Sprintf(format, args...)
	return fmt.Errorf("第 %d 行: %s", lineNum, msg)
}
