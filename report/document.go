package report

import (
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"protection/types"
)

// Document 持久化文档，按项目编号保存输入与结果
// 存储格式由外部决定，这里只产出字符串键的映射。
type Document struct {
	ProjectID uuid.UUID    `json:"project_id"`
	Input     types.Input  `json:"input"`
	Result    types.Result `json:"result"`
}

// NewDocument 创建文档，项目编号为空时生成新编号
func NewDocument(projectID uuid.UUID, in types.Input, res types.Result) Document {
	if projectID == uuid.Nil {
		projectID = uuid.New()
	}
	return Document{ProjectID: projectID, Input: in, Result: res}
}

// Map 转换为 map[string]any
func (d Document) Map() (map[string]any, error) {
	data, err := json.Marshal(d)
	if err != nil {
		return nil, err
	}
	var m map[string]any
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, err
	}
	return m, nil
}

// DocumentFromMap 从映射恢复文档
func DocumentFromMap(m map[string]any) (Document, error) {
	var d Document
	data, err := json.Marshal(m)
	if err != nil {
		return d, err
	}
	if err := json.Unmarshal(data, &d); err != nil {
		return d, fmt.Errorf("文档格式错误: %w", err)
	}
	if d.ProjectID == uuid.Nil {
		return d, fmt.Errorf("文档缺少项目编号")
	}
	return d, nil
}

// ApplyOverrides 填写差动整定人工值，返回新文档
func (d Document) ApplyOverrides(overrides map[types.SettingName]float64) (Document, error) {
	diff := d.Result.Differential
	for name, v := range overrides {
		var err error
		if diff, err = diff.WithValueSet(name, v); err != nil {
			return d, err
		}
	}
	d.Result.Differential = diff
	return d, nil
}
