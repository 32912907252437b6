package model

import (
	"fmt"
	"regexp"
	"time"

	"gorm.io/datatypes"
)

// FieldKind 表单字段类型标签
type FieldKind string

const (
	FieldText     FieldKind = "text"
	FieldTextarea FieldKind = "textarea"
	FieldDate     FieldKind = "date"
	FieldSelect   FieldKind = "select"
)

// FieldSpec 单个表单字段描述
// Options 仅对 select 类型有意义
type FieldSpec struct {
	Key      string    `json:"key"`
	Kind     FieldKind `json:"kind"`
	Label    string    `json:"label"`
	Required bool      `json:"required"`
	Options  []string  `json:"options,omitempty"`
}

// Validate 校验字段描述自身的一致性
func (f FieldSpec) Validate() error {
	switch f.Kind {
	case FieldText, FieldTextarea, FieldDate:
		if len(f.Options) > 0 {
			return fmt.Errorf("field %q: options only allowed on select fields", f.Key)
		}
	case FieldSelect:
		if len(f.Options) == 0 {
			return fmt.Errorf("field %q: select field requires options", f.Key)
		}
	default:
		return fmt.Errorf("field %q: unknown kind %q", f.Key, f.Kind)
	}
	if f.Key == "" {
		return fmt.Errorf("field key must not be empty")
	}
	return nil
}

// DocumentTemplate 文书模板
// 进程启动时从固定列表写入，此后只读
type DocumentTemplate struct {
	ID               uint                              `json:"id" gorm:"primaryKey"`
	Type             string                            `json:"type" gorm:"size:50;not null;uniqueIndex"`
	Name             string                            `json:"name" gorm:"size:100;not null"`
	Description      string                            `json:"description" gorm:"size:500"`
	Fields           datatypes.JSONType[[]FieldSpec]   `json:"fields"` // 切片保序，顺序即展示顺序
	PromptTemplate   string                            `json:"prompt_template" gorm:"type:text;not null"`
	EstimatedMinutes int                               `json:"estimated_minutes"`
	CreatedAt        time.Time                         `json:"created_at"`
}

func (DocumentTemplate) TableName() string {
	return "document_templates"
}

// JurisdictionToken 提示词中保留的辖区占位符名
const JurisdictionToken = "jurisdiction"

var promptTokenRe = regexp.MustCompile(`\{([a-zA-Z][a-zA-Z0-9_]*)\}`)

// PromptTokens 提取提示词模板中的全部 {token} 名称
func (t *DocumentTemplate) PromptTokens() []string {
	matches := promptTokenRe.FindAllStringSubmatch(t.PromptTemplate, -1)
	tokens := make([]string, 0, len(matches))
	for _, m := range matches {
		tokens = append(tokens, m[1])
	}
	return tokens
}

// Validate 校验模板一致性：除 {jurisdiction} 外，提示词中的每个占位符
// 必须对应一个字段 key，否则拼好的提示词会泄漏字面量 token
func (t *DocumentTemplate) Validate() error {
	fields := t.Fields.Data()
	keys := make(map[string]bool, len(fields))
	for _, f := range fields {
		if err := f.Validate(); err != nil {
			return fmt.Errorf("template %q: %w", t.Type, err)
		}
		if keys[f.Key] {
			return fmt.Errorf("template %q: duplicate field key %q", t.Type, f.Key)
		}
		keys[f.Key] = true
	}
	for _, token := range t.PromptTokens() {
		if token == JurisdictionToken {
			continue
		}
		if !keys[token] {
			return fmt.Errorf("template %q: prompt token {%s} has no matching field", t.Type, token)
		}
	}
	return nil
}
