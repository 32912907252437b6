package service

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/legaldraft/backend/internal/model"
	"github.com/legaldraft/backend/internal/repository"
)

// 校验错误码，稳定的对外词汇表
const (
	CodeUnknownDocumentType   = "unknown_document_type"
	CodeMalformedJurisdiction = "malformed_jurisdiction"
	CodeMissingRequiredField  = "missing_required_field"
)

// ValidationError 客户端输入错误，原样返回给调用方，从不重试
type ValidationError struct {
	Code    string `json:"code"`
	Field   string `json:"field,omitempty"`
	Message string `json:"message"`
}

func (e *ValidationError) Error() string {
	return e.Message
}

// GenerateRequest 生成请求体
type GenerateRequest struct {
	Type         string            `json:"type" binding:"required"`
	Jurisdiction string            `json:"jurisdiction" binding:"required"`
	FormData     map[string]string `json:"formData"`
}

// validRequest 校验通过的请求，附带已解析的模板
// jurisdiction 已归一化为大写
type validRequest struct {
	GenerateRequest
	template *model.DocumentTemplate
}

var jurisdictionRe = regexp.MustCompile(`^[A-Za-z]{2}$`)

// validateRequest 依次检查：文书类型已知、辖区代码格式、必填字段非空。
// 只做格式检查，不要求辖区存在于参考表。无副作用。
func validateRequest(req GenerateRequest, templates repository.TemplateRepository) (*validRequest, error) {
	tmpl, err := templates.GetByType(req.Type)
	if err != nil {
		if err == repository.ErrNotFound {
			return nil, &ValidationError{
				Code:    CodeUnknownDocumentType,
				Message: fmt.Sprintf("unknown document type %q", req.Type),
			}
		}
		return nil, err
	}

	if !jurisdictionRe.MatchString(req.Jurisdiction) {
		return nil, &ValidationError{
			Code:    CodeMalformedJurisdiction,
			Message: fmt.Sprintf("jurisdiction must be a 2-letter code, got %q", req.Jurisdiction),
		}
	}

	for _, field := range tmpl.Fields.Data() {
		if !field.Required {
			continue
		}
		if strings.TrimSpace(req.FormData[field.Key]) == "" {
			return nil, &ValidationError{
				Code:    CodeMissingRequiredField,
				Field:   field.Key,
				Message: fmt.Sprintf("required field %q is missing", field.Key),
			}
		}
	}

	valid := &validRequest{GenerateRequest: req, template: tmpl}
	valid.Jurisdiction = strings.ToUpper(req.Jurisdiction)
	return valid, nil
}
