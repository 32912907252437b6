package service

import (
	"context"
	"fmt"

	"gorm.io/datatypes"
	"k8s.io/klog/v2"

	"github.com/legaldraft/backend/internal/model"
	"github.com/legaldraft/backend/internal/pkg/llm"
	"github.com/legaldraft/backend/internal/repository"
)

// Generator 生成客户端接口，由 llm.Client 实现
type Generator interface {
	Generate(ctx context.Context, prompt string) (*llm.Result, error)
}

// GenerateService 文书生成管线：校验 -> 拼提示词 -> 调用生成 -> 落库。
// 阶段严格顺序执行，任一阶段失败都不会在存储中留下记录。
type GenerateService struct {
	templateRepo     repository.TemplateRepository
	jurisdictionRepo repository.JurisdictionRequirementRepository
	docRepo          repository.DocumentRepository
	generator        Generator
}

func NewGenerateService(
	templateRepo repository.TemplateRepository,
	jurisdictionRepo repository.JurisdictionRequirementRepository,
	docRepo repository.DocumentRepository,
	generator Generator,
) *GenerateService {
	return &GenerateService{
		templateRepo:     templateRepo,
		jurisdictionRepo: jurisdictionRepo,
		docRepo:          docRepo,
		generator:        generator,
	}
}

// GenerateResult 成功生成的返回值
type GenerateResult struct {
	DocumentID uint   `json:"documentId"`
	Title      string `json:"title"`
	Content    string `json:"content"`
	Demo       bool   `json:"demo,omitempty"`
}

// Generate 执行一次完整的生成请求
// 校验失败返回 *ValidationError；生成服务未配置返回 llm.ErrNotConfigured
func (s *GenerateService) Generate(ctx context.Context, req GenerateRequest) (*GenerateResult, error) {
	valid, err := validateRequest(req, s.templateRepo)
	if err != nil {
		return nil, err
	}

	jurReq, err := s.jurisdictionRepo.Get(valid.Jurisdiction, valid.Type)
	if err != nil {
		return nil, fmt.Errorf("failed to load jurisdiction requirements: %w", err)
	}

	prompt := buildPrompt(valid, jurReq)
	klog.V(6).Infof("生成请求: type=%s, jurisdiction=%s, promptLength=%d",
		valid.Type, valid.Jurisdiction, len(prompt))

	result, err := s.generator.Generate(ctx, prompt)
	if err != nil {
		// 失败路径不落库
		return nil, err
	}

	doc := &model.Document{
		Type:         valid.Type,
		Title:        deriveTitle(valid.template.Name, valid.FormData),
		Content:      result.Content,
		FormData:     datatypes.NewJSONType(valid.FormData),
		Jurisdiction: valid.Jurisdiction,
	}
	if err := s.docRepo.Create(doc); err != nil {
		return nil, fmt.Errorf("failed to persist document: %w", err)
	}

	klog.V(6).Infof("文书已生成: id=%d, title=%s, demo=%v", doc.ID, doc.Title, result.Demo)
	return &GenerateResult{
		DocumentID: doc.ID,
		Title:      doc.Title,
		Content:    doc.Content,
		Demo:       result.Demo,
	}, nil
}

// partyFields 标题中当事方字段的猜测顺序
var partyFields = []string{"employerName", "disclosingParty", "serviceProvider"}

// deriveTitle 标题 = 模板名 + 猜测的当事方字段
func deriveTitle(templateName string, formData map[string]string) string {
	party := "Document"
	for _, key := range partyFields {
		if v := formData[key]; v != "" {
			party = v
			break
		}
	}
	return templateName + " - " + party
}
