package service

import (
	"github.com/legaldraft/backend/internal/model"
	"github.com/legaldraft/backend/internal/repository"
)

// TemplateService 模板目录只读服务
type TemplateService struct {
	templateRepo repository.TemplateRepository
}

func NewTemplateService(templateRepo repository.TemplateRepository) *TemplateService {
	return &TemplateService{templateRepo: templateRepo}
}

func (s *TemplateService) List() ([]model.DocumentTemplate, error) {
	return s.templateRepo.List()
}

func (s *TemplateService) GetByType(docType string) (*model.DocumentTemplate, error) {
	return s.templateRepo.GetByType(docType)
}

// Jurisdictions 辖区参考数据，静态只读
func (s *TemplateService) Jurisdictions() []model.Jurisdiction {
	return model.Jurisdictions
}
