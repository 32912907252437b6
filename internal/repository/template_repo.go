package repository

import (
	"errors"

	"github.com/legaldraft/backend/internal/model"
	"gorm.io/gorm"
)

type templateRepository struct {
	db *gorm.DB
}

func NewTemplateRepository(db *gorm.DB) TemplateRepository {
	return &templateRepository{db: db}
}

func (r *templateRepository) List() ([]model.DocumentTemplate, error) {
	var templates []model.DocumentTemplate
	err := r.db.Order("id").Find(&templates).Error
	return templates, err
}

func (r *templateRepository) GetByType(docType string) (*model.DocumentTemplate, error) {
	var tmpl model.DocumentTemplate
	err := r.db.Where("type = ?", docType).First(&tmpl).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &tmpl, nil
}
