package repository

import (
	"errors"

	"github.com/legaldraft/backend/internal/model"
	"gorm.io/gorm"
)

type jurisdictionRequirementRepository struct {
	db *gorm.DB
}

func NewJurisdictionRequirementRepository(db *gorm.DB) JurisdictionRequirementRepository {
	return &jurisdictionRequirementRepository{db: db}
}

// Get 缺失条目不是错误，返回 (nil, nil)
func (r *jurisdictionRequirementRepository) Get(jurisdiction, docType string) (*model.JurisdictionRequirement, error) {
	var req model.JurisdictionRequirement
	err := r.db.Where("jurisdiction = ? AND document_type = ?", jurisdiction, docType).
		First(&req).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &req, nil
}
