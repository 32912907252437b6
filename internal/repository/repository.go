package repository

import (
	"errors"

	"github.com/legaldraft/backend/internal/model"
)

// ErrNotFound 记录不存在错误
var ErrNotFound = errors.New("record not found")

type DocumentRepository interface {
	Create(doc *model.Document) error
	Get(id uint) (*model.Document, error)
	// IncrementDownloadCount 原子自增下载计数，记录不存在返回 ErrNotFound
	IncrementDownloadCount(id uint) error
	Count() (int64, error)
}

type TemplateRepository interface {
	List() ([]model.DocumentTemplate, error)
	GetByType(docType string) (*model.DocumentTemplate, error)
}

type JurisdictionRequirementRepository interface {
	// Get 返回 (jurisdiction, docType) 对应的辖区要求，缺失返回 (nil, nil)
	Get(jurisdiction, docType string) (*model.JurisdictionRequirement, error)
}

type BlogRepository interface {
	List() ([]model.BlogPost, error)
	ListByCategory(category string) ([]model.BlogPost, error)
	GetBySlug(slug string) (*model.BlogPost, error)
	IncrementViews(id uint) error
}
