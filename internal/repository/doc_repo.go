package repository

import (
	"errors"

	"github.com/legaldraft/backend/internal/model"
	"gorm.io/gorm"
)

type documentRepository struct {
	db *gorm.DB
}

func NewDocumentRepository(db *gorm.DB) DocumentRepository {
	return &documentRepository{db: db}
}

// Create 写入新文书，主键由数据库自增分配，并发调用不会产生重复 id
func (r *documentRepository) Create(doc *model.Document) error {
	return r.db.Create(doc).Error
}

func (r *documentRepository) Get(id uint) (*model.Document, error) {
	var doc model.Document
	err := r.db.First(&doc, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &doc, nil
}

// IncrementDownloadCount 单条 UPDATE 完成读改写，并发自增不丢更新
func (r *documentRepository) IncrementDownloadCount(id uint) error {
	result := r.db.Model(&model.Document{}).
		Where("id = ?", id).
		UpdateColumn("download_count", gorm.Expr("download_count + ?", 1))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *documentRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&model.Document{}).Count(&count).Error
	return count, err
}
