package repository

import (
	"errors"

	"github.com/legaldraft/backend/internal/model"
	"gorm.io/gorm"
)

type blogRepository struct {
	db *gorm.DB
}

func NewBlogRepository(db *gorm.DB) BlogRepository {
	return &blogRepository{db: db}
}

func (r *blogRepository) List() ([]model.BlogPost, error) {
	var posts []model.BlogPost
	err := r.db.Order("published_at DESC").Find(&posts).Error
	return posts, err
}

func (r *blogRepository) ListByCategory(category string) ([]model.BlogPost, error) {
	var posts []model.BlogPost
	err := r.db.Where("category = ?", category).
		Order("published_at DESC").
		Find(&posts).Error
	return posts, err
}

func (r *blogRepository) GetBySlug(slug string) (*model.BlogPost, error) {
	var post model.BlogPost
	err := r.db.Where("slug = ?", slug).First(&post).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &post, nil
}

// IncrementViews 与文书下载计数同构的单条 UPDATE 自增
func (r *blogRepository) IncrementViews(id uint) error {
	result := r.db.Model(&model.BlogPost{}).
		Where("id = ?", id).
		UpdateColumn("views", gorm.Expr("views + ?", 1))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
