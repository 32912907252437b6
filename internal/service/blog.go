package service

import (
	"k8s.io/klog/v2"

	"github.com/legaldraft/backend/internal/model"
	"github.com/legaldraft/backend/internal/repository"
)

// BlogService 编辑部文章，核心管线之外的静态内容
type BlogService struct {
	blogRepo repository.BlogRepository
}

func NewBlogService(blogRepo repository.BlogRepository) *BlogService {
	return &BlogService{blogRepo: blogRepo}
}

func (s *BlogService) List(category string) ([]model.BlogPost, error) {
	if category != "" {
		return s.blogRepo.ListByCategory(category)
	}
	return s.blogRepo.List()
}

// GetBySlug 读取文章并自增浏览计数
// 计数失败不影响读取结果，只记日志
func (s *BlogService) GetBySlug(slug string) (*model.BlogPost, error) {
	post, err := s.blogRepo.GetBySlug(slug)
	if err != nil {
		return nil, err
	}

	if err := s.blogRepo.IncrementViews(post.ID); err != nil {
		klog.Errorf("浏览计数自增失败: slug=%s, err=%v", slug, err)
	} else {
		post.Views++
	}
	return post, nil
}
