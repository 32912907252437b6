package service

import (
	"fmt"

	"github.com/legaldraft/backend/internal/model"
	"github.com/legaldraft/backend/internal/pkg/markdown"
	"github.com/legaldraft/backend/internal/repository"
)

// DocumentService 已生成文书的读取与下载跟踪
// 内容创建后不可变，不提供更新或删除
type DocumentService struct {
	docRepo repository.DocumentRepository
}

func NewDocumentService(docRepo repository.DocumentRepository) *DocumentService {
	return &DocumentService{docRepo: docRepo}
}

func (s *DocumentService) Get(id uint) (*model.Document, error) {
	return s.docRepo.Get(id)
}

// TrackDownload 下载计数自增，at-least-once 语义，客户端可安全重试
func (s *DocumentService) TrackDownload(id uint) error {
	return s.docRepo.IncrementDownloadCount(id)
}

// Export 渲染打印版 HTML，浏览器打印即得 PDF
func (s *DocumentService) Export(id uint) (data []byte, filename string, err error) {
	doc, err := s.docRepo.Get(id)
	if err != nil {
		return nil, "", err
	}

	page := markdown.RenderPrintDocument(doc.Title, doc.Content)
	filename = fmt.Sprintf("document-%d.html", doc.ID)
	return []byte(page), filename, nil
}
