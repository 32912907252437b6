package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"k8s.io/klog/v2"

	"github.com/legaldraft/backend/internal/pkg/llm"
	"github.com/legaldraft/backend/internal/repository"
	"github.com/legaldraft/backend/internal/service"
)

type DocumentHandler struct {
	generateService *service.GenerateService
	docService      *service.DocumentService
}

func NewDocumentHandler(generateService *service.GenerateService, docService *service.DocumentService) *DocumentHandler {
	return &DocumentHandler{
		generateService: generateService,
		docService:      docService,
	}
}

// Generate 生成文书
// 错误映射：校验错误 400（未知类型 404）、生成服务未配置 503、其余 500 且不泄漏内部细节
func (h *DocumentHandler) Generate(c *gin.Context) {
	var req service.GenerateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.generateService.Generate(c.Request.Context(), req)
	if err != nil {
		var vErr *service.ValidationError
		switch {
		case errors.As(err, &vErr):
			status := http.StatusBadRequest
			if vErr.Code == service.CodeUnknownDocumentType {
				status = http.StatusNotFound
			}
			c.JSON(status, gin.H{"error": vErr.Message, "code": vErr.Code, "field": vErr.Field})
		case errors.Is(err, llm.ErrNotConfigured):
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"error": "document generation service is not available, please try again later",
			})
		default:
			klog.Errorf("生成失败: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to generate document"})
		}
		return
	}

	c.JSON(http.StatusOK, result)
}

// Get 获取已生成文书
func (h *DocumentHandler) Get(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	doc, err := h.docService.Get(uint(id))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "document not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch document"})
		return
	}
	c.JSON(http.StatusOK, doc)
}

// Download 下载跟踪，at-least-once 自增
func (h *DocumentHandler) Download(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	if err := h.docService.TrackDownload(uint(id)); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "document not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to track download"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "download tracked"})
}

// Export 打印版 HTML 导出
func (h *DocumentHandler) Export(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	data, filename, err := h.docService.Export(uint(id))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "document not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to export document"})
		return
	}

	c.Header("Content-Disposition", "attachment; filename="+filename)
	c.Data(http.StatusOK, "text/html; charset=utf-8", data)
}
