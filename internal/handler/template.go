package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/legaldraft/backend/internal/repository"
	"github.com/legaldraft/backend/internal/service"
)

type TemplateHandler struct {
	service *service.TemplateService
}

func NewTemplateHandler(service *service.TemplateService) *TemplateHandler {
	return &TemplateHandler{service: service}
}

// List 获取模板目录，按 id 排序
func (h *TemplateHandler) List(c *gin.Context) {
	templates, err := h.service.List()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch templates"})
		return
	}
	c.JSON(http.StatusOK, templates)
}

// Get 获取单个模板
func (h *TemplateHandler) Get(c *gin.Context) {
	tmpl, err := h.service.GetByType(c.Param("type"))
	if err != nil {
		if err == repository.ErrNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "template not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch template"})
		return
	}
	c.JSON(http.StatusOK, tmpl)
}

// Jurisdictions 辖区代码与名称列表
func (h *TemplateHandler) Jurisdictions(c *gin.Context) {
	c.JSON(http.StatusOK, h.service.Jurisdictions())
}
