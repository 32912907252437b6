package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/legaldraft/backend/internal/repository"
	"github.com/legaldraft/backend/internal/service"
)

type BlogHandler struct {
	service *service.BlogService
}

func NewBlogHandler(service *service.BlogService) *BlogHandler {
	return &BlogHandler{service: service}
}

// List 文章列表，支持 category 过滤
func (h *BlogHandler) List(c *gin.Context) {
	posts, err := h.service.List(c.Query("category"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch blog posts"})
		return
	}
	c.JSON(http.StatusOK, posts)
}

// Get 按 slug 获取文章并计浏览
func (h *BlogHandler) Get(c *gin.Context) {
	post, err := h.service.GetBySlug(c.Param("slug"))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "blog post not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch blog post"})
		return
	}
	c.JSON(http.StatusOK, post)
}
