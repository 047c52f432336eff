package handlers

import (
	"newsdesk-admin/helper"
	"newsdesk-admin/models"
	"newsdesk-admin/services"

	"github.com/gin-gonic/gin"
)

type NewsHandler struct {
	newsService services.NewsService
	Helper      *helper.HTTPHelper
}

func NewNewsHandler(newsService services.NewsService, h *helper.HTTPHelper) *NewsHandler {
	return &NewsHandler{newsService: newsService, Helper: h}
}

func (h *NewsHandler) GetNews(c *gin.Context) {
	items, err := h.newsService.List(c.Request.Context())
	if err != nil {
		h.Helper.SendDomainError(c, err)
		return
	}
	h.Helper.SendSuccess(c, "News loaded", items)
}

func (h *NewsHandler) GetNewsItem(c *gin.Context) {
	item, err := h.newsService.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.Helper.SendDomainError(c, err)
		return
	}
	h.Helper.SendSuccess(c, "News loaded", item)
}

// CreateNews is the one-shot flow: the body is treated as a fresh draft and
// run through the full submission pipeline.
func (h *NewsHandler) CreateNews(c *gin.Context) {
	var req models.SaveNewsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Helper.SendBindingError(c, err)
		return
	}

	item, err := h.newsService.Create(c.Request.Context(), req)
	if err != nil {
		h.Helper.SendDomainError(c, err)
		return
	}
	h.Helper.SendCreated(c, "News added successfully", item)
}

func (h *NewsHandler) UpdateNews(c *gin.Context) {
	var req models.SaveNewsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Helper.SendBindingError(c, err)
		return
	}

	item, err := h.newsService.Update(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		h.Helper.SendDomainError(c, err)
		return
	}
	h.Helper.SendSuccess(c, "News updated successfully", item)
}

func (h *NewsHandler) DeleteNews(c *gin.Context) {
	result, err := h.newsService.Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.Helper.SendDomainError(c, err)
		return
	}
	if !result.Success {
		h.Helper.SendBadRequest(c, result.Message, h.Helper.EmptyJsonMap())
		return
	}
	h.Helper.SendSuccess(c, "News deleted successfully", result)
}
