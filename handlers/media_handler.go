package handlers

import (
	"newsdesk-admin/helper"
	"newsdesk-admin/services"

	"github.com/gin-gonic/gin"
)

// MediaHandler proxies hero-image uploads to the asset host so the dashboard
// gets back a permanent URL before the article is submitted.
type MediaHandler struct {
	store  services.ImageStore
	Helper *helper.HTTPHelper
}

func NewMediaHandler(store services.ImageStore, h *helper.HTTPHelper) *MediaHandler {
	return &MediaHandler{store: store, Helper: h}
}

func (h *MediaHandler) UploadImage(c *gin.Context) {
	header, err := c.FormFile("file")
	if err != nil {
		h.Helper.SendBadRequest(c, "No file uploaded", h.Helper.EmptyJsonMap())
		return
	}

	src, err := header.Open()
	if err != nil {
		h.Helper.SendBadRequest(c, "Unreadable upload: "+err.Error(), h.Helper.EmptyJsonMap())
		return
	}
	defer src.Close()

	url, err := h.store.Upload(c.Request.Context(), src, header.Filename)
	if err != nil {
		h.Helper.SendDomainError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Image uploaded", gin.H{"url": url})
}
