package handlers

import (
	"strconv"

	"newsdesk-admin/helper"
	"newsdesk-admin/models"
	"newsdesk-admin/services"

	"github.com/gin-gonic/gin"
)

// DraftHandler exposes the editing-session operations over HTTP. One draft
// ID maps to one open session.
type DraftHandler struct {
	drafts *services.DraftService
	Helper *helper.HTTPHelper
}

func NewDraftHandler(drafts *services.DraftService, h *helper.HTTPHelper) *DraftHandler {
	return &DraftHandler{drafts: drafts, Helper: h}
}

func (h *DraftHandler) OpenDraft(c *gin.Context) {
	id, draft, err := h.drafts.Open(c.Request.Context(), c.Query("newsId"))
	if err != nil {
		h.Helper.SendDomainError(c, err)
		return
	}
	h.Helper.SendCreated(c, "Draft opened", gin.H{"draftId": id, "draft": models.NewDraftView(draft)})
}

func (h *DraftHandler) GetDraft(c *gin.Context) {
	draft, err := h.drafts.Get(c.Param("id"))
	if err != nil {
		h.Helper.SendDomainError(c, err)
		return
	}
	h.Helper.SendSuccess(c, "Draft loaded", models.NewDraftView(draft))
}

func (h *DraftHandler) UpdateDraft(c *gin.Context) {
	var req models.UpdateDraftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Helper.SendBindingError(c, err)
		return
	}

	draft, err := h.drafts.Update(c.Param("id"), req)
	if err != nil {
		h.Helper.SendDomainError(c, err)
		return
	}
	h.Helper.SendSuccess(c, "Draft updated", models.NewDraftView(draft))
}

func (h *DraftHandler) AddSection(c *gin.Context) {
	var req models.SectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Helper.SendBindingError(c, err)
		return
	}

	draft, err := h.drafts.AddSection(c.Param("id"), req.ToSection())
	if err != nil {
		h.Helper.SendDomainError(c, err)
		return
	}
	h.Helper.SendSuccess(c, "Section added", models.NewDraftView(draft))
}

func (h *DraftHandler) EditSection(c *gin.Context) {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		h.Helper.SendBadRequest(c, "Invalid section index", h.Helper.EmptyJsonMap())
		return
	}

	var req models.SectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Helper.SendBindingError(c, err)
		return
	}

	draft, err := h.drafts.EditSection(c.Param("id"), index, req.ToSection())
	if err != nil {
		h.Helper.SendDomainError(c, err)
		return
	}
	h.Helper.SendSuccess(c, "Section updated", models.NewDraftView(draft))
}

func (h *DraftHandler) DeleteSection(c *gin.Context) {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		h.Helper.SendBadRequest(c, "Invalid section index", h.Helper.EmptyJsonMap())
		return
	}

	draft, err := h.drafts.DeleteSection(c.Param("id"), index)
	if err != nil {
		h.Helper.SendDomainError(c, err)
		return
	}
	h.Helper.SendSuccess(c, "Section deleted", models.NewDraftView(draft))
}

func (h *DraftHandler) ResetDraft(c *gin.Context) {
	draft, err := h.drafts.Reset(c.Param("id"))
	if err != nil {
		h.Helper.SendDomainError(c, err)
		return
	}
	h.Helper.SendSuccess(c, "Draft reset", models.NewDraftView(draft))
}

func (h *DraftHandler) SubmitDraft(c *gin.Context) {
	item, err := h.drafts.Submit(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.Helper.SendDomainError(c, err)
		return
	}
	h.Helper.SendSuccess(c, "News saved successfully", item)
}

func (h *DraftHandler) DiscardDraft(c *gin.Context) {
	if err := h.drafts.Discard(c.Param("id")); err != nil {
		h.Helper.SendDomainError(c, err)
		return
	}
	h.Helper.SendSuccess(c, "Draft discarded", h.Helper.EmptyJsonMap())
}
