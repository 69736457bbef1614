package handler

import (
	"net/http"

	"github.com/rekarton-ge/client-crm/internal/apierrors"
	"github.com/rekarton-ge/client-crm/internal/httpkit"
	"github.com/rekarton-ge/client-crm/internal/store"

	"github.com/gin-gonic/gin"
)

type CreateTagRequest struct {
	Name        string  `json:"name" binding:"required,max=50"`
	Color       string  `json:"color" binding:"omitempty,hexcolor"`
	Description *string `json:"description,omitempty"`
}

type UpdateTagRequest struct {
	Name        *string `json:"name,omitempty" binding:"omitempty,min=1,max=50"`
	Color       *string `json:"color,omitempty" binding:"omitempty,hexcolor"`
	Description *string `json:"description,omitempty"`
}

func (h *Handler) HandleCreateTag(c *gin.Context) {
	var req CreateTagRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.ValidationError(c, err)
		return
	}

	tag, err := h.processor.CreateTag(c.Request.Context(), store.CreateClientTagParams{
		Name:        req.Name,
		Color:       req.Color,
		Description: req.Description,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, tag)
}

func (h *Handler) HandleListTags(c *gin.Context) {
	page, err := h.processor.ListTags(c.Request.Context(), httpkit.ListParams(c))
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, page)
}

func (h *Handler) HandleGetTag(c *gin.Context) {
	id, ok := httpkit.ParseID(c)
	if !ok {
		return
	}
	tag, err := h.processor.GetTag(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, tag)
}

func (h *Handler) HandleUpdateTag(c *gin.Context) {
	id, ok := httpkit.ParseID(c)
	if !ok {
		return
	}

	var req UpdateTagRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.ValidationError(c, err)
		return
	}

	tag, err := h.processor.UpdateTag(c.Request.Context(), id, store.UpdateClientTagParams{
		Name:        req.Name,
		Color:       req.Color,
		Description: req.Description,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, tag)
}

func (h *Handler) HandleDeleteTag(c *gin.Context) {
	id, ok := httpkit.ParseID(c)
	if !ok {
		return
	}
	if err := h.processor.DeleteTag(c.Request.Context(), id); err != nil {
		h.handleError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
