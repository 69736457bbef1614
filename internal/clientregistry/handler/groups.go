package handler

import (
	"net/http"

	"github.com/rekarton-ge/client-crm/internal/apierrors"
	"github.com/rekarton-ge/client-crm/internal/httpkit"
	"github.com/rekarton-ge/client-crm/internal/store"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type CreateGroupRequest struct {
	Name           string         `json:"name" binding:"required,max=100"`
	Description    *string        `json:"description,omitempty"`
	FilterCriteria map[string]any `json:"filter_criteria,omitempty"`
	IsDynamic      bool           `json:"is_dynamic"`
	ClientIDs      []uuid.UUID    `json:"client_ids,omitempty"`
}

type UpdateGroupRequest struct {
	Name           *string        `json:"name,omitempty" binding:"omitempty,min=1,max=100"`
	Description    *string        `json:"description,omitempty"`
	FilterCriteria map[string]any `json:"filter_criteria,omitempty"`
	IsDynamic      *bool          `json:"is_dynamic,omitempty"`
	ClientIDs      *[]uuid.UUID   `json:"client_ids,omitempty"`
}

func (h *Handler) HandleCreateGroup(c *gin.Context) {
	var req CreateGroupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.ValidationError(c, err)
		return
	}

	group, err := h.processor.CreateGroup(c.Request.Context(), store.CreateClientGroupParams{
		Name:           req.Name,
		Description:    req.Description,
		FilterCriteria: store.JSONB(req.FilterCriteria),
		IsDynamic:      req.IsDynamic,
		ClientIDs:      req.ClientIDs,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, group)
}

func (h *Handler) HandleListGroups(c *gin.Context) {
	page, err := h.processor.ListGroups(c.Request.Context(), httpkit.ListParams(c))
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, page)
}

func (h *Handler) HandleGetGroup(c *gin.Context) {
	id, ok := httpkit.ParseID(c)
	if !ok {
		return
	}
	group, err := h.processor.GetGroup(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, group)
}

func (h *Handler) HandleUpdateGroup(c *gin.Context) {
	id, ok := httpkit.ParseID(c)
	if !ok {
		return
	}

	var req UpdateGroupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.ValidationError(c, err)
		return
	}

	group, err := h.processor.UpdateGroup(c.Request.Context(), id, store.UpdateClientGroupParams{
		Name:           req.Name,
		Description:    req.Description,
		FilterCriteria: store.JSONB(req.FilterCriteria),
		IsDynamic:      req.IsDynamic,
		ClientIDs:      req.ClientIDs,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, group)
}

func (h *Handler) HandleDeleteGroup(c *gin.Context) {
	id, ok := httpkit.ParseID(c)
	if !ok {
		return
	}
	if err := h.processor.DeleteGroup(c.Request.Context(), id); err != nil {
		h.handleError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
