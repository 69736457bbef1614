package apierrors

import (
	"errors"

	"github.com/rekarton-ge/client-crm/internal/store"

	"github.com/gin-gonic/gin"
)

// RespondWithError maps errors shared by every resource: the store
// sentinels and anything unknown. Handlers match their own processor
// errors first and fall through to this.
func RespondWithError(c *gin.Context, err error) {
	switch {
	case err == nil:
		return
	case errors.Is(err, store.ErrInvalidFilter):
		BadRequest(c, "INVALID_FILTER", err.Error())
	case errors.Is(err, store.ErrInvalidReference):
		BadRequest(c, "INVALID_REFERENCE", "A referenced record does not exist")
	case errors.Is(err, store.ErrNotFound):
		NotFound(c, "Resource not found")
	case errors.Is(err, store.ErrAlreadyExists):
		Conflict(c, "ALREADY_EXISTS", "Resource already exists")
	default:
		InternalError(c, err)
	}
}
