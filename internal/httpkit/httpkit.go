// Package httpkit holds the request parsing shared by every resource handler.
package httpkit

import (
	"bytes"
	"encoding/json"
	"strconv"

	"github.com/rekarton-ge/client-crm/internal/apierrors"
	"github.com/rekarton-ge/client-crm/internal/store"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// UserIDKey is the gin context key the auth middleware stores the operator ID under.
const UserIDKey = "User-ID"

var reservedQueryKeys = map[string]bool{
	"page":     true,
	"limit":    true,
	"search":   true,
	"ordering": true,
}

// BulkRequest is the body of every bulk administrative action.
type BulkRequest struct {
	IDs []uuid.UUID `json:"ids" binding:"required,min=1"`
}

// NullableUUID is an optional reference in an update body. An absent key
// leaves the reference unchanged, null clears it.
type NullableUUID struct {
	Set   bool
	Value *uuid.UUID
}

func (n *NullableUUID) UnmarshalJSON(data []byte) error {
	n.Set = true
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		n.Value = nil
		return nil
	}
	var id uuid.UUID
	if err := json.Unmarshal(data, &id); err != nil {
		return err
	}
	n.Value = &id
	return nil
}

// Ref converts the field into the store's partial-update form.
func (n NullableUUID) Ref() store.NullableRef {
	return store.NullableRef{Set: n.Set, ID: n.Value}
}

// ListParams reads pagination, search, ordering and equality filters from
// the query string. Every query key that is not one of the reserved list
// keys is passed through as a filter; the store ignores unknown ones.
func ListParams(c *gin.Context) store.ListParams {
	params := store.ListParams{
		Search:   c.Query("search"),
		Ordering: c.Query("ordering"),
		Page:     queryInt(c, "page", 1),
		Limit:    queryInt(c, "limit", store.DefaultPageSize),
		Filters:  map[string]string{},
	}
	for key, values := range c.Request.URL.Query() {
		if reservedQueryKeys[key] || len(values) == 0 {
			continue
		}
		params.Filters[key] = values[0]
	}
	return params
}

func queryInt(c *gin.Context, key string, fallback int) int {
	raw := c.Query(key)
	if raw == "" {
		return fallback
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v < 1 {
		return fallback
	}
	return v
}

// ParseID reads the ":id" path parameter. On failure a 400 has already been written.
func ParseID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		apierrors.BadRequest(c, "INVALID_INPUT", "Invalid ID format")
		return uuid.UUID{}, false
	}
	return id, true
}

// BindBulk binds a BulkRequest. On failure a 400 has already been written.
func BindBulk(c *gin.Context) (BulkRequest, bool) {
	var req BulkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.ValidationError(c, err)
		return BulkRequest{}, false
	}
	return req, true
}

// UserID returns the authenticated operator ID set by the auth middleware.
func UserID(c *gin.Context) string {
	return c.GetString(UserIDKey)
}
