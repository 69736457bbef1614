package apierrors

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rekarton-ge/client-crm/internal/store"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestRespondWithError(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{name: "invalid filter", err: fmt.Errorf("%w: status", store.ErrInvalidFilter), wantStatus: http.StatusBadRequest, wantCode: "INVALID_FILTER"},
		{name: "invalid reference", err: store.ErrInvalidReference, wantStatus: http.StatusBadRequest, wantCode: "INVALID_REFERENCE"},
		{name: "not found", err: store.ErrNotFound, wantStatus: http.StatusNotFound, wantCode: "NOT_FOUND"},
		{name: "already exists", err: fmt.Errorf("%w: clients_email_key", store.ErrAlreadyExists), wantStatus: http.StatusConflict, wantCode: "ALREADY_EXISTS"},
		{name: "unknown", err: errors.New("connection reset"), wantStatus: http.StatusInternalServerError, wantCode: "INTERNAL_ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

			RespondWithError(c, tt.err)

			assert.Equal(t, tt.wantStatus, w.Code)
			assert.Contains(t, w.Body.String(), tt.wantCode)
			assert.NotContains(t, w.Body.String(), "connection reset")
		})
	}
}
