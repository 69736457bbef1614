package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/rekarton-ge/client-crm/internal/apierrors"
	"github.com/rekarton-ge/client-crm/internal/auth/processor"
	"github.com/rekarton-ge/client-crm/internal/httpkit"
	"github.com/rekarton-ge/client-crm/internal/observability"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	authProcessor processor.AuthProcessor
	logger        *observability.Logger
}

type EmailLoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

func New(authProcessor processor.AuthProcessor, logger *observability.Logger) Handler {
	return Handler{authProcessor: authProcessor, logger: logger}
}

// HandleEmailLogin exchanges operator credentials for a bearer token
func (h *Handler) HandleEmailLogin(c *gin.Context) {
	ctx := c.Request.Context()

	var req EmailLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.ValidationError(c, err)
		return
	}

	loggedIn, err := h.authProcessor.Login(ctx, req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, processor.ErrInvalidCredentials):
			apierrors.Unauthorized(c, "Invalid email or password")
		default:
			apierrors.InternalError(c, err)
		}
		return
	}

	c.JSON(http.StatusOK, loggedIn)
}

// HandleJWTMiddleware rejects requests without a valid bearer token and
// stores the operator ID in the gin context.
func (h *Handler) HandleJWTMiddleware(c *gin.Context) {
	ctx := c.Request.Context()
	tokenHeader := c.GetHeader("Authorization")

	if tokenHeader == "" || !strings.HasPrefix(tokenHeader, "Bearer ") {
		apierrors.Unauthorized(c, "Authorization token is missing or invalid")
		return
	}

	tokenString := strings.TrimPrefix(tokenHeader, "Bearer ")

	claims, err := h.authProcessor.ValidateJWTToken(ctx, tokenString)
	if err != nil {
		if errors.Is(err, processor.ErrExpiredToken) {
			apierrors.Unauthorized(c, "Authorization token has expired")
			return
		}
		apierrors.Unauthorized(c, "Authorization token is missing or invalid")
		return
	}

	sub, err := claims.GetSubject()
	if err != nil || sub == "" {
		apierrors.Unauthorized(c, "Authorization token is missing or invalid")
		return
	}

	c.Set(httpkit.UserIDKey, sub)
	c.Request = c.Request.WithContext(observability.WithFields(ctx, observability.Field{Key: "user_id", Value: sub}))
	c.Next()
}
