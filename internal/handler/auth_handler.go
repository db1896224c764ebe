package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/smart-timetable/dashboard-api/internal/middleware"
	"github.com/smart-timetable/dashboard-api/internal/models"
	"github.com/smart-timetable/dashboard-api/internal/service"
	appErrors "github.com/smart-timetable/dashboard-api/pkg/errors"
	"github.com/smart-timetable/dashboard-api/pkg/response"
)

type authSessions interface {
	Login(ctx context.Context, creds models.Credentials) (*service.LoginResult, error)
	CurrentUser(ctx context.Context) (*models.User, error)
	Logout(ctx context.Context) error
}

// AuthHandler serves login, logout and the current-user lookup.
type AuthHandler struct {
	auth authSessions
}

// NewAuthHandler constructs a new AuthHandler.
func NewAuthHandler(auth authSessions) *AuthHandler {
	return &AuthHandler{auth: auth}
}

// Login godoc
// @Summary Sign in and receive an access token
// @Tags Auth
// @Accept json
// @Produce json
// @Param payload body models.Credentials true "Credentials"
// @Success 200 {object} response.Envelope
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var creds models.Credentials
	if err := c.ShouldBindJSON(&creds); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid login payload"))
		return
	}
	result, err := h.auth.Login(c.Request.Context(), creds)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.WithSource(c, string(result.Source))
	response.OK(c, result)
}

// Me godoc
// @Summary Get the signed-in user
// @Tags Auth
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /auth/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	user, err := h.auth.CurrentUser(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	if user == nil {
		// The durable session can be gone while the token is still valid;
		// the claims carry enough to answer.
		if claims := middleware.CurrentClaims(c); claims != nil {
			user = &models.User{
				ID:       claims.UserID,
				Username: claims.Username,
				Role:     claims.Role,
				Name:     claims.Name,
			}
		}
	}
	if user == nil {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}
	response.OK(c, user)
}

// Logout godoc
// @Summary Sign out
// @Tags Auth
// @Success 200 {object} response.Envelope
// @Router /auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	if err := h.auth.Logout(c.Request.Context()); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c)
}
