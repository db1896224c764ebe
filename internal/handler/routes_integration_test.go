package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"

	"github.com/smart-timetable/dashboard-api/internal/middleware"
	"github.com/smart-timetable/dashboard-api/internal/models"
	"github.com/smart-timetable/dashboard-api/internal/service"
	"github.com/smart-timetable/dashboard-api/internal/sync"
)

const routesTestSecret = "routes-secret"

func TestGuardedRoutesIntegration(t *testing.T) {
	router := buildGuardedRouter()

	t.Run("faculty list stays open", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/faculty", nil)
		resp := performRequest(router, req)
		require.Equal(t, http.StatusOK, resp.Code)
		require.Contains(t, resp.Body.String(), `"Dr. Rao"`)
	})

	t.Run("faculty create unauthorized", func(t *testing.T) {
		req := jsonRequest(http.MethodPost, "/api/faculty", map[string]string{"name": "Dr. Iyer"})
		resp := performRequest(router, req)
		require.Equal(t, http.StatusUnauthorized, resp.Code)
	})

	t.Run("faculty create forbidden for faculty role", func(t *testing.T) {
		req := jsonRequest(http.MethodPost, "/api/faculty", map[string]string{"name": "Dr. Iyer"})
		req.Header.Set("Authorization", "Bearer "+issueRouteToken(t, models.RoleFaculty))
		resp := performRequest(router, req)
		require.Equal(t, http.StatusForbidden, resp.Code)
	})

	t.Run("faculty create admin", func(t *testing.T) {
		req := jsonRequest(http.MethodPost, "/api/faculty", map[string]interface{}{"name": "Dr. Iyer", "subject": "Chemistry"})
		req.Header.Set("Authorization", "Bearer "+issueRouteToken(t, models.RoleAdmin))
		resp := performRequest(router, req)
		require.Equal(t, http.StatusCreated, resp.Code)
		require.Contains(t, resp.Body.String(), `"Dr. Iyer"`)
	})

	t.Run("leave request accepts any signed-in role", func(t *testing.T) {
		req := jsonRequest(http.MethodPost, "/api/leave-requests", map[string]string{"faculty_name": "Dr. Rao", "date": "2025-03-10"})
		req.Header.Set("Authorization", "Bearer "+issueRouteToken(t, models.RoleFaculty))
		resp := performRequest(router, req)
		require.Equal(t, http.StatusCreated, resp.Code)
	})

	t.Run("leave request unauthorized", func(t *testing.T) {
		req := jsonRequest(http.MethodPost, "/api/leave-requests", map[string]string{"faculty_name": "Dr. Rao", "date": "2025-03-10"})
		resp := performRequest(router, req)
		require.Equal(t, http.StatusUnauthorized, resp.Code)
	})

	t.Run("publish runs handler validation after the guard", func(t *testing.T) {
		req := jsonRequest(http.MethodPost, "/api/publish-timetable", map[string]interface{}{})
		req.Header.Set("Authorization", "Bearer "+issueRouteToken(t, models.RoleAdmin))
		resp := performRequest(router, req)
		require.Equal(t, http.StatusBadRequest, resp.Code)
		require.Contains(t, resp.Body.String(), "Timetable ID required")
	})
}

// buildGuardedRouter registers the API routes with the auth guard on,
// mirroring the production layout: open reads, staff writes for any
// signed-in user, admin writes for the admin role alone.
func buildGuardedRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()

	auth := service.NewAuthService(nil, nil, service.AuthConfig{
		Secret:     routesTestSecret,
		Expiration: time.Hour,
	})

	faculty := NewFacultyHandler(&facultyDirectoryMock{
		records: []models.Faculty{{ID: 1, Name: "Dr. Rao", Subject: "Physics"}},
		source:  sync.SourceRemote,
	})
	leaves := NewLeaveHandler(&leaveDeskMock{source: sync.SourceLocal}, nil, nil)
	timetable := NewTimetableHandler(&plannerMock{source: sync.SourceRemote})

	api := router.Group("/api")
	api.GET("/faculty", faculty.List)

	admin := api.Group("", middleware.JWT(auth), middleware.RequireRoles(models.RoleAdmin))
	admin.POST("/faculty", faculty.Create)
	admin.POST("/publish-timetable", timetable.Publish)

	staff := api.Group("", middleware.JWT(auth))
	staff.POST("/leave-requests", leaves.Create)

	return router
}

func issueRouteToken(t *testing.T, role string) string {
	t.Helper()
	claims := &models.JWTClaims{
		UserID:   1,
		Username: "tester",
		Role:     role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(routesTestSecret))
	require.NoError(t, err)
	return token
}

func performRequest(router *gin.Engine, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}
