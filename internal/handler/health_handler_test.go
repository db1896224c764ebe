package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smart-timetable/dashboard-api/internal/models"
)

type pingerStub struct {
	err error
}

func (p *pingerStub) Ping(ctx context.Context) error { return p.err }

type modeStub struct {
	mode models.Mode
}

func (m *modeStub) Mode() models.Mode { return m.mode }

func TestHealthDocumentIsNotEnveloped(t *testing.T) {
	gin.SetMode(gin.TestMode)
	h := NewHealthHandler(&pingerStub{}, &modeStub{mode: models.ModeRemote})

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/health", nil)

	h.Health(c)

	require.Equal(t, http.StatusOK, w.Code)
	var doc map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &doc))
	assert.Equal(t, "healthy", doc["status"])
	assert.Equal(t, "connected", doc["database"])
	assert.Equal(t, "remote", doc["mode"])
	assert.NotEmpty(t, doc["timestamp"])
	assert.NotContains(t, doc, "success")
}

func TestHealthReportsStoreFailure(t *testing.T) {
	gin.SetMode(gin.TestMode)
	h := NewHealthHandler(&pingerStub{err: errors.New("database is locked")}, &modeStub{mode: models.ModeLocal})

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/health", nil)

	h.Health(c)

	require.Equal(t, http.StatusInternalServerError, w.Code)
	var doc map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &doc))
	assert.Equal(t, "unhealthy", doc["status"])
	assert.Equal(t, "database is locked", doc["error"])
	assert.NotContains(t, doc, "database")
}
