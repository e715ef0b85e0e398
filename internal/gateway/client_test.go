//go:build unit

package gateway_test

import (
	"context"
	"log/slog"
	"net/http"
	"testing"
	"time"

	"cancha-client/internal/gateway"
	"cancha-client/tests/common/servicetest"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newClient() *gateway.Client {
	return gateway.NewClient(&http.Client{Timeout: 2 * time.Second}, slog.Default())
}

func TestCallStampsRequestID(t *testing.T) {
	svc := servicetest.New(t)
	var seenID string
	var seenAccept string
	svc.Engine.GET("/ping", func(c *gin.Context) {
		seenID = c.GetHeader("X-Request-ID")
		seenAccept = c.GetHeader("Accept")
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})

	resp, err := newClient().Call(context.Background(), http.MethodGet, svc.URL()+"/ping", nil)

	require.NoError(t, err)
	assert.True(t, resp.IsSuccess())
	assert.Equal(t, "application/json", seenAccept)
	_, err = uuid.Parse(seenID)
	assert.NoError(t, err, "X-Request-ID should be a uuid")
}

func TestCallEncodesBody(t *testing.T) {
	svc := servicetest.New(t)
	var seenContentType string
	var seenBody map[string]any
	svc.Engine.POST("/echo", func(c *gin.Context) {
		seenContentType = c.GetHeader("Content-Type")
		require.NoError(t, c.BindJSON(&seenBody))
		c.Status(http.StatusCreated)
	})

	resp, err := newClient().Call(context.Background(), http.MethodPost, svc.URL()+"/echo",
		map[string]string{"email": "maria@example.com"})

	require.NoError(t, err)
	assert.Equal(t, http.StatusCreated, resp.Status)
	assert.Equal(t, "application/json", seenContentType)
	assert.Equal(t, "maria@example.com", seenBody["email"])
}

func TestWithBearer(t *testing.T) {
	svc := servicetest.New(t)
	var seenAuth string
	svc.Engine.GET("/secure", func(c *gin.Context) {
		seenAuth = c.GetHeader("Authorization")
		c.Status(http.StatusOK)
	})

	_, err := newClient().Call(context.Background(), http.MethodGet, svc.URL()+"/secure", nil,
		gateway.WithBearer("tok-abc"))

	require.NoError(t, err)
	assert.Equal(t, "Bearer tok-abc", seenAuth)
}

func TestErrorMessage(t *testing.T) {
	resp := &gateway.Response{Status: 400, Body: []byte(`{"error":"Datos inválidos"}`)}
	assert.Equal(t, "Datos inválidos", resp.ErrorMessage())

	resp = &gateway.Response{Status: 400, Body: []byte(`[1,2,3]`)}
	assert.Empty(t, resp.ErrorMessage())

	resp = &gateway.Response{Status: 204}
	assert.Empty(t, resp.ErrorMessage())
}

func TestCallHonorsContext(t *testing.T) {
	svc := servicetest.New(t)
	svc.Engine.GET("/slow", func(c *gin.Context) {
		time.Sleep(200 * time.Millisecond)
		c.Status(http.StatusOK)
	})

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err := newClient().Call(ctx, http.MethodGet, svc.URL()+"/slow", nil)
	assert.Error(t, err)
}
