//go:build unit

// Package servicetest spins up in-process stand-ins for the remote booking
// services. Each test registers only the routes it needs; anything else 404s.
package servicetest

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

type Service struct {
	Engine *gin.Engine
	Server *httptest.Server
}

func New(t *testing.T) *Service {
	t.Helper()
	gin.SetMode(gin.TestMode)

	engine := gin.New()
	server := httptest.NewServer(engine)
	t.Cleanup(server.Close)

	return &Service{Engine: engine, Server: server}
}

func (s *Service) URL() string {
	return s.Server.URL
}

// RespondJSON registers a route answering with a fixed status and body.
func (s *Service) RespondJSON(method, path string, status int, body any) {
	s.Engine.Handle(method, path, func(c *gin.Context) {
		c.JSON(status, body)
	})
}

// RespondError registers a route answering with the services' structured
// error shape.
func (s *Service) RespondError(method, path string, status int, message string) {
	s.RespondJSON(method, path, status, gin.H{"error": message})
}

// RespondEmpty registers a route answering a bare status with no body.
func (s *Service) RespondEmpty(method, path string, status int) {
	s.Engine.Handle(method, path, func(c *gin.Context) {
		c.Status(status)
	})
}

// Unreachable returns a base URL nothing listens on, for network-failure
// paths.
func Unreachable(t *testing.T) string {
	t.Helper()
	server := httptest.NewServer(http.NotFoundHandler())
	url := server.URL
	server.Close()
	return url
}
