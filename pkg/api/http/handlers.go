package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// handleGreeting handles GET /
func (s *Server) handleGreeting(c *gin.Context) {
	c.String(http.StatusOK, s.greeter.Greeting())
}

// handleHealthCheck handles GET /health-check
func (s *Server) handleHealthCheck(c *gin.Context) {
	c.String(http.StatusOK, s.greeter.Health())
}

// handleGetTime handles GET /get-time
func (s *Server) handleGetTime(c *gin.Context) {
	c.String(http.StatusOK, s.greeter.CurrentTime())
}
