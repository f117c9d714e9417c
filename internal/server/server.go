// Package server exposes the HTTP surface: configuration read/replace plus
// a health probe.
package server

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"netviz/internal/store"
)

type Server struct {
	gateway   *store.Gateway
	backend   string
	startTime time.Time
}

// New wires a server onto the given storage gateway. backend is a label
// reported by the health endpoint ("gcs" or "file").
func New(gateway *store.Gateway, backend string) *Server {
	return &Server{
		gateway:   gateway,
		backend:   backend,
		startTime: time.Now(),
	}
}

// Router builds the gin engine with all routes attached.
func (s *Server) Router() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(corsMiddleware())

	router.GET("/", s.handleGetConfiguration)
	router.GET("/config", s.handleGetConfiguration)
	router.POST("/config", s.handleUpdateConfiguration)
	router.GET("/healthz", s.handleHealth)

	return router
}

func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Content-Type")
		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}
