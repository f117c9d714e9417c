package server

import (
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"netviz/internal/export"
	"netviz/internal/model"
)

// handleGetConfiguration serves the live configuration in the requested
// format. Unknown format values fall back to JSON, matching what the
// frontend has always relied on. Reads never fail at the storage layer, so
// the only 500 path is an encoder blowing up; that is reported as a
// plain-text ERROR body rather than a partial document.
func (s *Server) handleGetConfiguration(c *gin.Context) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("Error encoding configuration: %v", r)
			c.Data(http.StatusInternalServerError, "text/plain; charset=utf-8",
				[]byte(fmt.Sprintf("ERROR: %v", r)))
		}
	}()

	cfg := s.gateway.Load(c.Request.Context())

	switch strings.ToLower(c.DefaultQuery("format", "json")) {
	case "csv":
		c.Data(http.StatusOK, "text/csv; charset=utf-8", []byte(export.CSV(cfg)))
	case "tsv":
		c.Data(http.StatusOK, "text/tab-separated-values; charset=utf-8", []byte(export.TSV(cfg, time.Now())))
	case "simple":
		c.Data(http.StatusOK, "text/plain; charset=utf-8", []byte(export.Simple(cfg)))
	default:
		c.JSON(http.StatusOK, export.JSON(cfg))
	}
}

// handleUpdateConfiguration validates and persists a full replacement
// configuration. Activation functions on every layer after the first are
// cleared before validation.
func (s *Server) handleUpdateConfiguration(c *gin.Context) {
	var cfg model.Configuration
	if err := c.ShouldBindJSON(&cfg); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	cfg.ApplyDefaults()
	cfg.Normalize()

	if err := cfg.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := s.gateway.Save(c.Request.Context(), cfg); err != nil {
		log.Printf("Error saving configuration: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": fmt.Sprintf("Failed to save configuration: %v", err)})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Configuration updated successfully",
	})
}
