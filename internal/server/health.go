package server

import (
	"log"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shirou/gopsutil/v3/process"
)

type HealthResponse struct {
	Status         string  `json:"status"`
	StorageBackend string  `json:"storage_backend"`
	Uptime         string  `json:"uptime"`
	MemoryRSSMB    float64 `json:"memory_rss_mb"`
}

func (s *Server) handleHealth(c *gin.Context) {
	rssMB := 0.0
	if proc, err := process.NewProcess(int32(os.Getpid())); err == nil {
		if mem, err := proc.MemoryInfo(); err == nil {
			rssMB = float64(mem.RSS) / (1024 * 1024)
		} else {
			log.Printf("Health check: reading process memory: %v", err)
		}
	}

	c.JSON(http.StatusOK, HealthResponse{
		Status:         "healthy",
		StorageBackend: s.backend,
		Uptime:         time.Since(s.startTime).String(),
		MemoryRSSMB:    rssMB,
	})
}
