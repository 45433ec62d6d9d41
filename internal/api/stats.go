package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/augurhq/augur/internal/models"
)

// getStats handles GET /api/v1/stats
func (s *Server) getStats(c *gin.Context) {
	stats, err := s.db.Stats(c.Request.Context())
	if err != nil {
		s.errorResponse(c, http.StatusInternalServerError, "Failed to compute stats: "+err.Error())
		return
	}

	s.successResponse(c, stats)
}

// healthCheck handles GET /api/v1/health
func (s *Server) healthCheck(c *gin.Context) {
	if err := s.db.Ping(c.Request.Context()); err != nil {
		c.JSON(http.StatusServiceUnavailable, models.APIResponse{
			Success: false,
			Error:   "Database connection failed",
		})
		return
	}

	upstream := s.monitor.Status()

	c.JSON(http.StatusOK, models.APIResponse{
		Success: true,
		Data: map[string]interface{}{
			"status":    "healthy",
			"timestamp": time.Now(),
			"upstream":  upstream,
		},
	})
}
