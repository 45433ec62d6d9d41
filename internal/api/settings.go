package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/augurhq/augur/internal/settings"
)

// getSettings handles GET /api/v1/settings
func (s *Server) getSettings(c *gin.Context) {
	cfg := s.settings.Load(c.Request.Context())
	s.successResponse(c, s.maskedSettings(cfg))
}

// updateSettings handles PUT /api/v1/settings. The submitted record replaces
// the stored one wholesale.
func (s *Server) updateSettings(c *gin.Context) {
	var cfg settings.Configuration
	if err := c.ShouldBindJSON(&cfg); err != nil {
		s.errorResponse(c, http.StatusBadRequest, "Invalid request: "+err.Error())
		return
	}

	if err := s.settings.Save(c.Request.Context(), &cfg); err != nil {
		s.errorResponse(c, http.StatusInternalServerError, "Failed to save settings: "+err.Error())
		return
	}

	s.successResponse(c, s.maskedSettings(&cfg))
}

// resetSettings handles POST /api/v1/settings/reset
func (s *Server) resetSettings(c *gin.Context) {
	cfg, err := s.settings.Reset(c.Request.Context())
	if err != nil {
		s.errorResponse(c, http.StatusInternalServerError, "Failed to reset settings: "+err.Error())
		return
	}

	s.successResponse(c, s.maskedSettings(cfg))
}

// maskedSettings returns a copy of the record with API keys masked for display
func (s *Server) maskedSettings(cfg *settings.Configuration) *settings.Configuration {
	masked := cfg.Clone()
	masked.Search.SerperAPIKey = s.maskAPIKey(masked.Search.SerperAPIKey)
	masked.Search.JinaAPIKey = s.maskAPIKey(masked.Search.JinaAPIKey)
	masked.OpenRouter.OpenRouterAPIKey = s.maskAPIKey(masked.OpenRouter.OpenRouterAPIKey)
	return masked
}
