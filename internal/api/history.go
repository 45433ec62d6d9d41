package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// listConversations handles GET /api/v1/history
func (s *Server) listConversations(c *gin.Context) {
	limit := parseLimit(c, 50, 500)

	conversations, err := s.db.ListConversations(c.Request.Context(), limit)
	if err != nil {
		s.errorResponse(c, http.StatusInternalServerError, "Failed to list conversations: "+err.Error())
		return
	}

	s.successResponse(c, conversations)
}

// getConversation handles GET /api/v1/history/:id
func (s *Server) getConversation(c *gin.Context) {
	id := c.Param("id")

	conv, err := s.db.GetConversation(c.Request.Context(), id)
	if err != nil {
		s.errorResponse(c, http.StatusNotFound, "Conversation not found: "+err.Error())
		return
	}

	messages, err := s.db.ListMessages(c.Request.Context(), id)
	if err != nil {
		s.errorResponse(c, http.StatusInternalServerError, "Failed to list messages: "+err.Error())
		return
	}

	s.successResponse(c, gin.H{
		"conversation": conv,
		"messages":     messages,
	})
}

// parseLimit parses the limit query parameter, clamping to sane bounds
func parseLimit(c *gin.Context, def, max int) int {
	raw := c.Query("limit")
	if raw == "" {
		return def
	}
	limit, err := strconv.Atoi(raw)
	if err != nil || limit <= 0 || limit > max {
		return def
	}
	return limit
}
