package api

import (
	"context"
	"embed"
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/augurhq/augur/internal/db"
	"github.com/augurhq/augur/internal/models"
	"github.com/augurhq/augur/internal/monitor"
	"github.com/augurhq/augur/internal/settings"
)

//go:embed static
var staticFiles embed.FS

// Predictor forwards prediction requests to the upstream service
type Predictor interface {
	Predict(ctx context.Context, req *models.PredictRequest, headers map[string]string) (json.RawMessage, error)
}

// Server is the console HTTP server
type Server struct {
	router    *gin.Engine
	db        *db.DB
	settings  *settings.Store
	predictor Predictor
	monitor   *monitor.Monitor
}

// NewServer creates the console server with all routes registered
func NewServer(database *db.DB, store *settings.Store, predictor Predictor, mon *monitor.Monitor, corsOrigin string) *Server {
	router := gin.New()
	router.Use(gin.Recovery())

	s := &Server{
		router:    router,
		db:        database,
		settings:  store,
		predictor: predictor,
		monitor:   mon,
	}

	if corsOrigin != "" {
		router.Use(corsMiddleware(corsOrigin))
	}

	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	s.router.GET("/", s.indexPage)

	v1 := s.router.Group("/api/v1")
	{
		v1.POST("/predict", s.predict)

		v1.GET("/settings", s.getSettings)
		v1.PUT("/settings", s.updateSettings)
		v1.POST("/settings/reset", s.resetSettings)

		v1.GET("/history", s.listConversations)
		v1.GET("/history/:id", s.getConversation)

		v1.GET("/stats", s.getStats)
		v1.GET("/health", s.healthCheck)
	}
}

// Run starts the HTTP server on the given address
func (s *Server) Run(addr string) error {
	return s.router.Run(addr)
}

// Router exposes the gin engine for tests
func (s *Server) Router() *gin.Engine {
	return s.router
}

// indexPage serves the chat console page
func (s *Server) indexPage(c *gin.Context) {
	page, err := staticFiles.ReadFile("static/index.html")
	if err != nil {
		s.errorResponse(c, http.StatusInternalServerError, "Console page unavailable")
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", page)
}

func corsMiddleware(origin string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", origin)
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Content-Type")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}

func (s *Server) successResponse(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, models.APIResponse{
		Success: true,
		Data:    data,
	})
}

func (s *Server) errorResponse(c *gin.Context, status int, message string) {
	c.JSON(status, models.APIResponse{
		Success: false,
		Error:   message,
	})
}

func (s *Server) maskAPIKey(apiKey string) string {
	if apiKey == "" {
		return ""
	}
	if len(apiKey) <= 8 {
		return "***"
	}
	return apiKey[:4] + "..." + apiKey[len(apiKey)-4:]
}
