package api

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/augurhq/augur/internal/logger"
	"github.com/augurhq/augur/internal/models"
	"github.com/augurhq/augur/internal/render"
)

// predictRequest is the predict endpoint body: the upstream payload plus an
// optional conversation to append to. Only the embedded payload is forwarded.
type predictRequest struct {
	models.PredictRequest
	ConversationID string `json:"conversation_id,omitempty"`
}

// predictResponse carries the raw prediction alongside its rendered form
type predictResponse struct {
	ConversationID string      `json:"conversation_id,omitempty"`
	Result         interface{} `json:"result"`
	HTML           string      `json:"html"`
}

// predict handles POST /api/v1/predict
func (s *Server) predict(c *gin.Context) {
	var req predictRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.errorResponse(c, http.StatusBadRequest, "Invalid request: "+err.Error())
		return
	}

	if req.Domain == "" {
		req.Domain = "general"
	}
	if req.UseSearch == nil {
		useSearch := true
		req.UseSearch = &useSearch
	}

	ctx := c.Request.Context()
	headers := s.settings.RequestHeaders(ctx)

	raw, err := s.predictor.Predict(ctx, &req.PredictRequest, headers)
	if err != nil {
		s.errorResponse(c, http.StatusBadGateway, "Prediction failed: "+err.Error())
		return
	}

	result := render.Decode(raw)
	fragment := render.Render(result)

	conversationID := s.recordPrediction(c, &req, result, fragment, raw)

	// A 2xx body that is not valid JSON must not poison the envelope: gin's
	// JSON render would reject the RawMessage after the status is committed.
	var resultValue interface{}
	if len(raw) > 0 {
		if json.Valid(raw) {
			resultValue = json.RawMessage(raw)
		} else {
			resultValue = string(raw)
		}
	}

	s.successResponse(c, predictResponse{
		ConversationID: conversationID,
		Result:         resultValue,
		HTML:           fragment,
	})
}

// recordPrediction appends the question and its prediction to the local
// history. History is bookkeeping only: failures are logged, never surfaced.
func (s *Server) recordPrediction(c *gin.Context, req *predictRequest, result render.PredictionResult, fragment string, raw []byte) string {
	ctx := c.Request.Context()

	conversationID := req.ConversationID
	if conversationID != "" {
		// Appending to a conversation that was never created would leave
		// orphaned messages invisible to the history listing.
		if _, err := s.db.GetConversation(ctx, conversationID); err != nil {
			logger.Warning("Unknown conversation '%s', starting a new one", conversationID)
			conversationID = ""
		}
	}
	if conversationID == "" {
		title := conversationTitle(req.Question())
		conv, err := s.db.CreateConversation(ctx, title)
		if err != nil {
			logger.Warning("Failed to create conversation: %v", err)
			return ""
		}
		conversationID = conv.ID
	}

	if question := req.Question(); question != "" {
		if err := s.db.AddMessage(ctx, &models.Message{
			ConversationID: conversationID,
			Role:           "user",
			Content:        question,
		}); err != nil {
			logger.Warning("Failed to record question: %v", err)
		}
	}

	domain := result.Domain
	if domain == "" {
		domain = req.Domain
	}

	if err := s.db.AddMessage(ctx, &models.Message{
		ConversationID: conversationID,
		Role:           "prediction",
		Content:        fragment,
		Domain:         domain,
		Confidence:     result.Confidence,
		ResultJSON:     string(raw),
	}); err != nil {
		logger.Warning("Failed to record prediction: %v", err)
	}

	return conversationID
}

func conversationTitle(question string) string {
	question = strings.TrimSpace(question)
	if question == "" {
		return "New conversation"
	}
	runes := []rune(question)
	if len(runes) > 60 {
		return string(runes[:60]) + "..."
	}
	return question
}
