package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"

	"ai_manager_backend/internal/assistant"
	"ai_manager_backend/internal/metrics"
	"ai_manager_backend/internal/models"
	"ai_manager_backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// AIHandler serves the assistant endpoints.
type AIHandler struct {
	assistant *assistant.Assistant
	sessions  *assistant.SessionStore
	metrics   *metrics.Metrics
}

// NewAIHandler creates a new AIHandler. m may be nil.
func NewAIHandler(a *assistant.Assistant, sessions *assistant.SessionStore, m *metrics.Metrics) *AIHandler {
	return &AIHandler{assistant: a, sessions: sessions, metrics: m}
}

// chatRequest carries a question and optional business context. The context
// may be a string or any JSON value, which is forwarded in its JSON form.
type chatRequest struct {
	Message string          `json:"message"`
	Context json.RawMessage `json:"context"`
}

func (r chatRequest) businessContext() string {
	raw := bytes.TrimSpace(r.Context)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	return string(raw)
}

type suggestionsRequest struct {
	DashboardData models.DashboardSnapshot `json:"dashboardData"`
}

// Chat handles POST /api/ai/chat. Model failures are answered from the
// canned table; the mode field tells the paths apart.
func (h *AIHandler) Chat(c *gin.Context) {
	var req chatRequest
	if !bindJSON(c, &req, "Chat") {
		return
	}
	if utils.IsEmpty(req.Message) {
		utils.RespondValidationFailed(c, "Message is required", "")
		return
	}

	reply := h.assistant.Reply(c.Request.Context(), req.Message, req.businessContext())
	h.metrics.ObserveReply(string(reply.Mode))

	body := gin.H{
		"success":  true,
		"response": reply.Text,
		"mode":     reply.Mode,
	}
	if reply.Usage != nil {
		body["usage"] = reply.Usage
	}
	if reply.Err != nil {
		body["error"] = reply.Err.Error()
	}
	c.JSON(http.StatusOK, body)
}

// Suggestions handles POST /api/ai/suggestions.
func (h *AIHandler) Suggestions(c *gin.Context) {
	var req suggestionsRequest
	if !bindJSON(c, &req, "Suggestions") {
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success":     true,
		"suggestions": assistant.BusinessSuggestions(req.DashboardData),
	})
}

// GetPrompts handles GET /api/ai/prompts/:category.
func (h *AIHandler) GetPrompts(c *gin.Context) {
	utils.RespondWithData(c, http.StatusOK, assistant.SuggestedPrompts(c.Param("category")))
}

// GetSession handles GET /api/ai/sessions/:surface.
func (h *AIHandler) GetSession(c *gin.Context) {
	utils.RespondWithData(c, http.StatusOK, h.sessions.Snapshot(c.Param("surface")))
}

// SendSessionMessage handles POST /api/ai/sessions/:surface/messages.
func (h *AIHandler) SendSessionMessage(c *gin.Context) {
	surface := c.Param("surface")
	var req chatRequest
	if !bindJSON(c, &req, "SendSessionMessage") {
		return
	}

	conv := h.sessions.Get(surface)
	reply, err := conv.Send(c.Request.Context(), req.Message, req.businessContext())
	switch {
	case errors.Is(err, assistant.ErrEmptyMessage):
		utils.RespondValidationFailed(c, "Message is required", err.Error())
		return
	case errors.Is(err, assistant.ErrReplyPending):
		utils.RespondWithError(c, utils.NewAPIError(http.StatusConflict, utils.ErrCodeConflict, "A reply is still pending for this conversation", err.Error()))
		return
	case err != nil:
		// The conversation already shows its apology message.
		utils.LogError(err, "SendSessionMessage: Error from conversation.Send for surface "+surface)
	case reply.Mode != "":
		h.metrics.ObserveReply(string(reply.Mode))
	}
	utils.RespondWithData(c, http.StatusOK, conv.Snapshot())
}

// ResetSession handles DELETE /api/ai/sessions/:surface.
func (h *AIHandler) ResetSession(c *gin.Context) {
	surface := c.Param("surface")
	h.sessions.Reset(surface)
	utils.RespondWithData(c, http.StatusOK, h.sessions.Snapshot(surface), gin.H{"message": "Conversation cleared"})
}
