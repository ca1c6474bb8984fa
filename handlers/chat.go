package handlers

import (
	"net/http"

	"github.com/Sridhar1233sri/consultancy/models"
	"github.com/Sridhar1233sri/consultancy/services/assistant"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ChatHandler exposes the conversational assistant endpoint.
type ChatHandler struct {
	Assistant assistant.AssistantService
}

func NewChatHandler(svc assistant.AssistantService) *ChatHandler {
	return &ChatHandler{Assistant: svc}
}

// Chat handles POST /api/chat.
func (h *ChatHandler) Chat(c *gin.Context) {
	logger := getLogger(c)

	var req models.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Invalid chat payload", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Text input is required"})
		return
	}

	resp, err := h.Assistant.Chat(c.Request.Context(), req)
	if err != nil {
		logger.Error("Chat failed", zap.Error(err))
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}
