package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Supa-mustea/Visualfind-store/internal/domain"
	"github.com/Supa-mustea/Visualfind-store/internal/repository"
	"github.com/Supa-mustea/Visualfind-store/internal/service"
)

// HandleListChatMessages handles GET /api/chat
func HandleListChatMessages(repos *repository.Repositories, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		messages, err := repos.ChatMessage.List(c.Request.Context())
		if err != nil {
			logger.Error("Failed to list chat messages", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch chat messages"})
			return
		}
		c.JSON(http.StatusOK, messages)
	}
}

// HandlePostChatMessage handles POST /api/chat. A user message schedules one
// delayed bot reply; bot messages are stored as-is.
func HandlePostChatMessage(repos *repository.Repositories, replies *service.ReplyScheduler, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req struct {
			Content   string `json:"content"`
			IsUser    bool   `json:"isUser"`
			Timestamp string `json:"timestamp"`
		}
		if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.Content) == "" {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid message format"})
			return
		}
		if req.Timestamp == "" {
			req.Timestamp = time.Now().UTC().Format(time.RFC3339Nano)
		}

		message, err := repos.ChatMessage.Add(c.Request.Context(), domain.NewChatMessage{
			Content:   req.Content,
			IsUser:    req.IsUser,
			Timestamp: req.Timestamp,
		})
		if err != nil {
			logger.Error("Failed to store chat message", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to store chat message"})
			return
		}

		if req.IsUser {
			replies.Schedule(req.Content)
		}

		c.JSON(http.StatusOK, message)
	}
}
