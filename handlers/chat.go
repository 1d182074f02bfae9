package handlers

import (
	"net/http"
	"time"

	"github.com/SujayCh07/codelinc10-sub000/insights"
	"github.com/SujayCh07/codelinc10-sub000/logger"
	"github.com/SujayCh07/codelinc10-sub000/models"
	"github.com/SujayCh07/codelinc10-sub000/mongodb"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type SendMessageRequest struct {
	Message string `json:"message" binding:"required"`
}

// answerMessage runs one chat turn: the deterministic responder answers
// against the stored insight, and both turns are merged into the persisted
// log. Returns the assistant's reply and the updated history.
func answerMessage(c *gin.Context, userID, message string) (string, []models.ChatEntry, error) {
	insight, err := mongodb.GetInsightByUserID(c, userID)
	if err != nil {
		return "", nil, err
	}

	reply := insights.Reply(message, insight)
	now := time.Now().Unix()

	incoming := []models.ChatEntry{
		{
			ID:        uuid.NewString(),
			UserID:    userID,
			Speaker:   models.SpeakerUser,
			Message:   message,
			Timestamp: now,
			Status:    models.ChatStatusFinal,
		},
		{
			ID:        uuid.NewString(),
			UserID:    userID,
			Speaker:   models.SpeakerAssistant,
			Message:   reply,
			Timestamp: now,
			Status:    models.ChatStatusFinal,
		},
	}

	history, err := mongodb.GetChatHistoryByUserID(c, userID)
	if err != nil {
		return "", nil, err
	}

	merged := insights.MergeHistory(history, incoming)
	if err := mongodb.ReplaceChatHistory(c, userID, merged); err != nil {
		return "", nil, err
	}

	return reply, merged, nil
}

func SendChatMessage(c *gin.Context) {
	claims, ok := getClaims(c)
	if !ok {
		return
	}

	var req SendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Get().Error("error binding JSON", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	reply, history, err := answerMessage(c, claims.Sub, req.Message)
	if err != nil {
		logger.Get().Error("error processing chat message",
			zap.String("user_id", claims.Sub),
			zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"reply":   reply,
		"history": history,
	})
}

func GetChatHistory(c *gin.Context) {
	claims, ok := getClaims(c)
	if !ok {
		return
	}

	history, err := mongodb.GetChatHistoryByUserID(c, claims.Sub)
	if err != nil {
		logger.Get().Error("error fetching chat history",
			zap.String("user_id", claims.Sub),
			zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if len(history) == 0 {
		c.JSON(http.StatusOK, []models.ChatEntry{})
		return
	}
	c.JSON(http.StatusOK, history)
}

func ClearChatHistory(c *gin.Context) {
	claims, ok := getClaims(c)
	if !ok {
		return
	}

	if err := mongodb.DeleteChatHistory(c, claims.Sub); err != nil {
		logger.Get().Error("error clearing chat history",
			zap.String("user_id", claims.Sub),
			zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	logger.Get().Info("chat history cleared", zap.String("user_id", claims.Sub))
	c.JSON(http.StatusOK, gin.H{"message": "Chat history cleared"})
}
