package handlers

import (
	"fmt"
	"io"
	"net/http"

	"github.com/SujayCh07/codelinc10-sub000/logger"
	"github.com/SujayCh07/codelinc10-sub000/sse"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// HandleSSE streams enrichment updates for one user. The client connects
// after generating insights; when the merged insight lands, it arrives
// here as a single JSON event.
func HandleSSE(c *gin.Context) {
	claims, err := authenticateSSE(c)
	if err != nil {
		logger.Get().Error("SSE authentication failed", zap.Error(err))
		c.JSON(http.StatusUnauthorized, gin.H{"error": fmt.Sprintf("Unauthorized: %v", err)})
		return
	}

	userID := c.Param("userID")
	if userID != claims.Sub {
		c.JSON(http.StatusForbidden, gin.H{"error": "Token does not match requested stream"})
		return
	}

	messageChan := make(chan string, 100)
	doneChan := make(chan struct{})

	clientStream := &sse.ClientStream{
		Messages: messageChan,
		Done:     doneChan,
	}

	sse.Mu.Lock()
	sse.SSEConnections[userID] = clientStream
	sse.Mu.Unlock()

	logger.Get().Info("SSE connection established",
		zap.String("user_id", userID))

	defer func() {
		sse.Mu.Lock()
		delete(sse.SSEConnections, userID)
		sse.Mu.Unlock()
		logger.Get().Info("SSE connection closed",
			zap.String("user_id", userID))
	}()

	c.Writer.Header().Set("Content-Type", "text/event-stream")
	c.Writer.Header().Set("Cache-Control", "no-cache")
	c.Writer.Header().Set("Connection", "keep-alive")

	clientGone := c.Request.Context().Done()

	c.Stream(func(w io.Writer) bool {
		select {
		case msg := <-messageChan:
			c.SSEvent("insight", msg)
			return true
		case <-doneChan:
			c.SSEvent("done", "")
			return false
		case <-clientGone:
			return false
		}
	})
}
