package handlers

import (
	"net/http"
	"time"

	"github.com/SujayCh07/codelinc10-sub000/logger"
	"github.com/SujayCh07/codelinc10-sub000/models"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		// CORS is enforced by middleware; the upgrade itself accepts any
		// origin the middleware let through.
		return true
	},
}

type ClientMessage struct {
	Message string `json:"message"`
}

type AssistantMessage struct {
	Speaker   string `json:"speaker"`
	Message   string `json:"message"`
	Timestamp int64  `json:"timestamp"`
}

// HandleWebSocket runs the live chat loop. Every inbound message is
// answered synchronously by the rule-based responder; both turns land in
// the same persisted history the REST endpoint uses.
func HandleWebSocket(c *gin.Context) {
	claims, ok := getClaims(c)
	if !ok {
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		logger.Get().Error("failed to upgrade connection", zap.Error(err))
		return
	}
	defer conn.Close()

	logger.Get().Info("WebSocket connection established",
		zap.String("user_id", claims.Sub),
		zap.String("remote_addr", c.Request.RemoteAddr))

	for {
		// Reset the deadline per message to detect stale connections.
		conn.SetReadDeadline(time.Now().Add(5 * time.Minute))

		var msg ClientMessage
		err := conn.ReadJSON(&msg)
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				logger.Get().Error("WebSocket error", zap.Error(err))
			} else {
				logger.Get().Info("WebSocket closed",
					zap.String("user_id", claims.Sub))
			}
			return
		}
		if msg.Message == "" {
			continue
		}

		reply, _, err := answerMessage(c, claims.Sub, msg.Message)
		if err != nil {
			logger.Get().Error("error processing websocket message",
				zap.String("user_id", claims.Sub),
				zap.Error(err))
			continue
		}

		out := AssistantMessage{
			Speaker:   models.SpeakerAssistant,
			Message:   reply,
			Timestamp: time.Now().Unix(),
		}
		if err := conn.WriteJSON(out); err != nil {
			logger.Get().Error("error writing websocket reply",
				zap.String("user_id", claims.Sub),
				zap.Error(err))
			return
		}
	}
}
