package sse

import (
	"sync"

	"github.com/SujayCh07/codelinc10-sub000/logger"
	"go.uber.org/zap"
)

type ClientStream struct {
	Messages chan string
	Done     chan struct{}
}

var (
	SSEConnections = make(map[string]*ClientStream)
	Mu             sync.RWMutex
)

// SendToClient pushes one event payload to a user's stream, if connected.
// A user with no open stream simply misses the push; the merged insight is
// persisted regardless, so the next fetch sees it.
func SendToClient(userID string, payload string) {
	Mu.RLock()
	clientStream, ok := SSEConnections[userID]
	Mu.RUnlock()
	if !ok {
		logger.Get().Debug("no client stream for user",
			zap.String("user_id", userID))
		return
	}

	select {
	case clientStream.Messages <- payload:
		logger.Get().Debug("sent event to client",
			zap.String("user_id", userID))
	default:
		logger.Get().Warn("dropped event: client stream full or closed",
			zap.String("user_id", userID))
	}
}

// CloseClient signals a stream's completion, if connected.
func CloseClient(userID string) {
	Mu.RLock()
	clientStream, ok := SSEConnections[userID]
	Mu.RUnlock()
	if !ok {
		return
	}

	select {
	case clientStream.Done <- struct{}{}:
	default:
	}
}
