package handlers

import (
	"net/http"

	"github.com/SujayCh07/codelinc10-sub000/db"
	"github.com/SujayCh07/codelinc10-sub000/logger"
	"github.com/SujayCh07/codelinc10-sub000/mongodb"
	"github.com/SujayCh07/codelinc10-sub000/qdrant"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// HandleDeleteAccount removes every trace of a user: profile and user rows
// in Postgres, insight and chat documents in Mongo, and any personalized
// resource points in Qdrant. Each step is attempted even if an earlier one
// fails, so partial deletions converge on a second call.
func HandleDeleteAccount(c *gin.Context) {
	claims, ok := getClaims(c)
	if !ok {
		return
	}

	logger.Get().Info("HandleDeleteAccount called", zap.String("user_id", claims.Sub))
	failed := false

	if err := mongodb.DeleteInsightsByUserID(c, claims.Sub); err != nil {
		logger.Get().Error("error deleting insights", zap.String("user_id", claims.Sub), zap.Error(err))
		failed = true
	}

	if err := mongodb.DeleteChatHistory(c, claims.Sub); err != nil {
		logger.Get().Error("error deleting chat history", zap.String("user_id", claims.Sub), zap.Error(err))
		failed = true
	}

	if qdrant.QdrantClient != nil {
		if err := qdrant.DeleteResourcesByUserID(claims.Sub); err != nil {
			logger.Get().Error("error deleting personalized resources", zap.String("user_id", claims.Sub), zap.Error(err))
			failed = true
		}
	}

	if err := db.DeleteUserDataByID(claims.Sub); err != nil {
		logger.Get().Error("error deleting user data from Postgres", zap.String("user_id", claims.Sub), zap.Error(err))
		failed = true
	}

	if failed {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Some account data could not be deleted"})
		return
	}

	logger.Get().Info("account deleted", zap.String("user_id", claims.Sub))
	c.JSON(http.StatusOK, gin.H{"message": "Account deleted successfully"})
}
