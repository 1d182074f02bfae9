package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/SujayCh07/codelinc10-sub000/db"
	"github.com/SujayCh07/codelinc10-sub000/insights"
	"github.com/SujayCh07/codelinc10-sub000/kafka"
	"github.com/SujayCh07/codelinc10-sub000/llm"
	"github.com/SujayCh07/codelinc10-sub000/logger"
	"github.com/SujayCh07/codelinc10-sub000/models"
	"github.com/SujayCh07/codelinc10-sub000/mongodb"
	"github.com/SujayCh07/codelinc10-sub000/qdrant"
	"github.com/SujayCh07/codelinc10-sub000/sse"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// GenerateInsights builds and stores the deterministic insight for the
// caller's profile, then kicks off best-effort enrichment in the
// background. The response never waits on the remote model.
func GenerateInsights(c *gin.Context) {
	claims, ok := getClaims(c)
	if !ok {
		return
	}

	profile, err := db.GetProfile(c, claims.Sub)
	if err != nil {
		logger.Get().Error("error fetching profile",
			zap.String("user_id", claims.Sub),
			zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if profile == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Complete the questionnaire before generating insights"})
		return
	}

	insight := insights.Build(*profile)
	if err := mongodb.SaveInsight(c, &insight); err != nil {
		logger.Get().Error("error saving insight",
			zap.String("user_id", claims.Sub),
			zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	logger.Get().Info("insight generated",
		zap.String("user_id", claims.Sub),
		zap.String("persona", insight.Persona),
		zap.String("theme", string(insight.Theme)))

	go requestEnrichment(*profile)

	c.JSON(http.StatusOK, insight)
}

// requestEnrichment hands the profile to the enrichment pipeline. When
// Kafka is configured the external service owns the call and replies on
// the response topic; otherwise the model is called directly with a
// timeout. Failures are logged and swallowed: the local insight stands.
func requestEnrichment(profile models.Profile) {
	if kafka.EnrichmentProducer != nil {
		req := &models.EnrichmentRequest{
			RequestID: uuid.NewString(),
			UserID:    profile.UserID,
			Profile:   profile,
		}
		if err := kafka.ProduceEnrichmentRequest(req); err == nil {
			return
		}
		logger.Get().Warn("kafka enrichment request failed, falling back to direct call",
			zap.String("user_id", profile.UserID))
	}

	enrichment, err := llm.GenerateEnrichment(&profile)
	if err != nil {
		logger.Get().Warn("enrichment unavailable, keeping local insight",
			zap.String("user_id", profile.UserID),
			zap.Error(err))
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	local, err := mongodb.GetInsightByUserID(ctx, profile.UserID)
	if err != nil || local == nil {
		logger.Get().Warn("no stored insight to enrich",
			zap.String("user_id", profile.UserID),
			zap.Error(err))
		return
	}

	merged := insights.MergeEnrichment(*local, *enrichment)
	if err := mongodb.SaveInsight(ctx, &merged); err != nil {
		logger.Get().Error("error saving enriched insight",
			zap.String("user_id", profile.UserID),
			zap.Error(err))
		return
	}

	if payload, err := json.Marshal(&merged); err == nil {
		sse.SendToClient(profile.UserID, string(payload))
		sse.CloseClient(profile.UserID)
	}
}

// GetInsights returns the stored insight, topped up with any personalized
// resources the enrichment service has indexed.
func GetInsights(c *gin.Context) {
	claims, ok := getClaims(c)
	if !ok {
		return
	}

	insight, err := mongodb.GetInsightByUserID(c, claims.Sub)
	if err != nil {
		logger.Get().Error("error fetching insight",
			zap.String("user_id", claims.Sub),
			zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if insight == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "No insights generated yet"})
		return
	}

	if qdrant.QdrantClient != nil {
		extra, err := qdrant.GetResourcesByUserID(c, claims.Sub)
		if err != nil {
			logger.Get().Warn("error fetching personalized resources",
				zap.String("user_id", claims.Sub),
				zap.Error(err))
		} else if len(extra) > 0 {
			insight.Resources = append(insight.Resources, extra...)
		}
	}

	c.JSON(http.StatusOK, insight)
}
