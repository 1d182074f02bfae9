package handlers

import (
	"net/http"

	"github.com/SujayCh07/codelinc10-sub000/db"
	"github.com/SujayCh07/codelinc10-sub000/insights"
	"github.com/SujayCh07/codelinc10-sub000/logger"
	"github.com/SujayCh07/codelinc10-sub000/models"
	"github.com/SujayCh07/codelinc10-sub000/mongodb"
	"github.com/SujayCh07/codelinc10-sub000/quiz"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type CreateProfileRequest struct {
	Guest bool `json:"guest"`
}

type UpdateAnswerRequest struct {
	QuestionID string `json:"question_id" binding:"required"`
	Value      any    `json:"value"`
	Position   int    `json:"position"`
}

func CreateProfile(c *gin.Context) {
	claims, ok := getClaims(c)
	if !ok {
		return
	}

	var req CreateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Get().Error("error binding JSON", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	status := models.UserStatusActive
	guest := req.Guest || claims.IsAnonymous
	if guest {
		status = models.UserStatusGuest
	}

	existing, err := db.GetUserByID(claims.Sub)
	if err != nil {
		logger.Get().Error("error looking up user",
			zap.String("user_id", claims.Sub),
			zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	switch {
	case existing == nil:
		if err := db.UpsertUser(claims.Sub, claims.Email, status); err != nil {
			logger.Get().Error("error upserting user",
				zap.String("user_id", claims.Sub),
				zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
	case existing.Status == models.UserStatusGuest && !guest:
		// A guest who signed in keeps their answers and graduates.
		if err := db.UpdateStatusByUserID(claims.Sub, models.UserStatusActive); err != nil {
			logger.Get().Error("error promoting guest user",
				zap.String("user_id", claims.Sub),
				zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		guest = false
	default:
		// Already registered; never downgrade an active user to guest.
		guest = existing.Status == models.UserStatusGuest
	}

	// POST /profile is idempotent: an existing profile is returned, not
	// reset. DELETE /profile is the reset path.
	stored, err := db.GetProfile(c, claims.Sub)
	if err != nil {
		logger.Get().Error("error fetching profile",
			zap.String("user_id", claims.Sub),
			zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	var profile models.Profile
	if stored != nil {
		stored.Guest = guest
		profile = insights.Normalize(*stored)
	} else {
		profile = insights.Normalize(models.NewProfile(claims.Sub, guest))
	}
	if err := db.UpsertProfile(c, &profile); err != nil {
		logger.Get().Error("error creating profile",
			zap.String("user_id", claims.Sub),
			zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	logger.Get().Info("profile created",
		zap.String("user_id", claims.Sub),
		zap.Bool("guest", guest))
	c.JSON(http.StatusOK, profile)
}

func GetProfile(c *gin.Context) {
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
		c.JSON(http.StatusNotFound, gin.H{"error": "No profile found"})
		return
	}

	// Derived fields are recomputed at read time; a stored stale block is
	// never served.
	normalized := insights.Normalize(*profile)
	c.JSON(http.StatusOK, normalized)
}

func UpdateProfileAnswer(c *gin.Context) {
	claims, ok := getClaims(c)
	if !ok {
		return
	}

	var req UpdateAnswerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Get().Error("error binding JSON", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
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
		fresh := models.NewProfile(claims.Sub, claims.IsAnonymous)
		profile = &fresh
	}

	updated := insights.Normalize(quiz.ApplyAnswer(*profile, req.QuestionID, req.Value))
	if err := db.UpsertProfile(c, &updated); err != nil {
		logger.Get().Error("error saving profile",
			zap.String("user_id", claims.Sub),
			zap.String("question_id", req.QuestionID),
			zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	if req.QuestionID == "follow_up_consent" {
		if updated.FollowUpConsent != nil && *updated.FollowUpConsent {
			if err := db.RecordConsent(claims.Sub); err != nil {
				logger.Get().Warn("error recording consent",
					zap.String("user_id", claims.Sub),
					zap.Error(err))
			}
		}
	}

	questions := quiz.QuestionsFor(updated)
	c.JSON(http.StatusOK, gin.H{
		"profile":   updated,
		"questions": annotateQuestions(questions, updated),
		"position":  quiz.ClampPosition(questions, req.Position),
	})
}

// DeleteProfile resets the questionnaire: the stored answers go back to
// defaults and any insight derived from them is discarded.
func DeleteProfile(c *gin.Context) {
	claims, ok := getClaims(c)
	if !ok {
		return
	}

	if err := db.DeleteProfile(c, claims.Sub); err != nil {
		logger.Get().Error("error deleting profile",
			zap.String("user_id", claims.Sub),
			zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	if err := mongodb.DeleteInsightsByUserID(c, claims.Sub); err != nil {
		logger.Get().Error("error deleting stale insight",
			zap.String("user_id", claims.Sub),
			zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	logger.Get().Info("profile reset", zap.String("user_id", claims.Sub))
	c.JSON(http.StatusOK, gin.H{"message": "Profile reset successfully"})
}
