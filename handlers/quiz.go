package handlers

import (
	"net/http"
	"strconv"

	"github.com/SujayCh07/codelinc10-sub000/db"
	"github.com/SujayCh07/codelinc10-sub000/logger"
	"github.com/SujayCh07/codelinc10-sub000/models"
	"github.com/SujayCh07/codelinc10-sub000/quiz"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AnnotatedQuestion is a question plus whether the profile already answers
// it. The UI gates advancement on Answered; the engine only reports it.
type AnnotatedQuestion struct {
	quiz.Question
	Answered bool `json:"answered"`
}

func annotateQuestions(questions []quiz.Question, p models.Profile) []AnnotatedQuestion {
	out := make([]AnnotatedQuestion, len(questions))
	for i, q := range questions {
		out[i] = AnnotatedQuestion{Question: q, Answered: quiz.IsAnswered(q, p)}
	}
	return out
}

// GetQuestions returns the applicable question flow for the caller's
// current profile. A missing profile gets the default flow.
func GetQuestions(c *gin.Context) {
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
		fresh := models.NewProfile(claims.Sub, claims.IsAnonymous)
		profile = &fresh
	}

	position, _ := strconv.Atoi(c.Query("position"))
	questions := quiz.QuestionsFor(*profile)

	c.JSON(http.StatusOK, gin.H{
		"questions": annotateQuestions(questions, *profile),
		"position":  quiz.ClampPosition(questions, position),
	})
}
