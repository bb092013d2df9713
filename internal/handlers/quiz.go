package handlers

import (
	"errors"
	"net/http"

	"trivia-api/internal/services"

	"github.com/gin-gonic/gin"
)

type QuizHandler struct {
	trivia *services.TriviaService
}

func NewQuizHandler(trivia *services.TriviaService) *QuizHandler {
	return &QuizHandler{trivia: trivia}
}

type QuizCategory struct {
	ID   *FlexInt `json:"id" swaggertype:"integer" example:"1"`
	Type string   `json:"type" example:"Science"`
}

type NextQuestionRequest struct {
	PreviousQuestions []FlexInt     `json:"previous_questions" swaggertype:"array,integer"`
	QuizCategory      *QuizCategory `json:"quiz_category"`
}

// NextQuestionResponse carries a null question once every eligible question was asked.
type NextQuestionResponse struct {
	Question *Question `json:"question"`
}

// NextQuestion godoc
// @Summary      Next quiz question
// @Description  Random question from quiz_category (id 0 for all) excluding previous_questions.
// @Tags         quizzes
// @Accept       json
// @Produce      json
// @Param        request body NextQuestionRequest true "Quiz state"
// @Success      200 {object} NextQuestionResponse
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Failure      500 {object} ErrorResponse
// @Router       /quizzes [post]
func (h *QuizHandler) NextQuestion(c *gin.Context) {
	var req NextQuestionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, nil)
		return
	}
	if req.QuizCategory == nil || req.QuizCategory.ID == nil || !req.QuizCategory.ID.Set {
		abortWithError(c, http.StatusBadRequest, nil)
		return
	}

	previous := make([]uint, 0, len(req.PreviousQuestions))
	for _, id := range req.PreviousQuestions {
		if !id.Set {
			abortWithError(c, http.StatusBadRequest, nil)
			return
		}
		previous = append(previous, id.Value)
	}

	question, err := h.trivia.NextQuizQuestion(req.QuizCategory.ID.Value, previous)
	switch {
	case errors.Is(err, services.ErrQuizExhausted):
		c.JSON(http.StatusOK, NextQuestionResponse{Question: nil})
	case errors.Is(err, services.ErrNoQuestions):
		abortWithError(c, http.StatusNotFound, nil)
	case err != nil:
		abortWithError(c, http.StatusInternalServerError, err)
	default:
		c.JSON(http.StatusOK, NextQuestionResponse{Question: question})
	}
}
