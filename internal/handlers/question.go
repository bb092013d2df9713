package handlers

import (
	"errors"
	"net/http"

	"trivia-api/internal/models"
	"trivia-api/internal/services"

	"github.com/gin-gonic/gin"
)

const (
	listCurrentCategory   = "History"
	searchCurrentCategory = "Entertainment"
)

type QuestionHandler struct {
	trivia   *services.TriviaService
	pageSize int
}

func NewQuestionHandler(trivia *services.TriviaService, pageSize int) *QuestionHandler {
	return &QuestionHandler{trivia: trivia, pageSize: pageSize}
}

// ListQuestions godoc
// @Summary      List questions
// @Description  Questions ordered by id, paginated. An empty page is reported as not found.
// @Tags         questions
// @Produce      json
// @Param        page query int false "Page number"
// @Success      200 {object} QuestionsResponse
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Failure      500 {object} ErrorResponse
// @Router       /questions [get]
func (h *QuestionHandler) ListQuestions(c *gin.Context) {
	page, err := pageFromQuery(c)
	if err != nil {
		abortWithError(c, http.StatusBadRequest, nil)
		return
	}

	questions, err := h.trivia.ListQuestions()
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, err)
		return
	}
	current := services.Paginate(page, h.pageSize, questions)
	if len(current) == 0 {
		abortWithError(c, http.StatusNotFound, nil)
		return
	}

	categories, err := h.trivia.ListCategories()
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, err)
		return
	}

	c.JSON(http.StatusOK, QuestionsResponse{
		Questions:       current,
		TotalQuestions:  len(questions),
		Categories:      models.CategoryMap(categories),
		CurrentCategory: listCurrentCategory,
	})
}

type DeleteResponse struct {
	Success bool `json:"success" example:"true"`
	Deleted uint `json:"deleted" example:"5"`
}

// DeleteQuestion godoc
// @Summary      Delete a question
// @Tags         questions
// @Produce      json
// @Param        id path int true "Question ID"
// @Success      200 {object} DeleteResponse
// @Failure      404 {object} ErrorResponse
// @Failure      422 {object} ErrorResponse
// @Router       /questions/{id} [delete]
func (h *QuestionHandler) DeleteQuestion(c *gin.Context) {
	questionID, ok := parseID(c.Param("id"))
	if !ok {
		abortWithError(c, http.StatusNotFound, nil)
		return
	}

	err := h.trivia.DeleteQuestion(questionID)
	switch {
	case err == nil:
		c.JSON(http.StatusOK, DeleteResponse{Success: true, Deleted: questionID})
	case errors.Is(err, services.ErrNotFound):
		abortWithError(c, http.StatusNotFound, nil)
	case errors.Is(err, services.ErrAlreadyDeleted):
		abortWithError(c, http.StatusUnprocessableEntity, nil)
	default:
		abortWithError(c, http.StatusUnprocessableEntity, err)
	}
}

// CreateOrSearchRequest is either a search ({searchTerm}) or a new question.
type CreateOrSearchRequest struct {
	SearchTerm string  `json:"searchTerm" example:"title"`
	Question   string  `json:"question" example:"Heres a new question string"`
	Answer     string  `json:"answer" example:"Heres a new answer string"`
	Difficulty FlexInt `json:"difficulty" swaggertype:"integer" example:"1"`
	Category   FlexInt `json:"category" swaggertype:"integer" example:"3"`
}

type CreateResponse struct {
	Success bool `json:"success" example:"true"`
	Created uint `json:"created" example:"24"`
}

// CreateOrSearchQuestions godoc
// @Summary      Search or create questions
// @Description  With searchTerm, returns case-insensitive substring matches. With question and answer, creates a question. Otherwise redirects to the question list.
// @Tags         questions
// @Accept       json
// @Produce      json
// @Param        page    query int                   false "Page number for search results"
// @Param        request body  CreateOrSearchRequest true  "Search term or question data"
// @Success      200 {object} QuestionsResponse "search results, or CreateResponse when a question was created"
// @Success      302
// @Failure      400 {object} ErrorResponse
// @Failure      500 {object} ErrorResponse
// @Router       /questions [post]
func (h *QuestionHandler) CreateOrSearchQuestions(c *gin.Context) {
	var req CreateOrSearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, nil)
		return
	}

	switch {
	case req.SearchTerm != "":
		h.search(c, req.SearchTerm)
	case req.Question != "" && req.Answer != "":
		h.create(c, req)
	default:
		c.Redirect(http.StatusFound, "/questions")
	}
}

func (h *QuestionHandler) search(c *gin.Context, term string) {
	page, err := pageFromQuery(c)
	if err != nil {
		abortWithError(c, http.StatusBadRequest, nil)
		return
	}

	found, err := h.trivia.SearchQuestions(term)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, err)
		return
	}

	c.JSON(http.StatusOK, QuestionsResponse{
		Questions:       services.Paginate(page, h.pageSize, found),
		TotalQuestions:  len(found),
		CurrentCategory: searchCurrentCategory,
	})
}

func (h *QuestionHandler) create(c *gin.Context, req CreateOrSearchRequest) {
	question, err := h.trivia.CreateQuestion(services.QuestionInput{
		Question:   req.Question,
		Answer:     req.Answer,
		Category:   req.Category.Value,
		Difficulty: int(req.Difficulty.Value),
	})
	switch {
	case errors.Is(err, services.ErrMissingFields),
		errors.Is(err, services.ErrInvalidCategory),
		errors.Is(err, services.ErrInvalidDifficulty):
		abortWithError(c, http.StatusBadRequest, nil)
		return
	case err != nil:
		abortWithError(c, http.StatusInternalServerError, err)
		return
	}

	c.JSON(http.StatusOK, CreateResponse{Success: true, Created: question.ID})
}
