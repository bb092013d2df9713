package handlers

import (
	"errors"
	"net/http"

	"trivia-api/internal/models"
	"trivia-api/internal/services"

	"github.com/gin-gonic/gin"
)

type CategoryHandler struct {
	trivia   *services.TriviaService
	pageSize int
}

func NewCategoryHandler(trivia *services.TriviaService, pageSize int) *CategoryHandler {
	return &CategoryHandler{trivia: trivia, pageSize: pageSize}
}

type CategoriesResponse struct {
	Categories map[uint]string `json:"categories"`
}

// ListCategories godoc
// @Summary      List categories
// @Tags         categories
// @Produce      json
// @Success      200 {object} CategoriesResponse
// @Failure      404 {object} ErrorResponse
// @Failure      500 {object} ErrorResponse
// @Router       /categories [get]
func (h *CategoryHandler) ListCategories(c *gin.Context) {
	categories, err := h.trivia.ListCategories()
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, err)
		return
	}
	if len(categories) == 0 {
		abortWithError(c, http.StatusNotFound, nil)
		return
	}

	c.JSON(http.StatusOK, CategoriesResponse{Categories: models.CategoryMap(categories)})
}

// QuestionsByCategory godoc
// @Summary      List questions in a category
// @Tags         categories
// @Produce      json
// @Param        id   path  int true  "Category ID"
// @Param        page query int false "Page number"
// @Success      200 {object} QuestionsResponse
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Router       /categories/{id}/questions [get]
func (h *CategoryHandler) QuestionsByCategory(c *gin.Context) {
	categoryID, ok := parseID(c.Param("id"))
	if !ok {
		abortWithError(c, http.StatusNotFound, nil)
		return
	}
	page, err := pageFromQuery(c)
	if err != nil {
		abortWithError(c, http.StatusBadRequest, nil)
		return
	}

	category, err := h.trivia.GetCategory(categoryID)
	if errors.Is(err, services.ErrNotFound) {
		abortWithError(c, http.StatusNotFound, nil)
		return
	}
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, err)
		return
	}

	questions, err := h.trivia.QuestionsByCategory(categoryID)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, err)
		return
	}

	c.JSON(http.StatusOK, QuestionsResponse{
		Questions:       services.Paginate(page, h.pageSize, questions),
		TotalQuestions:  len(questions),
		CurrentCategory: category.Type,
	})
}
