package handlers

import (
	"encoding/csv"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

var exportHeader = []string{"id", "question", "answer", "category", "difficulty"}

// ExportQuestions godoc
// @Summary      Export the question bank
// @Tags         questions
// @Produce      json
// @Produce      text/csv
// @Param        format query string false "json (default) or csv"
// @Success      200 {array} Question
// @Failure      400 {object} ErrorResponse
// @Failure      500 {object} ErrorResponse
// @Router       /questions/export [get]
func (h *QuestionHandler) ExportQuestions(c *gin.Context) {
	format := c.DefaultQuery("format", "json")
	if format != "json" && format != "csv" {
		abortWithError(c, http.StatusBadRequest, nil)
		return
	}

	questions, err := h.trivia.ListQuestions()
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, err)
		return
	}

	if format == "json" {
		c.Header("Content-Disposition", `attachment; filename="questions.json"`)
		c.JSON(http.StatusOK, questions)
		return
	}

	c.Header("Content-Type", "text/csv; charset=utf-8")
	c.Header("Content-Disposition", `attachment; filename="questions.csv"`)
	c.Status(http.StatusOK)

	w := csv.NewWriter(c.Writer)
	_ = w.Write(exportHeader)
	for _, q := range questions {
		_ = w.Write([]string{
			strconv.FormatUint(uint64(q.ID), 10),
			q.Question,
			q.Answer,
			strconv.FormatUint(uint64(q.Category), 10),
			strconv.Itoa(q.Difficulty),
		})
	}
	w.Flush()
	if err := w.Error(); err != nil {
		logRequestError(c, http.StatusOK, fmt.Errorf("write csv export: %w", err))
	}
}
