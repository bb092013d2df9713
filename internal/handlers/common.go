package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"strings"

	"trivia-api/internal/middleware"
	"trivia-api/internal/models"

	"github.com/gin-gonic/gin"
)

type ErrorResponse struct {
	Success bool   `json:"success" example:"false"`
	Error   int    `json:"error" example:"404"`
	Message string `json:"message" example:"resource not found"`
}

var errorMessages = map[int]string{
	http.StatusBadRequest:          "Bad request supplied",
	http.StatusNotFound:            "resource not found",
	http.StatusMethodNotAllowed:    "method not allowed",
	http.StatusUnprocessableEntity: "request unprocessable",
	http.StatusInternalServerError: "internal server error",
}

// abortWithError writes the error envelope for status. A non-nil cause is logged.
func abortWithError(c *gin.Context, status int, cause error) {
	if cause != nil {
		logRequestError(c, status, cause)
	}
	c.AbortWithStatusJSON(status, ErrorResponse{
		Success: false,
		Error:   status,
		Message: errorMessages[status],
	})
}

func logRequestError(c *gin.Context, status int, cause error) {
	log.Printf("%s %s -> %d (request %s): %v",
		c.Request.Method, c.Request.URL.Path, status, c.GetString(middleware.RequestIDKey), cause)
}

type Question = models.Question

// QuestionsResponse is the paginated question listing shape.
type QuestionsResponse struct {
	Questions       []Question      `json:"questions"`
	TotalQuestions  int             `json:"total_questions"`
	Categories      map[uint]string `json:"categories,omitempty"`
	CurrentCategory string          `json:"current_category"`
}

var errInvalidPage = errors.New("page must be a positive integer")

// pageFromQuery reads ?page, defaulting to 1.
func pageFromQuery(c *gin.Context) (int, error) {
	raw, ok := c.GetQuery("page")
	if !ok || raw == "" {
		return 1, nil
	}
	page, err := strconv.Atoi(raw)
	if err != nil || page < 1 {
		return 0, errInvalidPage
	}
	return page, nil
}

func parseID(raw string) (uint, bool) {
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return 0, false
	}
	return uint(id), true
}

// FlexInt decodes a non-negative integer sent either as a JSON number or a numeric string.
type FlexInt struct {
	Value uint
	Set   bool
}

func (f *FlexInt) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*f = FlexInt{}
		return nil
	}

	raw := string(data)
	if strings.HasPrefix(raw, `"`) {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		raw = strings.TrimSpace(s)
	}

	v, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return fmt.Errorf("invalid integer %s", data)
	}
	*f = FlexInt{Value: uint(v), Set: true}
	return nil
}
