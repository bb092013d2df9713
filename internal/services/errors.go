package services

import "errors"

var (
	ErrNotFound          = errors.New("not found")
	ErrAlreadyDeleted    = errors.New("already deleted")
	ErrInvalidCategory   = errors.New("category does not exist")
	ErrInvalidDifficulty = errors.New("difficulty must be between 1 and 5")
	ErrMissingFields     = errors.New("question and answer are required")
	ErrNoQuestions       = errors.New("no questions available")
	ErrQuizExhausted     = errors.New("all questions have been asked")
)
