package services

import (
	"errors"
	"fmt"
	"strings"

	"trivia-api/internal/models"

	"gorm.io/gorm"
)

type TriviaService struct {
	db  *gorm.DB
	rng RandomSource
}

// NewTriviaService returns a service drawing quiz questions from rng.
// A nil rng uses GlobalRandom.
func NewTriviaService(db *gorm.DB, rng RandomSource) *TriviaService {
	if rng == nil {
		rng = GlobalRandom
	}
	return &TriviaService{db: db, rng: rng}
}

func (s *TriviaService) ListCategories() ([]models.Category, error) {
	var categories []models.Category
	if err := s.db.Order("id ASC").Find(&categories).Error; err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	return categories, nil
}

func (s *TriviaService) GetCategory(categoryID uint) (*models.Category, error) {
	var cat models.Category
	err := s.db.First(&cat, categoryID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get category %d: %w", categoryID, err)
	}
	return &cat, nil
}

// ListQuestions returns every live question ordered by id.
func (s *TriviaService) ListQuestions() ([]models.Question, error) {
	var questions []models.Question
	if err := s.db.Order("id ASC").Find(&questions).Error; err != nil {
		return nil, fmt.Errorf("list questions: %w", err)
	}
	return questions, nil
}

func (s *TriviaService) QuestionsByCategory(categoryID uint) ([]models.Question, error) {
	var questions []models.Question
	err := s.db.Where("category = ?", categoryID).Order("id ASC").Find(&questions).Error
	if err != nil {
		return nil, fmt.Errorf("list questions in category %d: %w", categoryID, err)
	}
	return questions, nil
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// SearchQuestions matches term as a case-insensitive substring of the question text.
func (s *TriviaService) SearchQuestions(term string) ([]models.Question, error) {
	pattern := "%" + likeEscaper.Replace(strings.ToLower(term)) + "%"

	var questions []models.Question
	err := s.db.Where(`LOWER(question) LIKE ? ESCAPE '\'`, pattern).Order("id ASC").Find(&questions).Error
	if err != nil {
		return nil, fmt.Errorf("search questions: %w", err)
	}
	return questions, nil
}

type QuestionInput struct {
	Question   string
	Answer     string
	Category   uint
	Difficulty int
}

func (s *TriviaService) CreateQuestion(input QuestionInput) (*models.Question, error) {
	text := strings.TrimSpace(input.Question)
	answer := strings.TrimSpace(input.Answer)
	if text == "" || answer == "" {
		return nil, ErrMissingFields
	}

	difficulty := input.Difficulty
	if difficulty == 0 {
		difficulty = 1
	}
	if difficulty < 1 || difficulty > 5 {
		return nil, ErrInvalidDifficulty
	}

	if _, err := s.GetCategory(input.Category); err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrInvalidCategory
		}
		return nil, err
	}

	question := models.Question{
		Question:   text,
		Answer:     answer,
		Category:   input.Category,
		Difficulty: difficulty,
	}
	if err := s.db.Create(&question).Error; err != nil {
		return nil, fmt.Errorf("create question: %w", err)
	}
	return &question, nil
}

// DeleteQuestion soft-deletes a question. It returns ErrNotFound for ids that
// never existed and ErrAlreadyDeleted for ids removed earlier.
func (s *TriviaService) DeleteQuestion(questionID uint) error {
	var question models.Question
	err := s.db.Unscoped().First(&question, questionID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("load question %d: %w", questionID, err)
	}
	if question.DeletedAt.Valid {
		return ErrAlreadyDeleted
	}

	result := s.db.Delete(&question)
	if result.Error != nil {
		return fmt.Errorf("delete question %d: %w", questionID, result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrAlreadyDeleted
	}
	return nil
}

// NextQuizQuestion picks a question from categoryID (0 for all) that is not in previous.
func (s *TriviaService) NextQuizQuestion(categoryID uint, previous []uint) (*models.Question, error) {
	questions, err := s.ListQuestions()
	if err != nil {
		return nil, err
	}
	return SelectQuizQuestion(questions, categoryID, previous, s.rng)
}
