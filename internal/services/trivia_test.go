package services

import (
	"errors"
	"math/rand"
	"testing"

	"trivia-api/internal/database/dbtest"
	"trivia-api/internal/models"
)

func newTestService(t *testing.T) *TriviaService {
	t.Helper()
	return NewTriviaService(dbtest.Open(t, true), rand.New(rand.NewSource(1)))
}

func TestListQuestionsOrderedByID(t *testing.T) {
	svc := newTestService(t)

	questions, err := svc.ListQuestions()
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(questions) != 19 {
		t.Fatalf("len = %d, want 19", len(questions))
	}
	for i := 1; i < len(questions); i++ {
		if questions[i-1].ID >= questions[i].ID {
			t.Fatalf("questions not ordered by id at %d: %d >= %d", i, questions[i-1].ID, questions[i].ID)
		}
	}
}

func TestSearchQuestionsCaseInsensitive(t *testing.T) {
	svc := newTestService(t)

	tests := []struct {
		term string
		want []uint
	}{
		{term: "title", want: []uint{5, 6}},
		{term: "TITLE", want: []uint{5, 6}},
		{term: "soccer world cup", want: []uint{10, 11}},
		{term: "100%", want: nil},
		{term: "zzz-no-match", want: nil},
	}
	for _, tt := range tests {
		t.Run(tt.term, func(t *testing.T) {
			got, err := svc.SearchQuestions(tt.term)
			if err != nil {
				t.Fatalf("search: %v", err)
			}
			if len(got) != len(tt.want) {
				t.Fatalf("search %q returned %d questions, want %d", tt.term, len(got), len(tt.want))
			}
			for i, q := range got {
				if q.ID != tt.want[i] {
					t.Fatalf("search %q [%d] = %d, want %d", tt.term, i, q.ID, tt.want[i])
				}
			}
		})
	}
}

func TestCreateQuestionValidation(t *testing.T) {
	svc := newTestService(t)

	tests := []struct {
		name  string
		input QuestionInput
		want  error
	}{
		{name: "missing_answer", input: QuestionInput{Question: "Q?", Category: 1}, want: ErrMissingFields},
		{name: "blank_question", input: QuestionInput{Question: "  ", Answer: "A", Category: 1}, want: ErrMissingFields},
		{name: "unknown_category", input: QuestionInput{Question: "Q?", Answer: "A", Category: 42}, want: ErrInvalidCategory},
		{name: "difficulty_too_high", input: QuestionInput{Question: "Q?", Answer: "A", Category: 1, Difficulty: 6}, want: ErrInvalidDifficulty},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := svc.CreateQuestion(tt.input); !errors.Is(err, tt.want) {
				t.Fatalf("err = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestCreateQuestionDefaultsDifficulty(t *testing.T) {
	svc := newTestService(t)

	q, err := svc.CreateQuestion(QuestionInput{Question: "Heres a new question string", Answer: "Heres a new answer string", Category: 3})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if q.ID == 0 || q.Difficulty != 1 {
		t.Fatalf("created = %+v, want generated id and difficulty 1", q)
	}

	all, _ := svc.ListQuestions()
	if len(all) != 20 {
		t.Fatalf("len = %d after create, want 20", len(all))
	}
}

func TestDeleteQuestion(t *testing.T) {
	svc := newTestService(t)

	if err := svc.DeleteQuestion(5); err != nil {
		t.Fatalf("first delete: %v", err)
	}
	if err := svc.DeleteQuestion(5); !errors.Is(err, ErrAlreadyDeleted) {
		t.Fatalf("second delete: err = %v, want ErrAlreadyDeleted", err)
	}
	if err := svc.DeleteQuestion(9999); !errors.Is(err, ErrNotFound) {
		t.Fatalf("missing delete: err = %v, want ErrNotFound", err)
	}

	all, _ := svc.ListQuestions()
	for _, q := range all {
		if q.ID == 5 {
			t.Fatal("deleted question 5 still listed")
		}
	}
}

func TestGetCategory(t *testing.T) {
	svc := newTestService(t)

	cat, err := svc.GetCategory(4)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if cat.Type != "History" {
		t.Fatalf("category 4 = %q, want History", cat.Type)
	}
	if _, err := svc.GetCategory(100); !errors.Is(err, ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestNextQuizQuestionSkipsPrevious(t *testing.T) {
	svc := newTestService(t)

	history, err := svc.QuestionsByCategory(1)
	if err != nil {
		t.Fatalf("by category: %v", err)
	}
	var previous []uint
	for _, q := range history[1:] {
		previous = append(previous, q.ID)
	}

	q, err := svc.NextQuizQuestion(1, previous)
	if err != nil {
		t.Fatalf("next: %v", err)
	}
	if q.ID != history[0].ID {
		t.Fatalf("next = %d, want only remaining question %d", q.ID, history[0].ID)
	}

	previous = append(previous, q.ID)
	if _, err := svc.NextQuizQuestion(1, previous); !errors.Is(err, ErrQuizExhausted) {
		t.Fatalf("err = %v, want ErrQuizExhausted", err)
	}
}

func TestCategoryMap(t *testing.T) {
	svc := newTestService(t)

	cats, err := svc.ListCategories()
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	m := models.CategoryMap(cats)
	if len(m) != 6 || m[1] != "Science" || m[6] != "Sports" {
		t.Fatalf("CategoryMap = %v", m)
	}
}
