package services

import (
	"math/rand"

	"trivia-api/internal/models"
)

// RandomSource is satisfied by *rand.Rand.
type RandomSource interface {
	Intn(n int) int
}

type globalRandom struct{}

func (globalRandom) Intn(n int) int { return rand.Intn(n) }

// GlobalRandom draws from the process-wide math/rand source, which is safe for concurrent use.
var GlobalRandom RandomSource = globalRandom{}

// SelectQuizQuestion picks a question uniformly at random from the questions in
// categoryID (0 means every category) that are not listed in previous.
//
// It returns ErrNoQuestions when the category has no questions at all and
// ErrQuizExhausted when every eligible question was already asked.
func SelectQuizQuestion(all []models.Question, categoryID uint, previous []uint, rng RandomSource) (*models.Question, error) {
	asked := make(map[uint]struct{}, len(previous))
	for _, id := range previous {
		asked[id] = struct{}{}
	}

	eligible := 0
	var fresh []models.Question
	for _, q := range all {
		if categoryID != 0 && q.Category != categoryID {
			continue
		}
		eligible++
		if _, ok := asked[q.ID]; ok {
			continue
		}
		fresh = append(fresh, q)
	}

	if eligible == 0 {
		return nil, ErrNoQuestions
	}
	if len(fresh) == 0 {
		return nil, ErrQuizExhausted
	}
	if rng == nil {
		rng = GlobalRandom
	}
	picked := fresh[rng.Intn(len(fresh))]
	return &picked, nil
}
