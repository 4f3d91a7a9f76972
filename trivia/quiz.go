package trivia

import (
	"math/rand"

	"github.com/lgaetano/Udacity-Full-Stack-Nanodegree/models"
)

// AllCategories is the category sentinel meaning "no category filter".
const AllCategories uint = 0

// questionSource yields the questions still eligible for a quiz round.
type questionSource interface {
	FindCandidates(categoryID uint, exclude []uint) ([]*models.Question, error)
}

// QuizSelector picks the next question of a quiz session. The server holds no
// session state: the caller echoes back the ids it has already seen and the
// exclusion filter guarantees no repeats.
type QuizSelector struct {
	source questionSource
}

func NewQuizSelector(source questionSource) QuizSelector {
	return QuizSelector{source: source}
}

// Next returns a uniformly random question from the candidate set, or nil
// when the set is exhausted. The returned question's id is never a member of
// previous.
func (s QuizSelector) Next(categoryID uint, previous []uint) (*models.Question, error) {
	candidates, err := s.source.FindCandidates(categoryID, previous)
	if err != nil {
		return nil, err
	}

	if len(candidates) == 0 {
		return nil, nil
	}

	return candidates[rand.Intn(len(candidates))], nil
}
