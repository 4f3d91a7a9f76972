package trivia

import (
	"errors"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lgaetano/Udacity-Full-Stack-Nanodegree/models"
)

// stubSource replays the exclusion filter over a fixed question set.
type stubSource struct {
	questions []*models.Question
	err       error
}

func (s stubSource) FindCandidates(categoryID uint, exclude []uint) ([]*models.Question, error) {
	if s.err != nil {
		return nil, s.err
	}

	var candidates []*models.Question
	for _, question := range s.questions {
		if categoryID != AllCategories && question.CategoryID != categoryID {
			continue
		}
		if slices.Contains(exclude, question.ID) {
			continue
		}
		candidates = append(candidates, question)
	}
	return candidates, nil
}

func quizQuestions() []*models.Question {
	return []*models.Question{
		{ID: 1, CategoryID: 1},
		{ID: 2, CategoryID: 1},
		{ID: 3, CategoryID: 1},
		{ID: 4, CategoryID: 2},
	}
}

func TestQuizSelector_Next(t *testing.T) {
	selector := NewQuizSelector(stubSource{questions: quizQuestions()})

	t.Run("never_repeats", func(t *testing.T) {
		previous := []uint{1, 2}
		for i := 0; i < 50; i++ {
			question, err := selector.Next(1, previous)
			require.NoError(t, err)
			require.NotNil(t, question)
			assert.NotContains(t, previous, question.ID)
			assert.Equal(t, uint(3), question.ID)
		}
	})

	t.Run("category_filter", func(t *testing.T) {
		for i := 0; i < 50; i++ {
			question, err := selector.Next(2, nil)
			require.NoError(t, err)
			require.NotNil(t, question)
			assert.Equal(t, uint(2), question.CategoryID)
		}
	})

	t.Run("all_categories", func(t *testing.T) {
		question, err := selector.Next(AllCategories, []uint{1, 2, 3})
		require.NoError(t, err)
		require.NotNil(t, question)
		assert.Equal(t, uint(4), question.ID)
	})

	t.Run("exhausted_returns_nil", func(t *testing.T) {
		question, err := selector.Next(1, []uint{1, 2, 3})
		require.NoError(t, err)
		assert.Nil(t, question)
	})

	t.Run("source_error", func(t *testing.T) {
		broken := NewQuizSelector(stubSource{err: errors.New("boom")})
		_, err := broken.Next(1, nil)
		assert.Error(t, err)
	})
}

// A full quiz over a three-question category ends after exactly three draws.
func TestQuizSelector_TerminatesAfterPoolDrained(t *testing.T) {
	selector := NewQuizSelector(stubSource{questions: quizQuestions()})

	var previous []uint
	for round := 0; round < 3; round++ {
		question, err := selector.Next(1, previous)
		require.NoError(t, err)
		require.NotNil(t, question)
		previous = append(previous, question.ID)
	}

	assert.ElementsMatch(t, []uint{1, 2, 3}, previous)

	question, err := selector.Next(1, previous)
	require.NoError(t, err)
	assert.Nil(t, question)
}
