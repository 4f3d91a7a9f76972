package trivia

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/lgaetano/Udacity-Full-Stack-Nanodegree/database"
	"github.com/lgaetano/Udacity-Full-Stack-Nanodegree/models"
)

func newTestAPI(t *testing.T) (http.Handler, *gorm.DB) {
	t.Helper()

	gormDB, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	sqlDB, err := gormDB.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, database.MigrateTrivia(gormDB))
	return newRouter(database.New(gormDB), map[string]string{}), gormDB
}

// seedTrivia loads the canonical fixture: six categories, nineteen questions,
// three of them in Science (category 1).
func seedTrivia(t *testing.T, db *gorm.DB) {
	t.Helper()

	for _, label := range []string{"Science", "Art", "Geography", "History", "Entertainment", "Sports"} {
		require.NoError(t, db.Create(&models.Category{Type: label}).Error)
	}
	for i := 0; i < 3; i++ {
		require.NoError(t, db.Create(&models.Question{
			Question:   fmt.Sprintf("Science question %d?", i+1),
			Answer:     fmt.Sprintf("Science answer %d", i+1),
			Difficulty: 2,
			CategoryID: 1,
		}).Error)
	}
	for i := 0; i < 16; i++ {
		require.NoError(t, db.Create(&models.Question{
			Question:   fmt.Sprintf("History question %d about the Maharal?", i+1),
			Answer:     fmt.Sprintf("History answer %d", i+1),
			Difficulty: 3,
			CategoryID: 4,
		}).Error)
	}
}

func doJSON(t *testing.T, handler http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, req)
	return recorder
}

func decodeBody[T any](t *testing.T, recorder *httptest.ResponseRecorder) T {
	t.Helper()

	var payload T
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &payload))
	return payload
}

func TestGetCategories(t *testing.T) {
	handler, db := newTestAPI(t)
	seedTrivia(t, db)

	recorder := doJSON(t, handler, http.MethodGet, "/categories", nil)
	require.Equal(t, http.StatusOK, recorder.Code)

	payload := decodeBody[categoriesResponse](t, recorder)
	assert.True(t, payload.Success)
	assert.Len(t, payload.Categories, 6)
	assert.Equal(t, "Science", payload.Categories[1])
}

func TestGetQuestions(t *testing.T) {
	handler, db := newTestAPI(t)
	seedTrivia(t, db)

	t.Run("first_page", func(t *testing.T) {
		recorder := doJSON(t, handler, http.MethodGet, "/questions", nil)
		require.Equal(t, http.StatusOK, recorder.Code)

		payload := decodeBody[questionListResponse](t, recorder)
		assert.True(t, payload.Success)
		assert.Len(t, payload.Questions, 10)
		assert.Equal(t, int64(19), payload.TotalQuestions)
		assert.Len(t, payload.Categories, 6)
		assert.Nil(t, payload.CurrentCategory)
	})

	t.Run("second_page_partial", func(t *testing.T) {
		recorder := doJSON(t, handler, http.MethodGet, "/questions?page=2", nil)
		require.Equal(t, http.StatusOK, recorder.Code)

		payload := decodeBody[questionListResponse](t, recorder)
		assert.Len(t, payload.Questions, 9)
		assert.Equal(t, int64(19), payload.TotalQuestions)
	})

	t.Run("page_out_of_range", func(t *testing.T) {
		recorder := doJSON(t, handler, http.MethodGet, "/questions?page=100", nil)
		require.Equal(t, http.StatusNotFound, recorder.Code)

		payload := decodeBody[errorResponse](t, recorder)
		assert.False(t, payload.Success)
		assert.Equal(t, http.StatusNotFound, payload.Error)
	})

	t.Run("non_numeric_page", func(t *testing.T) {
		recorder := doJSON(t, handler, http.MethodGet, "/questions?page=abc", nil)
		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})
}

func TestGetQuestions_EmptyTable(t *testing.T) {
	handler, _ := newTestAPI(t)

	recorder := doJSON(t, handler, http.MethodGet, "/questions", nil)
	assert.Equal(t, http.StatusNotFound, recorder.Code)
}

func TestGetQuestionsByCategory(t *testing.T) {
	handler, db := newTestAPI(t)
	seedTrivia(t, db)

	recorder := doJSON(t, handler, http.MethodGet, "/categories/1/questions", nil)
	require.Equal(t, http.StatusOK, recorder.Code)

	payload := decodeBody[questionListResponse](t, recorder)
	assert.True(t, payload.Success)
	assert.Len(t, payload.Questions, 3)
	assert.Equal(t, int64(3), payload.TotalQuestions)
	require.NotNil(t, payload.CurrentCategory)
	assert.Equal(t, uint(1), *payload.CurrentCategory)

	t.Run("category_with_no_questions", func(t *testing.T) {
		recorder := doJSON(t, handler, http.MethodGet, "/categories/2/questions", nil)
		assert.Equal(t, http.StatusNotFound, recorder.Code)
	})
}

func TestCreateQuestion(t *testing.T) {
	handler, db := newTestAPI(t)
	seedTrivia(t, db)

	t.Run("valid", func(t *testing.T) {
		recorder := doJSON(t, handler, http.MethodPost, "/questions", createQuestionRequest{
			Question:   "What boxer's original name is Cassius Clay?",
			Answer:     "Muhammad Ali",
			Difficulty: 1,
			Category:   4,
		})
		require.Equal(t, http.StatusOK, recorder.Code)

		payload := decodeBody[createQuestionResponse](t, recorder)
		assert.True(t, payload.Success)
		assert.NotZero(t, payload.Created)

		var question models.Question
		require.NoError(t, db.First(&question, payload.Created).Error)
		assert.Equal(t, "Muhammad Ali", question.Answer)
	})

	t.Run("missing_answer", func(t *testing.T) {
		recorder := doJSON(t, handler, http.MethodPost, "/questions", createQuestionRequest{
			Question:   "Incomplete?",
			Difficulty: 1,
			Category:   4,
		})
		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})

	t.Run("unknown_category", func(t *testing.T) {
		recorder := doJSON(t, handler, http.MethodPost, "/questions", createQuestionRequest{
			Question:   "Orphaned?",
			Answer:     "Yes",
			Difficulty: 1,
			Category:   42,
		})
		assert.Equal(t, http.StatusUnprocessableEntity, recorder.Code)
	})

	t.Run("malformed_body", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/questions", bytes.NewReader([]byte("{not json")))
		req.Header.Set("Content-Type", "application/json")
		recorder := httptest.NewRecorder()
		handler.ServeHTTP(recorder, req)
		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})
}

func TestDeleteQuestion(t *testing.T) {
	handler, db := newTestAPI(t)
	seedTrivia(t, db)

	recorder := doJSON(t, handler, http.MethodDelete, "/questions/1", nil)
	require.Equal(t, http.StatusOK, recorder.Code)

	payload := decodeBody[deleteQuestionResponse](t, recorder)
	assert.True(t, payload.Success)
	assert.Equal(t, uint(1), payload.Deleted)

	err := db.First(&models.Question{}, 1).Error
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	t.Run("absent_question", func(t *testing.T) {
		recorder := doJSON(t, handler, http.MethodDelete, "/questions/999", nil)
		assert.Equal(t, http.StatusNotFound, recorder.Code)

		payload := decodeBody[errorResponse](t, recorder)
		assert.False(t, payload.Success)
	})
}

func TestSearchQuestions(t *testing.T) {
	handler, db := newTestAPI(t)
	seedTrivia(t, db)

	t.Run("case_insensitive_match", func(t *testing.T) {
		recorder := doJSON(t, handler, http.MethodPost, "/questions/search", searchRequest{SearchTerm: "maharal"})
		require.Equal(t, http.StatusOK, recorder.Code)

		payload := decodeBody[questionListResponse](t, recorder)
		assert.True(t, payload.Success)
		assert.Len(t, payload.Questions, 16)
		assert.Equal(t, int64(16), payload.TotalQuestions)
	})

	t.Run("zero_matches_is_ok", func(t *testing.T) {
		recorder := doJSON(t, handler, http.MethodPost, "/questions/search", searchRequest{SearchTerm: "zzzz"})
		require.Equal(t, http.StatusOK, recorder.Code)

		payload := decodeBody[questionListResponse](t, recorder)
		assert.True(t, payload.Success)
		assert.NotNil(t, payload.Questions)
		assert.Empty(t, payload.Questions)
		assert.Zero(t, payload.TotalQuestions)
	})
}

func TestPlayQuiz(t *testing.T) {
	handler, db := newTestAPI(t)
	seedTrivia(t, db)

	t.Run("string_category_id", func(t *testing.T) {
		recorder := doJSON(t, handler, http.MethodPost, "/quizzes", map[string]any{
			"quiz_category":      map[string]any{"id": "1", "type": "Science"},
			"previous_questions": []uint{},
		})
		require.Equal(t, http.StatusOK, recorder.Code)

		payload := decodeBody[quizResponse](t, recorder)
		assert.True(t, payload.Success)
		require.NotNil(t, payload.Question)
		assert.Equal(t, uint(1), payload.Question.CategoryID)
	})

	t.Run("full_round_never_repeats_and_terminates", func(t *testing.T) {
		var previous []uint
		for round := 0; round < 3; round++ {
			recorder := doJSON(t, handler, http.MethodPost, "/quizzes", quizRequest{
				QuizCategory:      quizCategory{ID: 1, Type: "Science"},
				PreviousQuestions: previous,
			})
			require.Equal(t, http.StatusOK, recorder.Code)

			payload := decodeBody[quizResponse](t, recorder)
			require.NotNil(t, payload.Question)
			assert.NotContains(t, previous, payload.Question.ID)
			previous = append(previous, payload.Question.ID)
		}

		recorder := doJSON(t, handler, http.MethodPost, "/quizzes", quizRequest{
			QuizCategory:      quizCategory{ID: 1, Type: "Science"},
			PreviousQuestions: previous,
		})
		require.Equal(t, http.StatusOK, recorder.Code)

		payload := decodeBody[quizResponse](t, recorder)
		assert.True(t, payload.Success)
		assert.Nil(t, payload.Question)
	})

	t.Run("all_categories_sentinel", func(t *testing.T) {
		recorder := doJSON(t, handler, http.MethodPost, "/quizzes", quizRequest{
			QuizCategory: quizCategory{ID: 0},
		})
		require.Equal(t, http.StatusOK, recorder.Code)

		payload := decodeBody[quizResponse](t, recorder)
		require.NotNil(t, payload.Question)
	})

	t.Run("malformed_body", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/quizzes", bytes.NewReader([]byte("nope")))
		req.Header.Set("Content-Type", "application/json")
		recorder := httptest.NewRecorder()
		handler.ServeHTTP(recorder, req)
		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})
}
