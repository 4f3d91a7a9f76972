package trivia

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/lgaetano/Udacity-Full-Stack-Nanodegree/models"
)

// routeHandlers contains all the handlers for different route types
type routeHandlers struct {
	categoryHandler categoryHandler
	questionHandler questionHandler
	quizHandler     quizHandler
}

type categoriesResponse struct {
	Success    bool            `json:"success"`
	Categories map[uint]string `json:"categories"`
}

type questionListResponse struct {
	Success         bool               `json:"success"`
	Questions       []*models.Question `json:"questions"`
	TotalQuestions  int64              `json:"total_questions"`
	Categories      map[uint]string    `json:"categories,omitempty"`
	CurrentCategory *uint              `json:"current_category"`
}

type createQuestionRequest struct {
	Question   string `json:"question"`
	Answer     string `json:"answer"`
	Difficulty int    `json:"difficulty"`
	Category   uint   `json:"category"`
}

type createQuestionResponse struct {
	Success bool `json:"success"`
	Created uint `json:"created"`
}

type deleteQuestionResponse struct {
	Success bool `json:"success"`
	Deleted uint `json:"deleted"`
}

type searchRequest struct {
	SearchTerm string `json:"searchTerm"`
}

// quizCategory mirrors the client payload. Some clients send the id as a JSON
// number and some as a numeric string; both decode, and 0 means all categories.
type quizCategory struct {
	ID   flexibleID `json:"id"`
	Type string     `json:"type"`
}

type quizRequest struct {
	QuizCategory      quizCategory `json:"quiz_category"`
	PreviousQuestions []uint       `json:"previous_questions"`
}

type quizResponse struct {
	Success  bool             `json:"success"`
	Question *models.Question `json:"question"`
}

type errorResponse struct {
	Success bool   `json:"success"`
	Error   int    `json:"error"`
	Message string `json:"message"`
}

// flexibleID is an unsigned id that accepts both 3 and "3" on the wire.
type flexibleID uint

func (f *flexibleID) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if s == "" || s == "null" {
		*f = 0
		return nil
	}

	n, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return fmt.Errorf("invalid id %q: %w", s, err)
	}

	*f = flexibleID(n)
	return nil
}
