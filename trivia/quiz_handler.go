package trivia

import (
	"encoding/json"
	"net/http"

	"github.com/lgaetano/Udacity-Full-Stack-Nanodegree/database"
	"github.com/lgaetano/Udacity-Full-Stack-Nanodegree/errs"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type quizHandler struct {
	responder Responder
	logger    zerolog.Logger
	selector  QuizSelector
}

func newQuizHandler(questionRepo *database.QuestionRepo) quizHandler {
	logger := log.With().Str("handlerName", "quizHandler").Logger()

	return quizHandler{
		responder: NewResponder(logger),
		logger:    logger,
		selector:  NewQuizSelector(questionRepo),
	}
}

// playQuiz serves one quiz round: a random question from the requested
// category that the client has not seen yet. An exhausted candidate set is a
// success with a null question, which the client reads as "quiz complete".
func (h quizHandler) playQuiz() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req quizRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			h.responder.WriteError(w, errs.NewMalformedPayloadError("quiz", err))
			return
		}

		question, err := h.selector.Next(uint(req.QuizCategory.ID), req.PreviousQuestions)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("select", "quiz question", err))
			return
		}

		h.responder.WriteJSON(w, quizResponse{
			Success:  true,
			Question: question,
		})
	}
}
