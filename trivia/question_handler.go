package trivia

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/lgaetano/Udacity-Full-Stack-Nanodegree/database"
	"github.com/lgaetano/Udacity-Full-Stack-Nanodegree/errs"
	"github.com/lgaetano/Udacity-Full-Stack-Nanodegree/models"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// questionsPerPage is the fixed page size of every paginated listing.
const questionsPerPage = 10

type questionHandler struct {
	responder    Responder
	logger       zerolog.Logger
	questionRepo *database.QuestionRepo
	categoryRepo *database.CategoryRepo
	searchPolicy database.EmptySearchPolicy
}

func newQuestionHandler(questionRepo *database.QuestionRepo, categoryRepo *database.CategoryRepo, searchPolicy database.EmptySearchPolicy) questionHandler {
	logger := log.With().Str("handlerName", "questionHandler").Logger()

	return questionHandler{
		responder:    NewResponder(logger),
		logger:       logger,
		questionRepo: questionRepo,
		categoryRepo: categoryRepo,
		searchPolicy: searchPolicy,
	}
}

// getQuestions returns one 10-question page plus the category map. A page
// past the end of the table is 404, including page 1 of an empty table.
func (h questionHandler) getQuestions() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		page, err := pageParam(r)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		questions, total, err := h.questionRepo.FindPage(page, questionsPerPage)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find questions", "questions", err))
			return
		}

		if len(questions) == 0 {
			h.responder.WriteError(w, errs.NewNotFoundError("page out of range"))
			return
		}

		categories, err := h.categoryRepo.FindAllOrdered()
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find categories", "categories", err))
			return
		}

		h.responder.WriteJSON(w, questionListResponse{
			Success:         true,
			Questions:       questions,
			TotalQuestions:  total,
			Categories:      categoriesByID(categories),
			CurrentCategory: nil,
		})
	}
}

// getQuestionsByCategory is getQuestions scoped to one category. An unknown
// category has no questions in range, so it falls out as 404 too.
func (h questionHandler) getQuestionsByCategory() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		categoryID, err := idParam(r, "categoryID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		page, err := pageParam(r)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		questions, total, err := h.questionRepo.FindPageByCategory(categoryID, page, questionsPerPage)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find questions", "questions", err))
			return
		}

		if len(questions) == 0 {
			h.responder.WriteError(w, errs.NewNotFoundError("page out of range"))
			return
		}

		h.responder.WriteJSON(w, questionListResponse{
			Success:         true,
			Questions:       questions,
			TotalQuestions:  total,
			CurrentCategory: &categoryID,
		})
	}
}

// createQuestion validates the payload at the boundary and inserts the
// question transactionally.
func (h questionHandler) createQuestion() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createQuestionRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			h.responder.WriteError(w, errs.NewMalformedPayloadError("question", err))
			return
		}

		if strings.TrimSpace(req.Question) == "" {
			h.responder.WriteError(w, errs.NewMissingRequiredFieldError("question"))
			return
		}
		if strings.TrimSpace(req.Answer) == "" {
			h.responder.WriteError(w, errs.NewMissingRequiredFieldError("answer"))
			return
		}
		if req.Difficulty == 0 {
			h.responder.WriteError(w, errs.NewMissingRequiredFieldError("difficulty"))
			return
		}
		if req.Category == 0 {
			h.responder.WriteError(w, errs.NewMissingRequiredFieldError("category"))
			return
		}

		exists, err := h.categoryRepo.Exists(req.Category)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find category", "category", err))
			return
		}
		if !exists {
			h.responder.WriteError(w, errs.NewUnprocessableError("category does not exist"))
			return
		}

		question := models.Question{
			Question:   req.Question,
			Answer:     req.Answer,
			Difficulty: req.Difficulty,
			CategoryID: req.Category,
		}
		if err := h.questionRepo.Add(&question); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("create", "question", err))
			return
		}

		h.responder.WriteJSON(w, createQuestionResponse{
			Success: true,
			Created: question.ID,
		})
	}
}

// deleteQuestion removes a question by id; a missing id is 404, never a
// success with deleted set.
func (h questionHandler) deleteQuestion() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		questionID, err := idParam(r, "questionID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		if err := h.questionRepo.Delete(questionID); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("delete", "question", err))
			return
		}

		h.responder.WriteJSON(w, deleteQuestionResponse{
			Success: true,
			Deleted: questionID,
		})
	}
}

// searchQuestions matches the term as a case-insensitive substring of the
// question text. Zero matches is a 200 with an empty list.
func (h questionHandler) searchQuestions() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req searchRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			h.responder.WriteError(w, errs.NewMalformedPayloadError("search", err))
			return
		}

		questions, total, err := h.questionRepo.Search(req.SearchTerm, h.searchPolicy)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("search", "questions", err))
			return
		}

		if questions == nil {
			questions = []*models.Question{}
		}

		h.responder.WriteJSON(w, questionListResponse{
			Success:         true,
			Questions:       questions,
			TotalQuestions:  total,
			CurrentCategory: nil,
		})
	}
}

// pageParam reads the 1-based page query parameter, defaulting to 1.
func pageParam(r *http.Request) (int, error) {
	raw := r.URL.Query().Get("page")
	if raw == "" {
		return 1, nil
	}

	page, err := strconv.Atoi(raw)
	if err != nil || page < 1 {
		return 0, errs.NewInvalidFieldError("page", "must be a positive integer")
	}
	return page, nil
}

// idParam reads an unsigned integer URL parameter.
func idParam(r *http.Request, name string) (uint, error) {
	raw := chi.URLParam(r, name)
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return 0, errs.NewInvalidFieldError(name, "must be an unsigned integer")
	}
	return uint(id), nil
}
