package trivia

import (
	"net/http"

	"github.com/lgaetano/Udacity-Full-Stack-Nanodegree/database"
	"github.com/lgaetano/Udacity-Full-Stack-Nanodegree/models"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type categoryHandler struct {
	responder    Responder
	logger       zerolog.Logger
	categoryRepo *database.CategoryRepo
}

func newCategoryHandler(categoryRepo *database.CategoryRepo) categoryHandler {
	logger := log.With().Str("handlerName", "categoryHandler").Logger()

	return categoryHandler{
		responder:    NewResponder(logger),
		logger:       logger,
		categoryRepo: categoryRepo,
	}
}

// getCategories returns every category as an id -> label mapping, ordered by id
func (h categoryHandler) getCategories() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		categories, err := h.categoryRepo.FindAllOrdered()
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find categories", "categories", err))
			return
		}

		h.responder.WriteJSON(w, categoriesResponse{
			Success:    true,
			Categories: categoriesByID(categories),
		})
	}
}

// categoriesByID flattens categories into the id -> type map the API exchanges.
func categoriesByID(categories []*models.Category) map[uint]string {
	byID := make(map[uint]string, len(categories))
	for _, category := range categories {
		byID[category.ID] = category.Type
	}
	return byID
}
