package trivia

import (
	"github.com/go-chi/chi/v5"
)

// setupRoutes wires every trivia API endpoint onto the router
func setupRoutes(r chi.Router, handlers *routeHandlers) {
	r.Get("/categories", handlers.categoryHandler.getCategories())
	r.Get("/categories/{categoryID}/questions", handlers.questionHandler.getQuestionsByCategory())

	r.Get("/questions", handlers.questionHandler.getQuestions())
	r.Post("/questions", handlers.questionHandler.createQuestion())
	r.Post("/questions/search", handlers.questionHandler.searchQuestions())
	r.Delete("/questions/{questionID}", handlers.questionHandler.deleteQuestion())

	r.Post("/quizzes", handlers.quizHandler.playQuiz())
}
