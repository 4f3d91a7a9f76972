package trivia

import (
	"github.com/lgaetano/Udacity-Full-Stack-Nanodegree/database"
	"github.com/lgaetano/Udacity-Full-Stack-Nanodegree/errs"
)

// initializeHandlers creates and returns all handlers organized in a routeHandlers struct
func initializeHandlers(database database.Database, searchPolicy database.EmptySearchPolicy) *routeHandlers {
	return &routeHandlers{
		categoryHandler: newCategoryHandler(database.CategoryRepo()),
		questionHandler: newQuestionHandler(database.QuestionRepo(), database.CategoryRepo(), searchPolicy),
		quizHandler:     newQuizHandler(database.QuestionRepo()),
	}
}

// wrapDatabaseError wraps a persistence error with context information
func wrapDatabaseError(operation, entity string, cause error) error {
	return errs.NewDatabaseError(operation, entity, cause)
}
