package errs

import (
	"errors"
	"fmt"
	"net/http"

	"gorm.io/gorm"
)

var (
	ErrDatabaseQuery      = errors.New("database query failed")
	ErrDatabaseConnection = errors.New("database connection failed")
)

func NewNotFound(entity string) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusNotFound,
		err:        fmt.Errorf("%s %w", entity, ErrNotFound),
	}
}

// NewDatabaseError translates a persistence failure into the API taxonomy.
// A missing row is NotFound; every other store failure on a handler path is
// Unprocessable, so raw driver errors never reach the client.
func NewDatabaseError(operation, entity string, cause error) *ApiErr {
	details := fmt.Sprintf("Failed to %s %s", operation, entity)

	if errors.Is(cause, gorm.ErrRecordNotFound) {
		return &ApiErr{
			StatusCode: http.StatusNotFound,
			err:        fmt.Errorf("%s %w", entity, ErrNotFound),
			Details:    details,
			Cause:      cause,
		}
	}

	if errors.Is(cause, gorm.ErrForeignKeyViolated) {
		return &ApiErr{
			StatusCode: http.StatusUnprocessableEntity,
			err:        ErrUnprocessable,
			Details:    fmt.Sprintf("Invalid reference in %s", entity),
			Cause:      cause,
		}
	}

	return &ApiErr{
		StatusCode: http.StatusUnprocessableEntity,
		err:        ErrUnprocessable,
		Details:    details,
		Cause:      cause,
	}
}
