// Package errhttp maps domain sentinel errors to HTTP status codes.
// Add a case to mapError for each new domain sentinel error.
package errhttp

import (
	"errors"
	"net/http"

	"github.com/ghuser/fridgepal/pkg/httpx"
	fridgedomain "github.com/ghuser/fridgepal/services/fridge/domain"
)

// WriteError maps err to an HTTP status code and writes a JSON error response.
// Uses errors.Is() so wrapped sentinel errors are matched correctly.
// Defaults to 500 Internal Server Error for unrecognized errors, without
// exposing the underlying cause.
func WriteError(w http.ResponseWriter, err error) {
	status, msg := mapError(err)
	httpx.JSONError(w, status, msg)
}

func mapError(err error) (int, string) {
	switch {
	case errors.Is(err, fridgedomain.ErrItemNotFound):
		return http.StatusNotFound, "Item not found"
	case errors.Is(err, fridgedomain.ErrItemAlreadyExists):
		return http.StatusConflict, "Item already exists"
	case errors.Is(err, fridgedomain.ErrInvalidItem):
		// Only a broken business rule is echoed; store rejections carry
		// driver text and stay in the logs.
		var inv *fridgedomain.InvalidItemError
		if errors.As(err, &inv) {
			return http.StatusUnprocessableEntity, inv.Error()
		}
		return http.StatusUnprocessableEntity, "Invalid item"
	case errors.Is(err, fridgedomain.ErrSuggestionFailed):
		return http.StatusInternalServerError, "Failed to generate suggestions"
	default:
		return http.StatusInternalServerError, "Internal server error"
	}
}
