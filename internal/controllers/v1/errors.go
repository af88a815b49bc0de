package v1

import (
	"errors"
	"net/http"

	"github.com/finance-buddy/backend/internal/models"
)

type httpError struct {
	Error string `json:"error" example:"there is no expense matching your query"`
}

// status returns the appropriate HTTP status for an error
func status(err error) int {
	if errors.Is(err, models.ErrGeneral) {
		return http.StatusInternalServerError
	}

	if errors.Is(err, models.ErrResourceNotFound) || errors.Is(err, models.ErrNoUser) {
		return http.StatusNotFound
	}

	if errors.Is(err, models.ErrAlreadyInitialized) {
		return http.StatusConflict
	}

	return http.StatusBadRequest
}

var (
	errCleanupConfirmation = errors.New("the confirmation for the cleanup API call was incorrect")
	errCurrencyNotSet      = errors.New("the currency parameter must be set")
)
