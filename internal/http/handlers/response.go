package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/tbourn/go-api-envelope/internal/http/respond"
	"github.com/tbourn/go-api-envelope/internal/services"
)

// bindJSON decodes the request body into dst and runs its binding rules.
// On failure it writes the validation outcome and returns false: rule
// violations become a field-error map, a body over the size cap is P413,
// and anything else (bad JSON, wrong types, empty body) is V000.
func bindJSON(c *gin.Context, dst any) bool {
	err := c.ShouldBindJSON(dst)
	if err == nil {
		return true
	}

	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		respond.Protocol(c, http.StatusRequestEntityTooLarge)
		return false
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		respond.ValidationFields(c, translateErrors(verrs))
		return false
	}
	respond.LoggerFrom(c).Debug().Err(err).Msg("malformed request body")
	respond.Validation(c, CodeMalformedJSON, "malformed JSON body")
	return false
}

// fail classifies a service error into its outcome. Sentinels from the
// services package are expected failures; anything else is reported as a
// storage failure and attached to the request for the access log.
func fail(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrAccountNotFound):
		respond.Business(c, CodeNotFound, "account not found")
	case errors.Is(err, services.ErrNotOwner):
		respond.Authorization(c, CodeNotOwner, "account belongs to another user")
	case errors.Is(err, services.ErrInsufficientFunds):
		respond.Business(c, CodeInsufficientFunds, "insufficient funds")
	case errors.Is(err, services.ErrInvalidAmount):
		respond.Business(c, CodeInvalidAmount, "amount must be positive and within the operation limit")
	case errors.Is(err, services.ErrSameAccount):
		respond.Business(c, CodeSameAccount, "source and destination accounts must differ")
	case errors.Is(err, services.ErrCurrencyMismatch):
		respond.Business(c, CodeCurrencyMismatch, "accounts use different currencies")
	case errors.Is(err, services.ErrIdempotencyMismatch):
		respond.Business(c, CodeIdempotencyReuse, "idempotency key reused with a different request")
	default:
		_ = c.Error(err)
		respond.LoggerFrom(c).Error().Err(err).Msg("service call failed")
		respond.Server(c, CodeStorageFailure, "storage failure")
	}
}
