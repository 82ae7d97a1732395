// Package apperror defines the closed error taxonomy shared by the
// storefront usecases and the HTTP layer.
package apperror

import (
	"errors"
	"net/http"
)

var (
	// ErrNotFound is returned when an order, payment, refund, user or
	// payment method does not exist.
	ErrNotFound = errors.New("not found")

	// ErrConflict is returned for duplicate refund requests and duplicate
	// payment methods.
	ErrConflict = errors.New("conflict")

	// ErrInvalidState is returned when deciding a refund request that is
	// no longer pending.
	ErrInvalidState = errors.New("invalid state")

	// ErrInsufficientPoints is returned on an explicit redeem below the
	// current loyalty balance. Automated reversals never return it.
	ErrInsufficientPoints = errors.New("insufficient loyalty points")

	// ErrValidation is returned for malformed or tampered input.
	ErrValidation = errors.New("validation failed")

	// ErrGateway is returned when the payment provider rejects or fails
	// an operation outright.
	ErrGateway = errors.New("payment gateway error")

	// ErrIndeterminate is returned when a gateway call timed out and the
	// outcome is neither confirmed success nor failure.
	ErrIndeterminate = errors.New("gateway result indeterminate")
)

// HTTPStatus maps a taxonomy error to its HTTP status code.
// Unrecognized errors map to 500.
func HTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrConflict):
		return http.StatusConflict
	case errors.Is(err, ErrInvalidState):
		return http.StatusConflict
	case errors.Is(err, ErrInsufficientPoints):
		return http.StatusUnprocessableEntity
	case errors.Is(err, ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, ErrGateway):
		return http.StatusBadGateway
	case errors.Is(err, ErrIndeterminate):
		return http.StatusGatewayTimeout
	default:
		return http.StatusInternalServerError
	}
}
