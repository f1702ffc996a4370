package errors

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
)

// ErrorResp carries an HTTP status alongside the message so handlers can
// map domain failures onto responses without switch ladders.
type ErrorResp struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func (e *ErrorResp) Error() string {
	return e.Message
}

func New(code int, message string) *ErrorResp {
	return &ErrorResp{Code: code, Message: message}
}

func BadRequest(message string) *ErrorResp {
	return New(fiber.StatusBadRequest, message)
}

func UnauthorizedError(message string) *ErrorResp {
	return New(fiber.StatusUnauthorized, message)
}

func ForbiddenError(message string) *ErrorResp {
	return New(fiber.StatusForbidden, message)
}

func NotFound(message string) *ErrorResp {
	return New(fiber.StatusNotFound, message)
}

func Conflict(message string) *ErrorResp {
	return New(fiber.StatusConflict, message)
}

func UnprocessableEntity(message string) *ErrorResp {
	return New(fiber.StatusUnprocessableEntity, message)
}

func InternalServerError(message string) *ErrorResp {
	return New(fiber.StatusInternalServerError, message)
}

func BadGateway(message string) *ErrorResp {
	return New(fiber.StatusBadGateway, message)
}

// Domain taxonomy. Each constructor tags the message so callers and tests
// can match on kind without string comparison.

// SlotConflict is returned when the requested (date, slot) pair already
// holds an active booking.
func SlotConflict(date, slot string) *ErrorResp {
	return Conflict(fmt.Sprintf("slot %s on %s is already booked", slot, date))
}

// InvalidTransition is returned for a booking-status change not permitted
// from the current state.
func InvalidTransition(from, to string) *ErrorResp {
	return UnprocessableEntity(fmt.Sprintf("invalid transition from %s to %s", from, to))
}

// PaymentInitiationFailed wraps any gateway-side rejection during payment
// initiation. The booking stays pending_payment and initiation may be retried.
func PaymentInitiationFailed(reason string) *ErrorResp {
	return BadGateway(fmt.Sprintf("payment initiation failed: %s", reason))
}

// CancellationDenied is returned when the cancellation policy rejects the
// request; reason names the blocking condition.
func CancellationDenied(reason string) *ErrorResp {
	return ForbiddenError(fmt.Sprintf("cancellation denied: %s", reason))
}

// ConfigurationError reports invalid service configuration, e.g. an
// unreachable payment callback URL. Always fails fast.
func ConfigurationError(reason string) *ErrorResp {
	return InternalServerError(fmt.Sprintf("configuration error: %s", reason))
}

// HTTPCode extracts the status code from an error, defaulting to 500.
func HTTPCode(err error) int {
	var resp *ErrorResp
	if errors.As(err, &resp) {
		return resp.Code
	}
	return fiber.StatusInternalServerError
}
