package state

import (
	"fmt"
	"time"

	"autocare-service/internal/module/booking/models/entity"
	"autocare-service/internal/module/booking/slots"
	"autocare-service/internal/pkg/errors"
)

// CancellationAllowed evaluates the cancellation window for the actor.
// Pure: callers supply the clock.
//
// Operators may cancel any non-terminal booking with no window check.
// Customers may always cancel an unpaid booking, may cancel a confirmed
// booking up to the window boundary, and never an in-progress one. The
// boundary is inclusive: a request exactly `window` before the slot's
// start (minutes respected, evaluated in loc) is accepted.
func CancellationAllowed(now time.Time, b entity.Booking, actor entity.Actor, window time.Duration, loc *time.Location) error {
	if b.Status.Terminal() {
		return errors.CancellationDenied(fmt.Sprintf("booking is already %s", b.Status))
	}

	if actor.Role == entity.RoleOperator {
		return nil
	}

	if actor.Role != entity.RoleCustomer {
		return errors.CancellationDenied(fmt.Sprintf("role %s may not cancel bookings", actor.Role))
	}

	switch b.Status {
	case entity.StatusPendingPayment:
		return nil
	case entity.StatusInProgress:
		return errors.CancellationDenied("work on this booking is already in progress")
	}

	start, err := slots.StartTime(b.BookingDate, b.TimeSlot, loc)
	if err != nil {
		return errors.CancellationDenied(err.Error())
	}

	if start.Sub(now) >= window {
		return nil
	}

	return errors.CancellationDenied(fmt.Sprintf(
		"confirmed bookings must be cancelled at least %s before the %s slot", window, b.TimeSlot))
}
