package state_test

import (
	"testing"
	"time"

	"autocare-service/internal/module/booking/models/entity"
	"autocare-service/internal/module/booking/state"

	"github.com/stretchr/testify/assert"
)

const window = 24 * time.Hour

// slot starts 2026-09-08 14:00 UTC; the inclusive boundary for a 24h
// window is 2026-09-07 14:00 UTC.
func confirmedBooking() entity.Booking {
	return entity.Booking{
		BookingDate:   "2026-09-08",
		TimeSlot:      "14:00-16:00",
		Status:        entity.StatusConfirmed,
		PaymentStatus: entity.PaymentPaid,
	}
}

func TestCancellationAllowed(t *testing.T) {
	customer := entity.Actor{Role: entity.RoleCustomer, ID: 7}
	operator := entity.Actor{Role: entity.RoleOperator, ID: 99}

	testCases := []struct {
		name    string
		now     time.Time
		booking entity.Booking
		actor   entity.Actor
		allowed bool
	}{
		{
			name:    "well before the window",
			now:     time.Date(2026, 9, 5, 10, 0, 0, 0, time.UTC),
			booking: confirmedBooking(),
			actor:   customer,
			allowed: true,
		},
		{
			name:    "exactly on the boundary",
			now:     time.Date(2026, 9, 7, 14, 0, 0, 0, time.UTC),
			booking: confirmedBooking(),
			actor:   customer,
			allowed: true,
		},
		{
			name:    "one minute inside the window",
			now:     time.Date(2026, 9, 7, 14, 1, 0, 0, time.UTC),
			booking: confirmedBooking(),
			actor:   customer,
			allowed: false,
		},
		{
			name:    "operator ignores the window",
			now:     time.Date(2026, 9, 8, 13, 59, 0, 0, time.UTC),
			booking: confirmedBooking(),
			actor:   operator,
			allowed: true,
		},
		{
			name:    "unpaid booking cancellable any time",
			now:     time.Date(2026, 9, 8, 13, 59, 0, 0, time.UTC),
			booking: entity.Booking{BookingDate: "2026-09-08", TimeSlot: "14:00-16:00", Status: entity.StatusPendingPayment},
			actor:   customer,
			allowed: true,
		},
		{
			name:    "in progress never customer-cancellable",
			now:     time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC),
			booking: entity.Booking{BookingDate: "2026-09-08", TimeSlot: "14:00-16:00", Status: entity.StatusInProgress},
			actor:   customer,
			allowed: false,
		},
		{
			name:    "terminal booking denied even for operator",
			now:     time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC),
			booking: entity.Booking{BookingDate: "2026-09-08", TimeSlot: "14:00-16:00", Status: entity.StatusCompleted},
			actor:   operator,
			allowed: false,
		},
		{
			name:    "staff may not cancel",
			now:     time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC),
			booking: confirmedBooking(),
			actor:   entity.Actor{Role: entity.RoleStaff, ID: 3},
			allowed: false,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := state.CancellationAllowed(tc.now, tc.booking, tc.actor, window, time.UTC)
			if tc.allowed {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}
