package state_test

import (
	"testing"
	"time"

	"autocare-service/internal/module/booking/models/entity"
	"autocare-service/internal/module/booking/state"

	"github.com/stretchr/testify/assert"
)

func TestCanTransition(t *testing.T) {
	testCases := []struct {
		name    string
		from    entity.BookingStatus
		to      entity.BookingStatus
		role    entity.Role
		allowed bool
	}{
		{name: "system confirms pending", from: entity.StatusPendingPayment, to: entity.StatusConfirmed, role: entity.RoleSystem, allowed: true},
		{name: "operator confirms pending", from: entity.StatusPendingPayment, to: entity.StatusConfirmed, role: entity.RoleOperator, allowed: true},
		{name: "customer cannot confirm", from: entity.StatusPendingPayment, to: entity.StatusConfirmed, role: entity.RoleCustomer, allowed: false},
		{name: "staff cannot confirm", from: entity.StatusPendingPayment, to: entity.StatusConfirmed, role: entity.RoleStaff, allowed: false},
		{name: "customer cancels pending", from: entity.StatusPendingPayment, to: entity.StatusCancelled, role: entity.RoleCustomer, allowed: true},
		{name: "staff starts confirmed", from: entity.StatusConfirmed, to: entity.StatusInProgress, role: entity.RoleStaff, allowed: true},
		{name: "operator starts confirmed", from: entity.StatusConfirmed, to: entity.StatusInProgress, role: entity.RoleOperator, allowed: true},
		{name: "customer cannot start work", from: entity.StatusConfirmed, to: entity.StatusInProgress, role: entity.RoleCustomer, allowed: false},
		{name: "customer cancels confirmed", from: entity.StatusConfirmed, to: entity.StatusCancelled, role: entity.RoleCustomer, allowed: true},
		{name: "staff completes in progress", from: entity.StatusInProgress, to: entity.StatusCompleted, role: entity.RoleStaff, allowed: true},
		{name: "only operator cancels in progress", from: entity.StatusInProgress, to: entity.StatusCancelled, role: entity.RoleOperator, allowed: true},
		{name: "customer cannot cancel in progress", from: entity.StatusInProgress, to: entity.StatusCancelled, role: entity.RoleCustomer, allowed: false},
		{name: "no skipping confirmed", from: entity.StatusPendingPayment, to: entity.StatusInProgress, role: entity.RoleOperator, allowed: false},
		{name: "no skipping in progress", from: entity.StatusConfirmed, to: entity.StatusCompleted, role: entity.RoleOperator, allowed: false},
		{name: "completed is terminal", from: entity.StatusCompleted, to: entity.StatusCancelled, role: entity.RoleOperator, allowed: false},
		{name: "cancelled is terminal", from: entity.StatusCancelled, to: entity.StatusConfirmed, role: entity.RoleOperator, allowed: false},
		{name: "no reopening completed", from: entity.StatusCompleted, to: entity.StatusInProgress, role: entity.RoleOperator, allowed: false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := state.CanTransition(tc.from, tc.to, entity.Actor{Role: tc.role, ID: 1})
			if tc.allowed {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestApply(t *testing.T) {
	now := time.Date(2026, 9, 7, 10, 0, 0, 0, time.UTC)

	t.Run("confirm marks payment paid", func(t *testing.T) {
		b := entity.Booking{Status: entity.StatusPendingPayment, PaymentStatus: entity.PaymentPending}

		next, err := state.Apply(b, entity.StatusConfirmed, entity.Actor{Role: entity.RoleSystem}, now, "")

		assert.NoError(t, err)
		assert.Equal(t, entity.StatusConfirmed, next.Status)
		assert.Equal(t, entity.PaymentPaid, next.PaymentStatus)
		// input is never mutated
		assert.Equal(t, entity.StatusPendingPayment, b.Status)
	})

	t.Run("complete stamps completion time", func(t *testing.T) {
		b := entity.Booking{Status: entity.StatusInProgress, PaymentStatus: entity.PaymentPaid}

		next, err := state.Apply(b, entity.StatusCompleted, entity.Actor{Role: entity.RoleStaff, ID: 3}, now, "")

		assert.NoError(t, err)
		assert.True(t, next.CompletedAt.Valid)
		assert.Equal(t, now, next.CompletedAt.Time)
	})

	t.Run("cancel records audit fields", func(t *testing.T) {
		b := entity.Booking{Status: entity.StatusConfirmed, PaymentStatus: entity.PaymentPaid}

		next, err := state.Apply(b, entity.StatusCancelled, entity.Actor{Role: entity.RoleCustomer, ID: 7}, now, "changed plans")

		assert.NoError(t, err)
		assert.True(t, next.CancelledAt.Valid)
		assert.Equal(t, "customer:7", next.CancelledBy.String)
		assert.Equal(t, "changed plans", next.CancellationReason.String)
		assert.Equal(t, entity.PaymentRefunded, next.PaymentStatus)
	})

	t.Run("cancel of unpaid booking does not refund", func(t *testing.T) {
		b := entity.Booking{Status: entity.StatusPendingPayment, PaymentStatus: entity.PaymentPending}

		next, err := state.Apply(b, entity.StatusCancelled, entity.Actor{Role: entity.RoleCustomer, ID: 7}, now, "changed plans")

		assert.NoError(t, err)
		assert.Equal(t, entity.PaymentPending, next.PaymentStatus)
	})

	t.Run("illegal transition applies nothing", func(t *testing.T) {
		b := entity.Booking{Status: entity.StatusCompleted}

		_, err := state.Apply(b, entity.StatusCancelled, entity.Actor{Role: entity.RoleOperator, ID: 99}, now, "")

		assert.Error(t, err)
	})
}
