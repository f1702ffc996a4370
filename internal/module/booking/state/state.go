// Package state owns the booking lifecycle: which transitions exist, who
// may request them, and the side effects each one applies. Handlers and
// usecases never mutate a booking's status directly; everything goes
// through Apply so the table below is the single source of truth.
package state

import (
	"database/sql"
	"fmt"
	"time"

	"autocare-service/internal/module/booking/models/entity"
	"autocare-service/internal/pkg/errors"
)

// table maps (from, to) to the roles allowed to request the transition.
// Anything absent is illegal. Customer cancellations from confirmed are
// additionally policy-gated (see policy.go); the table only answers
// whether the edge exists for the actor at all.
var table = map[entity.BookingStatus]map[entity.BookingStatus][]entity.Role{
	entity.StatusPendingPayment: {
		entity.StatusConfirmed: {entity.RoleSystem, entity.RoleOperator},
		entity.StatusCancelled: {entity.RoleCustomer, entity.RoleOperator},
	},
	entity.StatusConfirmed: {
		entity.StatusInProgress: {entity.RoleOperator, entity.RoleStaff},
		entity.StatusCancelled:  {entity.RoleCustomer, entity.RoleOperator},
	},
	entity.StatusInProgress: {
		entity.StatusCompleted: {entity.RoleOperator, entity.RoleStaff},
		entity.StatusCancelled: {entity.RoleOperator},
	},
}

// CanTransition checks the table without applying anything.
func CanTransition(from, to entity.BookingStatus, actor entity.Actor) error {
	edges, ok := table[from]
	if !ok {
		return errors.InvalidTransition(string(from), string(to))
	}
	roles, ok := edges[to]
	if !ok {
		return errors.InvalidTransition(string(from), string(to))
	}
	for _, r := range roles {
		if r == actor.Role {
			return nil
		}
	}
	return errors.InvalidTransition(string(from), string(to))
}

// Apply validates the requested transition and returns a copy of the
// booking with the target status and its side effects set. The caller
// persists the copy with a CAS on the original status.
func Apply(b entity.Booking, to entity.BookingStatus, actor entity.Actor, now time.Time, reason string) (entity.Booking, error) {
	if err := CanTransition(b.Status, to, actor); err != nil {
		return entity.Booking{}, err
	}

	next := b
	next.Status = to
	next.UpdatedAt = sql.NullTime{Time: now, Valid: true}

	switch to {
	case entity.StatusConfirmed:
		next.PaymentStatus = entity.PaymentPaid
	case entity.StatusCompleted:
		next.CompletedAt = sql.NullTime{Time: now, Valid: true}
	case entity.StatusCancelled:
		next.CancelledAt = sql.NullTime{Time: now, Valid: true}
		next.CancelledBy = sql.NullString{String: cancelledBy(actor), Valid: true}
		next.CancellationReason = sql.NullString{String: reason, Valid: true}
		if b.PaymentStatus == entity.PaymentPaid {
			next.PaymentStatus = entity.PaymentRefunded
		}
	}

	return next, nil
}

func cancelledBy(actor entity.Actor) string {
	return fmt.Sprintf("%s:%d", actor.Role, actor.ID)
}
