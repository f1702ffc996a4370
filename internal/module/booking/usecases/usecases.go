package usecases

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"autocare-service/config"
	"autocare-service/internal/module/booking/models/entity"
	"autocare-service/internal/module/booking/models/request"
	"autocare-service/internal/module/booking/models/response"
	"autocare-service/internal/module/booking/repositories"
	"autocare-service/internal/module/booking/slots"
	"autocare-service/internal/module/booking/state"
	"autocare-service/internal/pkg/errors"
	"autocare-service/internal/pkg/gateway"
	"autocare-service/internal/pkg/log"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/goccy/go-json"
	"github.com/google/uuid"
)

const eventTopic = "booking_events"

type usecase struct {
	repo    repositories.Repositories
	log     log.Logger
	publish message.Publisher
	gateway gateway.Client
	cfg     *config.BookingConfig
	loc     *time.Location
}

type Usecase interface {
	// bookings
	ListAvailability(ctx context.Context, date string) (response.SlotAvailability, error)
	CreateBooking(ctx context.Context, payload *request.CreateBooking, customerID int64, emailUser string) (response.Booking, error)
	ShowBookings(ctx context.Context, customerID int64) ([]response.Booking, error)
	CancelBooking(ctx context.Context, bookingID, reason string, actor entity.Actor) error
	TransitionBooking(ctx context.Context, bookingID string, target entity.BookingStatus, actor entity.Actor) error
	EditBooking(ctx context.Context, bookingID string, payload *request.EditBooking, actor entity.Actor) error
	ForceDeleteBooking(ctx context.Context, bookingID string, actor entity.Actor) error
	// payments
	InitiatePayment(ctx context.Context, payload *request.InitiatePayment, customerID int64, emailUser string) (response.PaymentInitiated, error)
	HandleGatewayCallback(ctx context.Context, payload []byte) error
	QueryPaymentStatus(ctx context.Context, checkoutRequestID string, customerID int64) (response.PaymentStatus, error)
	ReconcileSweep(ctx context.Context, payload *request.ReconcileSweep) error
	// notifier
	DispatchNotification(ctx context.Context, event *request.BookingEvent) error
}

func New(repo repositories.Repositories, logger log.Logger, publish message.Publisher, gw gateway.Client, cfg *config.BookingConfig) Usecase {
	loc, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		loc = time.UTC
	}
	return &usecase{
		repo:    repo,
		log:     logger,
		publish: publish,
		gateway: gw,
		cfg:     cfg,
		loc:     loc,
	}
}

// ListAvailability implements Usecase. Availability is the fixed grid
// minus bookings still holding their slot; weekends report an empty grid.
func (u *usecase) ListAvailability(ctx context.Context, date string) (response.SlotAvailability, error) {
	day, err := slots.ParseDate(date, u.loc)
	if err != nil {
		return response.SlotAvailability{}, errors.BadRequest(err.Error())
	}

	resp := response.SlotAvailability{Date: date}
	if !slots.BusinessDay(day) {
		return resp, nil
	}

	booked, err := u.repo.FindBookedSlots(ctx, date)
	if err != nil {
		return response.SlotAvailability{}, err
	}
	taken := make(map[string]bool, len(booked))
	for _, s := range booked {
		taken[s] = true
	}

	for _, s := range slots.Grid {
		resp.Slots = append(resp.Slots, response.Slot{TimeSlot: s, Available: !taken[s]})
	}
	return resp, nil
}

// CreateBooking implements Usecase.
func (u *usecase) CreateBooking(ctx context.Context, payload *request.CreateBooking, customerID int64, emailUser string) (response.Booking, error) {
	now := time.Now().In(u.loc)
	if err := slots.ValidateBookable(payload.BookingDate, payload.TimeSlot, now, u.cfg.WindowDays, u.loc); err != nil {
		return response.Booking{}, errors.BadRequest(err.Error())
	}

	svc, err := u.repo.FindServiceByID(ctx, payload.ServiceID)
	if err != nil {
		return response.Booking{}, err
	}

	number, err := u.repo.NextBookingNumber(ctx, payload.BookingDate)
	if err != nil {
		return response.Booking{}, err
	}

	booking := entity.Booking{
		ID:               uuid.New(),
		BookingNumber:    number,
		CustomerID:       customerID,
		ServiceID:        svc.ID,
		VehicleMake:      payload.VehicleMake,
		VehicleModel:     payload.VehicleModel,
		VehiclePlate:     payload.VehiclePlate,
		BookingDate:      payload.BookingDate,
		TimeSlot:         payload.TimeSlot,
		Status:           entity.StatusPendingPayment,
		PaymentStatus:    entity.PaymentPending,
		TotalAmount:      svc.Price, // copied once; later price changes never touch it
		IssueDescription: payload.IssueDescription,
		CreatedAt:        now,
	}

	if err := u.repo.CreateBooking(ctx, booking); err != nil {
		return response.Booking{}, err
	}

	u.publishEvent(ctx, request.BookingEvent{
		Kind:           request.EventPaymentInvoice,
		BookingID:      booking.ID.String(),
		BookingNumber:  booking.BookingNumber,
		CustomerID:     customerID,
		EmailRecipient: emailUser,
		Amount:         booking.TotalAmount,
		Message:        fmt.Sprintf("booking %s reserved for %s %s, awaiting payment", number, payload.BookingDate, payload.TimeSlot),
	})

	return toBookingResponse(booking), nil
}

// ShowBookings implements Usecase.
func (u *usecase) ShowBookings(ctx context.Context, customerID int64) ([]response.Booking, error) {
	bookings, err := u.repo.FindBookingsByCustomer(ctx, customerID)
	if err != nil {
		return nil, err
	}

	resp := make([]response.Booking, 0, len(bookings))
	for _, b := range bookings {
		resp = append(resp, toBookingResponse(b))
	}
	return resp, nil
}

// CancelBooking implements Usecase.
func (u *usecase) CancelBooking(ctx context.Context, bookingID, reason string, actor entity.Actor) error {
	booking, err := u.repo.FindBookingByID(ctx, bookingID)
	if err != nil {
		return err
	}

	if actor.Role == entity.RoleCustomer && booking.CustomerID != actor.ID {
		return errors.NotFound("booking not found")
	}

	now := time.Now().In(u.loc)
	window := time.Duration(u.cfg.CancellationWindowHours) * time.Hour
	if err := state.CancellationAllowed(now, booking, actor, window, u.loc); err != nil {
		return err
	}

	next, err := state.Apply(booking, entity.StatusCancelled, actor, now, reason)
	if err != nil {
		return err
	}

	applied, err := u.repo.UpdateBookingStatus(ctx, next, booking.Status)
	if err != nil {
		return err
	}
	if !applied {
		return errors.Conflict("booking changed concurrently, please retry")
	}

	if booking.PaymentStatus == entity.PaymentPaid {
		if _, err := u.repo.RefundPayment(ctx, booking.ID.String()); err != nil {
			u.log.Error(ctx, "error flagging payment refunded", err)
		}
	}

	u.publishEvent(ctx, request.BookingEvent{
		Kind:          request.EventBookingCancelled,
		BookingID:     booking.ID.String(),
		BookingNumber: booking.BookingNumber,
		CustomerID:    booking.CustomerID,
		Message:       fmt.Sprintf("booking %s cancelled: %s", booking.BookingNumber, reason),
	})

	return nil
}

// TransitionBooking implements Usecase. The staff-driven confirm, start
// and complete paths; validation is entirely the transition table's.
func (u *usecase) TransitionBooking(ctx context.Context, bookingID string, target entity.BookingStatus, actor entity.Actor) error {
	booking, err := u.repo.FindBookingByID(ctx, bookingID)
	if err != nil {
		return err
	}

	now := time.Now().In(u.loc)
	next, err := state.Apply(booking, target, actor, now, "")
	if err != nil {
		return err
	}

	applied, err := u.repo.UpdateBookingStatus(ctx, next, booking.Status)
	if err != nil {
		return err
	}
	if !applied {
		return errors.Conflict("booking changed concurrently, please retry")
	}

	if target == entity.StatusCompleted {
		u.publishEvent(ctx, request.BookingEvent{
			Kind:          request.EventBookingCompleted,
			BookingID:     booking.ID.String(),
			BookingNumber: booking.BookingNumber,
			CustomerID:    booking.CustomerID,
			Message:       fmt.Sprintf("booking %s completed", booking.BookingNumber),
		})
	}

	return nil
}

// EditBooking implements Usecase. Operator edits of schedule, staff and
// notes on a non-terminal booking; a date or slot change re-validates
// availability at the requested slot before moving.
func (u *usecase) EditBooking(ctx context.Context, bookingID string, payload *request.EditBooking, actor entity.Actor) error {
	if actor.Role != entity.RoleOperator {
		return errors.ForbiddenError("only operators may edit bookings")
	}

	booking, err := u.repo.FindBookingByID(ctx, bookingID)
	if err != nil {
		return err
	}
	if booking.Status.Terminal() {
		return errors.UnprocessableEntity(fmt.Sprintf("cannot edit a %s booking", booking.Status))
	}

	now := time.Now().In(u.loc)

	newDate, newSlot := booking.BookingDate, booking.TimeSlot
	if payload.BookingDate != nil {
		newDate = *payload.BookingDate
	}
	if payload.TimeSlot != nil {
		newSlot = *payload.TimeSlot
	}
	if newDate != booking.BookingDate || newSlot != booking.TimeSlot {
		if err := slots.ValidateBookable(newDate, newSlot, now, u.cfg.WindowDays, u.loc); err != nil {
			return errors.BadRequest(err.Error())
		}
		if err := u.repo.MoveBookingSlot(ctx, booking, newDate, newSlot); err != nil {
			return err
		}
	}

	if payload.StaffID != nil || payload.AdminNotes != nil {
		if payload.StaffID != nil {
			booking.StaffID = sql.NullInt64{Int64: *payload.StaffID, Valid: true}
		}
		if payload.AdminNotes != nil {
			booking.AdminNotes = sql.NullString{String: *payload.AdminNotes, Valid: true}
		}
		booking.UpdatedAt = sql.NullTime{Time: now, Valid: true}
		if err := u.repo.UpdateBookingDetails(ctx, booking); err != nil {
			return err
		}
	}

	return nil
}

// ForceDeleteBooking implements Usecase. The audited, operator-only purge
// of a booking and its payment attempts; distinct from cancellation.
func (u *usecase) ForceDeleteBooking(ctx context.Context, bookingID string, actor entity.Actor) error {
	if actor.Role != entity.RoleOperator {
		return errors.ForbiddenError("only operators may force delete bookings")
	}

	booking, err := u.repo.FindBookingByID(ctx, bookingID)
	if err != nil {
		return err
	}

	u.log.Info(ctx, "force delete booking",
		fmt.Sprintf("booking=%s number=%s operator=%d", booking.ID, booking.BookingNumber, actor.ID))

	return u.repo.ForceDeleteBooking(ctx, bookingID)
}

// DispatchNotification implements Usecase. Runs on the notifier consumer,
// off the request path.
func (u *usecase) DispatchNotification(ctx context.Context, event *request.BookingEvent) error {
	return u.repo.SendNotification(ctx, *event)
}

// publishEvent emits an outbound event after a state commit. Fire and
// forget: a publish failure is logged and never unwinds the commit.
func (u *usecase) publishEvent(ctx context.Context, event request.BookingEvent) {
	payload, err := json.Marshal(event)
	if err != nil {
		u.log.Error(ctx, "error marshal booking event", err)
		return
	}
	if err := u.publish.Publish(eventTopic, message.NewMessage(watermill.NewUUID(), payload)); err != nil {
		u.log.Error(ctx, "error publish booking event", err)
	}
}

func toBookingResponse(b entity.Booking) response.Booking {
	return response.Booking{
		ID:               b.ID.String(),
		BookingNumber:    b.BookingNumber,
		ServiceID:        b.ServiceID,
		StaffID:          b.StaffID.Int64,
		BookingDate:      b.BookingDate,
		TimeSlot:         b.TimeSlot,
		Status:           string(b.Status),
		PaymentStatus:    string(b.PaymentStatus),
		TotalAmount:      b.TotalAmount,
		PaymentReference: b.PaymentReference.String,
		VehiclePlate:     b.VehiclePlate,
	}
}
