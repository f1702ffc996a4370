package repositories

import (
	"context"
	"database/sql"
	"encoding/json"
	goerrors "errors"
	"fmt"
	"strings"
	"time"

	"autocare-service/config"
	"autocare-service/internal/module/booking/models/entity"
	"autocare-service/internal/module/booking/models/request"
	"autocare-service/internal/module/booking/models/response"
	"autocare-service/internal/pkg/errors"
	"autocare-service/internal/pkg/gateway"
	"autocare-service/internal/pkg/log"

	"github.com/go-redsync/redsync/v4"
	"github.com/go-redsync/redsync/v4/redis/goredis/v9"
	"github.com/hibiken/asynq"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/redis/go-redis/v9"
	circuit "github.com/rubyist/circuitbreaker"
)

type repositories struct {
	db              *sqlx.DB
	log             log.Logger
	httpClient      *circuit.HTTPClient
	redisClient     *redis.Client
	locker          *redsync.Redsync
	asynqClient     *asynq.Client
	asynqInspector  *asynq.Inspector
	cfgUserService  *config.UserServiceConfig
	cfgNotification *config.NotificationServiceConfig
	cfgBooking      *config.BookingConfig
}

type Repositories interface {
	// http
	ValidateToken(ctx context.Context, token string) (response.UserServiceValidate, error)
	SendNotification(ctx context.Context, event request.BookingEvent) error
	// redis
	NextBookingNumber(ctx context.Context, date string) (string, error)
	// db: bookings
	CheckSlotAvailable(ctx context.Context, date, slot string) (bool, error)
	FindBookedSlots(ctx context.Context, date string) ([]string, error)
	CreateBooking(ctx context.Context, booking entity.Booking) error
	FindBookingByID(ctx context.Context, id string) (entity.Booking, error)
	FindBookingsByCustomer(ctx context.Context, customerID int64) ([]entity.Booking, error)
	UpdateBookingStatus(ctx context.Context, booking entity.Booking, from entity.BookingStatus) (bool, error)
	UpdateBookingDetails(ctx context.Context, booking entity.Booking) error
	MoveBookingSlot(ctx context.Context, booking entity.Booking, newDate, newSlot string) error
	ForceDeleteBooking(ctx context.Context, id string) error
	FindServiceByID(ctx context.Context, id int64) (entity.Service, error)
	// db: payments
	InsertPayment(ctx context.Context, payment entity.Payment) (entity.Payment, error)
	FindPaymentByCheckoutID(ctx context.Context, checkoutRequestID string) (entity.Payment, error)
	FindActivePaymentByBookingID(ctx context.Context, bookingID string) (entity.Payment, error)
	SetPaymentTaskID(ctx context.Context, paymentID int64, taskID string) error
	CompletePaymentAndConfirmBooking(ctx context.Context, result gateway.Result) (bool, error)
	FailPayment(ctx context.Context, checkoutRequestID, resultCode, resultDesc string) (bool, error)
	RefundPayment(ctx context.Context, bookingID string) (bool, error)
	// scheduler
	ScheduleReconcileSweep(ctx context.Context, delay time.Duration, payload []byte) (string, error)
	DeleteTaskScheduler(ctx context.Context, taskID string) error
}

func New(
	db *sqlx.DB,
	logger log.Logger,
	httpClient *circuit.HTTPClient,
	redisClient *redis.Client,
	asynqClient *asynq.Client,
	asynqInspector *asynq.Inspector,
	cfgUserService *config.UserServiceConfig,
	cfgNotification *config.NotificationServiceConfig,
	cfgBooking *config.BookingConfig,
) Repositories {
	r := &repositories{
		db:              db,
		log:             logger,
		httpClient:      httpClient,
		redisClient:     redisClient,
		asynqClient:     asynqClient,
		asynqInspector:  asynqInspector,
		cfgUserService:  cfgUserService,
		cfgNotification: cfgNotification,
		cfgBooking:      cfgBooking,
	}
	if redisClient != nil {
		r.locker = redsync.New(goredis.NewPool(redisClient))
	}
	return r
}

// FormatBookingNumber renders the display number for a date-scoped
// sequence value: prefix, compacted date, sequence zero-padded to four
// digits and widening past 9999.
func FormatBookingNumber(prefix, date string, seq int64) string {
	compact := strings.ReplaceAll(date, "-", "")
	return fmt.Sprintf("%s-%s-%04d", prefix, compact, seq)
}

// NextBookingNumber implements Repositories. The per-date sequence is an
// atomic Redis INCR, so concurrent issuance for the same date yields
// distinct contiguous values without reading the last stored booking.
func (r *repositories) NextBookingNumber(ctx context.Context, date string) (string, error) {
	compact := strings.ReplaceAll(date, "-", "")
	seq, err := r.redisClient.Incr(ctx, "booking:seq:"+compact).Result()
	if err != nil {
		return "", errors.InternalServerError("error allocating booking number")
	}
	return FormatBookingNumber(r.cfgBooking.NumberPrefix, date, seq), nil
}

// lockContention reports whether acquiring the slot mutex failed because
// another request holds it, as opposed to the lock backend being
// unreachable. Only contention may be reported as a slot conflict.
func lockContention(err error) bool {
	var taken *redsync.ErrTaken
	return goerrors.Is(err, redsync.ErrFailed) || goerrors.As(err, &taken)
}

// lockErr maps a mutex acquisition failure for callers.
func lockErr(err error, date, slot string) error {
	if lockContention(err) {
		return errors.SlotConflict(date, slot)
	}
	return errors.InternalServerError("error acquiring slot lock")
}

// slotMutex serializes reservation attempts for one (date, slot) pair
// across all instances.
func (r *repositories) slotMutex(date, slot string) *redsync.Mutex {
	return r.locker.NewMutex(
		fmt.Sprintf("slot:%s:%s", date, slot),
		redsync.WithExpiry(8*time.Second),
		redsync.WithTries(3),
	)
}

// CheckSlotAvailable implements Repositories. Completed bookings keep
// consuming their slot for the date; only cancellation frees it.
func (r *repositories) CheckSlotAvailable(ctx context.Context, date, slot string) (bool, error) {
	query := `SELECT COUNT(1) FROM bookings WHERE booking_date = $1 AND time_slot = $2 AND status IN ('pending_payment', 'confirmed', 'in_progress', 'completed')`
	var count int
	if err := r.db.GetContext(ctx, &count, query, date, slot); err != nil {
		return false, errors.InternalServerError("error checking slot availability")
	}
	return count == 0, nil
}

// FindBookedSlots implements Repositories.
func (r *repositories) FindBookedSlots(ctx context.Context, date string) ([]string, error) {
	query := `SELECT time_slot FROM bookings WHERE booking_date = $1 AND status IN ('pending_payment', 'confirmed', 'in_progress', 'completed')`
	var booked []string
	if err := r.db.SelectContext(ctx, &booked, query, date); err != nil {
		return nil, errors.InternalServerError("error listing booked slots")
	}
	return booked, nil
}

// CreateBooking implements Repositories. The slot mutex makes the
// check-then-insert race-free across callers; the partial unique index on
// (booking_date, time_slot) for active statuses is the storage backstop,
// so even a lost lock cannot double-book.
func (r *repositories) CreateBooking(ctx context.Context, booking entity.Booking) error {
	mutex := r.slotMutex(booking.BookingDate, booking.TimeSlot)
	if err := mutex.LockContext(ctx); err != nil {
		return lockErr(err, booking.BookingDate, booking.TimeSlot)
	}
	defer mutex.UnlockContext(ctx)

	available, err := r.CheckSlotAvailable(ctx, booking.BookingDate, booking.TimeSlot)
	if err != nil {
		return err
	}
	if !available {
		return errors.SlotConflict(booking.BookingDate, booking.TimeSlot)
	}

	_, err = r.db.NamedExecContext(ctx, `
		INSERT INTO bookings (
			id, booking_number, customer_id, service_id, staff_id,
			vehicle_make, vehicle_model, vehicle_plate,
			booking_date, time_slot, status, payment_status, total_amount,
			issue_description, created_at
		) VALUES (
			:id, :booking_number, :customer_id, :service_id, :staff_id,
			:vehicle_make, :vehicle_model, :vehicle_plate,
			:booking_date, :time_slot, :status, :payment_status, :total_amount,
			:issue_description, :created_at
		)
	`, booking)
	if err != nil {
		if isUniqueViolation(err) {
			return errors.SlotConflict(booking.BookingDate, booking.TimeSlot)
		}
		return errors.InternalServerError("error inserting booking")
	}

	return nil
}

// FindBookingByID implements Repositories.
func (r *repositories) FindBookingByID(ctx context.Context, id string) (entity.Booking, error) {
	query := `SELECT * FROM bookings WHERE id = $1`
	var booking entity.Booking
	err := r.db.GetContext(ctx, &booking, query, id)
	if err == sql.ErrNoRows {
		return entity.Booking{}, errors.NotFound("booking not found")
	}
	if err != nil {
		return entity.Booking{}, errors.InternalServerError("error find booking by id")
	}
	return booking, nil
}

// FindBookingsByCustomer implements Repositories.
func (r *repositories) FindBookingsByCustomer(ctx context.Context, customerID int64) ([]entity.Booking, error) {
	query := `SELECT * FROM bookings WHERE customer_id = $1 ORDER BY booking_date DESC, time_slot`
	var bookings []entity.Booking
	if err := r.db.SelectContext(ctx, &bookings, query, customerID); err != nil {
		return nil, errors.InternalServerError("error find bookings by customer")
	}
	return bookings, nil
}

// UpdateBookingStatus implements Repositories. The update is guarded on
// the status the caller read, so two racing transitions cannot both win;
// the loser observes applied=false and re-reads.
func (r *repositories) UpdateBookingStatus(ctx context.Context, booking entity.Booking, from entity.BookingStatus) (bool, error) {
	res, err := r.db.ExecContext(ctx, `
		UPDATE bookings
		SET status = $1, payment_status = $2, payment_reference = $3,
			cancelled_at = $4, cancelled_by = $5, cancellation_reason = $6,
			completed_at = $7, updated_at = $8
		WHERE id = $9 AND status = $10
	`,
		booking.Status, booking.PaymentStatus, booking.PaymentReference,
		booking.CancelledAt, booking.CancelledBy, booking.CancellationReason,
		booking.CompletedAt, booking.UpdatedAt,
		booking.ID, from,
	)
	if err != nil {
		return false, errors.InternalServerError("error updating booking status")
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return false, errors.InternalServerError("error updating booking status")
	}
	return rows == 1, nil
}

// UpdateBookingDetails implements Repositories. Covers staff reassignment
// and notes; never touches status or the slot.
func (r *repositories) UpdateBookingDetails(ctx context.Context, booking entity.Booking) error {
	_, err := r.db.ExecContext(ctx, `
		UPDATE bookings SET staff_id = $1, admin_notes = $2, updated_at = $3 WHERE id = $4
	`, booking.StaffID, booking.AdminNotes, booking.UpdatedAt, booking.ID)
	if err != nil {
		return errors.InternalServerError("error updating booking details")
	}
	return nil
}

// MoveBookingSlot implements Repositories. Re-runs the availability check
// under the new slot's mutex before moving, closing the edit-path gap
// where a date/time change could land on an occupied slot.
func (r *repositories) MoveBookingSlot(ctx context.Context, booking entity.Booking, newDate, newSlot string) error {
	mutex := r.slotMutex(newDate, newSlot)
	if err := mutex.LockContext(ctx); err != nil {
		return lockErr(err, newDate, newSlot)
	}
	defer mutex.UnlockContext(ctx)

	available, err := r.CheckSlotAvailable(ctx, newDate, newSlot)
	if err != nil {
		return err
	}
	if !available {
		return errors.SlotConflict(newDate, newSlot)
	}

	_, err = r.db.ExecContext(ctx, `
		UPDATE bookings SET booking_date = $1, time_slot = $2, updated_at = $3 WHERE id = $4
	`, newDate, newSlot, time.Now(), booking.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return errors.SlotConflict(newDate, newSlot)
		}
		return errors.InternalServerError("error moving booking slot")
	}

	return nil
}

// ForceDeleteBooking implements Repositories. Purges the payment attempts
// and the booking row in one transaction; the booking number is never
// reissued because the sequence counter is independent of stored rows.
func (r *repositories) ForceDeleteBooking(ctx context.Context, id string) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return errors.InternalServerError("error starting transaction")
	}

	if _, err = tx.ExecContext(ctx, `DELETE FROM payments WHERE booking_id = $1`, id); err != nil {
		tx.Rollback()
		return errors.InternalServerError("error purging payments")
	}

	res, err := tx.ExecContext(ctx, `DELETE FROM bookings WHERE id = $1`, id)
	if err != nil {
		tx.Rollback()
		return errors.InternalServerError("error deleting booking")
	}
	rows, _ := res.RowsAffected()
	if rows == 0 {
		tx.Rollback()
		return errors.NotFound("booking not found")
	}

	if err := tx.Commit(); err != nil {
		return errors.InternalServerError("error committing transaction")
	}
	return nil
}

// FindServiceByID implements Repositories.
func (r *repositories) FindServiceByID(ctx context.Context, id int64) (entity.Service, error) {
	query := `SELECT id, name, price FROM services WHERE id = $1`
	var svc entity.Service
	err := r.db.GetContext(ctx, &svc, query, id)
	if err == sql.ErrNoRows {
		return entity.Service{}, errors.NotFound("service not found")
	}
	if err != nil {
		return entity.Service{}, errors.InternalServerError("error find service by id")
	}
	return svc, nil
}

func isUniqueViolation(err error) bool {
	if pqErr, ok := err.(*pq.Error); ok {
		return pqErr.Code == "23505"
	}
	return false
}

func (r *repositories) ValidateToken(ctx context.Context, token string) (response.UserServiceValidate, error) {
	url := fmt.Sprintf("http://%s:%s/api/private/token/validate?token=%s", r.cfgUserService.Host, r.cfgUserService.Port, token)
	resp, err := r.httpClient.Get(url)
	if err != nil {
		return response.UserServiceValidate{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != 200 {
		r.log.Error(ctx, "invalid token", resp.StatusCode)
		return response.UserServiceValidate{}, errors.UnauthorizedError("invalid token")
	}

	var respData response.UserServiceValidate
	dec := json.NewDecoder(resp.Body)
	if err := dec.Decode(&respData); err != nil {
		return response.UserServiceValidate{}, err
	}

	if !respData.IsValid {
		r.log.Error(ctx, "invalid token", resp.StatusCode)
		return response.UserServiceValidate{}, errors.UnauthorizedError("invalid token")
	}

	return respData, nil
}

// SendNotification implements Repositories. Called only by the async
// notifier consumer; delivery failures bubble up to the poison queue,
// never into booking or payment state.
func (r *repositories) SendNotification(ctx context.Context, event request.BookingEvent) error {
	url := fmt.Sprintf("http://%s:%s/api/private/notifications", r.cfgNotification.Host, r.cfgNotification.Port)

	body, err := json.Marshal(event)
	if err != nil {
		return err
	}

	resp, err := r.httpClient.Post(url, "application/json", strings.NewReader(string(body)))
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return fmt.Errorf("notification service returned status %d", resp.StatusCode)
	}
	return nil
}
