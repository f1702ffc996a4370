package repositories_test

import (
	"context"
	"database/sql"
	"testing"

	log_internal "autocare-service/internal/pkg/log"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	sqlxmock "github.com/zhashkevych/go-sqlxmock"

	"autocare-service/internal/module/booking/models/entity"
	"autocare-service/internal/module/booking/repositories"
	"autocare-service/internal/pkg/errors"
	"autocare-service/internal/pkg/gateway"
	"autocare-service/internal/pkg/log"
)

var (
	mock    sqlxmock.Sqlmock
	dbx     *sqlx.DB
	logMock log.Logger
)

func setup() {
	dbx, mock, _ = sqlxmock.Newx()
	log_internal.Init(log_internal.SetupLogger())
	logMock = log_internal.GetLogger()
}

func TestFindBookingByID(t *testing.T) {
	setup()
	repo := repositories.New(dbx, logMock, nil, nil, nil, nil, nil, nil, nil)

	UUID := uuid.New()

	t.Run("booking found", func(t *testing.T) {
		rows := sqlxmock.NewRows([]string{
			"id", "booking_number", "customer_id", "service_id", "booking_date", "time_slot", "status", "payment_status", "total_amount",
		}).AddRow(UUID, "ACS-20260907-0001", int64(7), int64(1), "2026-09-07", "08:00-10:00", "confirmed", "paid", float64(3500))
		mock.ExpectQuery("SELECT (.+) FROM bookings WHERE id =").
			WithArgs(UUID.String()).
			WillReturnRows(rows)

		booking, err := repo.FindBookingByID(context.Background(), UUID.String())

		assert.NoError(t, err)
		assert.Equal(t, UUID, booking.ID)
		assert.Equal(t, "ACS-20260907-0001", booking.BookingNumber)
		assert.Equal(t, entity.StatusConfirmed, booking.Status)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("booking not found", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM bookings WHERE id =").
			WithArgs(UUID.String()).
			WillReturnError(sql.ErrNoRows)

		_, err := repo.FindBookingByID(context.Background(), UUID.String())

		assert.Equal(t, errors.NotFound("booking not found"), err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestCheckSlotAvailable(t *testing.T) {
	setup()
	repo := repositories.New(dbx, logMock, nil, nil, nil, nil, nil, nil, nil)

	// The query must count completed bookings too: a finished service still
	// consumed its slot for the day, only cancellation frees it.
	pattern := `SELECT COUNT(.+) FROM bookings WHERE booking_date = (.+) AND time_slot = (.+) AND status IN \('pending_payment', 'confirmed', 'in_progress', 'completed'\)`

	testCases := []struct {
		name      string
		count     int
		available bool
	}{
		{name: "slot free", count: 0, available: true},
		{name: "slot held by active booking", count: 1, available: false},
		{name: "slot consumed by completed booking", count: 1, available: false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			rows := sqlxmock.NewRows([]string{"count"}).AddRow(tc.count)
			mock.ExpectQuery(pattern).
				WithArgs("2026-09-07", "08:00-10:00").
				WillReturnRows(rows)

			available, err := repo.CheckSlotAvailable(context.Background(), "2026-09-07", "08:00-10:00")

			assert.NoError(t, err)
			assert.Equal(t, tc.available, available)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestFindBookedSlots(t *testing.T) {
	setup()
	repo := repositories.New(dbx, logMock, nil, nil, nil, nil, nil, nil, nil)

	t.Run("completed bookings stay in the booked set", func(t *testing.T) {
		rows := sqlxmock.NewRows([]string{"time_slot"}).
			AddRow("08:00-10:00").
			AddRow("14:00-16:00")
		mock.ExpectQuery(`SELECT time_slot FROM bookings WHERE booking_date = (.+) AND status IN \('pending_payment', 'confirmed', 'in_progress', 'completed'\)`).
			WithArgs("2026-09-07").
			WillReturnRows(rows)

		booked, err := repo.FindBookedSlots(context.Background(), "2026-09-07")

		assert.NoError(t, err)
		assert.Equal(t, []string{"08:00-10:00", "14:00-16:00"}, booked)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestFindServiceByID(t *testing.T) {
	setup()
	repo := repositories.New(dbx, logMock, nil, nil, nil, nil, nil, nil, nil)

	t.Run("service found", func(t *testing.T) {
		rows := sqlxmock.NewRows([]string{"id", "name", "price"}).
			AddRow(int64(1), "Full Service", float64(3500))
		mock.ExpectQuery("SELECT id, name, price FROM services WHERE id =").
			WithArgs(int64(1)).
			WillReturnRows(rows)

		svc, err := repo.FindServiceByID(context.Background(), 1)

		assert.NoError(t, err)
		assert.Equal(t, float64(3500), svc.Price)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("unknown service", func(t *testing.T) {
		mock.ExpectQuery("SELECT id, name, price FROM services WHERE id =").
			WithArgs(int64(42)).
			WillReturnError(sql.ErrNoRows)

		_, err := repo.FindServiceByID(context.Background(), 42)

		assert.Equal(t, errors.NotFound("service not found"), err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestUpdateBookingStatus(t *testing.T) {
	setup()
	repo := repositories.New(dbx, logMock, nil, nil, nil, nil, nil, nil, nil)

	booking := entity.Booking{
		ID:            uuid.New(),
		Status:        entity.StatusCancelled,
		PaymentStatus: entity.PaymentRefunded,
	}

	t.Run("guard matches and the update wins", func(t *testing.T) {
		mock.ExpectExec("UPDATE bookings").
			WillReturnResult(sqlxmock.NewResult(0, 1))

		applied, err := repo.UpdateBookingStatus(context.Background(), booking, entity.StatusConfirmed)

		assert.NoError(t, err)
		assert.True(t, applied)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("guard mismatch is reported, not an error", func(t *testing.T) {
		mock.ExpectExec("UPDATE bookings").
			WillReturnResult(sqlxmock.NewResult(0, 0))

		applied, err := repo.UpdateBookingStatus(context.Background(), booking, entity.StatusConfirmed)

		assert.NoError(t, err)
		assert.False(t, applied)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestCompletePaymentAndConfirmBooking(t *testing.T) {
	setup()
	repo := repositories.New(dbx, logMock, nil, nil, nil, nil, nil, nil, nil)

	bookingID := uuid.New()
	result := gateway.Result{
		Outcome:           gateway.OutcomeSuccess,
		CheckoutRequestID: "ws_CO_191220191020363925",
		ResultDesc:        "The service request is processed successfully.",
		Receipt:           "NLJ7RT61SV",
	}

	t.Run("first success signal commits payment and booking together", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectQuery("UPDATE payments").
			WillReturnRows(sqlxmock.NewRows([]string{"booking_id"}).AddRow(bookingID.String()))
		mock.ExpectExec("UPDATE bookings").
			WillReturnResult(sqlxmock.NewResult(0, 1))
		mock.ExpectCommit()

		applied, err := repo.CompletePaymentAndConfirmBooking(context.Background(), result)

		assert.NoError(t, err)
		assert.True(t, applied)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("second success signal rolls back as a no-op", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectQuery("UPDATE payments").
			WillReturnError(sql.ErrNoRows)
		mock.ExpectRollback()

		applied, err := repo.CompletePaymentAndConfirmBooking(context.Background(), result)

		assert.NoError(t, err)
		assert.False(t, applied)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestFailPayment(t *testing.T) {
	setup()
	repo := repositories.New(dbx, logMock, nil, nil, nil, nil, nil, nil, nil)

	t.Run("processing payment is marked failed", func(t *testing.T) {
		mock.ExpectExec("UPDATE payments").
			WillReturnResult(sqlxmock.NewResult(0, 1))

		applied, err := repo.FailPayment(context.Background(), "ws_CO_191220191020363925", "1032", "Request cancelled by user")

		assert.NoError(t, err)
		assert.True(t, applied)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("failure after success is a no-op", func(t *testing.T) {
		mock.ExpectExec("UPDATE payments").
			WillReturnResult(sqlxmock.NewResult(0, 0))

		applied, err := repo.FailPayment(context.Background(), "ws_CO_191220191020363925", "1032", "Request cancelled by user")

		assert.NoError(t, err)
		assert.False(t, applied)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestFindActivePaymentByBookingID(t *testing.T) {
	setup()
	repo := repositories.New(dbx, logMock, nil, nil, nil, nil, nil, nil, nil)

	bookingID := uuid.New()

	t.Run("active attempt exists", func(t *testing.T) {
		rows := sqlxmock.NewRows([]string{"id", "booking_id", "customer_id", "amount", "checkout_request_id", "status"}).
			AddRow(int64(1), bookingID, int64(7), float64(3500), "ws_CO_191220191020363925", "processing")
		mock.ExpectQuery("SELECT (.+) FROM payments WHERE booking_id =").
			WithArgs(bookingID.String()).
			WillReturnRows(rows)

		payment, err := repo.FindActivePaymentByBookingID(context.Background(), bookingID.String())

		assert.NoError(t, err)
		assert.Equal(t, entity.PaymentStateProcessing, payment.Status)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("no active attempt", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM payments WHERE booking_id =").
			WithArgs(bookingID.String()).
			WillReturnError(sql.ErrNoRows)

		_, err := repo.FindActivePaymentByBookingID(context.Background(), bookingID.String())

		assert.Equal(t, errors.NotFound("no active payment for booking"), err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestRefundPayment(t *testing.T) {
	setup()
	repo := repositories.New(dbx, logMock, nil, nil, nil, nil, nil, nil, nil)

	bookingID := uuid.New()

	t.Run("completed payment is flagged refunded", func(t *testing.T) {
		mock.ExpectExec("UPDATE payments").
			WillReturnResult(sqlxmock.NewResult(0, 1))

		applied, err := repo.RefundPayment(context.Background(), bookingID.String())

		assert.NoError(t, err)
		assert.True(t, applied)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("nothing completed means nothing to refund", func(t *testing.T) {
		mock.ExpectExec("UPDATE payments").
			WillReturnResult(sqlxmock.NewResult(0, 0))

		applied, err := repo.RefundPayment(context.Background(), bookingID.String())

		assert.NoError(t, err)
		assert.False(t, applied)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestFormatBookingNumber(t *testing.T) {
	testCases := []struct {
		name     string
		prefix   string
		date     string
		seq      int64
		expected string
	}{
		{name: "first booking of the day", prefix: "ACS", date: "2026-09-07", seq: 1, expected: "ACS-20260907-0001"},
		{name: "sequence is zero padded", prefix: "ACS", date: "2026-09-07", seq: 42, expected: "ACS-20260907-0042"},
		{name: "sequence widens past four digits", prefix: "ACS", date: "2026-09-07", seq: 10001, expected: "ACS-20260907-10001"},
		{name: "date changes the number", prefix: "ACS", date: "2026-09-08", seq: 1, expected: "ACS-20260908-0001"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := repositories.FormatBookingNumber(tc.prefix, tc.date, tc.seq)
			assert.Equal(t, tc.expected, got)
		})
	}

	t.Run("distinct sequences never collide", func(t *testing.T) {
		seen := map[string]bool{}
		for seq := int64(1); seq <= 200; seq++ {
			n := repositories.FormatBookingNumber("ACS", "2026-09-07", seq)
			assert.False(t, seen[n])
			seen[n] = true
		}
	})
}
