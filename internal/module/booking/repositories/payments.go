package repositories

import (
	"context"
	"database/sql"
	"time"

	"autocare-service/internal/module/booking/models/entity"
	"autocare-service/internal/pkg/errors"
	"autocare-service/internal/pkg/gateway"
	"autocare-service/internal/pkg/scheduler"

	"github.com/hibiken/asynq"
)

// InsertPayment implements Repositories.
func (r *repositories) InsertPayment(ctx context.Context, payment entity.Payment) (entity.Payment, error) {
	query := `
		INSERT INTO payments (
			booking_id, customer_id, amount, phone_number,
			merchant_request_id, checkout_request_id, status, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id
	`
	err := r.db.GetContext(ctx, &payment.ID, query,
		payment.BookingID, payment.CustomerID, payment.Amount, payment.PhoneNumber,
		payment.MerchantRequestID, payment.CheckoutRequestID, payment.Status, payment.CreatedAt,
	)
	if err != nil {
		return entity.Payment{}, errors.InternalServerError("error inserting payment")
	}
	return payment, nil
}

// FindPaymentByCheckoutID implements Repositories. A missing row is
// reported as NotFound so the reconciler can treat it as an anomaly
// rather than a storage failure.
func (r *repositories) FindPaymentByCheckoutID(ctx context.Context, checkoutRequestID string) (entity.Payment, error) {
	query := `SELECT * FROM payments WHERE checkout_request_id = $1`
	var payment entity.Payment
	err := r.db.GetContext(ctx, &payment, query, checkoutRequestID)
	if err == sql.ErrNoRows {
		return entity.Payment{}, errors.NotFound("payment not found")
	}
	if err != nil {
		return entity.Payment{}, errors.InternalServerError("error find payment by checkout id")
	}
	return payment, nil
}

// FindActivePaymentByBookingID implements Repositories. Returns the
// booking's pending/processing attempt if one exists; NotFound otherwise.
func (r *repositories) FindActivePaymentByBookingID(ctx context.Context, bookingID string) (entity.Payment, error) {
	query := `SELECT * FROM payments WHERE booking_id = $1 AND status IN ('pending', 'processing') ORDER BY created_at DESC LIMIT 1`
	var payment entity.Payment
	err := r.db.GetContext(ctx, &payment, query, bookingID)
	if err == sql.ErrNoRows {
		return entity.Payment{}, errors.NotFound("no active payment for booking")
	}
	if err != nil {
		return entity.Payment{}, errors.InternalServerError("error find active payment")
	}
	return payment, nil
}

// SetPaymentTaskID implements Repositories.
func (r *repositories) SetPaymentTaskID(ctx context.Context, paymentID int64, taskID string) error {
	_, err := r.db.ExecContext(ctx, `UPDATE payments SET task_id = $1 WHERE id = $2`, taskID, paymentID)
	if err != nil {
		return errors.InternalServerError("error storing payment task id")
	}
	return nil
}

// CompletePaymentAndConfirmBooking implements Repositories. The composite
// success commit of the reconciler: one transaction marks the payment
// completed and the booking confirmed. The payment update is conditioned
// on a non-terminal status, so the second of two racing success signals
// matches zero rows and the whole transaction becomes a no-op; applied
// reports whether this call was the one that won.
func (r *repositories) CompletePaymentAndConfirmBooking(ctx context.Context, result gateway.Result) (bool, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return false, errors.InternalServerError("error starting transaction")
	}

	txnDate := sql.NullTime{Time: result.TxnTime, Valid: !result.TxnTime.IsZero()}

	var bookingID string
	err = tx.GetContext(ctx, &bookingID, `
		UPDATE payments
		SET status = 'completed', result_code = $2, result_desc = $3,
			receipt_number = $4, transaction_date = $5, updated_at = $6
		WHERE checkout_request_id = $1 AND status IN ('pending', 'processing')
		RETURNING booking_id
	`, result.CheckoutRequestID, "0", result.ResultDesc, result.Receipt, txnDate, time.Now())
	if err == sql.ErrNoRows {
		tx.Rollback()
		return false, nil
	}
	if err != nil {
		tx.Rollback()
		return false, errors.InternalServerError("error completing payment")
	}

	_, err = tx.ExecContext(ctx, `
		UPDATE bookings
		SET status = 'confirmed', payment_status = 'paid', payment_reference = $2, updated_at = $3
		WHERE id = $1 AND status = 'pending_payment'
	`, bookingID, result.Receipt, time.Now())
	if err != nil {
		tx.Rollback()
		return false, errors.InternalServerError("error confirming booking")
	}

	if err := tx.Commit(); err != nil {
		return false, errors.InternalServerError("error committing transaction")
	}
	return true, nil
}

// FailPayment implements Repositories. Definitive failure from the
// webhook channel; same non-terminal guard, so a failure arriving after a
// success (or a duplicate failure) is a no-op.
func (r *repositories) FailPayment(ctx context.Context, checkoutRequestID, resultCode, resultDesc string) (bool, error) {
	res, err := r.db.ExecContext(ctx, `
		UPDATE payments
		SET status = 'failed', result_code = $2, result_desc = $3, updated_at = $4
		WHERE checkout_request_id = $1 AND status IN ('pending', 'processing')
	`, checkoutRequestID, resultCode, resultDesc, time.Now())
	if err != nil {
		return false, errors.InternalServerError("error failing payment")
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return false, errors.InternalServerError("error failing payment")
	}
	return rows == 1, nil
}

// RefundPayment implements Repositories. Ledger book-keeping when a paid
// booking is cancelled: the completed payment row is flagged refunded so
// it matches the booking's payment_status. The disbursement itself
// happens out of band. Guarded on 'completed' so a cancel racing a late
// failure signal cannot refund a payment that never completed.
func (r *repositories) RefundPayment(ctx context.Context, bookingID string) (bool, error) {
	res, err := r.db.ExecContext(ctx, `
		UPDATE payments
		SET status = 'refunded', updated_at = $2
		WHERE booking_id = $1 AND status = 'completed'
	`, bookingID, time.Now())
	if err != nil {
		return false, errors.InternalServerError("error refunding payment")
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return false, errors.InternalServerError("error refunding payment")
	}
	return rows == 1, nil
}

// ScheduleReconcileSweep implements Repositories.
func (r *repositories) ScheduleReconcileSweep(ctx context.Context, delay time.Duration, payload []byte) (string, error) {
	task := asynq.NewTask(scheduler.TypePaymentReconcile, payload)
	info, err := r.asynqClient.EnqueueContext(ctx, task, asynq.ProcessIn(delay))
	if err != nil {
		return "", errors.InternalServerError("error scheduling reconcile sweep")
	}
	return info.ID, nil
}

// DeleteTaskScheduler implements Repositories. Best effort: the sweep is
// idempotent anyway, deleting it just avoids a pointless gateway query.
func (r *repositories) DeleteTaskScheduler(ctx context.Context, taskID string) error {
	if err := r.asynqInspector.DeleteTask("default", taskID); err != nil {
		return errors.InternalServerError("error deleting scheduled task")
	}
	return nil
}
