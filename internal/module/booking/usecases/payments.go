package usecases

import (
	"context"
	"fmt"
	"time"

	"autocare-service/internal/module/booking/models/entity"
	"autocare-service/internal/module/booking/models/request"
	"autocare-service/internal/module/booking/models/response"
	"autocare-service/internal/pkg/errors"
	"autocare-service/internal/pkg/gateway"
	"autocare-service/internal/pkg/helpers"

	"github.com/goccy/go-json"
)

// InitiatePayment implements Usecase. Asks the gateway to push a payment
// prompt to the customer's phone and records the attempt as processing.
// Nothing here is retried automatically; a failed initiation leaves the
// booking pending_payment and the customer free to try again.
func (u *usecase) InitiatePayment(ctx context.Context, payload *request.InitiatePayment, customerID int64, emailUser string) (response.PaymentInitiated, error) {
	phone, err := helpers.NormalizeMsisdn(payload.PhoneNumber)
	if err != nil {
		return response.PaymentInitiated{}, err
	}

	booking, err := u.repo.FindBookingByID(ctx, payload.BookingID)
	if err != nil {
		return response.PaymentInitiated{}, err
	}
	if booking.CustomerID != customerID {
		return response.PaymentInitiated{}, errors.NotFound("booking not found")
	}
	if booking.Status != entity.StatusPendingPayment {
		return response.PaymentInitiated{}, errors.UnprocessableEntity(
			fmt.Sprintf("booking is %s, payment cannot be initiated", booking.Status))
	}

	if _, err := u.repo.FindActivePaymentByBookingID(ctx, payload.BookingID); err == nil {
		return response.PaymentInitiated{}, errors.Conflict("a payment attempt for this booking is already in progress")
	}

	// configuration problems surface as-is, not as gateway failures
	if err := u.gateway.ValidateConfig(); err != nil {
		return response.PaymentInitiated{}, err
	}

	pushResp, err := u.gateway.InitiatePush(ctx, gateway.PushRequest{
		Amount:      booking.TotalAmount,
		PhoneNumber: phone,
		Reference:   booking.BookingNumber,
		Description: fmt.Sprintf("Vehicle service %s", booking.BookingNumber),
	})
	if err != nil {
		return response.PaymentInitiated{}, errors.PaymentInitiationFailed(err.Error())
	}

	payment := entity.Payment{
		BookingID:         booking.ID,
		CustomerID:        customerID,
		Amount:            booking.TotalAmount,
		PhoneNumber:       phone,
		MerchantRequestID: pushResp.MerchantRequestID,
		CheckoutRequestID: pushResp.CheckoutRequestID,
		Status:            entity.PaymentStateProcessing,
		CreatedAt:         time.Now(),
	}
	payment, err = u.repo.InsertPayment(ctx, payment)
	if err != nil {
		return response.PaymentInitiated{}, err
	}

	u.scheduleSweep(ctx, payment)

	return response.PaymentInitiated{
		BookingID:         booking.ID.String(),
		CheckoutRequestID: payment.CheckoutRequestID,
		Amount:            payment.Amount,
		Status:            string(payment.Status),
		CustomerMessage:   pushResp.CustomerMessage,
	}, nil
}

// scheduleSweep enqueues the delayed server-side re-check. Best effort:
// the webhook and the customer poll still cover confirmation if the
// enqueue fails.
func (u *usecase) scheduleSweep(ctx context.Context, payment entity.Payment) {
	payload, err := json.Marshal(request.ReconcileSweep{CheckoutRequestID: payment.CheckoutRequestID})
	if err != nil {
		u.log.Error(ctx, "error marshal sweep payload", err)
		return
	}

	delay := time.Duration(u.cfg.ReconcileDelayMinutes) * time.Minute
	taskID, err := u.repo.ScheduleReconcileSweep(ctx, delay, payload)
	if err != nil {
		u.log.Error(ctx, "error schedule reconcile sweep", err)
		return
	}

	if err := u.repo.SetPaymentTaskID(ctx, payment.ID, taskID); err != nil {
		u.log.Error(ctx, "error store sweep task id", err)
	}
}

// HandleGatewayCallback implements Usecase. The authoritative
// confirmation channel. Anomalies (unknown correlation key, unparseable
// payload) are logged and swallowed; the caller acks the gateway
// regardless so the vendor does not retry.
func (u *usecase) HandleGatewayCallback(ctx context.Context, payload []byte) error {
	result, err := gateway.ParseCallback(payload)
	if err != nil {
		u.log.Error(ctx, "reconciliation anomaly: bad callback payload", err)
		return nil
	}

	payment, err := u.repo.FindPaymentByCheckoutID(ctx, result.CheckoutRequestID)
	if err != nil {
		u.log.Error(ctx, "reconciliation anomaly: callback for unknown correlation key", result.CheckoutRequestID)
		return nil
	}

	switch result.Outcome {
	case gateway.OutcomeSuccess:
		if err := u.applySuccess(ctx, payment, result); err != nil {
			u.log.Error(ctx, "error applying payment success", err)
		}
	case gateway.OutcomeFailed:
		applied, err := u.repo.FailPayment(ctx, result.CheckoutRequestID,
			fmt.Sprintf("%d", result.ResultCode), result.ResultDesc)
		if err != nil {
			u.log.Error(ctx, "error applying payment failure", err)
			return nil
		}
		if applied {
			u.dropSweep(ctx, payment)
		}
	}

	return nil
}

// applySuccess runs the composite success commit exactly once per
// payment: the repository transaction is guarded on the payment's
// non-terminal status, so the second of two racing success signals
// observes applied=false and does nothing, including no notification.
func (u *usecase) applySuccess(ctx context.Context, payment entity.Payment, result gateway.Result) error {
	applied, err := u.repo.CompletePaymentAndConfirmBooking(ctx, result)
	if err != nil {
		return err
	}
	if !applied {
		return nil
	}

	booking, err := u.repo.FindBookingByID(ctx, payment.BookingID.String())
	if err != nil {
		u.log.Error(ctx, "error load booking after confirmation", err)
		booking = entity.Booking{ID: payment.BookingID}
	}

	u.publishEvent(ctx, request.BookingEvent{
		Kind:          request.EventBookingConfirmed,
		BookingID:     payment.BookingID.String(),
		BookingNumber: booking.BookingNumber,
		CustomerID:    payment.CustomerID,
		Amount:        payment.Amount,
		Reference:     result.Receipt,
		Message:       fmt.Sprintf("payment received, booking %s confirmed", booking.BookingNumber),
	})

	u.dropSweep(ctx, payment)
	return nil
}

func (u *usecase) dropSweep(ctx context.Context, payment entity.Payment) {
	if !payment.TaskID.Valid {
		return
	}
	if err := u.repo.DeleteTaskScheduler(ctx, payment.TaskID.String); err != nil {
		u.log.Error(ctx, "error delete sweep task", err)
	}
}

// QueryPaymentStatus implements Usecase. The customer-driven poll
// channel: a progress indicator, not a judge. A terminal local status is
// returned as stored; otherwise the gateway is asked, a definitive
// success is applied through the same exactly-once commit, and anything
// ambiguous (or any transport error) is no new information, leaving the
// stored state untouched for the webhook to settle.
func (u *usecase) QueryPaymentStatus(ctx context.Context, checkoutRequestID string, customerID int64) (response.PaymentStatus, error) {
	payment, err := u.repo.FindPaymentByCheckoutID(ctx, checkoutRequestID)
	if err != nil {
		return response.PaymentStatus{}, err
	}
	if payment.CustomerID != customerID {
		return response.PaymentStatus{}, errors.NotFound("payment not found")
	}

	if payment.Status.Terminal() {
		return toPaymentStatusResponse(payment), nil
	}

	queryResp, err := u.gateway.QueryStatus(ctx, checkoutRequestID)
	if err != nil {
		u.log.Info(ctx, "gateway status query failed, keeping stored status", err)
		return toPaymentStatusResponse(payment), nil
	}

	if gateway.ClassifyQuery(queryResp) == gateway.OutcomeSuccess {
		result := gateway.Result{
			Outcome:           gateway.OutcomeSuccess,
			CheckoutRequestID: checkoutRequestID,
			ResultDesc:        queryResp.ResultDesc,
		}
		if err := u.applySuccess(ctx, payment, result); err != nil {
			u.log.Error(ctx, "error applying poll success", err)
			return toPaymentStatusResponse(payment), nil
		}
		payment.Status = entity.PaymentStateCompleted
		return toPaymentStatusResponse(payment), nil
	}

	if gateway.IsAmbiguousQueryCode(queryResp.ResultCode) {
		u.log.Info(ctx, "payment still awaiting user action", queryResp.ResultCode)
	}
	return toPaymentStatusResponse(payment), nil
}

// ReconcileSweep implements Usecase. The delayed background re-check for
// payments whose interactive client gave up; one gateway query, success
// applied through the exactly-once commit, everything else left for the
// webhook. Errors propagate so the task queue retries transient failures.
func (u *usecase) ReconcileSweep(ctx context.Context, payload *request.ReconcileSweep) error {
	payment, err := u.repo.FindPaymentByCheckoutID(ctx, payload.CheckoutRequestID)
	if err != nil {
		u.log.Error(ctx, "reconciliation anomaly: sweep for unknown correlation key", payload.CheckoutRequestID)
		return nil
	}

	if payment.Status.Terminal() {
		return nil
	}

	queryResp, err := u.gateway.QueryStatus(ctx, payload.CheckoutRequestID)
	if err != nil {
		return err
	}

	if gateway.ClassifyQuery(queryResp) == gateway.OutcomeSuccess {
		return u.applySuccess(ctx, payment, gateway.Result{
			Outcome:           gateway.OutcomeSuccess,
			CheckoutRequestID: payload.CheckoutRequestID,
			ResultDesc:        queryResp.ResultDesc,
		})
	}

	return nil
}

func toPaymentStatusResponse(p entity.Payment) response.PaymentStatus {
	return response.PaymentStatus{
		CheckoutRequestID: p.CheckoutRequestID,
		Status:            string(p.Status),
		ResultDesc:        p.ResultDesc.String,
		ReceiptNumber:     p.ReceiptNumber.String,
	}
}
