package handler

import (
	"context"
	"fmt"

	"autocare-service/internal/module/booking/models/entity"
	"autocare-service/internal/module/booking/models/request"
	"autocare-service/internal/module/booking/usecases"
	"autocare-service/internal/pkg/errors"
	"autocare-service/internal/pkg/helpers"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/go-playground/validator/v10"
	"github.com/goccy/go-json"
	"github.com/gofiber/fiber/v2"
	"github.com/hibiken/asynq"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
)

type BookingHandler struct {
	Log       *otelzap.Logger
	Validator *validator.Validate
	Usecase   usecases.Usecase
	Publish   message.Publisher
}

func actorFromCtx(ctx *fiber.Ctx) entity.Actor {
	role, _ := ctx.Locals("role").(string)
	userID, _ := ctx.Locals("user_id").(int64)
	return entity.Actor{Role: entity.Role(role), ID: userID}
}

func (h *BookingHandler) ListAvailability(ctx *fiber.Ctx) error {
	date := ctx.Query("date")
	if date == "" {
		return helpers.RespError(ctx, h.Log, errors.BadRequest("date query parameter is required"))
	}

	resp, err := h.Usecase.ListAvailability(ctx.UserContext(), date)
	if err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error list availability: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespSuccess(ctx, h.Log, resp, "success list availability")
}

func (h *BookingHandler) CreateBooking(ctx *fiber.Ctx) error {
	var req request.CreateBooking
	if err := ctx.BodyParser(&req); err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error parse request: %v", err))
		return helpers.RespError(ctx, h.Log, errors.BadRequest("error parse request"))
	}

	if err := h.Validator.Struct(req); err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error validate request: %v", err))
		return helpers.RespError(ctx, h.Log, errors.BadRequest(err.Error()))
	}

	userID := ctx.Locals("user_id").(int64)
	emailUser := ctx.Locals("email_user").(string)

	resp, err := h.Usecase.CreateBooking(ctx.UserContext(), &req, userID, emailUser)
	if err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error create booking: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespSuccess(ctx, h.Log, resp, "success create booking, please initiate payment")
}

func (h *BookingHandler) ShowBookings(ctx *fiber.Ctx) error {
	userID := ctx.Locals("user_id").(int64)

	resp, err := h.Usecase.ShowBookings(ctx.UserContext(), userID)
	if err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error show bookings: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespSuccess(ctx, h.Log, resp, "success show bookings")
}

func (h *BookingHandler) CancelBooking(ctx *fiber.Ctx) error {
	var req request.CancelBooking
	if err := ctx.BodyParser(&req); err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error parse request: %v", err))
		return helpers.RespError(ctx, h.Log, errors.BadRequest("error parse request"))
	}

	if err := h.Validator.Struct(req); err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error validate request: %v", err))
		return helpers.RespError(ctx, h.Log, errors.BadRequest(err.Error()))
	}

	err := h.Usecase.CancelBooking(ctx.UserContext(), ctx.Params("id"), req.Reason, actorFromCtx(ctx))
	if err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error cancel booking: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespSuccess(ctx, h.Log, nil, "success cancel booking")
}

// transition returns a handler driving the booking to target; the state
// machine decides whether the actor may.
func (h *BookingHandler) transition(target entity.BookingStatus) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		err := h.Usecase.TransitionBooking(ctx.UserContext(), ctx.Params("id"), target, actorFromCtx(ctx))
		if err != nil {
			h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error transition booking to %s: %v", target, err))
			return helpers.RespError(ctx, h.Log, err)
		}
		return helpers.RespSuccess(ctx, h.Log, nil, fmt.Sprintf("booking marked %s", target))
	}
}

func (h *BookingHandler) ConfirmBooking(ctx *fiber.Ctx) error {
	return h.transition(entity.StatusConfirmed)(ctx)
}

func (h *BookingHandler) StartBooking(ctx *fiber.Ctx) error {
	return h.transition(entity.StatusInProgress)(ctx)
}

func (h *BookingHandler) CompleteBooking(ctx *fiber.Ctx) error {
	return h.transition(entity.StatusCompleted)(ctx)
}

func (h *BookingHandler) EditBooking(ctx *fiber.Ctx) error {
	var req request.EditBooking
	if err := ctx.BodyParser(&req); err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error parse request: %v", err))
		return helpers.RespError(ctx, h.Log, errors.BadRequest("error parse request"))
	}

	if err := h.Validator.Struct(req); err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error validate request: %v", err))
		return helpers.RespError(ctx, h.Log, errors.BadRequest(err.Error()))
	}

	err := h.Usecase.EditBooking(ctx.UserContext(), ctx.Params("id"), &req, actorFromCtx(ctx))
	if err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error edit booking: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespSuccess(ctx, h.Log, nil, "success edit booking")
}

func (h *BookingHandler) ForceDeleteBooking(ctx *fiber.Ctx) error {
	err := h.Usecase.ForceDeleteBooking(ctx.UserContext(), ctx.Params("id"), actorFromCtx(ctx))
	if err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error force delete booking: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespSuccess(ctx, h.Log, nil, "success force delete booking")
}

func (h *BookingHandler) InitiatePayment(ctx *fiber.Ctx) error {
	var req request.InitiatePayment
	if err := ctx.BodyParser(&req); err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error parse request: %v", err))
		return helpers.RespError(ctx, h.Log, errors.BadRequest("error parse request"))
	}

	if err := h.Validator.Struct(req); err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error validate request: %v", err))
		return helpers.RespError(ctx, h.Log, errors.BadRequest(err.Error()))
	}

	userID := ctx.Locals("user_id").(int64)
	emailUser := ctx.Locals("email_user").(string)

	resp, err := h.Usecase.InitiatePayment(ctx.UserContext(), &req, userID, emailUser)
	if err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error initiate payment: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespSuccess(ctx, h.Log, resp, "payment prompt sent, please authorize on your phone")
}

func (h *BookingHandler) PaymentStatus(ctx *fiber.Ctx) error {
	checkoutRequestID := ctx.Params("checkout_request_id")
	if checkoutRequestID == "" {
		return helpers.RespError(ctx, h.Log, errors.BadRequest("checkout_request_id is required"))
	}

	userID := ctx.Locals("user_id").(int64)

	resp, err := h.Usecase.QueryPaymentStatus(ctx.UserContext(), checkoutRequestID, userID)
	if err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error query payment status: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespSuccess(ctx, h.Log, resp, "success query payment status")
}

// GatewayCallback receives the gateway's webhook. The gateway retries on
// anything but an acknowledgment, so this always answers ResultCode 0;
// internal anomalies are logged inside the usecase and never surfaced.
func (h *BookingHandler) GatewayCallback(ctx *fiber.Ctx) error {
	if err := h.Usecase.HandleGatewayCallback(ctx.UserContext(), ctx.Body()); err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error handle gateway callback: %v", err))
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
		"ResultCode": 0,
		"ResultDesc": "Accepted",
	})
}

// ConsumeBookingEvents is the watermill handler feeding the external
// notifier; undeliverable events go to the poison queue.
func (h *BookingHandler) ConsumeBookingEvents(msg *message.Message) error {
	msg.Ack()
	var event request.BookingEvent
	if err := json.Unmarshal(msg.Payload, &event); err != nil {
		h.Log.Ctx(msg.Context()).Error(fmt.Sprintf("error unmarshal message: %v", err))
		h.publishPoisoned(msg, err)
		return err
	}

	ctx := context.Background()
	if err := h.Usecase.DispatchNotification(ctx, &event); err != nil {
		h.Log.Ctx(msg.Context()).Error(fmt.Sprintf("error dispatch notification: %v", err))
		h.publishPoisoned(msg, err)
		return err
	}

	return nil
}

func (h *BookingHandler) publishPoisoned(msg *message.Message, cause error) {
	reqPoisoned := request.PoisonedQueue{
		TopicTarget: "booking_events",
		ErrorMsg:    cause.Error(),
		Payload:     msg.Payload,
	}

	jsonPayload, _ := json.Marshal(reqPoisoned)
	if err := h.Publish.Publish("poisoned_queue", message.NewMessage(watermill.NewUUID(), jsonPayload)); err != nil {
		h.Log.Ctx(msg.Context()).Error(fmt.Sprintf("error publish to poison queue: %v", err))
	}
}

// ReconcilePaymentTask is the asynq handler for the delayed sweep.
func (h *BookingHandler) ReconcilePaymentTask(ctx context.Context, t *asynq.Task) error {
	var req request.ReconcileSweep
	if err := json.Unmarshal(t.Payload(), &req); err != nil {
		h.Log.Ctx(ctx).Error(fmt.Sprintf("error unmarshal payload: %v", err))
		return err
	}

	if err := h.Validator.Struct(req); err != nil {
		h.Log.Ctx(ctx).Error(fmt.Sprintf("error validate payload: %v", err))
		return err
	}

	if err := h.Usecase.ReconcileSweep(ctx, &req); err != nil {
		h.Log.Ctx(ctx).Error(fmt.Sprintf("error reconcile sweep: %v", err))
		return err
	}

	return nil
}
