package handler_test

import (
	"context"
	"testing"

	"autocare-service/internal/module/booking/handler"
	"autocare-service/internal/module/booking/mocks"
	"autocare-service/internal/module/booking/models/entity"
	"autocare-service/internal/module/booking/models/request"
	"autocare-service/internal/module/booking/models/response"
	log_internal "autocare-service/internal/pkg/log"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/go-playground/validator/v10"
	"github.com/goccy/go-json"
	"github.com/gofiber/fiber/v2"
	"github.com/hibiken/asynq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/valyala/fasthttp"
)

var (
	h             *handler.BookingHandler
	ucm           *mocks.Usecase
	app           *fiber.App
	validatorTest *validator.Validate
	p             message.Publisher
)

type mockPublisher struct{}

// Close implements message.Publisher.
func (m *mockPublisher) Close() error {
	return nil
}

// Publish implements message.Publisher.
func (m *mockPublisher) Publish(topic string, messages ...*message.Message) error {
	return nil
}

func NewMockPublisher() message.Publisher {
	return &mockPublisher{}
}

func setup() {
	ucm = &mocks.Usecase{}
	logMock := log_internal.Setup()
	validatorTest = validator.New()
	p = NewMockPublisher()
	h = &handler.BookingHandler{
		Log:       logMock,
		Validator: validatorTest,
		Usecase:   ucm,
		Publish:   p,
	}
	app = fiber.New()
}

func teardown() {
	ucm = nil
	validatorTest = nil
	p = nil
	h = nil
	app = nil
}

func TestCreateBooking(t *testing.T) {
	setup()
	defer teardown()
	t.Run("success", func(t *testing.T) {
		// mock data
		payload := request.CreateBooking{
			ServiceID:    1,
			BookingDate:  "2026-09-07",
			TimeSlot:     "08:00-10:00",
			VehicleMake:  "Toyota",
			VehicleModel: "Axio",
			VehiclePlate: "KDA 123A",
		}

		jsonData, _ := json.Marshal(payload)

		ctx := app.AcquireCtx(&fasthttp.RequestCtx{})
		ctx.Request().SetRequestURI("/api/v1/bookings")
		ctx.Request().Header.SetContentType("application/json")
		ctx.Request().Header.SetMethod("POST")
		ctx.Request().SetBody(jsonData)
		ctx.Locals("user_id", int64(7))
		ctx.Locals("email_user", "test@test.com")

		// mock usecase
		ucm.On("CreateBooking", mock.Anything, &payload, int64(7), "test@test.com").
			Return(response.Booking{BookingNumber: "ACS-20260907-0001"}, nil)

		// test
		err := h.CreateBooking(ctx)

		// assertion
		assert.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, ctx.Response().StatusCode())
	})

	t.Run("invalid payload rejected before the usecase", func(t *testing.T) {
		// mock data
		jsonData, _ := json.Marshal(request.CreateBooking{ServiceID: 1})

		ctx := app.AcquireCtx(&fasthttp.RequestCtx{})
		ctx.Request().SetRequestURI("/api/v1/bookings")
		ctx.Request().Header.SetContentType("application/json")
		ctx.Request().Header.SetMethod("POST")
		ctx.Request().SetBody(jsonData)
		ctx.Locals("user_id", int64(7))
		ctx.Locals("email_user", "test@test.com")

		// test
		err := h.CreateBooking(ctx)

		// assertion
		assert.NoError(t, err)
		assert.Equal(t, fiber.StatusBadRequest, ctx.Response().StatusCode())
		ucm.AssertNotCalled(t, "CreateBooking", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestListAvailability(t *testing.T) {
	setup()
	defer teardown()
	t.Run("success", func(t *testing.T) {
		// mock data
		ctx := app.AcquireCtx(&fasthttp.RequestCtx{})
		ctx.Request().SetRequestURI("/api/v1/slots?date=2026-09-07")
		ctx.Request().Header.SetMethod("GET")

		// mock usecase
		ucm.On("ListAvailability", mock.Anything, "2026-09-07").
			Return(response.SlotAvailability{Date: "2026-09-07"}, nil)

		// test
		err := h.ListAvailability(ctx)

		// assertion
		assert.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, ctx.Response().StatusCode())
	})

	t.Run("missing date", func(t *testing.T) {
		// mock data
		ctx := app.AcquireCtx(&fasthttp.RequestCtx{})
		ctx.Request().SetRequestURI("/api/v1/slots")
		ctx.Request().Header.SetMethod("GET")

		// test
		err := h.ListAvailability(ctx)

		// assertion
		assert.NoError(t, err)
		assert.Equal(t, fiber.StatusBadRequest, ctx.Response().StatusCode())
	})
}

func TestCancelBooking(t *testing.T) {
	setup()
	defer teardown()
	t.Run("success", func(t *testing.T) {
		// mock data
		payload := request.CancelBooking{Reason: "changed plans"}
		jsonData, _ := json.Marshal(payload)

		ctx := app.AcquireCtx(&fasthttp.RequestCtx{})
		ctx.Request().Header.SetContentType("application/json")
		ctx.Request().Header.SetMethod("POST")
		ctx.Request().SetBody(jsonData)
		ctx.Locals("user_id", int64(7))
		ctx.Locals("role", "customer")

		// mock usecase
		ucm.On("CancelBooking", mock.Anything, "", "changed plans",
			entity.Actor{Role: entity.RoleCustomer, ID: 7}).Return(nil)

		// test
		err := h.CancelBooking(ctx)

		// assertion
		assert.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, ctx.Response().StatusCode())
	})
}

func TestInitiatePayment(t *testing.T) {
	setup()
	defer teardown()
	t.Run("success", func(t *testing.T) {
		// mock data
		payload := request.InitiatePayment{
			BookingID:   "1b4e28ba-2fa1-11d2-883f-0016d3cca427",
			PhoneNumber: "254712345678",
		}
		jsonData, _ := json.Marshal(payload)

		ctx := app.AcquireCtx(&fasthttp.RequestCtx{})
		ctx.Request().SetRequestURI("/api/v1/payments")
		ctx.Request().Header.SetContentType("application/json")
		ctx.Request().Header.SetMethod("POST")
		ctx.Request().SetBody(jsonData)
		ctx.Locals("user_id", int64(7))
		ctx.Locals("email_user", "test@test.com")

		// mock usecase
		ucm.On("InitiatePayment", mock.Anything, &payload, int64(7), "test@test.com").
			Return(response.PaymentInitiated{CheckoutRequestID: "ws_CO_191220191020363925", Status: "processing"}, nil)

		// test
		err := h.InitiatePayment(ctx)

		// assertion
		assert.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, ctx.Response().StatusCode())
	})
}

func TestGatewayCallback(t *testing.T) {
	setup()
	defer teardown()
	t.Run("always acknowledges", func(t *testing.T) {
		// mock data
		body := []byte(`{"Body":{"stkCallback":{"CheckoutRequestID":"ws_CO_191220191020363925","ResultCode":0}}}`)

		ctx := app.AcquireCtx(&fasthttp.RequestCtx{})
		ctx.Request().SetRequestURI("/api/callbacks/payment")
		ctx.Request().Header.SetContentType("application/json")
		ctx.Request().Header.SetMethod("POST")
		ctx.Request().SetBody(body)

		// mock usecase
		ucm.On("HandleGatewayCallback", mock.Anything, body).Return(nil)

		// test
		err := h.GatewayCallback(ctx)

		// assertion
		assert.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, ctx.Response().StatusCode())

		var ack map[string]interface{}
		assert.NoError(t, json.Unmarshal(ctx.Response().Body(), &ack))
		assert.Equal(t, float64(0), ack["ResultCode"])
	})

	t.Run("still acknowledges when handling errors", func(t *testing.T) {
		// mock data
		body := []byte(`garbage`)

		ctx := app.AcquireCtx(&fasthttp.RequestCtx{})
		ctx.Request().SetRequestURI("/api/callbacks/payment")
		ctx.Request().Header.SetMethod("POST")
		ctx.Request().SetBody(body)

		// mock usecase
		ucm.On("HandleGatewayCallback", mock.Anything, body).Return(assert.AnError)

		// test
		err := h.GatewayCallback(ctx)

		// assertion
		assert.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, ctx.Response().StatusCode())
	})
}

func TestConsumeBookingEvents(t *testing.T) {
	setup()
	defer teardown()
	t.Run("success", func(t *testing.T) {
		// mock data
		event := request.BookingEvent{
			Kind:           request.EventBookingConfirmed,
			BookingID:      "1b4e28ba-2fa1-11d2-883f-0016d3cca427",
			BookingNumber:  "ACS-20260907-0001",
			CustomerID:     7,
			EmailRecipient: "test@test.com",
			Message:        "payment received",
		}
		jsonData, _ := json.Marshal(event)
		msg := message.NewMessage("123", jsonData)

		// mock usecase
		ucm.On("DispatchNotification", mock.Anything, &event).Return(nil)

		// test
		err := h.ConsumeBookingEvents(msg)

		// assertion
		assert.NoError(t, err)
	})

	t.Run("bad payload goes to poison queue", func(t *testing.T) {
		// mock data
		msg := message.NewMessage("123", []byte(`not json`))

		// test
		err := h.ConsumeBookingEvents(msg)

		// assertion
		assert.Error(t, err)
		ucm.AssertNotCalled(t, "DispatchNotification", mock.Anything, mock.Anything)
	})
}

func TestReconcilePaymentTask(t *testing.T) {
	setup()
	defer teardown()

	ctx := context.Background()
	t.Run("success", func(t *testing.T) {
		// mock data
		payload := request.ReconcileSweep{CheckoutRequestID: "ws_CO_191220191020363925"}
		task := asynq.NewTask("payment_reconcile_sweep", []byte(`{"checkout_request_id":"ws_CO_191220191020363925"}`))

		// mock usecase
		ucm.On("ReconcileSweep", ctx, &payload).Return(nil)

		// test
		err := h.ReconcilePaymentTask(ctx, task)

		// assertion
		assert.NoError(t, err)
	})

	t.Run("empty payload fails validation", func(t *testing.T) {
		// mock data
		task := asynq.NewTask("payment_reconcile_sweep", []byte(`{}`))

		// test
		err := h.ReconcilePaymentTask(ctx, task)

		// assertion
		assert.Error(t, err)
		ucm.AssertNotCalled(t, "ReconcileSweep", ctx, mock.Anything)
	})
}
