package router

import (
	"autocare-service/internal/module/booking/handler"
	"autocare-service/internal/pkg/middleware"

	"github.com/gofiber/fiber/v2"
)

func Initialize(app *fiber.App, handlerBooking *handler.BookingHandler, m *middleware.Middleware) *fiber.App {

	// health check
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusOK).SendString("OK")
	})

	Api := app.Group("/api")

	// customer routes
	v1 := Api.Group("/v1")
	v1.Get("/slots", m.ValidateToken, handlerBooking.ListAvailability)
	v1.Post("/bookings", m.ValidateToken, handlerBooking.CreateBooking)
	v1.Get("/bookings", m.ValidateToken, handlerBooking.ShowBookings)
	v1.Post("/bookings/:id/cancel", m.ValidateToken, handlerBooking.CancelBooking)
	v1.Post("/payments", m.ValidateToken, handlerBooking.InitiatePayment)
	v1.Get("/payments/status/:checkout_request_id", m.ValidateToken, handlerBooking.PaymentStatus)

	// staff/operator routes
	operator := Api.Group("/operator", m.ValidateToken)
	operator.Patch("/bookings/:id", m.RequireOperator, handlerBooking.EditBooking)
	operator.Post("/bookings/:id/confirm", m.RequireOperator, handlerBooking.ConfirmBooking)
	operator.Post("/bookings/:id/start", m.RequireStaff, handlerBooking.StartBooking)
	operator.Post("/bookings/:id/complete", m.RequireStaff, handlerBooking.CompleteBooking)
	operator.Post("/bookings/:id/cancel", m.RequireOperator, handlerBooking.CancelBooking)
	operator.Delete("/bookings/:id", m.RequireOperator, handlerBooking.ForceDeleteBooking)

	// the payment gateway posts here; no token, always acked
	callbacks := Api.Group("/callbacks")
	callbacks.Post("/payment", handlerBooking.GatewayCallback)

	return app

}
