package request

type CreateBooking struct {
	ServiceID        int64  `json:"service_id" validate:"required"`
	BookingDate      string `json:"booking_date" validate:"required,datetime=2006-01-02"`
	TimeSlot         string `json:"time_slot" validate:"required"`
	VehicleMake      string `json:"vehicle_make" validate:"required"`
	VehicleModel     string `json:"vehicle_model" validate:"required"`
	VehiclePlate     string `json:"vehicle_plate" validate:"required"`
	IssueDescription string `json:"issue_description"`
}

type CancelBooking struct {
	Reason string `json:"reason" validate:"required"`
}

// EditBooking is the operator-only edit of a non-terminal booking. Nil
// fields are left untouched; a date/slot change re-validates availability
// at the new slot.
type EditBooking struct {
	BookingDate *string `json:"booking_date" validate:"omitempty,datetime=2006-01-02"`
	TimeSlot    *string `json:"time_slot"`
	StaffID     *int64  `json:"staff_id"`
	AdminNotes  *string `json:"admin_notes"`
}

type InitiatePayment struct {
	BookingID   string `json:"booking_id" validate:"required,uuid"`
	PhoneNumber string `json:"phone_number" validate:"required"`
}

// ReconcileSweep is the delayed task payload re-checking a payment whose
// client may have given up waiting.
type ReconcileSweep struct {
	CheckoutRequestID string `json:"checkout_request_id" validate:"required"`
}

type PoisonedQueue struct {
	TopicTarget string      `json:"topic_target" validate:"required"`
	ErrorMsg    string      `json:"error_msg" validate:"required"`
	Payload     interface{} `json:"payload" validate:"required"`
}

// BookingEvent is the outbound notification event published after a state
// commit and consumed asynchronously by the notifier.
type BookingEvent struct {
	Kind           string  `json:"kind" validate:"required"`
	BookingID      string  `json:"booking_id" validate:"required"`
	BookingNumber  string  `json:"booking_number" validate:"required"`
	CustomerID     int64   `json:"customer_id"`
	EmailRecipient string  `json:"email_recipient"`
	Amount         float64 `json:"amount"`
	Reference      string  `json:"reference"`
	Message        string  `json:"message"`
}

const (
	EventPaymentInvoice   = "payment_invoice"
	EventBookingConfirmed = "booking_confirmed"
	EventBookingCancelled = "booking_cancelled"
	EventBookingCompleted = "booking_completed"
)
