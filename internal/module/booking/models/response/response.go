package response

type UserServiceValidate struct {
	IsValid   bool   `json:"is_valid"`
	UserID    int64  `json:"user_id"`
	EmailUser string `json:"email_user"`
	Role      string `json:"role"`
}

type Booking struct {
	ID               string  `json:"id"`
	BookingNumber    string  `json:"booking_number"`
	ServiceID        int64   `json:"service_id"`
	StaffID          int64   `json:"staff_id,omitempty"`
	BookingDate      string  `json:"booking_date"`
	TimeSlot         string  `json:"time_slot"`
	Status           string  `json:"status"`
	PaymentStatus    string  `json:"payment_status"`
	TotalAmount      float64 `json:"total_amount"`
	PaymentReference string  `json:"payment_reference,omitempty"`
	VehiclePlate     string  `json:"vehicle_plate"`
}

type SlotAvailability struct {
	Date  string `json:"date"`
	Slots []Slot `json:"slots"`
}

type Slot struct {
	TimeSlot  string `json:"time_slot"`
	Available bool   `json:"available"`
}

type PaymentInitiated struct {
	BookingID         string  `json:"booking_id"`
	CheckoutRequestID string  `json:"checkout_request_id"`
	Amount            float64 `json:"amount"`
	Status            string  `json:"status"`
	CustomerMessage   string  `json:"customer_message"`
}

type PaymentStatus struct {
	CheckoutRequestID string `json:"checkout_request_id"`
	Status            string `json:"status"`
	ResultDesc        string `json:"result_desc,omitempty"`
	ReceiptNumber     string `json:"receipt_number,omitempty"`
}
