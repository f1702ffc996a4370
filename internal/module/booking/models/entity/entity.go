package entity

import (
	"database/sql"
	"time"

	"github.com/google/uuid"
)

// BookingStatus is the canonical booking lifecycle state.
type BookingStatus string

const (
	StatusPendingPayment BookingStatus = "pending_payment"
	StatusConfirmed      BookingStatus = "confirmed"
	StatusInProgress     BookingStatus = "in_progress"
	StatusCompleted      BookingStatus = "completed"
	StatusCancelled      BookingStatus = "cancelled"
)

// Terminal reports whether no further transition is permitted.
func (s BookingStatus) Terminal() bool {
	return s == StatusCompleted || s == StatusCancelled
}

// Active reports whether the booking still holds its slot.
func (s BookingStatus) Active() bool {
	return s == StatusPendingPayment || s == StatusConfirmed || s == StatusInProgress
}

// PaymentStatus is the booking-level payment marker.
type PaymentStatus string

const (
	PaymentPending  PaymentStatus = "pending"
	PaymentPaid     PaymentStatus = "paid"
	PaymentFailed   PaymentStatus = "failed"
	PaymentRefunded PaymentStatus = "refunded"
)

// PaymentState is the state of a single collection attempt.
type PaymentState string

const (
	PaymentStatePending    PaymentState = "pending"
	PaymentStateProcessing PaymentState = "processing"
	PaymentStateCompleted  PaymentState = "completed"
	PaymentStateFailed     PaymentState = "failed"
	PaymentStateRefunded   PaymentState = "refunded"
)

func (s PaymentState) Terminal() bool {
	return s == PaymentStateCompleted || s == PaymentStateFailed || s == PaymentStateRefunded
}

// Role identifies the capability class of the caller.
type Role string

const (
	RoleCustomer Role = "customer"
	RoleStaff    Role = "staff"
	RoleOperator Role = "operator"
	// RoleSystem is the payment reconciler confirming on gateway success.
	RoleSystem Role = "system"
)

// Actor is the capability passed into the state machine instead of ad hoc
// per-handler role branching.
type Actor struct {
	Role Role
	ID   int64
}

type Booking struct {
	ID                 uuid.UUID      `db:"id"`
	BookingNumber      string         `db:"booking_number"`
	CustomerID         int64          `db:"customer_id"`
	ServiceID          int64          `db:"service_id"`
	StaffID            sql.NullInt64  `db:"staff_id"`
	VehicleMake        string         `db:"vehicle_make"`
	VehicleModel       string         `db:"vehicle_model"`
	VehiclePlate       string         `db:"vehicle_plate"`
	BookingDate        string         `db:"booking_date"` // calendar date, 2006-01-02
	TimeSlot           string         `db:"time_slot"`
	Status             BookingStatus  `db:"status"`
	PaymentStatus      PaymentStatus  `db:"payment_status"`
	TotalAmount        float64        `db:"total_amount"`
	PaymentReference   sql.NullString `db:"payment_reference"`
	IssueDescription   string         `db:"issue_description"`
	AdminNotes         sql.NullString `db:"admin_notes"`
	CancelledAt        sql.NullTime   `db:"cancelled_at"`
	CancelledBy        sql.NullString `db:"cancelled_by"`
	CancellationReason sql.NullString `db:"cancellation_reason"`
	CompletedAt        sql.NullTime   `db:"completed_at"`
	CreatedAt          time.Time      `db:"created_at"`
	UpdatedAt          sql.NullTime   `db:"updated_at"`
}

type Payment struct {
	ID                int64          `db:"id"`
	BookingID         uuid.UUID      `db:"booking_id"`
	CustomerID        int64          `db:"customer_id"`
	Amount            float64        `db:"amount"`
	PhoneNumber       string         `db:"phone_number"`
	MerchantRequestID string         `db:"merchant_request_id"`
	CheckoutRequestID string         `db:"checkout_request_id"`
	Status            PaymentState   `db:"status"`
	ResultCode        sql.NullString `db:"result_code"`
	ResultDesc        sql.NullString `db:"result_desc"`
	ReceiptNumber     sql.NullString `db:"receipt_number"`
	TransactionDate   sql.NullTime   `db:"transaction_date"`
	TaskID            sql.NullString `db:"task_id"`
	CreatedAt         time.Time      `db:"created_at"`
	UpdatedAt         sql.NullTime   `db:"updated_at"`
}

// Service is the priced catalogue entry a booking copies its amount from.
type Service struct {
	ID    int64   `db:"id"`
	Name  string  `db:"name"`
	Price float64 `db:"price"`
}
