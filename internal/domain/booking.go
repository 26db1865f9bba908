package domain

import "time"

type BookingStatus string

const (
	BookingAwaitingPayment BookingStatus = "awaiting_payment"
	BookingProcessing      BookingStatus = "processing"
	BookingCompleted       BookingStatus = "completed"
	BookingCancelled       BookingStatus = "cancelled"
)

func (s BookingStatus) CanPay() bool {
	return s == BookingAwaitingPayment
}

func (s BookingStatus) CanCancel() bool {
	switch s {
	case BookingCompleted, BookingCancelled:
		return false
	}
	return true
}

// Booking reserves a service for a user. Services are not inventoried, so a
// booking never touches stock; the total is resolved once at creation.
type Booking struct {
	ID          int64     `json:"id"`
	UserID      int64     `json:"user_id"`
	ServiceName string    `json:"service_name"`
	BookingDate time.Time `json:"booking_date"`
	BookingTime string    `json:"booking_time"`
	Complaint   string    `json:"complaint,omitempty"`

	PetName    string `json:"pet_name"`
	PetSpecies string `json:"pet_species"`
	PetColor   string `json:"pet_color,omitempty"`

	Status        BookingStatus `json:"status"`
	Total         int64         `json:"total"`
	PaymentMethod string        `json:"payment_method"`
	BankName      string        `json:"bank_name,omitempty"`
	VANumber      string        `json:"va_number,omitempty"`
	CancelReason  string        `json:"cancel_reason,omitempty"`
	CreatedAt     time.Time     `json:"created_at"`
}
