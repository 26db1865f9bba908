package booking

type CreateBookingRequest struct {
	UserID        int64  `json:"user_id" binding:"required"`
	ServiceName   string `json:"service_name" binding:"required"`
	BookingDate   string `json:"booking_date" binding:"required"`
	BookingTime   string `json:"booking_time" binding:"required"`
	PetName       string `json:"pet_name"`
	PetSpecies    string `json:"pet_species"`
	PetColor      string `json:"pet_color"`
	Complaint     string `json:"complaint"`
	PaymentMethod string `json:"payment_method"`
	BankName      string `json:"bank_name"`
}

type CancelBookingRequest struct {
	Reason string `json:"reason"`
}

type CreateBookingResult struct {
	BookingID int64  `json:"booking_id"`
	Total     int64  `json:"total"`
	VANumber  string `json:"va_number,omitempty"`
	Status    string `json:"status"`
}

type BookingResponse struct {
	ID            int64  `json:"id"`
	ServiceName   string `json:"service_name"`
	PetName       string `json:"pet_name"`
	PetSpecies    string `json:"pet_species"`
	BookingDate   string `json:"booking_date"`
	BookingTime   string `json:"booking_time"`
	Status        string `json:"status"`
	Total         int64  `json:"total"`
	PaymentMethod string `json:"payment_method"`
	BankName      string `json:"bank_name,omitempty"`
	VANumber      string `json:"va_number,omitempty"`
	Complaint     string `json:"complaint,omitempty"`
	CancelReason  string `json:"cancel_reason,omitempty"`
	ImageURL      string `json:"image_url,omitempty"`
}
