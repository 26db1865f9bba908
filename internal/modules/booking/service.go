package booking

import (
	"context"
	"errors"
	"time"

	"petshop/internal/domain"

	"gorm.io/gorm"
)

// defaultServicePrice applies when no catalog item matches the requested
// service name. Service catalog entries are optional metadata, not a hard
// dependency, so a missing entry is priced at the fallback instead of
// failing the booking.
const defaultServicePrice = 50000

const defaultCancelReason = "cancelled by user"

type Service struct {
	bookings BookingRepository
	catalog  ServiceCatalog
	refs     ReferenceGenerator
	loggerf  func(format string, args ...interface{})
}

func NewService(bookings BookingRepository, catalog ServiceCatalog, refs ReferenceGenerator, loggerf func(format string, args ...interface{})) *Service {
	if loggerf == nil {
		loggerf = func(string, ...interface{}) {}
	}
	return &Service{
		bookings: bookings,
		catalog:  catalog,
		refs:     refs,
		loggerf:  loggerf,
	}
}

func (s *Service) CreateBooking(ctx context.Context, req CreateBookingRequest) (*CreateBookingResult, error) {
	date, err := time.Parse("2006-01-02", req.BookingDate)
	if err != nil {
		return nil, ErrInvalidRequest
	}

	total := int64(defaultServicePrice)
	item, err := s.catalog.GetByName(ctx, req.ServiceName)
	switch {
	case err == nil:
		total = item.Price
	case errors.Is(err, gorm.ErrRecordNotFound):
		s.loggerf("level=warn msg=service not in catalog, using fallback price service=%q", req.ServiceName)
	default:
		return nil, err
	}

	method := req.PaymentMethod
	if method == "" {
		method = "cash"
	}

	petName := req.PetName
	if petName == "" {
		petName = "Beloved Pet"
	}
	petSpecies := req.PetSpecies
	if petSpecies == "" {
		petSpecies = "Unknown"
	}

	b := &domain.Booking{
		UserID:        req.UserID,
		ServiceName:   req.ServiceName,
		BookingDate:   date,
		BookingTime:   req.BookingTime,
		Complaint:     req.Complaint,
		PetName:       petName,
		PetSpecies:    petSpecies,
		PetColor:      req.PetColor,
		Status:        domain.BookingAwaitingPayment,
		Total:         total,
		PaymentMethod: method,
		BankName:      req.BankName,
		VANumber:      s.refs.BookingReference(method, req.UserID),
		CreatedAt:     time.Now().UTC(),
	}

	if err := s.bookings.Create(ctx, b); err != nil {
		s.loggerf("level=error msg=booking create failed user_id=%d err=%v", req.UserID, err)
		return nil, err
	}

	s.loggerf("level=info msg=booking created booking_id=%d service=%q total=%d", b.ID, b.ServiceName, b.Total)

	return &CreateBookingResult{
		BookingID: b.ID,
		Total:     b.Total,
		VANumber:  b.VANumber,
		Status:    string(b.Status),
	}, nil
}

func (s *Service) ListUserBookings(ctx context.Context, userID int64) ([]BookingResponse, error) {
	details, err := s.bookings.ListDetailsByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	out := make([]BookingResponse, 0, len(details))
	for _, d := range details {
		b := d.Booking
		out = append(out, BookingResponse{
			ID:            b.ID,
			ServiceName:   b.ServiceName,
			PetName:       b.PetName,
			PetSpecies:    b.PetSpecies,
			BookingDate:   b.BookingDate.Format("2006-01-02"),
			BookingTime:   b.BookingTime,
			Status:        string(b.Status),
			Total:         b.Total,
			PaymentMethod: b.PaymentMethod,
			BankName:      b.BankName,
			VANumber:      b.VANumber,
			Complaint:     b.Complaint,
			CancelReason:  b.CancelReason,
			ImageURL:      d.ImageURL,
		})
	}
	return out, nil
}

func (s *Service) PayBooking(ctx context.Context, bookingID int64) (*domain.Booking, error) {
	b, err := s.bookings.MarkPaid(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	s.loggerf("level=info msg=booking paid booking_id=%d status=%s", b.ID, b.Status)
	return b, nil
}

func (s *Service) CancelBooking(ctx context.Context, bookingID int64, reason string) (*domain.Booking, error) {
	if reason == "" {
		reason = defaultCancelReason
	}
	b, err := s.bookings.CancelWithReason(ctx, bookingID, reason)
	if err != nil {
		return nil, err
	}
	s.loggerf("level=info msg=booking cancelled booking_id=%d reason=%q", b.ID, reason)
	return b, nil
}
