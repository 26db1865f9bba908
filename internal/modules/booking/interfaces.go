package booking

import (
	"context"

	"petshop/internal/domain"
	"petshop/internal/repository"
)

type BookingRepository interface {
	Create(ctx context.Context, b *domain.Booking) error
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	ListDetailsByUser(ctx context.Context, userID int64) ([]repository.BookingDetails, error)
	MarkPaid(ctx context.Context, bookingID int64) (*domain.Booking, error)
	CancelWithReason(ctx context.Context, bookingID int64, reason string) (*domain.Booking, error)
}

// ServiceCatalog resolves a service's catalog entry by display name.
type ServiceCatalog interface {
	GetByName(ctx context.Context, name string) (*domain.Item, error)
}

type ReferenceGenerator interface {
	BookingReference(paymentMethod string, userID int64) string
}
