package admin

import (
	"context"

	"petshop/internal/repository"
)

type OrderAdminRepository interface {
	ListAllDetails(ctx context.Context) ([]repository.AdminOrderDetail, error)
	Count(ctx context.Context) (int64, error)
	PaidRevenue(ctx context.Context) (int64, error)
	OverrideStatus(ctx context.Context, orderID int64, status, reason string) error
}

type BookingAdminRepository interface {
	ListAllDetails(ctx context.Context) ([]repository.AdminBookingDetail, error)
	Count(ctx context.Context) (int64, error)
	PaidRevenue(ctx context.Context) (int64, error)
	OverrideStatus(ctx context.Context, bookingID int64, status, reason string) error
}

type ClientCounter interface {
	CountClients(ctx context.Context) (int64, error)
}
