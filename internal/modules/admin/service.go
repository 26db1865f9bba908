package admin

import (
	"context"

	"petshop/internal/repository"
)

type Service struct {
	orders   OrderAdminRepository
	bookings BookingAdminRepository
	clients  ClientCounter
	loggerf  func(format string, args ...interface{})
}

func NewService(orders OrderAdminRepository, bookings BookingAdminRepository, clients ClientCounter, loggerf func(format string, args ...interface{})) *Service {
	if loggerf == nil {
		loggerf = func(string, ...interface{}) {}
	}
	return &Service{
		orders:   orders,
		bookings: bookings,
		clients:  clients,
		loggerf:  loggerf,
	}
}

func (s *Service) Stats(ctx context.Context) (*StatsResponse, error) {
	orderRevenue, err := s.orders.PaidRevenue(ctx)
	if err != nil {
		return nil, err
	}
	bookingRevenue, err := s.bookings.PaidRevenue(ctx)
	if err != nil {
		return nil, err
	}
	orderCount, err := s.orders.Count(ctx)
	if err != nil {
		return nil, err
	}
	bookingCount, err := s.bookings.Count(ctx)
	if err != nil {
		return nil, err
	}
	clientCount, err := s.clients.CountClients(ctx)
	if err != nil {
		return nil, err
	}

	return &StatsResponse{
		TotalRevenue:   orderRevenue + bookingRevenue,
		OrderRevenue:   orderRevenue,
		BookingRevenue: bookingRevenue,
		OrderCount:     orderCount,
		BookingCount:   bookingCount,
		ClientCount:    clientCount,
	}, nil
}

func (s *Service) ListAllOrders(ctx context.Context) ([]repository.AdminOrderDetail, error) {
	return s.orders.ListAllDetails(ctx)
}

func (s *Service) ListAllBookings(ctx context.Context) ([]repository.AdminBookingDetail, error) {
	return s.bookings.ListAllDetails(ctx)
}

// OverrideOrderStatus skips the lifecycle guards. Every use is logged so the
// escape hatch leaves a trail.
func (s *Service) OverrideOrderStatus(ctx context.Context, orderID int64, req OverrideStatusRequest) error {
	if err := s.orders.OverrideStatus(ctx, orderID, req.Status, req.Reason); err != nil {
		return err
	}
	s.loggerf("level=warn msg=order status overridden order_id=%d status=%s reason=%q", orderID, req.Status, req.Reason)
	return nil
}

func (s *Service) OverrideBookingStatus(ctx context.Context, bookingID int64, req OverrideStatusRequest) error {
	if err := s.bookings.OverrideStatus(ctx, bookingID, req.Status, req.Reason); err != nil {
		return err
	}
	s.loggerf("level=warn msg=booking status overridden booking_id=%d status=%s reason=%q", bookingID, req.Status, req.Reason)
	return nil
}
