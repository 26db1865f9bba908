package admin

import (
	"context"
	"testing"

	"petshop/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

type MockOrderAdminRepository struct {
	mock.Mock
}

func (m *MockOrderAdminRepository) ListAllDetails(ctx context.Context) ([]repository.AdminOrderDetail, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]repository.AdminOrderDetail), args.Error(1)
}

func (m *MockOrderAdminRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockOrderAdminRepository) PaidRevenue(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockOrderAdminRepository) OverrideStatus(ctx context.Context, orderID int64, status, reason string) error {
	args := m.Called(ctx, orderID, status, reason)
	return args.Error(0)
}

type MockBookingAdminRepository struct {
	mock.Mock
}

func (m *MockBookingAdminRepository) ListAllDetails(ctx context.Context) ([]repository.AdminBookingDetail, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]repository.AdminBookingDetail), args.Error(1)
}

func (m *MockBookingAdminRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockBookingAdminRepository) PaidRevenue(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockBookingAdminRepository) OverrideStatus(ctx context.Context, bookingID int64, status, reason string) error {
	args := m.Called(ctx, bookingID, status, reason)
	return args.Error(0)
}

type MockClientCounter struct {
	mock.Mock
}

func (m *MockClientCounter) CountClients(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func TestStats_SumsBothRevenueStreams(t *testing.T) {
	orders := new(MockOrderAdminRepository)
	bookings := new(MockBookingAdminRepository)
	clients := new(MockClientCounter)

	orders.On("PaidRevenue", mock.Anything).Return(int64(450000), nil)
	orders.On("Count", mock.Anything).Return(int64(12), nil)
	bookings.On("PaidRevenue", mock.Anything).Return(int64(150000), nil)
	bookings.On("Count", mock.Anything).Return(int64(4), nil)
	clients.On("CountClients", mock.Anything).Return(int64(9), nil)

	service := NewService(orders, bookings, clients, nil)

	stats, err := service.Stats(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, int64(600000), stats.TotalRevenue)
	assert.Equal(t, int64(450000), stats.OrderRevenue)
	assert.Equal(t, int64(150000), stats.BookingRevenue)
	assert.Equal(t, int64(12), stats.OrderCount)
	assert.Equal(t, int64(4), stats.BookingCount)
	assert.Equal(t, int64(9), stats.ClientCount)
}

func TestOverrideOrderStatus_Delegates(t *testing.T) {
	orders := new(MockOrderAdminRepository)
	orders.On("OverrideStatus", mock.Anything, int64(3), "shipped", "courier picked up").Return(nil)

	service := NewService(orders, new(MockBookingAdminRepository), new(MockClientCounter), nil)

	err := service.OverrideOrderStatus(context.Background(), 3, OverrideStatusRequest{
		Status: "shipped",
		Reason: "courier picked up",
	})

	assert.NoError(t, err)
	orders.AssertExpectations(t)
}

func TestOverrideBookingStatus_NotFound(t *testing.T) {
	bookings := new(MockBookingAdminRepository)
	bookings.On("OverrideStatus", mock.Anything, int64(99), "completed", "").Return(gorm.ErrRecordNotFound)

	service := NewService(new(MockOrderAdminRepository), bookings, new(MockClientCounter), nil)

	err := service.OverrideBookingStatus(context.Background(), 99, OverrideStatusRequest{Status: "completed"})

	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}
