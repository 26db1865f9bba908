package booking

import (
	"context"
	"testing"

	"petshop/internal/domain"
	"petshop/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

type MockBookingRepository struct {
	mock.Mock
}

func (m *MockBookingRepository) Create(ctx context.Context, b *domain.Booking) error {
	args := m.Called(ctx, b)
	if b != nil {
		b.ID = 77 // simulate DB insert
	}
	return args.Error(0)
}

func (m *MockBookingRepository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}

func (m *MockBookingRepository) ListDetailsByUser(ctx context.Context, userID int64) ([]repository.BookingDetails, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]repository.BookingDetails), args.Error(1)
}

func (m *MockBookingRepository) MarkPaid(ctx context.Context, bookingID int64) (*domain.Booking, error) {
	args := m.Called(ctx, bookingID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}

func (m *MockBookingRepository) CancelWithReason(ctx context.Context, bookingID int64, reason string) (*domain.Booking, error) {
	args := m.Called(ctx, bookingID, reason)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}

type MockServiceCatalog struct {
	mock.Mock
}

func (m *MockServiceCatalog) GetByName(ctx context.Context, name string) (*domain.Item, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Item), args.Error(1)
}

type MockReferenceGenerator struct {
	mock.Mock
}

func (m *MockReferenceGenerator) BookingReference(paymentMethod string, userID int64) string {
	args := m.Called(paymentMethod, userID)
	return args.String(0)
}

func TestCreateBooking_PriceFromCatalog(t *testing.T) {
	bookings := new(MockBookingRepository)
	catalog := new(MockServiceCatalog)
	refs := new(MockReferenceGenerator)

	catalog.On("GetByName", mock.Anything, "Grooming Premium").Return(&domain.Item{
		ID: 3, Name: "Grooming Premium", Price: 85000, Category: domain.CategoryService,
	}, nil)
	refs.On("BookingReference", "Bank Transfer", int64(9)).Return("88009123")
	bookings.On("Create", mock.Anything, mock.Anything).Return(nil)

	service := NewService(bookings, catalog, refs, nil)

	result, err := service.CreateBooking(context.Background(), CreateBookingRequest{
		UserID:        9,
		ServiceName:   "Grooming Premium",
		BookingDate:   "2026-09-15",
		BookingTime:   "10:00",
		PetName:       "Milo",
		PetSpecies:    "Cat",
		PaymentMethod: "Bank Transfer",
		BankName:      "BCA",
	})

	assert.NoError(t, err)
	assert.Equal(t, int64(77), result.BookingID)
	assert.Equal(t, int64(85000), result.Total)
	assert.Equal(t, "88009123", result.VANumber)
	assert.Equal(t, string(domain.BookingAwaitingPayment), result.Status)
}

func TestCreateBooking_FallbackPriceWhenServiceUnknown(t *testing.T) {
	bookings := new(MockBookingRepository)
	catalog := new(MockServiceCatalog)
	refs := new(MockReferenceGenerator)

	catalog.On("GetByName", mock.Anything, "Dragon Taming").Return(nil, gorm.ErrRecordNotFound)
	refs.On("BookingReference", "cash", int64(9)).Return("")
	bookings.On("Create", mock.Anything, mock.Anything).Return(nil)

	service := NewService(bookings, catalog, refs, nil)

	result, err := service.CreateBooking(context.Background(), CreateBookingRequest{
		UserID:      9,
		ServiceName: "Dragon Taming",
		BookingDate: "2026-09-15",
		BookingTime: "10:00",
	})

	assert.NoError(t, err)
	assert.Equal(t, int64(defaultServicePrice), result.Total)
	assert.Empty(t, result.VANumber)
}

func TestCreateBooking_InvalidDate(t *testing.T) {
	service := NewService(new(MockBookingRepository), new(MockServiceCatalog), new(MockReferenceGenerator), nil)

	_, err := service.CreateBooking(context.Background(), CreateBookingRequest{
		UserID:      9,
		ServiceName: "Grooming",
		BookingDate: "15-09-2026",
		BookingTime: "10:00",
	})

	assert.ErrorIs(t, err, ErrInvalidRequest)
}

func TestCancelBooking_GuardRejected(t *testing.T) {
	bookings := new(MockBookingRepository)
	bookings.On("CancelWithReason", mock.Anything, int64(4), defaultCancelReason).
		Return(nil, &domain.InvalidTransitionError{Current: "cancelled", Action: "cancel"})

	service := NewService(bookings, new(MockServiceCatalog), new(MockReferenceGenerator), nil)

	_, err := service.CancelBooking(context.Background(), 4, "")

	var badTransition *domain.InvalidTransitionError
	assert.ErrorAs(t, err, &badTransition)
	assert.Equal(t, "cancelled", badTransition.Current)
}
