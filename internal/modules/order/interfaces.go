package order

import (
	"context"

	"petshop/internal/domain"
	"petshop/internal/repository"
)

// OrderRepository is the persistence surface the checkout flow needs. The
// write methods are transactional: CreateOrder performs the whole reserve-
// and-persist step atomically, MarkPaid and CancelAndRestock guard the
// transition under a row lock.
type OrderRepository interface {
	CreateOrder(ctx context.Context, o *domain.Order) error
	GetDetails(ctx context.Context, orderID int64) (*repository.OrderDetails, error)
	ListDetailsByUser(ctx context.Context, userID int64) ([]repository.OrderDetails, error)
	MarkPaid(ctx context.Context, orderID int64) (*domain.Order, error)
	CancelAndRestock(ctx context.Context, orderID int64, reason string) (*domain.Order, error)
}

// ItemReader resolves catalog items during the pricing pass.
type ItemReader interface {
	GetByID(ctx context.Context, id int64) (*domain.Item, error)
}

// ReferenceGenerator issues the payment reference shown to the user.
type ReferenceGenerator interface {
	OrderReference(bankName string) string
}
