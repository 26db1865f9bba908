package order

import (
	"context"
	"time"

	"petshop/internal/domain"
	"petshop/internal/repository"
)

const defaultCancelReason = "cancelled by user"

type Service struct {
	orders  OrderRepository
	items   ItemReader
	refs    ReferenceGenerator
	loggerf func(format string, args ...interface{})
}

func NewService(orders OrderRepository, items ItemReader, refs ReferenceGenerator, loggerf func(format string, args ...interface{})) *Service {
	if loggerf == nil {
		loggerf = func(string, ...interface{}) {}
	}
	return &Service{
		orders:  orders,
		items:   items,
		refs:    refs,
		loggerf: loggerf,
	}
}

// CreateOrder is the checkout: a read-only pricing pass over the catalog,
// then one atomic write phase (stock decrement, header + lines, cart
// clearing) inside the repository transaction. Prices always come from the
// catalog, never from the request.
func (s *Service) CreateOrder(ctx context.Context, req CreateOrderRequest) (*CheckoutResult, error) {
	if req.UserID == 0 || len(req.Items) == 0 {
		return nil, ErrInvalidRequest
	}

	s.loggerf("level=info msg=checkout started user_id=%d lines=%d", req.UserID, len(req.Items))

	var total int64
	lines := make([]domain.OrderLine, 0, len(req.Items))
	for _, li := range req.Items {
		if li.Quantity <= 0 {
			return nil, ErrInvalidRequest
		}

		item, err := s.items.GetByID(ctx, li.ItemID)
		if err != nil {
			return nil, err
		}
		if item.Stock < li.Quantity {
			s.loggerf("level=warn msg=insufficient stock item=%q remaining=%d requested=%d", item.Name, item.Stock, li.Quantity)
			return nil, &domain.InsufficientStockError{ItemName: item.Name, Remaining: item.Stock}
		}

		subtotal := item.Price * li.Quantity
		total += subtotal
		lines = append(lines, domain.OrderLine{
			ItemID:   li.ItemID,
			Quantity: li.Quantity,
			Subtotal: subtotal,
		})
	}

	bank := req.BankName
	if bank == "" {
		bank = "BCA"
	}
	method := req.PaymentMethod
	if method == "" {
		method = "transfer"
	}

	o := &domain.Order{
		UserID:        req.UserID,
		Total:         total,
		Status:        domain.OrderAwaitingPayment,
		BankName:      bank,
		VANumber:      s.refs.OrderReference(bank),
		PaymentMethod: method,
		CreatedAt:     time.Now().UTC(),
		Lines:         lines,
	}

	if err := s.orders.CreateOrder(ctx, o); err != nil {
		s.loggerf("level=error msg=checkout failed user_id=%d err=%v", req.UserID, err)
		return nil, err
	}

	s.loggerf("level=info msg=order created order_id=%d user_id=%d total=%d", o.ID, o.UserID, o.Total)

	return &CheckoutResult{
		OrderID:  o.ID,
		Total:    o.Total,
		VANumber: o.VANumber,
		BankName: o.BankName,
		Status:   string(o.Status),
	}, nil
}

func (s *Service) GetOrder(ctx context.Context, orderID int64) (*OrderResponse, error) {
	d, err := s.orders.GetDetails(ctx, orderID)
	if err != nil {
		return nil, err
	}
	resp := toOrderResponse(d)
	return &resp, nil
}

func (s *Service) ListUserOrders(ctx context.Context, userID int64) ([]OrderResponse, error) {
	details, err := s.orders.ListDetailsByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	out := make([]OrderResponse, 0, len(details))
	for i := range details {
		out = append(out, toOrderResponse(&details[i]))
	}
	return out, nil
}

func (s *Service) PayOrder(ctx context.Context, orderID int64) (*domain.Order, error) {
	o, err := s.orders.MarkPaid(ctx, orderID)
	if err != nil {
		return nil, err
	}
	s.loggerf("level=info msg=order paid order_id=%d status=%s", o.ID, o.Status)
	return o, nil
}

// CancelOrder restores every reserved quantity and records the reason.
func (s *Service) CancelOrder(ctx context.Context, orderID int64, reason string) (*domain.Order, error) {
	if reason == "" {
		reason = defaultCancelReason
	}
	o, err := s.orders.CancelAndRestock(ctx, orderID, reason)
	if err != nil {
		return nil, err
	}
	s.loggerf("level=info msg=order cancelled order_id=%d reason=%q", o.ID, reason)
	return o, nil
}

func toOrderResponse(d *repository.OrderDetails) OrderResponse {
	return OrderResponse{
		ID:            d.Order.ID,
		Total:         d.Order.Total,
		Status:        string(d.Order.Status),
		PaymentMethod: d.Order.PaymentMethod,
		BankName:      d.Order.BankName,
		VANumber:      d.Order.VANumber,
		CancelReason:  d.Order.CancelReason,
		CreatedAt:     d.Order.CreatedAt.Format("2006-01-02 15:04"),
		Items:         d.Lines,
	}
}
