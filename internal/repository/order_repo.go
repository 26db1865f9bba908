package repository

import (
	"context"
	"errors"
	"time"

	"petshop/internal/domain"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type OrderRepository struct {
	db *gorm.DB
}

func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{db: db}
}

func (r *OrderRepository) DB() *gorm.DB { return r.db }

type orderModel struct {
	ID            int64     `gorm:"column:id;primaryKey"`
	UserID        int64     `gorm:"column:user_id;index"`
	Total         int64     `gorm:"column:total"`
	Status        string    `gorm:"column:status"`
	BankName      string    `gorm:"column:bank_name"`
	VANumber      string    `gorm:"column:va_number"`
	PaymentMethod string    `gorm:"column:payment_method"`
	CancelReason  *string   `gorm:"column:cancel_reason"`
	CreatedAt     time.Time `gorm:"column:created_at"`
}

func (orderModel) TableName() string { return "orders" }

type orderLineModel struct {
	ID       int64 `gorm:"column:id;primaryKey"`
	OrderID  int64 `gorm:"column:order_id;index"`
	ItemID   int64 `gorm:"column:item_id"`
	Quantity int64 `gorm:"column:quantity"`
	Subtotal int64 `gorm:"column:subtotal"`
}

func (orderLineModel) TableName() string { return "order_lines" }

func toDomainOrder(m orderModel) *domain.Order {
	var reason string
	if m.CancelReason != nil {
		reason = *m.CancelReason
	}
	return &domain.Order{
		ID:            m.ID,
		UserID:        m.UserID,
		Total:         m.Total,
		Status:        domain.OrderStatus(m.Status),
		BankName:      m.BankName,
		VANumber:      m.VANumber,
		PaymentMethod: m.PaymentMethod,
		CancelReason:  reason,
		CreatedAt:     m.CreatedAt,
	}
}

// OrderLineDetail is an order line joined with its catalog item. Subtotal is
// the frozen creation-time value, not a recomputation.
type OrderLineDetail struct {
	ItemID   int64  `gorm:"column:item_id" json:"item_id"`
	ItemName string `gorm:"column:name" json:"item_name"`
	ImageURL string `gorm:"column:image_url" json:"image_url,omitempty"`
	Quantity int64  `gorm:"column:quantity" json:"quantity"`
	Subtotal int64  `gorm:"column:subtotal" json:"subtotal"`
}

type OrderDetails struct {
	Order domain.Order
	Lines []OrderLineDetail
}

// CreateOrder runs the whole checkout write phase in one transaction: item
// rows are locked, stock is re-checked and decremented, the header and lines
// are inserted and the user's matching cart rows are removed. Any failure
// rolls everything back.
func (r *OrderRepository) CreateOrder(ctx context.Context, o *domain.Order) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		itemIDs := make([]int64, 0, len(o.Lines))
		for i := range o.Lines {
			line := &o.Lines[i]
			itemIDs = append(itemIDs, line.ItemID)

			var it itemModel
			err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&it, line.ItemID).Error
			if err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return &domain.ItemNotFoundError{ItemID: line.ItemID}
				}
				return err
			}
			if it.Stock < line.Quantity {
				return &domain.InsufficientStockError{ItemName: it.Name, Remaining: it.Stock}
			}

			res := tx.Model(&itemModel{}).
				Where("id = ?", it.ID).
				UpdateColumn("stock", gorm.Expr("stock - ?", line.Quantity))
			if res.Error != nil {
				// Backstop for the check constraint on items.stock; the lock
				// above already serializes concurrent decrements.
				if isStockCheckViolation(res.Error) {
					return &domain.InsufficientStockError{ItemName: it.Name, Remaining: it.Stock}
				}
				return res.Error
			}
		}

		m := orderModel{
			UserID:        o.UserID,
			Total:         o.Total,
			Status:        string(o.Status),
			BankName:      o.BankName,
			VANumber:      o.VANumber,
			PaymentMethod: o.PaymentMethod,
			CreatedAt:     o.CreatedAt,
		}
		if err := tx.Create(&m).Error; err != nil {
			return err
		}
		o.ID = m.ID
		o.CreatedAt = m.CreatedAt

		for i := range o.Lines {
			lm := orderLineModel{
				OrderID:  m.ID,
				ItemID:   o.Lines[i].ItemID,
				Quantity: o.Lines[i].Quantity,
				Subtotal: o.Lines[i].Subtotal,
			}
			if err := tx.Create(&lm).Error; err != nil {
				return err
			}
			o.Lines[i].ID = lm.ID
			o.Lines[i].OrderID = m.ID
		}

		return tx.Where("user_id = ? AND item_id IN ?", o.UserID, itemIDs).
			Delete(&cartLineModel{}).Error
	})
}

func isStockCheckViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23514"
}

func (r *OrderRepository) GetDetails(ctx context.Context, orderID int64) (*OrderDetails, error) {
	var m orderModel
	if err := r.db.WithContext(ctx).First(&m, orderID).Error; err != nil {
		return nil, err
	}

	lines, err := r.linesFor(ctx, orderID)
	if err != nil {
		return nil, err
	}
	return &OrderDetails{Order: *toDomainOrder(m), Lines: lines}, nil
}

func (r *OrderRepository) ListDetailsByUser(ctx context.Context, userID int64) ([]OrderDetails, error) {
	var rows []orderModel
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	out := make([]OrderDetails, 0, len(rows))
	for _, m := range rows {
		lines, err := r.linesFor(ctx, m.ID)
		if err != nil {
			return nil, err
		}
		out = append(out, OrderDetails{Order: *toDomainOrder(m), Lines: lines})
	}
	return out, nil
}

// AdminOrderDetail is the back-office view: the order with its customer's
// display name and the joined lines.
type AdminOrderDetail struct {
	Order        domain.Order      `json:"order"`
	CustomerName string            `json:"customer_name"`
	Lines        []OrderLineDetail `json:"lines"`
}

type adminOrderRow struct {
	orderModel
	CustomerName *string `gorm:"column:customer_name"`
}

func (r *OrderRepository) ListAllDetails(ctx context.Context) ([]AdminOrderDetail, error) {
	var rows []adminOrderRow
	err := r.db.WithContext(ctx).
		Table("orders").
		Select("orders.*, users.full_name AS customer_name").
		Joins("LEFT JOIN users ON users.id = orders.user_id").
		Order("orders.created_at DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	out := make([]AdminOrderDetail, 0, len(rows))
	for _, row := range rows {
		lines, err := r.linesFor(ctx, row.ID)
		if err != nil {
			return nil, err
		}
		d := AdminOrderDetail{Order: *toDomainOrder(row.orderModel), Lines: lines}
		if row.CustomerName != nil {
			d.CustomerName = *row.CustomerName
		}
		out = append(out, d)
	}
	return out, nil
}

func (r *OrderRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&orderModel{}).Count(&n).Error
	return n, err
}

// PaidRevenue sums order totals that have been paid, i.e. anything past
// awaiting_payment that was not cancelled.
func (r *OrderRepository) PaidRevenue(ctx context.Context) (int64, error) {
	var sum int64
	err := r.db.WithContext(ctx).Model(&orderModel{}).
		Where("status NOT IN ?", []string{
			string(domain.OrderAwaitingPayment),
			string(domain.OrderCancelled),
		}).
		Select("COALESCE(SUM(total), 0)").
		Scan(&sum).Error
	return sum, err
}

func (r *OrderRepository) linesFor(ctx context.Context, orderID int64) ([]OrderLineDetail, error) {
	var lines []OrderLineDetail
	err := r.db.WithContext(ctx).
		Table("order_lines").
		Select("order_lines.item_id, items.name, items.image_url, order_lines.quantity, order_lines.subtotal").
		Joins("JOIN items ON items.id = order_lines.item_id").
		Where("order_lines.order_id = ?", orderID).
		Order("order_lines.id").
		Scan(&lines).Error
	if err != nil {
		return nil, err
	}
	return lines, nil
}

// MarkPaid advances awaiting_payment to awaiting_confirmation. The row is
// locked so a concurrent pay cannot double-apply.
func (r *OrderRepository) MarkPaid(ctx context.Context, orderID int64) (*domain.Order, error) {
	var out *domain.Order
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var m orderModel
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&m, orderID).Error; err != nil {
			return err
		}
		if !domain.OrderStatus(m.Status).CanPay() {
			return &domain.InvalidTransitionError{Current: m.Status, Action: "pay"}
		}
		res := tx.Model(&orderModel{}).
			Where("id = ?", orderID).
			Update("status", string(domain.OrderAwaitingConfirmation))
		if res.Error != nil {
			return res.Error
		}
		m.Status = string(domain.OrderAwaitingConfirmation)
		out = toDomainOrder(m)
		return nil
	})
	return out, err
}

// CancelAndRestock flips the order to cancelled and adds every line's
// reserved quantity back to its item, atomically with the status change.
func (r *OrderRepository) CancelAndRestock(ctx context.Context, orderID int64, reason string) (*domain.Order, error) {
	var out *domain.Order
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var m orderModel
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&m, orderID).Error; err != nil {
			return err
		}
		if !domain.OrderStatus(m.Status).CanCancel() {
			return &domain.InvalidTransitionError{Current: m.Status, Action: "cancel"}
		}

		var lines []orderLineModel
		if err := tx.Where("order_id = ?", orderID).Find(&lines).Error; err != nil {
			return err
		}
		for _, ln := range lines {
			err := tx.Model(&itemModel{}).
				Where("id = ?", ln.ItemID).
				UpdateColumn("stock", gorm.Expr("stock + ?", ln.Quantity)).Error
			if err != nil {
				return err
			}
		}

		res := tx.Model(&orderModel{}).Where("id = ?", orderID).Updates(map[string]interface{}{
			"status":        string(domain.OrderCancelled),
			"cancel_reason": reason,
		})
		if res.Error != nil {
			return res.Error
		}
		m.Status = string(domain.OrderCancelled)
		m.CancelReason = &reason
		out = toDomainOrder(m)
		return nil
	})
	return out, err
}

// OverrideStatus sets an arbitrary status without consulting the transition
// guards. Operator escape hatch; callers are expected to audit-log it.
func (r *OrderRepository) OverrideStatus(ctx context.Context, orderID int64, status, reason string) error {
	updates := map[string]interface{}{"status": status}
	if reason != "" {
		updates["cancel_reason"] = reason
	}
	res := r.db.WithContext(ctx).Model(&orderModel{}).Where("id = ?", orderID).Updates(updates)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
