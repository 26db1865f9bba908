package repository

import (
	"context"
	"time"

	"petshop/internal/domain"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type BookingRepository struct {
	db *gorm.DB
}

func NewBookingRepository(db *gorm.DB) *BookingRepository {
	return &BookingRepository{db: db}
}

func (r *BookingRepository) DB() *gorm.DB { return r.db }

type bookingModel struct {
	ID            int64     `gorm:"column:id;primaryKey"`
	UserID        int64     `gorm:"column:user_id;index"`
	ServiceName   string    `gorm:"column:service_name"`
	BookingDate   time.Time `gorm:"column:booking_date"`
	BookingTime   string    `gorm:"column:booking_time"`
	Complaint     string    `gorm:"column:complaint"`
	PetName       string    `gorm:"column:pet_name"`
	PetSpecies    string    `gorm:"column:pet_species"`
	PetColor      string    `gorm:"column:pet_color"`
	Status        string    `gorm:"column:status"`
	Total         int64     `gorm:"column:total"`
	PaymentMethod string    `gorm:"column:payment_method"`
	BankName      string    `gorm:"column:bank_name"`
	VANumber      string    `gorm:"column:va_number"`
	CancelReason  *string   `gorm:"column:cancel_reason"`
	CreatedAt     time.Time `gorm:"column:created_at"`
}

func (bookingModel) TableName() string { return "bookings" }

func toDomainBooking(m bookingModel) *domain.Booking {
	var reason string
	if m.CancelReason != nil {
		reason = *m.CancelReason
	}
	return &domain.Booking{
		ID:            m.ID,
		UserID:        m.UserID,
		ServiceName:   m.ServiceName,
		BookingDate:   m.BookingDate,
		BookingTime:   m.BookingTime,
		Complaint:     m.Complaint,
		PetName:       m.PetName,
		PetSpecies:    m.PetSpecies,
		PetColor:      m.PetColor,
		Status:        domain.BookingStatus(m.Status),
		Total:         m.Total,
		PaymentMethod: m.PaymentMethod,
		BankName:      m.BankName,
		VANumber:      m.VANumber,
		CancelReason:  reason,
		CreatedAt:     m.CreatedAt,
	}
}

func (r *BookingRepository) Create(ctx context.Context, b *domain.Booking) error {
	m := bookingModel{
		UserID:        b.UserID,
		ServiceName:   b.ServiceName,
		BookingDate:   b.BookingDate,
		BookingTime:   b.BookingTime,
		Complaint:     b.Complaint,
		PetName:       b.PetName,
		PetSpecies:    b.PetSpecies,
		PetColor:      b.PetColor,
		Status:        string(b.Status),
		Total:         b.Total,
		PaymentMethod: b.PaymentMethod,
		BankName:      b.BankName,
		VANumber:      b.VANumber,
		CreatedAt:     b.CreatedAt,
	}
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return err
	}
	*b = *toDomainBooking(m)
	return nil
}

func (r *BookingRepository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	var m bookingModel
	if err := r.db.WithContext(ctx).First(&m, id).Error; err != nil {
		return nil, err
	}
	return toDomainBooking(m), nil
}

// BookingDetails is a booking joined with its service item's display image,
// when a catalog entry with a matching name exists.
type BookingDetails struct {
	Booking  domain.Booking
	ImageURL string
}

type bookingDetailRow struct {
	bookingModel
	ItemImageURL *string `gorm:"column:item_image_url"`
}

func (r *BookingRepository) ListDetailsByUser(ctx context.Context, userID int64) ([]BookingDetails, error) {
	var rows []bookingDetailRow
	err := r.db.WithContext(ctx).
		Table("bookings").
		Select("bookings.*, items.image_url AS item_image_url").
		Joins("LEFT JOIN items ON items.name = bookings.service_name").
		Where("bookings.user_id = ?", userID).
		Order("bookings.id DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	out := make([]BookingDetails, 0, len(rows))
	for _, row := range rows {
		d := BookingDetails{Booking: *toDomainBooking(row.bookingModel)}
		if row.ItemImageURL != nil {
			d.ImageURL = *row.ItemImageURL
		}
		out = append(out, d)
	}
	return out, nil
}

// AdminBookingDetail adds the customer's display name for the back office.
type AdminBookingDetail struct {
	Booking      domain.Booking `json:"booking"`
	CustomerName string         `json:"customer_name"`
	ImageURL     string         `json:"image_url,omitempty"`
}

type adminBookingRow struct {
	bookingModel
	ItemImageURL *string `gorm:"column:item_image_url"`
	CustomerName *string `gorm:"column:customer_name"`
}

func (r *BookingRepository) ListAllDetails(ctx context.Context) ([]AdminBookingDetail, error) {
	var rows []adminBookingRow
	err := r.db.WithContext(ctx).
		Table("bookings").
		Select("bookings.*, items.image_url AS item_image_url, users.full_name AS customer_name").
		Joins("LEFT JOIN items ON items.name = bookings.service_name").
		Joins("LEFT JOIN users ON users.id = bookings.user_id").
		Order("bookings.id DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	out := make([]AdminBookingDetail, 0, len(rows))
	for _, row := range rows {
		d := AdminBookingDetail{Booking: *toDomainBooking(row.bookingModel)}
		if row.ItemImageURL != nil {
			d.ImageURL = *row.ItemImageURL
		}
		if row.CustomerName != nil {
			d.CustomerName = *row.CustomerName
		}
		out = append(out, d)
	}
	return out, nil
}

func (r *BookingRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&bookingModel{}).Count(&n).Error
	return n, err
}

// PaidRevenue sums booking totals past awaiting_payment that were not
// cancelled.
func (r *BookingRepository) PaidRevenue(ctx context.Context) (int64, error) {
	var sum int64
	err := r.db.WithContext(ctx).Model(&bookingModel{}).
		Where("status NOT IN ?", []string{
			string(domain.BookingAwaitingPayment),
			string(domain.BookingCancelled),
		}).
		Select("COALESCE(SUM(total), 0)").
		Scan(&sum).Error
	return sum, err
}

// MarkPaid advances awaiting_payment to processing under a row lock.
func (r *BookingRepository) MarkPaid(ctx context.Context, bookingID int64) (*domain.Booking, error) {
	var out *domain.Booking
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var m bookingModel
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&m, bookingID).Error; err != nil {
			return err
		}
		if !domain.BookingStatus(m.Status).CanPay() {
			return &domain.InvalidTransitionError{Current: m.Status, Action: "pay"}
		}
		res := tx.Model(&bookingModel{}).
			Where("id = ?", bookingID).
			Update("status", string(domain.BookingProcessing))
		if res.Error != nil {
			return res.Error
		}
		m.Status = string(domain.BookingProcessing)
		out = toDomainBooking(m)
		return nil
	})
	return out, err
}

// CancelWithReason is the booking counterpart of order cancellation: status
// and reason only, no stock was ever reserved.
func (r *BookingRepository) CancelWithReason(ctx context.Context, bookingID int64, reason string) (*domain.Booking, error) {
	var out *domain.Booking
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var m bookingModel
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&m, bookingID).Error; err != nil {
			return err
		}
		if !domain.BookingStatus(m.Status).CanCancel() {
			return &domain.InvalidTransitionError{Current: m.Status, Action: "cancel"}
		}
		res := tx.Model(&bookingModel{}).Where("id = ?", bookingID).Updates(map[string]interface{}{
			"status":        string(domain.BookingCancelled),
			"cancel_reason": reason,
		})
		if res.Error != nil {
			return res.Error
		}
		m.Status = string(domain.BookingCancelled)
		m.CancelReason = &reason
		out = toDomainBooking(m)
		return nil
	})
	return out, err
}

// OverrideStatus bypasses the transition guards; callers audit-log it.
func (r *BookingRepository) OverrideStatus(ctx context.Context, bookingID int64, status, reason string) error {
	updates := map[string]interface{}{"status": status}
	if reason != "" {
		updates["cancel_reason"] = reason
	}
	res := r.db.WithContext(ctx).Model(&bookingModel{}).Where("id = ?", bookingID).Updates(updates)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
