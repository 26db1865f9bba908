package domain

import "fmt"

// ItemNotFoundError names the catalog id that failed to resolve.
type ItemNotFoundError struct {
	ItemID int64
}

func (e *ItemNotFoundError) Error() string {
	return fmt.Sprintf("item %d not found", e.ItemID)
}

// InsufficientStockError reports the item by display name together with the
// stock remaining at validation time.
type InsufficientStockError struct {
	ItemName  string
	Remaining int64
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("insufficient stock for %q (remaining: %d)", e.ItemName, e.Remaining)
}

// InvalidTransitionError is returned when a lifecycle guard rejects an
// action; the record is left untouched.
type InvalidTransitionError struct {
	Current string
	Action  string
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("cannot %s from status %q", e.Action, e.Current)
}
