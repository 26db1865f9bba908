package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOrderStatus_CanPay(t *testing.T) {
	assert.True(t, OrderAwaitingPayment.CanPay())

	for _, s := range []OrderStatus{
		OrderAwaitingConfirmation,
		OrderProcessing,
		OrderShipped,
		OrderDelivered,
		OrderCompleted,
		OrderCancelled,
	} {
		assert.False(t, s.CanPay(), "pay should be rejected from %s", s)
	}
}

func TestOrderStatus_CanCancel(t *testing.T) {
	for _, s := range []OrderStatus{
		OrderAwaitingPayment,
		OrderAwaitingConfirmation,
		OrderProcessing,
	} {
		assert.True(t, s.CanCancel(), "cancel should be allowed from %s", s)
	}

	for _, s := range []OrderStatus{OrderShipped, OrderDelivered, OrderCompleted, OrderCancelled} {
		assert.False(t, s.CanCancel(), "cancel should be rejected from %s", s)
	}
}

func TestBookingStatus_Transitions(t *testing.T) {
	assert.True(t, BookingAwaitingPayment.CanPay())
	assert.False(t, BookingProcessing.CanPay())
	assert.False(t, BookingCancelled.CanPay())

	assert.True(t, BookingAwaitingPayment.CanCancel())
	assert.True(t, BookingProcessing.CanCancel())
	assert.False(t, BookingCompleted.CanCancel())
	assert.False(t, BookingCancelled.CanCancel())
}
