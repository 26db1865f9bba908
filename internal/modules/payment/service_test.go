package payment

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOrderReference_BankPrefixes(t *testing.T) {
	svc := NewService(1)

	cases := map[string]string{
		"BCA":     "8800",
		"BRI":     "1234",
		"MANDIRI": "9000",
		"BNI":     "8810",
		"CIMB":    "1199",
		"bca":     "8800",
		" bni ":   "8810",
	}

	for bank, prefix := range cases {
		va := svc.OrderReference(bank)
		assert.True(t, strings.HasPrefix(va, prefix), "bank %q: got %q", bank, va)
		assert.Len(t, va, len(prefix)+10)
	}
}

func TestOrderReference_UnknownBankFallsBack(t *testing.T) {
	svc := NewService(1)

	va := svc.OrderReference("DANAMON")
	assert.True(t, strings.HasPrefix(va, "8800"))
	assert.Len(t, va, 14)
}

func TestBookingReference_TransferOnly(t *testing.T) {
	svc := NewService(1)

	va := svc.BookingReference("Bank Transfer", 42)
	assert.True(t, strings.HasPrefix(va, "880042"))
	assert.Len(t, va, len("880042")+3)

	assert.Empty(t, svc.BookingReference("Cash", 42))
	assert.Empty(t, svc.BookingReference("Pay at Store", 42))
}
