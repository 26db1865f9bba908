package payment

import (
	"fmt"
	"math/rand"
	"strings"
)

// Bank code to virtual-account prefix. Unknown banks fall back to the BCA
// prefix, matching the payment desk's display convention.
var bankPrefixes = map[string]string{
	"BCA":     "8800",
	"BRI":     "1234",
	"MANDIRI": "9000",
	"BNI":     "8810",
	"CIMB":    "1199",
}

const defaultPrefix = "8800"

// Service generates virtual-account references. A reference is a display and
// reconciliation aid only: no uniqueness is enforced and nothing validates it
// against a bank.
type Service struct {
	rnd *rand.Rand
}

func NewService(seed int64) *Service {
	return &Service{rnd: rand.New(rand.NewSource(seed))}
}

// OrderReference builds a bank-prefixed VA number with a 10-digit random
// suffix, e.g. "88003748291056".
func (s *Service) OrderReference(bankName string) string {
	prefix, ok := bankPrefixes[strings.ToUpper(strings.TrimSpace(bankName))]
	if !ok {
		prefix = defaultPrefix
	}
	suffix := 1000000000 + s.rnd.Int63n(9000000000)
	return fmt.Sprintf("%s%d", prefix, suffix)
}

// BookingReference issues a VA only for transfer-style payment methods;
// cash and in-person methods get none.
func (s *Service) BookingReference(paymentMethod string, userID int64) string {
	if !strings.Contains(strings.ToLower(paymentMethod), "transfer") {
		return ""
	}
	return fmt.Sprintf("%s%d%03d", defaultPrefix, userID, s.rnd.Intn(900)+100)
}
