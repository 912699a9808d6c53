package usecase

import (
	"errors"
	"math"
	"regexp"
	"strconv"
	"strings"

	"fieldops/internal/domain/entities"
)

// TaxRate is applied on top of the service subtotal. No tax is charged in the
// current revision; the constant is kept so the total computation already has
// the seam.
const TaxRate = 0.0

// amountTolerance is how far a typed cash/check amount may drift from the
// computed total (one cent).
const amountTolerance = 0.01

var (
	ErrNoServicesSelected = errors.New("no services selected")
	ErrInvalidPrice       = errors.New("invalid service price")
	ErrNoPaymentMethod    = errors.New("no payment method selected")
	ErrInvalidTotal       = errors.New("invalid total for payment method")
	ErrInvalidAmount      = errors.New("invalid entered amount")
	ErrAmountMismatch     = errors.New("entered amount does not match total")
)

var basePricePattern = regexp.MustCompile(`[0-9]+`)

// BasePrice derives a numeric base price from a catalog price-range string by
// taking the first contiguous run of digits, so "$50-$100" yields 50. The
// lower bound of a range is assumed representative; the upper bound is never
// parsed.
//
// The second return value distinguishes a genuinely parsed price from the 0
// fallback used when the text carries no digits at all (e.g. "Varies").
func BasePrice(priceRange string) (float64, bool) {
	m := basePricePattern.FindString(priceRange)
	if m == "" {
		return 0, false
	}
	n, err := strconv.ParseFloat(m, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}

// Subtotal sums prices restricted to the selected service ids. Ids missing
// from the price map contribute zero; ValidatePricing catches that case before
// the pricing step can be left.
func Subtotal(selected map[string]bool, prices map[string]float64) float64 {
	sum := 0.0
	for id := range selected {
		sum += prices[id]
	}
	return sum
}

// Total applies the tax rate to a subtotal.
func Total(subtotal, taxRate float64) float64 {
	return subtotal * (1 + taxRate)
}

// ValidatePricing gates the transition out of the pricing step: every selected
// service must carry a present, finite, non-negative price.
//
// A total of exactly zero passes here on purpose; whether a zero total is
// acceptable depends on the payment method and is checked by
// ValidatePaymentTotal, which lets fully discounted jobs reach the
// payment-method step.
func ValidatePricing(selected map[string]bool, prices map[string]float64) error {
	if len(selected) == 0 {
		return ErrNoServicesSelected
	}
	for id := range selected {
		p, ok := prices[id]
		if !ok || math.IsNaN(p) || p < 0 {
			return ErrInvalidPrice
		}
	}
	return nil
}

// ValidatePaymentTotal rejects a zero total for every method except free.
//
// The asymmetry is intentional existing behavior: a nonzero total combined
// with method=free is accepted (discount-to-zero), while online/cash/check at
// a zero total are blocked.
func ValidatePaymentTotal(method entities.PaymentMethod, total float64) error {
	if method != entities.PaymentMethodFree && total == 0 {
		return ErrInvalidTotal
	}
	return nil
}

// ValidateCashCheckAmount checks the operator-typed amount against the
// computed total within a one-cent tolerance.
func ValidateCashCheckAmount(enteredAmount string, total float64) error {
	s := strings.TrimSpace(enteredAmount)
	if s == "" {
		return ErrInvalidAmount
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || v <= 0 {
		return ErrInvalidAmount
	}
	if math.Abs(v-total) > amountTolerance {
		return ErrAmountMismatch
	}
	return nil
}
