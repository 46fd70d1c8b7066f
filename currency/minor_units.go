package currency

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/shopspring/decimal"
)

// Code is a supported ISO 4217 currency code. The set is closed on
// purpose: adding a currency means adding a case to MinorUnits.
type Code string

const (
	USD Code = "USD"
	UGX Code = "UGX"
)

var (
	ErrInvalidAmount       = errors.New("amount must be a positive finite number")
	ErrUnsupportedCurrency = errors.New("unsupported currency")
)

// RoundingObserver is notified when a zero-decimal currency amount had
// to be snapped to a whole unit before submission to the processor.
type RoundingObserver interface {
	RoundingAdjusted(code Code, amount float64, rawMinor, roundedMinor int64)
}

// Normalizer converts human-facing decimal amounts into the integer
// minor-unit amounts the payment processor expects.
type Normalizer struct {
	Observer RoundingObserver
}

var hundred = decimal.NewFromInt(100)

// MinorUnits returns the processor minor-unit amount for the given
// decimal amount and currency code.
//
// USD carries two decimal digits, so the result is round(amount*100).
// UGX has no fractional unit but the processor API still takes a
// two-decimal representation, so the raw cents value is snapped to the
// nearest multiple of 100; the processor would otherwise round
// silently. A snap that changes the value is reported to the Observer
// and is never an error.
func (n Normalizer) MinorUnits(amount float64, code string) (int64, error) {
	if amount <= 0 || math.IsNaN(amount) || math.IsInf(amount, 0) {
		return 0, ErrInvalidAmount
	}

	switch Code(strings.ToUpper(code)) {
	case USD:
		return decimal.NewFromFloat(amount).Mul(hundred).Round(0).IntPart(), nil
	case UGX:
		raw := decimal.NewFromFloat(amount).Mul(hundred).Round(0)
		snapped := raw.Div(hundred).Round(0).Mul(hundred)
		if !snapped.Equal(raw) && n.Observer != nil {
			n.Observer.RoundingAdjusted(UGX, amount, raw.IntPart(), snapped.IntPart())
		}
		return snapped.IntPart(), nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnsupportedCurrency, code)
	}
}
