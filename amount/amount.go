// Package amount converts between the decimal amounts users type and
// the fixed-point int64 "stroops" the wire and the ledger use: every
// asset amount is scaled by 10^7, giving 7 decimal digits of
// precision regardless of the asset.
package amount

import (
	"math"
	"strconv"
	"strings"

	"github.com/EXCCoin/stellarbase/errs"
)

// Scale is the number of decimal digits a stroops amount carries.
const Scale = 7

var scaleFactor = int64(math.Pow10(Scale))

// MaxStroops is the largest representable amount (the protocol's
// INT64_MAX, matching the ledger's accounting type).
const MaxStroops int64 = math.MaxInt64

// Parse converts a decimal string amount (e.g. "100.5") to its stroops
// representation. Negative amounts and more than Scale fractional
// digits are rejected.
func Parse(s string) (int64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, errs.New(errs.ErrParseAmount, "empty amount")
	}
	if strings.HasPrefix(s, "-") {
		return 0, errs.New(errs.ErrNegativeStroops, "amount %q is negative", s)
	}
	whole, frac, hasFrac := strings.Cut(s, ".")
	if whole == "" {
		whole = "0"
	}
	if len(frac) > Scale {
		return 0, errs.New(errs.ErrInvalidAmountScale, "amount %q has more than %d fractional digits", s, Scale)
	}
	wholeVal, err := strconv.ParseInt(whole, 10, 64)
	if err != nil {
		return 0, errs.New(errs.ErrParseAmount, "invalid amount %q: %v", s, err)
	}
	fracVal := int64(0)
	if hasFrac {
		padded := frac + strings.Repeat("0", Scale-len(frac))
		fracVal, err = strconv.ParseInt(padded, 10, 64)
		if err != nil {
			return 0, errs.New(errs.ErrParseAmount, "invalid amount %q: %v", s, err)
		}
	}
	if wholeVal > (MaxStroops-fracVal)/scaleFactor {
		return 0, errs.New(errs.ErrInvalidStroopsAmount, "amount %q overflows int64 stroops", s)
	}
	return wholeVal*scaleFactor + fracVal, nil
}

// String renders a stroops amount as a decimal string, trimming
// trailing fractional zeros (and the decimal point itself if the
// amount is a whole number).
func String(stroops int64) string {
	neg := ""
	if stroops < 0 {
		neg = "-"
		stroops = -stroops
	}
	whole := stroops / scaleFactor
	frac := stroops % scaleFactor
	if frac == 0 {
		return neg + strconv.FormatInt(whole, 10)
	}
	fracStr := strconv.FormatInt(frac, 10)
	fracStr = strings.Repeat("0", Scale-len(fracStr)) + fracStr
	fracStr = strings.TrimRight(fracStr, "0")
	return neg + strconv.FormatInt(whole, 10) + "." + fracStr
}

// Price is a reduced fraction (numerator/denominator), the wire shape
// for offer and path-payment prices.
type Price struct {
	N int32
	D int32
}

// gcd returns the greatest common divisor of a and b (both >= 0).
func gcd(a, b int64) int64 {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

// NewPrice reduces a floating-point price to an int32/int32 fraction
// via continued-fraction expansion, matching how the ledger itself
// represents prices.
func NewPrice(price float64) (Price, error) {
	if price <= 0 {
		return Price{}, errs.New(errs.ErrParsePrice, "price %v must be positive", price)
	}
	const maxInt32 = math.MaxInt32
	bestN, bestD := int64(1), int64(1)
	bestErr := math.Abs(price - 1)
	n0, d0 := int64(0), int64(1)
	n1, d1 := int64(1), int64(0)
	x := price
	for i := 0; i < 32; i++ {
		a := int64(math.Floor(x))
		n2 := a*n1 + n0
		d2 := a*d1 + d0
		if n2 > maxInt32 || d2 > maxInt32 {
			break
		}
		n0, d0 = n1, d1
		n1, d1 = n2, d2
		if d1 != 0 {
			approx := float64(n1) / float64(d1)
			if e := math.Abs(approx - price); e < bestErr {
				bestErr = e
				bestN, bestD = n1, d1
			}
		}
		frac := x - math.Floor(x)
		if frac < 1e-10 {
			break
		}
		x = 1 / frac
	}
	if bestD == 0 {
		return Price{}, errs.New(errs.ErrParsePrice, "price %v could not be reduced", price)
	}
	g := gcd(bestN, bestD)
	if g > 1 {
		bestN /= g
		bestD /= g
	}
	return Price{N: int32(bestN), D: int32(bestD)}, nil
}

// Float64 returns the price as a floating-point ratio.
func (p Price) Float64() float64 {
	if p.D == 0 {
		return 0
	}
	return float64(p.N) / float64(p.D)
}
