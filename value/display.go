package value

import (
	"math/big"
	"strconv"
	"strings"
)

// Default display settings.
const (
	DefaultDigits       = 16
	DefaultMaxExpansion = 10000
)

// Scientific notation is used when the decimal exponent of a rounded value
// is at least the number of digits shown or below minExponent.
const minExponent = -6

// Display controls how numbers are rendered.
type Display struct {
	// Digits is the number of significant digits shown when Full is false.
	// Values are rounded half to even.
	Digits int

	// Full renders the exact decimal expansion with no rounding. A
	// repeating expansion shows its repeating digits in brackets, e.g.
	// 0.1[6] for 1/6.
	Full bool

	// MaxExpansion caps the number of fractional digits written in full
	// mode. Longer expansions are cut and end in "...".
	MaxExpansion int
}

// DefaultDisplay returns the display used by a new session.
func DefaultDisplay() Display {
	return Display{Digits: DefaultDigits, MaxExpansion: DefaultMaxExpansion}
}

// WithDigits returns d rounding to n significant digits.
func (d Display) WithDigits(n int) Display {
	d.Digits = n
	d.Full = false
	return d
}

// WithFull returns d in full precision mode.
func (d Display) WithFull() Display {
	d.Full = true
	return d
}

// String describes the display mode.
func (d Display) String() string {
	if d.Full {
		return "full precision"
	}
	return strconv.Itoa(d.Digits) + " significant digits"
}

var (
	bigTen = big.NewInt(10)
	bigTwo = big.NewInt(2)
)

// Format renders n according to d.
func (n Number) Format(d Display) string {
	r := n.r()
	if r.Sign() == 0 {
		return "0"
	}
	var sb strings.Builder
	if r.Sign() < 0 {
		sb.WriteByte('-')
	}
	num := new(big.Int).Abs(r.Num())
	den := new(big.Int).Set(r.Denom())
	if d.Full {
		writeExpansion(&sb, num, den, d.maxExpansion())
	} else {
		writeRounded(&sb, num, den, d.digits())
	}
	return sb.String()
}

func (d Display) digits() int {
	if d.Digits < 1 {
		return DefaultDigits
	}
	return d.Digits
}

func (d Display) maxExpansion() int {
	if d.MaxExpansion < 1 {
		return DefaultMaxExpansion
	}
	return d.MaxExpansion
}

// writeRounded writes num/den, which must be positive, rounded to digits
// significant digits.
func writeRounded(sb *strings.Builder, num, den *big.Int, digits int) {
	exp := decimalExponent(num, den)

	// mantissa = round(num/den * 10^(digits-1-exp))
	shift := digits - 1 - exp
	scaledNum := new(big.Int).Set(num)
	scaledDen := new(big.Int).Set(den)
	if shift >= 0 {
		scaledNum.Mul(scaledNum, pow10(shift))
	} else {
		scaledDen.Mul(scaledDen, pow10(-shift))
	}
	mantissa := roundHalfEven(scaledNum, scaledDen)
	if mantissa.Cmp(pow10(digits)) >= 0 {
		// Rounded up to the next power of ten, e.g. 9.99 -> 10.0.
		mantissa.Quo(mantissa, bigTen)
		exp++
	}

	s := strings.TrimRight(mantissa.String(), "0")
	if exp >= digits || exp < minExponent {
		sb.WriteByte(s[0])
		if len(s) > 1 {
			sb.WriteByte('.')
			sb.WriteString(s[1:])
		}
		sb.WriteByte('e')
		sb.WriteString(strconv.Itoa(exp))
		return
	}
	if exp < 0 {
		sb.WriteString("0.")
		sb.WriteString(strings.Repeat("0", -exp-1))
		sb.WriteString(s)
		return
	}
	if len(s) <= exp+1 {
		sb.WriteString(s)
		sb.WriteString(strings.Repeat("0", exp+1-len(s)))
		return
	}
	sb.WriteString(s[:exp+1])
	sb.WriteByte('.')
	sb.WriteString(s[exp+1:])
}

// decimalExponent returns e such that 10^e <= num/den < 10^(e+1).
func decimalExponent(num, den *big.Int) int {
	exp := len(num.String()) - len(den.String())
	// num/den >= 10^exp  <=>  num >= den*10^exp (scaled on whichever side
	// keeps the exponent non-negative).
	for !atLeastPow10(num, den, exp) {
		exp--
	}
	for atLeastPow10(num, den, exp+1) {
		exp++
	}
	return exp
}

func atLeastPow10(num, den *big.Int, exp int) bool {
	if exp >= 0 {
		return num.Cmp(new(big.Int).Mul(den, pow10(exp))) >= 0
	}
	return new(big.Int).Mul(num, pow10(-exp)).Cmp(den) >= 0
}

// roundHalfEven returns num/den rounded to the nearest integer, ties to
// even.
func roundHalfEven(num, den *big.Int) *big.Int {
	q, r := new(big.Int).QuoRem(num, den, new(big.Int))
	twice := new(big.Int).Mul(r, bigTwo)
	switch twice.Cmp(den) {
	case 1:
		q.Add(q, big.NewInt(1))
	case 0:
		if q.Bit(0) == 1 {
			q.Add(q, big.NewInt(1))
		}
	}
	return q
}

func pow10(n int) *big.Int {
	return new(big.Int).Exp(bigTen, big.NewInt(int64(n)), nil)
}

// writeExpansion writes the exact decimal expansion of num/den, which must
// be positive. At most limit fractional digits are written.
func writeExpansion(sb *strings.Builder, num, den *big.Int, limit int) {
	q, rem := new(big.Int).QuoRem(num, den, new(big.Int))
	sb.WriteString(q.String())
	if rem.Sign() == 0 {
		return
	}
	sb.WriteByte('.')

	// The digits before the repeating part number the larger of the
	// multiplicities of 2 and 5 in den.
	prePeriod := max(multiplicity(den, 2), multiplicity(den, 5))

	var digits strings.Builder
	var periodStart *big.Int
	digit := new(big.Int)
	for i := 0; ; i++ {
		if i == prePeriod {
			periodStart = new(big.Int).Set(rem)
		}
		if i == limit {
			sb.WriteString(digits.String())
			sb.WriteString("...")
			return
		}
		rem.Mul(rem, bigTen)
		digit.QuoRem(rem, den, rem)
		digits.WriteByte(byte('0' + digit.Int64()))
		if rem.Sign() == 0 {
			sb.WriteString(digits.String())
			return
		}
		if i >= prePeriod && rem.Cmp(periodStart) == 0 {
			s := digits.String()
			sb.WriteString(s[:prePeriod])
			sb.WriteByte('[')
			sb.WriteString(s[prePeriod:])
			sb.WriteByte(']')
			return
		}
	}
}

// multiplicity returns how many times p divides n.
func multiplicity(n *big.Int, p int64) int {
	bp := big.NewInt(p)
	m := new(big.Int).Set(n)
	r := new(big.Int)
	count := 0
	for {
		q, _ := new(big.Int).QuoRem(m, bp, r)
		if r.Sign() != 0 {
			return count
		}
		m = q
		count++
	}
}
