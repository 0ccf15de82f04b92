package number

import (
	"math/big"
	"strings"

	"github.com/anthonyraymond/randomizer/pkg/algorithm"
	"github.com/anthonyraymond/randomizer/pkg/randutils"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

// MaxBigIntBits bounds the bit length drawn by BigInt.
const MaxBigIntBits = 180

// BigInt draws a bit length in [0, MaxBigIntBits) and then a uniform value with that many bits.
func BigInt(src randutils.Source) *big.Int {
	bits, _ := Int32N(MaxBigIntBits, algorithm.SecureRandom, src)
	return bigIntWithBits(int(bits), src)
}

func bigIntWithBits(bits int, src randutils.Source) *big.Int {
	if bits <= 0 {
		return new(big.Int)
	}
	buf := make([]byte, (bits+7)/8)
	_, _ = src.Read(buf)
	excess := len(buf)*8 - bits
	buf[0] &= byte(0xFF >> excess)
	return new(big.Int).SetBytes(buf)
}

// SerialNumber is the absolute value of a raw 64-bit draw.
func SerialNumber(src randutils.Source) *big.Int {
	return new(big.Int).Abs(big.NewInt(src.Int64()))
}

// BigFloat wraps a draw in [0, 1).
func BigFloat(src randutils.Source) *big.Float {
	return big.NewFloat(src.Float64())
}

// Decimal wraps a draw in [0, 1).
func Decimal(src randutils.Source) decimal.Decimal {
	return decimal.NewFromFloat(src.Float64())
}

// DecimalDigits builds a decimal with the given count of random digits on each side of the point.
func DecimalDigits(beforeComma int, afterComma int, src randutils.Source) (decimal.Decimal, error) {
	if beforeComma < 0 || afterComma < 0 || beforeComma+afterComma == 0 {
		return decimal.Zero, rangeErrorf("DecimalDigits", "need at least one digit, got before=%d after=%d", beforeComma, afterComma)
	}

	var sb strings.Builder
	sb.WriteString(digits(beforeComma, src))
	if beforeComma == 0 {
		sb.WriteByte('0')
	}
	if afterComma > 0 {
		sb.WriteByte('.')
		sb.WriteString(digits(afterComma, src))
	}

	d, err := decimal.NewFromString(sb.String())
	if err != nil {
		return decimal.Zero, errors.Wrapf(err, "failed to parse generated decimal '%s'", sb.String())
	}
	return d, nil
}

func digits(n int, src randutils.Source) string {
	var sb strings.Builder
	sb.Grow(n)
	for i := 0; i < n; i++ {
		sb.WriteByte(byte('0' + src.IntN(10)))
	}
	return sb.String()
}
