// Package text generates random strings from character sets and regular expressions.
package text

import (
	"encoding/hex"
	"strings"

	"github.com/anthonyraymond/randomizer/pkg/number"
	"github.com/anthonyraymond/randomizer/pkg/randutils"
	"github.com/pkg/errors"
)

const (
	MinRandomStringLength = 3
	MaxRandomStringLength = 25
)

// String returns length characters picked uniformly from chars. An empty
// chars or a non-positive length gives an empty string.
func String(chars string, length int, src randutils.Source) string {
	runes := []rune(chars)
	if len(runes) == 0 || length <= 0 {
		return ""
	}
	sb := strings.Builder{}
	sb.Grow(length)
	for i := 0; i < length; i++ {
		sb.WriteRune(runes[src.IntN(len(runes))])
	}
	return sb.String()
}

// RandomString is an alphanumeric string with a length in [3, 25].
func RandomString(src randutils.Source) string {
	s, _ := StringBetween(MinRandomStringLength, MaxRandomStringLength, src)
	return s
}

// StringBetween is an alphanumeric string with a length in [minLength, maxLength].
func StringBetween(minLength int, maxLength int, src randutils.Source) (string, error) {
	return StringBetweenFrom(LowercaseWithUppercaseAndNumbers, minLength, maxLength, src)
}

func StringBetweenFrom(chars string, minLength int, maxLength int, src randutils.Source) (string, error) {
	if minLength < 0 {
		return "", errors.Errorf("minimum length must not be negative, got %d", minLength)
	}
	length, err := number.IntBetween(minLength, maxLength, number.Closed, src)
	if err != nil {
		return "", errors.Wrap(err, "invalid string length bounds")
	}
	return String(chars, length, src), nil
}

func CharFrom(chars string, src randutils.Source) (rune, error) {
	runes := []rune(chars)
	if len(runes) == 0 {
		return 0, errors.New("can not pick a character from an empty set")
	}
	return runes[src.IntN(len(runes))], nil
}

// HexString returns n hexadecimal digits in the requested case.
func HexString(n int, c Case, src randutils.Source) string {
	if n <= 0 {
		return ""
	}
	buf := make([]byte, (n+1)/2)
	_, _ = src.Read(buf)
	return c.ApplyCase(hex.EncodeToString(buf)[:n])
}

func NumericString(n int, src randutils.Source) string {
	return String(Numbers, n, src)
}

func OneOf(values []string, src randutils.Source) (string, error) {
	if len(values) == 0 {
		return "", errors.New("can not pick a value from an empty list")
	}
	return values[src.IntN(len(values))], nil
}
