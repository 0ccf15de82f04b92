package object

import (
	"image"
	"maps"
	"math/big"
	"slices"

	"github.com/anthonyraymond/randomizer/pkg/algorithm"
	"github.com/anthonyraymond/randomizer/pkg/number"
	"github.com/anthonyraymond/randomizer/pkg/randutils"
	"github.com/anthonyraymond/randomizer/pkg/text"
	"github.com/google/uuid"
	"github.com/pkg/errors"
)

const (
	tokenBits  = 130
	saltLength = 16
)

var errEmpty = errors.New("can not pick from an empty collection")

func RandomIndex[T any](list []T, src randutils.Source) (int, error) {
	if len(list) == 0 {
		return 0, errEmpty
	}
	return number.IntN(len(list), algorithm.SecureRandom, src)
}

func RandomListEntry[T any](list []T, src randutils.Source) (T, error) {
	var zero T
	idx, err := RandomIndex(list, src)
	if err != nil {
		return zero, err
	}
	return list[idx], nil
}

// RandomMapKey picks a key of m. Map iteration order is random, so the pick is not
// reproducible even with a seeded source.
func RandomMapKey[K comparable, V any](m map[K]V, src randutils.Source) (K, error) {
	return RandomListEntry(slices.Collect(maps.Keys(m)), src)
}

func RandomMapValue[K comparable, V any](m map[K]V, src randutils.Source) (V, error) {
	return RandomListEntry(slices.Collect(maps.Values(m)), src)
}

// RandomEnum picks one of the given constants.
func RandomEnum[T comparable](src randutils.Source, values ...T) (T, error) {
	return RandomListEntry(values, src)
}

func RandomAlgorithm(src randutils.Source) algorithm.RandomAlgorithm {
	alg, _ := RandomEnum(src, algorithm.Values()...)
	return alg
}

// RandomToken is a 130 bit number written in base 32.
func RandomToken(src randutils.Source) string {
	buf := make([]byte, (tokenBits+7)/8)
	_, _ = src.Read(buf)
	buf[0] &= byte(0xFF >> (len(buf)*8 - tokenBits))
	return new(big.Int).SetBytes(buf).Text(32)
}

func RandomUUID(src randutils.Source) (uuid.UUID, error) {
	id, err := uuid.NewRandomFromReader(src)
	if err != nil {
		return uuid.Nil, errors.Wrap(err, "failed to generate uuid")
	}
	return id, nil
}

// NewSalt returns 16 random bytes.
func NewSalt(src randutils.Source) []byte {
	return number.Bytes(saltLength, src)
}

// RandomSalt returns the bytes of an alphanumeric string of the given length.
func RandomSalt(length int, src randutils.Source) []byte {
	return []byte(text.String(text.LowercaseWithUppercaseAndNumbers, length, src))
}

// RandomPixel packs random channels as 0xAARRGGBB.
func RandomPixel(src randutils.Source) uint32 {
	return Pixel(number.Uint8(src), number.Uint8(src), number.Uint8(src), number.Uint8(src))
}

func Pixel(red uint8, green uint8, blue uint8, alpha uint8) uint32 {
	return uint32(alpha)<<24 | uint32(red)<<16 | uint32(green)<<8 | uint32(blue)
}

// RandomNeighborPoint picks one of the eight points around from. Unless withNegative is set,
// coordinates are not moved below zero.
func RandomNeighborPoint(from image.Point, withNegative bool, src randutils.Source) image.Point {
	xMinusOne, yMinusOne := from.X-1, from.Y-1
	if !withNegative {
		if from.X <= 0 {
			xMinusOne = from.X
		}
		if from.Y <= 0 {
			yMinusOne = from.Y
		}
	}
	xPlusOne, yPlusOne := from.X+1, from.Y+1
	neighbors := []image.Point{
		{X: from.X, Y: yMinusOne},
		{X: from.X, Y: yPlusOne},
		{X: xPlusOne, Y: from.Y},
		{X: xMinusOne, Y: from.Y},
		{X: xMinusOne, Y: yMinusOne},
		{X: xPlusOne, Y: yMinusOne},
		{X: xPlusOne, Y: yPlusOne},
		{X: xMinusOne, Y: yPlusOne},
	}
	p, _ := RandomListEntry(neighbors, src)
	return p
}
