package number

import (
	"math"

	"github.com/anthonyraymond/randomizer/pkg/algorithm"
	"github.com/anthonyraymond/randomizer/pkg/randutils"
)

func Int8(src randutils.Source) int8 {
	return int8(src.Uint64())
}

// Int16 is non-negative half of the time.
func Int16(src randutils.Source) int16 {
	if src.Bool() {
		return int16(src.IntN(math.MaxUint16+1) + math.MinInt16)
	}
	return int16(src.IntN(math.MaxInt16 + 1))
}

func Int32(src randutils.Source) int32 {
	return src.Int32()
}

func Int64(src randutils.Source) int64 {
	return src.Int64()
}

func Int(src randutils.Source) int {
	return int(src.Int64())
}

func Uint8(src randutils.Source) uint8 {
	return uint8(src.Uint64())
}

func Uint16(src randutils.Source) uint16 {
	return uint16(src.Uint64())
}

func Uint32(src randutils.Source) uint32 {
	return uint32(src.Uint64() >> 32)
}

func Uint64(src randutils.Source) uint64 {
	return src.Uint64()
}

// Float32 returns a value in [0, 1).
func Float32(src randutils.Source) float32 {
	return src.Float32()
}

// Float64 returns a value in [0, math.MaxFloat64).
func Float64(src randutils.Source) float64 {
	v, _ := Float64N(math.MaxFloat64, algorithm.SecureRandom, src)
	return v
}

// Bool is true when a SECURE_RANDOM draw over 2 is 0.
func Bool(src randutils.Source) bool {
	return BoolWith(algorithm.SecureRandom, src)
}

func BoolWith(alg algorithm.RandomAlgorithm, src randutils.Source) bool {
	v, _ := Int32N(2, alg, src)
	return v == 0
}

// Char returns either an uppercase ASCII letter or a decimal digit with equal chance.
func Char(src randutils.Source) rune {
	if src.Bool() {
		return rune('A' + src.IntN(26))
	}
	return rune('0' + src.IntN(10))
}

// Bytes returns n bytes, each one either bounded below 255 or raw.
func Bytes(n int, src randutils.Source) []byte {
	if n <= 0 {
		return []byte{}
	}
	out := make([]byte, n)
	box := make([]byte, 1)
	for i := range out {
		if Bool(src) {
			v, _ := Int32N(255, algorithm.SecureRandom, src)
			out[i] = byte(v)
			continue
		}
		_, _ = src.Read(box)
		out[i] = box[0]
	}
	return out
}
