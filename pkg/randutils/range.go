package randutils

// RangeFrom returns a number between minInclusive and maxInclusive. Bounds are swapped when reversed.
func RangeFrom(src Source, minInclusive int64, maxInclusive int64) int64 {
	if minInclusive == maxInclusive {
		return minInclusive
	}
	if minInclusive > maxInclusive {
		minInclusive, maxInclusive = maxInclusive, minInclusive
	}
	span := uint64(maxInclusive-minInclusive) + 1
	if span == 0 {
		// the whole int64 space
		return src.Int64()
	}
	return minInclusive + int64(src.Uint64()%span)
}
