// Package proptest provides property-based testing parameters and generators.
package proptest

import (
	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
)

// TestParameters returns the standard parameters for property tests.
func TestParameters() *gopter.TestParameters {
	params := gopter.DefaultTestParameters()
	params.MinSuccessfulTests = 500
	return params
}

// FastTestParameters is for properties that draw many values per run.
func FastTestParameters() *gopter.TestParameters {
	params := gopter.DefaultTestParameters()
	params.MinSuccessfulTests = 100
	return params
}

// Seed generates seeds for reproducible sources.
func Seed() gopter.Gen {
	return gen.UInt64()
}

// Bound generates interval starts that leave room for any Width.
func Bound() gopter.Gen {
	return gen.Int64Range(-1_000_000, 1_000_000)
}

// Width generates span widths wide enough for every interval kind.
func Width() gopter.Gen {
	return gen.Int64Range(2, 10_000)
}

// PositiveRange generates ranges for bounded draws.
func PositiveRange() gopter.Gen {
	return gen.Int32Range(1, 1<<30)
}
