// SPDX-License-Identifier: MIT
// Package: bidipath/builder
//
// weight_fn.go - edge-weight generators for the deterministic topologies.

package builder

import (
	"fmt"
	"math/rand"
)

// Modulus of the default modular weight: weights cycle through 1..modularSpan.
const modularSpan = 10

// WeightFn produces the weight of the edge i—j given an optional *rand.Rand.
// It must be deterministic for fixed (i, j) and RNG state.
type WeightFn func(i, j int, rng *rand.Rand) float64

// ModularWeightFn is the default: (i+j) mod 10 + 1, a deterministic weight in
// [1,10] that varies between neighbors.
func ModularWeightFn(i, j int, _ *rand.Rand) float64 {
	return float64((i+j)%modularSpan + 1)
}

// ConstantWeightFn returns a WeightFn that always yields value.
// Panics if value < 0.
func ConstantWeightFn(value float64) WeightFn {
	if value < 0 {
		panic(fmt.Sprintf("builder: ConstantWeightFn: value must be ≥ 0, got %g", value))
	}

	return func(_, _ int, _ *rand.Rand) float64 { return value }
}

// UniformIntWeightFn returns a WeightFn drawing an integer uniformly in
// [lo, hi] inclusive. With a nil rng it yields lo.
// Panics if lo < 0 or hi < lo.
func UniformIntWeightFn(lo, hi int) WeightFn {
	if lo < 0 || hi < lo {
		panic(fmt.Sprintf("builder: UniformIntWeightFn: require 0 ≤ lo ≤ hi, got lo=%d, hi=%d", lo, hi))
	}

	return func(_, _ int, rng *rand.Rand) float64 {
		if rng == nil || hi == lo {
			return float64(lo)
		}
		return float64(lo + rng.Intn(hi-lo+1))
	}
}
