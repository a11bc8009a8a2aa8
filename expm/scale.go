// SPDX-License-Identifier: MIT
// Package expm: scale-exponent selection shared by every pipeline variant.

package expm

import (
	"fmt"
	"math"
)

// expErrorf wraps an underlying error with the entry point and the phase
// that failed, so a caller can tell a validation failure from a solve
// failure without parsing messages.
func expErrorf(entry, phase string, err error) error {
	return fmt.Errorf("expm: %s: %s: %w", entry, phase, err)
}

// scalePow returns the smallest integer s ≥ 0 such that norm / 2^s ≤ theta.
// s = ceil(log2(norm/theta)) when norm exceeds theta, else 0.
func scalePow(norm, theta float64) int {
	r := norm / theta
	if r <= 1 {
		return 0
	}

	return int(math.Ceil(math.Log2(r)))
}
