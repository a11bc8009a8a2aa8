// SPDX-License-Identifier: MIT
// Package ops: conversion helpers between matrix.Dense and gonum types.
// The facades here run one-shot O(n³) factorizations, so the O(n²) element
// copies below never dominate.

package ops

import (
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/matexp/matrix"
)

// toGonum copies m into a fresh gonum dense matrix.
func toGonum(m *matrix.Dense) *mat.Dense {
	r, c := m.Rows(), m.Cols()
	out := mat.NewDense(r, c, nil)
	var v float64
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			v, _ = m.At(i, j) // bounds are loop-guaranteed
			out.Set(i, j, v)
		}
	}

	return out
}

// fromGonum copies src into a fresh matrix.Dense.
func fromGonum(src mat.Matrix) (*matrix.Dense, error) {
	r, c := src.Dims()
	out, err := matrix.NewDense(r, c)
	if err != nil {
		return nil, err
	}
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			_ = out.Set(i, j, src.At(i, j))
		}
	}

	return out, nil
}
