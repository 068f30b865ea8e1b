// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide one canonical source of truth for metric checks on square matrices.
//  - Return sentinel errors wrapped with the validator tag so call sites can
//    branch with errors.Is.
//
// Determinism & Performance:
//  - All checks are pure, deterministic and allocate nothing.
//  - Fixed i→j(→k) loop order; the first violation found is the one reported.
//  - Equal infinities compare equal (+Inf == +Inf), so "unreachable" entries
//    never trip symmetry or triangle checks on their own.

package matrix

import (
	"fmt"
	"math"
)

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// validateTol rejects NaN/Inf tolerances and folds negatives to |tol|.
func validateTol(tag string, tol float64) (float64, error) {
	if math.IsNaN(tol) || math.IsInf(tol, 0) {
		return 0, validatorErrorf(tag, ErrNaNInf)
	}

	return math.Abs(tol), nil
}

// ValidateSquare checks m is non-nil and Rows == Cols.
// Errors: ErrNilMatrix, ErrNonSquare. Complexity: O(1).
func ValidateSquare(m Reader) error {
	if m == nil {
		return validatorErrorf("ValidateSquare", ErrNilMatrix)
	}
	if m.Rows() != m.Cols() {
		return validatorErrorf("ValidateSquare", ErrNonSquare)
	}

	return nil
}

// ValidateSymmetric checks |m[i,j] - m[j,i]| ≤ tol for all i<j.
//
// Errors: ErrNilMatrix/ErrNonSquare on structure, ErrNaNInf on a bad tol,
// ErrAsymmetry (with the offending cell) on violation.
// Complexity: O(n²) over the strict upper triangle. Space: O(1).
func ValidateSymmetric(m Reader, tol float64) error {
	const tag = "ValidateSymmetric"
	if err := ValidateSquare(m); err != nil {
		return validatorErrorf(tag, err)
	}
	tol, err := validateTol(tag, tol)
	if err != nil {
		return err
	}

	n := m.Rows()
	var (
		i, j     int
		aij, aji float64
	)
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			aij, _ = m.At(i, j) // in range after ValidateSquare
			aji, _ = m.At(j, i)
			if aij == aji {
				continue // also covers matching infinities
			}
			if math.Abs(aij-aji) > tol || math.IsInf(aij, 0) || math.IsInf(aji, 0) {
				return validatorErrorf(tag, fmt.Errorf("(%d,%d)=%g vs (%d,%d)=%g: %w", i, j, aij, j, i, aji, ErrAsymmetry))
			}
		}
	}

	return nil
}

// ValidateZeroDiagonal checks |m[i,i]| ≤ tol for all i.
//
// Errors: ErrNilMatrix/ErrNonSquare, ErrNaNInf on a bad tol, ErrNonZeroDiagonal.
// Complexity: O(n).
func ValidateZeroDiagonal(m Reader, tol float64) error {
	const tag = "ValidateZeroDiagonal"
	if err := ValidateSquare(m); err != nil {
		return validatorErrorf(tag, err)
	}
	tol, err := validateTol(tag, tol)
	if err != nil {
		return err
	}

	for i := 0; i < m.Rows(); i++ {
		v, _ := m.At(i, i)
		if math.Abs(v) > tol {
			return validatorErrorf(tag, fmt.Errorf("(%d,%d)=%g: %w", i, i, v, ErrNonZeroDiagonal))
		}
	}

	return nil
}

// ValidateTriangle checks m[i,k] ≤ m[i,j] + m[j,k] + tol for every triple.
//
// Errors: ErrNilMatrix/ErrNonSquare, ErrNaNInf on a bad tol, ErrTriangle.
// Complexity: O(n³). Intended for tests and offline validation, not hot paths.
func ValidateTriangle(m Reader, tol float64) error {
	const tag = "ValidateTriangle"
	if err := ValidateSquare(m); err != nil {
		return validatorErrorf(tag, err)
	}
	tol, err := validateTol(tag, tol)
	if err != nil {
		return err
	}

	n := m.Rows()
	var (
		i, j, k       int
		aij, ajk, aik float64
	)
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			aij, _ = m.At(i, j)
			for k = 0; k < n; k++ {
				ajk, _ = m.At(j, k)
				aik, _ = m.At(i, k)
				if aik > aij+ajk+tol {
					return validatorErrorf(tag, fmt.Errorf("d(%d,%d)=%g > d(%d,%d)+d(%d,%d)=%g: %w",
						i, k, aik, i, j, j, k, aij+ajk, ErrTriangle))
				}
			}
		}
	}

	return nil
}
