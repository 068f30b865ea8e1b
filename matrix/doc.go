// SPDX-License-Identifier: MIT

// Package matrix provides the dense square storage used for pairwise
// point-to-point results: float64 distance matrices, int connectivity
// matrices, read-only views over both, and validators for metric properties.
//
// Storage:
//
//	Dense    – row-major float64 buffer (offset = i*cols + j).
//	IntDense – row-major int buffer with the same surface.
//
// Numeric policy:
//
//	Dense.Set always rejects NaN. ±Inf is rejected unless the matrix was built
//	WithInf(); hydrological distances between disconnected networks are +Inf.
//
// Views:
//
//	ReadOnly() returns a Reader/IntReader that exposes only Rows/Cols/At.
//	Views share the buffer with their base matrix, so they are cheap and
//	always reflect the current values.
//
// Validators (errors.Is-friendly sentinels):
//
//	ValidateSquare       – Rows == Cols                       (ErrNonSquare)
//	ValidateSymmetric    – |a[i,j]-a[j,i]| ≤ eps               (ErrAsymmetry)
//	ValidateZeroDiagonal – |a[i,i]| ≤ eps                      (ErrNonZeroDiagonal)
//	ValidateTriangle     – a[i,k] ≤ a[i,j] + a[j,k] + eps      (ErrTriangle)
//
// Complexity quicksheet:
//
//	NewDense: O(r*c); At/Set: O(1); Clone: O(r*c); ReadOnly: O(1);
//	ValidateSymmetric/ZeroDiagonal: O(n²); ValidateTriangle: O(n³).
package matrix
