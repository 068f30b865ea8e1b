// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a cache-friendly row-major buffer with the explicit index formula i*cols + j.
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//   - Allow 0×0 matrices: an empty point set still has well-formed (empty) results.
//   - Enforce the numeric policy (NaN always rejected, ±Inf opt-in) in one place.

package matrix

import (
	"fmt"
	"math"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxAt  = "At"  // method tag used in error wrappers
	ctxSet = "Set" // method tag used in error wrappers
	ctxRow = "Row" // method tag used in error wrappers
)

// ---------- formatting literals ----------

const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// denseErrorf wraps an error with a uniform context and call-site indices:
// "<type>.<method>(row,col): %w". The sentinel stays reachable via errors.Is.
func denseErrorf(typ, method string, row, col int, err error) error {
	return fmt.Errorf("%s.%s(%d,%d): %w", typ, method, row, col, err)
}

// Dense is a concrete row-major float64 matrix.
//   - r,c hold dimensions (rows, cols), both ≥ 0.
//   - data is a flat buffer of length r*c in row-major order (offset = i*c + j).
//   - allowInf relaxes the finite-only policy of Set to accept ±Inf.
type Dense struct {
	r, c     int       // row and column counts
	data     []float64 // contiguous row-major storage (len == r*c)
	allowInf bool      // numeric guard: accept ±Inf in Set when true
}

// Compile-time assertions for interface & fmt.Stringer conformance.
var (
	_ Reader       = (*Dense)(nil)
	_ fmt.Stringer = (*Dense)(nil)
)

// NewDense creates an r×c zero matrix using row-major storage.
//
// Implementation:
//   - Stage 1: validate rows ≥ 0 && cols ≥ 0; else ErrInvalidDimensions.
//   - Stage 2: resolve options and allocate a zero-filled buffer.
//
// Zero-sized shapes are legal and yield a matrix with no addressable cells.
//
// Complexity: Time O(r*c), Space O(r*c).
func NewDense(rows, cols int, opts ...Option) (*Dense, error) {
	if rows < 0 || cols < 0 {
		return nil, fmt.Errorf("NewDense(%d,%d): %w", rows, cols, ErrInvalidDimensions)
	}
	cfg := newDenseConfig(opts...)

	return &Dense{
		r:        rows,
		c:        cols,
		data:     make([]float64, rows*cols), // make() zero-fills deterministically
		allowInf: cfg.allowInf,
	}, nil
}

// NewSquare is NewDense(n, n, opts...).
func NewSquare(n int, opts ...Option) (*Dense, error) {
	return NewDense(n, n, opts...)
}

// Rows returns the row count. Complexity: O(1).
func (m *Dense) Rows() int { return m.r }

// Cols returns the column count. Complexity: O(1).
func (m *Dense) Cols() int { return m.c }

// indexOf bounds-checks (row,col) and returns the row-major offset.
// Returns the bare ErrOutOfRange sentinel; public methods wrap it with context.
func (m *Dense) indexOf(row, col int) (int, error) {
	if row < 0 || row >= m.r {
		return 0, ErrOutOfRange
	}
	if col < 0 || col >= m.c {
		return 0, ErrOutOfRange
	}

	// Row-major offset: i*c + j.
	return row*m.c + col, nil
}

// At returns the value at (row, col) or a wrapped ErrOutOfRange.
// Complexity: O(1).
func (m *Dense) At(row, col int) (float64, error) {
	off, err := m.indexOf(row, col)
	if err != nil {
		return 0, denseErrorf("Dense", ctxAt, row, col, err)
	}

	return m.data[off], nil
}

// Set stores v at (row, col).
//
// Errors:
//   - ErrOutOfRange for bad indices.
//   - ErrNaNInf for NaN, or for ±Inf unless the matrix was built WithInf().
//
// Writes to distinct cells from different goroutines do not race; the buffer
// is never reallocated after construction.
//
// Complexity: O(1).
func (m *Dense) Set(row, col int, v float64) error {
	off, err := m.indexOf(row, col)
	if err != nil {
		return denseErrorf("Dense", ctxSet, row, col, err)
	}
	if math.IsNaN(v) || (!m.allowInf && math.IsInf(v, 0)) {
		return denseErrorf("Dense", ctxSet, row, col, ErrNaNInf)
	}
	m.data[off] = v

	return nil
}

// Fill assigns v to every cell under the same numeric policy as Set.
// Complexity: O(r*c).
func (m *Dense) Fill(v float64) error {
	if math.IsNaN(v) || (!m.allowInf && math.IsInf(v, 0)) {
		return fmt.Errorf("Dense.Fill(%g): %w", v, ErrNaNInf)
	}
	for i := range m.data {
		m.data[i] = v
	}

	return nil
}

// Row returns a copy of row i.
// Complexity: O(c).
func (m *Dense) Row(i int) ([]float64, error) {
	if i < 0 || i >= m.r {
		return nil, denseErrorf("Dense", ctxRow, i, 0, ErrOutOfRange)
	}
	out := make([]float64, m.c)
	copy(out, m.data[i*m.c:(i+1)*m.c])

	return out, nil
}

// Clone returns a deep copy with the same shape, data and numeric policy.
// Complexity: O(r*c).
func (m *Dense) Clone() *Dense {
	cp := make([]float64, len(m.data))
	copy(cp, m.data)

	return &Dense{r: m.r, c: m.c, data: cp, allowInf: m.allowInf}
}

// ReadOnly returns a view exposing only Rows/Cols/At. The view shares storage
// with m and cannot be converted back into a *Dense.
func (m *Dense) ReadOnly() Reader { return denseView{m: m} }

// String renders rows as "[a, b, c]\n" lines for diagnostics.
// Not for hot paths. Complexity: O(r*c).
func (m *Dense) String() string {
	var sb strings.Builder
	var i, j int
	for i = 0; i < m.r; i++ {
		sb.WriteString(_fmtRowOpen)
		for j = 0; j < m.c; j++ {
			if j > 0 {
				sb.WriteString(_fmtSep)
			}
			fmt.Fprintf(&sb, "%g", m.data[i*m.c+j])
		}
		sb.WriteString(_fmtRowClose)
	}

	return sb.String()
}
