// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"
	"strings"
)

// IntDense is a row-major int matrix. It backs discrete relations such as
// the flow-connectivity indicator between points.
type IntDense struct {
	r, c int
	data []int
}

var (
	_ IntReader    = (*IntDense)(nil)
	_ fmt.Stringer = (*IntDense)(nil)
)

// NewIntDense creates an r×c zero matrix. Zero-sized shapes are legal.
func NewIntDense(rows, cols int) (*IntDense, error) {
	if rows < 0 || cols < 0 {
		return nil, fmt.Errorf("NewIntDense(%d,%d): %w", rows, cols, ErrInvalidDimensions)
	}

	return &IntDense{r: rows, c: cols, data: make([]int, rows*cols)}, nil
}

// NewIntSquare is NewIntDense(n, n).
func NewIntSquare(n int) (*IntDense, error) { return NewIntDense(n, n) }

// Rows returns the row count.
func (m *IntDense) Rows() int { return m.r }

// Cols returns the column count.
func (m *IntDense) Cols() int { return m.c }

// At returns the value at (row, col) or a wrapped ErrOutOfRange.
func (m *IntDense) At(row, col int) (int, error) {
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		return 0, denseErrorf("IntDense", ctxAt, row, col, ErrOutOfRange)
	}

	return m.data[row*m.c+col], nil
}

// Set stores v at (row, col) or returns a wrapped ErrOutOfRange.
func (m *IntDense) Set(row, col int, v int) error {
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		return denseErrorf("IntDense", ctxSet, row, col, ErrOutOfRange)
	}
	m.data[row*m.c+col] = v

	return nil
}

// Clone returns a deep copy.
func (m *IntDense) Clone() *IntDense {
	cp := make([]int, len(m.data))
	copy(cp, m.data)

	return &IntDense{r: m.r, c: m.c, data: cp}
}

// ReadOnly returns a view exposing only Rows/Cols/At.
func (m *IntDense) ReadOnly() IntReader { return intView{m: m} }

// String renders rows as "[a, b, c]\n" lines for diagnostics.
func (m *IntDense) String() string {
	var sb strings.Builder
	for i := 0; i < m.r; i++ {
		sb.WriteString(_fmtRowOpen)
		for j := 0; j < m.c; j++ {
			if j > 0 {
				sb.WriteString(_fmtSep)
			}
			fmt.Fprintf(&sb, "%d", m.data[i*m.c+j])
		}
		sb.WriteString(_fmtRowClose)
	}

	return sb.String()
}
