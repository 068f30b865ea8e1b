// SPDX-License-Identifier: MIT

package matrix

// Reader is the read-only surface of a float64 matrix.
type Reader interface {
	// Rows returns the number of rows.
	Rows() int
	// Cols returns the number of columns.
	Cols() int
	// At returns the element at (i, j) or ErrOutOfRange.
	At(i, j int) (float64, error)
}

// IntReader is the read-only surface of an int matrix.
type IntReader interface {
	Rows() int
	Cols() int
	At(i, j int) (int, error)
}

// denseView hides the mutating methods of *Dense. It is a value type so a
// type assertion on the returned Reader cannot recover the base pointer.
type denseView struct{ m *Dense }

func (v denseView) Rows() int                    { return v.m.r }
func (v denseView) Cols() int                    { return v.m.c }
func (v denseView) At(i, j int) (float64, error) { return v.m.At(i, j) }
func (v denseView) String() string               { return v.m.String() }

type intView struct{ m *IntDense }

func (v intView) Rows() int                { return v.m.r }
func (v intView) Cols() int                { return v.m.c }
func (v intView) At(i, j int) (int, error) { return v.m.At(i, j) }
func (v intView) String() string           { return v.m.String() }

// ToRows copies r into a [][]float64 (row-major). Handy for assertions and
// for handing results to code that expects nested slices.
// Complexity: O(rows*cols).
func ToRows(r Reader) [][]float64 {
	out := make([][]float64, r.Rows())
	for i := range out {
		out[i] = make([]float64, r.Cols())
		for j := range out[i] {
			out[i][j], _ = r.At(i, j) // indices are in range by construction
		}
	}

	return out
}

// ToIntRows copies r into a [][]int (row-major).
func ToIntRows(r IntReader) [][]int {
	out := make([][]int, r.Rows())
	for i := range out {
		out[i] = make([]int, r.Cols())
		for j := range out[i] {
			out[i][j], _ = r.At(i, j)
		}
	}

	return out
}
