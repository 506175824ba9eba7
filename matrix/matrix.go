// SPDX-License-Identifier: MIT

// Package matrix - Matrix storage (row-major) & lifecycle.
//
// Purpose:
//   - Provide a cache-friendly row-major buffer with the explicit offset formula c + r*cols.
//   - Each Matrix exclusively owns its buffer; no two matrices share storage.
//   - Guarantee safety at the public surface: errors instead of panics.
//   - Make reuse-after-release observable (ErrReleased).
//
// Complexity quicksheet:
//   - New/FromSlice/Clone/Reshape: O(r*c); Rows/Cols/Release: O(1).
package matrix

import (
	"fmt"
	"io"
	"strings"

	"github.com/cockroachdb/errors"
)

// ---------- error context tags ----------

const (
	ctxNew      = "New"
	ctxFromData = "FromSlice"
	ctxReshape  = "Reshape"
	ctxPrint    = "Print"
)

// ---------- Formatting literals ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
	_fmtCell     = "%f "
)

// matrixErrorf wraps err with an operation tag, preserving errors.Is.
// Use only when err != nil.
func matrixErrorf(tag string, err error) error {
	return errors.Wrapf(err, "%s", tag)
}

// Matrix is a dense row-major matrix of float32 values.
//   - rows, cols hold dimensions.
//   - data is a flat buffer of length rows*cols; element (r,c) lives at c + r*cols.
//   - data == nil marks a released matrix.
type Matrix struct {
	data       []float32 // contiguous row-major storage (len == rows*cols)
	rows, cols int       // dimensions; both > 0 while live
}

var _ fmt.Stringer = (*Matrix)(nil)

// New creates an rows×cols zero matrix.
//
// Errors:
//   - ErrInvalidDimensions when rows <= 0 or cols <= 0.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func New(rows, cols int) (*Matrix, error) {
	if rows <= 0 || cols <= 0 {
		return nil, matrixErrorf(ctxNew, ErrInvalidDimensions)
	}

	return &Matrix{data: make([]float32, rows*cols), rows: rows, cols: cols}, nil
}

// FromSlice creates a rows×cols matrix holding a copy of data, which must be
// laid out row-major with exactly rows*cols elements.
func FromSlice(data []float32, rows, cols int) (*Matrix, error) {
	m, err := New(rows, cols)
	if err != nil {
		return nil, err
	}
	if len(data) != rows*cols {
		return nil, matrixErrorf(ctxFromData,
			errors.Wrapf(ErrDimensionMismatch, "len %d, want %d", len(data), rows*cols))
	}
	copy(m.data, data)

	return m, nil
}

// FromRows creates a matrix from a non-ragged slice of rows.
func FromRows(rows [][]float32) (*Matrix, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, matrixErrorf(ctxFromData, ErrInvalidDimensions)
	}
	m, err := New(len(rows), len(rows[0]))
	if err != nil {
		return nil, err
	}
	for r, row := range rows {
		if len(row) != m.cols {
			return nil, matrixErrorf(ctxFromData,
				errors.Wrapf(ErrDimensionMismatch, "row %d has %d columns, want %d", r, len(row), m.cols))
		}
		copy(m.data[r*m.cols:(r+1)*m.cols], row)
	}

	return m, nil
}

// Rows returns the row count (0 after Release).
func (m *Matrix) Rows() int { return m.rows }

// Cols returns the column count (0 after Release).
func (m *Matrix) Cols() int { return m.cols }

// Shape packs Rows() and Cols() into a single call.
func (m *Matrix) Shape() (rows, cols int) { return m.rows, m.cols }

// RawData returns the row-major backing slice without copying.
// Writes through it mutate m. Returns nil after Release.
func (m *Matrix) RawData() []float32 { return m.data }

// offset is the row-major position of (r,c). Callers guarantee validity.
func (m *Matrix) offset(r, c int) int { return c + r*m.cols }

// Clone returns a deep copy, or nil if m is nil or released.
// Complexity: O(r*c).
func (m *Matrix) Clone() *Matrix {
	if ValidateUsable(m) != nil {
		return nil
	}
	cp := make([]float32, len(m.data))
	copy(cp, m.data)

	return &Matrix{data: cp, rows: m.rows, cols: m.cols}
}

// Reshape changes the dimensions to rows×cols and replaces the buffer with a
// new zero-filled one. Previous contents are NOT preserved.
//
// Errors:
//   - ErrNilMatrix / ErrReleased; ErrInvalidDimensions for non-positive sizes.
func (m *Matrix) Reshape(rows, cols int) error {
	if err := ValidateUsable(m); err != nil {
		return matrixErrorf(ctxReshape, err)
	}
	if rows <= 0 || cols <= 0 {
		return matrixErrorf(ctxReshape, ErrInvalidDimensions)
	}
	m.data = make([]float32, rows*cols)
	m.rows, m.cols = rows, cols

	return nil
}

// Release drops the buffer and zeroes the dimensions. Every later operation
// on m returns ErrReleased; calling Release again is a no-op.
func (m *Matrix) Release() {
	if m == nil {
		return
	}
	m.data = nil
	m.rows, m.cols = 0, 0
}

// Released reports whether Release has been called on m.
func (m *Matrix) Released() bool {
	return m != nil && m.data == nil
}

// Print writes every cell as "%f " with one line per row.
func (m *Matrix) Print(w io.Writer) error {
	if err := ValidateUsable(m); err != nil {
		return matrixErrorf(ctxPrint, err)
	}
	var r, c int
	for r = 0; r < m.rows; r++ {
		for c = 0; c < m.cols; c++ {
			if _, err := fmt.Fprintf(w, _fmtCell, m.data[m.offset(r, c)]); err != nil {
				return matrixErrorf(ctxPrint, err)
			}
		}
		if _, err := io.WriteString(w, "\n"); err != nil {
			return matrixErrorf(ctxPrint, err)
		}
	}

	return nil
}

// String renders rows as "[a, b]\n" lines with %g formatting.
// Intended for debugging; not for hot paths.
func (m *Matrix) String() string {
	if ValidateUsable(m) != nil {
		return ""
	}
	var b strings.Builder
	var i, j, base int
	for i = 0; i < m.rows; i++ {
		b.WriteString(_fmtRowOpen)
		base = i * m.cols
		for j = 0; j < m.cols; j++ {
			fmt.Fprintf(&b, "%g", m.data[base+j])
			if j+1 < m.cols {
				b.WriteString(_fmtSep)
			}
		}
		b.WriteString(_fmtRowClose)
	}

	return b.String()
}
