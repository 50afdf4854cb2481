// Package heightmap holds the terrain the flood fill runs on: a fixed
// rows x cols grid of non-negative heights.
package heightmap

import (
	"fmt"
	"math/rand"
	"strings"

	"go-rainwater/pkg/customerrors"

	"github.com/pkg/errors"
)

// Matrix is a rectangular grid of non-negative heights. Its dimensions are
// fixed at construction and the only mutation is Pour.
type Matrix struct {
	rows  int
	cols  int
	cells [][]int
}

func New(rows, cols int) (*Matrix, error) {
	if rows < 1 || cols < 1 {
		return nil, errors.Wrapf(customerrors.ErrInvalidInput, "matrix dimensions %dx%d", rows, cols)
	}

	cells := make([][]int, rows)
	for i := range cells {
		cells[i] = make([]int, cols)
	}
	return &Matrix{rows: rows, cols: cols, cells: cells}, nil
}

// FromRows copies rows into a new Matrix. Rows must be non-empty, of equal
// length and hold no negative height.
func FromRows(rows [][]int) (*Matrix, error) {
	if len(rows) == 0 {
		return nil, errors.Wrap(customerrors.ErrInvalidInput, "matrix has no rows")
	}

	m, err := New(len(rows), len(rows[0]))
	if err != nil {
		return nil, err
	}

	for i, row := range rows {
		if len(row) != m.cols {
			return nil, errors.Wrapf(customerrors.ErrInvalidInput, "row %d has %d columns, expected %d", i, len(row), m.cols)
		}
		for j, h := range row {
			if h < 0 {
				return nil, errors.Wrapf(customerrors.ErrInvalidInput, "negative height %d at (%d, %d)", h, i, j)
			}
		}
		copy(m.cells[i], row)
	}
	return m, nil
}

// Random fills a rows x cols matrix with heights drawn uniformly from
// [min, max] inclusive.
func Random(rows, cols, min, max int, rnd *rand.Rand) (*Matrix, error) {
	if min < 0 || min > max {
		return nil, errors.Wrapf(customerrors.ErrInvalidInput, "value range [%d, %d]", min, max)
	}

	m, err := New(rows, cols)
	if err != nil {
		return nil, err
	}

	for i := range m.cells {
		for j := range m.cells[i] {
			m.cells[i][j] = min + rnd.Intn(max-min+1)
		}
	}
	return m, nil
}

func (m *Matrix) Rows() int {
	return m.rows
}

func (m *Matrix) Cols() int {
	return m.cols
}

func (m *Matrix) At(row, col int) int {
	return m.cells[row][col]
}

func (m *Matrix) InBounds(row, col int) bool {
	return row >= 0 && row < m.rows && col >= 0 && col < m.cols
}

func (m *Matrix) IsBorder(row, col int) bool {
	return row == 0 || col == 0 || row == m.rows-1 || col == m.cols-1
}

// Pour adds amount of water on top of the cell at (row, col).
func (m *Matrix) Pour(row, col, amount int) error {
	if !m.InBounds(row, col) {
		return errors.Wrapf(customerrors.ErrInvalidInput, "pour at (%d, %d) outside %dx%d matrix", row, col, m.rows, m.cols)
	}
	if amount < 0 {
		return errors.Wrapf(customerrors.ErrInvalidInput, "negative pour amount %d", amount)
	}

	m.cells[row][col] += amount
	return nil
}

func (m *Matrix) Clone() *Matrix {
	cp := &Matrix{rows: m.rows, cols: m.cols, cells: make([][]int, m.rows)}
	for i := range cp.cells {
		cp.cells[i] = make([]int, m.cols)
		copy(cp.cells[i], m.cells[i])
	}
	return cp
}

func (m *Matrix) String() string {
	b := strings.Builder{}
	for _, row := range m.cells {
		for j, h := range row {
			if j > 0 {
				b.WriteByte(' ')
			}
			b.WriteString(fmt.Sprint(h))
		}
		b.WriteByte('\n')
	}
	return b.String()
}
