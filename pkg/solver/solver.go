// Package solver computes how much water a height map traps. It floods the
// map inwards from its border, always extending the lowest known boundary
// first, so it produces the same volume on every pqueue backend.
package solver

import (
	"go-rainwater/pkg/customerrors"
	"go-rainwater/pkg/heightmap"
	"go-rainwater/pkg/pqueue"
	"go-rainwater/util/helpers"

	"github.com/pkg/errors"
)

// Pour adds Amount of height to the cell at (Row, Col) before solving.
type Pour struct {
	Row    int
	Col    int
	Amount int
}

// Stats counts queue traffic of a single solve.
type Stats struct {
	Pushes   int
	Pops     int
	PeakSize int
}

type Result struct {
	Volume int
	Stats  Stats
}

var directions = [4][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}

// Solve returns the volume of water trapped by m. q must be empty and is
// empty again when Solve returns. A non-nil pour is applied to m in place.
func Solve(m *heightmap.Matrix, q pqueue.Queue, pour *Pour) (int, error) {
	res, err := SolveWithStats(m, q, pour)
	if err != nil {
		return 0, err
	}
	return res.Volume, nil
}

func SolveWithStats(m *heightmap.Matrix, q pqueue.Queue, pour *Pour) (*Result, error) {
	if m == nil || m.Rows() < 1 || m.Cols() < 1 {
		return nil, errors.Wrap(customerrors.ErrInvalidInput, "empty matrix")
	}
	if q == nil {
		return nil, errors.Wrap(customerrors.ErrInvalidInput, "nil queue")
	}
	if !q.Empty() {
		return nil, errors.Wrapf(customerrors.ErrInvalidInput, "queue holds %d elements", q.Size())
	}

	if pour != nil {
		if err := m.Pour(pour.Row, pour.Col, pour.Amount); err != nil {
			return nil, err
		}
	}

	f := &fill{
		m:       m,
		q:       q,
		visited: make([]bool, m.Rows()*m.Cols()),
	}
	f.seed()
	if err := f.run(); err != nil {
		return nil, err
	}

	return &Result{Volume: f.volume, Stats: f.stats}, nil
}

// fill is the state of one solve. Every cell is pushed at most once: it is
// marked visited at the moment it is pushed.
type fill struct {
	m       *heightmap.Matrix
	q       pqueue.Queue
	visited []bool
	volume  int
	stats   Stats
}

func (f *fill) push(level, row, col int) {
	f.visited[row*f.m.Cols()+col] = true
	f.q.Push(pqueue.Element{Priority: level, Row: row, Col: col})

	f.stats.Pushes++
	if s := f.q.Size(); s > f.stats.PeakSize {
		f.stats.PeakSize = s
	}
}

func (f *fill) seed() {
	rows, cols := f.m.Rows(), f.m.Cols()
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			if f.m.IsBorder(i, j) {
				f.push(f.m.At(i, j), i, j)
			}
		}
	}
}

func (f *fill) run() error {
	for !f.q.Empty() {
		e, err := f.q.Pop()
		if err != nil {
			return errors.Wrap(err, "failed to pop boundary cell")
		}
		f.stats.Pops++

		for _, d := range directions {
			r, c := e.Row+d[0], e.Col+d[1]
			if !f.m.InBounds(r, c) || f.visited[r*f.m.Cols()+c] {
				continue
			}

			h := f.m.At(r, c)
			f.volume += helpers.Max(0, e.Priority-h)
			f.push(helpers.Max(e.Priority, h), r, c)
		}
	}
	return nil
}
