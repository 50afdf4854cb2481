package config

import (
	"time"

	"go-rainwater/pkg/customerrors"
	"go-rainwater/pkg/pqueue"

	"github.com/pkg/errors"
)

// PourConfig places Amount of water on the cell at (Row, Col) before
// every solve.
type PourConfig struct {
	Row    int
	Col    int
	Amount int
}

type BenchmarkConfig struct {
	Rows     int
	Cols     int
	Min      int
	Max      int
	Seed     int64
	Pour     *PourConfig
	Backends []pqueue.Kind
}

func NewBenchmarkConfig() *BenchmarkConfig {
	return &BenchmarkConfig{
		Rows:     1500,
		Cols:     1500,
		Min:      0,
		Max:      10,
		Seed:     time.Now().UnixNano(),
		Pour:     nil,
		Backends: pqueue.Kinds(),
	}
}

// DefaultPour is the pour event of the classic run, off unless requested.
func DefaultPour() *PourConfig {
	return &PourConfig{Row: 10, Col: 10, Amount: 5}
}

func (c *BenchmarkConfig) Validate() error {
	if c.Rows < 1 || c.Cols < 1 {
		return errors.Wrapf(customerrors.ErrInvalidInput, "matrix dimensions %dx%d", c.Rows, c.Cols)
	}
	if c.Min < 0 || c.Min > c.Max {
		return errors.Wrapf(customerrors.ErrInvalidInput, "value range [%d, %d]", c.Min, c.Max)
	}
	if len(c.Backends) == 0 {
		return errors.Wrap(customerrors.ErrInvalidInput, "no backends selected")
	}
	if p := c.Pour; p != nil {
		if p.Row < 0 || p.Row >= c.Rows || p.Col < 0 || p.Col >= c.Cols {
			return errors.Wrapf(customerrors.ErrInvalidInput, "pour at (%d, %d) outside %dx%d matrix", p.Row, p.Col, c.Rows, c.Cols)
		}
		if p.Amount < 0 {
			return errors.Wrapf(customerrors.ErrInvalidInput, "negative pour amount %d", p.Amount)
		}
	}
	return nil
}
