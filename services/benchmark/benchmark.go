// Package benchmark times the flood-fill solver on every configured queue
// backend against one shared random height map.
package benchmark

import (
	"math/rand"
	"time"

	"go-rainwater/config"
	"go-rainwater/pkg/customerrors"
	"go-rainwater/pkg/heightmap"
	"go-rainwater/pkg/pqueue"
	"go-rainwater/pkg/solver"
	"go-rainwater/util/timer"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

type Result struct {
	Kind    pqueue.Kind
	Volume  int
	Elapsed time.Duration
	Stats   solver.Stats
}

type Benchmark struct {
	cfg      *config.BenchmarkConfig
	log      *logrus.Logger
	newQueue func(pqueue.Kind) (pqueue.Queue, error)
}

func New(cfg *config.BenchmarkConfig, log *logrus.Logger) *Benchmark {
	return &Benchmark{
		cfg:      cfg,
		log:      log,
		newQueue: pqueue.New,
	}
}

// Run generates the height map and solves it once per backend, one after
// another. Backends never run concurrently so their timings do not
// interfere.
func (b *Benchmark) Run() (*Report, error) {
	if err := b.cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid benchmark config")
	}

	rnd := rand.New(rand.NewSource(b.cfg.Seed))
	m, err := heightmap.Random(b.cfg.Rows, b.cfg.Cols, b.cfg.Min, b.cfg.Max, rnd)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate height map")
	}
	b.log.WithFields(logrus.Fields{
		"rows": b.cfg.Rows,
		"cols": b.cfg.Cols,
		"min":  b.cfg.Min,
		"max":  b.cfg.Max,
		"seed": b.cfg.Seed,
	}).Debug("height map generated")

	report := &Report{
		Rows:    b.cfg.Rows,
		Cols:    b.cfg.Cols,
		Seed:    b.cfg.Seed,
		Pour:    b.cfg.Pour,
		Results: make([]*Result, 0, len(b.cfg.Backends)),
	}

	for _, kind := range b.cfg.Backends {
		res, err := b.runOne(kind, m)
		if err != nil {
			return nil, err
		}
		report.Results = append(report.Results, res)
	}

	first := report.Results[0]
	for _, res := range report.Results[1:] {
		if res.Volume != first.Volume {
			return report, errors.Wrapf(
				customerrors.ErrBackendMismatch,
				"'%s' computed %d, '%s' computed %d",
				first.Kind, first.Volume, res.Kind, res.Volume,
			)
		}
	}

	return report, nil
}

func (b *Benchmark) runOne(kind pqueue.Kind, src *heightmap.Matrix) (*Result, error) {
	q, err := b.newQueue(kind)
	if err != nil {
		return nil, err
	}

	m := src.Clone()
	var pour *solver.Pour
	if p := b.cfg.Pour; p != nil {
		pour = &solver.Pour{Row: p.Row, Col: p.Col, Amount: p.Amount}
	}

	var res *solver.Result
	elapsed, err := timer.Measure(func() error {
		var err error
		res, err = solver.SolveWithStats(m, q, pour)
		return err
	})
	if err != nil {
		return nil, errors.Wrapf(err, "backend '%s' failed", kind)
	}

	b.log.WithFields(logrus.Fields{
		"backend": kind,
		"volume":  res.Volume,
		"elapsed": elapsed,
		"pushes":  res.Stats.Pushes,
		"pops":    res.Stats.Pops,
		"peak":    res.Stats.PeakSize,
	}).Info("solved")

	return &Result{
		Kind:    kind,
		Volume:  res.Volume,
		Elapsed: elapsed,
		Stats:   res.Stats,
	}, nil
}
