package benchmark

import (
	"fmt"
	"io"
	"strings"

	"go-rainwater/config"
	"go-rainwater/pkg/pqueue"
)

const separatorWidth = 100

type Report struct {
	Rows    int
	Cols    int
	Seed    int64
	Pour    *config.PourConfig
	Results []*Result
}

func (r *Report) Result(kind pqueue.Kind) (*Result, bool) {
	for _, res := range r.Results {
		if res.Kind == kind {
			return res, true
		}
	}
	return nil, false
}

// Relative returns the reference backend's time as a percentage of kind's
// time. Values above 100 mean kind was faster than the reference.
func (r *Report) Relative(kind pqueue.Kind) (float64, bool) {
	ref, ok := r.Result(pqueue.KindReference)
	if !ok {
		return 0, false
	}
	res, ok := r.Result(kind)
	if !ok || res.Elapsed <= 0 {
		return 0, false
	}
	return float64(ref.Elapsed) / float64(res.Elapsed) * 100, true
}

func (r *Report) Write(w io.Writer) error {
	line := strings.Repeat("-", separatorWidth) + "\n"
	b := strings.Builder{}

	b.WriteString(line)
	fmt.Fprintf(&b, "Height map: %dx%d, seed %d\n", r.Rows, r.Cols, r.Seed)
	if r.Pour != nil {
		fmt.Fprintf(&b, "Poured %d at (%d, %d)\n", r.Pour.Amount, r.Pour.Row, r.Pour.Col)
	}
	b.WriteString(line)

	for _, res := range r.Results {
		fmt.Fprintf(&b, "Backend '%s': %v\n", res.Kind, res.Elapsed)
		fmt.Fprintf(&b, "Trapped volume: %d\n", res.Volume)
		b.WriteString(line)
	}

	if _, ok := r.Result(pqueue.KindReference); ok {
		compared := false
		for _, res := range r.Results {
			if res.Kind == pqueue.KindReference {
				continue
			}
			if pct, ok := r.Relative(res.Kind); ok {
				if !compared {
					b.WriteString("Compared to the reference backend:\n")
					compared = true
				}
				fmt.Fprintf(&b, "'%s': %.2f%% of reference speed\n", res.Kind, pct)
			}
		}
		if compared {
			b.WriteString(line)
		}
	}

	_, err := io.WriteString(w, b.String())
	return err
}
