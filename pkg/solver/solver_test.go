package solver

import (
	"errors"
	"math"
	"math/rand"
	"testing"

	"go-rainwater/pkg/customerrors"
	"go-rainwater/pkg/heightmap"
	"go-rainwater/pkg/pqueue"

	"github.com/stretchr/testify/require"
)

func solveAll(t *testing.T, rows [][]int, pour *Pour) map[pqueue.Kind]int {
	volumes := map[pqueue.Kind]int{}
	for _, k := range pqueue.Kinds() {
		m, err := heightmap.FromRows(rows)
		require.NoError(t, err)
		q, err := pqueue.New(k)
		require.NoError(t, err)

		var p *Pour
		if pour != nil {
			cp := *pour
			p = &cp
		}

		v, err := Solve(m, q, p)
		require.NoError(t, err, k)
		require.True(t, q.Empty(), k)
		volumes[k] = v
	}
	return volumes
}

func requireVolume(t *testing.T, expected int, rows [][]int, pour *Pour) {
	for k, v := range solveAll(t, rows, pour) {
		require.Equal(t, expected, v, k)
	}
}

// bruteForce relaxes every cell's water level to the lowest of its
// neighbours' levels until nothing changes.
func bruteForce(rows [][]int) int {
	n, m := len(rows), len(rows[0])
	level := make([][]int, n)
	for i := range level {
		level[i] = make([]int, m)
		for j := range level[i] {
			if i == 0 || j == 0 || i == n-1 || j == m-1 {
				level[i][j] = rows[i][j]
			} else {
				level[i][j] = math.MaxInt
			}
		}
	}

	for changed := true; changed; {
		changed = false
		for i := 1; i < n-1; i++ {
			for j := 1; j < m-1; j++ {
				low := math.MaxInt
				for _, d := range directions {
					if l := level[i+d[0]][j+d[1]]; l < low {
						low = l
					}
				}
				if low < rows[i][j] {
					low = rows[i][j]
				}
				if low < level[i][j] {
					level[i][j] = low
					changed = true
				}
			}
		}
	}

	volume := 0
	for i := range rows {
		for j := range rows[i] {
			volume += level[i][j] - rows[i][j]
		}
	}
	return volume
}

func randomRows(rnd *rand.Rand, n, m, max int) [][]int {
	rows := make([][]int, n)
	for i := range rows {
		rows[i] = make([]int, m)
		for j := range rows[i] {
			rows[i][j] = rnd.Intn(max + 1)
		}
	}
	return rows
}

func TestExamples(t *testing.T) {
	requireVolume(t, 2, [][]int{
		{1, 4, 3},
		{3, 1, 3},
		{3, 3, 1},
	}, nil)

	requireVolume(t, 0, [][]int{
		{1, 1, 1},
		{1, 1, 1},
		{1, 1, 1},
	}, nil)

	requireVolume(t, 4, [][]int{
		{1, 4, 3, 1, 3, 2},
		{3, 2, 1, 3, 2, 4},
		{2, 3, 3, 2, 3, 1},
	}, nil)

	requireVolume(t, 10, [][]int{
		{3, 3, 3, 3, 3},
		{3, 2, 2, 2, 3},
		{3, 2, 1, 2, 3},
		{3, 2, 2, 2, 3},
		{3, 3, 3, 3, 3},
	}, nil)
}

func TestDegenerateShapes(t *testing.T) {
	requireVolume(t, 0, [][]int{{7}}, nil)
	requireVolume(t, 0, [][]int{{5, 0, 5, 0, 5}}, nil)
	requireVolume(t, 0, [][]int{{5}, {0}, {5}}, nil)
	requireVolume(t, 0, [][]int{{5, 0}, {0, 5}}, nil)
}

func TestFlat(t *testing.T) {
	for _, h := range []int{0, 1, 9} {
		rows := make([][]int, 6)
		for i := range rows {
			rows[i] = []int{h, h, h, h, h, h, h}
		}
		requireVolume(t, 0, rows, nil)
	}
}

func TestPit(t *testing.T) {
	const wall, depth = 6, 4

	rows := [][]int{
		{wall, wall, wall, wall},
		{wall, wall - depth, wall - depth, wall},
		{wall, wall - depth, wall, wall},
		{wall, wall, wall, wall},
	}
	requireVolume(t, 3*depth, rows, nil)

	// a lower wall cell sets the spill level
	rows[3][1] = wall - 1
	requireVolume(t, 3*(depth-1), rows, nil)

	// a gap in the wall drains the pit
	rows[3][1] = wall - depth
	requireVolume(t, 0, rows, nil)
}

func TestPour(t *testing.T) {
	rows := [][]int{
		{3, 3, 3},
		{3, 1, 3},
		{3, 3, 3},
	}
	requireVolume(t, 2, rows, nil)
	requireVolume(t, 1, rows, &Pour{Row: 1, Col: 1, Amount: 1})
	requireVolume(t, 0, rows, &Pour{Row: 1, Col: 1, Amount: 5})

	// raising the rim deepens the basin behind it
	rows = [][]int{
		{4, 4, 4, 4},
		{4, 0, 0, 4},
		{2, 0, 0, 4},
		{4, 4, 4, 4},
	}
	requireVolume(t, 8, rows, nil)
	requireVolume(t, 12, rows, &Pour{Row: 2, Col: 0, Amount: 1})
	requireVolume(t, 16, rows, &Pour{Row: 2, Col: 0, Amount: 7})
}

func TestPourMutatesMatrix(t *testing.T) {
	m, err := heightmap.FromRows([][]int{{2, 2, 2}, {2, 0, 2}, {2, 2, 2}})
	require.NoError(t, err)

	v, err := Solve(m, pqueue.NewArrayHeap(0), &Pour{Row: 1, Col: 1, Amount: 1})
	require.NoError(t, err)
	require.Equal(t, 1, v)
	require.Equal(t, 1, m.At(1, 1))
}

func TestBackendIndependence(t *testing.T) {
	rnd := rand.New(rand.NewSource(2024))

	for i := 0; i < 200; i++ {
		n, m := 1+rnd.Intn(12), 1+rnd.Intn(12)
		rows := randomRows(rnd, n, m, 1+rnd.Intn(15))

		var pour *Pour
		if rnd.Intn(2) == 0 {
			pour = &Pour{Row: rnd.Intn(n), Col: rnd.Intn(m), Amount: rnd.Intn(10)}
		}

		expected := -1
		for k, v := range solveAll(t, rows, pour) {
			if expected == -1 {
				expected = v
			}
			require.Equal(t, expected, v, k)
		}

		if pour == nil {
			require.Equal(t, bruteForce(rows), expected)
		}
	}
}

func TestBorderPourNeverDrains(t *testing.T) {
	rnd := rand.New(rand.NewSource(99))

	for i := 0; i < 100; i++ {
		n, m := 3+rnd.Intn(8), 3+rnd.Intn(8)
		rows := randomRows(rnd, n, m, 10)
		before := solveAll(t, rows, nil)

		pour := &Pour{Row: 0, Col: rnd.Intn(m), Amount: 1 + rnd.Intn(10)}
		if rnd.Intn(2) == 0 {
			pour = &Pour{Row: rnd.Intn(n), Col: m - 1, Amount: 1 + rnd.Intn(10)}
		}
		after := solveAll(t, rows, pour)

		for k := range before {
			require.GreaterOrEqual(t, after[k], before[k], k)
		}
	}
}

func TestStats(t *testing.T) {
	m, err := heightmap.FromRows([][]int{
		{1, 4, 3, 1},
		{3, 1, 3, 2},
		{3, 3, 1, 4},
	})
	require.NoError(t, err)

	res, err := SolveWithStats(m, pqueue.NewTreeHeap(0), nil)
	require.NoError(t, err)
	require.Equal(t, 12, res.Stats.Pushes)
	require.Equal(t, 12, res.Stats.Pops)
	require.Equal(t, 10, res.Stats.PeakSize)
}

func TestQueueReuse(t *testing.T) {
	q := pqueue.NewTreeHeap(0)
	for i := 0; i < 3; i++ {
		m, err := heightmap.FromRows([][]int{{3, 3, 3}, {3, 0, 3}, {3, 3, 3}})
		require.NoError(t, err)

		v, err := Solve(m, q, nil)
		require.NoError(t, err)
		require.Equal(t, 3, v)
	}
}

func TestInvalidInput(t *testing.T) {
	m, err := heightmap.FromRows([][]int{{1, 2}, {3, 4}})
	require.NoError(t, err)

	_, err = Solve(nil, pqueue.NewArrayHeap(0), nil)
	require.ErrorIs(t, err, customerrors.ErrInvalidInput)

	_, err = Solve(&heightmap.Matrix{}, pqueue.NewArrayHeap(0), nil)
	require.ErrorIs(t, err, customerrors.ErrInvalidInput)

	_, err = Solve(m, nil, nil)
	require.ErrorIs(t, err, customerrors.ErrInvalidInput)

	busy := pqueue.NewArrayHeap(0)
	busy.Push(pqueue.Element{})
	_, err = Solve(m, busy, nil)
	require.ErrorIs(t, err, customerrors.ErrInvalidInput)
	require.Equal(t, 1, busy.Size())

	for _, p := range []*Pour{
		{Row: 2, Col: 0, Amount: 1},
		{Row: 0, Col: 2, Amount: 1},
		{Row: -1, Col: 0, Amount: 1},
		{Row: 0, Col: 0, Amount: -1},
	} {
		q := pqueue.NewReferenceHeap(0)
		_, err = Solve(m, q, p)
		require.ErrorIs(t, err, customerrors.ErrInvalidInput)
		require.True(t, q.Empty())
	}
	require.Equal(t, 1, m.At(0, 0))
}

type brokenQueue struct {
	*pqueue.ArrayHeap
}

var errBroken = errors.New("broken")

func (q brokenQueue) Pop() (pqueue.Element, error) {
	return pqueue.Element{}, errBroken
}

func TestQueueFailure(t *testing.T) {
	m, err := heightmap.FromRows([][]int{{1, 2}, {3, 4}})
	require.NoError(t, err)

	_, err = Solve(m, brokenQueue{pqueue.NewArrayHeap(0)}, nil)
	require.ErrorIs(t, err, errBroken)
}

func BenchmarkSolve(b *testing.B) {
	src, err := heightmap.Random(200, 200, 0, 10, rand.New(rand.NewSource(1)))
	require.NoError(b, err)

	for _, k := range pqueue.Kinds() {
		b.Run(k.String(), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				q, _ := pqueue.New(k)
				if _, err := Solve(src.Clone(), q, nil); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}
