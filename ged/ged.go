package ged

import (
	"context"
	"iter"

	"github.com/evpinheiro/goged/gederr"
)

// EditPath is one minimum-cost edit path, without its cost attached
// (OptimalEditPaths returns the shared cost separately).
type EditPath struct {
	VertexPath []VertexPair
	EdgePath   []EdgePair
}

func checkCompatible(g1, g2 Graph) error {
	if g1.Directed() != g2.Directed() {
		return gederr.ErrIncompatibleGraphs
	}
	return nil
}

func newSearcher(ctx context.Context, directed bool, opts Options, strictlyDecreasing bool, initialBound float64) *searcher {
	return &searcher{
		ctx:                ctx,
		directed:           directed,
		upperBound:         opts.UpperBound,
		strictlyDecreasing: strictlyDecreasing,
		maxcost:            initialBound,
	}
}

func sumMatrix(c [][]float64) float64 {
	total := 0.0
	for _, row := range c {
		for _, v := range row {
			total += v
		}
	}
	return total
}

// prepare runs the initial cost-matrix builder and
// assembles the empty partial state the DFS driver starts from.
func prepare(g1, g2 Graph, opts Options) (*state, bool, error) {
	if err := checkCompatible(g1, g2); err != nil {
		return nil, false, err
	}
	cv, pendingU, pendingV, err := buildVertexMatrix(g1, g2, opts)
	if err != nil {
		return nil, false, err
	}
	ce, pendingG, pendingH, err := buildEdgeMatrix(g1, g2, opts)
	if err != nil {
		return nil, false, err
	}
	st := &state{
		pendingU: pendingU,
		pendingV: pendingV,
		cv:       cv,
		pendingG: pendingG,
		pendingH: pendingH,
		ce:       ce,
	}
	return st, g1.Directed(), nil
}

// OptimizeEditPaths is the advanced public entry point: it
// returns a lazy sequence of (vertexPath, edgePath, cost) tuples. In
// strictly-decreasing mode every yielded cost is strictly less than the
// previous and the last yield is the graph edit distance. In all-optima
// mode yielded costs are non-increasing and the tail sharing the minimum
// cost is the full set of optimal paths.
func OptimizeEditPaths(ctx context.Context, g1, g2 Graph, opts Options, strictlyDecreasing bool) (iter.Seq[Result], error) {
	st, directed, err := prepare(g1, g2, opts)
	if err != nil {
		return nil, err
	}
	initialBound := sumMatrix(st.cv.C) + sumMatrix(st.ce.C) + 1
	s := newSearcher(ctx, directed, opts, strictlyDecreasing, initialBound)
	return s.seq(st), nil
}

// GraphEditDistance returns the graph edit distance between g1 and g2:
// the cost of the optimal edit path. The second return value is false
// when no path exists under opts.UpperBound.
func GraphEditDistance(ctx context.Context, g1, g2 Graph, opts Options) (float64, bool, error) {
	seq, err := OptimizeEditPaths(ctx, g1, g2, opts, true)
	if err != nil {
		return 0, false, err
	}
	best := 0.0
	found := false
	seq(func(r Result) bool {
		best = r.Cost
		found = true
		return true
	})
	return best, found, nil
}

// OptimalEditPaths returns every minimum-cost edit path transforming g1
// into a graph isomorphic to g2, together with that minimum cost.
func OptimalEditPaths(ctx context.Context, g1, g2 Graph, opts Options) ([]EditPath, float64, error) {
	seq, err := OptimizeEditPaths(ctx, g1, g2, opts, false)
	if err != nil {
		return nil, 0, err
	}
	var paths []EditPath
	best := 0.0
	haveBest := false
	seq(func(r Result) bool {
		if haveBest && r.Cost < best {
			paths = paths[:0]
		}
		paths = append(paths, EditPath{VertexPath: r.VertexPath, EdgePath: r.EdgePath})
		best = r.Cost
		haveBest = true
		return true
	})
	return paths, best, nil
}

// OptimizeGraphEditDistance returns a lazy sequence of successively
// tighter graph-edit-distance approximations; the last value produced
// before the sequence ends is the true graph edit distance.
func OptimizeGraphEditDistance(ctx context.Context, g1, g2 Graph, opts Options) (iter.Seq[float64], error) {
	seq, err := OptimizeEditPaths(ctx, g1, g2, opts, true)
	if err != nil {
		return nil, err
	}
	return func(yield func(float64) bool) {
		seq(func(r Result) bool {
			return yield(r.Cost)
		})
	}, nil
}
