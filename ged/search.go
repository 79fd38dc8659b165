package ged

import (
	"context"
	"iter"
	"sort"

	"github.com/evpinheiro/goged/costmatrix"
)

// Result is one complete edit path, as yielded by the search.
type Result struct {
	VertexPath []VertexPair
	EdgePath   []EdgePair
	Cost       float64
}

// state is the mutable partial edit path the DFS driver explores and
// backtracks through. It is never shared across goroutines: the search
// is single-threaded and cooperative.
type state struct {
	matchedUV []VertexPair
	pendingU  []NodeID
	pendingV  []NodeID
	cv        *costmatrix.Matrix

	matchedGH []EdgePair
	pendingG  []Edge
	pendingH  []Edge
	ce        *costmatrix.Matrix

	matchedCost float64
}

// searcher owns the maxcost cell and drives the recursive DFS. It is
// constructed fresh for every public-entry-point invocation.
type searcher struct {
	ctx                context.Context
	directed           bool
	upperBound         *float64
	strictlyDecreasing bool
	maxcost            float64
}

func (s *searcher) prune(cost float64) bool {
	if s.upperBound != nil && cost > *s.upperBound {
		return true
	}
	if cost > s.maxcost {
		return true
	}
	if s.strictlyDecreasing && cost >= s.maxcost {
		return true
	}
	return false
}

// seq returns the lazy generator of complete edit paths: a
// range-over-func sequence so the consumer can stop pulling
// (breaking out of a for-range) without the DFS running to completion.
func (s *searcher) seq(initial *state) iter.Seq[Result] {
	return func(yield func(Result) bool) {
		s.dfs(initial, yield)
	}
}

// dfs performs one step of the depth-first search: prune, check for a
// terminal state, or expand and recurse through candidates in the order
// the branch expander offers them, undoing each move exactly on
// backtrack. It returns false once the consumer has asked to stop.
func (s *searcher) dfs(st *state, yield func(Result) bool) bool {
	if s.ctx != nil && s.ctx.Err() != nil {
		return false
	}
	if s.prune(st.matchedCost + st.cv.Ls + st.ce.Ls) {
		return true
	}

	if len(st.pendingU) == 0 && len(st.pendingV) == 0 {
		if st.matchedCost < s.maxcost {
			s.maxcost = st.matchedCost
		}
		vp := append([]VertexPair(nil), st.matchedUV...)
		ep := append([]EdgePair(nil), st.matchedGH...)
		return yield(Result{VertexPath: vp, EdgePath: ep, Cost: st.matchedCost})
	}

	est := &expandState{
		pendingU:    st.pendingU,
		pendingV:    st.pendingV,
		cv:          st.cv,
		pendingG:    st.pendingG,
		pendingH:    st.pendingH,
		ce:          st.ce,
		matchedUV:   st.matchedUV,
		matchedCost: st.matchedCost,
		directed:    s.directed,
	}
	for _, c := range expand(est, s.prune) {
		if s.prune(st.matchedCost + c.editCost + c.cvNext.Ls + c.ceNext.Ls) {
			continue
		}
		undo := applyCandidate(st, c)
		cont := s.dfs(st, yield)
		undo()
		if !cont {
			return false
		}
	}
	return true
}

// applyCandidate commits candidate c onto st and returns a function that
// undoes the move exactly, restoring every popped item to its original
// position.
func applyCandidate(st *state, c candidate) (undo func()) {
	m := len(st.pendingU)
	n := len(st.pendingV)

	var u, v NodeID = NoNode, NoNode
	if c.i < m {
		u = st.pendingU[c.i]
		st.pendingU = append(st.pendingU[:c.i:c.i], st.pendingU[c.i+1:]...)
	}
	if c.j < n {
		v = st.pendingV[c.j]
		st.pendingV = append(st.pendingV[:c.j:c.j], st.pendingV[c.j+1:]...)
	}
	st.matchedUV = append(st.matchedUV, VertexPair{U: u, V: v})

	lenG := len(st.pendingG)
	lenH := len(st.pendingH)
	addedGH := 0
	for _, p := range c.xy {
		g, h := NoEdge, NoEdge
		if p.X < lenG {
			g = st.pendingG[p.X]
		}
		if p.Y < lenH {
			h = st.pendingH[p.Y]
		}
		st.matchedGH = append(st.matchedGH, EdgePair{G: g, H: h})
		addedGH++
	}

	sortedX := xsOf(c.xy)
	sortedY := ysOf(c.xy)
	sort.Ints(sortedX)
	sort.Ints(sortedY)

	poppedG := make(map[int]Edge, len(sortedX))
	for i := len(sortedX) - 1; i >= 0; i-- {
		x := sortedX[i]
		if x < len(st.pendingG) {
			poppedG[x] = st.pendingG[x]
			st.pendingG = append(st.pendingG[:x:x], st.pendingG[x+1:]...)
		}
	}
	poppedH := make(map[int]Edge, len(sortedY))
	for i := len(sortedY) - 1; i >= 0; i-- {
		y := sortedY[i]
		if y < len(st.pendingH) {
			poppedH[y] = st.pendingH[y]
			st.pendingH = append(st.pendingH[:y:y], st.pendingH[y+1:]...)
		}
	}

	prevCv, prevCe, prevCost := st.cv, st.ce, st.matchedCost
	st.cv = c.cvNext
	st.ce = c.ceNext
	st.matchedCost += c.editCost

	return func() {
		st.cv = prevCv
		st.ce = prevCe
		st.matchedCost = prevCost

		for _, x := range sortedX {
			if g, ok := poppedG[x]; ok {
				st.pendingG = insertAt(st.pendingG, x, g)
			}
		}
		for _, y := range sortedY {
			if h, ok := poppedH[y]; ok {
				st.pendingH = insertAt(st.pendingH, y, h)
			}
		}
		st.matchedGH = st.matchedGH[:len(st.matchedGH)-addedGH]

		st.matchedUV = st.matchedUV[:len(st.matchedUV)-1]
		if v != NoNode {
			st.pendingV = insertAt(st.pendingV, c.j, v)
		}
		if u != NoNode {
			st.pendingU = insertAt(st.pendingU, c.i, u)
		}
	}
}

func xsOf(xy []edgeIndexPair) []int {
	out := make([]int, len(xy))
	for i, p := range xy {
		out[i] = p.X
	}
	return out
}

func ysOf(xy []edgeIndexPair) []int {
	out := make([]int, len(xy))
	for i, p := range xy {
		out[i] = p.Y
	}
	return out
}

func insertAt[T any](s []T, idx int, v T) []T {
	s = append(s, v)
	copy(s[idx+1:], s[idx:len(s)-1])
	s[idx] = v
	return s
}
