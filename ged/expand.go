package ged

import (
	"sort"

	"github.com/evpinheiro/goged/costmatrix"
)

// candidate is one next vertex-operation the branch expander offers the
// driver: the pairing (i, j) into the current pending
// index space, the resulting reduced CostMatrices, the edge pairings it
// commits, and its contribution to the path cost.
type candidate struct {
	i, j     int
	cvNext   *costmatrix.Matrix
	xy       []edgeIndexPair
	ceNext   *costmatrix.Matrix
	editCost float64
}

// expandState is the read-only slice of search state the expander needs.
type expandState struct {
	pendingU []NodeID
	pendingV []NodeID
	cv       *costmatrix.Matrix
	pendingG []Edge
	pendingH []Edge
	ce       *costmatrix.Matrix
	matchedUV []VertexPair
	matchedCost float64
	directed bool
}

// expand yields candidate next vertex operations in order of promise:
// first the LSAP-recommended pair, then alternatives sorted by
// increasing lower-bound estimate, each surviving a pruning cascade.
func expand(st *expandState, prune func(float64) bool) []candidate {
	m := len(st.pendingU)
	n := len(st.pendingV)

	i0, j0 := -1, -1
	for k := range st.cv.RowInd {
		i, j := st.cv.RowInd[k], st.cv.ColInd[k]
		if i >= m && j >= n {
			continue
		}
		if i0 == -1 || i < i0 || (i == i0 && j < j0) {
			i0, j0 = i, j
		}
	}

	var out []candidate

	u0, v0 := vertexAt(st.pendingU, i0), vertexAt(st.pendingV, j0)
	xy0, localCe0 := matchEdges(u0, v0, st.pendingG, st.pendingH, st.ce, st.matchedUV, st.directed)
	ceNext0 := reduceCe(st.ce, xy0, len(st.pendingG), len(st.pendingH))
	if !prune(st.matchedCost + st.cv.Ls + localCe0.Ls + ceNext0.Ls) {
		cvNext0 := st.cv.ReduceFast(i0, j0, m, n)
		out = append(out, candidate{
			i: i0, j: j0,
			cvNext:   cvNext0,
			xy:       xy0,
			ceNext:   ceNext0,
			editCost: st.cv.C[i0][j0] + localCe0.Ls,
		})
	}

	var altIJ [][2]int
	if m <= n {
		for t := 0; t < m+n; t++ {
			if t == i0 {
				continue
			}
			if t < m || t == m+j0 {
				altIJ = append(altIJ, [2]int{t, j0})
			}
		}
	} else {
		for t := 0; t < m+n; t++ {
			if t == j0 {
				continue
			}
			if t < n || t == n+i0 {
				altIJ = append(altIJ, [2]int{i0, t})
			}
		}
	}

	var others []candidate
	for _, ij := range altIJ {
		i, j := ij[0], ij[1]
		if prune(st.matchedCost + st.cv.C[i][j] + st.ce.Ls) {
			continue
		}
		mNext, nNext := m, n
		if i < m {
			mNext = m - 1
		}
		if j < n {
			nNext = n - 1
		}
		reduced := st.cv.ReduceSub([]int{i}, []int{j}, m, n)
		cvNext := costmatrix.Construct(reduced, mNext, nNext)
		if prune(st.matchedCost + st.cv.C[i][j] + cvNext.Ls + st.ce.Ls) {
			continue
		}
		u, v := vertexAt(st.pendingU, i), vertexAt(st.pendingV, j)
		xy, localCe := matchEdges(u, v, st.pendingG, st.pendingH, st.ce, st.matchedUV, st.directed)
		if prune(st.matchedCost + st.cv.C[i][j] + cvNext.Ls + localCe.Ls) {
			continue
		}
		ceNext := reduceCe(st.ce, xy, len(st.pendingG), len(st.pendingH))
		if prune(st.matchedCost + st.cv.C[i][j] + cvNext.Ls + localCe.Ls + ceNext.Ls) {
			continue
		}
		others = append(others, candidate{
			i: i, j: j,
			cvNext:   cvNext,
			xy:       xy,
			ceNext:   ceNext,
			editCost: st.cv.C[i][j] + localCe.Ls,
		})
	}

	sort.SliceStable(others, func(a, b int) bool {
		return others[a].editCost+others[a].cvNext.Ls+others[a].ceNext.Ls <
			others[b].editCost+others[b].cvNext.Ls+others[b].ceNext.Ls
	})
	return append(out, others...)
}

func vertexAt(pending []NodeID, idx int) NodeID {
	if idx >= 0 && idx < len(pending) {
		return pending[idx]
	}
	return NoNode
}
