package ged

import (
	"math"

	"github.com/evpinheiro/goged/costmatrix"
)

// NoNode is the sentinel NodeID meaning "no node" — a deletion or
// insertion endpoint. Callers must not use -1 as a real node identifier.
const NoNode NodeID = -1

// NoEdge is the sentinel Edge meaning "no edge".
var NoEdge = Edge{U: NoNode, V: NoNode}

// VertexPair is one entry of a partial or complete vertex edit path:
// (u, v) with u == NoNode for an insertion, v == NoNode for a deletion.
type VertexPair struct {
	U, V NodeID
}

// EdgePair is one entry of a partial or complete edge edit path, using
// NoEdge the same way VertexPair uses NoNode.
type EdgePair struct {
	G, H Edge
}

// edgeIndexPair indexes into Ce's (M+N)x(M+N) coordinate space: X < M
// names a real pendingG[X], X >= M is the sentinel-paired "no g" index
// M+hInd[l]; symmetrically for Y against N.
type edgeIndexPair struct {
	X, Y int
}

// matchEdges picks the pending-edge pairings induced by the proposed
// vertex pairing (u, v) together with the vertices already committed in
// matchedUV, solves a local LSAP over that subset, and returns the
// chosen edge-index pairs and the local CostMatrix.
func matchEdges(u, v NodeID, pendingG, pendingH []Edge, ce *costmatrix.Matrix, matchedUV []VertexPair, directed bool) ([]edgeIndexPair, *costmatrix.Matrix) {
	M := len(pendingG)
	N := len(pendingH)

	var gInd, hInd []int
	for i, g := range pendingG {
		if touchesMatchedG(g, u, matchedUV) {
			gInd = append(gInd, i)
		}
	}
	for j, h := range pendingH {
		if touchesMatchedH(h, v, matchedUV) {
			hInd = append(hInd, j)
		}
	}

	m := len(gInd)
	n := len(hInd)

	// When both gInd and hInd are empty, ExtractSub naturally yields a
	// 0x0 matrix and Construct resolves it to a zero-cost CostMatrix —
	// the empty-pending-edge short-circuit falls out of the general path
	// without a special case.
	sub := ce.ExtractSub(gInd, hInd, M, N)
	for k, i := range gInd {
		g := pendingG[i]
		for l, j := range hInd {
			h := pendingH[j]
			if !validEdgeMatch(g, h, u, v, matchedUV, directed) {
				sub[k][l] = math.Inf(1)
			}
		}
	}

	localCe := costmatrix.Construct(sub, m, n)

	var xy []edgeIndexPair
	for idx := range localCe.RowInd {
		k := localCe.RowInd[idx]
		l := localCe.ColInd[idx]
		if k >= m && l >= n {
			continue // dummy-dummy pairing, no edge operation realised
		}
		var x, y int
		if k < m {
			x = gInd[k]
		} else {
			x = M + hInd[l]
		}
		if l < n {
			y = hInd[l]
		} else {
			y = N + gInd[k]
		}
		xy = append(xy, edgeIndexPair{X: x, Y: y})
	}
	return xy, localCe
}

// touchesMatchedG reports whether g has both endpoints being either u
// itself (a self-loop at u) or a G1 endpoint already matched in
// matchedUV.
func touchesMatchedG(g Edge, u NodeID, matchedUV []VertexPair) bool {
	if g.U == u && g.V == u {
		return true
	}
	for _, pair := range matchedUV {
		p := pair.U
		if (g.U == p && g.V == u) || (g.U == u && g.V == p) {
			return true
		}
	}
	return false
}

func touchesMatchedH(h Edge, v NodeID, matchedUV []VertexPair) bool {
	if h.U == v && h.V == v {
		return true
	}
	for _, pair := range matchedUV {
		q := pair.V
		if (h.U == q && h.V == v) || (h.U == v && h.V == q) {
			return true
		}
	}
	return false
}

// validEdgeMatch reports whether g (incident to u) may legally pair with
// h (incident to v): a self-loop may only match a self-loop; otherwise
// there must be an already-matched pair (p, q) such that g connects p
// and u and h connects q and v. For a directed graph this must hold
// with both edges in the same orientation — either both running from
// the matched partner into u/v, or both running from u/v out to the
// matched partner.
func validEdgeMatch(g, h Edge, u, v NodeID, matchedUV []VertexPair, directed bool) bool {
	gSelf := g.U == u && g.V == u
	hSelf := h.U == v && h.V == v
	if gSelf || hSelf {
		return gSelf && hSelf
	}
	for _, pair := range matchedUV {
		p, q := pair.U, pair.V
		if directed {
			in := g.U == p && g.V == u && h.U == q && h.V == v
			out := g.U == u && g.V == p && h.U == v && h.V == q
			if in || out {
				return true
			}
		} else {
			gOK := (g.U == p && g.V == u) || (g.U == u && g.V == p)
			hOK := (h.U == q && h.V == v) || (h.U == v && h.V == q)
			if gOK && hOK {
				return true
			}
		}
	}
	return false
}

// reduceCe shrinks Ce after committing the edge pairings xy, re-solving
// the LSAP on the reduced matrix (edge reductions are never the fast
// single-pair path the way vertex reductions are, since xy may commit
// several pairs at once).
func reduceCe(ce *costmatrix.Matrix, xy []edgeIndexPair, m, n int) *costmatrix.Matrix {
	if len(xy) == 0 {
		return ce
	}
	rows := make([]int, len(xy))
	cols := make([]int, len(xy))
	realG, realH := 0, 0
	for k, p := range xy {
		rows[k] = p.X
		cols[k] = p.Y
		if p.X < m {
			realG++
		}
		if p.Y < n {
			realH++
		}
	}
	mRemain := m - realG
	nRemain := n - realH
	c := ce.ReduceSub(rows, cols, m, n)
	return costmatrix.Construct(c, mRemain, nRemain)
}
