package ged

import (
	"math"

	"github.com/evpinheiro/goged/costmatrix"
	"github.com/evpinheiro/goged/gederr"
)

func checkCost(kind string, v float64, err error) (float64, error) {
	if err != nil {
		return 0, err
	}
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return 0, &gederr.CostError{Kind: kind, Value: v}
	}
	return v, nil
}

// buildVertexMatrix builds Cv over |pendingU|+|pendingV|:
// substitution costs in the top-left block, deletion/insertion on the
// off-diagonal blocks, dummy-dummy zero in the bottom-right.
func buildVertexMatrix(g1, g2 Graph, opts Options) (cv *costmatrix.Matrix, pendingU, pendingV []NodeID, err error) {
	pendingU = g1.Nodes()
	pendingV = g2.Nodes()
	m, n := len(pendingU), len(pendingV)

	subst := make([][]float64, m)
	for i, u := range pendingU {
		subst[i] = make([]float64, n)
		for j, v := range pendingV {
			raw, rerr := opts.nodeSubstCost(g1.NodeAttrs(u), g2.NodeAttrs(v))
			c, cerr := checkCost("node-subst", raw, rerr)
			if cerr != nil {
				return nil, nil, nil, cerr
			}
			subst[i][j] = c
		}
	}

	delCosts := make([]float64, m)
	for i, u := range pendingU {
		raw, rerr := opts.nodeDelCost(g1.NodeAttrs(u))
		c, cerr := checkCost("node-del", raw, rerr)
		if cerr != nil {
			return nil, nil, nil, cerr
		}
		delCosts[i] = c
	}

	insCosts := make([]float64, n)
	for j, v := range pendingV {
		raw, rerr := opts.nodeInsCost(g2.NodeAttrs(v))
		c, cerr := checkCost("node-ins", raw, rerr)
		if cerr != nil {
			return nil, nil, nil, cerr
		}
		insCosts[j] = c
	}

	c := assembleBlocks(subst, delCosts, insCosts, m, n)
	return costmatrix.Construct(c, m, n), pendingU, pendingV, nil
}

// buildEdgeMatrix builds Ce over |pendingG|+|pendingH| identically over
// edges: the edge matrix is built identically to the vertex matrix.
func buildEdgeMatrix(g1, g2 Graph, opts Options) (ce *costmatrix.Matrix, pendingG, pendingH []Edge, err error) {
	pendingG = g1.Edges()
	pendingH = g2.Edges()
	m, n := len(pendingG), len(pendingH)

	subst := make([][]float64, m)
	for i, g := range pendingG {
		subst[i] = make([]float64, n)
		for j, h := range pendingH {
			raw, rerr := opts.edgeSubstCost(g1.EdgeAttrs(g), g2.EdgeAttrs(h))
			c, cerr := checkCost("edge-subst", raw, rerr)
			if cerr != nil {
				return nil, nil, nil, cerr
			}
			subst[i][j] = c
		}
	}

	delCosts := make([]float64, m)
	for i, g := range pendingG {
		raw, rerr := opts.edgeDelCost(g1.EdgeAttrs(g))
		c, cerr := checkCost("edge-del", raw, rerr)
		if cerr != nil {
			return nil, nil, nil, cerr
		}
		delCosts[i] = c
	}

	insCosts := make([]float64, n)
	for j, h := range pendingH {
		raw, rerr := opts.edgeInsCost(g2.EdgeAttrs(h))
		c, cerr := checkCost("edge-ins", raw, rerr)
		if cerr != nil {
			return nil, nil, nil, cerr
		}
		insCosts[j] = c
	}

	c := assembleBlocks(subst, delCosts, insCosts, m, n)
	return costmatrix.Construct(c, m, n), pendingG, pendingH, nil
}

// assembleBlocks lays out the (m+n)x(m+n) matrix: top-left substitution block, a local "large enough" sentinel for
// forbidden entries (sum of all finite costs plus one, so no forbidden
// cell is ever chosen over a legal one), diagonal deletion/insertion
// blocks, and a zero dummy-dummy block.
func assembleBlocks(subst [][]float64, delCosts, insCosts []float64, m, n int) [][]float64 {
	total := 0.0
	for _, row := range subst {
		for _, v := range row {
			total += v
		}
	}
	for _, v := range delCosts {
		total += v
	}
	for _, v := range insCosts {
		total += v
	}
	inf := total + 1

	size := m + n
	c := make([][]float64, size)
	for i := range c {
		c[i] = make([]float64, size)
	}
	for i := 0; i < m; i++ {
		copy(c[i][:n], subst[i])
	}
	for i := 0; i < m; i++ {
		for j := 0; j < m; j++ {
			if i == j {
				c[i][n+j] = delCosts[i]
			} else {
				c[i][n+j] = inf
			}
		}
	}
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i == j {
				c[m+i][j] = insCosts[i]
			} else {
				c[m+i][j] = inf
			}
		}
	}
	// Bottom-right n x m dummy-dummy block defaults to zero already.
	return c
}
