// Package costmatrix holds the square cost matrices the GED branch-and-
// bound search operates on, together with the operations it requires:
// construction (via an LSAP solve plus dummy-pairing canonicalisation),
// submatrix extraction/reduction, and a fast single-pair reduction that
// avoids resolving the LSAP from scratch.
package costmatrix

import "github.com/evpinheiro/goged/lsap"

// Matrix is a square (m+n)x(m+n) cost matrix together with an optimal
// assignment (RowInd, ColInd) and that assignment's cost sum Ls, a lower
// bound on the cost of any completion consistent with this sub-problem.
//
// After Construct, for every substitution pairing (k with RowInd[k] < m
// and ColInd[k] < n) there is a unique dummy pairing (k' with RowInd[k']
// >= m and ColInd[k'] >= n) satisfying RowInd[k'] = ColInd[k] + m and
// ColInd[k'] = RowInd[k] + n. This canonicalisation lets ReduceFast
// compute the reduced Ls without a fresh LSAP solve for the common case
// of committing a single pair.
type Matrix struct {
	C      [][]float64
	RowInd []int
	ColInd []int
	Ls     float64
}

// Construct solves the LSAP on c (an (m+n)x(m+n) matrix) and canonicalises
// dummy pairings so that every substitution (k, l) with k < m and l < n is
// paired with the dummy assignment (l+m, k+n).
func Construct(c [][]float64, m, n int) *Matrix {
	rowInd, colInd, _ := lsap.Solve(c)
	size := len(c)

	var substK, dummyK []int
	for k := 0; k < size; k++ {
		i, j := rowInd[k], colInd[k]
		switch {
		case i < m && j < n:
			substK = append(substK, k)
		case i >= m && j >= n:
			dummyK = append(dummyK, k)
		}
	}
	if len(substK) != len(dummyK) {
		panic("costmatrix: substitution/dummy pairing count mismatch")
	}
	for idx, k := range dummyK {
		s := substK[idx]
		rowInd[k] = colInd[s] + m
		colInd[k] = rowInd[s] + n
	}

	ls := 0.0
	for k := range rowInd {
		ls += c[rowInd[k]][colInd[k]]
	}

	return &Matrix{C: c, RowInd: rowInd, ColInd: colInd, Ls: ls}
}

// ExtractSub builds the submatrix of size (len(rows)+len(cols)) keeping
// row k iff k is in rows or k-m is in cols, and column k iff k is in cols
// or k-n is in rows. It is the building block for edge-match subproblems.
func (mat *Matrix) ExtractSub(rows, cols []int, m, n int) [][]float64 {
	rowSet := toSet(rows)
	colSet := toSet(cols)
	size := len(mat.C)

	var keepRow, keepCol []int
	for k := 0; k < size; k++ {
		if rowSet[k] || colSet[k-m] {
			keepRow = append(keepRow, k)
		}
		if colSet[k] || rowSet[k-n] {
			keepCol = append(keepCol, k)
		}
	}
	return subMatrix(mat.C, keepRow, keepCol)
}

// ReduceSub builds the complementary submatrix to ExtractSub: keeping row
// k iff k is not in rows and k-m is not in cols, and column k iff k is not
// in cols and k-n is not in rows. It shrinks Cv/Ce after committing an
// assignment.
func (mat *Matrix) ReduceSub(rows, cols []int, m, n int) [][]float64 {
	rowSet := toSet(rows)
	colSet := toSet(cols)
	size := len(mat.C)

	var keepRow, keepCol []int
	for k := 0; k < size; k++ {
		if !rowSet[k] && !colSet[k-m] {
			keepRow = append(keepRow, k)
		}
		if !colSet[k] && !rowSet[k-n] {
			keepCol = append(keepCol, k)
		}
	}
	return subMatrix(mat.C, keepRow, keepCol)
}

// ReduceInd returns the permutation over the remaining indices after
// removing every index in removed from ind, reindexed contiguously.
func ReduceInd(ind []int, removed []int) []int {
	removedSet := toSet(removed)
	var kept []int
	for _, v := range ind {
		if !removedSet[v] {
			kept = append(kept, v)
		}
	}
	sortedRemoved := append([]int(nil), removed...)
	insertionSort(sortedRemoved)
	for i, v := range kept {
		shift := 0
		for _, r := range sortedRemoved {
			if r < v {
				shift++
			}
		}
		kept[i] = v - shift
	}
	return kept
}

// ReduceFast produces the reduced Matrix after committing the pairing
// (i, j) in an (m+n)x(m+n) matrix of sizes (m, n), using the
// canonicalisation invariant established by Construct: no LSAP re-solve
// is needed, only a submatrix extraction, index reindexing, and an Ls
// subtraction.
func (mat *Matrix) ReduceFast(i, j, m, n int) *Matrix {
	c := mat.ReduceSub([]int{i}, []int{j}, m, n)
	rowInd := ReduceInd(mat.RowInd, []int{i, m + j})
	colInd := ReduceInd(mat.ColInd, []int{j, n + i})
	return &Matrix{
		C:      c,
		RowInd: rowInd,
		ColInd: colInd,
		Ls:     mat.Ls - mat.C[i][j],
	}
}

func subMatrix(c [][]float64, rows, cols []int) [][]float64 {
	out := make([][]float64, len(rows))
	for a, r := range rows {
		row := make([]float64, len(cols))
		for b, cl := range cols {
			row[b] = c[r][cl]
		}
		out[a] = row
	}
	return out
}

func toSet(vals []int) map[int]bool {
	s := make(map[int]bool, len(vals))
	for _, v := range vals {
		s[v] = true
	}
	return s
}

func insertionSort(s []int) {
	for i := 1; i < len(s); i++ {
		for j := i; j > 0 && s[j-1] > s[j]; j-- {
			s[j-1], s[j] = s[j], s[j-1]
		}
	}
}
