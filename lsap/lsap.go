// Copyright (c) 2025 Canonical Ltd
//
// Original implementation: Gustavo Niemeyer <niemeyer@canonical.com>
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package lsap solves the square Linear Sum Assignment Problem: given an
// n×n cost matrix, find the permutation of columns to rows that minimizes
// the sum of the selected costs. Entries may be +Inf to mark a pairing as
// forbidden, as long as at least one feasible perfect matching exists.
package lsap

import "math"

// Solve returns rowInd, colInd such that rowInd and colInd are both
// permutations of {0,...,n-1} and the assignment (rowInd[k], colInd[k])
// for k in 0..n minimizes the sum of c[rowInd[k]][colInd[k]]. sum is that
// minimal total cost.
//
// c must be square. Entries may be math.Inf(1) to forbid a pairing; Solve
// panics if c is not square or if no finite-cost perfect matching exists.
//
// This is a dual-variable (Hungarian) augmenting-path solver, O(n^3),
// following the classical primal-dual method: sourceCost/targetCost are
// the row/column potentials, minSlack/targetTrail drive the search for
// the next augmenting path, and the path is flipped once an unmatched
// column is reached.
func Solve(c [][]float64) (rowInd, colInd []int, sum float64) {
	n := len(c)
	for _, row := range c {
		if len(row) != n {
			panic("lsap: cost matrix must be square")
		}
	}
	if n == 0 {
		return nil, nil, 0
	}

	target := optimalAssignment(c)

	rowInd = make([]int, n)
	colInd = make([]int, n)
	for j, i := range target {
		rowInd[j] = i
		colInd[j] = j
	}
	// Canonical output order: sorted by row index, matching the row-major
	// convention the branch-and-bound driver expects from the solver.
	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	sortByRow(order, rowInd)
	sortedRow := make([]int, n)
	sortedCol := make([]int, n)
	for k, idx := range order {
		sortedRow[k] = rowInd[idx]
		sortedCol[k] = colInd[idx]
	}

	sum = 0
	for k := range sortedRow {
		sum = addCost(sum, c[sortedRow[k]][sortedCol[k]])
	}
	return sortedRow, sortedCol, sum
}

func sortByRow(order, rowInd []int) {
	// Insertion sort: n is the matrix dimension, expected small relative
	// to the overall O(n^3) solve below.
	for i := 1; i < len(order); i++ {
		for j := i; j > 0 && rowInd[order[j-1]] > rowInd[order[j]]; j-- {
			order[j-1], order[j] = order[j], order[j-1]
		}
	}
}

// optimalAssignment returns target where target[j] = i means column j is
// matched with row i, for a square cost matrix c.
func optimalAssignment(c [][]float64) []int {
	n := len(c)

	// sourceCost[i] and targetCost[j] are the row/column potentials.
	// They maintain dual feasibility: sourceCost[i] + targetCost[j] <=
	// c[i][j]. Edges where equality holds are "tight" and form the
	// equality subgraph the augmenting path is grown within.
	sourceCost := make([]float64, n+1)
	targetCost := make([]float64, n+1)

	// targetSource[j] = i stores the row matched with column j. A value
	// of n means column j is unmatched.
	targetSource := make([]int, n+1)
	for i := range targetSource {
		targetSource[i] = n
	}

	minSlack := make([]float64, n+1)
	targetTrail := make([]int, n+1)
	visitedTarget := make([]bool, n+1)

	for i := 0; i < n; i++ {
		// Start an augmenting-path search from row i, using dummy column
		// n to simplify bookkeeping.
		targetSource[n] = i
		currentTarget := n

		for j := 0; j <= n; j++ {
			minSlack[j] = math.Inf(1)
			targetTrail[j] = n
			visitedTarget[j] = false
		}

		for targetSource[currentTarget] != n {
			visitedTarget[currentTarget] = true
			currentSource := targetSource[currentTarget]
			delta := math.Inf(1)
			nextTarget := 0

			for j := 0; j < n; j++ {
				if visitedTarget[j] {
					continue
				}
				slack := subCost(subCost(c[currentSource][j], sourceCost[currentSource]), targetCost[j])
				if slack < minSlack[j] {
					minSlack[j] = slack
					targetTrail[j] = currentTarget
				}
				if minSlack[j] < delta {
					delta = minSlack[j]
					nextTarget = j
				}
			}

			if math.IsInf(delta, 1) {
				panic("lsap: no feasible perfect matching exists")
			}

			for j := 0; j <= n; j++ {
				if visitedTarget[j] {
					i := targetSource[j]
					sourceCost[i] = addCost(sourceCost[i], delta)
					targetCost[j] = subCost(targetCost[j], delta)
				} else {
					minSlack[j] = subCost(minSlack[j], delta)
				}
			}

			currentTarget = nextTarget
		}

		// Flip the matching along the discovered augmenting path.
		for currentTarget != n {
			previousTarget := targetTrail[currentTarget]
			targetSource[currentTarget] = targetSource[previousTarget]
			currentTarget = previousTarget
		}
	}

	return targetSource[:n]
}

// addCost and subCost keep +Inf absorbing: Inf plus/minus any finite
// value stays Inf, so a forbidden edge never becomes tight by accident.
func addCost(a, b float64) float64 {
	if math.IsInf(a, 1) || math.IsInf(b, 1) {
		return math.Inf(1)
	}
	return a + b
}

func subCost(a, b float64) float64 {
	if math.IsInf(a, 1) {
		return math.Inf(1)
	}
	if math.IsInf(b, 1) {
		return math.Inf(-1)
	}
	return a - b
}
