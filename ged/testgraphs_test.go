package ged_test

import "github.com/evpinheiro/goged/ged"

// pathGraph returns an undirected path on n nodes: 0-1-2-...-(n-1).
func pathGraph(n int) *ged.SimpleGraph {
	g := ged.NewSimpleGraph(false)
	for i := 0; i < n; i++ {
		g.AddNode(ged.NodeID(i), nil)
	}
	for i := 0; i < n-1; i++ {
		g.AddEdge(ged.NodeID(i), ged.NodeID(i+1), nil)
	}
	return g
}

// cycleGraph returns an undirected cycle on n nodes.
func cycleGraph(n int) *ged.SimpleGraph {
	g := pathGraph(n)
	g.AddEdge(ged.NodeID(n-1), 0, nil)
	return g
}

// wheelGraph returns an undirected wheel on n total nodes: hub node 0
// connected to every node of a cycle formed by the remaining n-1 nodes
// (matching networkx's wheel_graph(n) node-count convention).
func wheelGraph(n int) *ged.SimpleGraph {
	g := ged.NewSimpleGraph(false)
	g.AddNode(0, nil)
	rim := n - 1
	for i := 1; i <= rim; i++ {
		g.AddNode(ged.NodeID(i), nil)
	}
	for i := 1; i < rim; i++ {
		g.AddEdge(ged.NodeID(i), ged.NodeID(i+1), nil)
	}
	if rim > 2 {
		g.AddEdge(ged.NodeID(rim), 1, nil)
	}
	for i := 1; i <= rim; i++ {
		g.AddEdge(0, ged.NodeID(i), nil)
	}
	return g
}

// directedCycleGraph returns a directed cycle 0->1->2->...->(n-1)->0.
func directedCycleGraph(n int) *ged.SimpleGraph {
	g := ged.NewSimpleGraph(true)
	for i := 0; i < n; i++ {
		g.AddNode(ged.NodeID(i), nil)
	}
	for i := 0; i < n; i++ {
		g.AddEdge(ged.NodeID(i), ged.NodeID((i+1)%n), nil)
	}
	return g
}

// completeGraph returns an undirected complete graph on n nodes.
func completeGraph(n int) *ged.SimpleGraph {
	g := ged.NewSimpleGraph(false)
	for i := 0; i < n; i++ {
		g.AddNode(ged.NodeID(i), nil)
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			g.AddEdge(ged.NodeID(i), ged.NodeID(j), nil)
		}
	}
	return g
}
