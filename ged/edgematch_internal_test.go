package ged

import "testing"

func TestValidEdgeMatchSelfLoopOnlyMatchesSelfLoop(t *testing.T) {
	u, v := NodeID(1), NodeID(2)
	selfG := Edge{U: u, V: u}
	selfH := Edge{U: v, V: v}
	nonSelfH := Edge{U: v, V: 9}

	if !validEdgeMatch(selfG, selfH, u, v, nil, false) {
		t.Fatalf("self-loop at u should match self-loop at v")
	}
	if validEdgeMatch(selfG, nonSelfH, u, v, nil, false) {
		t.Fatalf("self-loop at u must not match a non-self-loop edge")
	}
	if validEdgeMatch(nonSelfH, selfH, v, u, nil, false) {
		t.Fatalf("a non-self-loop edge must not match a self-loop")
	}
}

func TestValidEdgeMatchUndirectedRequiresMatchedEndpoint(t *testing.T) {
	u, v := NodeID(1), NodeID(2)
	matched := []VertexPair{{U: 0, V: 0}}
	g := Edge{U: 0, V: u}
	h := Edge{U: 0, V: v}
	if !validEdgeMatch(g, h, u, v, matched, false) {
		t.Fatalf("edges from an already-matched endpoint should be a valid pairing")
	}

	unrelatedH := Edge{U: 5, V: v}
	if validEdgeMatch(g, unrelatedH, u, v, matched, false) {
		t.Fatalf("edges from an unmatched endpoint must not be a valid pairing")
	}
}

func TestValidEdgeMatchDirectedRespectsOrientation(t *testing.T) {
	u, v := NodeID(1), NodeID(2)
	matched := []VertexPair{{U: 0, V: 0}}
	g := Edge{U: 0, V: u}
	h := Edge{U: v, V: 0}
	if validEdgeMatch(g, h, u, v, matched, true) {
		t.Fatalf("directed edge match must respect orientation")
	}
}

// Both g and h run from u/v out to the matched vertex rather than from the
// matched vertex into u/v; only the "outgoing" disjunct of the directed
// branch recognises this pairing as valid.
func TestValidEdgeMatchDirectedAcceptsOutgoingOrientation(t *testing.T) {
	u, v := NodeID(1), NodeID(2)
	matched := []VertexPair{{U: 0, V: 0}}
	g := Edge{U: u, V: 0}
	h := Edge{U: v, V: 0}
	if !validEdgeMatch(g, h, u, v, matched, true) {
		t.Fatalf("directed edge match must accept the outgoing orientation, not just incoming")
	}
}

func TestTouchesMatchedGIncludesSelfLoop(t *testing.T) {
	u := NodeID(3)
	g := Edge{U: u, V: u}
	if !touchesMatchedG(g, u, nil) {
		t.Fatalf("self-loop at u must be touched by u")
	}
}
