package ged

import "github.com/evpinheiro/goged/listdist"

// LabelSequenceCost returns a NodeCostFunc (and, via its EdgeCostFunc-
// compatible signature, an EdgeCostFunc) that derives a substitution
// cost from an ordered label sequence stored under attrKey, using
// listdist's Levenshtein-style list edit distance. Attributes missing
// attrKey or holding a non-[]any value are treated as an empty sequence.
//
// This is an optional convenience for callers whose node or edge
// attributes carry structured label sequences (e.g. a chain of tags);
// simple scalar attributes are better served by a direct NodeMatchFunc.
func LabelSequenceCost(attrKey string) func(a, b Attrs) (float64, error) {
	f := func(ar, br any) listdist.Cost {
		return listdist.StandardCost(ar, br)
	}
	return func(a, b Attrs) (float64, error) {
		as := labelsOf(a, attrKey)
		bs := labelsOf(b, attrKey)
		return float64(listdist.Distance(as, bs, f, 0)), nil
	}
}

func labelsOf(a Attrs, key string) []any {
	v, ok := a.Get(key)
	if !ok {
		return nil
	}
	seq, ok := v.([]any)
	if !ok {
		return nil
	}
	return seq
}
