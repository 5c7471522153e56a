package segment

// Claim is a segment that owns rows next to a run in the previous column.
type Claim struct {
	ID      ID
	Overlap int     // rows of the run's neighborhood the segment owns
	Length  float64 // path length of the segment so far
}

// FoldPolicy picks which segment continues through a run when more than one
// could. Candidates are never empty and are ordered top to bottom. Every other
// candidate is cut off at the previous column.
type FoldPolicy interface {
	Choose(candidates []Claim) ID
}

// FoldPolicyFunc adapts a function to FoldPolicy.
type FoldPolicyFunc func(candidates []Claim) ID

func (f FoldPolicyFunc) Choose(candidates []Claim) ID {
	return f(candidates)
}

// LargestOverlap continues the segment that owns the most rows next to the run.
// Ties go to the lower ID, the segment that was started first. This is a
// heuristic: the widest contact is usually the trace the run belongs to.
var LargestOverlap FoldPolicy = FoldPolicyFunc(func(candidates []Claim) ID {
	best := candidates[0]
	for _, c := range candidates[1:] {
		if c.Overlap > best.Overlap || (c.Overlap == best.Overlap && c.ID < best.ID) {
			best = c
		}
	}
	return best.ID
})

// LongestSegment continues the segment with the longest path so far, so long
// traces absorb the short ones they merge with. Ties go to the lower ID.
var LongestSegment FoldPolicy = FoldPolicyFunc(func(candidates []Claim) ID {
	best := candidates[0]
	for _, c := range candidates[1:] {
		if c.Length > best.Length || (c.Length == best.Length && c.ID < best.ID) {
			best = c
		}
	}
	return best.ID
})
