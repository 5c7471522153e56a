package segment

// neighborhood returns the rows of a neighboring column that touch r: the run's
// own rows plus margin rows above and below, truncated at the image edges.
func neighborhood(r Run, margin, height int) (lo, hi int) {
	lo = max(r.Start-margin, 0)
	hi = min(r.Stop+margin, height-1)
	return lo, hi
}

// adjacentRuns returns the number of distinct foreground runs of a neighboring
// column that touch r.
func adjacentRuns(column []bool, r Run, margin int) int {
	lo, hi := neighborhood(r, margin, len(column))
	count := 0
	for y := lo; y <= hi; y++ {
		if column[y] && (y == lo || !column[y-1]) {
			count++
		}
	}
	return count
}

// adjacentSegments appends to dst one Claim per distinct segment owning rows of
// a neighboring column that touch r, top to bottom, and returns the extended
// slice. Claims already in dst are not merged with the new ones.
func adjacentSegments(owner []ID, r Run, margin int, dst []Claim) []Claim {
	lo, hi := neighborhood(r, margin, len(owner))
	first := len(dst)
	for y := lo; y <= hi; y++ {
		id := owner[y]
		if id == NoSegment {
			continue
		}
		if n := len(dst); n > first && dst[n-1].ID == id {
			dst[n-1].Overlap++
			continue
		}
		found := false
		for i := first; i < len(dst); i++ {
			if dst[i].ID == id {
				dst[i].Overlap++
				found = true
				break
			}
		}
		if !found {
			dst = append(dst, Claim{ID: id, Overlap: 1})
		}
	}
	return dst
}
