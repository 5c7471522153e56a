package segment

// Run is a maximal vertical interval of foreground pixels within one column.
// Start and Stop are inclusive row indices.
type Run struct {
	Start int
	Stop  int
}

func (r Run) Len() int {
	return r.Stop - r.Start + 1
}

// Mid returns the run's midpoint row, which becomes the segment point for the
// column.
func (r Run) Mid() float64 {
	return float64(r.Start+r.Stop) / 2
}

// FindRuns appends the runs of column to dst, top to bottom, and returns the
// extended slice.
func FindRuns(column []bool, dst []Run) []Run {
	runStart := -1
	for y, on := range column {
		if on {
			if runStart == -1 {
				// new run
				runStart = y
			}
		} else if runStart >= 0 {
			dst = append(dst, Run{Start: runStart, Stop: y - 1})
			runStart = -1
		}
	}
	// check for finished run at end of column
	if runStart >= 0 {
		dst = append(dst, Run{Start: runStart, Stop: len(column) - 1})
	}
	return dst
}
