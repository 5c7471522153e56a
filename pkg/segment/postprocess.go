package segment

// removeUnneededLines finalizes the segments that ended in the column before x.
// Those segments own rows of the previous column but were not continued into
// column x, so nothing can extend them any more.
func (s *scan) removeUnneededLines(x int) {
	prev := s.win.prev()
	last := NoSegment
	for y := 0; y < len(prev.owner); y++ {
		id := prev.owner[y]
		if id == NoSegment || id == last {
			continue
		}
		last = id

		seg := s.arena.get(id)
		if seg == nil || seg.closed || seg.lastX >= x {
			continue
		}

		if s.finalize(seg) {
			continue
		}

		// The segment was discarded; release its rows.
		for ; y < len(prev.owner) && prev.owner[y] == id; y++ {
			prev.owner[y] = NoSegment
		}
		y--
	}
}

// finish finalizes every segment still open at the right edge of the image.
func (s *scan) finish() {
	for _, seg := range s.arena.segments {
		if seg != nil && !seg.closed {
			s.finalize(seg)
		}
	}
}

// finalize either discards seg as too short or closes it. It returns whether
// the segment was kept.
func (s *scan) finalize(seg *Segment) bool {
	tooShort := seg.length < s.cfg.MinTraceLength ||
		(seg.byproduct && seg.length < s.cfg.MinSegmentLength)
	if tooShort {
		s.logger.Debug("short segment discarded",
			"id", seg.id,
			"length", seg.length,
			"byproduct", seg.byproduct)
		s.arena.discard(seg.id)
		s.stats.Short++
		return false
	}

	s.stats.FoldedPoints += seg.close(s.cfg.SmoothTolerance)
	return true
}
