// Package segment extracts line traces from a filtered raster image in a
// single left-to-right pass over its columns, and samples evenly spaced points
// along the traces it finds.
//
// Only three columns of state are alive at any time: the previous, current and
// next column. Each foreground run of the current column either extends the one
// segment it touches in the previous column, starts a new segment, or resolves
// a fork or merge by letting one segment continue and cutting the others off.
// Short dead ends left behind by forks are pruned one column behind the scan.
package segment

import (
	"image"
	"image/color"
	"log/slog"
	"math"

	"segfill/pkg/filter"
	"segfill/pkg/geometry"
)

// Stats are diagnostics counters of one scan. They have no effect on output.
type Stats struct {
	Columns      int // columns scanned
	Made         int // segments created
	Extended     int // runs appended to an existing segment
	Folded       int // fold events resolving forks and merges
	Short        int // segments discarded as too short
	FoldedPoints int // collinear vertices removed from finished segments
	Oversize     int // runs too thick to belong to a line
}

// Factory turns filtered images into segments. A Factory is not safe for
// concurrent use; run one Factory per goroutine.
type Factory struct {
	classifier filter.Classifier
	background color.Color
	policy     FoldPolicy
	logger     *slog.Logger

	segments []*Segment
	stats    Stats
}

type Option func(*Factory)

// WithClassifier sets the foreground classifier. The default is filter.Binary.
func WithClassifier(c filter.Classifier) Option {
	return func(f *Factory) { f.classifier = c }
}

// WithBackground sets the background reference color. By default it is
// estimated from each image with filter.BackgroundColor.
func WithBackground(c color.Color) Option {
	return func(f *Factory) { f.background = c }
}

// WithFoldPolicy sets the fork and merge tie-break. The default is
// LargestOverlap.
func WithFoldPolicy(p FoldPolicy) Option {
	return func(f *Factory) { f.policy = p }
}

func WithLogger(l *slog.Logger) Option {
	return func(f *Factory) { f.logger = l }
}

func NewFactory(opts ...Option) *Factory {
	f := &Factory{}
	for _, opt := range opts {
		opt(f)
	}
	if f.classifier == nil {
		f.classifier = filter.Binary{}
	}
	if f.policy == nil {
		f.policy = LargestOverlap
	}
	return f
}

// MakeSegments scans img and returns every segment found, in creation order.
// The result replaces any previous result held by the factory. Empty images
// yield no segments. The only error is an invalid configuration.
func (f *Factory) MakeSegments(img image.Image, cfg Config) ([]*Segment, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	logger := f.logger
	if logger == nil {
		logger = Logger()
	}

	s := &scan{
		cfg:        cfg,
		classifier: f.classifier,
		policy:     f.policy,
		logger:     logger,
		maxRun:     cfg.maxRunLength(),
	}
	if img != nil {
		s.img = img
		s.origin = img.Bounds().Min
		s.width = img.Bounds().Dx()
		s.height = img.Bounds().Dy()
		s.background = f.background
		if s.background == nil {
			s.background = filter.BackgroundColor(img)
		}
	}

	f.segments = s.run()
	f.stats = s.stats

	logger.Debug("segments made",
		"width", s.width,
		"height", s.height,
		"segments", len(f.segments),
		"made", s.stats.Made,
		"extended", s.stats.Extended,
		"folded", s.stats.Folded,
		"short", s.stats.Short,
		"foldedPoints", s.stats.FoldedPoints,
		"oversize", s.stats.Oversize)

	return f.segments, nil
}

// Segments returns the result of the last MakeSegments call.
func (f *Factory) Segments() []*Segment {
	return f.segments
}

// Stats returns the diagnostics counters of the last MakeSegments call.
func (f *Factory) Stats() Stats {
	return f.stats
}

// FillPoints samples the segments of the last scan for previewing. The
// segments are not modified. It panics if cfg.PointSeparation is not positive.
func (f *Factory) FillPoints(cfg Config) []geometry.Point {
	return FillPoints(f.segments, cfg)
}

// MakeSegments scans img with the default classifier against the given
// background color.
func MakeSegments(img image.Image, background color.Color, cfg Config) ([]*Segment, error) {
	return NewFactory(WithBackground(background)).MakeSegments(img, cfg)
}

// scan is the state of one pass over an image.
type scan struct {
	cfg        Config
	classifier filter.Classifier
	policy     FoldPolicy
	logger     *slog.Logger
	maxRun     int

	img        image.Image
	background color.Color
	origin     image.Point
	width      int
	height     int

	win        *window
	arena      arena
	claims     []Claim
	spans      [][2]int
	candidates []Claim
	successor  map[ID]successor
	stats      Stats
}

// successor is the run a segment of the previous column continues into.
type successor struct {
	run     int
	overlap int
}

func (s *scan) run() []*Segment {
	if s.img == nil || s.width <= 0 || s.height <= 0 {
		return nil
	}

	s.win = newWindow(s.height)
	s.successor = map[ID]successor{}
	s.load(s.win.curr(), 0)
	s.load(s.win.next(), 1)

	for x := 0; x < s.width; x++ {
		s.matchRunsToSegments(x)
		s.removeUnneededLines(x)
		s.win.scroll()
		s.load(s.win.next(), x+2)
		s.stats.Columns++
	}
	s.finish()

	return s.arena.result()
}

// load classifies column x into c. Columns past the right edge stay empty.
func (s *scan) load(c *column, x int) {
	if x < s.width {
		s.classifier.Column(s.img, x, s.background, c.fg)
	}
	c.runs = FindRuns(c.fg, c.runs[:0])
}

// matchRunsToSegments connects every run of the current column to a segment.
// A first pass finds, for each segment of the previous column, the run it
// continues into: the run it overlaps most, then the run nearest its last
// point, then the upper run. Runs that a segment touches without choosing
// them become branches.
func (s *scan) matchRunsToSegments(x int) {
	curr, prev := s.win.curr(), s.win.prev()
	margin := s.cfg.AdjacencyMargin

	s.claims = s.claims[:0]
	s.spans = s.spans[:0]
	clear(s.successor)
	for i, r := range curr.runs {
		begin := len(s.claims)
		if r.Len() <= s.maxRun {
			s.claims = adjacentSegments(prev.owner, r, margin, s.claims)
		}
		s.spans = append(s.spans, [2]int{begin, len(s.claims)})
		for _, c := range s.claims[begin:] {
			s.preferRun(c, i)
		}
	}

	for i, r := range curr.runs {
		span := s.spans[i]
		s.finishRun(x, i, r, s.claims[span[0]:span[1]])
	}
}

// preferRun records run i as the successor of the claiming segment if it
// beats the run chosen so far.
func (s *scan) preferRun(c Claim, i int) {
	best, ok := s.successor[c.ID]
	if !ok || c.Overlap > best.overlap {
		s.successor[c.ID] = successor{run: i, overlap: c.Overlap}
		return
	}
	if c.Overlap < best.overlap {
		return
	}
	runs := s.win.curr().runs
	last := s.arena.get(c.ID).End().Y - float64(s.origin.Y)
	if math.Abs(runs[i].Mid()-last) < math.Abs(runs[best.run].Mid()-last) {
		s.successor[c.ID] = successor{run: i, overlap: c.Overlap}
	}
}

// continues reports whether run i may extend seg in column x.
func (s *scan) continues(seg *Segment, x, i int) bool {
	return seg.available(x) && s.successor[seg.id].run == i
}

// finishRun assigns run r, the i'th run of column x, to a segment, in priority
// order: extend the single adjacent segment, start a new segment, or fold.
func (s *scan) finishRun(x, i int, r Run, claims []Claim) {
	if r.Len() > s.maxRun {
		s.stats.Oversize++
		return
	}

	prev, curr, next := s.win.prev(), s.win.curr(), s.win.next()
	margin := s.cfg.AdjacencyMargin

	var seg *Segment
	switch {
	case len(claims) == 1 &&
		adjacentRuns(prev.fg, r, margin) <= 1 &&
		adjacentRuns(next.fg, r, margin) <= 1 &&
		s.continues(s.arena.get(claims[0].ID), x, i):
		seg = s.arena.get(claims[0].ID)
		seg.appendColumn(x, s.point(x, r))
		s.stats.Extended++
	case len(claims) == 0:
		seg = s.start(x, r, false)
	default:
		seg = s.fold(x, i, r, claims)
	}

	for y := r.Start; y <= r.Stop; y++ {
		curr.owner[y] = seg.id
	}
}

// point is the midpoint of run r of column x in image coordinates.
func (s *scan) point(x int, r Run) geometry.Point {
	return geometry.Point{
		X: float64(s.origin.X + x),
		Y: float64(s.origin.Y) + r.Mid(),
	}
}

func (s *scan) start(x int, r Run, byproduct bool) *Segment {
	s.stats.Made++
	return s.arena.create(x, s.point(x, r), byproduct)
}

// fold resolves a run touching several runs or segments. One candidate,
// chosen by the fold policy, continues through the run; the other candidates
// are cut off at the previous column. Candidates are the adjacent segments
// that chose this run as their successor. If there are none, the run starts a
// new branch segment. Only a real choice between candidates, or a new branch,
// counts as a fold.
func (s *scan) fold(x, i int, r Run, claims []Claim) *Segment {
	candidates := s.candidates[:0]
	for _, c := range claims {
		seg := s.arena.get(c.ID)
		if !s.continues(seg, x, i) {
			continue
		}
		c.Length = seg.length
		candidates = append(candidates, c)
	}
	s.candidates = candidates
	if len(candidates) == 0 {
		s.stats.Folded++
		return s.start(x, r, true)
	}
	if len(candidates) > 1 {
		s.stats.Folded++
	}

	chosen := s.policy.Choose(candidates)
	if !containsID(candidates, chosen) {
		chosen = candidates[0].ID
	}
	for _, c := range candidates {
		if c.ID != chosen {
			loser := s.arena.get(c.ID)
			loser.cut = true
			loser.byproduct = true
		}
	}

	seg := s.arena.get(chosen)
	seg.appendColumn(x, s.point(x, r))
	s.stats.Extended++
	return seg
}

func containsID(claims []Claim, id ID) bool {
	for _, c := range claims {
		if c.ID == id {
			return true
		}
	}
	return false
}
