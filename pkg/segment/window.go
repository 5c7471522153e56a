package segment

// column is the working state of one image column: which rows are foreground,
// the runs they form, and which segment owns each row.
type column struct {
	fg    []bool
	owner []ID
	runs  []Run
}

func newColumn(height int) *column {
	c := &column{
		fg:    make([]bool, height),
		owner: make([]ID, height),
	}
	c.clear()
	return c
}

func (c *column) clear() {
	for y := range c.fg {
		c.fg[y] = false
		c.owner[y] = NoSegment
	}
	c.runs = c.runs[:0]
}

// window is the previous, current and next column of the scan. The three
// buffers rotate on scroll; nothing is copied and nothing grows with the image
// width.
type window struct {
	cols [3]*column
}

func newWindow(height int) *window {
	return &window{cols: [3]*column{newColumn(height), newColumn(height), newColumn(height)}}
}

func (w *window) prev() *column { return w.cols[0] }
func (w *window) curr() *column { return w.cols[1] }
func (w *window) next() *column { return w.cols[2] }

// scroll moves current to previous and next to current. The new next column
// is cleared and must be loaded by the caller.
func (w *window) scroll() {
	w.cols[0], w.cols[1], w.cols[2] = w.cols[1], w.cols[2], w.cols[0]
	w.cols[2].clear()
}
