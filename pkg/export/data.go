// Package export writes traced segments and their sample points as SVG, CSV
// and JSON documents.
package export

import (
	"encoding/csv"
	"encoding/json"
	"io"
	"strconv"

	"segfill/pkg/segment"
	"segfill/pkg/svgpath"
)

// Result is the JSON document of one scanned image.
type Result struct {
	Image    string          `json:"image,omitempty"`
	Width    int             `json:"width"`
	Height   int             `json:"height"`
	Segments []SegmentRecord `json:"segments"`
	Stats    segment.Stats   `json:"stats"`
}

type SegmentRecord struct {
	ID        segment.ID   `json:"id"`
	Length    float64      `json:"length"`
	Byproduct bool         `json:"byproduct,omitempty"`
	Vertices  [][2]float64 `json:"vertices"`
	Samples   [][2]float64 `json:"samples,omitempty"`
}

// NewResult describes segments and, when cfg.PointSeparation is positive,
// their sample points.
func NewResult(image string, width, height int, segments []*segment.Segment, stats segment.Stats, cfg segment.Config) Result {
	r := Result{
		Image:    image,
		Width:    width,
		Height:   height,
		Segments: make([]SegmentRecord, 0, len(segments)),
		Stats:    stats,
	}
	for _, seg := range segments {
		rec := SegmentRecord{
			ID:        seg.ID(),
			Length:    seg.Length(),
			Byproduct: seg.Byproduct(),
		}
		for _, p := range seg.Polyline() {
			rec.Vertices = append(rec.Vertices, [2]float64{p.X, p.Y})
		}
		if cfg.PointSeparation > 0 {
			for p := range seg.Samples(cfg.PointSeparation, cfg.FillCorners) {
				rec.Samples = append(rec.Samples, [2]float64{p.X, p.Y})
			}
		}
		r.Segments = append(r.Segments, rec)
	}
	return r
}

func WriteJSON(w io.Writer, r Result) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(r)
}

// WriteCSV writes one "segment,x,y" row per sample point of every segment.
func WriteCSV(w io.Writer, segments []*segment.Segment, cfg segment.Config) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"segment", "x", "y"}); err != nil {
		return err
	}
	for _, seg := range segments {
		id := strconv.Itoa(int(seg.ID()))
		for p := range seg.Samples(cfg.PointSeparation, cfg.FillCorners) {
			if err := cw.Write([]string{id, svgpath.FormatNumber(p.X), svgpath.FormatNumber(p.Y)}); err != nil {
				return err
			}
		}
	}
	cw.Flush()
	return cw.Error()
}
