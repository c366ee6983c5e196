// Package stream serializes the reconstructed layout of a financial
// document as an annotated, line-oriented token stream.
//
// The output is designed for a downstream language-model reader that must
// answer "what is the N-th column's value in row M" without seeing the
// page image. Every row carries a run-unique id and the x-origin of its
// first token; every token carries its column index and x-origin; every
// numeric value is wrapped in a <v_NNN:...> marker whose id is unique
// across the whole document run:
//
//	=== PAGE 1 [Detected 4 Columns] ===
//	[r_001]<x:010> <col:1, x:010> Revenue <col:3, x:200> <v_001:1234>
//	[r_002]<x:010> <col:1, x:010> <v_002:-567>
//
// A Streamer owns the configuration and the run counters for one document
// run. Pages are processed strictly in document order, each page fully
// before the next; the row and value counters depend on that sequencing.
// Runs are independent: one Streamer per run makes concurrent runs safe.
//
// Main Types:
//
// - Streamer: per-run pipeline, StreamDocument/StreamPage entry points
// - Config: tolerances, masking and heuristic policy selection
// - Counters: the per-run row/value id source
// - Tagger: numeric detection, identification and masking
package stream

import (
	"fmt"
	"strings"

	"github.com/radifuture-gmail/pdf-coordinate-flow/pkg/layout"
)

// Streamer converts token pages into the annotated stream format. It owns
// the run counters, so a single Streamer must not be shared between
// document runs, and pages must be streamed in document order.
type Streamer struct {
	cfg      Config
	counters *Counters
	tagger   *Tagger
}

// NewStreamer creates a Streamer for one document run with fresh counters.
func NewStreamer(cfg Config) *Streamer {
	cfg = cfg.sanitized()
	counters := NewCounters()
	return &Streamer{
		cfg:      cfg,
		counters: counters,
		tagger:   NewTagger(cfg, counters),
	}
}

// Counters exposes the run counters, mainly for inspection after a run.
func (s *Streamer) Counters() *Counters { return s.counters }

// StreamDocument serializes all pages of a document. Pages that delivered
// zero tokens are silently skipped (no header, no lines) while page
// numbering still advances, so page 3 is labeled PAGE 3 even when pages 1
// and 2 were blank. Non-empty pages are joined by a blank line.
func (s *Streamer) StreamDocument(pages [][]layout.Token) string {
	var parts []string
	for i, tokens := range pages {
		if len(tokens) == 0 {
			continue
		}
		body, columns := s.StreamPage(tokens)
		header := fmt.Sprintf("=== PAGE %d [Detected %d Columns] ===", i+1, columns)
		parts = append(parts, header+"\n"+body)
	}
	return strings.Join(parts, "\n\n")
}

// StreamPage serializes one page's tokens and reports the number of column
// baselines discovered on it. Rows are emitted top-to-bottom, tokens
// left-to-right; the row and value counters advance in exactly that order.
// An empty token list yields no output and leaves the counters untouched.
func (s *Streamer) StreamPage(tokens []layout.Token) (body string, columns int) {
	if len(tokens) == 0 {
		return "", 0
	}

	rows := layout.GroupRows(tokens, s.cfg.YTolerance)

	xs := make([]float64, 0, len(tokens))
	for _, row := range rows {
		for _, tok := range row {
			xs = append(xs, tok.X0)
		}
	}
	baselines := s.clusterBaselines(xs)

	var lines []string
	for _, row := range rows {
		if len(row) == 0 {
			continue
		}
		lines = append(lines, s.streamRow(row, baselines))
	}

	return strings.Join(lines, "\n"), len(baselines)
}

// streamRow emits one row: the row marker with the new row id and the
// truncated x-origin of the row's first token, followed by one fragment
// per token.
func (s *Streamer) streamRow(row layout.Row, baselines []float64) string {
	var b strings.Builder
	fmt.Fprintf(&b, "[r_%03d]<x:%03d> ", s.counters.NextRow(), int(row[0].X0))

	for _, tok := range row {
		text := s.tagger.Tag(Normalize(tok.Text))
		col := s.columnIndex(tok.X0, baselines)
		fmt.Fprintf(&b, "<col:%d, x:%03d> %s ", col, int(tok.X0), text)
	}
	return b.String()
}

func (s *Streamer) clusterBaselines(xs []float64) []float64 {
	if s.cfg.Cluster == layout.ClusterCentroid {
		return layout.ClusterCentroids(xs, s.cfg.XTolerance)
	}
	return layout.ClusterCoordinates(xs, s.cfg.XTolerance)
}

func (s *Streamer) columnIndex(x float64, baselines []float64) int {
	if s.cfg.Column == layout.ColumnNearest {
		return layout.NearestColumnIndex(x, baselines)
	}
	return layout.ColumnIndex(x, baselines, s.cfg.XTolerance)
}
