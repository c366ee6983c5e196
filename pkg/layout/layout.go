// Package layout reconstructs the geometric structure of a document page
// from raw, unordered text tokens.
//
// The input is the flat list of tokens a document-parsing collaborator
// (Google Document AI, an hOCR file, ...) extracted from one page: each
// token carries its text and the origin of its bounding box. From that the
// package recovers two things:
//
// - Rows: tokens grouped into text lines by vertical proximity (GroupRows)
// - Column baselines: representative x-coordinates for the left edges of
//   the logical columns on the page (ClusterCoordinates)
//
// Together with ColumnIndex, which maps a token back onto a baseline, this
// is enough to address any cell of a financial table as "row M, column N"
// without ever seeing the page image.
//
// Both the row grouping and the baseline clustering are greedy single-pass
// algorithms that compare each candidate against the last accepted anchor
// rather than a running centroid. A row or cluster can therefore drift by
// up to (memberCount-1) times the tolerance before a member is rejected.
// That accumulation is load-bearing: downstream consumers were tuned
// against it, so it must not be "fixed" silently. A centroid-based variant
// exists as a separately named, opt-in policy (ClusterCentroids).
package layout

// Token is one recognized text unit on a page: its content and the origin
// of its bounding box. X0 is the left edge, Top the vertical offset from
// the top of the page. Tokens are produced by a parsing collaborator and
// are never mutated here.
type Token struct {
	Text string  // Recognized text content
	X0   float64 // Left edge of the bounding box
	Top  float64 // Vertical offset from the page top
}

// Row is a group of tokens judged to share a text line, ordered
// left-to-right by X0. Rows are produced in top-to-bottom discovery order
// and are never empty at creation.
type Row []Token
