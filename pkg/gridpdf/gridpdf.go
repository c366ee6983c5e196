// Package gridpdf renders the reconstructed page layout as a PDF overlay
// for tolerance tuning.
//
// Picking the right x/y tolerances for a new document family is an
// eyeball job: too small and every token becomes its own column, too
// large and adjacent columns merge. Render runs the same row grouping and
// baseline clustering the streaming engine runs and draws the result —
// one vertical line per column baseline, one horizontal line per row,
// optionally a tick per token origin — on an optional-content layer, one
// PDF page per input page, so the grid can be compared against the source
// document side by side.
package gridpdf

import (
	"bytes"
	"fmt"

	"codeberg.org/go-pdf/fpdf"

	"github.com/radifuture-gmail/pdf-coordinate-flow/pkg/layout"
)

// Render draws the discovered grid of every non-empty page. Pages without
// tokens are skipped, mirroring the streaming engine. The tolerances must
// match the ones used for streaming or the grid will not correspond to
// the emitted column indices.
func Render(pages [][]layout.Token, xTolerance, yTolerance float64, config Config) ([]byte, error) {
	if config.PageWidth <= 0 || config.PageHeight <= 0 {
		return nil, fmt.Errorf("page size must be positive, got %gx%g", config.PageWidth, config.PageHeight)
	}

	coordW, coordH := config.CoordWidth, config.CoordHeight
	if coordW <= 0 {
		coordW = config.PageWidth
	}
	if coordH <= 0 {
		coordH = config.PageHeight
	}

	// Rescale token coordinates to the output page.
	transform := func(x, y float64) (float64, float64) {
		return x / coordW * config.PageWidth, y / coordH * config.PageHeight
	}

	pdf := fpdf.New("P", "pt", "A4", "")
	pdf.SetFont("Helvetica", "", 7)

	for i, tokens := range pages {
		if len(tokens) == 0 {
			continue
		}
		drawPageGrid(pdf, tokens, i+1, xTolerance, yTolerance, transform, config)
	}

	if pdf.PageCount() == 0 {
		return nil, fmt.Errorf("no non-empty pages to render")
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to generate grid PDF: %w", err)
	}
	return buf.Bytes(), nil
}

// drawPageGrid adds one page and draws its baselines, rows and token
// origins onto a toggleable layer.
func drawPageGrid(
	pdf *fpdf.Fpdf,
	tokens []layout.Token,
	pageNum int,
	xTolerance, yTolerance float64,
	transform func(x, y float64) (float64, float64),
	config Config,
) {
	pdf.AddPageFormat("P", fpdf.SizeType{Wd: config.PageWidth, Ht: config.PageHeight})

	layer := pdf.AddLayer(fmt.Sprintf("%s (Page %d)", config.LayerName, pageNum), true)
	pdf.BeginLayer(layer)

	rows := layout.GroupRows(tokens, yTolerance)
	xs := make([]float64, 0, len(tokens))
	for _, tok := range tokens {
		xs = append(xs, tok.X0)
	}
	baselines := layout.ClusterCoordinates(xs, xTolerance)

	// Column baselines: blue verticals, labeled with their 1-based index.
	pdf.SetDrawColor(0, 90, 200)
	pdf.SetTextColor(0, 90, 200)
	for i, b := range baselines {
		x, _ := transform(b, 0)
		pdf.Line(x, 0, x, config.PageHeight)
		pdf.Text(x+2, 9, fmt.Sprintf("c%d", i+1))
	}

	// Rows: gray horizontals at each row's reference top.
	pdf.SetDrawColor(150, 150, 150)
	for _, row := range rows {
		_, y := transform(0, row[0].Top)
		pdf.Line(0, y, config.PageWidth, y)
	}

	if config.ShowTokens {
		pdf.SetDrawColor(200, 60, 60)
		for _, tok := range tokens {
			x, y := transform(tok.X0, tok.Top)
			pdf.Circle(x, y, 1.5, "D")
		}
	}

	pdf.EndLayer()
}
