package docai

import (
	"sort"
	"strings"

	"cloud.google.com/go/documentai/apiv1/documentaipb"

	"github.com/radifuture-gmail/pdf-coordinate-flow/pkg/layout"
)

// TokenPages flattens a Document AI response into per-page token lists in
// document page order. Tokens whose text is empty after whitespace
// cleanup, or that carry no usable bounding polygon, are dropped. A page
// that contributes no tokens still occupies its slot as an empty list, so
// callers keep correct page numbering when they skip it.
func TokenPages(doc *documentaipb.Document) [][]layout.Token {
	if doc == nil {
		return nil
	}

	pages := make([]*documentaipb.Document_Page, len(doc.Pages))
	copy(pages, doc.Pages)
	if len(pages) > 1 && pages[0].GetPageNumber() > 0 {
		sort.SliceStable(pages, func(i, j int) bool {
			return pages[i].GetPageNumber() < pages[j].GetPageNumber()
		})
	}

	result := make([][]layout.Token, 0, len(pages))
	for _, page := range pages {
		var tokens []layout.Token
		for _, protoToken := range page.Tokens {
			text := tokenText(protoToken, doc.Text)
			if text == "" {
				continue
			}
			x0, top, ok := tokenOrigin(protoToken.GetLayout(), page.GetDimension())
			if !ok {
				continue
			}
			tokens = append(tokens, layout.Token{Text: text, X0: x0, Top: top})
		}
		result = append(result, tokens)
	}
	return result
}

// tokenText resolves a token's text through its text-anchor segments and
// strips the layout whitespace Document AI folds into tokens: newlines,
// carriage returns and the trailing space of a detected break.
func tokenText(token *documentaipb.Document_Page_Token, fullText string) string {
	text := textFromLayout(token.GetLayout(), fullText)
	text = strings.ReplaceAll(text, "\n", " ")
	text = strings.ReplaceAll(text, "\r", "")

	if br := token.GetDetectedBreak(); br != nil &&
		br.Type != documentaipb.Document_Page_Token_DetectedBreak_TYPE_UNSPECIFIED {
		text = strings.TrimRight(text, " \t")
	}
	return strings.TrimSpace(text)
}

// textFromLayout extracts text from a layout's text anchor segments.
func textFromLayout(tl *documentaipb.Document_Page_Layout, fullText string) string {
	if tl == nil || tl.TextAnchor == nil {
		return ""
	}
	runes := []rune(fullText)
	total := len(runes)

	var result strings.Builder
	for _, seg := range tl.TextAnchor.TextSegments {
		start := int(seg.StartIndex)
		end := int(seg.EndIndex)
		if start < 0 {
			start = 0
		}
		if end > total {
			end = total
		}
		if start > end {
			start = end
		}
		result.WriteString(string(runes[start:end]))
	}
	return result.String()
}

// tokenOrigin computes the top-left corner of a token's bounding polygon.
// OCR processors normally emit normalized vertices (0-1) that must be
// scaled by the page dimension; some emit absolute vertices instead, which
// are used as-is.
func tokenOrigin(tokenLayout *documentaipb.Document_Page_Layout, dim *documentaipb.Document_Page_Dimension) (x0, top float64, ok bool) {
	poly := tokenLayout.GetBoundingPoly()
	if poly == nil {
		return 0, 0, false
	}

	if nv := poly.GetNormalizedVertices(); len(nv) > 0 && dim != nil {
		x0, top = float64(nv[0].GetX()), float64(nv[0].GetY())
		for _, v := range nv[1:] {
			if float64(v.GetX()) < x0 {
				x0 = float64(v.GetX())
			}
			if float64(v.GetY()) < top {
				top = float64(v.GetY())
			}
		}
		return x0 * float64(dim.GetWidth()), top * float64(dim.GetHeight()), true
	}

	if av := poly.GetVertices(); len(av) > 0 {
		x0, top = float64(av[0].GetX()), float64(av[0].GetY())
		for _, v := range av[1:] {
			if float64(v.GetX()) < x0 {
				x0 = float64(v.GetX())
			}
			if float64(v.GetY()) < top {
				top = float64(v.GetY())
			}
		}
		return x0, top, true
	}

	return 0, 0, false
}
