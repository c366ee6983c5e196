// Package hocr delivers page tokens from hOCR files.
//
// hOCR is the HTML-based standard format for OCR results; many engines
// (Tesseract among them) emit it. This package is an input collaborator of
// the layout engine: it parses only what the engine consumes — the
// ocrx_word elements of each ocr_page, each reduced to its text and the
// top-left corner of its bbox — and ignores the rest of the hOCR
// hierarchy (areas, paragraphs, lines), since the engine re-derives
// structure from coordinates.
package hocr

import (
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/text/encoding/charmap"

	"github.com/radifuture-gmail/pdf-coordinate-flow/pkg/layout"
)

// TokenPages parses hOCR data and returns one token list per ocr_page, in
// document order. Words without a parseable bbox are dropped; a page
// without words is returned as an empty list so page numbering stays
// intact. Data without any ocr_page element is an error.
func TokenPages(data []byte) ([][]layout.Token, error) {
	decoded, err := decodeCharset(data)
	if err != nil {
		return nil, err
	}

	doc, err := html.Parse(strings.NewReader(string(decoded)))
	if err != nil {
		return nil, fmt.Errorf("failed to parse hOCR HTML: %w", err)
	}

	var pages [][]layout.Token
	var findPages func(*html.Node)
	findPages = func(n *html.Node) {
		if n.Type == html.ElementNode && hasClass(n, "ocr_page") {
			pages = append(pages, pageTokens(n))
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			findPages(c)
		}
	}
	findPages(doc)

	if len(pages) == 0 {
		return nil, fmt.Errorf("no ocr_page elements found in hOCR data")
	}
	return pages, nil
}

// pageTokens collects the ocrx_word descendants of one page node.
func pageTokens(page *html.Node) []layout.Token {
	var tokens []layout.Token
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && hasClass(n, "ocrx_word") {
			text := strings.Join(strings.Fields(nodeText(n)), " ")
			if x0, top, ok := bboxOrigin(attr(n, "title")); ok && text != "" {
				tokens = append(tokens, layout.Token{Text: text, X0: x0, Top: top})
			}
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	for c := page.FirstChild; c != nil; c = c.NextSibling {
		walk(c)
	}
	return tokens
}

// decodeCharset converts non-UTF-8 hOCR to UTF-8. Legacy engines emit
// Latin-1; everything else is assumed to be UTF-8 already.
func decodeCharset(data []byte) ([]byte, error) {
	content := string(data)
	idx := strings.Index(content, "charset=")
	if idx < 0 {
		return data, nil
	}

	snippet := content[idx+len("charset="):]
	fields := strings.FieldsFunc(snippet, func(r rune) bool {
		return r == '"' || r == ';' || r == '\'' || r == '>' || r == ' '
	})
	if len(fields) == 0 {
		return data, nil
	}

	switch strings.ToLower(fields[0]) {
	case "", "utf-8", "utf8":
		return data, nil
	default:
		decoded, err := charmap.ISO8859_1.NewDecoder().Bytes(data)
		if err != nil {
			return nil, fmt.Errorf("failed to decode %s hOCR data: %w", fields[0], err)
		}
		return decoded, nil
	}
}

// bboxOrigin extracts the top-left corner from an hOCR title attribute,
// e.g. "bbox 100 200 300 400; x_wconf 95" yields (100, 200).
func bboxOrigin(title string) (x0, top float64, ok bool) {
	for _, part := range strings.Split(title, ";") {
		fields := strings.Fields(strings.TrimSpace(part))
		if len(fields) >= 5 && fields[0] == "bbox" {
			x1, errX := strconv.ParseFloat(fields[1], 64)
			y1, errY := strconv.ParseFloat(fields[2], 64)
			if errX != nil || errY != nil {
				return 0, 0, false
			}
			return x1, y1, true
		}
	}
	return 0, 0, false
}

// hasClass reports whether a node's class attribute contains the given
// hOCR class name.
func hasClass(n *html.Node, class string) bool {
	for _, field := range strings.Fields(attr(n, "class")) {
		if field == class {
			return true
		}
	}
	return false
}

// attr returns the value of the named attribute, or "".
func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

// nodeText concatenates all text node descendants.
func nodeText(n *html.Node) string {
	var b strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return b.String()
}
