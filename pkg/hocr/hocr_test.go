package hocr

import (
	"strings"
	"testing"
)

const sampleHOCR = `<!DOCTYPE html>
<html>
<head>
 <meta http-equiv="Content-Type" content="text/html;charset=utf-8" />
 <meta name='ocr-system' content='tesseract 5.3.0' />
</head>
<body>
 <div class='ocr_page' id='page_1' title='image "p1.png"; bbox 0 0 612 792'>
  <div class='ocr_carea' id='block_1_1'>
   <p class='ocr_par' id='par_1_1'>
    <span class='ocr_line' id='line_1_1' title='bbox 10 100 300 115'>
     <span class='ocrx_word' id='word_1_1' title='bbox 10 100 80 115; x_wconf 96'>Revenue</span>
     <span class='ocrx_word' id='word_1_2' title='bbox 200 100 260 115; x_wconf 93'>1,234</span>
    </span>
    <span class='ocr_line' id='line_1_2' title='bbox 10 120 80 135'>
     <span class='ocrx_word' id='word_1_3' title='bbox 10 120 60 135; x_wconf 91'>(567)</span>
    </span>
   </p>
  </div>
 </div>
 <div class='ocr_page' id='page_2' title='bbox 0 0 612 792'>
 </div>
</body>
</html>`

func TestTokenPages(t *testing.T) {
	pages, err := TokenPages([]byte(sampleHOCR))
	if err != nil {
		t.Fatalf("TokenPages: %v", err)
	}
	if len(pages) != 2 {
		t.Fatalf("expected 2 pages, got %d", len(pages))
	}

	if len(pages[0]) != 3 {
		t.Fatalf("page 1: expected 3 tokens, got %v", pages[0])
	}
	want := []struct {
		text    string
		x0, top float64
	}{
		{"Revenue", 10, 100},
		{"1,234", 200, 100},
		{"(567)", 10, 120},
	}
	for i, w := range want {
		tok := pages[0][i]
		if tok.Text != w.text || tok.X0 != w.x0 || tok.Top != w.top {
			t.Errorf("token %d = %+v, want %+v", i, tok, w)
		}
	}

	// The word-less second page is kept as an empty slot so page
	// numbering survives.
	if len(pages[1]) != 0 {
		t.Errorf("page 2 should be empty, got %v", pages[1])
	}
}

func TestTokenPagesNoPages(t *testing.T) {
	_, err := TokenPages([]byte("<html><body><p>not hocr</p></body></html>"))
	if err == nil {
		t.Fatal("expected error for data without ocr_page elements")
	}
	if !strings.Contains(err.Error(), "no ocr_page") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestTokenPagesWordWithoutBBoxDropped(t *testing.T) {
	data := `<html><body>
<div class='ocr_page' id='page_1' title='bbox 0 0 100 100'>
 <span class='ocrx_word' id='w1' title='x_wconf 50'>orphan</span>
 <span class='ocrx_word' id='w2' title='bbox 5 6 20 16'>kept</span>
</div>
</body></html>`

	pages, err := TokenPages([]byte(data))
	if err != nil {
		t.Fatalf("TokenPages: %v", err)
	}
	if len(pages[0]) != 1 || pages[0][0].Text != "kept" {
		t.Errorf("expected only the word with a bbox, got %v", pages[0])
	}
	if pages[0][0].X0 != 5 || pages[0][0].Top != 6 {
		t.Errorf("bbox origin = (%g,%g), want (5,6)", pages[0][0].X0, pages[0][0].Top)
	}
}

func TestTokenPagesNestedMarkupInWord(t *testing.T) {
	data := `<html><body>
<div class='ocr_page' id='page_1' title='bbox 0 0 100 100'>
 <span class='ocrx_word' id='w1' title='bbox 5 6 20 16'><strong>12,345</strong></span>
</div>
</body></html>`

	pages, err := TokenPages([]byte(data))
	if err != nil {
		t.Fatalf("TokenPages: %v", err)
	}
	if len(pages[0]) != 1 || pages[0][0].Text != "12,345" {
		t.Errorf("expected nested text to be collected, got %v", pages[0])
	}
}

func TestTokenPagesLatin1Charset(t *testing.T) {
	// 0xE9 is é in ISO-8859-1 and invalid UTF-8 on its own.
	data := []byte(`<html><head><meta charset="iso-8859-1"></head><body>
<div class='ocr_page' id='page_1' title='bbox 0 0 100 100'>
 <span class='ocrx_word' id='w1' title='bbox 5 6 20 16'>caf` + "\xe9" + `</span>
</div>
</body></html>`)

	pages, err := TokenPages(data)
	if err != nil {
		t.Fatalf("TokenPages: %v", err)
	}
	if len(pages[0]) != 1 || pages[0][0].Text != "café" {
		t.Errorf("expected latin-1 decoding, got %v", pages[0])
	}
}
