package stream

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/width"
)

// numberPattern matches one numeric span inside a token: an optional sign
// (minus, or a triangle glyph that escaped normalization), digits in ASCII
// or fullwidth with interleaved thousands separators, an optional decimal
// part, and an optional trailing percent sign.
var numberPattern = regexp.MustCompile(
	`[-△▲]?[0-9０-９](?:[,，]?[0-9０-９])*(?:[.．][0-9０-９]+)?%?`)

// wholeNumber matches a token whose entire content is a signed integer or
// decimal, the only shape the whole-token policy tags.
var wholeNumber = regexp.MustCompile(`^-?[0-9０-９]+(?:[.．][0-9０-９]+)?$`)

// maskRune replaces every digit of a masked payload.
const maskRune = '#'

// wholeTokenPlaceholder is the uniform payload of a masked whole-token
// marker. Whole-token masking discards magnitude entirely; embedded
// masking keeps the digit count as a structural signal.
const wholeTokenPlaceholder = "NUMERIC"

// NumberSpan is one numeric occurrence inside a token's text. Start and
// End are byte offsets of the raw match; Value is the canonical payload:
// thousands separators stripped, triangle signs mapped to minus, fullwidth
// characters folded to their halfwidth forms.
type NumberSpan struct {
	Start int
	End   int
	Value string
}

// ExtractNumbers scans a token's text for numeric spans under the
// embedded-match policy. It is a pure function: identifier assignment is
// the caller's job, applied in emission order.
func ExtractNumbers(text string) []NumberSpan {
	locs := numberPattern.FindAllStringIndex(text, -1)
	if locs == nil {
		return nil
	}
	spans := make([]NumberSpan, 0, len(locs))
	for _, loc := range locs {
		spans = append(spans, NumberSpan{
			Start: loc[0],
			End:   loc[1],
			Value: canonicalValue(text[loc[0]:loc[1]]),
		})
	}
	return spans
}

// canonicalValue normalizes a matched span into the marker payload.
func canonicalValue(match string) string {
	return width.Fold.String(signAndSeparatorReplacer.Replace(match))
}

// maskDigits replaces every digit character (ASCII or fullwidth) with the
// mask rune, preserving signs, separators and any other character.
func maskDigits(match string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsDigit(r) {
			return maskRune
		}
		return r
	}, match)
}

// Tagger replaces numeric content with <v_NNN:payload> markers, drawing
// run-unique ids from the shared counters. Ids are assigned whether or not
// masking is enabled; masking only changes the rendered payload.
type Tagger struct {
	cfg      Config
	counters *Counters
}

// NewTagger creates a Tagger bound to one run's counters.
func NewTagger(cfg Config, counters *Counters) *Tagger {
	return &Tagger{cfg: cfg, counters: counters}
}

// Tag returns the token's text with numeric content replaced by tagged
// markers, incrementing the value counter once per match. Input is
// expected to be normalized already.
func (t *Tagger) Tag(text string) string {
	if t.cfg.Match == MatchWholeToken {
		return t.tagWholeToken(text)
	}
	return t.tagEmbedded(text)
}

// tagEmbedded replaces each numeric span in place, leaving the text
// between spans verbatim.
func (t *Tagger) tagEmbedded(text string) string {
	spans := ExtractNumbers(text)
	if len(spans) == 0 {
		return text
	}

	var b strings.Builder
	prev := 0
	for _, span := range spans {
		b.WriteString(text[prev:span.Start])

		payload := span.Value
		if t.cfg.Mask {
			payload = maskDigits(text[span.Start:span.End])
		}
		fmt.Fprintf(&b, "<v_%03d:%s>", t.counters.NextValue(), payload)
		prev = span.End
	}
	b.WriteString(text[prev:])

	return b.String()
}

// tagWholeToken tags the token only when its entire content is a signed
// integer or decimal; the whole token becomes the marker.
func (t *Tagger) tagWholeToken(text string) string {
	if !wholeNumber.MatchString(text) {
		return text
	}

	payload := canonicalValue(text)
	if t.cfg.Mask {
		payload = wholeTokenPlaceholder
	}
	return fmt.Sprintf("<v_%03d:%s>", t.counters.NextValue(), payload)
}
