package stream

import (
	"regexp"
	"strings"
)

// signAndSeparatorReplacer handles the first two normalization rules in
// one pass: the triangle glyphs this document family uses for "negative"
// become a minus sign, and thousands-separator commas (ASCII and
// fullwidth) are stripped.
var signAndSeparatorReplacer = strings.NewReplacer(
	"△", "-",
	"▲", "-",
	",", "",
	"，", "",
)

// parenNumeral matches an unsigned, possibly decimal numeral in ASCII or
// fullwidth digits — the only interiors for which parentheses denote a
// negative value.
var parenNumeral = regexp.MustCompile(`^[0-9０-９]+(?:[.．][0-9０-９]+)?$`)

// Normalize canonicalizes a token's raw text before numeric detection:
//
//  1. △ and ▲ become a minus sign.
//  2. Thousands-separator commas (ASCII and fullwidth) are stripped.
//  3. A fully parenthesized numeral becomes a numeral with a leading
//     minus sign, since parenthesized numerals denote negatives in this
//     document family.
//
// No other characters are altered: unit suffixes, currency symbols and
// percent signs stay verbatim for the downstream reader. Normalize is
// idempotent — already-normalized text passes through unchanged.
func Normalize(text string) string {
	t := signAndSeparatorReplacer.Replace(text)

	if len(t) >= 2 && strings.HasPrefix(t, "(") && strings.HasSuffix(t, ")") {
		inner := t[1 : len(t)-1]
		if parenNumeral.MatchString(inner) {
			t = "-" + inner
		}
	}
	return t
}
