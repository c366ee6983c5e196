package stream

import "testing"

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain text untouched", "Revenue", "Revenue"},
		{"triangle becomes minus", "△123", "-123"},
		{"filled triangle becomes minus", "▲45.6", "-45.6"},
		{"ascii thousands separators stripped", "1,234,567", "1234567"},
		{"fullwidth separators stripped", "1，234", "1234"},
		{"parenthesized numeral negated", "(567)", "-567"},
		{"parenthesized decimal negated", "(12.5)", "-12.5"},
		{"parenthesized fullwidth numeral negated", "(１２３)", "-１２３"},
		{"parenthesized with separators negated", "(1,234)", "-1234"},
		{"parenthesized non-numeral kept", "(note)", "(note)"},
		{"parenthesized mixed kept", "(12a)", "(12a)"},
		{"unit suffix preserved", "1,234百万円", "1234百万円"},
		{"percent preserved", "45.6%", "45.6%"},
		{"currency preserved", "$9,999", "$9999"},
		{"empty string", "", ""},
		{"lone parens", "()", "()"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Normalize(tt.in); got != tt.want {
				t.Errorf("Normalize(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	inputs := []string{
		"Revenue", "△123", "(567)", "1,234", "(1,234.5)", "▲9%", "(note)", "-567",
	}
	for _, in := range inputs {
		once := Normalize(in)
		twice := Normalize(once)
		if once != twice {
			t.Errorf("Normalize not idempotent for %q: %q then %q", in, once, twice)
		}
	}
}
