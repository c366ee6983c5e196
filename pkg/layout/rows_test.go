package layout

import (
	"testing"
)

func TestGroupRowsPartitionsTokens(t *testing.T) {
	tokens := []Token{
		{Text: "a", X0: 10, Top: 100},
		{Text: "b", X0: 200, Top: 101},
		{Text: "c", X0: 50, Top: 120},
		{Text: "d", X0: 10, Top: 121},
		{Text: "e", X0: 300, Top: 140},
	}

	rows := GroupRows(tokens, 3)

	if len(rows) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(rows))
	}

	// Every input token comes back exactly once.
	total := 0
	seen := make(map[string]bool)
	for _, row := range rows {
		for _, tok := range row {
			total++
			seen[tok.Text] = true
		}
	}
	if total != len(tokens) || len(seen) != len(tokens) {
		t.Errorf("rows do not partition the input: %d tokens, %d distinct", total, len(seen))
	}

	// Tokens within each row are ordered left-to-right.
	for i, row := range rows {
		for j := 1; j < len(row); j++ {
			if row[j].X0 < row[j-1].X0 {
				t.Errorf("row %d not sorted by X0: %v", i, row)
			}
		}
	}

	// Row 2 collected d before c in reading order but must sort by X0.
	if rows[1][0].Text != "d" || rows[1][1].Text != "c" {
		t.Errorf("row 2 order = %q,%q, want d,c", rows[1][0].Text, rows[1][1].Text)
	}
}

func TestGroupRowsReferenceIsRowFirstMember(t *testing.T) {
	// Each token is within tolerance of its predecessor but the third is
	// out of tolerance of the row's first member, so it must start a new
	// row. The tolerance anchors on the first member only.
	tokens := []Token{
		{Text: "a", X0: 0, Top: 100},
		{Text: "b", X0: 10, Top: 103},
		{Text: "c", X0: 20, Top: 106},
	}

	rows := GroupRows(tokens, 3)

	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows))
	}
	if len(rows[0]) != 2 || rows[0][0].Text != "a" || rows[0][1].Text != "b" {
		t.Errorf("row 1 = %v, want [a b]", rows[0])
	}
	if len(rows[1]) != 1 || rows[1][0].Text != "c" {
		t.Errorf("row 2 = %v, want [c]", rows[1])
	}
}

func TestGroupRowsZeroTolerance(t *testing.T) {
	tokens := []Token{
		{Text: "a", X0: 0, Top: 100},
		{Text: "b", X0: 10, Top: 100},
		{Text: "c", X0: 0, Top: 100.5},
	}

	rows := GroupRows(tokens, 0)

	if len(rows) != 2 {
		t.Fatalf("zero tolerance should split on any Top difference, got %d rows", len(rows))
	}
	if len(rows[0]) != 2 {
		t.Errorf("tokens with identical Top should share a row, got %v", rows[0])
	}
}

func TestGroupRowsNegativeToleranceBehavesLikeZero(t *testing.T) {
	tokens := []Token{
		{Text: "a", X0: 0, Top: 100},
		{Text: "b", X0: 10, Top: 100},
	}
	rows := GroupRows(tokens, -5)
	if len(rows) != 1 {
		t.Fatalf("expected 1 row, got %d", len(rows))
	}
}

func TestGroupRowsEmptyInput(t *testing.T) {
	if rows := GroupRows(nil, 3); rows != nil {
		t.Errorf("expected nil for empty input, got %v", rows)
	}
}

func TestGroupRowsSingleToken(t *testing.T) {
	rows := GroupRows([]Token{{Text: "only", X0: 42, Top: 7}}, 3)
	if len(rows) != 1 || len(rows[0]) != 1 || rows[0][0].Text != "only" {
		t.Fatalf("expected one single-token row, got %v", rows)
	}
}

func TestGroupRowsDoesNotMutateInput(t *testing.T) {
	tokens := []Token{
		{Text: "b", X0: 10, Top: 200},
		{Text: "a", X0: 10, Top: 100},
	}
	GroupRows(tokens, 3)
	if tokens[0].Text != "b" {
		t.Errorf("input slice was reordered")
	}
}
