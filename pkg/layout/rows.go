package layout

import "sort"

// GroupRows partitions a page's tokens into rows by vertical proximity.
//
// Tokens are stable-sorted by (Top, X0) and accumulated into the current
// row while their Top stays within yTolerance of the row's first member.
// The reference position resets to the first token of each new row, not to
// a running average, so a row can accumulate vertical drift up to
// (memberCount-1)*yTolerance before a token is rejected. Each row is
// sorted left-to-right by X0 before it is emitted.
//
// A page with zero tokens yields nil; callers are expected to skip empty
// pages before grouping. A negative tolerance behaves like zero (exact
// vertical match only).
func GroupRows(tokens []Token, yTolerance float64) []Row {
	if len(tokens) == 0 {
		return nil
	}
	if yTolerance < 0 {
		yTolerance = 0
	}

	sorted := make([]Token, len(tokens))
	copy(sorted, tokens)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Top != sorted[j].Top {
			return sorted[i].Top < sorted[j].Top
		}
		return sorted[i].X0 < sorted[j].X0
	})

	var rows []Row
	current := Row{sorted[0]}
	refTop := sorted[0].Top

	for _, tok := range sorted[1:] {
		if abs(tok.Top-refTop) <= yTolerance {
			current = append(current, tok)
			continue
		}
		rows = append(rows, sortRow(current))
		current = Row{tok}
		refTop = tok.Top
	}
	rows = append(rows, sortRow(current))

	return rows
}

// sortRow orders a row's tokens left-to-right by X0.
func sortRow(row Row) Row {
	sort.SliceStable(row, func(i, j int) bool {
		return row[i].X0 < row[j].X0
	})
	return row
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
