package inktag

import "slices"

// Token is one render annotation: a single character at (Line, Col) drawn
// with the legend entry at Category. Line and Col are zero-based rune
// coordinates.
type Token struct {
	Line     int
	Col      int
	Length   int
	Category int
}

// Tokens walks the live document's lines in order and emits a token for
// every position whose ledger entry carries a recognized category. Tokens
// are produced in strictly increasing (line, col) order. Positions past the
// end of the ledger produce no token; the ledger can briefly trail the live
// document between change notifications.
func (s *Session) Tokens(key string, lines []string) []Token {
	seq := s.sequence(key)

	tokens := []Token{}
	offset := 0

	for li, line := range lines {
		col := 0

		for range line {
			c, found := seq.At(offset)
			if found && int(c.Cat) < len(s.cfg.Categories) {
				tokens = append(tokens, Token{
					Line:     li,
					Col:      col,
					Length:   1,
					Category: int(c.Cat),
				})
			}

			offset++
			col++
		}

		// Line separator occupies one position in the ledger.
		offset++
	}

	return tokens
}

// Legend returns the category names, indexed by Token.Category.
func (s *Session) Legend() []string {
	return slices.Clone(s.cfg.Categories)
}
