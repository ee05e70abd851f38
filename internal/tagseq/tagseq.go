// Package tagseq implements the ordered sequence of tagged characters that
// backs one document's ledger, plus minting of new tags and the binary codec
// used for persistence.
package tagseq

import (
	"strings"

	"github.com/google/uuid"
)

// Category is the per-character highlight class. There are exactly
// CategoryCount values, 0..CategoryCount-1.
type Category uint8

// CategoryCount is the size of the closed category set.
const CategoryCount = 2

// Char is one character of document text plus its immutable identity.
// Tag and Cat are assigned once at mint time and never change; only the
// character's position in its Sequence changes as text around it is edited.
type Char struct {
	R   rune
	Tag uuid.UUID
	Cat Category
}

// Sequence is the ordered tagged-character ledger for one document. Its
// concatenated runes equal the document text after each reconciliation.
type Sequence struct {
	chars []Char
}

// New returns an empty Sequence.
func New() *Sequence {
	return &Sequence{}
}

// FromChars returns a Sequence wrapping chars. The slice is owned by the
// Sequence afterward.
func FromChars(chars []Char) *Sequence {
	return &Sequence{chars: chars}
}

// Len returns the number of characters in the sequence.
func (s *Sequence) Len() int {
	return len(s.chars)
}

// At returns the character at pos, or false if pos is out of range. Callers
// may probe positions past the end (a highlight walk can briefly run ahead of
// the ledger); that is not an error.
func (s *Sequence) At(pos int) (Char, bool) {
	if pos < 0 || pos >= len(s.chars) {
		return Char{}, false
	}

	return s.chars[pos], true
}

// Chars returns a copy of the sequence's characters in order.
func (s *Sequence) Chars() []Char {
	out := make([]Char, len(s.chars))
	copy(out, s.chars)
	return out
}

// Delete removes n characters starting at pos. Out-of-range requests are
// clamped to the sequence bounds rather than rejected.
func (s *Sequence) Delete(pos, n int) {
	if pos < 0 {
		n += pos
		pos = 0
	}

	if pos >= len(s.chars) || n <= 0 {
		return
	}

	if pos+n > len(s.chars) {
		n = len(s.chars) - pos
	}

	s.chars = append(s.chars[:pos], s.chars[pos+n:]...)
}

// Insert splices chars into the sequence at pos, preserving the relative
// order of existing characters on both sides. pos is clamped to [0, Len()].
func (s *Sequence) Insert(pos int, chars []Char) {
	if len(chars) == 0 {
		return
	}

	if pos < 0 {
		pos = 0
	}

	if pos > len(s.chars) {
		pos = len(s.chars)
	}

	s.chars = append(s.chars[:pos], append(append([]Char{}, chars...), s.chars[pos:]...)...)
}

// Replace swaps the sequence contents wholesale.
func (s *Sequence) Replace(chars []Char) {
	s.chars = chars
}

// Clear empties the sequence.
func (s *Sequence) Clear() {
	s.chars = nil
}

// Text returns the concatenation of the sequence's characters.
func (s *Sequence) Text() string {
	sb := strings.Builder{}
	for _, c := range s.chars {
		sb.WriteRune(c.R)
	}

	return sb.String()
}

// Equal reports whether two sequences hold identical chars, tags, and
// categories in the same order.
func (s *Sequence) Equal(other *Sequence) bool {
	if len(s.chars) != len(other.chars) {
		return false
	}

	for i, c := range s.chars {
		if c != other.chars[i] {
			return false
		}
	}

	return true
}
