package tagseq

import (
	"math/rand"
	"time"

	"github.com/google/uuid"
)

// Minter creates fresh Chars. Tags come from newTag (globally unique across
// sessions); categories come from an unbiased coin flip on rng. Both sources
// are injectable so tests can pin exact output.
type Minter struct {
	newTag func() uuid.UUID
	rng    *rand.Rand
}

// NewMinter returns a Minter with random UUID tags and a time-seeded
// category source.
func NewMinter() *Minter {
	return NewSeededMinter(time.Now().UnixNano())
}

// NewSeededMinter returns a Minter whose category coin flips are driven by
// the given seed. Tags are still random UUIDs.
func NewSeededMinter(seed int64) *Minter {
	return &Minter{
		newTag: uuid.New,
		rng:    rand.New(rand.NewSource(seed)),
	}
}

// SetTagSource overrides tag generation, for tests that need predictable
// tags.
func (m *Minter) SetTagSource(newTag func() uuid.UUID) {
	m.newTag = newTag
}

// Mint creates a fresh Char for r with a new tag and a coin-flip category.
func (m *Minter) Mint(r rune) Char {
	return Char{
		R:   r,
		Tag: m.newTag(),
		Cat: Category(m.rng.Intn(CategoryCount)),
	}
}

// MintString mints one Char per rune of text, in order.
func (m *Minter) MintString(text string) []Char {
	runes := []rune(text)

	chars := make([]Char, len(runes))
	for i, r := range runes {
		chars[i] = m.Mint(r)
	}

	return chars
}
