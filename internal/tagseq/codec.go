package tagseq

import (
	"encoding/binary"
	"fmt"

	"github.com/google/uuid"

	"github.com/inktag/inktag/pkg/errors"
)

// Binary sequence encoding: a 5-byte header (magic + version), a uvarint
// character count, then per character a uvarint code point, the 16 tag bytes,
// and one category byte. The encoding is deterministic so that
// encode/decode/encode reproduces identical bytes.
const (
	codecMagic   = "itsq"
	codecVersion = 1
)

// Encode serializes the sequence.
func Encode(s *Sequence) []byte {
	buf := make([]byte, 0, len(codecMagic)+1+binary.MaxVarintLen64+len(s.chars)*(binary.MaxVarintLen32+16+1))

	buf = append(buf, codecMagic...)
	buf = append(buf, codecVersion)
	buf = binary.AppendUvarint(buf, uint64(len(s.chars)))

	for _, c := range s.chars {
		buf = binary.AppendUvarint(buf, uint64(uint32(c.R)))
		buf = append(buf, c.Tag[:]...)
		buf = append(buf, byte(c.Cat))
	}

	return buf
}

// Decode deserializes a sequence previously produced by Encode. Any
// malformation (bad magic, unknown version, truncation, trailing bytes,
// out-of-range category) returns an error wrapping errors.ErrDecode.
func Decode(data []byte) (*Sequence, error) {
	if len(data) < len(codecMagic)+1 || string(data[:len(codecMagic)]) != codecMagic {
		return nil, fmt.Errorf("bad sequence header (%w)", errors.ErrDecode)
	}

	if data[len(codecMagic)] != codecVersion {
		return nil, fmt.Errorf("unknown sequence version %d (%w)", data[len(codecMagic)], errors.ErrDecode)
	}

	rest := data[len(codecMagic)+1:]

	count, n := binary.Uvarint(rest)
	if n <= 0 {
		return nil, fmt.Errorf("bad character count (%w)", errors.ErrDecode)
	}
	rest = rest[n:]

	if count > uint64(len(rest)) {
		// Each character needs at least 18 bytes; reject counts that cannot
		// fit before allocating.
		return nil, fmt.Errorf("truncated sequence (%w)", errors.ErrDecode)
	}

	chars := make([]Char, 0, count)

	for i := uint64(0); i < count; i++ {
		r, n := binary.Uvarint(rest)
		if n <= 0 || r > 0x10FFFF {
			return nil, fmt.Errorf("bad code point at index %d (%w)", i, errors.ErrDecode)
		}
		rest = rest[n:]

		if len(rest) < 16+1 {
			return nil, fmt.Errorf("truncated character at index %d (%w)", i, errors.ErrDecode)
		}

		var tag uuid.UUID
		copy(tag[:], rest[:16])
		rest = rest[16:]

		cat := Category(rest[0])
		rest = rest[1:]

		if cat >= CategoryCount {
			return nil, fmt.Errorf("bad category %d at index %d (%w)", cat, i, errors.ErrDecode)
		}

		chars = append(chars, Char{R: rune(r), Tag: tag, Cat: cat})
	}

	if len(rest) != 0 {
		return nil, fmt.Errorf("%d trailing bytes (%w)", len(rest), errors.ErrDecode)
	}

	return FromChars(chars), nil
}
