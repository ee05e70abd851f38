// Package inktag maintains a per-character tag ledger for text documents.
// Every character carries an opaque identity tag and a highlight category,
// both assigned when the character first appears and preserved across
// arbitrary edits and process restarts.
package inktag

import (
	"fmt"
	"sync"

	"github.com/inktag/inktag/internal/record"
	"github.com/inktag/inktag/internal/tagseq"
	"github.com/inktag/inktag/pkg/errors"
	"github.com/inktag/inktag/pkg/log"
)

// Session carries per-document tag sequences and their shared persisted
// record. One Session serves all documents of a host process.
type Session struct {
	cfg    *Config
	store  *record.Store
	minter *tagseq.Minter

	mu   sync.Mutex
	seqs map[string]*tagseq.Sequence
}

// New creates a Session from cfg. A nil cfg uses [DefaultConfig].
func New(cfg *Config) (*Session, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}

	err := cfg.validate()
	if err != nil {
		return nil, err
	}

	minter := tagseq.NewMinter()
	if cfg.Seed != 0 {
		minter = tagseq.NewSeededMinter(cfg.Seed)
	}

	return &Session{
		cfg:    cfg,
		store:  record.NewStore(cfg.StorePath),
		minter: minter,
		seqs:   map[string]*tagseq.Sequence{},
	}, nil
}

// NewFromFile creates a Session from the config file at path.
func NewFromFile(path string) (*Session, error) {
	cfg, err := LoadConfig(path)
	if err != nil {
		return nil, err
	}

	return New(cfg)
}

// HandleChange is the change-notification entry point. It reconciles key's
// sequence against newText (seeded by edits) and persists the result.
//
// A fault during reconciliation leaves persisted state untouched for this
// event and is returned as an error wrapping [errors.ErrReconcile]; the
// ledger self-heals on the next change because reconciliation always
// re-diffs against the full current text.
func (s *Session) HandleChange(key, newText string, edits []Edit) (err error) {
	defer func() {
		if r := recover(); r != nil {
			log.Debugf("reconcile %s: %v", key, r)
			err = fmt.Errorf("%s: %v (%w)", key, r, errors.ErrReconcile)
		}
	}()

	seq := s.sequence(key)

	reconcile(seq, newText, edits, s.minter)

	err = s.store.Save(key, tagseq.Encode(seq))
	if err != nil {
		return err
	}

	return nil
}

// Chars returns key's current tagged characters in order.
func (s *Session) Chars(key string) []tagseq.Char {
	return s.sequence(key).Chars()
}

// Keys returns the document keys present in the persisted record.
func (s *Session) Keys() ([]string, error) {
	return s.store.Keys()
}

// Forget drops key's sequence from memory and from the persisted record.
func (s *Session) Forget(key string) error {
	s.mu.Lock()
	delete(s.seqs, key)
	s.mu.Unlock()

	return s.store.Delete(key)
}

// sequence returns the live sequence for key, loading it from the persisted
// record on first use. A missing or undecodable entry yields a fresh empty
// sequence.
func (s *Session) sequence(key string) *tagseq.Sequence {
	s.mu.Lock()
	defer s.mu.Unlock()

	seq, found := s.seqs[key]
	if found {
		return seq
	}

	seq = tagseq.New()

	blob, present, err := s.store.Load(key)
	if err != nil {
		log.Debugf("load %s: %v", key, err)
	} else if present {
		decoded, err := tagseq.Decode(blob)
		if err != nil {
			log.Debugf("decode %s: %v", key, err)
		} else {
			seq = decoded
		}
	}

	s.seqs[key] = seq

	return seq
}
