// Package record implements the shared persisted record file: a single JSON
// object mapping document keys to base64-encoded sequence blobs. All access
// is whole-record read-modify-write under one lock so concurrent saves for
// different documents cannot clobber each other's entries.
package record

import (
	"encoding/base64"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"

	"github.com/inktag/inktag/pkg/errors"
	"github.com/inktag/inktag/pkg/log"
)

// Store reads and writes the record file at a fixed path.
type Store struct {
	path string
	mu   sync.Mutex
}

// NewStore returns a Store backed by the file at path. The file is created
// on first Save.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// Path returns the record file path.
func (s *Store) Path() string {
	return s.path
}

// Load returns the persisted blob for key. The second return is false if the
// record file does not exist, the key is absent, or the entry cannot be
// decoded; a malformed entry is reported as an error but callers are expected
// to treat it as absence.
func (s *Store) Load(key string) ([]byte, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := s.read()
	if err != nil {
		return nil, false, err
	}

	entry := gjson.GetBytes(data, escapeKey(key))
	if !entry.Exists() {
		return nil, false, nil
	}

	blob, err := base64.StdEncoding.DecodeString(entry.String())
	if err != nil {
		return nil, false, fmt.Errorf("%s: %w / %w", key, err, errors.ErrDecode)
	}

	return blob, true, nil
}

// Save writes blob under key, preserving all other keys in the record. The
// record is rewritten via a temporary file and rename so a failed save never
// leaves a partial record behind.
func (s *Store) Save(key string, blob []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := s.read()
	if err != nil {
		return err
	}

	data, err = sjson.SetBytes(data, escapeKey(key), base64.StdEncoding.EncodeToString(blob))
	if err != nil {
		return fmt.Errorf("%s: %w / %w", key, err, errors.ErrEncode)
	}

	return s.write(data)
}

// Delete removes key's entry from the record. Deleting an absent key is a
// no-op.
func (s *Store) Delete(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := s.read()
	if err != nil {
		return err
	}

	data, err = sjson.DeleteBytes(data, escapeKey(key))
	if err != nil {
		return fmt.Errorf("%s: %w / %w", key, err, errors.ErrEncode)
	}

	return s.write(data)
}

// Keys returns all document keys present in the record, in record order.
func (s *Store) Keys() ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := s.read()
	if err != nil {
		return nil, err
	}

	keys := []string{}
	gjson.ParseBytes(data).ForEach(func(key, _ gjson.Result) bool {
		keys = append(keys, key.String())
		return true
	})

	return keys, nil
}

// read loads the current record bytes. A missing file yields an empty
// record; a file that is not a JSON object is treated the same way (the
// corrupt content is abandoned on the next write).
func (s *Store) read() ([]byte, error) {
	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return []byte("{}"), nil
	}

	if err != nil {
		return nil, fmt.Errorf("%s: %w / %w", s.path, err, errors.ErrRecordFile)
	}

	if !gjson.ValidBytes(data) || !gjson.ParseBytes(data).IsObject() {
		log.Debugf("record file %s is corrupt; starting fresh", s.path)
		return []byte("{}"), nil
	}

	return data, nil
}

func (s *Store) write(data []byte) error {
	dir := filepath.Dir(s.path)

	err := os.MkdirAll(dir, 0o755)
	if err != nil {
		return fmt.Errorf("%s: %w / %w", dir, err, errors.ErrRecordFile)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(s.path)+".*")
	if err != nil {
		return fmt.Errorf("%s: %w / %w", s.path, err, errors.ErrRecordFile)
	}

	_, err = tmp.Write(data)
	if err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("%s: %w / %w", tmp.Name(), err, errors.ErrRecordFile)
	}

	err = tmp.Close()
	if err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("%s: %w / %w", tmp.Name(), err, errors.ErrRecordFile)
	}

	err = os.Rename(tmp.Name(), s.path)
	if err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("%s: %w / %w", s.path, err, errors.ErrRecordFile)
	}

	return nil
}

// escapeKey escapes gjson/sjson path metacharacters so arbitrary document
// keys (file paths with dots, globs, etc.) address a single top-level field.
func escapeKey(key string) string {
	sb := strings.Builder{}

	for _, r := range key {
		switch r {
		case '\\', '.', '*', '?', '|', '#', '@':
			sb.WriteByte('\\')
		}
		sb.WriteRune(r)
	}

	return sb.String()
}
