// Package store is the JSON-file record store: one array file per
// collection under a data directory. Reads and writes always move the whole
// collection; Update serializes read-modify-write sequences per collection.
package store

import (
	"crypto/rand"
	"encoding/json"
	"fmt"
	"math/big"
	"os"
	"path/filepath"
	"strconv"
	"sync"
	"time"
)

// Record is one persisted document. Records stay schemaless inside the
// store so merge-style updates keep unknown fields intact.
type Record = map[string]any

type Store struct {
	dir string

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

// New creates the data directory if needed and returns a ready store.
func New(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating data directory %s: %w", dir, err)
	}
	return &Store{dir: dir, locks: make(map[string]*sync.Mutex)}, nil
}

func (s *Store) collectionLock(collection string) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()
	l, ok := s.locks[collection]
	if !ok {
		l = &sync.Mutex{}
		s.locks[collection] = l
	}
	return l
}

func (s *Store) path(collection string) string {
	return filepath.Join(s.dir, collection+".json")
}

// ReadAll returns every record in the collection. A missing file is an
// empty collection, not an error. A file that exists but does not parse is.
func (s *Store) ReadAll(collection string) ([]Record, error) {
	data, err := os.ReadFile(s.path(collection))
	if err != nil {
		if os.IsNotExist(err) {
			return []Record{}, nil
		}
		return nil, fmt.Errorf("reading %s: %w", collection, err)
	}
	var records []Record
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", collection, err)
	}
	if records == nil {
		records = []Record{}
	}
	return records, nil
}

// WriteAll replaces the collection. The new content goes to a temp file
// first and is renamed into place, so a crash mid-write never leaves a
// half-written collection behind.
func (s *Store) WriteAll(collection string, records []Record) error {
	if records == nil {
		records = []Record{}
	}
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding %s: %w", collection, err)
	}
	tmp, err := os.CreateTemp(s.dir, collection+"-*.tmp")
	if err != nil {
		return fmt.Errorf("writing %s: %w", collection, err)
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("writing %s: %w", collection, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("writing %s: %w", collection, err)
	}
	if err := os.Rename(tmp.Name(), s.path(collection)); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("writing %s: %w", collection, err)
	}
	return nil
}

// Update runs fn over the current records and persists what it returns,
// holding the collection lock for the whole read-modify-write. Concurrent
// creates against the same collection are serialized here, which is what
// keeps check-then-append invariants (one application per job and email)
// safe under concurrent requests. If fn returns an error nothing is written.
func (s *Store) Update(collection string, fn func(records []Record) ([]Record, error)) error {
	l := s.collectionLock(collection)
	l.Lock()
	defer l.Unlock()

	records, err := s.ReadAll(collection)
	if err != nil {
		return err
	}
	updated, err := fn(records)
	if err != nil {
		return err
	}
	return s.WriteAll(collection, updated)
}

// GenerateID returns "<unix millis>-<9 base36 chars>". Uniqueness relies on
// the timestamp plus random bits being good enough for a single process'
// request volume; it is not a cryptographic guarantee.
func GenerateID() string {
	const alphabet = "0123456789abcdefghijklmnopqrstuvwxyz"
	suffix := make([]byte, 9)
	max := big.NewInt(int64(len(alphabet)))
	for i := range suffix {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			// crypto/rand failing means the platform is broken; fall
			// back to the clock rather than panic.
			suffix[i] = alphabet[time.Now().UnixNano()%int64(len(alphabet))]
			continue
		}
		suffix[i] = alphabet[n.Int64()]
	}
	return strconv.FormatInt(time.Now().UnixMilli(), 10) + "-" + string(suffix)
}

// FindByID returns the record whose _id matches, or nil.
func FindByID(records []Record, id string) Record {
	for _, r := range records {
		if r["_id"] == id {
			return r
		}
	}
	return nil
}

// FindByFields returns the records matching every field exactly (an
// equality conjunction, the only query shape the store supports).
func FindByFields(records []Record, fields map[string]any) []Record {
	matches := []Record{}
	for _, r := range records {
		ok := true
		for k, v := range fields {
			if r[k] != v {
				ok = false
				break
			}
		}
		if ok {
			matches = append(matches, r)
		}
	}
	return matches
}

// ToRecord converts a typed model into a Record through its JSON form.
func ToRecord(v any) (Record, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	var r Record
	if err := json.Unmarshal(data, &r); err != nil {
		return nil, err
	}
	return r, nil
}

// FromRecord decodes a Record back into a typed model.
func FromRecord(r Record, out any) error {
	data, err := json.Marshal(r)
	if err != nil {
		return err
	}
	return json.Unmarshal(data, out)
}
