package client

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Keys mirror what the browser client kept in localStorage.
const (
	localKeyApplications = "jobApplications"
	localKeyJobs         = "recruiterJobs"
)

// LocalStore is the persistent key-value cache backing offline mode and the
// tracker's fallback: one JSON file of named entries. It assumes a single
// writer, the same way browser localStorage is only touched from the UI
// thread.
type LocalStore struct {
	path string
}

func NewLocalStore(path string) *LocalStore {
	return &LocalStore{path: path}
}

func (l *LocalStore) read() (map[string]json.RawMessage, error) {
	data, err := os.ReadFile(l.path)
	if err != nil {
		if os.IsNotExist(err) {
			return map[string]json.RawMessage{}, nil
		}
		return nil, err
	}
	entries := map[string]json.RawMessage{}
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("parsing local store: %w", err)
	}
	return entries, nil
}

// Get decodes the entry under key into out. A missing file or key leaves
// out untouched and is not an error.
func (l *LocalStore) Get(key string, out any) error {
	entries, err := l.read()
	if err != nil {
		return err
	}
	raw, ok := entries[key]
	if !ok {
		return nil
	}
	return json.Unmarshal(raw, out)
}

// Set stores v under key, creating the file on first write.
func (l *LocalStore) Set(key string, v any) error {
	entries, err := l.read()
	if err != nil {
		return err
	}
	raw, err := json.Marshal(v)
	if err != nil {
		return err
	}
	entries[key] = raw
	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(l.path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(l.path, data, 0o644)
}
