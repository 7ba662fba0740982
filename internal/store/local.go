package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"
)

type localStorage struct {
	path     string
	inMemory bool

	mu      sync.RWMutex
	entries map[string]entry
}

// entry is the persisted shape of a single stored value.
type entry struct {
	Value  json.RawMessage `json:"value"`
	Expiry int64           `json:"expiry"` // unix milliseconds
}

func (e entry) expired(now time.Time) bool {
	return now.UnixMilli() > e.Expiry
}

// NewLocalStorage opens (or creates) the JSON-file-backed store at path.
// The path ":memory:" selects a volatile store that never touches disk.
func NewLocalStorage(path string) (LocalStorage, error) {
	if path == "" {
		path = ":memory:"
	}

	s := &localStorage{
		path:     path,
		inMemory: path == ":memory:" || path == "memory",
		entries:  make(map[string]entry),
	}
	if err := s.load(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *localStorage) Set(key string, value any, ttl time.Duration) error {
	if ttl <= 0 {
		ttl = DefaultTTL
	}

	payload, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encode stored value: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries[key] = entry{
		Value:  payload,
		Expiry: time.Now().Add(ttl).UnixMilli(),
	}
	return s.persist()
}

func (s *localStorage) Get(key string, dst any) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.entries[key]
	if !ok {
		return false, nil
	}

	if e.expired(time.Now()) {
		delete(s.entries, key)
		return false, s.persist()
	}

	if err := json.Unmarshal(e.Value, dst); err != nil {
		// Corrupted entries are treated as absent, never surfaced.
		delete(s.entries, key)
		return false, s.persist()
	}
	return true, nil
}

func (s *localStorage) Remove(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.entries[key]; !ok {
		return nil
	}
	delete(s.entries, key)
	return s.persist()
}

func (s *localStorage) PurgeExpired() (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	dropped := 0
	for key, e := range s.entries {
		if e.expired(now) {
			delete(s.entries, key)
			dropped++
		}
	}
	if dropped == 0 {
		return 0, nil
	}
	return dropped, s.persist()
}

func (s *localStorage) load() error {
	if s.inMemory {
		return nil
	}

	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("read storage file: %w", err)
	}

	var entries map[string]entry
	if err = json.Unmarshal(data, &entries); err != nil {
		return fmt.Errorf("decode storage file: %w", err)
	}
	if entries == nil {
		entries = make(map[string]entry)
	}
	s.entries = entries
	return nil
}

// persist writes the full entry map to disk. Callers must hold s.mu.
func (s *localStorage) persist() error {
	if s.inMemory {
		return nil
	}

	dir := filepath.Dir(s.path)
	if dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create storage dir: %w", err)
		}
	}

	payload, err := json.MarshalIndent(s.entries, "", "  ")
	if err != nil {
		return fmt.Errorf("encode storage: %w", err)
	}
	if err = os.WriteFile(s.path, payload, 0o600); err != nil {
		return fmt.Errorf("write storage file: %w", err)
	}
	return nil
}
