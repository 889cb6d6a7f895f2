package handlers

import (
	"crypto/rand"
	"encoding/hex"
	"os"
	"sync"
	"time"

	"btc-projection/internal/model"
)

// storedResult is a finished projection series kept for later retrieval
type storedResult struct {
	Series    []model.Snapshot
	ExpiresAt time.Time
}

// ResultStore provides in-memory retention of simulation series so that
// a run's id can be fetched again via GET without re-simulating.
// Entries expire after a TTL (RESULT_TTL, default 1h).
type ResultStore struct {
	mu    sync.RWMutex
	store map[string]*storedResult
	ttl   time.Duration
}

func NewResultStore() *ResultStore {
	ttl := 1 * time.Hour
	if ttlStr := os.Getenv("RESULT_TTL"); ttlStr != "" {
		if parsed, err := time.ParseDuration(ttlStr); err == nil {
			ttl = parsed
		}
	}
	s := &ResultStore{
		store: make(map[string]*storedResult),
		ttl:   ttl,
	}
	go s.cleanup()
	return s
}

// Put stores a series and returns its id.
func (s *ResultStore) Put(series []model.Snapshot) string {
	id := newResultID()

	s.mu.Lock()
	defer s.mu.Unlock()
	s.store[id] = &storedResult{
		Series:    series,
		ExpiresAt: time.Now().Add(s.ttl),
	}
	return id
}

// Get retrieves a stored series if available and not expired.
func (s *ResultStore) Get(id string) ([]model.Snapshot, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entry, exists := s.store[id]
	if !exists {
		return nil, false
	}
	if time.Now().After(entry.ExpiresAt) {
		return nil, false
	}
	return entry.Series, true
}

// cleanup periodically removes expired entries.
func (s *ResultStore) cleanup() {
	ticker := time.NewTicker(5 * time.Minute)
	defer ticker.Stop()

	for range ticker.C {
		s.mu.Lock()
		now := time.Now()
		for id, entry := range s.store {
			if now.After(entry.ExpiresAt) {
				delete(s.store, id)
			}
		}
		s.mu.Unlock()
	}
}

func newResultID() string {
	buf := make([]byte, 16)
	if _, err := rand.Read(buf); err != nil {
		// Fallback keeps ids usable even if the entropy source
		// misbehaves; collisions just overwrite.
		return hex.EncodeToString([]byte(time.Now().Format(time.RFC3339Nano)))
	}
	return hex.EncodeToString(buf)
}
