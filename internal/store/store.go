package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	bolt "go.etcd.io/bbolt"
)

// Bucket holding all collection records
var bucketCollections = []byte("collections")

// Store implements domain.KeyValueStore using BoltDB.
//
// Both Read and Write are fail-open: storage trouble never propagates
// as an error, it reads as a miss or reports an unpersisted write. The
// collection layer relies on this to treat corrupt records as empty
// collections.
type Store struct {
	db *bolt.DB
	mu sync.RWMutex // Protects memory cache

	// In-memory cache for hot-path reads (promoted on access)
	cache map[string][]byte
}

// NewStore opens the database under dataDir. An empty dataDir gives a
// memory-only store with no persistence (used by tests and --no-persist).
func NewStore(dataDir string) (*Store, error) {
	if dataDir == "" {
		return &Store{cache: make(map[string][]byte)}, nil
	}

	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return nil, err
	}

	dbPath := filepath.Join(dataDir, "cinemate.db")
	db, err := bolt.Open(dbPath, 0600, &bolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		return nil, fmt.Errorf("failed to open bolt db: %w", err)
	}

	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(bucketCollections)
		return err
	})
	if err != nil {
		db.Close()
		return nil, err
	}

	return &Store{db: db, cache: make(map[string][]byte)}, nil
}

func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// Read deserializes the record at key into dest. Absent keys and
// records that fail to unmarshal both read as a miss.
func (s *Store) Read(key string, dest interface{}) bool {
	// Check memory cache first
	s.mu.RLock()
	if data, ok := s.cache[key]; ok {
		s.mu.RUnlock()
		return json.Unmarshal(data, dest) == nil
	}
	s.mu.RUnlock()

	if s.db == nil {
		return false
	}

	var data []byte
	s.db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket(bucketCollections)
		if b == nil {
			return nil
		}
		if v := b.Get([]byte(key)); v != nil {
			data = make([]byte, len(v))
			copy(data, v)
		}
		return nil
	})

	if data == nil {
		return false
	}

	// Promote to memory cache
	s.mu.Lock()
	s.cache[key] = data
	s.mu.Unlock()

	return json.Unmarshal(data, dest) == nil
}

// Write serializes value and persists it at key. A single attempt, no
// retries; false means the value did not durably apply.
func (s *Store) Write(key string, value interface{}) bool {
	data, err := json.Marshal(value)
	if err != nil {
		return false
	}

	// Update memory cache
	s.mu.Lock()
	s.cache[key] = data
	s.mu.Unlock()

	if s.db == nil {
		return true // Memory-only mode
	}

	err = s.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket(bucketCollections)
		return b.Put([]byte(key), data)
	})
	return err == nil
}
