package buffertree

import (
	"encoding/binary"
	"fmt"
	"sync"
	"time"

	bolt "go.etcd.io/bbolt"
)

var snapshotsBucket = []byte("snapshots")

// Store is a bbolt-backed key/value layer mapping vertex ids to
// serialized sketch snapshots. A Store is safe for concurrent use.
type Store struct {
	mu     sync.RWMutex
	db     *bolt.DB
	closed bool
}

// Open creates or opens the bbolt database at path, creating the
// snapshots bucket if it does not already exist.
func Open(path string) (*Store, error) {
	db, err := bolt.Open(path, 0o600, &bolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("buffertree: open %s: %w", path, err)
	}

	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(snapshotsBucket)

		return err
	})
	if err != nil {
		_ = db.Close()

		return nil, fmt.Errorf("buffertree: creating bucket: %w", err)
	}

	return &Store{db: db}, nil
}

// Put writes snap as the current snapshot for vertex, overwriting any
// prior value.
func (s *Store) Put(vertex uint32, snap []byte) error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.closed {
		return ErrClosed
	}

	key := encodeKey(vertex)

	return s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(snapshotsBucket).Put(key, snap)
	})
}

// Get returns the stored snapshot for vertex, if any. The returned
// slice is a copy and safe to retain past the call.
func (s *Store) Get(vertex uint32) ([]byte, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.closed {
		return nil, false, ErrClosed
	}

	key := encodeKey(vertex)
	var out []byte
	err := s.db.View(func(tx *bolt.Tx) error {
		v := tx.Bucket(snapshotsBucket).Get(key)
		if v == nil {
			return nil
		}
		out = append([]byte(nil), v...)

		return nil
	})
	if err != nil {
		return nil, false, err
	}

	return out, out != nil, nil
}

// Delete removes any stored snapshot for vertex. It is a no-op if none
// exists.
func (s *Store) Delete(vertex uint32) error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.closed {
		return ErrClosed
	}

	key := encodeKey(vertex)

	return s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(snapshotsBucket).Delete(key)
	})
}

// Close releases the underlying bbolt file handle. Further operations
// on s return ErrClosed.
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil
	}
	s.closed = true

	return s.db.Close()
}

func encodeKey(vertex uint32) []byte {
	key := make([]byte, 4)
	binary.BigEndian.PutUint32(key, vertex)

	return key
}
