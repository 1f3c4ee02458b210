package store

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/mmcdole/vocab/internal/domain"
	bolt "go.etcd.io/bbolt"
)

// GroupsKey is the fixed key the group mapping is cached under
const GroupsKey = "vocabularyGroups"

// DefaultIdleTimeout ends a session after this long without activity
const DefaultIdleTimeout = 30 * time.Minute

var bucketSession = []byte("session")

const (
	keyStartedAt = "meta:started_at"
	keyLastSeen  = "meta:last_seen"
)

// SessionStore implements domain.SessionStore using BoltDB.
// With no directory it runs memory-only and the session lasts for the process.
type SessionStore struct {
	db *bolt.DB
	mu sync.RWMutex

	// In-memory layer for hot-path reads (promoted on access)
	cache map[string][]byte

	idleTimeout time.Duration
	now         func() time.Time

	startedAt time.Time
	lastSeen  time.Time
}

// Option configures a SessionStore
type Option func(*SessionStore)

// WithIdleTimeout sets how long a session survives without activity
func WithIdleTimeout(d time.Duration) Option {
	return func(s *SessionStore) {
		if d > 0 {
			s.idleTimeout = d
		}
	}
}

// WithClock replaces time.Now
func WithClock(now func() time.Time) Option {
	return func(s *SessionStore) {
		s.now = now
	}
}

// NewSessionStore opens (or starts) the session stored under baseCacheDir.
// The cache is partitioned per groups URL. An expired session is wiped first.
func NewSessionStore(baseCacheDir, groupsURL string, opts ...Option) (*SessionStore, error) {
	s := &SessionStore{
		cache:       make(map[string][]byte),
		idleTimeout: DefaultIdleTimeout,
		now:         time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}

	if baseCacheDir == "" {
		now := s.now()
		s.startedAt, s.lastSeen = now, now
		return s, nil
	}

	dir := baseCacheDir
	if groupsURL != "" {
		dir = filepath.Join(baseCacheDir, hashServerURL(groupsURL))
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, err
	}

	dbPath := filepath.Join(dir, "session.db")
	db, err := bolt.Open(dbPath, 0600, &bolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		return nil, fmt.Errorf("failed to open bolt db: %w", err)
	}

	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(bucketSession)
		return err
	})
	if err != nil {
		db.Close()
		return nil, err
	}

	s.db = db
	if err := s.resume(); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

func hashServerURL(serverURL string) string {
	normalized := strings.TrimRight(strings.ToLower(serverURL), "/")
	hash := sha256.Sum256([]byte(normalized))
	return hex.EncodeToString(hash[:6])
}

// resume loads the session meta, wiping the bucket if the session has expired
func (s *SessionStore) resume() error {
	now := s.now()

	var started, seen time.Time
	okStarted := s.readTime(keyStartedAt, &started)
	okSeen := s.readTime(keyLastSeen, &seen)

	if !okStarted || !okSeen || now.Sub(seen) > s.idleTimeout {
		if err := s.wipe(); err != nil {
			return err
		}
		started = now
	}

	s.startedAt = started
	s.lastSeen = now
	return s.writeMeta(started, now)
}

func (s *SessionStore) readTime(key string, dest *time.Time) bool {
	var data []byte
	s.db.View(func(tx *bolt.Tx) error {
		if v := tx.Bucket(bucketSession).Get([]byte(key)); v != nil {
			data = make([]byte, len(v))
			copy(data, v)
		}
		return nil
	})
	if data == nil {
		return false
	}
	return dest.UnmarshalText(data) == nil
}

func (s *SessionStore) writeMeta(startedAt, lastSeen time.Time) error {
	if s.db == nil {
		return nil
	}
	started, err := startedAt.MarshalText()
	if err != nil {
		return err
	}
	seen, err := lastSeen.MarshalText()
	if err != nil {
		return err
	}
	return s.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket(bucketSession)
		if err := b.Put([]byte(keyStartedAt), started); err != nil {
			return err
		}
		return b.Put([]byte(keyLastSeen), seen)
	})
}

// touch records activity so the session does not idle out
func (s *SessionStore) touch() {
	s.mu.Lock()
	s.lastSeen = s.now()
	started, seen := s.startedAt, s.lastSeen
	s.mu.Unlock()

	s.writeMeta(started, seen) // a lost heartbeat only shortens the session
}

func (s *SessionStore) wipe() error {
	s.mu.Lock()
	s.cache = make(map[string][]byte)
	s.mu.Unlock()

	if s.db == nil {
		return nil
	}
	return s.db.Update(func(tx *bolt.Tx) error {
		if err := tx.DeleteBucket(bucketSession); err != nil && err != bolt.ErrBucketNotFound {
			return err
		}
		_, err := tx.CreateBucket(bucketSession)
		return err
	})
}

func (s *SessionStore) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// === Generic helpers ===

func (s *SessionStore) get(key string, dest interface{}) bool {
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
		if v := tx.Bucket(bucketSession).Get([]byte(key)); v != nil {
			data = make([]byte, len(v))
			copy(data, v)
		}
		return nil
	})

	if data == nil {
		return false
	}

	s.mu.Lock()
	s.cache[key] = data
	s.mu.Unlock()

	return json.Unmarshal(data, dest) == nil
}

func (s *SessionStore) set(key string, value interface{}) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.cache[key] = data
	s.mu.Unlock()

	if s.db == nil {
		return nil
	}

	return s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(bucketSession).Put([]byte(key), data)
	})
}

// === Groups ===

func (s *SessionStore) GetGroups() (domain.Groups, bool) {
	defer s.touch()
	var groups domain.Groups
	ok := s.get(GroupsKey, &groups)
	return groups, ok
}

func (s *SessionStore) SaveGroups(groups domain.Groups) error {
	defer s.touch()
	return s.set(GroupsKey, groups)
}

// === Session ===

func (s *SessionStore) Info() domain.SessionInfo {
	_, hasGroups := s.peek(GroupsKey)

	s.mu.RLock()
	defer s.mu.RUnlock()
	return domain.SessionInfo{
		StartedAt:  s.startedAt,
		LastSeen:   s.lastSeen,
		HasGroups:  hasGroups,
		Persistent: s.db != nil,
	}
}

// peek checks for a key without promoting it or touching the session
func (s *SessionStore) peek(key string) ([]byte, bool) {
	s.mu.RLock()
	data, ok := s.cache[key]
	s.mu.RUnlock()
	if ok || s.db == nil {
		return data, ok
	}

	s.db.View(func(tx *bolt.Tx) error {
		if v := tx.Bucket(bucketSession).Get([]byte(key)); v != nil {
			data = make([]byte, len(v))
			copy(data, v)
		}
		return nil
	})
	return data, data != nil
}

// End wipes the session; the next access starts a fresh one
func (s *SessionStore) End() error {
	if err := s.wipe(); err != nil {
		return err
	}
	now := s.now()
	s.mu.Lock()
	s.startedAt, s.lastSeen = now, now
	s.mu.Unlock()
	return s.writeMeta(now, now)
}
