// Package highscore keeps the top-5 high score table and persists it as
// JSON through a key-value Persister.
package highscore

import (
	"cmp"
	"encoding/json"
	"errors"
	"fmt"
	"slices"
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/charmbracelet/log"
)

const (
	// MaxEntries is the number of entries the table retains.
	MaxEntries = 5

	// InitialsLen is the exact number of characters in a player's initials.
	InitialsLen = 3

	// Key is the persister key the table is stored under.
	Key = "highScores"
)

// ErrInvalidInitials is returned when initials are not exactly InitialsLen characters.
var ErrInvalidInitials = errors.New("highscore: initials must be exactly 3 characters")

// Entry is one row of the high score table.
type Entry struct {
	Initials string `json:"initials"`
	Score    int    `json:"score"`
}

// Persister is the external key-value store the table lives in.
type Persister interface {
	// Get returns the value for key; ok is false when the key is absent.
	Get(key string) (value string, ok bool, err error)
	Set(key, value string) error
}

// Store is the in-memory high score table backed by a Persister.
// It is safe for concurrent use.
type Store struct {
	mu      sync.Mutex
	p       Persister
	logger  *log.Logger
	entries []Entry
}

// New creates an empty store. Call Load to read persisted entries.
// A nil logger uses the default logger.
func New(p Persister, logger *log.Logger) *Store {
	if logger == nil {
		logger = log.Default()
	}
	return &Store{p: p, logger: logger}
}

// Load replaces the table with the persisted one. A missing, unreadable or
// corrupt value yields an empty table; it is never fatal.
func (s *Store) Load() []Entry {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries = nil

	raw, ok, err := s.p.Get(Key)
	if err != nil {
		s.logger.Warn("could not read high scores", "error", err)
		return nil
	}
	if !ok || strings.TrimSpace(raw) == "" {
		return nil
	}

	var loaded []Entry
	if err := json.Unmarshal([]byte(raw), &loaded); err != nil {
		s.logger.Warn("ignoring corrupt high scores", "error", err)
		return nil
	}

	// Normalize anything written by other tools
	s.entries = normalize(loaded)
	return s.snapshot()
}

// Record inserts an entry, keeps the top MaxEntries and persists the table.
// The in-memory table is updated even if persisting fails.
func (s *Store) Record(e Entry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries = Insert(s.entries, e)

	data, err := json.Marshal(s.entries)
	if err != nil {
		return fmt.Errorf("highscore: cannot encode table: %w", err)
	}
	if err := s.p.Set(Key, string(data)); err != nil {
		return fmt.Errorf("highscore: cannot persist table: %w", err)
	}
	return nil
}

// Entries returns the table, highest score first.
func (s *Store) Entries() []Entry {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshot()
}

// Qualifies reports whether score would enter the table.
func (s *Store) Qualifies(score int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries) < MaxEntries || score > s.entries[len(s.entries)-1].Score
}

func (s *Store) snapshot() []Entry {
	return slices.Clone(s.entries)
}

// Insert appends e to list, sorts by descending score (ties keep insertion
// order) and truncates to MaxEntries. The input slice is not modified.
func Insert(list []Entry, e Entry) []Entry {
	out := make([]Entry, 0, len(list)+1)
	out = append(out, list...)
	out = append(out, e)
	return normalize(out)
}

// normalize stable-sorts by descending score and truncates in place.
func normalize(list []Entry) []Entry {
	slices.SortStableFunc(list, func(a, b Entry) int {
		return cmp.Compare(b.Score, a.Score)
	})
	if len(list) > MaxEntries {
		list = list[:MaxEntries]
	}
	return list
}

// ValidateInitials trims surrounding whitespace and checks that exactly
// InitialsLen characters remain. Any characters are accepted.
func ValidateInitials(raw string) (string, error) {
	initials := strings.TrimSpace(raw)
	if utf8.RuneCountInString(initials) != InitialsLen {
		return "", fmt.Errorf("%w: got %q", ErrInvalidInitials, raw)
	}
	return initials, nil
}
