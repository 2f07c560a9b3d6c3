package history

import (
	"encoding/json"
	"errors"
	"os"
	"time"

	"github.com/rs/zerolog"

	"palwatch/internal/world"
)

// DefaultMaxEvents bounds the rolling log when no limit is configured.
const DefaultMaxEvents = 100

// Store owns the lifecycle of the bounded save-event log: load on open,
// trim and persist on every append. Single-owner, single-process; all
// aggregation logic lives in the pure functions of this package.
type Store struct {
	path      string
	maxEvents int
	logger    zerolog.Logger

	events   []Record
	patterns Patterns
}

// storeFile is the on-disk layout of the history store.
type storeFile struct {
	Events      []Record `json:"events"`
	Patterns    Patterns `json:"patterns"`
	LastUpdated string   `json:"last_updated"`
}

// Open loads the history store from path. A missing file starts an
// empty store; a corrupt one is reset to empty with a warning, never a
// hard failure.
func Open(path string, maxEvents int, logger zerolog.Logger) *Store {
	if maxEvents <= 0 {
		maxEvents = DefaultMaxEvents
	}

	s := &Store{
		path:      path,
		maxEvents: maxEvents,
		logger:    logger,
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			logger.Warn().Err(err).Str("path", path).Msg("could not read history, starting empty")
		}
		return s
	}

	var file storeFile
	if err := json.Unmarshal(data, &file); err != nil {
		logger.Warn().Err(err).Str("path", path).Msg("could not load history, starting empty")
		return s
	}

	s.events = file.Events
	s.patterns = file.Patterns
	return s
}

// Append pushes a save event onto the log, recomputes patterns from the
// full retained log, trims to the configured bound (oldest first), and
// persists.
func (s *Store) Append(ev SaveEvent) error {
	s.events = append(s.events, ev.Record)
	if len(s.events) > s.maxEvents {
		s.events = s.events[len(s.events)-s.maxEvents:]
	}
	s.patterns = ComputePatterns(s.events)
	return s.persist()
}

func (s *Store) persist() error {
	file := storeFile{
		Events:      s.events,
		Patterns:    s.patterns,
		LastUpdated: time.Now().Format(world.TimestampFormat),
	}
	data, err := json.MarshalIndent(file, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(s.path, data, 0600)
}

// Len returns the number of retained records.
func (s *Store) Len() int {
	return len(s.events)
}

// Recent returns the last n records in insertion order.
func (s *Store) Recent(n int) []Record {
	if n <= 0 || len(s.events) == 0 {
		return nil
	}
	if n > len(s.events) {
		n = len(s.events)
	}
	out := make([]Record, n)
	copy(out, s.events[len(s.events)-n:])
	return out
}

// Last returns the most recent record, or nil for an empty log.
func (s *Store) Last() *Record {
	if len(s.events) == 0 {
		return nil
	}
	rec := s.events[len(s.events)-1]
	return &rec
}

// Patterns returns the current longitudinal aggregate.
func (s *Store) Patterns() Patterns {
	return s.patterns
}

// Session summarizes the most recent play session, or nil if the log is
// empty.
func (s *Store) Session() *SessionSummary {
	return SummarizeSession(s.events)
}

// Stats totals the entire retained log, or nil if the log is empty.
func (s *Store) Stats() *Stats {
	return Totals(s.events, s.patterns)
}

// Trends reports notable streaks over the recent log.
func (s *Store) Trends() []string {
	return DetectTrends(s.events)
}
