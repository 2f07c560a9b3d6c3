// Package ops implements the operations shared by the CLI and the MCP
// server. Each operation takes an Env carrying the open stores and
// returns a JSON-serializable output.
package ops

import (
	"database/sql"
	"path/filepath"

	"github.com/rs/zerolog"

	"palwatch/internal/history"
)

// Listing limits
const (
	DefaultRecentLimit = 10
	MaxRecentLimit     = 100
)

// SnapshotLatestName is the baseline snapshot file inside the data
// directory. Each observation diffs against it and then replaces it.
const SnapshotLatestName = "snapshot_latest.json"

// Env carries the open stores an operation needs. One Env is built at
// startup and shared by every operation in the process.
type Env struct {
	BaseDir string
	DB      *sql.DB
	History *history.Store
	Logger  zerolog.Logger
}

// SnapshotPath returns the path of the baseline snapshot.
func (e *Env) SnapshotPath() string {
	return filepath.Join(e.BaseDir, SnapshotLatestName)
}

// ReportsDir returns the directory report files are written to.
func (e *Env) ReportsDir() string {
	return filepath.Join(e.BaseDir, "reports")
}

// clampLimit applies the default and maximum listing limits.
func clampLimit(limit int) int {
	if limit <= 0 {
		return DefaultRecentLimit
	}
	if limit > MaxRecentLimit {
		return MaxRecentLimit
	}
	return limit
}
