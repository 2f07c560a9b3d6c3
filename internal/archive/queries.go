package archive

import (
	"crypto/rand"
	"database/sql"
	"encoding/json"
	"time"

	"github.com/oklog/ulid/v2"

	"palwatch/internal/diff"
	"palwatch/internal/errors"
	"palwatch/internal/history"
)

// ArchivedEvent is one archived save event row.
type ArchivedEvent struct {
	ID        string `json:"id"`
	CreatedAt int64  `json:"created_at"`
	history.Record
}

// Insert stores a save-event record in the archive and returns its id.
func Insert(db *sql.DB, rec history.Record) (string, error) {
	id, err := generateULID()
	if err != nil {
		return "", errors.NewInternal(err)
	}

	var eventsJSON sql.NullString
	if len(rec.Events) > 0 {
		data, err := json.Marshal(rec.Events)
		if err != nil {
			return "", errors.NewInternal(err)
		}
		eventsJSON = sql.NullString{String: string(data), Valid: true}
	}

	var creatureCount, playerCount, baseCount sql.NullInt64
	if ss := rec.SnapshotSummary; ss != nil {
		creatureCount = sql.NullInt64{Int64: int64(ss.CreatureCount), Valid: true}
		playerCount = sql.NullInt64{Int64: int64(ss.PlayerCount), Valid: true}
		baseCount = sql.NullInt64{Int64: int64(ss.BaseCount), Valid: true}
	}

	query := `
		INSERT INTO save_events (
			id, timestamp, file_path, file_size, file_size_delta,
			time_since_last, save_type, inferred_activity, events_json,
			creature_count, player_count, base_count, created_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err = db.Exec(query,
		id, rec.Timestamp, rec.FilePath, rec.FileSize, rec.FileSizeDelta,
		rec.TimeSinceLast, string(rec.SaveType), string(rec.InferredActivity), eventsJSON,
		creatureCount, playerCount, baseCount, time.Now().Unix(),
	)
	if err != nil {
		return "", errors.NewInternal(err)
	}

	return id, nil
}

// Recent returns the most recent n archived events, oldest first.
func Recent(db *sql.DB, n int) ([]ArchivedEvent, error) {
	if n <= 0 {
		return nil, nil
	}

	query := `
		SELECT id, timestamp, file_path, file_size, file_size_delta,
			time_since_last, save_type, inferred_activity, events_json,
			creature_count, player_count, base_count, created_at
		FROM save_events
		ORDER BY timestamp DESC
		LIMIT ?
	`

	rows, err := db.Query(query, n)
	if err != nil {
		return nil, errors.NewInternal(err)
	}
	defer rows.Close()

	var events []ArchivedEvent
	for rows.Next() {
		ev, err := scanEvent(rows)
		if err != nil {
			return nil, errors.NewInternal(err)
		}
		events = append(events, *ev)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.NewInternal(err)
	}

	// Reverse to chronological order
	for i, j := 0, len(events)-1; i < j; i, j = i+1, j-1 {
		events[i], events[j] = events[j], events[i]
	}

	return events, nil
}

// Count returns the total number of archived events.
func Count(db *sql.DB) (int, error) {
	var count int
	if err := db.QueryRow("SELECT COUNT(*) FROM save_events").Scan(&count); err != nil {
		return 0, errors.NewInternal(err)
	}
	return count, nil
}

// scanEvent scans a single row into an ArchivedEvent.
func scanEvent(rows *sql.Rows) (*ArchivedEvent, error) {
	var (
		ev            ArchivedEvent
		saveType      string
		activity      string
		eventsJSON    sql.NullString
		creatureCount sql.NullInt64
		playerCount   sql.NullInt64
		baseCount     sql.NullInt64
	)

	err := rows.Scan(
		&ev.ID, &ev.Timestamp, &ev.FilePath, &ev.FileSize, &ev.FileSizeDelta,
		&ev.TimeSinceLast, &saveType, &activity, &eventsJSON,
		&creatureCount, &playerCount, &baseCount, &ev.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	ev.SaveType = diff.SaveType(saveType)
	ev.InferredActivity = diff.Activity(activity)

	if eventsJSON.Valid && eventsJSON.String != "" {
		if err := json.Unmarshal([]byte(eventsJSON.String), &ev.Events); err != nil {
			return nil, err
		}
	}

	if creatureCount.Valid {
		ev.SnapshotSummary = &history.SnapshotSummary{
			CreatureCount: int(creatureCount.Int64),
			PlayerCount:   int(playerCount.Int64),
			BaseCount:     int(baseCount.Int64),
		}
	}

	return &ev, nil
}

// generateULID generates a new ULID.
func generateULID() (string, error) {
	entropy := ulid.Monotonic(rand.Reader, 0)
	id, err := ulid.New(ulid.Timestamp(time.Now()), entropy)
	if err != nil {
		return "", err
	}
	return id.String(), nil
}
