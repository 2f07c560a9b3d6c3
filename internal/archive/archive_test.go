package archive

import (
	"os"
	"path/filepath"
	"testing"

	"palwatch/internal/diff"
	"palwatch/internal/history"
)

func TestInitCreatesLayout(t *testing.T) {
	dir := t.TempDir()
	base := filepath.Join(dir, "palwatch")

	db, err := Init(base)
	if err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	defer db.Close()

	version, err := GetUserVersion(db)
	if err != nil {
		t.Fatalf("GetUserVersion failed: %v", err)
	}
	if version != CurrentSchemaVersion {
		t.Errorf("schema version = %d, want %d", version, CurrentSchemaVersion)
	}

	for _, p := range []string{base, filepath.Join(base, "reports"), filepath.Join(base, "archive.db")} {
		if _, err := os.Stat(p); err != nil {
			t.Errorf("expected %s to exist: %v", p, err)
		}
	}
}

func TestInitIdempotent(t *testing.T) {
	base := t.TempDir()

	db1, err := Init(base)
	if err != nil {
		t.Fatalf("first Init failed: %v", err)
	}
	db1.Close()

	db2, err := Init(base)
	if err != nil {
		t.Fatalf("second Init failed: %v", err)
	}
	defer db2.Close()

	version, err := GetUserVersion(db2)
	if err != nil {
		t.Fatalf("GetUserVersion failed: %v", err)
	}
	if version != CurrentSchemaVersion {
		t.Errorf("schema version = %d, want %d", version, CurrentSchemaVersion)
	}
}

func TestInsertAndRecent(t *testing.T) {
	db, err := Init(t.TempDir())
	if err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	defer db.Close()

	first := history.Record{
		Timestamp:        "2026-08-29T10:00:00Z",
		FilePath:         "/saves/Level.sav",
		FileSize:         1024,
		SaveType:         diff.SaveUnknown,
		InferredActivity: diff.ActivityIdle,
	}
	second := history.Record{
		Timestamp:     "2026-08-29T10:10:00Z",
		FilePath:      "/saves/Level.sav",
		FileSize:      2048,
		FileSizeDelta: 1024,
		TimeSinceLast: 600,
		SaveType:      diff.SaveAutosave,
		Events: []diff.Summary{
			{Type: diff.TypeCreatureCaught, Category: diff.CategoryCreature, Message: "Caught Foxparks Lv.12 (IVs: 80/70/60 = 210)", Priority: diff.PriorityHigh},
		},
		InferredActivity: diff.ActivityCatching,
		SnapshotSummary:  &history.SnapshotSummary{CreatureCount: 42, PlayerCount: 2, BaseCount: 1},
	}

	// Insert out of chronological order to exercise timestamp sorting.
	if _, err := Insert(db, second); err != nil {
		t.Fatalf("Insert failed: %v", err)
	}
	id, err := Insert(db, first)
	if err != nil {
		t.Fatalf("Insert failed: %v", err)
	}
	if id == "" {
		t.Error("expected non-empty id")
	}

	events, err := Recent(db, 10)
	if err != nil {
		t.Fatalf("Recent failed: %v", err)
	}
	if len(events) != 2 {
		t.Fatalf("got %d events, want 2", len(events))
	}
	if events[0].Timestamp != first.Timestamp {
		t.Errorf("events[0].Timestamp = %s, want %s (oldest first)", events[0].Timestamp, first.Timestamp)
	}

	got := events[1]
	if got.SaveType != diff.SaveAutosave {
		t.Errorf("SaveType = %s, want %s", got.SaveType, diff.SaveAutosave)
	}
	if got.InferredActivity != diff.ActivityCatching {
		t.Errorf("InferredActivity = %s, want %s", got.InferredActivity, diff.ActivityCatching)
	}
	if got.FileSizeDelta != 1024 {
		t.Errorf("FileSizeDelta = %d, want 1024", got.FileSizeDelta)
	}
	if got.TimeSinceLast != 600 {
		t.Errorf("TimeSinceLast = %v, want 600", got.TimeSinceLast)
	}
	if len(got.Events) != 1 || got.Events[0].Type != diff.TypeCreatureCaught {
		t.Errorf("Events not round-tripped: %+v", got.Events)
	}
	if got.SnapshotSummary == nil || got.SnapshotSummary.CreatureCount != 42 {
		t.Errorf("SnapshotSummary not round-tripped: %+v", got.SnapshotSummary)
	}
	if got.CreatedAt == 0 {
		t.Error("expected CreatedAt to be set")
	}

	// First record had no events and no snapshot summary.
	if len(events[0].Events) != 0 {
		t.Errorf("expected no events on first record, got %+v", events[0].Events)
	}
	if events[0].SnapshotSummary != nil {
		t.Errorf("expected nil SnapshotSummary on first record, got %+v", events[0].SnapshotSummary)
	}
}

func TestRecentLimit(t *testing.T) {
	db, err := Init(t.TempDir())
	if err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	defer db.Close()

	timestamps := []string{
		"2026-08-29T10:00:00Z",
		"2026-08-29T10:10:00Z",
		"2026-08-29T10:20:00Z",
	}
	for _, ts := range timestamps {
		rec := history.Record{Timestamp: ts, FilePath: "/saves/Level.sav", SaveType: diff.SaveAutosave, InferredActivity: diff.ActivityExploring}
		if _, err := Insert(db, rec); err != nil {
			t.Fatalf("Insert failed: %v", err)
		}
	}

	events, err := Recent(db, 2)
	if err != nil {
		t.Fatalf("Recent failed: %v", err)
	}
	if len(events) != 2 {
		t.Fatalf("got %d events, want 2", len(events))
	}
	if events[0].Timestamp != timestamps[1] || events[1].Timestamp != timestamps[2] {
		t.Errorf("expected two newest in chronological order, got %s, %s", events[0].Timestamp, events[1].Timestamp)
	}

	none, err := Recent(db, 0)
	if err != nil {
		t.Fatalf("Recent(0) failed: %v", err)
	}
	if none != nil {
		t.Errorf("Recent(0) = %+v, want nil", none)
	}
}

func TestCount(t *testing.T) {
	db, err := Init(t.TempDir())
	if err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	defer db.Close()

	n, err := Count(db)
	if err != nil {
		t.Fatalf("Count failed: %v", err)
	}
	if n != 0 {
		t.Errorf("Count = %d, want 0 on fresh archive", n)
	}

	rec := history.Record{Timestamp: "2026-08-29T10:00:00Z", FilePath: "/saves/Level.sav", SaveType: diff.SaveManual, InferredActivity: diff.ActivityIdle}
	if _, err := Insert(db, rec); err != nil {
		t.Fatalf("Insert failed: %v", err)
	}

	n, err = Count(db)
	if err != nil {
		t.Fatalf("Count failed: %v", err)
	}
	if n != 1 {
		t.Errorf("Count = %d, want 1", n)
	}
}
