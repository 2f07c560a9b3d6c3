package ops

import (
	"testing"
	"time"

	"palwatch/internal/archive"
	"palwatch/internal/diff"
	"palwatch/internal/history"
)

func TestSession_Empty(t *testing.T) {
	env := testEnv(t)

	output, err := Session(env)
	if err != nil {
		t.Fatalf("Session failed: %v", err)
	}
	if output.Session != nil {
		t.Errorf("Session = %+v, want nil with no saves", output.Session)
	}
}

func TestSession_CoversRecentSaves(t *testing.T) {
	env := testEnv(t)
	seedRecords(t, env, 3)

	output, err := Session(env)
	if err != nil {
		t.Fatalf("Session failed: %v", err)
	}
	if output.Session == nil {
		t.Fatal("expected a session summary")
	}
	if output.Session.SaveCount != 3 {
		t.Errorf("SaveCount = %d, want 3", output.Session.SaveCount)
	}
	if output.Session.PrimaryActivity != diff.ActivityExploring {
		t.Errorf("PrimaryActivity = %s, want exploring", output.Session.PrimaryActivity)
	}
}

func TestStats(t *testing.T) {
	env := testEnv(t)

	output, err := Stats(env)
	if err != nil {
		t.Fatalf("Stats failed: %v", err)
	}
	if output.Stats != nil {
		t.Errorf("Stats = %+v, want nil with no saves", output.Stats)
	}
	if output.ArchivedSaves != 0 {
		t.Errorf("ArchivedSaves = %d, want 0", output.ArchivedSaves)
	}

	// Seed a record with a catch event.
	rec := history.Record{
		Timestamp: time.Date(2026, 8, 29, 10, 0, 0, 0, time.UTC).Format(time.RFC3339Nano),
		FilePath:  "/saves/Level.sav",
		SaveType:  diff.SaveManual,
		Events: []diff.Summary{
			{Type: diff.TypeCreatureCaught, Category: diff.CategoryCreature, Message: "Caught Foxparks Lv.12 (IVs: 80/70/60 = 210)", Priority: diff.PriorityHigh},
		},
		InferredActivity: diff.ActivityCatching,
	}
	if err := env.History.Append(history.SaveEvent{Record: rec}); err != nil {
		t.Fatalf("Append failed: %v", err)
	}
	if _, err := archive.Insert(env.DB, rec); err != nil {
		t.Fatalf("Insert failed: %v", err)
	}

	output, err = Stats(env)
	if err != nil {
		t.Fatalf("Stats failed: %v", err)
	}
	if output.Stats == nil {
		t.Fatal("expected stats")
	}
	if output.Stats.TotalSaves != 1 {
		t.Errorf("TotalSaves = %d, want 1", output.Stats.TotalSaves)
	}
	if output.Stats.CreaturesCaught != 1 {
		t.Errorf("CreaturesCaught = %d, want 1", output.Stats.CreaturesCaught)
	}
	if output.ArchivedSaves != 1 {
		t.Errorf("ArchivedSaves = %d, want 1", output.ArchivedSaves)
	}
}

func TestTrends(t *testing.T) {
	env := testEnv(t)

	output, err := Trends(env)
	if err != nil {
		t.Fatalf("Trends failed: %v", err)
	}
	if len(output.Trends) != 1 || output.Trends[0] != "Not enough data yet to detect trends" {
		t.Errorf("Trends = %v, want the not-enough-data message", output.Trends)
	}

	seedRecords(t, env, 6)
	output, err = Trends(env)
	if err != nil {
		t.Fatalf("Trends failed: %v", err)
	}
	found := false
	for _, trend := range output.Trends {
		if trend == "You've been mostly exploring lately (6/10 saves)" {
			found = true
		}
	}
	if !found {
		t.Errorf("Trends = %v, want dominant exploring trend", output.Trends)
	}
}
