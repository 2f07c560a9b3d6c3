package world

import (
	"encoding/json"
	"os"
	"path/filepath"
	"reflect"
	"testing"
	"time"
)

func TestIsHostUID(t *testing.T) {
	tests := []struct {
		name string
		uid  string
		want bool
	}{
		{"host uid with dashes", "00000000-0000-0000-0000-000000000001", true},
		{"host uid uppercase", "00000000-0000-0000-0000-000000000001", true},
		{"host uid without dashes", "00000000000000000000000000000001", true},
		{"regular uid", "a1b2c3d4-0000-0000-0000-00000000beef", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsHostUID(tt.uid); got != tt.want {
				t.Errorf("IsHostUID(%q) = %v, want %v", tt.uid, got, tt.want)
			}
		})
	}
}

func TestWorldIDFromPath(t *testing.T) {
	tests := []struct {
		name string
		path string
		want string
	}{
		{"unix path", "/saves/SaveGames/7656119/4A1F22B0/Level.sav", "4A1F22B0"},
		{"windows path", `C:\Pal\Saved\SaveGames\7656119\4A1F22B0\Level.sav`, "4A1F22B0"},
		{"no level segment", "/saves/backup.sav", ""},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := WorldIDFromPath(tt.path); got != tt.want {
				t.Errorf("WorldIDFromPath(%q) = %q, want %q", tt.path, got, tt.want)
			}
		})
	}
}

func TestParseTimestamp(t *testing.T) {
	// RFC 3339 with zone
	if _, err := ParseTimestamp("2026-08-29T19:04:05.123Z"); err != nil {
		t.Errorf("ParseTimestamp(RFC3339) error = %v", err)
	}
	// Naive local timestamp (python isoformat style)
	if _, err := ParseTimestamp("2026-08-29T19:04:05.123456"); err != nil {
		t.Errorf("ParseTimestamp(naive) error = %v", err)
	}
	if _, err := ParseTimestamp("not a timestamp"); err == nil {
		t.Error("ParseTimestamp should fail on garbage input")
	}
}

func TestCreature_IVTotal(t *testing.T) {
	c := Creature{HPIV: 80, DefIV: 70, AtkIV: 90}
	if got := c.IVTotal(); got != 240 {
		t.Errorf("IVTotal() = %d, want 240", got)
	}
}

func TestSnapshot_RoundTrip(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "snapshot.json")

	gameTime := int64(638000000000)
	worldID := "4A1F22B0"
	host := "Alice"
	nickname := "Sparky"

	s := &Snapshot{
		Timestamp: time.Now().Format(TimestampFormat),
		FilePath:  "/saves/Level.sav",
		Players: []Player{
			{UID: "00000000-0000-0000-0000-000000000001", Name: "Alice", Level: 32, IsHost: true},
		},
		Creatures: []Creature{
			{
				InstanceID: "c-1", Species: "Foxparks", Level: 12, Exp: 3400,
				HPIV: 70, DefIV: 55, AtkIV: 81, Gender: "Female",
				Passives: []string{"Pyromaniac"}, OwnerUID: "00000000-0000-0000-0000-000000000001",
				Nickname: &nickname,
			},
		},
		Bases:         []Base{{ID: "0", Name: "Base 1"}},
		CreatureCount: 1,
		GameTime:      &gameTime,
		WorldID:       &worldID,
		HostPlayer:    &host,
	}

	if err := SaveSnapshot(s, path); err != nil {
		t.Fatalf("SaveSnapshot() error = %v", err)
	}

	loaded, err := LoadSnapshot(path)
	if err != nil {
		t.Fatalf("LoadSnapshot() error = %v", err)
	}

	if !reflect.DeepEqual(s, loaded) {
		t.Errorf("round trip mismatch:\n got %+v\nwant %+v", loaded, s)
	}
}

func TestLoadSnapshot_IgnoresUnknownFields(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "snapshot.json")

	raw := map[string]any{
		"timestamp":      "2026-08-29T10:00:00Z",
		"file_path":      "/saves/Level.sav",
		"players":        []any{},
		"creatures":      []any{},
		"bases":          []any{},
		"creature_count": 0,
		"future_field":   "ignored",
	}
	data, _ := json.Marshal(raw)
	if err := os.WriteFile(path, data, 0600); err != nil {
		t.Fatal(err)
	}

	s, err := LoadSnapshot(path)
	if err != nil {
		t.Fatalf("LoadSnapshot() error = %v", err)
	}
	if s.FilePath != "/saves/Level.sav" {
		t.Errorf("FilePath = %q", s.FilePath)
	}
}
