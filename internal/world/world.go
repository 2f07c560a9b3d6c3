// Package world holds the point-in-time snapshot model of an observed
// game world: players, creatures, and bases extracted from one save.
package world

import (
	"strings"
	"time"
)

// MaxIV is the game-defined cap for a single individual-value stat.
const MaxIV = 100

// TimestampFormat is the wire format for snapshot timestamps.
const TimestampFormat = time.RFC3339Nano

// Player is one human player present in the world.
type Player struct {
	UID    string `json:"uid"`
	Name   string `json:"name"`
	Level  int    `json:"level"`
	IsHost bool   `json:"is_host"`
}

// Creature is one captured or wild creature instance. Identity is the
// instance id; an empty id means the entry cannot be matched across
// snapshots and only contributes to aggregate counts.
type Creature struct {
	InstanceID string   `json:"instance_id"`
	Species    string   `json:"species"`
	Level      int      `json:"level"`
	Exp        int      `json:"exp"`
	HPIV       int      `json:"hp_iv"`
	DefIV      int      `json:"def_iv"`
	AtkIV      int      `json:"atk_iv"`
	Gender     string   `json:"gender"`
	Passives   []string `json:"passives"`
	OwnerUID   string   `json:"owner_uid"`
	Nickname   *string  `json:"nickname,omitempty"`
}

// IVTotal returns the summed individual-value roll used to judge quality.
func (c Creature) IVTotal() int {
	return c.HPIV + c.DefIV + c.AtkIV
}

// Base is one built base. The save format exposes no stable instance key,
// so bases are identified by list position and diffed by count only.
type Base struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Snapshot is an immutable point-in-time record of world state. It is
// created once per observed save and never mutated.
type Snapshot struct {
	Timestamp     string     `json:"timestamp"`
	FilePath      string     `json:"file_path"`
	Players       []Player   `json:"players"`
	Creatures     []Creature `json:"creatures"`
	Bases         []Base     `json:"bases"`
	CreatureCount int        `json:"creature_count"`
	GameTime      *int64     `json:"game_time,omitempty"`
	WorldID       *string    `json:"world_id,omitempty"`
	HostPlayer    *string    `json:"host_player,omitempty"`
}

// Time parses the snapshot timestamp.
func (s *Snapshot) Time() (time.Time, error) {
	return ParseTimestamp(s.Timestamp)
}

// ParseTimestamp parses an ISO-8601 timestamp. Accepts both zoned
// (RFC 3339) and naive local timestamps, since upstream extractors have
// produced both.
func ParseTimestamp(ts string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339Nano, ts)
	if err == nil {
		return t, nil
	}
	return time.ParseInLocation("2006-01-02T15:04:05.999999999", ts, time.Local)
}

// IsHostUID reports whether a player UID marks the world host. Hosts
// carry the fixed UID 00000000-0000-0000-0000-000000000001.
func IsHostUID(uid string) bool {
	if uid == "" {
		return false
	}
	clean := strings.ReplaceAll(strings.ToLower(uid), "-", "")
	return clean == "00000000000000000000000000000001"
}

// WorldIDFromPath extracts the world id from a save path following the
// SaveGames/<UserID>/<WorldID>/Level.sav layout. Returns empty string if
// the path does not match.
func WorldIDFromPath(path string) string {
	if path == "" {
		return ""
	}
	parts := strings.Split(strings.ReplaceAll(path, "\\", "/"), "/")
	for i, part := range parts {
		if part == "Level.sav" && i > 0 {
			return parts[i-1]
		}
	}
	return ""
}
