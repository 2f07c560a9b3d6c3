package world

import (
	"fmt"
	"time"
)

// RawWorldState is the simplified shape handed over by the external save
// parser. It is the single loosely-typed boundary: everything downstream
// works on Snapshot.
type RawWorldState struct {
	FilePath      string        `json:"file_path"`
	Players       []RawPlayer   `json:"players"`
	Creatures     []RawCreature `json:"creatures"`
	BaseCount     int           `json:"base_count"`
	CreatureCount int           `json:"creature_count"`
	GameTime      *int64        `json:"game_time,omitempty"`
	WorldID       *string       `json:"world_id,omitempty"`
	HostPlayer    *string       `json:"host_player,omitempty"`
}

// RawPlayer mirrors the parser's per-player fields.
type RawPlayer struct {
	UID   string `json:"uid"`
	Name  string `json:"name"`
	Level int    `json:"level"`
}

// RawCreature mirrors the parser's per-creature fields.
type RawCreature struct {
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

// FromRaw validates and converts a RawWorldState into a Snapshot taken at
// the given time. Corrupted creature entries (no species) are skipped,
// IVs and levels are clamped to their game bounds, bases are synthesized
// from the raw base count, and the host player is derived from UIDs when
// the parser did not name one.
func FromRaw(raw RawWorldState, observedAt time.Time) Snapshot {
	players := make([]Player, 0, len(raw.Players))
	for _, p := range raw.Players {
		name := p.Name
		if name == "" {
			name = "Unknown"
		}
		players = append(players, Player{
			UID:    p.UID,
			Name:   name,
			Level:  clampMin(p.Level, 0),
			IsHost: IsHostUID(p.UID),
		})
	}

	creatures := make([]Creature, 0, len(raw.Creatures))
	for _, c := range raw.Creatures {
		if c.Species == "" || c.Species == "Unknown" {
			continue
		}
		gender := c.Gender
		if gender == "" {
			gender = "Unknown"
		}
		creatures = append(creatures, Creature{
			InstanceID: c.InstanceID,
			Species:    c.Species,
			Level:      clampMin(c.Level, 0),
			Exp:        clampMin(c.Exp, 0),
			HPIV:       clampIV(c.HPIV),
			DefIV:      clampIV(c.DefIV),
			AtkIV:      clampIV(c.AtkIV),
			Gender:     gender,
			Passives:   c.Passives,
			OwnerUID:   c.OwnerUID,
			Nickname:   c.Nickname,
		})
	}

	bases := make([]Base, 0, raw.BaseCount)
	for i := 0; i < raw.BaseCount; i++ {
		bases = append(bases, Base{
			ID:   fmt.Sprintf("%d", i),
			Name: fmt.Sprintf("Base %d", i+1),
		})
	}

	worldID := raw.WorldID
	if worldID == nil {
		if id := WorldIDFromPath(raw.FilePath); id != "" {
			worldID = &id
		}
	}

	hostPlayer := raw.HostPlayer
	if hostPlayer == nil {
		for _, p := range players {
			if p.IsHost {
				name := p.Name
				hostPlayer = &name
				break
			}
		}
	}

	return Snapshot{
		Timestamp:     observedAt.Format(TimestampFormat),
		FilePath:      raw.FilePath,
		Players:       players,
		Creatures:     creatures,
		Bases:         bases,
		CreatureCount: len(creatures),
		GameTime:      raw.GameTime,
		WorldID:       worldID,
		HostPlayer:    hostPlayer,
	}
}

func clampMin(v, min int) int {
	if v < min {
		return min
	}
	return v
}

func clampIV(v int) int {
	if v < 0 {
		return 0
	}
	if v > MaxIV {
		return MaxIV
	}
	return v
}
