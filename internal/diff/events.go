// Package diff derives discrete events from two world snapshots and
// classifies save cadence and player activity.
package diff

import "palwatch/internal/world"

// Category groups events by the entity kind they describe.
type Category string

const (
	CategoryCreature Category = "creature"
	CategoryPlayer   Category = "player"
	CategoryBase     Category = "base"
	CategoryWorld    Category = "world"
)

// Type identifies a detected change.
type Type string

const (
	TypeCreatureCaught      Type = "creature_caught"
	TypeCreatureReleased    Type = "creature_released"
	TypeCreatureLeveled     Type = "creature_leveled"
	TypePlayerJoined        Type = "player_joined"
	TypePlayerLeft          Type = "player_left"
	TypePlayerLeveled       Type = "player_leveled"
	TypeBaseCreated         Type = "base_created"
	TypeCreatureCountChange Type = "creature_count_change"
)

// Event priorities. Lower is more notable.
const (
	PriorityHigh   = 1
	PriorityMedium = 2
	PriorityLow    = 3
)

// Event is a single detected change between two snapshots. Data carries a
// type-specific payload (CreatureChange, PlayerChange, BaseCount, or
// CountChange) and is dropped when the event is projected to a Summary.
type Event struct {
	Type     Type     `json:"type"`
	Category Category `json:"category"`
	Data     any      `json:"data,omitempty"`
	Priority int      `json:"priority"`
	Message  string   `json:"message"`
}

// Summarize projects the event to its lightweight persisted form.
func (e Event) Summarize() Summary {
	return Summary{
		Type:     e.Type,
		Category: e.Category,
		Message:  e.Message,
		Priority: e.Priority,
	}
}

// Summary is the compact event projection kept in persisted history.
type Summary struct {
	Type     Type     `json:"type"`
	Category Category `json:"category"`
	Message  string   `json:"message"`
	Priority int      `json:"priority"`
}

// CreatureChange is the payload for creature level-up events.
type CreatureChange struct {
	Old world.Creature `json:"old"`
	New world.Creature `json:"new"`
}

// PlayerChange is the payload for player level-up events.
type PlayerChange struct {
	Old world.Player `json:"old"`
	New world.Player `json:"new"`
}

// BaseCount is the payload for base creation summary events.
type BaseCount struct {
	Count int `json:"count"`
}

// CountChange is the payload for aggregate creature-count shift events.
type CountChange struct {
	Old   int `json:"old"`
	New   int `json:"new"`
	Delta int `json:"delta"`
}
