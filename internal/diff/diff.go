package diff

import (
	"fmt"
	"sort"

	"palwatch/internal/world"
)

// GoodIVThreshold is the summed IV roll at or above which a catch is
// treated as high priority.
const GoodIVThreshold = 200

// CountShiftThreshold is the minimum absolute creature-count change that
// produces an aggregate summary event.
const CountShiftThreshold = 5

// Diff compares two snapshots and returns the detected events, stable
// sorted by ascending priority. It is pure and deterministic: entities
// are matched by identity key only (creature instance id, player uid),
// and scan order follows the new snapshot's list order within each phase.
// Creatures without an instance id cannot be matched and only show up in
// the aggregate count event.
func Diff(old, new *world.Snapshot) []Event {
	var events []Event

	oldCreatures := creatureIndex(old.Creatures)
	newCreatures := creatureIndex(new.Creatures)
	oldPlayers := playerIndex(old.Players)
	newPlayers := playerIndex(new.Players)

	// New creatures (caught)
	for _, c := range new.Creatures {
		if c.InstanceID == "" {
			continue
		}
		if _, ok := oldCreatures[c.InstanceID]; ok {
			continue
		}
		priority := PriorityMedium
		if c.IVTotal() >= GoodIVThreshold {
			priority = PriorityHigh
		}
		events = append(events, Event{
			Type:     TypeCreatureCaught,
			Category: CategoryCreature,
			Data:     c,
			Priority: priority,
			Message:  fmt.Sprintf("Caught %s Lv.%d (IVs: %d/%d/%d = %d)", c.Species, c.Level, c.HPIV, c.DefIV, c.AtkIV, c.IVTotal()),
		})
	}

	// Removed creatures (released or lost)
	for _, c := range old.Creatures {
		if c.InstanceID == "" {
			continue
		}
		if _, ok := newCreatures[c.InstanceID]; ok {
			continue
		}
		events = append(events, Event{
			Type:     TypeCreatureReleased,
			Category: CategoryCreature,
			Data:     c,
			Priority: PriorityMedium,
			Message:  fmt.Sprintf("Released/Lost %s Lv.%d", c.Species, c.Level),
		})
	}

	// Creature level ups. Decreases are not meaningful in this domain and
	// are ignored, not reported.
	for _, c := range new.Creatures {
		if c.InstanceID == "" {
			continue
		}
		prev, ok := oldCreatures[c.InstanceID]
		if !ok || c.Level <= prev.Level {
			continue
		}
		events = append(events, Event{
			Type:     TypeCreatureLeveled,
			Category: CategoryCreature,
			Data:     CreatureChange{Old: prev, New: c},
			Priority: PriorityLow,
			Message:  fmt.Sprintf("%s leveled up: %d -> %d", c.Species, prev.Level, c.Level),
		})
	}

	// Players joined
	for _, p := range new.Players {
		if p.UID == "" {
			continue
		}
		if _, ok := oldPlayers[p.UID]; ok {
			continue
		}
		events = append(events, Event{
			Type:     TypePlayerJoined,
			Category: CategoryPlayer,
			Data:     p,
			Priority: PriorityHigh,
			Message:  fmt.Sprintf("%s joined the world (Lv.%d)", p.Name, p.Level),
		})
	}

	// Players left
	for _, p := range old.Players {
		if p.UID == "" {
			continue
		}
		if _, ok := newPlayers[p.UID]; ok {
			continue
		}
		events = append(events, Event{
			Type:     TypePlayerLeft,
			Category: CategoryPlayer,
			Data:     p,
			Priority: PriorityHigh,
			Message:  fmt.Sprintf("%s left the world", p.Name),
		})
	}

	// Player level ups
	for _, p := range new.Players {
		if p.UID == "" {
			continue
		}
		prev, ok := oldPlayers[p.UID]
		if !ok || p.Level <= prev.Level {
			continue
		}
		events = append(events, Event{
			Type:     TypePlayerLeveled,
			Category: CategoryPlayer,
			Data:     PlayerChange{Old: prev, New: p},
			Priority: PriorityMedium,
			Message:  fmt.Sprintf("%s leveled up: %d -> %d", p.Name, prev.Level, p.Level),
		})
	}

	// New bases. Bases have no stable identity, so only the count is
	// compared and a single summary event is emitted.
	if len(new.Bases) > len(old.Bases) {
		events = append(events, Event{
			Type:     TypeBaseCreated,
			Category: CategoryBase,
			Data:     BaseCount{Count: len(new.Bases)},
			Priority: PriorityHigh,
			Message:  fmt.Sprintf("New base established! Total bases: %d", len(new.Bases)),
		})
	}

	// Aggregate count shift, a catch-all for churn among unmatchable or
	// despawned entries.
	delta := new.CreatureCount - old.CreatureCount
	if abs(delta) >= CountShiftThreshold {
		events = append(events, Event{
			Type:     TypeCreatureCountChange,
			Category: CategoryWorld,
			Data:     CountChange{Old: old.CreatureCount, New: new.CreatureCount, Delta: delta},
			Priority: PriorityLow,
			Message:  fmt.Sprintf("Creature count: %d -> %d (%+d)", old.CreatureCount, new.CreatureCount, delta),
		})
	}

	sort.SliceStable(events, func(i, j int) bool {
		return events[i].Priority < events[j].Priority
	})

	return events
}

// Summarize projects a slice of events to their persisted form.
func Summarize(events []Event) []Summary {
	summaries := make([]Summary, len(events))
	for i, e := range events {
		summaries[i] = e.Summarize()
	}
	return summaries
}

func creatureIndex(creatures []world.Creature) map[string]world.Creature {
	m := make(map[string]world.Creature, len(creatures))
	for _, c := range creatures {
		if c.InstanceID != "" {
			m[c.InstanceID] = c
		}
	}
	return m
}

func playerIndex(players []world.Player) map[string]world.Player {
	m := make(map[string]world.Player, len(players))
	for _, p := range players {
		if p.UID != "" {
			m[p.UID] = p
		}
	}
	return m
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
