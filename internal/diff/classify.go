package diff

// SaveType classifies a save's cadence.
type SaveType string

const (
	SaveAutosave SaveType = "autosave"
	SaveManual   SaveType = "manual"
	SaveUnknown  SaveType = "unknown"
)

// Cadence windows in seconds. The game's autosave interval defaults to
// ten minutes; the autosave window allows two minutes of drift.
const (
	autosaveWindowMin = 540
	autosaveWindowMax = 720
	manualWindowMax   = 120
)

// ClassifySaveType classifies a save by the elapsed seconds since the
// previous one. Zero or negative elapsed means a first or unplaceable
// save. Short gaps read as a deliberate save after a notable moment; gaps
// beyond the autosave window are too long for the cadence and also read
// as deliberate. The stretch between the manual and autosave windows is
// genuinely ambiguous.
func ClassifySaveType(elapsedSeconds float64) SaveType {
	if elapsedSeconds <= 0 {
		return SaveUnknown
	}
	if elapsedSeconds >= autosaveWindowMin && elapsedSeconds <= autosaveWindowMax {
		return SaveAutosave
	}
	if elapsedSeconds < manualWindowMax {
		return SaveManual
	}
	if elapsedSeconds > autosaveWindowMax {
		return SaveManual
	}
	return SaveUnknown
}

// Activity labels what the player was likely doing between two saves.
type Activity string

const (
	ActivityIdle      Activity = "idle"
	ActivityCatching  Activity = "catching"
	ActivityCombat    Activity = "combat"
	ActivityBuilding  Activity = "building"
	ActivityManaging  Activity = "managing"
	ActivityExploring Activity = "exploring"
)

// InferActivity infers the dominant activity from the event mix of one
// save. The rules form an ordered decision table; earlier rules win when
// several match, so the order is load-bearing and must not be rearranged.
func InferActivity(events []Summary) Activity {
	if len(events) == 0 {
		return ActivityIdle
	}

	var catches, releases, creatureLevels, playerLevels, baseEvents int
	for _, e := range events {
		switch e.Type {
		case TypeCreatureCaught:
			catches++
		case TypeCreatureReleased:
			releases++
		case TypeCreatureLeveled:
			creatureLevels++
		case TypePlayerLeveled:
			playerLevels++
		case TypeBaseCreated:
			baseEvents++
		}
	}

	switch {
	case catches >= 2:
		return ActivityCatching
	case creatureLevels >= 3 || playerLevels >= 1:
		return ActivityCombat
	case baseEvents >= 1:
		return ActivityBuilding
	case catches == 1 && releases == 0:
		return ActivityCatching
	case creatureLevels >= 1:
		return ActivityCombat
	case releases >= 1 && catches == 0:
		return ActivityManaging
	}

	return ActivityExploring
}
