package ops

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"palwatch/internal/diff"
)

// TestFullWorkflow exercises the complete observation lifecycle:
// observe → observe → recent → session → stats → trends → report
func TestFullWorkflow(t *testing.T) {
	env := testEnv(t)
	stateDir := t.TempDir()

	// 1. First observation establishes the baseline
	first := writeJSON(t, stateDir, "state1.json", rawState(
		rawCreature("c1", "Lamball", 5, 50, 50, 50),
	))
	obs1, err := Observe(env, ObserveInput{StatePath: first})
	require.NoError(t, err)
	require.True(t, obs1.FirstSave)
	require.Empty(t, obs1.Record.Events)
	require.NotEmpty(t, obs1.ArchiveID)

	// 2. Second observation detects a catch and a level up
	second := writeJSON(t, stateDir, "state2.json", rawState(
		rawCreature("c1", "Lamball", 8, 50, 50, 50),
		rawCreature("c2", "Foxparks", 12, 80, 70, 60),
	))
	obs2, err := Observe(env, ObserveInput{StatePath: second})
	require.NoError(t, err)
	require.False(t, obs2.FirstSave)
	require.Len(t, obs2.Record.Events, 2)
	require.Equal(t, diff.TypeCreatureCaught, obs2.Record.Events[0].Type)
	require.Equal(t, diff.TypeCreatureLeveled, obs2.Record.Events[1].Type)
	require.Equal(t, diff.ActivityCatching, obs2.Record.InferredActivity)

	// 3. Recent shows both saves, oldest first
	recentOut, err := Recent(env, RecentInput{})
	require.NoError(t, err)
	require.Len(t, recentOut.Events, 2)
	require.Equal(t, obs1.Record.Timestamp, recentOut.Events[0].Timestamp)
	require.Equal(t, obs2.Record.Timestamp, recentOut.Events[1].Timestamp)

	// The archive agrees
	archivedOut, err := Recent(env, RecentInput{All: true})
	require.NoError(t, err)
	require.Equal(t, 2, archivedOut.Total)

	// 4. Session covers both saves
	sessionOut, err := Session(env)
	require.NoError(t, err)
	require.NotNil(t, sessionOut.Session)
	require.Equal(t, 2, sessionOut.Session.SaveCount)
	require.Equal(t, 1, sessionOut.Session.CreaturesCaught)
	require.Equal(t, 1, sessionOut.Session.LevelUps)

	// 5. Stats totals match
	statsOut, err := Stats(env)
	require.NoError(t, err)
	require.NotNil(t, statsOut.Stats)
	require.Equal(t, 2, statsOut.Stats.TotalSaves)
	require.Equal(t, 1, statsOut.Stats.CreaturesCaught)
	require.Equal(t, 2, statsOut.ArchivedSaves)

	// 6. Trends: two saves is below the detection floor
	trendsOut, err := Trends(env)
	require.NoError(t, err)
	require.Equal(t, []string{"Not enough data yet to detect trends"}, trendsOut.Trends)

	// 7. Report renders the accumulated state
	reportOut, err := Report(env, ReportInput{})
	require.NoError(t, err)
	require.True(t, strings.HasSuffix(reportOut.Path, ".md"))
}
