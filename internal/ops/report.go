package ops

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/yuin/goldmark"

	"palwatch/internal/diff"
	"palwatch/internal/errors"
)

// ReportFormat selects the report output format.
type ReportFormat string

const (
	ReportMarkdown ReportFormat = "markdown"
	ReportHTML     ReportFormat = "html"
)

// ReportInput contains parameters for the Report operation.
type ReportInput struct {
	Format ReportFormat // default: markdown
	Limit  int          // recent events included, default DefaultRecentLimit
}

// ReportOutput contains the result of the Report operation.
type ReportOutput struct {
	Path   string       `json:"path"`
	Format ReportFormat `json:"format"`
}

// Report renders an observation report (totals, save patterns, latest
// session, trends, recent events) into the reports directory, as
// markdown or as a standalone HTML page.
func Report(env *Env, input ReportInput) (*ReportOutput, error) {
	if input.Format == "" {
		input.Format = ReportMarkdown
	}
	if input.Format != ReportMarkdown && input.Format != ReportHTML {
		return nil, errors.NewInvalidRequest("format must be one of: markdown, html")
	}
	limit := clampLimit(input.Limit)

	now := time.Now()
	md := renderReport(env, limit, now)

	if err := os.MkdirAll(env.ReportsDir(), 0700); err != nil {
		return nil, errors.NewInternal(err)
	}

	name := "report_" + now.Format("20060102_150405")
	var data []byte
	if input.Format == ReportHTML {
		var buf bytes.Buffer
		if err := goldmark.Convert([]byte(md), &buf); err != nil {
			return nil, errors.NewInternal(err)
		}
		data = []byte(htmlPage("Observation Report", buf.String()))
		name += ".html"
	} else {
		data = []byte(md)
		name += ".md"
	}

	path := filepath.Join(env.ReportsDir(), name)
	if err := os.WriteFile(path, data, 0600); err != nil {
		return nil, errors.NewInternal(err)
	}

	return &ReportOutput{Path: path, Format: input.Format}, nil
}

// renderReport assembles the report body as markdown.
func renderReport(env *Env, limit int, now time.Time) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# Observation Report\n\n")
	fmt.Fprintf(&b, "Generated: %s\n\n", now.UTC().Format("2006-01-02 15:04 UTC"))

	b.WriteString("## Totals\n\n")
	if stats := env.History.Stats(); stats != nil {
		fmt.Fprintf(&b, "- Saves observed: %d\n", stats.TotalSaves)
		fmt.Fprintf(&b, "- Creatures caught: %d\n", stats.CreaturesCaught)
		fmt.Fprintf(&b, "- Creatures released: %d\n", stats.CreaturesReleased)
		fmt.Fprintf(&b, "- Level ups: %d\n", stats.LevelUps)
		fmt.Fprintf(&b, "- Bases built: %d\n\n", stats.BasesBuilt)

		b.WriteString("## Save Patterns\n\n")
		p := stats.Patterns
		if p.AvgAutosaveIntervalSeconds > 0 {
			fmt.Fprintf(&b, "- Average autosave interval: %.0fs\n", p.AvgAutosaveIntervalSeconds)
		}
		if p.AvgManualIntervalSeconds > 0 {
			fmt.Fprintf(&b, "- Average manual save interval: %.0fs\n", p.AvgManualIntervalSeconds)
		}
		for _, activity := range activityOrder(p.ActivityDistribution) {
			fmt.Fprintf(&b, "- Activity %s: %d saves\n", activity, p.ActivityDistribution[activity])
		}
		b.WriteString("\n")
	} else {
		b.WriteString("No saves observed yet.\n\n")
	}

	if session := env.History.Session(); session != nil {
		b.WriteString("## Latest Session\n\n")
		fmt.Fprintf(&b, "- From %s to %s (%.1f minutes, %d saves)\n",
			session.StartTime, session.EndTime, session.DurationMinutes, session.SaveCount)
		fmt.Fprintf(&b, "- Primary activity: %s\n", session.PrimaryActivity)
		fmt.Fprintf(&b, "- Caught %d, released %d, %d level ups, %d bases built\n\n",
			session.CreaturesCaught, session.CreaturesReleased, session.LevelUps, session.BasesBuilt)
	}

	b.WriteString("## Trends\n\n")
	for _, trend := range env.History.Trends() {
		fmt.Fprintf(&b, "- %s\n", trend)
	}
	b.WriteString("\n")

	b.WriteString("## Recent Events\n\n")
	recent := env.History.Recent(limit)
	if len(recent) == 0 {
		b.WriteString("None.\n")
	}
	for _, rec := range recent {
		fmt.Fprintf(&b, "### %s (%s, %s)\n\n", rec.Timestamp, rec.SaveType, rec.InferredActivity)
		if len(rec.Events) == 0 {
			b.WriteString("- No changes detected\n")
		}
		for _, ev := range rec.Events {
			fmt.Fprintf(&b, "- %s\n", ev.Message)
		}
		b.WriteString("\n")
	}

	return b.String()
}

// activityOrder returns distribution keys sorted by descending count,
// ties broken alphabetically so the report is deterministic.
func activityOrder(dist map[diff.Activity]int) []diff.Activity {
	keys := make([]diff.Activity, 0, len(dist))
	for k := range dist {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if dist[keys[i]] != dist[keys[j]] {
			return dist[keys[i]] > dist[keys[j]]
		}
		return keys[i] < keys[j]
	})
	return keys
}

// htmlPage wraps rendered markdown in a minimal standalone page.
func htmlPage(title, body string) string {
	return fmt.Sprintf(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>%s</title>
<style>
body { font-family: sans-serif; max-width: 48rem; margin: 2rem auto; padding: 0 1rem; }
h1, h2, h3 { line-height: 1.2; }
</style>
</head>
<body>
%s</body>
</html>
`, title, body)
}
