package mcp

import "github.com/mark3labs/mcp-go/mcp"

var observeToolDef = mcp.NewTool(
	"save_observe",
	mcp.WithDescription("Ingest one parsed world-state file: diff it against the previous snapshot, record the save event, and update the baseline"),
	mcp.WithString("state_path",
		mcp.Required(),
		mcp.Description("Path to the world-state JSON produced by the save parser"),
	),
)

var diffToolDef = mcp.NewTool(
	"save_diff",
	mcp.WithDescription("Diff two snapshot files without recording anything"),
	mcp.WithString("new_path",
		mcp.Required(),
		mcp.Description("Path to the newer snapshot JSON file"),
	),
	mcp.WithString("old_path",
		mcp.Required(),
		mcp.Description("Path to the older snapshot JSON file"),
	),
)

var recentToolDef = mcp.NewTool(
	"save_recent",
	mcp.WithDescription("List the most recent save events, oldest first"),
	mcp.WithNumber("limit",
		mcp.Description("Maximum events to return (default 10, max 100)"),
	),
	mcp.WithBoolean("all",
		mcp.Description("Read the full archive instead of the rolling log"),
	),
)

var sessionToolDef = mcp.NewTool(
	"save_session",
	mcp.WithDescription("Summarize the most recent play session"),
)

var statsToolDef = mcp.NewTool(
	"save_stats",
	mcp.WithDescription("Report event totals and save patterns across the retained history"),
)

var trendsToolDef = mcp.NewTool(
	"save_trends",
	mcp.WithDescription("Report heuristic trend observations over the recent history window"),
)

var reportToolDef = mcp.NewTool(
	"save_report",
	mcp.WithDescription("Render an observation report into the reports directory"),
	mcp.WithString("format",
		mcp.Description("Report format: markdown (default) or html"),
	),
	mcp.WithNumber("limit",
		mcp.Description("Recent events included in the report (default 10, max 100)"),
	),
)
