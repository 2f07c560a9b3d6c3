package mcp

import (
	"context"
	"encoding/json"

	"github.com/mark3labs/mcp-go/mcp"

	"palwatch/internal/config"
	"palwatch/internal/errors"
	"palwatch/internal/ops"
)

// Handlers holds dependencies for MCP tool handlers.
type Handlers struct {
	env *ops.Env
	cfg *config.Config
}

// NewHandlers creates a new Handlers instance.
func NewHandlers(env *ops.Env, cfg *config.Config) *Handlers {
	return &Handlers{env: env, cfg: cfg}
}

// Request types for each tool

// ObserveRequest represents the arguments for save_observe.
type ObserveRequest struct {
	StatePath string `json:"state_path"`
}

// DiffRequest represents the arguments for save_diff.
type DiffRequest struct {
	NewPath string `json:"new_path"`
	OldPath string `json:"old_path"`
}

// RecentRequest represents the arguments for save_recent.
type RecentRequest struct {
	Limit int  `json:"limit,omitempty"`
	All   bool `json:"all,omitempty"`
}

// ReportRequest represents the arguments for save_report.
type ReportRequest struct {
	Format string `json:"format,omitempty"`
	Limit  int    `json:"limit,omitempty"`
}

// Handler implementations

// HandleObserve handles the save_observe tool call.
func (h *Handlers) HandleObserve(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	input, err := decode[ObserveRequest](req)
	if err != nil {
		return errorResult(errors.NewInvalidRequest(err.Error())), nil
	}

	result, err := ops.Observe(h.env, ops.ObserveInput{StatePath: input.StatePath})
	if err != nil {
		return errorResult(err), nil
	}
	return successResult(result)
}

// HandleDiff handles the save_diff tool call.
func (h *Handlers) HandleDiff(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	input, err := decode[DiffRequest](req)
	if err != nil {
		return errorResult(errors.NewInvalidRequest(err.Error())), nil
	}

	result, err := ops.DiffSnapshots(ops.DiffInput{NewPath: input.NewPath, OldPath: input.OldPath})
	if err != nil {
		return errorResult(err), nil
	}
	return successResult(result)
}

// HandleRecent handles the save_recent tool call.
func (h *Handlers) HandleRecent(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	input, err := decode[RecentRequest](req)
	if err != nil {
		return errorResult(errors.NewInvalidRequest(err.Error())), nil
	}

	result, err := ops.Recent(h.env, ops.RecentInput{Limit: input.Limit, All: input.All})
	if err != nil {
		return errorResult(err), nil
	}
	return successResult(result)
}

// HandleSession handles the save_session tool call.
func (h *Handlers) HandleSession(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	result, err := ops.Session(h.env)
	if err != nil {
		return errorResult(err), nil
	}
	return successResult(result)
}

// HandleStats handles the save_stats tool call.
func (h *Handlers) HandleStats(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	result, err := ops.Stats(h.env)
	if err != nil {
		return errorResult(err), nil
	}
	return successResult(result)
}

// HandleTrends handles the save_trends tool call.
func (h *Handlers) HandleTrends(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	result, err := ops.Trends(h.env)
	if err != nil {
		return errorResult(err), nil
	}
	return successResult(result)
}

// HandleReport handles the save_report tool call.
func (h *Handlers) HandleReport(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	input, err := decode[ReportRequest](req)
	if err != nil {
		return errorResult(errors.NewInvalidRequest(err.Error())), nil
	}

	result, err := ops.Report(h.env, ops.ReportInput{
		Format: ops.ReportFormat(input.Format),
		Limit:  input.Limit,
	})
	if err != nil {
		return errorResult(err), nil
	}
	return successResult(result)
}

// errorResult builds an error tool result from an error.
func errorResult(err error) *mcp.CallToolResult {
	var payload map[string]any

	if wErr, ok := err.(*errors.WatchError); ok {
		errorObj := map[string]any{
			"code":    wErr.Code,
			"message": wErr.Message,
			"status":  wErr.Status,
		}
		// Only include details for non-internal errors to avoid leaking
		// sensitive info like file paths or SQL errors
		if wErr.Code != errors.ErrInternal && wErr.Details != nil {
			errorObj["details"] = wErr.Details
		}
		payload = map[string]any{"error": errorObj}
	} else {
		payload = map[string]any{
			"error": map[string]any{
				"code":    "INTERNAL",
				"message": "an internal error occurred",
				"status":  500,
			},
		}
	}

	content, _ := json.Marshal(payload)
	return &mcp.CallToolResult{
		Content: []mcp.Content{mcp.TextContent{Type: "text", Text: string(content)}},
		IsError: true,
	}
}

// successResult builds a success tool result with JSON content.
func successResult(data any) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultJSON(data)
}
