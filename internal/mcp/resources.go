package mcp

import (
	"context"
	"encoding/json"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
)

func (h *handlers) exerciseCatalog(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	grouped, err := h.mgr.ExercisesByMuscleGroup(ctx)
	if err != nil {
		return nil, err
	}
	return jsonContents(req.Params.URI, grouped)
}

func (h *handlers) todaySummary(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	stats, err := h.mgr.TodayStats(ctx)
	if err != nil {
		return nil, err
	}

	summary := map[string]any{
		"date":  time.Now().Format("2006-01-02"),
		"stats": stats,
	}
	if active := h.mgr.Active(); active != nil {
		summary["active_session"] = active
	}
	return jsonContents(req.Params.URI, summary)
}

func (h *handlers) recentSessions(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	sessions, err := h.mgr.Sessions(ctx)
	if err != nil {
		return nil, err
	}
	if len(sessions) > 10 {
		sessions = sessions[:10]
	}
	return jsonContents(req.Params.URI, sessions)
}

func jsonContents(uri string, v any) ([]mcp.ResourceContents, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		},
	}, nil
}
