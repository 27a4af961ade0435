package mcp

import (
	"context"
	"strconv"

	"github.com/mark3labs/mcp-go/mcp"
)

// --- Tool definitions ---

var toolListExercises = mcp.NewTool("list_exercises",
	mcp.WithDescription("List the exercise catalogue: id, name, muscle group, and equipment for every exercise."),
)

var toolGetOneRepMaxHistory = mcp.NewTool("get_one_rep_max_history",
	mcp.WithDescription("Retrieve the full one-rep-max ledger for an exercise, newest first. Each entry notes whether it was formula-estimated or directly observed."),
	mcp.WithString("exercise_id", mcp.Required(), mcp.Description("Exercise id (e.g. 'bench-press')")),
)

var toolGetPersonalBest = mcp.NewTool("get_personal_best",
	mcp.WithDescription("Get the all-time heaviest one-rep-max entry for an exercise."),
	mcp.WithString("exercise_id", mcp.Required(), mcp.Description("Exercise id (e.g. 'deadlift')")),
)

var toolGetSessions = mcp.NewTool("get_sessions",
	mcp.WithDescription("Retrieve workout session history, newest first, with per-set reps, weight, and calories."),
	mcp.WithString("limit", mcp.Description("Maximum number of sessions to return. Defaults to 20.")),
)

var toolGetTodayStats = mcp.NewTool("get_today_stats",
	mcp.WithDescription("Get today's training totals: session count, set count, lifted volume in kg, and calories."),
)

// --- Tool handlers ---

func (h *handlers) listExercises(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	exercises, err := h.mgr.ListExercises(ctx)
	if err != nil {
		h.log.Error("mcp list_exercises", "error", err)
		return mcp.NewToolResultError("query failed: " + err.Error()), nil
	}
	return mcp.NewToolResultJSON(exercises)
}

func (h *handlers) getOneRepMaxHistory(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	exerciseID, err := req.RequireString("exercise_id")
	if err != nil {
		return mcp.NewToolResultError("exercise_id parameter is required"), nil
	}

	history, err := h.mgr.OneRepMaxHistory(ctx, exerciseID)
	if err != nil {
		h.log.Error("mcp get_one_rep_max_history", "error", err)
		return mcp.NewToolResultError("query failed: " + err.Error()), nil
	}
	return mcp.NewToolResultJSON(history)
}

func (h *handlers) getPersonalBest(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	exerciseID, err := req.RequireString("exercise_id")
	if err != nil {
		return mcp.NewToolResultError("exercise_id parameter is required"), nil
	}

	best, err := h.mgr.PersonalBest(ctx, exerciseID)
	if err != nil {
		h.log.Error("mcp get_personal_best", "error", err)
		return mcp.NewToolResultError("query failed: " + err.Error()), nil
	}
	if best == nil {
		return mcp.NewToolResultText("no one-rep max recorded for " + exerciseID), nil
	}
	return mcp.NewToolResultJSON(best)
}

func (h *handlers) getSessions(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	limit := 20
	if l := req.GetString("limit", ""); l != "" {
		if parsed, err := strconv.Atoi(l); err == nil && parsed > 0 {
			limit = parsed
		}
	}

	sessions, err := h.mgr.Sessions(ctx)
	if err != nil {
		h.log.Error("mcp get_sessions", "error", err)
		return mcp.NewToolResultError("query failed: " + err.Error()), nil
	}
	if len(sessions) > limit {
		sessions = sessions[:limit]
	}
	return mcp.NewToolResultJSON(sessions)
}

func (h *handlers) getTodayStats(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	stats, err := h.mgr.TodayStats(ctx)
	if err != nil {
		h.log.Error("mcp get_today_stats", "error", err)
		return mcp.NewToolResultError("query failed: " + err.Error()), nil
	}
	return mcp.NewToolResultJSON(stats)
}
