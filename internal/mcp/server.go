// Package mcp exposes a read-only MCP surface over the workout engine so
// assistants can query the catalogue, 1RM ledger, and training history.
package mcp

import (
	"log/slog"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/meltforce/ironlog/internal/session"
)

// New creates an MCP server with all tools and resources registered.
func New(mgr *session.Manager, version string, log *slog.Logger) *server.MCPServer {
	s := server.NewMCPServer("IronLog", version,
		server.WithToolCapabilities(false),
		server.WithResourceCapabilities(false, false),
		server.WithInstructions("IronLog workout tracking server. Query the exercise catalogue, one-rep-max history, personal bests, session history, and today's training stats. All data is local to this device."),
	)

	h := &handlers{mgr: mgr, log: log}

	s.AddTools(
		server.ServerTool{Tool: toolListExercises, Handler: h.listExercises},
		server.ServerTool{Tool: toolGetOneRepMaxHistory, Handler: h.getOneRepMaxHistory},
		server.ServerTool{Tool: toolGetPersonalBest, Handler: h.getPersonalBest},
		server.ServerTool{Tool: toolGetSessions, Handler: h.getSessions},
		server.ServerTool{Tool: toolGetTodayStats, Handler: h.getTodayStats},
	)

	s.AddResources(
		server.ServerResource{Resource: resExerciseCatalog, Handler: h.exerciseCatalog},
		server.ServerResource{Resource: resTodaySummary, Handler: h.todaySummary},
		server.ServerResource{Resource: resRecentSessions, Handler: h.recentSessions},
	)

	return s
}

// handlers holds dependencies for MCP tool/resource handlers.
type handlers struct {
	mgr *session.Manager
	log *slog.Logger
}

// --- Resource definitions ---

var resExerciseCatalog = mcp.NewResource(
	"ironlog://exercise_catalog",
	"Exercise Catalog",
	mcp.WithResourceDescription("All exercises grouped by muscle group"),
	mcp.WithMIMEType("application/json"),
)

var resTodaySummary = mcp.NewResource(
	"ironlog://today_summary",
	"Today Summary",
	mcp.WithResourceDescription("Today's training stats: sessions, sets, lifted volume, calories"),
	mcp.WithMIMEType("application/json"),
)

var resRecentSessions = mcp.NewResource(
	"ironlog://recent_sessions",
	"Recent Sessions",
	mcp.WithResourceDescription("The ten most recent workout sessions with their sets"),
	mcp.WithMIMEType("application/json"),
)
