package mcp

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/oliverhees/reptally/internal/replog"
)

// NewServer builds an MCP server with the rep tracking tools: logging a
// set, extending the catalog, daily totals, today summary, catalog
// listing. Mounted by the main backend at /mcp (internal/server) and
// runnable over stdio via cmd/reptally_mcp.
func NewServer(service *replog.Service) *mcp.Server {
	h := NewHandler(service)
	s := mcp.NewServer(&mcp.Implementation{
		Name:    "reptally",
		Version: "1.0.0",
	}, nil)

	mcp.AddTool(s, &mcp.Tool{
		Name:        "log_exercise",
		Description: "Logs a set of an exercise: exercise_name (e.g. Push-ups) and reps (positive integer). Use when the user reports reps they just did.",
	}, h.LogExerciseTool())

	mcp.AddTool(s, &mcp.Tool{
		Name:        "add_exercise",
		Description: "Adds a new exercise name to the catalog so it can be selected and charted. Fails on empty or duplicate names. Use when the user wants to track a new exercise type.",
	}, h.AddExerciseTool())

	mcp.AddTool(s, &mcp.Tool{
		Name:        "get_daily_totals",
		Description: "Returns per-day summed reps per exercise. Optional: from_date, to_date (YYYY-MM-DD, inclusive) to narrow the range. Use when you need training volume over time.",
	}, h.DailyTotalsTool())

	mcp.AddTool(s, &mcp.Tool{
		Name:        "get_today_summary",
		Description: "Returns the one-line summary of everything logged today (e.g. 'Push-ups: 30, Squats: 20'). Use when the user asks what they did today.",
	}, h.TodaySummaryTool())

	mcp.AddTool(s, &mcp.Tool{
		Name:        "list_exercises",
		Description: "Returns all exercise names in the catalog, in insertion order. Use when you need the list of trackable exercises.",
	}, h.ListExercisesTool())

	return s
}
