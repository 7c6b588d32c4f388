package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/oliverhees/reptally/internal/replog"
)

// Handler handles MCP tool requests and responses: parses input, calls
// the log service, formats the MCP result.
type Handler struct {
	service logService
}

func NewHandler(service logService) *Handler {
	return &Handler{
		service: service,
	}
}

// LogExerciseInput is the input for log_exercise.
type LogExerciseInput struct {
	ExerciseName string `json:"exercise_name" jsonschema:"Name of the exercise (e.g. Push-ups)"`
	Reps         int    `json:"reps" jsonschema:"Number of repetitions done, must be positive"`
}

// LogExerciseTool returns the MCP tool handler for log_exercise.
func (h *Handler) LogExerciseTool() func(context.Context, *mcp.CallToolRequest, LogExerciseInput) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, _ *mcp.CallToolRequest, in LogExerciseInput) (*mcp.CallToolResult, any, error) {
		entry, countToday, err := h.service.LogExercise(ctx, in.ExerciseName, in.Reps)
		if err != nil {
			return &mcp.CallToolResult{
				Content: []mcp.Content{&mcp.TextContent{Text: "Error logging exercise: " + err.Error()}},
				IsError: true,
			}, nil, nil
		}
		return &mcp.CallToolResult{
			Content: []mcp.Content{&mcp.TextContent{Text: fmt.Sprintf(
				"Logged %d reps of %s (set number %d today)",
				entry.Reps, entry.ExerciseName, countToday,
			)}},
		}, nil, nil
	}
}

// AddExerciseInput is the input for add_exercise.
type AddExerciseInput struct {
	ExerciseName string `json:"exercise_name" jsonschema:"Name of the new exercise to add to the catalog"`
}

// AddExerciseTool returns the MCP tool handler for add_exercise.
func (h *Handler) AddExerciseTool() func(context.Context, *mcp.CallToolRequest, AddExerciseInput) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, _ *mcp.CallToolRequest, in AddExerciseInput) (*mcp.CallToolResult, any, error) {
		if err := h.service.AddExercise(ctx, in.ExerciseName); err != nil {
			return &mcp.CallToolResult{
				Content: []mcp.Content{&mcp.TextContent{Text: "Error adding exercise: " + err.Error()}},
				IsError: true,
			}, nil, nil
		}
		return &mcp.CallToolResult{
			Content: []mcp.Content{&mcp.TextContent{Text: "Exercise added to the catalog: " + in.ExerciseName}},
		}, nil, nil
	}
}

// DailyTotalsInput is the input for get_daily_totals.
type DailyTotalsInput struct {
	FromDate string `json:"from_date,omitempty" jsonschema:"Start date (YYYY-MM-DD), inclusive; empty for the whole log"`
	ToDate   string `json:"to_date,omitempty" jsonschema:"End date (YYYY-MM-DD), inclusive; empty for the whole log"`
}

// DailyTotalsTool returns the MCP tool handler for get_daily_totals.
func (h *Handler) DailyTotalsTool() func(context.Context, *mcp.CallToolRequest, DailyTotalsInput) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, _ *mcp.CallToolRequest, in DailyTotalsInput) (*mcp.CallToolResult, any, error) {
		if in.FromDate != "" {
			if _, err := time.Parse(replog.DateLayout, in.FromDate); err != nil {
				return &mcp.CallToolResult{
					Content: []mcp.Content{&mcp.TextContent{Text: "Invalid from_date: use YYYY-MM-DD"}},
					IsError: true,
				}, nil, nil
			}
		}
		if in.ToDate != "" {
			if _, err := time.Parse(replog.DateLayout, in.ToDate); err != nil {
				return &mcp.CallToolResult{
					Content: []mcp.Content{&mcp.TextContent{Text: "Invalid to_date: use YYYY-MM-DD"}},
					IsError: true,
				}, nil, nil
			}
		}

		aggregates := h.service.DailyAggregates(ctx)

		// YYYY-MM-DD compares correctly as a string
		filtered := make([]replog.DailyAggregate, 0, len(aggregates))
		for _, a := range aggregates {
			if in.FromDate != "" && a.Date < in.FromDate {
				continue
			}
			if in.ToDate != "" && a.Date > in.ToDate {
				continue
			}
			filtered = append(filtered, a)
		}

		raw, err := json.MarshalIndent(filtered, "", "  ")
		if err != nil {
			return &mcp.CallToolResult{
				Content: []mcp.Content{&mcp.TextContent{Text: "Error encoding response: " + err.Error()}},
				IsError: true,
			}, nil, nil
		}
		return &mcp.CallToolResult{
			Content: []mcp.Content{&mcp.TextContent{Text: string(raw)}},
		}, nil, nil
	}
}

// TodaySummaryTool returns the MCP tool handler for get_today_summary.
func (h *Handler) TodaySummaryTool() func(context.Context, *mcp.CallToolRequest, any) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, _ *mcp.CallToolRequest, _ any) (*mcp.CallToolResult, any, error) {
		date, summary := h.service.TodaySummary(ctx)
		return &mcp.CallToolResult{
			Content: []mcp.Content{&mcp.TextContent{Text: fmt.Sprintf("%s: %s", date, summary)}},
		}, nil, nil
	}
}

// ListExercisesTool returns the MCP tool handler for list_exercises.
func (h *Handler) ListExercisesTool() func(context.Context, *mcp.CallToolRequest, any) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, _ *mcp.CallToolRequest, _ any) (*mcp.CallToolResult, any, error) {
		raw, err := json.MarshalIndent(h.service.Exercises(ctx), "", "  ")
		if err != nil {
			return &mcp.CallToolResult{
				Content: []mcp.Content{&mcp.TextContent{Text: "Error encoding response: " + err.Error()}},
				IsError: true,
			}, nil, nil
		}
		return &mcp.CallToolResult{
			Content: []mcp.Content{&mcp.TextContent{Text: string(raw)}},
		}, nil, nil
	}
}
