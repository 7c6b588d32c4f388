package mcp

import (
	"context"

	"github.com/oliverhees/reptally/internal/replog"
)

// logService provides the exercise log operations the MCP tools need
// (for dependency injection and testing). Implemented by
// replog.Service.
type logService interface {
	LogExercise(ctx context.Context, exerciseName string, reps int) (*replog.Entry, int, error)
	AddExercise(ctx context.Context, exerciseName string) error
	Exercises(ctx context.Context) []string
	DailyAggregates(ctx context.Context) []replog.DailyAggregate
	TodaySummary(ctx context.Context) (date, summary string)
}
