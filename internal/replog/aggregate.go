package replog

import (
	"fmt"
	"strings"
	"time"
)

// DateLayout is the calendar date format used for all daily buckets.
const DateLayout = "2006-01-02"

// NoDataMessage is returned by Summarize for a day without entries.
const NoDataMessage = "Nothing logged today"

type ExerciseTotal struct {
	ExerciseName string `json:"exerciseName"`
	Reps         int    `json:"reps"`
}

// DailyAggregate holds the summed reps per exercise for one calendar
// date. It is derived from the log and never persisted.
type DailyAggregate struct {
	Date   string          `json:"date"`
	Totals []ExerciseTotal `json:"totals"`
}

// TotalFor returns the summed reps for the given exercise name on this
// date, false when the exercise was not done that day.
func (a DailyAggregate) TotalFor(exerciseName string) (int, bool) {
	for _, t := range a.Totals {
		if t.ExerciseName == exerciseName {
			return t.Reps, true
		}
	}
	return 0, false
}

// Aggregate groups the log entries by the calendar date of CreatedAt
// evaluated in loc and sums reps per exercise name within each date.
// Dates appear in first-appearance order of the log (not value-sorted),
// and totals within a date in first-appearance order of the name that
// day. An empty log yields an empty, non-nil slice.
func Aggregate(entries []Entry, loc *time.Location) []DailyAggregate {
	if loc == nil {
		loc = time.Local
	}

	aggregates := make([]DailyAggregate, 0)
	dateIdx := make(map[string]int)
	nameIdx := make(map[string]map[string]int)

	for _, e := range entries {
		date := e.CreatedAt.In(loc).Format(DateLayout)

		di, ok := dateIdx[date]
		if !ok {
			di = len(aggregates)
			dateIdx[date] = di
			nameIdx[date] = make(map[string]int)
			aggregates = append(aggregates, DailyAggregate{Date: date})
		}

		ni, ok := nameIdx[date][e.ExerciseName]
		if !ok {
			ni = len(aggregates[di].Totals)
			nameIdx[date][e.ExerciseName] = ni
			aggregates[di].Totals = append(aggregates[di].Totals, ExerciseTotal{
				ExerciseName: e.ExerciseName,
			})
		}

		aggregates[di].Totals[ni].Reps += e.Reps
	}

	return aggregates
}

// GrandTotal sums all reps over all dates and exercises. For any log,
// GrandTotal(Aggregate(log, loc)) equals the sum of the log's reps.
func GrandTotal(aggregates []DailyAggregate) int {
	total := 0
	for _, a := range aggregates {
		for _, t := range a.Totals {
			total += t.Reps
		}
	}
	return total
}

// Summarize renders the aggregate for the given date as a single line,
// "Name: Count" pairs joined by commas, in totals order. A date without
// an aggregate yields the fixed NoDataMessage.
func Summarize(aggregates []DailyAggregate, today string) string {
	for _, a := range aggregates {
		if a.Date != today {
			continue
		}
		parts := make([]string, 0, len(a.Totals))
		for _, t := range a.Totals {
			parts = append(parts, fmt.Sprintf("%s: %d", t.ExerciseName, t.Reps))
		}
		return strings.Join(parts, ", ")
	}
	return NoDataMessage
}
