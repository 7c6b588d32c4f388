package replog_test

import (
	"fmt"
	"testing"
	"time"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oliverhees/reptally/internal/replog"
)

func TestAggregate(t *testing.T) {
	day1 := time.Date(2021, 5, 5, 10, 0, 0, 0, time.UTC)
	day2 := time.Date(2021, 5, 6, 9, 30, 0, 0, time.UTC)

	entries := []replog.Entry{
		{ExerciseName: "Push-ups", Reps: 10, CreatedAt: day1},
		{ExerciseName: "Push-ups", Reps: 5, CreatedAt: day1.Add(2 * time.Hour)},
		{ExerciseName: "Sit-ups", Reps: 3, CreatedAt: day2},
	}

	aggregates := replog.Aggregate(entries, time.UTC)
	require.Len(t, aggregates, 2)

	assert.Equal(t, "2021-05-05", aggregates[0].Date)
	require.Len(t, aggregates[0].Totals, 1)
	assert.Equal(t, "Push-ups", aggregates[0].Totals[0].ExerciseName)
	assert.Equal(t, 15, aggregates[0].Totals[0].Reps)

	assert.Equal(t, "2021-05-06", aggregates[1].Date)
	require.Len(t, aggregates[1].Totals, 1)
	assert.Equal(t, "Sit-ups", aggregates[1].Totals[0].ExerciseName)
	assert.Equal(t, 3, aggregates[1].Totals[0].Reps)
}

func TestAggregate_emptyLog(t *testing.T) {
	aggregates := replog.Aggregate(nil, time.UTC)
	require.NotNil(t, aggregates)
	assert.Empty(t, aggregates)
}

func TestAggregate_firstAppearanceOrder(t *testing.T) {
	day1 := time.Date(2021, 5, 5, 22, 0, 0, 0, time.UTC)
	day2 := time.Date(2021, 5, 6, 7, 0, 0, 0, time.UTC)

	entries := []replog.Entry{
		{ExerciseName: "Squats", Reps: 8, CreatedAt: day1},
		{ExerciseName: "Push-ups", Reps: 10, CreatedAt: day1},
		{ExerciseName: "Sit-ups", Reps: 12, CreatedAt: day2},
		{ExerciseName: "Squats", Reps: 4, CreatedAt: day1.Add(time.Hour)},
	}

	aggregates := replog.Aggregate(entries, time.UTC)
	require.Len(t, aggregates, 2)

	// dates in first-appearance order of the log
	assert.Equal(t, "2021-05-05", aggregates[0].Date)
	assert.Equal(t, "2021-05-06", aggregates[1].Date)

	// totals in first-appearance order of the name that day
	require.Len(t, aggregates[0].Totals, 2)
	assert.Equal(t, "Squats", aggregates[0].Totals[0].ExerciseName)
	assert.Equal(t, 12, aggregates[0].Totals[0].Reps)
	assert.Equal(t, "Push-ups", aggregates[0].Totals[1].ExerciseName)
}

func TestAggregate_timezoneSplitsDays(t *testing.T) {
	berlin, err := time.LoadLocation("Europe/Berlin")
	require.NoError(t, err)

	// 23:30 UTC on the 5th is already the 6th in Berlin
	lateEvening := time.Date(2021, 5, 5, 23, 30, 0, 0, time.UTC)

	entries := []replog.Entry{
		{ExerciseName: "Push-ups", Reps: 10, CreatedAt: lateEvening},
	}

	utcAggregates := replog.Aggregate(entries, time.UTC)
	require.Len(t, utcAggregates, 1)
	assert.Equal(t, "2021-05-05", utcAggregates[0].Date)

	berlinAggregates := replog.Aggregate(entries, berlin)
	require.Len(t, berlinAggregates, 1)
	assert.Equal(t, "2021-05-06", berlinAggregates[0].Date)
}

// the grand total over the aggregates always equals the plain sum of
// all logged reps, no matter how entries spread over days and names
func TestGrandTotal_matchesLogSum(t *testing.T) {
	gofakeit.Seed(0)

	entries := make([]replog.Entry, 0, 200)
	logSum := 0
	for i := 0; i < 200; i++ {
		reps := gofakeit.Number(1, 50)
		logSum += reps
		entries = append(entries, replog.Entry{
			ExerciseName: gofakeit.RandomString([]string{"Push-ups", "Sit-ups", "Squats", "Pull-ups", "Burpees"}),
			Reps:         reps,
			CreatedAt: gofakeit.DateRange(
				time.Date(2021, 5, 1, 0, 0, 0, 0, time.UTC),
				time.Date(2021, 5, 31, 23, 59, 59, 0, time.UTC),
			),
		})
	}

	aggregates := replog.Aggregate(entries, time.UTC)
	assert.Equal(t, logSum, replog.GrandTotal(aggregates))
}

func TestSummarize(t *testing.T) {
	day1 := time.Date(2021, 5, 5, 10, 0, 0, 0, time.UTC)
	day2 := time.Date(2021, 5, 6, 9, 30, 0, 0, time.UTC)

	entries := []replog.Entry{
		{ExerciseName: "Push-ups", Reps: 10, CreatedAt: day1},
		{ExerciseName: "Push-ups", Reps: 5, CreatedAt: day1},
		{ExerciseName: "Sit-ups", Reps: 3, CreatedAt: day2},
	}
	aggregates := replog.Aggregate(entries, time.UTC)

	assert.Equal(t, "Sit-ups: 3", replog.Summarize(aggregates, "2021-05-06"))
	assert.Equal(t, "Push-ups: 15", replog.Summarize(aggregates, "2021-05-05"))
	assert.Equal(t, replog.NoDataMessage, replog.Summarize(aggregates, "2021-05-07"))
	assert.Equal(t, replog.NoDataMessage, replog.Summarize(nil, "2021-05-05"))
}

func TestSummarize_multipleExercises(t *testing.T) {
	day := time.Date(2021, 5, 5, 10, 0, 0, 0, time.UTC)

	entries := []replog.Entry{
		{ExerciseName: "Squats", Reps: 8, CreatedAt: day},
		{ExerciseName: "Push-ups", Reps: 10, CreatedAt: day.Add(time.Minute)},
		{ExerciseName: "Squats", Reps: 7, CreatedAt: day.Add(2 * time.Minute)},
	}
	aggregates := replog.Aggregate(entries, time.UTC)

	assert.Equal(t, "Squats: 15, Push-ups: 10", replog.Summarize(aggregates, "2021-05-05"))
}

func TestDailyAggregate_TotalFor(t *testing.T) {
	a := replog.DailyAggregate{
		Date: "2021-05-05",
		Totals: []replog.ExerciseTotal{
			{ExerciseName: "Push-ups", Reps: 15},
		},
	}

	reps, ok := a.TotalFor("Push-ups")
	assert.True(t, ok)
	assert.Equal(t, 15, reps)

	_, ok = a.TotalFor("Squats")
	assert.False(t, ok)
}

func ExampleSummarize() {
	entries := []replog.Entry{
		{ExerciseName: "Push-ups", Reps: 10, CreatedAt: time.Date(2021, 5, 5, 10, 0, 0, 0, time.UTC)},
		{ExerciseName: "Push-ups", Reps: 5, CreatedAt: time.Date(2021, 5, 5, 12, 0, 0, 0, time.UTC)},
	}
	aggregates := replog.Aggregate(entries, time.UTC)
	fmt.Println(replog.Summarize(aggregates, "2021-05-05"))
	// Output: Push-ups: 15
}
