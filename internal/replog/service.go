package replog

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"github.com/oliverhees/reptally/internal/telemetry/tracing"
)

//go:generate mockgen -source=$GOFILE -destination=service_mocks_test.go -package=replog_test

type logStore interface {
	Load(ctx context.Context) ([]Entry, error)
	Save(ctx context.Context, entries []Entry) error
	Clear(ctx context.Context) error
}

// ChartData is the plotting feed for the widget chart: one label per
// date and one series per catalog exercise, zero-filled for dates on
// which that exercise was not done.
type ChartData struct {
	Labels []string      `json:"labels"`
	Series []ChartSeries `json:"series"`
}

type ChartSeries struct {
	ExerciseName string `json:"exerciseName"`
	Data         []int  `json:"data"`
}

// Service owns the single mutable instance of the exercise log and the
// catalog. The log is the source of truth: every mutation is persisted
// as a whole through the store before it is visible to readers, and all
// aggregates and summaries are recomputed from it on demand.
type Service struct {
	mu       sync.RWMutex
	store    logStore
	loc      *time.Location
	entries  []Entry
	catalog  *Catalog
	revision uint64
}

// NewService loads the persisted log from the store and seeds the
// catalog with the defaults plus the distinct names found in the log.
func NewService(ctx context.Context, store logStore, loc *time.Location) (*Service, error) {
	if loc == nil {
		loc = time.Local
	}

	entries, err := store.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load exercise log: %w", err)
	}

	catalog := NewCatalog(DefaultExercises...)
	catalog.seedFromLog(entries)

	return &Service{
		store:   store,
		loc:     loc,
		entries: entries,
		catalog: catalog,
	}, nil
}

// Today returns the current calendar date in the service location.
func (s *Service) Today() string {
	return time.Now().In(s.loc).Format(DateLayout)
}

// Revision returns a counter that increases on every mutation. Readers
// use it to invalidate cached projections exactly on change.
func (s *Service) Revision() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.revision
}

// LogExercise appends a new entry stamped with the current time and
// persists the whole log. Returns the created entry and the number of
// entries logged for that exercise today. The log stays unchanged when
// the name is empty, reps are not positive, or the write fails.
func (s *Service) LogExercise(ctx context.Context, exerciseName string, reps int) (_ *Entry, countToday int, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "replog.service.logExercise")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("exercise.name", exerciseName))

	if exerciseName == "" {
		return nil, 0, ErrEmptyExerciseName
	}
	if reps <= 0 {
		return nil, 0, ErrInvalidReps
	}

	entry := Entry{
		ExerciseName: exerciseName,
		Reps:         reps,
		CreatedAt:    time.Now(),
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	nextLog := append(append([]Entry{}, s.entries...), entry)
	if err := s.store.Save(ctx, nextLog); err != nil {
		return nil, 0, fmt.Errorf("save exercise log: %w", err)
	}

	s.entries = nextLog
	s.revision++

	// custom names logged through the API (or MCP) become chart lines too
	if !s.catalog.Contains(exerciseName) {
		_ = s.catalog.Add(exerciseName)
	}

	today := entry.CreatedAt.In(s.loc).Format(DateLayout)
	for _, e := range s.entries {
		if e.ExerciseName == exerciseName && e.CreatedAt.In(s.loc).Format(DateLayout) == today {
			countToday++
		}
	}

	return &entry, countToday, nil
}

// AddExercise appends a new name to the catalog. Duplicate and empty
// names are rejected, set semantics on the exact name.
func (s *Service) AddExercise(ctx context.Context, exerciseName string) (err error) {
	_, span := tracing.GlobalTracer.Start(ctx, "replog.service.addExercise")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.catalog.Add(exerciseName); err != nil {
		return err
	}
	s.revision++
	return nil
}

// ClearLog replaces the log with an empty one and erases the persisted
// copy. The catalog is untouched, it never shrinks within a session.
func (s *Service) ClearLog(ctx context.Context) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "replog.service.clearLog")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.store.Clear(ctx); err != nil {
		return fmt.Errorf("clear exercise log: %w", err)
	}

	s.entries = []Entry{}
	s.revision++
	return nil
}

// Entries returns one page of the log (1-based page) plus the total
// number of entries.
func (s *Service) Entries(ctx context.Context, page, size int) (_ []Entry, total int, err error) {
	_, span := tracing.GlobalTracer.Start(ctx, "replog.service.entries")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if page < 1 || size < 1 {
		return nil, 0, fmt.Errorf("invalid page [%d] or size [%d]", page, size)
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	total = len(s.entries)
	from := (page - 1) * size
	if from >= total {
		return []Entry{}, total, nil
	}
	to := from + size
	if to > total {
		to = total
	}

	entries := make([]Entry, to-from)
	copy(entries, s.entries[from:to])
	return entries, total, nil
}

// Exercises returns the catalog names in insertion order.
func (s *Service) Exercises(ctx context.Context) []string {
	_, span := tracing.GlobalTracer.Start(ctx, "replog.service.exercises")
	defer span.End()

	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.catalog.Names()
}

// DailyAggregates recomputes the per-day per-exercise totals from the
// full log.
func (s *Service) DailyAggregates(ctx context.Context) []DailyAggregate {
	_, span := tracing.GlobalTracer.Start(ctx, "replog.service.dailyAggregates")
	defer span.End()

	s.mu.RLock()
	defer s.mu.RUnlock()
	return Aggregate(s.entries, s.loc)
}

// TodaySummary returns today's date and the one-line summary of what
// was logged today.
func (s *Service) TodaySummary(ctx context.Context) (date, summary string) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "replog.service.todaySummary")
	defer span.End()

	date = s.Today()
	return date, Summarize(s.DailyAggregates(ctx), date)
}

// ChartSeries builds the chart feed from the current aggregates: the
// date labels in aggregate order and one zero-filled series per catalog
// exercise.
func (s *Service) ChartSeries(ctx context.Context) ChartData {
	ctx, span := tracing.GlobalTracer.Start(ctx, "replog.service.chartSeries")
	defer span.End()

	aggregates := s.DailyAggregates(ctx)

	s.mu.RLock()
	names := s.catalog.Names()
	s.mu.RUnlock()

	data := ChartData{
		Labels: make([]string, 0, len(aggregates)),
		Series: make([]ChartSeries, 0, len(names)),
	}
	for _, a := range aggregates {
		data.Labels = append(data.Labels, a.Date)
	}

	for _, name := range names {
		series := ChartSeries{
			ExerciseName: name,
			Data:         make([]int, len(aggregates)),
		}
		for i, a := range aggregates {
			if reps, ok := a.TotalFor(name); ok {
				series.Data[i] = reps
			}
		}
		data.Series = append(data.Series, series)
	}

	return data
}
