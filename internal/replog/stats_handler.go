package replog

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/coocood/freecache"
	log "github.com/sirupsen/logrus"

	"github.com/oliverhees/reptally/internal/telemetry/tracing"
	"github.com/oliverhees/reptally/pkg"
)

const (
	statsCacheSizeBytes = 1024 * 1024
	statsCacheExpire    = 10 * 60 // seconds
)

type statsService interface {
	DailyAggregates(ctx context.Context) []DailyAggregate
	TodaySummary(ctx context.Context) (date, summary string)
	ChartSeries(ctx context.Context) ChartData
	Revision() uint64
}

type DailyStatsResponse struct {
	Days       []DailyAggregate `json:"days"`
	GrandTotal int              `json:"grandTotal"`
}

type TodayResponse struct {
	Date    string `json:"date"`
	Summary string `json:"summary"`
}

// StatsHandler serves the derived projections: daily totals, the today
// summary line and the chart feed. Responses are cached per revision,
// so repeated widget polls between mutations cost one aggregation.
type StatsHandler struct {
	service statsService
	cache   *freecache.Cache
}

func NewStatsHandler(service statsService) *StatsHandler {
	return &StatsHandler{
		service: service,
		cache:   freecache.NewCache(statsCacheSizeBytes),
	}
}

func (handler *StatsHandler) HandleDaily(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.replog.stats.daily")
	defer span.End()

	handler.serveCached(ctx, w, "daily", func(ctx context.Context) (any, error) {
		aggregates := handler.service.DailyAggregates(ctx)
		return DailyStatsResponse{
			Days:       aggregates,
			GrandTotal: GrandTotal(aggregates),
		}, nil
	})
}

func (handler *StatsHandler) HandleToday(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.replog.stats.today")
	defer span.End()

	date, summary := handler.service.TodaySummary(ctx)

	// the summary flips at local midnight without a mutation, so the
	// date belongs in the cache key next to the revision
	handler.serveCached(ctx, w, "today|"+date, func(ctx context.Context) (any, error) {
		return TodayResponse{
			Date:    date,
			Summary: summary,
		}, nil
	})
}

func (handler *StatsHandler) HandleChart(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.replog.stats.chart")
	defer span.End()

	handler.serveCached(ctx, w, "chart", func(ctx context.Context) (any, error) {
		return handler.service.ChartSeries(ctx), nil
	})
}

func (handler *StatsHandler) serveCached(
	ctx context.Context,
	w http.ResponseWriter,
	route string,
	project func(ctx context.Context) (any, error),
) {
	cacheKey := []byte(fmt.Sprintf("%s|rev:%d", route, handler.service.Revision()))
	if cached, err := handler.cache.Get(cacheKey); err == nil {
		pkg.WriteResponseBytes(w, pkg.ContentType.JSON, cached, http.StatusOK)
		return
	}

	projection, err := project(ctx)
	if err != nil {
		log.Errorf("failed to compute stats [%s]: %s", route, err)
		http.Error(w, "failed to compute stats", http.StatusInternalServerError)
		return
	}

	projectionJson, err := json.Marshal(projection)
	if err != nil {
		log.Errorf("failed to marshal stats [%s]: %s", route, err)
		http.Error(w, "failed to marshal stats", http.StatusInternalServerError)
		return
	}

	if err := handler.cache.Set(cacheKey, projectionJson, statsCacheExpire); err != nil {
		// cache failures only cost a recompute on the next poll
		log.Warnf("failed to cache stats [%s]: %s", route, err)
	}

	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, projectionJson, http.StatusOK)
}
