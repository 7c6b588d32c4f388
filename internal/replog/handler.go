package replog

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"

	"github.com/oliverhees/reptally/internal/telemetry/metrics"
	"github.com/oliverhees/reptally/internal/telemetry/tracing"
	"github.com/oliverhees/reptally/pkg"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=replog_test

type repsService interface {
	LogExercise(ctx context.Context, exerciseName string, reps int) (*Entry, int, error)
	ClearLog(ctx context.Context) error
	Entries(ctx context.Context, page, size int) ([]Entry, int, error)
}

type LogExerciseRequest struct {
	ExerciseName string `json:"exerciseName"`
	Reps         int    `json:"reps"`
}

type LogExerciseResponse struct {
	Entry
	CountToday int `json:"countToday"`
}

type ListEntriesResponse struct {
	Entries []Entry `json:"entries"`
	Total   int     `json:"total"`
}

type ClearLogResponse struct {
	Cleared bool `json:"cleared"`
}

// Handler serves the log entry endpoints: logging a set, listing the
// log and clearing it.
type Handler struct {
	service repsService
	metrics *metrics.Manager
}

func NewHandler(service repsService, metricsManager *metrics.Manager) *Handler {
	return &Handler{
		service: service,
		metrics: metricsManager,
	}
}

func (handler *Handler) HandleLog(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.replog.log")
	defer span.End()

	if r.Header.Get("Content-Type") != "application/json" {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	var logReq LogExerciseRequest
	if err := json.NewDecoder(r.Body).Decode(&logReq); err != nil {
		log.Tracef("log exercise, unmarshal json params: %s", err)
		http.Error(w, "log exercise failed", http.StatusBadRequest)
		return
	}

	entry, countToday, err := handler.service.LogExercise(ctx, logReq.ExerciseName, logReq.Reps)
	switch {
	case errors.Is(err, ErrEmptyExerciseName), errors.Is(err, ErrInvalidReps):
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	case err != nil:
		log.Errorf("failed to log exercise [%s] [%d reps]: %s", logReq.ExerciseName, logReq.Reps, err)
		http.Error(w, "error, failed to log exercise", http.StatusInternalServerError)
		return
	}

	handler.metrics.CounterEntriesLogged.Inc()

	logRespJson, err := json.Marshal(LogExerciseResponse{
		Entry:      *entry,
		CountToday: countToday,
	})
	if err != nil {
		log.Errorf("failed to marshal logged entry: %s", err)
		http.Error(w, "error, failed to log exercise", http.StatusInternalServerError)
		return
	}

	log.Debugf("new entry logged: %s", logRespJson)
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, logRespJson, http.StatusCreated)
}

func (handler *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.replog.list")
	defer span.End()

	vars := mux.Vars(r)
	page, err := strconv.Atoi(vars["page"])
	if err != nil {
		log.Tracef("handle list entries, from <page> param: %s", err)
		http.Error(w, "parse form error, parameter <page>", http.StatusBadRequest)
		return
	}
	size, err := strconv.Atoi(vars["size"])
	if err != nil {
		log.Tracef("handle list entries, from <size> param: %s", err)
		http.Error(w, "parse form error, parameter <size>", http.StatusBadRequest)
		return
	}

	if page < 1 {
		http.Error(w, "invalid page (has to be a positive value)", http.StatusBadRequest)
		return
	}
	if size < 1 {
		http.Error(w, "invalid size (has to be a positive value)", http.StatusBadRequest)
		return
	}

	entries, total, err := handler.service.Entries(ctx, page, size)
	if err != nil {
		log.Errorf("list entries error: %s", err)
		http.Error(w, "failed to get log entries", http.StatusInternalServerError)
		return
	}

	listRespJson, err := json.Marshal(ListEntriesResponse{
		Entries: entries,
		Total:   total,
	})
	if err != nil {
		log.Errorf("marshal log entries error: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, listRespJson, http.StatusOK)
}

func (handler *Handler) HandleClear(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.replog.clear")
	defer span.End()

	if err := handler.service.ClearLog(ctx); err != nil {
		log.Errorf("failed to clear exercise log: %s", err)
		http.Error(w, "error, exercise log not cleared", http.StatusInternalServerError)
		return
	}

	handler.metrics.CounterLogClears.Inc()

	clearRespJson, err := json.Marshal(ClearLogResponse{Cleared: true})
	if err != nil {
		log.Errorf("failed to marshal clear response: %s", err)
		http.Error(w, "failed to marshal clear response", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSONResponseOK(w, string(clearRespJson))
}
