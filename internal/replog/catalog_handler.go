package replog

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	log "github.com/sirupsen/logrus"

	"github.com/oliverhees/reptally/internal/telemetry/metrics"
	"github.com/oliverhees/reptally/internal/telemetry/tracing"
	"github.com/oliverhees/reptally/pkg"
)

//go:generate mockgen -source=$GOFILE -destination=catalog_handler_mocks_test.go -package=replog_test

type catalogService interface {
	AddExercise(ctx context.Context, exerciseName string) error
	Exercises(ctx context.Context) []string
}

type AddExerciseRequest struct {
	Name string `json:"name"`
}

type CatalogResponse struct {
	Exercises []string `json:"exercises"`
}

// CatalogHandler serves the exercise catalog endpoints: the dropdown
// feed and adding new exercise types.
type CatalogHandler struct {
	service catalogService
	metrics *metrics.Manager
}

func NewCatalogHandler(service catalogService, metricsManager *metrics.Manager) *CatalogHandler {
	return &CatalogHandler{
		service: service,
		metrics: metricsManager,
	}
}

func (handler *CatalogHandler) HandleAdd(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.replog.catalog.add")
	defer span.End()

	if r.Header.Get("Content-Type") != "application/json" {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	var addReq AddExerciseRequest
	if err := json.NewDecoder(r.Body).Decode(&addReq); err != nil {
		log.Tracef("add exercise, unmarshal json params: %s", err)
		http.Error(w, "add exercise failed", http.StatusBadRequest)
		return
	}

	err := handler.service.AddExercise(ctx, addReq.Name)
	switch {
	case errors.Is(err, ErrEmptyExerciseName), errors.Is(err, ErrDuplicateExercise):
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	case err != nil:
		log.Errorf("failed to add exercise [%s]: %s", addReq.Name, err)
		http.Error(w, "error, failed to add exercise", http.StatusInternalServerError)
		return
	}

	handler.metrics.CounterExercisesAdded.Inc()
	log.Debugf("new exercise added to catalog: %s", addReq.Name)

	handler.writeCatalog(ctx, w, http.StatusCreated)
}

func (handler *CatalogHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.replog.catalog.list")
	defer span.End()

	handler.writeCatalog(ctx, w, http.StatusOK)
}

func (handler *CatalogHandler) writeCatalog(ctx context.Context, w http.ResponseWriter, statusCode int) {
	catalogJson, err := json.Marshal(CatalogResponse{
		Exercises: handler.service.Exercises(ctx),
	})
	if err != nil {
		log.Errorf("failed to marshal catalog: %s", err)
		http.Error(w, "failed to marshal catalog", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, catalogJson, statusCode)
}
