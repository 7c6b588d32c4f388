package internal

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/gorilla/mux"
	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gorilla/mux/otelmux"

	"github.com/oliverhees/reptally/internal/config"
	"github.com/oliverhees/reptally/internal/middleware"
	"github.com/oliverhees/reptally/internal/replog"
	replogmcp "github.com/oliverhees/reptally/internal/replog/mcp"
	"github.com/oliverhees/reptally/internal/replog/store"
	"github.com/oliverhees/reptally/internal/telemetry/metrics"
	metricsmiddleware "github.com/oliverhees/reptally/internal/telemetry/metrics/middleware"
	"github.com/oliverhees/reptally/internal/telemetry/tracing"
	"github.com/oliverhees/reptally/internal/webui"
)

type logStorage interface {
	Load(ctx context.Context) ([]replog.Entry, error)
	Save(ctx context.Context, entries []replog.Entry) error
	Clear(ctx context.Context) error
	Close() error
}

type Server struct {
	httpServer        *http.Server
	metricsHttpServer *http.Server
	versionInfo       string

	config     *config.Config
	logService *replog.Service
	logStore   logStorage

	// metrics
	metricsManager *metrics.Manager
	promRegistry   *prometheus.Registry
	otelShutdown   func()
}

type NewServerParams struct {
	Config      *config.Config
	VersionInfo string
}

func NewServer(
	ctx context.Context,
	params NewServerParams,
) (*Server, error) {
	promRegistry := metrics.SetupPrometheus()
	metricsManager := metrics.NewManager("reptally", "main", promRegistry)
	metricsManager.GaugeLifeSignal.Set(0)

	otelShutdown, err := tracing.Setup(ctx, tracing.SetupParams{
		Enabled:      params.Config.OtelTracingEnabled,
		ServiceName:  "reptally",
		OTLPEndpoint: params.Config.OtelExporterOTLP,
	})
	if err != nil {
		return nil, fmt.Errorf("otel setup: %w", err)
	}

	logStore, err := newLogStore(params.Config)
	if err != nil {
		return nil, fmt.Errorf("new log store: %w", err)
	}

	loc := time.Local
	if params.Config.Timezone != "" {
		loc, err = time.LoadLocation(params.Config.Timezone)
		if err != nil {
			return nil, fmt.Errorf("load timezone [%s]: %w", params.Config.Timezone, err)
		}
	}

	logService, err := replog.NewService(ctx, logStore, loc)
	if err != nil {
		return nil, fmt.Errorf("new replog service: %w", err)
	}

	return &Server{
		config:      params.Config,
		versionInfo: params.VersionInfo,
		logService:  logService,
		logStore:    logStore,

		// telemetry
		metricsManager: metricsManager,
		promRegistry:   promRegistry,
		otelShutdown:   otelShutdown,
	}, nil
}

func newLogStore(cfg *config.Config) (logStorage, error) {
	switch cfg.StorageEngine {
	case "memory":
		log.Warnln("using in-memory storage, the log is gone on restart")
		return store.NewMemory(), nil
	case "", "bolt":
		path := cfg.StoragePath
		if path == "" {
			var err error
			if path, err = store.DefaultPath(); err != nil {
				return nil, err
			}
		}
		log.Debugf("using bolt storage: %s", path)
		return store.NewBolt(path)
	default:
		return nil, fmt.Errorf("unknown storage engine: %s", cfg.StorageEngine)
	}
}

func (s *Server) routerSetup() (*mux.Router, error) {
	r := mux.NewRouter()
	r.Use(otelmux.Middleware("reptally-router"))

	widgetHandler, err := webui.NewHandler()
	if err != nil {
		return nil, fmt.Errorf("new webui handler: %w", err)
	}
	r.HandleFunc("/", widgetHandler.HandleIndex).Methods("GET").Name("widget")

	entriesHandler := replog.NewHandler(s.logService, s.metricsManager)
	r.HandleFunc("/entries", entriesHandler.HandleLog).Methods("POST", "OPTIONS").Name("log-exercise")
	r.HandleFunc("/entries", entriesHandler.HandleClear).Methods("DELETE", "OPTIONS").Name("clear-log")
	r.HandleFunc("/entries/list/page/{page}/size/{size}", entriesHandler.HandleList).Methods("GET", "OPTIONS").Name("list-entries")

	catalogHandler := replog.NewCatalogHandler(s.logService, s.metricsManager)
	r.HandleFunc("/catalog", catalogHandler.HandleList).Methods("GET", "OPTIONS").Name("list-catalog")
	r.HandleFunc("/catalog", catalogHandler.HandleAdd).Methods("POST", "OPTIONS").Name("add-exercise")

	statsHandler := replog.NewStatsHandler(s.logService)
	r.HandleFunc("/stats/daily", statsHandler.HandleDaily).Methods("GET", "OPTIONS").Name("stats-daily")
	r.HandleFunc("/stats/today", statsHandler.HandleToday).Methods("GET", "OPTIONS").Name("stats-today")
	r.HandleFunc("/stats/chart", statsHandler.HandleChart).Methods("GET", "OPTIONS").Name("stats-chart")

	r.HandleFunc("/version", func(w http.ResponseWriter, r *http.Request) {
		if _, err := w.Write([]byte(s.versionInfo)); err != nil {
			log.Errorf("failed to write version response: %s", err)
		}
	}).Methods("GET").Name("version")

	// same MCP server as cmd/reptally_mcp, but over streamable HTTP
	mcpServer := replogmcp.NewServer(s.logService)
	r.PathPrefix("/mcp").Handler(sdkmcp.NewStreamableHTTPHandler(
		func(*http.Request) *sdkmcp.Server { return mcpServer },
		nil,
	)).Name("mcp")

	// all the rest - unhandled paths
	r.HandleFunc("/{unknown}", func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}).Methods("GET", "POST", "PUT", "OPTIONS").Name("unknown")

	r.Use(middleware.PanicRecovery(s.metricsManager))
	r.Use(middleware.LogRequest())
	r.Use(middleware.RequestMetrics(s.metricsManager))
	r.Use(middleware.Cors())
	r.Use(middleware.DrainAndCloseRequest())

	return r, nil
}

func (s *Server) Serve(ctx context.Context, host string, port int) {
	router, err := s.routerSetup()
	if err != nil {
		log.Fatalf("failed to setup router: %s", err)
	}

	ipAndPort := net.JoinHostPort(host, strconv.Itoa(port))
	s.httpServer = &http.Server{
		Handler:      router,
		Addr:         ipAndPort,
		WriteTimeout: time.Minute,
		ReadTimeout:  time.Minute,
		ConnState:    s.connStateMetrics,
	}

	metricsRouter := mux.NewRouter()
	metricsRouter.Handle("/metrics", metricsmiddleware.
		New(s.promRegistry, nil).
		WrapHandler("/metrics", promhttp.HandlerFor(
			s.promRegistry,
			promhttp.HandlerOpts{}),
		))
	metricsAddr := net.JoinHostPort(s.config.PrometheusMetricsHost, s.config.PrometheusMetricsPort)
	s.metricsHttpServer = &http.Server{
		Addr:    metricsAddr,
		Handler: metricsRouter,
	}

	go func() {
		log.Infof(" > server listening on: [%s]", ipAndPort)
		err := s.httpServer.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("reptally service, listen and serve: %s", err)
		}
	}()

	go func() {
		log.Debugf(" > metrics listening on: [%s]", metricsAddr)
		err := s.metricsHttpServer.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("metrics service, listen and serve: %s", err)
		}
	}()

	s.metricsManager.GaugeLifeSignal.Set(1)
}

func (s *Server) GracefulShutdown() {
	log.Debug("graceful shutdown initiated ...")

	s.metricsManager.GaugeLifeSignal.Set(0)

	s.otelShutdown()
	log.Trace("otel shut down ...")

	if s.logStore != nil {
		if err := s.logStore.Close(); err != nil {
			log.Errorf("failed to close log store: %s", err)
		}
	}

	if ok := sentry.Flush(5 * time.Second); ok {
		log.Debugf("sentry flush ok: %t", ok)
	}

	maxWaitDuration := time.Second * 15
	ctx, timeoutCancel := context.WithTimeout(context.Background(), maxWaitDuration)
	defer timeoutCancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		log.Error(" >>> failed to gracefully shutdown http server")
	}
	log.Warnln("server shut down")

	if err := s.metricsHttpServer.Shutdown(ctx); err != nil {
		log.Error(" >>> failed to gracefully shutdown metrics http server")
	}
	log.Warnln("metrics server shut down")
}

func (s *Server) connStateMetrics(_ net.Conn, state http.ConnState) {
	switch state {
	case http.StateNew:
		s.metricsManager.GaugeRequests.Add(1)
	case http.StateClosed:
		s.metricsManager.GaugeRequests.Add(-1)
	default:
		// do nothing
	}
}
