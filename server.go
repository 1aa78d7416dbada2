package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// fetchFunc fetches the raw METAR text for a station. Tests stub it out.
type fetchFunc func(ctx context.Context, station string) (string, error)

// server holds the serve-mode dependencies.
type server struct {
	cfg    *Config
	logger *zap.Logger
	cache  Cache
	fetch  fetchFunc

	// cachePing, when set, is called by the health handler to check cache
	// reachability. Set for the memcached backend.
	cachePing func() error
}

// newServer wires a server from its dependencies.
func newServer(cfg *Config, logger *zap.Logger, cache Cache, fetch fetchFunc) *server {
	return &server{
		cfg:    cfg,
		logger: logger,
		cache:  cache,
		fetch:  fetch,
	}
}

// routes builds the router with the full middleware chain.
func (s *server) routes(limiter *rate.Limiter) *mux.Router {
	r := mux.NewRouter()
	r.Use(correlationIDMiddleware(s.logger))
	r.Use(metricsMiddleware)

	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(rateLimitMiddleware(limiter))
	api.HandleFunc("/metar/{station}", s.handleMETAR).Methods(http.MethodGet)

	r.HandleFunc("/healthz", s.handleHealth).Methods(http.MethodGet)
	r.Handle("/metrics", metricsHandler()).Methods(http.MethodGet)
	return r
}

// handleMETAR handles GET /api/v1/metar/{station}: cache lookup, upstream
// fetch on miss, decode, JSON out.
func (s *server) handleMETAR(w http.ResponseWriter, r *http.Request) {
	station := strings.ToUpper(strings.TrimSpace(mux.Vars(r)["station"]))
	if !stationRegex.MatchString(station) {
		writeError(w, r, http.StatusBadRequest, "INVALID_STATION", "station must be 3-4 letters")
		return
	}

	logger := s.requestLogger(r)

	raw, hit, err := s.cache.Get(r.Context(), station)
	if err != nil {
		logger.Warn("cache get failed", zap.Error(err))
		hit = false
	}
	if hit {
		cacheHitsTotal.WithLabelValues(s.cfg.CacheBackend).Inc()
	} else {
		start := time.Now()
		raw, err = s.fetch(r.Context(), station)
		metarFetchDuration.Observe(time.Since(start).Seconds())
		if err != nil {
			metarFetchesTotal.WithLabelValues("error").Inc()
			logger.Debug("upstream fetch failed", zap.String("station", station), zap.Error(err))
			writeError(w, r, http.StatusServiceUnavailable, "UPSTREAM_UNAVAILABLE", "Unable to fetch METAR data")
			return
		}
		metarFetchesTotal.WithLabelValues("success").Inc()
		if err := s.cache.Set(r.Context(), station, raw, s.cfg.CacheTTL); err != nil {
			logger.Warn("cache set failed", zap.Error(err))
		}
	}

	report := DecodeMETAR(raw)
	if report.Error != "" {
		decodesTotal.WithLabelValues("invalid").Inc()
	} else {
		decodesTotal.WithLabelValues("ok").Inc()
	}

	writeJSON(w, http.StatusOK, report)
}

// handleHealth handles GET /healthz.
func (s *server) handleHealth(w http.ResponseWriter, r *http.Request) {
	status := "ok"
	statusCode := http.StatusOK
	checks := map[string]string{}
	if s.cachePing != nil {
		if err := s.cachePing(); err == nil {
			checks["cache"] = "healthy"
		} else {
			checks["cache"] = "unhealthy"
			status = "degraded"
			statusCode = http.StatusServiceUnavailable
		}
	}
	writeJSON(w, statusCode, map[string]interface{}{
		"status":    status,
		"service":   "metar-reader",
		"checks":    checks,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

func (s *server) requestLogger(r *http.Request) *zap.Logger {
	if logger, ok := r.Context().Value(ctxKeyLogger).(*zap.Logger); ok && logger != nil {
		return logger
	}
	return s.logger
}

// runServer builds everything from config and serves until SIGINT/SIGTERM.
// listenOverride, when non-empty, takes precedence over LISTEN_ADDR.
func runServer(listenOverride string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if listenOverride != "" {
		cfg.ListenAddr = listenOverride
	}

	logger, err := newLogger(cfg.LogLevel)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	fetchClient.Timeout = cfg.FetchTimeout

	var cacheSvc Cache
	var memcached *MemcachedCache
	switch cfg.CacheBackend {
	case "memcached":
		mc, err := NewMemcachedCache(cfg.MemcachedAddrs, cfg.FetchTimeout)
		if err != nil {
			return err
		}
		memcached = mc
		cacheSvc = mc
		logger.Info("cache backend: memcached", zap.String("addrs", cfg.MemcachedAddrs))
	default:
		cacheSvc = NewInMemoryCache()
		logger.Info("cache backend: in_memory")
	}

	srv := newServer(cfg, logger, cacheSvc, FetchMETARContext)
	if memcached != nil {
		srv.cachePing = memcached.Ping
	}

	var limiter *rate.Limiter
	if cfg.RateLimitRPS > 0 {
		limiter = rate.NewLimiter(rate.Limit(cfg.RateLimitRPS), cfg.RateLimitBurst)
	}

	httpServer := &http.Server{
		Addr:    cfg.ListenAddr,
		Handler: srv.routes(limiter),
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("listening", zap.String("addr", cfg.ListenAddr))
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	select {
	case err := <-errCh:
		return err
	case sig := <-sigCh:
		logger.Info("shutting down", zap.String("signal", sig.String()))
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(ctx); err != nil {
		return err
	}
	if memcached != nil {
		_ = memcached.Close()
	}
	return nil
}
