package httpapi

import (
	"context"
	"encoding/json"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"irisd/internal/service"
	"irisd/pkg/types"
)

// Service defines the methods required by the HTTP API layer.
type Service interface {
	ListModels() []types.Model
	Status() types.StatusResponse
	Predict(ctx context.Context, req types.PredictRequest) (types.PredictResponse, error)
	Ready() bool
}

// NewMux builds the router for the prediction API.
func NewMux(svc Service) http.Handler {
	r := chi.NewRouter()
	// Basic middlewares: request id, real ip, recoverer
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	// Compression for JSON endpoints
	r.Use(middleware.Compress(5))
	// Security headers
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("X-Content-Type-Options", "nosniff")
			next.ServeHTTP(w, r)
		})
	})
	if corsEnabled {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins: corsAllowedOrigins,
			AllowedMethods: corsAllowedMethods,
			AllowedHeaders: corsAllowedHeaders,
		}))
	}
	r.Use(MetricsMiddleware)
	r.Use(rateLimitMiddleware)

	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(types.MessageResponse{Message: "iris model API is running"})
	})

	r.Get("/models", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(types.ModelsResponse{Models: svc.ListModels()}); err != nil {
			writeJSONError(w, http.StatusInternalServerError, "failed to encode response")
			return
		}
	})

	r.Get("/status", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(svc.Status()); err != nil {
			writeJSONError(w, http.StatusInternalServerError, "failed to encode response")
			return
		}
	})

	r.Post("/predict", func(w http.ResponseWriter, r *http.Request) {
		handlePredict(svc, w, r)
	})

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	r.Get("/readyz", func(w http.ResponseWriter, r *http.Request) {
		if svc.Ready() {
			w.WriteHeader(http.StatusOK)
			w.Write([]byte("ready"))
			return
		}
		w.WriteHeader(http.StatusServiceUnavailable)
		w.Write([]byte("loading"))
	})

	// Prometheus metrics endpoint
	r.Get("/metrics", promhttp.Handler().ServeHTTP)

	// Swagger UI when built with -tags=swagger
	MountSwagger(r)

	return r
}

func handlePredict(svc Service, w http.ResponseWriter, r *http.Request) {
	// Content-Type check
	ct := r.Header.Get("Content-Type")
	if ct == "" || !strings.HasPrefix(strings.ToLower(ct), "application/json") {
		writeJSONError(w, http.StatusUnsupportedMediaType, "Content-Type must be application/json")
		return
	}
	// Limit body size (configurable, default 1MiB)
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	var req types.PredictRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		// If exceeded size, MaxBytesReader may cause an error; still return 400 to avoid size leak details
		writeJSONError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if msg := validatePredict(req); msg != "" {
		writeJSONError(w, http.StatusBadRequest, msg)
		return
	}
	if msg := checkMeasurements(req); msg != "" {
		writeJSONError(w, http.StatusUnprocessableEntity, msg)
		return
	}

	start := time.Now()
	lvl := requestLogLevel(r)
	if lvl >= LevelInfo && zlog != nil {
		z := zlog.Info().Str("path", r.URL.Path).Str("model", req.Model)
		if rid := middleware.GetReqID(r.Context()); rid != "" {
			z = z.Str("request_id", rid)
		}
		z.Msg("predict start")
	}

	// Join server base context with request context so shutdown cancels work too.
	joinedCtx, cancel := joinContexts(serverBaseCtx, r.Context())
	defer cancel()
	if predictTimeout > 0 {
		var tcancel context.CancelFunc
		joinedCtx, tcancel = context.WithTimeout(joinedCtx, predictTimeout)
		defer tcancel()
	}

	resp, err := svc.Predict(joinedCtx, req)
	if err != nil {
		// If context was canceled (client disconnect or shutdown), just return.
		if r.Context().Err() != nil || serverBaseCtx.Err() != nil {
			return
		}
		status := predictErrorStatus(err)
		if status == http.StatusTooManyRequests {
			IncrementBackpressure("queue_full")
		}
		writeJSONError(w, status, err.Error())
		logPredictEnd(r, lvl, status, start, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		writeJSONError(w, http.StatusInternalServerError, "failed to encode response")
		return
	}
	logPredictEnd(r, lvl, http.StatusOK, start, nil)
}

// predictErrorStatus maps well-known service errors to HTTP status codes.
func predictErrorStatus(err error) int {
	switch {
	case service.IsModelNotFound(err):
		return http.StatusNotFound
	case service.IsTooBusy(err):
		return http.StatusTooManyRequests
	case service.IsInvalidInput(err):
		return http.StatusUnprocessableEntity
	case service.IsArtifactUnavailable(err):
		return http.StatusServiceUnavailable
	}
	if he, ok := err.(HTTPError); ok {
		return he.StatusCode()
	}
	if err == context.DeadlineExceeded {
		return http.StatusGatewayTimeout
	}
	return http.StatusInternalServerError
}

func logPredictEnd(r *http.Request, lvl LogLevel, status int, start time.Time, err error) {
	if lvl < LevelInfo || zlog == nil {
		return
	}
	z := zlog.Info().Int("status", status).Dur("dur", time.Since(start))
	if rid := middleware.GetReqID(r.Context()); rid != "" {
		z = z.Str("request_id", rid)
	}
	if err != nil {
		z = z.Err(err)
	}
	z.Msg("predict end")
}

// validatePredict reports a 400 message when a required measurement is absent.
func validatePredict(req types.PredictRequest) string {
	for _, m := range []struct {
		name string
		val  *float64
	}{
		{"sepal_length", req.SepalLength},
		{"sepal_width", req.SepalWidth},
		{"petal_length", req.PetalLength},
		{"petal_width", req.PetalWidth},
	} {
		if m.val == nil {
			return m.name + " is required"
		}
	}
	return ""
}

// checkMeasurements reports a 422 message for values a flower cannot have.
func checkMeasurements(req types.PredictRequest) string {
	for _, m := range []struct {
		name string
		val  *float64
	}{
		{"sepal_length", req.SepalLength},
		{"sepal_width", req.SepalWidth},
		{"petal_length", req.PetalLength},
		{"petal_width", req.PetalWidth},
	} {
		if *m.val < 0 {
			return m.name + " must not be negative"
		}
	}
	return ""
}

// rateLimitMiddleware rejects clients that exceed the configured per-IP rate.
// Probe and metrics endpoints are exempt so the orchestrator is never throttled.
func rateLimitMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/healthz", "/readyz", "/metrics":
			next.ServeHTTP(w, r)
			return
		}
		if ipLimiter != nil && !ipLimiter.Allow(clientIP(r), time.Now()) {
			IncrementBackpressure("rate_limit")
			writeJSONError(w, http.StatusTooManyRequests, "rate limit exceeded")
			return
		}
		next.ServeHTTP(w, r)
	})
}

// clientIP strips the port from RemoteAddr; middleware.RealIP has already
// substituted forwarded addresses where present.
func clientIP(r *http.Request) string {
	if host, _, err := net.SplitHostPort(r.RemoteAddr); err == nil {
		return host
	}
	return r.RemoteAddr
}
