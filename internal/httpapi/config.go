package httpapi

import (
	"time"

	"irisd/internal/ratelimit"
)

// maxBodyBytes controls the maximum allowed request body size for JSON endpoints.
var maxBodyBytes int64 = 1 << 20

// SetMaxBodyBytes allows configuring the maximum request body size.
func SetMaxBodyBytes(n int64) {
	if n <= 0 {
		maxBodyBytes = 1 << 20
		return
	}
	maxBodyBytes = n
}

// predictTimeout controls the maximum duration a /predict request may run.
// Zero means no additional timeout beyond server/connection timeouts.
var predictTimeout = time.Duration(0)

// SetPredictTimeoutSeconds sets the predict timeout in seconds (0 disables).
func SetPredictTimeoutSeconds(sec int64) {
	if sec < 0 {
		sec = 0
	}
	predictTimeout = time.Duration(sec) * time.Second
}

// CORS configuration (opt-in). If disabled, no CORS middleware is added.
var (
	corsEnabled        bool
	corsAllowedOrigins []string
	corsAllowedMethods []string
	corsAllowedHeaders []string
)

// SetCORSOptions configures CORS behavior for the HTTP server.
func SetCORSOptions(enabled bool, origins, methods, headers []string) {
	corsEnabled = enabled
	corsAllowedOrigins = append([]string(nil), origins...)
	corsAllowedMethods = append([]string(nil), methods...)
	corsAllowedHeaders = append([]string(nil), headers...)
}

// ipLimiter throttles requests per client IP. Nil disables limiting.
var ipLimiter *ratelimit.MapLimiter

// SetRateLimit configures per-client-IP throttling (rps<=0 disables).
func SetRateLimit(rps float64, burst int) {
	ipLimiter = ratelimit.New(rps, burst, 10*time.Minute)
}
