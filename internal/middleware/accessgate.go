// Package middleware provides HTTP middleware for the relay server.
package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/propertymatcher/listings-relay/pkg/metrics"
)

// CallerKeyHeader carries the shared caller secret.
const CallerKeyHeader = "x-api-key"

// AccessGate rejects calls that do not carry the configured caller key.
// With no key configured the gate is a no-op and access is open; startup
// logs a warning for that case.
func AccessGate(callerKey string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if callerKey == "" {
				next.ServeHTTP(w, r)
				return
			}

			provided := r.Header.Get(CallerKeyHeader)
			if provided == "" || subtle.ConstantTimeCompare([]byte(provided), []byte(callerKey)) != 1 {
				metrics.AccessDeniedTotal.Inc()
				http.Error(w, `{"error":"invalid or missing x-api-key"}`, http.StatusUnauthorized)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
