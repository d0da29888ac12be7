package middleware

import (
	"log/slog"
	"net/http"
	"time"
)

// Logging logs every backend call: method, path, status, request id and
// duration. Transport failures are logged at error level, non-2xx responses
// at warn.
func Logging() Middleware {
	return func(next http.RoundTripper) http.RoundTripper {
		return RoundTripperFunc(func(req *http.Request) (*http.Response, error) {
			start := time.Now()
			requestID := req.Header.Get(HeaderRequestID)

			resp, err := next.RoundTrip(req)

			duration := time.Since(start).Milliseconds()
			if err != nil {
				slog.ErrorContext(req.Context(), "Request failed",
					"method", req.Method,
					"path", req.URL.Path,
					"request_id", requestID,
					"error", err,
					"duration_ms", duration,
				)
				return resp, err
			}

			if resp.StatusCode >= 300 {
				slog.WarnContext(req.Context(), "Request not ok",
					"method", req.Method,
					"path", req.URL.Path,
					"status", resp.StatusCode,
					"request_id", requestID,
					"duration_ms", duration,
				)
			} else {
				slog.DebugContext(req.Context(), "Request ok",
					"method", req.Method,
					"path", req.URL.Path,
					"status", resp.StatusCode,
					"request_id", requestID,
					"duration_ms", duration,
				)
			}

			return resp, err
		})
	}
}
