package http

import (
	"net"
	"net/http"

	"go.uber.org/zap"

	"gcc-tools/logger"
	"gcc-tools/metrics"
)

func RateLimitMiddleware(
	limiter *RateLimiter,
	next http.Handler,
) http.Handler {

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {

		ip, _, err := net.SplitHostPort(r.RemoteAddr)
		if err != nil {
			ip = r.RemoteAddr
		}

		if !limiter.Allow(ip) {
			metrics.RateLimitedTotal.Inc()
			logger.Warn("rate limit exceeded", zap.String("ip", ip), zap.String("path", r.URL.Path))
			writeJSONError(w, r, http.StatusTooManyRequests, "rate limit exceeded")
			return
		}

		next.ServeHTTP(w, r)
	})
}
