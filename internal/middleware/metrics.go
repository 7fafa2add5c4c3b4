package middleware

import (
	"net/http"
	"strconv"
	"time"

	"kbikes-api/prometheus"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// MetricsMiddleware records request counts and durations for every route
func MetricsMiddleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := time.Now()

		err := next(c)

		status := strconv.Itoa(c.Response().Status)
		method := c.Request().Method
		path := c.Path()

		prometheus.HttpRequestsTotal.WithLabelValues(method, path, status).Inc()
		prometheus.HttpRequestDuration.WithLabelValues(method, path, status).
			Observe(time.Since(start).Seconds())

		return err
	}
}

// MetricsHandler returns the Prometheus scrape handler
func MetricsHandler() http.Handler {
	return promhttp.Handler()
}
