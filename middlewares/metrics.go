package middlewares

import (
	"net/http"
	"strconv"

	"Yatube/monitoring"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics records request counts and latency labelled by route template.
func Metrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.URL.Path == "/metrics" {
			c.Next()
			return
		}

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}

		monitoring.ActiveConnections.Inc()
		timer := prometheus.NewTimer(monitoring.HttpRequestDuration.WithLabelValues(route, c.Request.Method))

		defer func() {
			r := recover()
			status := c.Writer.Status()
			// A panicking handler has not written its response yet; recovery
			// further up the chain answers 500.
			if r != nil {
				status = http.StatusInternalServerError
			}
			timer.ObserveDuration()
			monitoring.ActiveConnections.Dec()
			monitoring.HttpRequestsTotal.WithLabelValues(route, c.Request.Method, strconv.Itoa(status)).Inc()
			if r != nil {
				panic(r)
			}
		}()

		c.Next()
	}
}
