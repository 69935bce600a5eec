package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/dtroode/cogedon-server/internal/metrics"
)

// Metrics records request counts and latencies. Requests that match no
// route share one label so arbitrary paths cannot grow the series set.
func Metrics(c *gin.Context) {
	start := time.Now()
	c.Next()

	endpoint := c.FullPath()
	if endpoint == "" {
		endpoint = "unmatched"
	}

	metrics.RecordHTTPRequest(c.Request.Method, endpoint, c.Writer.Status(), time.Since(start))
}
