package apiserver

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vido/mediatag/internal/catalogstore"
)

// HealthHandler reports catalog-store health the way the teacher's
// HealthCheckHandler did, adapted to the renamed catalogstore package.
func HealthHandler(db *catalogstore.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		health := db.Health(c.Request.Context())

		status := http.StatusOK
		if health.Status == "unhealthy" {
			status = http.StatusServiceUnavailable
		}
		c.JSON(status, gin.H{
			"status":           health.Status,
			"latency_ms":       health.Latency.Milliseconds(),
			"wal_enabled":      health.WALEnabled,
			"open_connections": health.OpenConnections,
			"error":            health.Error,
		})
	}
}
