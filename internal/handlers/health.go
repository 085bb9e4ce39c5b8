package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// DBPinger is the slice of the store the health endpoints need.
type DBPinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler serves the unauthenticated health and connectivity checks.
// The store may be nil, in which case health reports Disconnected and
// test-db fails.
type HealthHandler struct {
	store DBPinger
}

func NewHealthHandler(store DBPinger) *HealthHandler {
	return &HealthHandler{store: store}
}

// Health reports process liveness. It never fails; database state is
// reported from the connection handle without a round-trip.
func (h *HealthHandler) Health(c *gin.Context) {
	database := "Disconnected"
	if h.store != nil {
		database = "Connected"
	}

	c.JSON(http.StatusOK, gin.H{
		"status":    "OK",
		"message":   "VolunteerHub Backend is running",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"database":  database,
	})
}

// TestDB round-trips a ping to the database.
func (h *HealthHandler) TestDB(c *gin.Context) {
	if h.store == nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"message": "Database connection failed",
			"error":   "database not connected",
		})
		return
	}

	if err := h.store.Ping(c.Request.Context()); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"message": "Database connection failed",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Database connection successful",
		"result":  gin.H{"ok": 1},
	})
}
