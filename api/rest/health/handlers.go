package health

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// returns the server health status; 503 when the database is unreachable
func Handler(db Pinger) gin.HandlerFunc {
	return func(c *gin.Context) {
		resp := Response{
			Status:   "healthy",
			Service:  "moneyapi",
			Version:  "1.0.0",
			Database: "up",
		}

		if err := db.Ping(c.Request.Context()); err != nil {
			resp.Status = "degraded"
			resp.Database = "down"
			c.JSON(http.StatusServiceUnavailable, resp)
			return
		}

		c.JSON(http.StatusOK, resp)
	}
}

// responds with pong for testing
func PingHandler(c *gin.Context) {
	c.JSON(http.StatusOK, PingResponse{Message: "pong"})
}
