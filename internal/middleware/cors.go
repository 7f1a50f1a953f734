package middleware

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// CORS middleware to handle cross-origin requests. Origins are left open
// so any frontend can talk to the API during development.
func CORS() gin.HandlerFunc {
	cfg := cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowHeaders:    []string{"Content-Type", "Accept", "Origin"},
		MaxAge:          12 * time.Hour,
	}
	return cors.New(cfg)
}
