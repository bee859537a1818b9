package apiserver

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/vido/mediatag/internal/catalogstore"
)

// NewRouter builds the Gin engine exposing health and POST /v1/parse,
// following the teacher's cors-then-routes wiring in cmd/api/main.go.
func NewRouter(db *catalogstore.DB, corsOrigins []string) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(RequestID())
	router.Use(RequestLogger())

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = corsOrigins
	corsConfig.AllowMethods = []string{"GET", "POST", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Accept", "Authorization"}
	router.Use(cors.New(corsConfig))

	router.GET("/health", HealthHandler(db))
	router.POST("/v1/parse", ParseHandler())

	return router
}
