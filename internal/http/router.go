// README: HTTP router registration.
package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tripweaver/internal/http/handlers"
	"tripweaver/internal/http/middleware"
	"tripweaver/internal/infra"
	"tripweaver/internal/modules/itinerary"
	"tripweaver/internal/modules/profile"
	"tripweaver/internal/modules/trips"
)

type ServerDeps struct {
	Itinerary *itinerary.Service
	Trips     *trips.Service
	Profiles  profile.Repository
	Verifier  infra.TokenVerifier
}

func NewRouter(deps ServerDeps) *gin.Engine {
	r := gin.New()
	r.Use(middleware.Recovery(), middleware.Logging(), middleware.CORS())

	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})

	itineraryHandler := handlers.NewItineraryHandler(deps.Itinerary)
	r.POST("/api/itineraries/generate", itineraryHandler.Generate)

	tripHandler := handlers.NewTripHandler(deps.Trips, deps.Profiles)
	authed := r.Group("/api", middleware.Auth(deps.Verifier))
	authed.POST("/trips", tripHandler.Save)
	authed.GET("/trips", tripHandler.List)
	authed.GET("/trips/:id", tripHandler.Get)
	authed.DELETE("/trips/:id", tripHandler.Delete)
	authed.GET("/dashboard", tripHandler.Dashboard)
	authed.PUT("/profile", tripHandler.UpdateProfile)

	return r
}
