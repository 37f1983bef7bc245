// README: Saved-trip handlers: save, list, fetch, delete, dashboard, profile.
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"tripweaver/internal/http/middleware"
	"tripweaver/internal/modules/itinerary"
	"tripweaver/internal/modules/profile"
	"tripweaver/internal/modules/trips"
)

type TripHandler struct {
	trips    *trips.Service
	profiles profile.Repository
}

func NewTripHandler(tripSvc *trips.Service, profiles profile.Repository) *TripHandler {
	return &TripHandler{trips: tripSvc, profiles: profiles}
}

// saveTripReq is the merged planner result: the originating request fields
// plus the generated itinerary sections.
type saveTripReq struct {
	Destination   string                   `json:"destination"`
	Days          int                      `json:"days"`
	Budget        float64                  `json:"budget"`
	Currency      string                   `json:"currency"`
	Overview      string                   `json:"overview"`
	DayPlans      []itinerary.DayPlan      `json:"dayPlans"`
	Weather       []itinerary.WeatherEntry `json:"weather"`
	CostBreakdown []itinerary.CostItem     `json:"costBreakdown"`
	Places        []itinerary.Place        `json:"places"`
}

// Save handles POST /api/trips.
func (h *TripHandler) Save(c *gin.Context) {
	var req saveTripReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}

	saved, err := h.trips.Save(c.Request.Context(), trips.SaveCommand{
		UserID: middleware.CallerUID(c),
		Request: itinerary.TripRequest{
			Destination: req.Destination,
			Days:        req.Days,
			Budget:      req.Budget,
			Currency:    req.Currency,
		},
		Itinerary: itinerary.Itinerary{
			Overview:      req.Overview,
			DayPlans:      req.DayPlans,
			Weather:       req.Weather,
			CostBreakdown: req.CostBreakdown,
			Places:        req.Places,
		},
	})
	if err != nil {
		writeTripError(c, err)
		return
	}
	writeJSON(c, http.StatusCreated, saved)
}

// List handles GET /api/trips.
func (h *TripHandler) List(c *gin.Context) {
	list, err := h.trips.List(c.Request.Context(), middleware.CallerUID(c))
	if err != nil {
		writeTripError(c, err)
		return
	}
	if list == nil {
		list = []trips.SavedTrip{}
	}
	writeJSON(c, http.StatusOK, gin.H{"trips": list})
}

// Get handles GET /api/trips/:id.
func (h *TripHandler) Get(c *gin.Context) {
	t, err := h.trips.Get(c.Request.Context(), middleware.CallerUID(c), c.Param("id"))
	if err != nil {
		writeTripError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, t)
}

// Delete handles DELETE /api/trips/:id.
func (h *TripHandler) Delete(c *gin.Context) {
	if err := h.trips.Delete(c.Request.Context(), middleware.CallerUID(c), c.Param("id")); err != nil {
		writeTripError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, gin.H{"status": "deleted"})
}

// Dashboard handles GET /api/dashboard: profile name (falling back to the
// token email), trip list, and aggregate stats.
func (h *TripHandler) Dashboard(c *gin.Context) {
	uid := middleware.CallerUID(c)

	summary, list, err := h.trips.Summarize(c.Request.Context(), uid)
	if err != nil {
		writeTripError(c, err)
		return
	}
	if list == nil {
		list = []trips.SavedTrip{}
	}

	displayName := middleware.CallerEmail(c)
	p, err := h.profiles.Get(c.Request.Context(), uid)
	if err != nil && !errors.Is(err, profile.ErrNotFound) {
		writeError(c, http.StatusInternalServerError, "internal error")
		return
	}
	if p != nil && p.DisplayName != "" {
		displayName = p.DisplayName
	}

	writeJSON(c, http.StatusOK, gin.H{
		"display_name": displayName,
		"summary":      summary,
		"trips":        list,
	})
}

type updateProfileReq struct {
	DisplayName string `json:"display_name"`
}

// UpdateProfile handles PUT /api/profile.
func (h *TripHandler) UpdateProfile(c *gin.Context) {
	var req updateProfileReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}
	p := &profile.Profile{UserID: middleware.CallerUID(c), DisplayName: req.DisplayName}
	if err := h.profiles.Upsert(c.Request.Context(), p); err != nil {
		writeError(c, http.StatusInternalServerError, "internal error")
		return
	}
	writeJSON(c, http.StatusOK, p)
}
