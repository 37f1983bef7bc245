// README: Itinerary generation endpoint (the AI proxy).
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tripweaver/internal/modules/itinerary"
)

type ItineraryHandler struct {
	itinerary *itinerary.Service
}

func NewItineraryHandler(svc *itinerary.Service) *ItineraryHandler {
	return &ItineraryHandler{itinerary: svc}
}

type generateResponse struct {
	Success   bool                 `json:"success"`
	Itinerary *itinerary.Itinerary `json:"itinerary"`
}

// Generate handles POST /api/itineraries/generate.
func (h *ItineraryHandler) Generate(c *gin.Context) {
	var req itinerary.TripRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}

	it, err := h.itinerary.Generate(c.Request.Context(), req)
	if err != nil {
		writeGenerateError(c, err)
		return
	}

	writeJSON(c, http.StatusOK, generateResponse{Success: true, Itinerary: it})
}
