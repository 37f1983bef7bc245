// README: Base handler utilities (JSON helpers, error-kind to status mapping).
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"tripweaver/internal/modules/itinerary"
	"tripweaver/internal/modules/trips"
)

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(c *gin.Context, status int, v any) {
	c.JSON(status, v)
}

func writeError(c *gin.Context, status int, msg string) {
	writeJSON(c, status, errorResponse{Error: msg})
}

// writeGenerateError maps the tagged generation error kinds onto the wire
// statuses: 400 for rejected input, 429 for upstream rate limiting, 402 for
// quota exhaustion, and 500 for everything else (configuration, no content,
// malformed replies, transport failures).
func writeGenerateError(c *gin.Context, err error) {
	kind, ok := itinerary.KindOf(err)
	if !ok {
		writeError(c, http.StatusInternalServerError, "internal error")
		return
	}
	switch kind {
	case itinerary.KindBadRequest:
		writeError(c, http.StatusBadRequest, err.Error())
	case itinerary.KindRateLimited:
		writeError(c, http.StatusTooManyRequests, err.Error())
	case itinerary.KindQuotaExhausted:
		writeError(c, http.StatusPaymentRequired, err.Error())
	default:
		writeError(c, http.StatusInternalServerError, err.Error())
	}
}

func writeTripError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, trips.ErrBadRequest):
		writeError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, trips.ErrNotFound):
		writeError(c, http.StatusNotFound, err.Error())
	default:
		writeError(c, http.StatusInternalServerError, "internal error")
	}
}
