// README: Tagged error taxonomy for the generation pipeline.
package itinerary

import (
	"errors"
	"fmt"
)

// Kind enumerates every way a generation can fail. Callers switch on the kind
// instead of comparing messages or HTTP statuses.
type Kind int

const (
	// KindBadRequest: the trip request failed server-side validation.
	KindBadRequest Kind = iota
	// KindConfig: the upstream credential is missing; no call was attempted.
	KindConfig
	// KindRateLimited: the gateway answered 429.
	KindRateLimited
	// KindQuotaExhausted: the gateway answered 402.
	KindQuotaExhausted
	// KindUpstream: any other non-success gateway status, carried in Status.
	KindUpstream
	// KindNoContent: the gateway succeeded but returned no usable text.
	KindNoContent
	// KindMalformedPayload: the reply text was not JSON after fence stripping.
	KindMalformedPayload
	// KindMalformedItinerary: the reply parsed but violates the itinerary shape.
	KindMalformedItinerary
)

// Error is the single error type the generation pipeline produces.
type Error struct {
	Kind Kind
	// Status is the upstream HTTP status for KindUpstream, zero otherwise.
	Status  int
	Message string
}

func (e *Error) Error() string { return e.Message }

// KindOf extracts the kind from err. ok is false for foreign errors
// (network failures, context cancellation), which callers treat as upstream.
func KindOf(err error) (Kind, bool) {
	var ge *Error
	if errors.As(err, &ge) {
		return ge.Kind, true
	}
	return 0, false
}

func badRequest(msg string) *Error {
	return &Error{Kind: KindBadRequest, Message: msg}
}

// Errors with the exact user-facing messages the original surfaced.
var (
	ErrMissingCredential = &Error{Kind: KindConfig, Message: "AI gateway key is not configured"}
	ErrRateLimited       = &Error{Kind: KindRateLimited, Message: "Rate limit exceeded. Please try again in a moment."}
	ErrQuotaExhausted    = &Error{Kind: KindQuotaExhausted, Message: "AI credits exhausted. Please add credits to continue."}
	ErrNoContent         = &Error{Kind: KindNoContent, Message: "no content from AI"}
)

// UpstreamError builds the generic gateway failure carrying the status code.
func UpstreamError(status int) *Error {
	return &Error{Kind: KindUpstream, Status: status, Message: fmt.Sprintf("AI gateway error: %d", status)}
}

// MalformedPayload reports a reply that was not valid JSON. The raw upstream
// text is deliberately not included so it never leaks to the caller.
func MalformedPayload(err error) *Error {
	return &Error{Kind: KindMalformedPayload, Message: "AI returned a malformed response"}
}

// MalformedItinerary reports a reply that parsed but misses required fields.
func MalformedItinerary(detail string) *Error {
	return &Error{Kind: KindMalformedItinerary, Message: "AI returned an incomplete itinerary: " + detail}
}
