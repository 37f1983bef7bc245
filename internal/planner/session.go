// README: Planner session: form state, guarded generate/save actions, result views.
package planner

import (
	"context"
	"errors"
	"strings"
	"sync"

	"tripweaver/internal/modules/itinerary"
)

// Phase is the generation state: idle → generating → (result | error) → idle.
type Phase string

const (
	PhaseIdle       Phase = "idle"
	PhaseGenerating Phase = "generating"
)

// SaveState tracks persistence independently: unsaved → saving → saved.
type SaveState string

const (
	SaveStateUnsaved SaveState = "unsaved"
	SaveStateSaving  SaveState = "saving"
	SaveStateSaved   SaveState = "saved"
)

// Tabs are the fixed result views, in display order.
var Tabs = []string{"overview", "itinerary", "weather", "budget", "places"}

var (
	ErrNoDestination    = errors.New("destination is required")
	ErrGenerateInFlight = errors.New("generation already in flight")
	ErrNothingToSave    = errors.New("no result to save")
	ErrSignInRequired   = errors.New("please sign in to save trips")
	ErrSaveInFlight     = errors.New("save already in flight")
	ErrAlreadySaved     = errors.New("trip already saved")
	ErrUnknownTab       = errors.New("unknown tab")
)

// User is the authenticated identity the session saves trips under.
type User struct {
	ID      string
	Email   string
	IDToken string
}

// Form is the trip request input state. Defaults mirror the planner form.
type Form struct {
	Destination string
	Days        int
	Budget      float64
	Currency    string
}

// DefaultForm returns the form's initial values.
func DefaultForm() Form {
	return Form{Days: 5, Budget: 2000, Currency: "USD"}
}

// Result is the generated itinerary merged with its originating request
// fields into a single object, exactly as the save endpoint expects it.
type Result struct {
	itinerary.TripRequest
	itinerary.Itinerary
}

// Session models one planner user session. It is created at application
// start and torn down on sign-out; the identity it carries is read-only
// between SignIn and SignOut. All methods are safe for concurrent use, but
// the generate and save actions are deliberately non-reentrant: a second
// invocation while one is pending is suppressed, not queued. An in-flight
// request is never cancelled by the guard; an abandoned response still lands
// in session state.
type Session struct {
	mu sync.Mutex

	gen    Generator
	writer TripWriter

	form      Form
	user      *User
	result    *Result
	phase     Phase
	saveState SaveState
	activeTab string
}

func NewSession(gen Generator, writer TripWriter) *Session {
	return &Session{
		gen:       gen,
		writer:    writer,
		form:      DefaultForm(),
		phase:     PhaseIdle,
		saveState: SaveStateUnsaved,
		activeTab: Tabs[0],
	}
}

// SignIn installs the authenticated identity.
func (s *Session) SignIn(u User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.user = &u
}

// SignOut clears the identity. Saved state and results are kept; they simply
// can no longer be persisted.
func (s *Session) SignOut() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.user = nil
}

// CurrentUser returns a copy of the signed-in identity, or nil.
func (s *Session) CurrentUser() *User {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.user == nil {
		return nil
	}
	u := *s.user
	return &u
}

// SetForm replaces the form state.
func (s *Session) SetForm(f Form) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.form = f
}

// Form returns the current form state.
func (s *Session) Form() Form {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.form
}

// Generate runs the guarded generate action. With an empty destination or a
// generation already pending it performs no network call. On success the
// merged result replaces the previous one, the active view resets to the
// first tab, and the save state resets to unsaved. On failure the previous
// result, tab, and save state are left untouched.
func (s *Session) Generate(ctx context.Context) (*Result, error) {
	s.mu.Lock()
	if strings.TrimSpace(s.form.Destination) == "" {
		s.mu.Unlock()
		return nil, ErrNoDestination
	}
	if s.phase == PhaseGenerating {
		s.mu.Unlock()
		return nil, ErrGenerateInFlight
	}
	s.phase = PhaseGenerating
	req := itinerary.TripRequest{
		Destination: s.form.Destination,
		Days:        s.form.Days,
		Budget:      s.form.Budget,
		Currency:    s.form.Currency,
	}
	s.mu.Unlock()

	it, err := s.gen.Generate(ctx, req)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.phase = PhaseIdle
	if err != nil {
		return nil, err
	}

	res := &Result{TripRequest: req, Itinerary: *it}
	s.result = res
	s.activeTab = Tabs[0]
	s.saveState = SaveStateUnsaved

	out := *res
	return &out, nil
}

// Save runs the guarded save action: it requires a signed-in user and a
// result, writes exactly one record per generation, and suppresses duplicate
// writes until the next successful generation.
func (s *Session) Save(ctx context.Context) error {
	s.mu.Lock()
	if s.user == nil {
		s.mu.Unlock()
		return ErrSignInRequired
	}
	if s.result == nil {
		s.mu.Unlock()
		return ErrNothingToSave
	}
	switch s.saveState {
	case SaveStateSaving:
		s.mu.Unlock()
		return ErrSaveInFlight
	case SaveStateSaved:
		s.mu.Unlock()
		return ErrAlreadySaved
	}
	s.saveState = SaveStateSaving
	token := s.user.IDToken
	res := *s.result
	s.mu.Unlock()

	err := s.writer.SaveTrip(ctx, token, res)

	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		s.saveState = SaveStateUnsaved
		return err
	}
	s.saveState = SaveStateSaved
	return nil
}

// Result returns a copy of the current merged result, or nil.
func (s *Session) Result() *Result {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.result == nil {
		return nil
	}
	out := *s.result
	return &out
}

// Phase returns the generation phase.
func (s *Session) Phase() Phase {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.phase
}

// SaveStatus returns the persistence state.
func (s *Session) SaveStatus() SaveState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.saveState
}

// ActiveTab returns the currently selected result view.
func (s *Session) ActiveTab() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.activeTab
}

// SetActiveTab switches the result view.
func (s *Session) SetActiveTab(tab string) error {
	for _, t := range Tabs {
		if t == tab {
			s.mu.Lock()
			defer s.mu.Unlock()
			s.activeTab = tab
			return nil
		}
	}
	return ErrUnknownTab
}
