package bookingform

import (
	"context"
	"sync"
	"time"

	"wargameshc/internal/catalog"
)

// State is the modal lifecycle position. Transitions:
//
//	Closed → Editing → Submitting → Success | Error
//
// Error returns to Editing with the draft intact; Success returns to Closed
// after acknowledgment. Closing an edited form passes through ConfirmDiscard.
type State int

const (
	StateClosed State = iota
	StateEditing
	StateConfirmDiscard
	StateSubmitting
	StateSuccess
	StateError
)

func (s State) String() string {
	switch s {
	case StateClosed:
		return "closed"
	case StateEditing:
		return "editing"
	case StateConfirmDiscard:
		return "confirm-discard"
	case StateSubmitting:
		return "submitting"
	case StateSuccess:
		return "success"
	case StateError:
		return "error"
	default:
		return "unknown"
	}
}

// Receipt is the backend acknowledgment for an accepted booking.
type Receipt struct {
	ID        int64  `json:"id"`
	Reference string `json:"reference"`
	Status    string `json:"status"`
}

// Submitter delivers a finished payload to the booking backend. Failures
// must be either *ConnectivityError (backend unreachable) or *RejectedError
// (backend refused the booking).
type Submitter interface {
	Submit(ctx context.Context, payload Payload) (*Receipt, error)
}

// Controller owns one booking draft and its modal lifecycle. It replaces the
// page-level globals of the original site: draft, UI state, and language
// live here and the UI binds named operations to its methods.
type Controller struct {
	mu sync.Mutex

	draft     *Draft
	state     State
	lang      catalog.Lang
	rates     Rates
	submitter Submitter
	now       func() time.Time

	inFlight bool
	errMsg   string
	receipt  *Receipt
}

// Option configures a Controller.
type Option func(*Controller)

// WithRates overrides the default price table.
func WithRates(r Rates) Option {
	return func(c *Controller) { c.rates = r }
}

// WithLanguage sets the initial UI language.
func WithLanguage(lang catalog.Lang) Option {
	return func(c *Controller) { c.lang = lang }
}

// WithClock injects the time source used for timestamps and date validation.
func WithClock(now func() time.Time) Option {
	return func(c *Controller) { c.now = now }
}

// New builds a Controller in the Closed state. Construct once per page.
func New(submitter Submitter, opts ...Option) *Controller {
	c := &Controller{
		draft:     NewDraft(),
		state:     StateClosed,
		lang:      catalog.LangEN,
		rates:     DefaultRates(),
		submitter: submitter,
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// OpenBlank resets the draft to one empty player, clears any event lock, and
// opens the form. Calling it twice yields the same draft shape as once.
func (c *Controller) OpenBlank() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.inFlight {
		return
	}
	c.draft = NewDraft()
	c.errMsg = ""
	c.receipt = nil
	c.state = StateEditing
}

// OpenForEvent opens the form pre-filled and locked to a catalog event.
// An unknown event id is a no-op: the caller wired a stale button, not the
// user, so there is nothing to tell them.
func (c *Controller) OpenForEvent(eventID string) {
	ev, ok := catalog.Get(eventID)
	if !ok {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.inFlight {
		return
	}
	d := NewDraft()
	d.EventID = ev.ID
	d.CheckIn = ev.CheckIn
	d.CheckOut = ev.CheckOut
	d.PackageType = PackageCampaignWeekend
	c.draft = d
	c.errMsg = ""
	c.receipt = nil
	c.state = StateEditing
}

// Close requests closing the form. With unsaved data it transitions to
// ConfirmDiscard instead of closing outright.
func (c *Controller) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	switch c.state {
	case StateEditing, StateError:
		if c.draft.IsDirty() {
			c.state = StateConfirmDiscard
			return
		}
		c.reset()
	case StateSuccess:
		c.reset()
	}
}

// ConfirmDiscard abandons the draft from the discard prompt.
func (c *Controller) ConfirmDiscard() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state == StateConfirmDiscard {
		c.reset()
	}
}

// CancelDiscard returns to editing with the draft intact.
func (c *Controller) CancelDiscard() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state == StateConfirmDiscard {
		c.state = StateEditing
	}
}

// AcknowledgeSuccess closes the form after the success screen.
func (c *Controller) AcknowledgeSuccess() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state == StateSuccess {
		c.reset()
	}
}

// AcknowledgeError returns from the error screen to editing; the draft is
// untouched so the user can retry without re-entering anything.
func (c *Controller) AcknowledgeError() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state == StateError {
		c.state = StateEditing
	}
}

// reset must run with the lock held.
func (c *Controller) reset() {
	c.draft = NewDraft()
	c.errMsg = ""
	c.state = StateClosed
}

// SetLanguage switches UI language and therefore pricing currency.
func (c *Controller) SetLanguage(lang catalog.Lang) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.lang = lang
}

// AddPlayer appends a blank player card. Blocked while a submission is in
// flight.
func (c *Controller) AddPlayer() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.editable(); err != nil {
		return err
	}
	c.draft.AddPlayer()
	return nil
}

// RemovePlayer removes the player at index; removing the last player is
// rejected with ErrLastPlayer for the UI to surface.
func (c *Controller) RemovePlayer(index int) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.editable(); err != nil {
		return err
	}
	return c.draft.RemovePlayer(index)
}

// UpdateField mutates one draft field. Duration and price estimate are
// derived on read, so no explicit recompute step is needed here.
func (c *Controller) UpdateField(path, value string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.editable(); err != nil {
		return err
	}
	return c.draft.UpdateField(path, value)
}

func (c *Controller) editable() error {
	if c.inFlight {
		return ErrSubmitInFlight
	}
	if c.state != StateEditing {
		return ErrNotEditing
	}
	return nil
}

// Validate returns the current field-level errors without changing state.
func (c *Controller) Validate() []FieldError {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.draft.Validate(c.now())
}

// Submit runs validate → build payload → deliver. Only one submission may be
// outstanding: a re-entrant call returns ErrSubmitInFlight without touching
// the network, since the backend has no idempotency key and a duplicate call
// would create a duplicate booking. On success the draft resets; on failure
// it is preserved and the form returns to an interactive state.
func (c *Controller) Submit(ctx context.Context) error {
	c.mu.Lock()
	if c.inFlight {
		c.mu.Unlock()
		return ErrSubmitInFlight
	}
	if c.state != StateEditing {
		c.mu.Unlock()
		return ErrNotEditing
	}

	if errs := c.draft.Validate(c.now()); len(errs) > 0 {
		c.mu.Unlock()
		return &ValidationFailed{Fields: errs}
	}

	// Snapshot before releasing the lock: the payload must not observe
	// edits made while the call is on the wire.
	payload := BuildPayload(c.draft.clone(), c.lang, c.rates, c.now())
	c.inFlight = true
	c.state = StateSubmitting
	c.mu.Unlock()

	receipt, err := c.submitter.Submit(ctx, payload)

	c.mu.Lock()
	defer c.mu.Unlock()
	c.inFlight = false

	if err != nil {
		c.errMsg = errorMessage(err)
		c.state = StateError
		return err
	}

	c.receipt = receipt
	c.draft = NewDraft()
	c.errMsg = ""
	c.state = StateSuccess
	return nil
}

func errorMessage(err error) string {
	switch e := err.(type) {
	case *ConnectivityError:
		return "Cannot connect to the booking service. Please check your connection and try again."
	case *RejectedError:
		if e.Message != "" {
			return e.Message
		}
		return "Your booking could not be processed. Please try again."
	default:
		return "Your booking could not be processed. Please try again."
	}
}

// State returns the current modal state.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Draft returns a snapshot of the current draft for rendering.
func (c *Controller) Draft() Draft {
	c.mu.Lock()
	defer c.mu.Unlock()
	return *c.draft.clone()
}

// Language returns the active UI language.
func (c *Controller) Language() catalog.Lang {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lang
}

// ErrorMessage returns the user-visible message for the Error state.
func (c *Controller) ErrorMessage() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.errMsg
}

// Receipt returns the acknowledgment from the last successful submission.
func (c *Controller) Receipt() *Receipt {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.receipt
}

// Estimate computes the live price estimate for the current draft.
func (c *Controller) Estimate() Estimate {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.rates.Estimate(len(c.draft.Players), c.draft.Nights(), c.draft.Adults, c.lang)
}

// Nights exposes the derived stay duration for display.
func (c *Controller) Nights() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.draft.Nights()
}
