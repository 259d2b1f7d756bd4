package bookingform

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wargameshc/internal/catalog"
)

type fakeSubmitter struct {
	mu      sync.Mutex
	calls   int
	gate    chan struct{} // when set, Submit blocks until closed
	receipt *Receipt
	err     error
}

func (f *fakeSubmitter) Submit(ctx context.Context, payload Payload) (*Receipt, error) {
	f.mu.Lock()
	f.calls++
	gate := f.gate
	f.mu.Unlock()
	if gate != nil {
		<-gate
	}
	return f.receipt, f.err
}

func (f *fakeSubmitter) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

func fixedClock() func() time.Time {
	return func() time.Time { return validateNow }
}

func fillValidDraft(t *testing.T, c *Controller) {
	t.Helper()
	for path, value := range map[string]string{
		"firstName":      "Arthur",
		"lastName":       "Wellesley",
		"email":          "arthur@example.com",
		"phone":          "081 234 5678",
		"checkIn":        "10/03/2026",
		"checkOut":       "13/03/2026",
		"players.0.firstName": "Arthur",
		"players.0.lastName":  "Wellesley",
		"players.0.age":       "57",
	} {
		require.NoError(t, c.UpdateField(path, value))
	}
}

func TestOpenBlankIsIdempotent(t *testing.T) {
	c := New(&fakeSubmitter{}, WithClock(fixedClock()))

	c.OpenBlank()
	first := c.Draft()
	c.OpenBlank()
	second := c.Draft()

	assert.Equal(t, first, second)
	assert.Len(t, second.Players, 1)
	assert.False(t, second.EventLocked())
	assert.Equal(t, StateEditing, c.State())
}

func TestOpenForEventLocksDatesAndPackage(t *testing.T) {
	c := New(&fakeSubmitter{}, WithClock(fixedClock()))

	c.OpenForEvent("waterloo")
	require.Equal(t, StateEditing, c.State())

	d := c.Draft()
	assert.Equal(t, "waterloo", d.EventID)
	assert.Equal(t, "06/03/2026", d.CheckIn)
	assert.Equal(t, "10/03/2026", d.CheckOut)
	assert.Equal(t, PackageCampaignWeekend, d.PackageType)

	assert.ErrorIs(t, c.UpdateField("checkIn", "01/01/2027"), ErrFieldLocked)
}

func TestOpenForEventUnknownIDIsNoOp(t *testing.T) {
	c := New(&fakeSubmitter{}, WithClock(fixedClock()))

	c.OpenForEvent("trafalgar")
	assert.Equal(t, StateClosed, c.State())
}

func TestCloseWithDirtyDraftAsksForConfirmation(t *testing.T) {
	c := New(&fakeSubmitter{}, WithClock(fixedClock()))
	c.OpenBlank()

	// Pristine draft closes straight away.
	c.Close()
	assert.Equal(t, StateClosed, c.State())

	c.OpenBlank()
	require.NoError(t, c.UpdateField("firstName", "Arthur"))
	c.Close()
	assert.Equal(t, StateConfirmDiscard, c.State())

	// Declining keeps the draft.
	c.CancelDiscard()
	assert.Equal(t, StateEditing, c.State())
	assert.Equal(t, "Arthur", c.Draft().FirstName)

	// Confirming discards it.
	c.Close()
	c.ConfirmDiscard()
	assert.Equal(t, StateClosed, c.State())
	c.OpenBlank()
	assert.Equal(t, "", c.Draft().FirstName)
}

func TestSubmitValidationFailureNeverHitsNetwork(t *testing.T) {
	sub := &fakeSubmitter{}
	c := New(sub, WithClock(fixedClock()))
	c.OpenBlank()

	err := c.Submit(context.Background())
	var vf *ValidationFailed
	require.ErrorAs(t, err, &vf)
	assert.NotEmpty(t, vf.Fields)
	assert.Equal(t, 0, sub.callCount())
	assert.Equal(t, StateEditing, c.State())
}

func TestSubmitSuccessResetsDraft(t *testing.T) {
	sub := &fakeSubmitter{receipt: &Receipt{ID: 7, Reference: "WHC-20260115-0042", Status: "pending"}}
	c := New(sub, WithClock(fixedClock()))
	c.OpenBlank()
	fillValidDraft(t, c)

	require.NoError(t, c.Submit(context.Background()))
	assert.Equal(t, StateSuccess, c.State())
	require.NotNil(t, c.Receipt())
	assert.Equal(t, "WHC-20260115-0042", c.Receipt().Reference)
	assert.False(t, c.Draft().IsDirty())

	c.AcknowledgeSuccess()
	assert.Equal(t, StateClosed, c.State())
}

func TestSubmitRejectionSurfacesBackendMessage(t *testing.T) {
	sub := &fakeSubmitter{err: &RejectedError{Message: "Invalid email"}}
	c := New(sub, WithClock(fixedClock()))
	c.OpenBlank()
	fillValidDraft(t, c)

	err := c.Submit(context.Background())
	require.Error(t, err)
	assert.Equal(t, StateError, c.State())
	assert.Equal(t, "Invalid email", c.ErrorMessage())

	// Draft fields remain populated as entered.
	d := c.Draft()
	assert.Equal(t, "Arthur", d.FirstName)
	assert.Equal(t, "arthur@example.com", d.Email)

	// The form returns to an interactive state for the retry.
	c.AcknowledgeError()
	assert.Equal(t, StateEditing, c.State())
	require.NoError(t, c.UpdateField("email", "fixed@example.com"))
}

func TestSubmitConnectivityFailureMessage(t *testing.T) {
	sub := &fakeSubmitter{err: &ConnectivityError{Err: errors.New("dial tcp: connection refused")}}
	c := New(sub, WithClock(fixedClock()))
	c.OpenBlank()
	fillValidDraft(t, c)

	require.Error(t, c.Submit(context.Background()))
	assert.Equal(t, StateError, c.State())
	assert.Contains(t, c.ErrorMessage(), "Cannot connect")
}

func TestSubmitDebouncesReentrantCalls(t *testing.T) {
	gate := make(chan struct{})
	sub := &fakeSubmitter{gate: gate, receipt: &Receipt{ID: 1}}
	c := New(sub, WithClock(fixedClock()))
	c.OpenBlank()
	fillValidDraft(t, c)

	done := make(chan error, 1)
	go func() { done <- c.Submit(context.Background()) }()

	// Wait for the first submission to be on the wire.
	require.Eventually(t, func() bool {
		return c.State() == StateSubmitting
	}, time.Second, time.Millisecond)

	// Second attempt is refused without a network call; edits are blocked too.
	assert.ErrorIs(t, c.Submit(context.Background()), ErrSubmitInFlight)
	assert.ErrorIs(t, c.UpdateField("firstName", "Changed"), ErrSubmitInFlight)
	assert.ErrorIs(t, c.AddPlayer(), ErrSubmitInFlight)

	close(gate)
	require.NoError(t, <-done)
	assert.Equal(t, 1, sub.callCount())
	assert.Equal(t, StateSuccess, c.State())
}

func TestSubmitDeliversDerivedPayload(t *testing.T) {
	sub := &captureSubmitter{}
	c := New(sub, WithClock(fixedClock()), WithLanguage(catalog.LangTH))
	c.OpenBlank()
	fillValidDraft(t, c)

	require.NoError(t, c.Submit(context.Background()))

	got := sub.payload
	assert.Equal(t, "Arthur", got.FirstName)
	assert.Equal(t, 3, got.Nights)
	assert.Equal(t, "th", got.Language)
	assert.Equal(t, CurrencyTHB, got.PriceEstimate.Currency)
	assert.Equal(t, int64(1*3*7000), got.PriceEstimate.PlayersTotal)
}

type captureSubmitter struct {
	payload Payload
}

func (s *captureSubmitter) Submit(ctx context.Context, payload Payload) (*Receipt, error) {
	s.payload = payload
	return &Receipt{ID: 1, Status: "pending"}, nil
}
