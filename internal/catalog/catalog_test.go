package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wargameshc/internal/utils"
)

func TestNormalize(t *testing.T) {
	assert.Equal(t, LangTH, Normalize("th"))
	assert.Equal(t, LangTH, Normalize("TH"))
	assert.Equal(t, LangEN, Normalize("en"))
	assert.Equal(t, LangEN, Normalize(""))
	assert.Equal(t, LangEN, Normalize("fr"))
}

func TestGetKnownEvents(t *testing.T) {
	for _, id := range []string{"waterloo", "normandy", "agincourt", "rome"} {
		ev, ok := Get(id)
		require.True(t, ok, id)
		assert.Equal(t, id, ev.ID)
		assert.NotEmpty(t, ev.Title.For(LangEN))
		assert.NotEmpty(t, ev.Title.For(LangTH))

		// Stored dates must parse and form a positive range.
		in, err := utils.ParseBookingDate(ev.CheckIn)
		require.NoError(t, err, id)
		out, err := utils.ParseBookingDate(ev.CheckOut)
		require.NoError(t, err, id)
		assert.True(t, out.After(in), id)
	}

	_, ok := Get("trafalgar")
	assert.False(t, ok)
}

func TestAllIsStable(t *testing.T) {
	events := All()
	require.Len(t, events, 4)
	assert.Equal(t, "waterloo", events[0].ID)

	// Mutating the returned slice must not affect the catalog.
	events[0].ID = "mutated"
	again := All()
	assert.Equal(t, "waterloo", again[0].ID)
}

func TestTextFallsBackToEnglish(t *testing.T) {
	txt := Text{EN: "English only"}
	assert.Equal(t, "English only", txt.For(LangTH))
}
