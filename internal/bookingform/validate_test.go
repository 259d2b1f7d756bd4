package bookingform

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var validateNow = time.Date(2026, 1, 15, 12, 0, 0, 0, time.UTC)

func validDraft() *Draft {
	d := NewDraft()
	d.FirstName = "Arthur"
	d.LastName = "Wellesley"
	d.Email = "arthur@example.com"
	d.Phone = "081 234 5678"
	d.CheckIn = "10/03/2026"
	d.CheckOut = "13/03/2026"
	d.Players[0] = Player{
		FirstName: "Arthur",
		LastName:  "Wellesley",
		Age:       "57",
		PhoneCode: "+66",
	}
	return d
}

func TestValidateAcceptsCompleteDraft(t *testing.T) {
	assert.Empty(t, validDraft().Validate(validateNow))
}

func TestValidateTopLevelStopsAtFirstFailure(t *testing.T) {
	d := validDraft()
	d.CheckIn = "garbage"
	d.Email = "also-bad"

	errs := d.Validate(validateNow)
	require.NotEmpty(t, errs)
	// Only one top-level error even though email is broken too.
	assert.Equal(t, "checkIn", errs[0].Field)
	for _, e := range errs[1:] {
		assert.NotEqual(t, "email", e.Field)
	}
}

func TestValidateDateRules(t *testing.T) {
	d := validDraft()
	d.CheckIn = "10/03/2020"
	d.CheckOut = "13/03/2020"
	errs := d.Validate(validateNow)
	require.NotEmpty(t, errs)
	assert.Equal(t, "checkIn", errs[0].Field)
	assert.Contains(t, errs[0].Message, "past")

	d = validDraft()
	d.CheckOut = d.CheckIn
	errs = d.Validate(validateNow)
	require.NotEmpty(t, errs)
	assert.Equal(t, "checkOut", errs[0].Field)
}

func TestValidateEmailAndPhoneShape(t *testing.T) {
	d := validDraft()
	d.Email = "not an email"
	errs := d.Validate(validateNow)
	require.NotEmpty(t, errs)
	assert.Equal(t, "email", errs[0].Field)

	d = validDraft()
	d.Phone = "call me maybe"
	errs = d.Validate(validateNow)
	require.NotEmpty(t, errs)
	assert.Equal(t, "phone", errs[0].Field)
}

func TestValidateAgeBoundaries(t *testing.T) {
	for _, age := range []string{"1", "120"} {
		d := validDraft()
		d.Players[0].Age = age
		assert.Empty(t, d.Validate(validateNow), "age %s should pass", age)
	}
	for _, age := range []string{"0", "121", "", "abc"} {
		d := validDraft()
		d.Players[0].Age = age
		errs := d.Validate(validateNow)
		require.NotEmpty(t, errs, "age %s should fail", age)
		assert.Equal(t, "players.0.age", errs[0].Field)
	}
}

func TestValidateCollectsAllPlayerErrors(t *testing.T) {
	d := validDraft()
	d.AddPlayer()
	d.Players[1] = Player{
		Age:   "not-a-number",
		Email: "broken",
		Phone: "12 34", // too few digits
	}

	errs := d.Validate(validateNow)
	fields := make(map[string]bool, len(errs))
	for _, e := range errs {
		fields[e.Field] = true
	}

	assert.True(t, fields["players.1.firstName"])
	assert.True(t, fields["players.1.lastName"])
	assert.True(t, fields["players.1.age"])
	assert.True(t, fields["players.1.email"])
	assert.True(t, fields["players.1.phone"])
}

func TestValidateOptionalPlayerContacts(t *testing.T) {
	d := validDraft()
	// Empty phone and email on a player are fine.
	assert.Empty(t, d.Validate(validateNow))

	d.Players[0].Phone = "+66 81 234 5678"
	d.Players[0].Email = "player@example.com"
	assert.Empty(t, d.Validate(validateNow))

	d.Players[0].Phone = "081-2345"
	errs := d.Validate(validateNow)
	require.NotEmpty(t, errs)
	assert.Equal(t, "players.0.phone", errs[0].Field)
}
