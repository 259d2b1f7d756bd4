package bookingform

import (
	"fmt"
	"regexp"
	"strconv"
	"time"

	"wargameshc/internal/utils"
)

var (
	emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	phoneRe = regexp.MustCompile(`^[0-9\s+\-()]+$`)
)

const (
	minAge          = 1
	maxAge          = 120
	minPhoneDigits  = 8
	requiredMessage = "This field is required"
)

// Validate checks the draft against every submission rule. The top-level
// date/email/phone block stops at its first failure (these map to a single
// alert in the form); player errors are collected per field so every
// offending input gets an inline message.
func (d *Draft) Validate(now time.Time) []FieldError {
	var errs []FieldError

	if top := d.validateTopLevel(now); top != nil {
		errs = append(errs, *top)
	}

	for i, p := range d.Players {
		errs = append(errs, validatePlayer(i, p)...)
	}

	return errs
}

func (d *Draft) validateTopLevel(now time.Time) *FieldError {
	checkIn, checkOut, err := d.dates()
	if err != nil {
		return &FieldError{Field: "checkIn", Message: "Please enter valid dates in DD/MM/YYYY format"}
	}

	today := utils.StartOfDay(now)
	if utils.StartOfDay(checkIn).Before(today) {
		return &FieldError{Field: "checkIn", Message: "Check-in date cannot be in the past"}
	}
	if !checkOut.After(checkIn) {
		return &FieldError{Field: "checkOut", Message: "Check-out date must be after check-in date"}
	}

	if d.FirstName == "" {
		return &FieldError{Field: "firstName", Message: requiredMessage}
	}
	if d.LastName == "" {
		return &FieldError{Field: "lastName", Message: requiredMessage}
	}
	if d.Email == "" {
		return &FieldError{Field: "email", Message: requiredMessage}
	}
	if !emailRe.MatchString(d.Email) {
		return &FieldError{Field: "email", Message: "Please enter a valid email address"}
	}
	if d.Phone == "" {
		return &FieldError{Field: "phone", Message: requiredMessage}
	}
	if !phoneRe.MatchString(d.Phone) {
		return &FieldError{Field: "phone", Message: "Please enter a valid phone number"}
	}

	return nil
}

func validatePlayer(index int, p Player) []FieldError {
	var errs []FieldError

	field := func(name string) string {
		return fmt.Sprintf("players.%d.%s", index, name)
	}

	if p.FirstName == "" {
		errs = append(errs, FieldError{Field: field("firstName"), Message: requiredMessage})
	}
	if p.LastName == "" {
		errs = append(errs, FieldError{Field: field("lastName"), Message: requiredMessage})
	}

	age, err := strconv.Atoi(p.Age)
	if err != nil || age < minAge || age > maxAge {
		errs = append(errs, FieldError{
			Field:   field("age"),
			Message: fmt.Sprintf("Age must be between %d and %d", minAge, maxAge),
		})
	}

	if p.Email != "" && !emailRe.MatchString(p.Email) {
		errs = append(errs, FieldError{Field: field("email"), Message: "Please enter a valid email address"})
	}
	if p.Phone != "" && !validPlayerPhone(p.Phone) {
		errs = append(errs, FieldError{Field: field("phone"), Message: "Please enter a valid phone number"})
	}

	return errs
}

// validPlayerPhone accepts digits/spaces/+-() with at least eight digits
// once formatting characters are stripped.
func validPlayerPhone(phone string) bool {
	return phoneRe.MatchString(phone) && len(utils.DigitsOnly(phone)) >= minPhoneDigits
}
