package bookingform

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"wargameshc/internal/utils"
)

// DefaultNights keeps the price estimate displayable before any dates are
// entered.
const DefaultNights = 2

// MaxCompanions bounds the adult/child steppers. The form UI never exceeded
// this; the bound makes it explicit.
const MaxCompanions = 20

const defaultPhoneCode = "+66"

// Player is one participant record on the draft. Age is kept as entered and
// parsed during validation, matching the form inputs.
type Player struct {
	FirstName string
	LastName  string
	Age       string
	PhoneCode string
	Phone     string
	Email     string
}

func blankPlayer() Player {
	return Player{PhoneCode: defaultPhoneCode}
}

func (p Player) isBlank() bool {
	return p.FirstName == "" && p.LastName == "" && p.Age == "" && p.Phone == "" && p.Email == ""
}

// Draft is the single in-progress booking record. One live instance per open
// modal; it is only ever touched through the Controller.
type Draft struct {
	FirstName string
	LastName  string
	Email     string
	PhoneCode string
	Phone     string
	Country   string

	// EventID locks dates and package when the draft originated from a
	// catalog event. Empty means a blank booking.
	EventID string

	CheckIn  string // DD/MM/YYYY as entered
	CheckOut string // DD/MM/YYYY as entered

	PackageType   string
	Accommodation string

	Adults   int
	Children int

	Players []Player

	Extras          []string // ordered set of add-on identifiers
	SpecialRequests string
	HearAbout       string
}

// NewDraft returns a fresh draft with one blank player and the form's
// default selections.
func NewDraft() *Draft {
	return &Draft{
		PhoneCode:     defaultPhoneCode,
		Accommodation: AccommodationBasic,
		Adults:        1,
		Children:      0,
		Players:       []Player{blankPlayer()},
	}
}

// EventLocked reports whether dates and package are fixed by a catalog event.
func (d *Draft) EventLocked() bool {
	return d.EventID != ""
}

// AddPlayer appends a blank player. Display numbering is positional, so no
// renumbering is needed. There is no upper bound.
func (d *Draft) AddPlayer() {
	d.Players = append(d.Players, blankPlayer())
}

// RemovePlayer removes the player at index. Removal that would drop the list
// below one player is rejected.
func (d *Draft) RemovePlayer(index int) error {
	if index < 0 || index >= len(d.Players) {
		return fmt.Errorf("player index %d out of range", index)
	}
	if len(d.Players) <= 1 {
		return ErrLastPlayer
	}
	d.Players = append(d.Players[:index], d.Players[index+1:]...)
	return nil
}

// ToggleExtra adds or removes an add-on identifier from the extras set.
func (d *Draft) ToggleExtra(id string, selected bool) {
	id = strings.TrimSpace(id)
	if id == "" {
		return
	}
	for i, e := range d.Extras {
		if e == id {
			if !selected {
				d.Extras = append(d.Extras[:i], d.Extras[i+1:]...)
			}
			return
		}
	}
	if selected {
		d.Extras = append(d.Extras, id)
	}
}

// UpdateField mutates one draft field addressed by path. Player fields use
// "players.<index>.<field>", extras use "extras.<id>" with "true"/"false".
// Date and package fields reject updates while an event lock is active.
func (d *Draft) UpdateField(path, value string) error {
	value = strings.TrimSpace(value)

	if rest, ok := strings.CutPrefix(path, "players."); ok {
		return d.updatePlayerField(rest, value)
	}
	if id, ok := strings.CutPrefix(path, "extras."); ok {
		d.ToggleExtra(id, value == "true")
		return nil
	}

	switch path {
	case "firstName":
		d.FirstName = value
	case "lastName":
		d.LastName = value
	case "email":
		d.Email = value
	case "phoneCode":
		d.PhoneCode = value
	case "phone":
		d.Phone = value
	case "country":
		d.Country = value
	case "checkIn":
		if d.EventLocked() {
			return ErrFieldLocked
		}
		d.CheckIn = value
	case "checkOut":
		if d.EventLocked() {
			return ErrFieldLocked
		}
		d.CheckOut = value
	case "packageType":
		if d.EventLocked() {
			return ErrFieldLocked
		}
		if value != "" && !ValidPackage(value) {
			return fmt.Errorf("unknown package type %q", value)
		}
		d.PackageType = value
	case "accommodation":
		if value != "" && !ValidAccommodation(value) {
			return fmt.Errorf("unknown accommodation %q", value)
		}
		d.Accommodation = value
	case "adults":
		n, err := parseCount(value)
		if err != nil {
			return fmt.Errorf("adults: %w", err)
		}
		d.Adults = n
	case "children":
		n, err := parseCount(value)
		if err != nil {
			return fmt.Errorf("children: %w", err)
		}
		d.Children = n
	case "specialRequests":
		d.SpecialRequests = value
	case "hearAbout":
		d.HearAbout = value
	default:
		return fmt.Errorf("unknown field %q", path)
	}
	return nil
}

func (d *Draft) updatePlayerField(rest, value string) error {
	idx := strings.IndexByte(rest, '.')
	if idx <= 0 {
		return fmt.Errorf("malformed player path %q", rest)
	}
	i, err := strconv.Atoi(rest[:idx])
	if err != nil || i < 0 || i >= len(d.Players) {
		return fmt.Errorf("player index %q out of range", rest[:idx])
	}
	p := &d.Players[i]
	switch rest[idx+1:] {
	case "firstName":
		p.FirstName = value
	case "lastName":
		p.LastName = value
	case "age":
		p.Age = value
	case "phoneCode":
		p.PhoneCode = value
	case "phone":
		p.Phone = value
	case "email":
		p.Email = value
	default:
		return fmt.Errorf("unknown player field %q", rest[idx+1:])
	}
	return nil
}

func parseCount(value string) (int, error) {
	if value == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("not a number: %q", value)
	}
	if n < 0 {
		return 0, fmt.Errorf("must not be negative")
	}
	if n > MaxCompanions {
		return 0, fmt.Errorf("at most %d", MaxCompanions)
	}
	return n, nil
}

// dates parses both dates; an error means at least one is absent or
// malformed.
func (d *Draft) dates() (checkIn, checkOut time.Time, err error) {
	checkIn, err = utils.ParseBookingDate(d.CheckIn)
	if err != nil {
		return
	}
	checkOut, err = utils.ParseBookingDate(d.CheckOut)
	return
}

// Nights derives the stay duration from the date range, rounding partial
// days up. Falls back to DefaultNights while dates are absent or malformed
// so the estimate is always displayable.
func (d *Draft) Nights() int {
	in, out, err := d.dates()
	if err != nil {
		return DefaultNights
	}
	nights := int((out.Sub(in) + 24*time.Hour - 1) / (24 * time.Hour))
	if nights < 1 {
		return DefaultNights
	}
	return nights
}

// IsDirty reports whether the user entered anything beyond the defaults.
// Used to decide whether closing the modal needs a discard confirmation.
func (d Draft) IsDirty() bool {
	if d.FirstName != "" || d.LastName != "" || d.Email != "" || d.Phone != "" || d.Country != "" {
		return true
	}
	if d.EventID != "" || d.CheckIn != "" || d.CheckOut != "" || d.PackageType != "" {
		return true
	}
	if d.Accommodation != "" && d.Accommodation != AccommodationBasic {
		return true
	}
	if d.Adults != 1 || d.Children != 0 {
		return true
	}
	if len(d.Extras) > 0 || d.SpecialRequests != "" || d.HearAbout != "" {
		return true
	}
	for _, p := range d.Players {
		if !p.isBlank() {
			return true
		}
	}
	return len(d.Players) != 1
}

// clone snapshots the draft so an in-flight submission never races later
// edits.
func (d *Draft) clone() *Draft {
	out := *d
	out.Players = make([]Player, len(d.Players))
	copy(out.Players, d.Players)
	out.Extras = make([]string, len(d.Extras))
	copy(out.Extras, d.Extras)
	return &out
}
