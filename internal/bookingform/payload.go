package bookingform

import (
	"strconv"
	"time"

	"wargameshc/internal/catalog"
)

// PayloadPlayer is one participant entry in the submission payload.
// Name and Phone are the assembled display values; the split parts are kept
// so the backend never has to re-parse them.
type PayloadPlayer struct {
	Number           int    `json:"number"`
	Name             string `json:"name"`
	FirstName        string `json:"firstName"`
	LastName         string `json:"lastName"`
	Age              int    `json:"age"`
	Phone            string `json:"phone"`
	PhoneCountryCode string `json:"phoneCountryCode"`
	PhoneNumber      string `json:"phoneNumber"`
	Email            string `json:"email"`
}

// Payload is the full submission body for POST /api/booking: the draft plus
// every derived field (nights, resolved display names, price breakdown,
// language, timestamp). Build it only from a draft that passed Validate.
type Payload struct {
	FirstName        string `json:"firstName"`
	LastName         string `json:"lastName"`
	Email            string `json:"email"`
	Phone            string `json:"phone"`
	PhoneCountryCode string `json:"phoneCountryCode"`
	PhoneNumber      string `json:"phoneNumber"`
	Country          string `json:"country"`

	SelectedEvent     string `json:"selectedEvent"`
	SelectedEventName string `json:"selectedEventName"`
	PackageType       string `json:"packageType"`
	PackageTypeName   string `json:"packageTypeName"`
	CheckIn           string `json:"checkIn"`
	CheckOut          string `json:"checkOut"`
	Nights            int    `json:"nights"`

	Adults      int             `json:"adults"`
	Children    int             `json:"children"`
	Players     []PayloadPlayer `json:"players"`
	PlayerCount int             `json:"playerCount"`

	Accommodation     string   `json:"accommodation"`
	AccommodationName string   `json:"accommodationName"`
	Extras            []string `json:"extras"`
	SpecialRequests   string   `json:"specialRequests"`
	HearAbout         string   `json:"hearAbout"`

	PriceEstimate Estimate `json:"priceEstimate"`

	Language  string `json:"language"`
	Timestamp string `json:"timestamp"`
}

// BuildPayload assembles the submission body from the draft and the active
// language. Display names for event, package, and accommodation are resolved
// here so the stored record is readable without the catalog.
func BuildPayload(d *Draft, lang catalog.Lang, rates Rates, now time.Time) Payload {
	players := make([]PayloadPlayer, 0, len(d.Players))
	for i, p := range d.Players {
		age, _ := strconv.Atoi(p.Age)
		fullPhone := ""
		if p.Phone != "" {
			fullPhone = p.PhoneCode + " " + p.Phone
		}
		players = append(players, PayloadPlayer{
			Number:           i + 1,
			Name:             p.FirstName + " " + p.LastName,
			FirstName:        p.FirstName,
			LastName:         p.LastName,
			Age:              age,
			Phone:            fullPhone,
			PhoneCountryCode: p.PhoneCode,
			PhoneNumber:      p.Phone,
			Email:            p.Email,
		})
	}

	eventName := d.EventID
	if ev, ok := catalog.Get(d.EventID); ok {
		eventName = ev.Title.For(lang)
	}

	fullPhone := ""
	if d.Phone != "" {
		fullPhone = d.PhoneCode + " " + d.Phone
	}

	extras := make([]string, len(d.Extras))
	copy(extras, d.Extras)

	nights := d.Nights()

	return Payload{
		FirstName:        d.FirstName,
		LastName:         d.LastName,
		Email:            d.Email,
		Phone:            fullPhone,
		PhoneCountryCode: d.PhoneCode,
		PhoneNumber:      d.Phone,
		Country:          d.Country,

		SelectedEvent:     d.EventID,
		SelectedEventName: eventName,
		PackageType:       d.PackageType,
		PackageTypeName:   PackageName(d.PackageType, lang),
		CheckIn:           d.CheckIn,
		CheckOut:          d.CheckOut,
		Nights:            nights,

		Adults:      d.Adults,
		Children:    d.Children,
		Players:     players,
		PlayerCount: len(players),

		Accommodation:     d.Accommodation,
		AccommodationName: AccommodationName(d.Accommodation, lang),
		Extras:            extras,
		SpecialRequests:   d.SpecialRequests,
		HearAbout:         d.HearAbout,

		PriceEstimate: rates.Estimate(len(players), nights, d.Adults, lang),

		Language:  string(lang),
		Timestamp: now.UTC().Format(time.RFC3339),
	}
}
