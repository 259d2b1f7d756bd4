package services

import (
	"database/sql"
	"fmt"
	"math/rand"
	"regexp"
	"strings"
	"time"

	"wargameshc/internal/bookingform"
	"wargameshc/internal/catalog"
	intconfig "wargameshc/internal/config"
	"wargameshc/internal/domain"
	"wargameshc/internal/domain/models"
	"wargameshc/internal/repositories"
	"wargameshc/internal/utils"
)

var serverEmailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// BookingService persists booking inquiries and serves the admin views.
// Totals are always recomputed server side from the configured rates; the
// client breakdown is treated as display data only.
type BookingService struct {
	BookingRepo repositories.BookingRepository
	DB          *sql.DB
	Rates       bookingform.Rates
	RequestID   string
	Now         func() time.Time
}

func (s BookingService) db() *sql.DB {
	if s.DB != nil {
		return s.DB
	}
	return intconfig.DB
}

func (s BookingService) bookings() repositories.BookingRepository {
	if s.BookingRepo.DB != nil {
		return s.BookingRepo
	}
	return repositories.BookingRepository{DB: s.db()}
}

func (s BookingService) rates() bookingform.Rates {
	if s.Rates != (bookingform.Rates{}) {
		return s.Rates
	}
	return bookingform.DefaultRates()
}

func (s BookingService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return utils.NowUTC()
}

// SubmitInquiry validates an incoming submission, recomputes the derived
// fields, and stores it as a pending booking.
func (s BookingService) SubmitInquiry(p bookingform.Payload) (models.Booking, error) {
	if err := validatePayload(p); err != nil {
		return models.Booking{}, err
	}

	lang := catalog.Normalize(p.Language)
	nights := payloadNights(p)
	est := s.rates().Estimate(len(p.Players), nights, p.Adults, lang)

	now := s.now().UTC()
	b := models.Booking{
		Reference: newReference(now),

		FirstName: utils.NormalizeSpace(p.FirstName),
		LastName:  utils.NormalizeSpace(p.LastName),
		Email:     strings.TrimSpace(p.Email),
		Phone:     utils.NormalizeSpace(p.Phone),
		Country:   utils.NormalizeSpace(p.Country),

		SelectedEvent:     p.SelectedEvent,
		SelectedEventName: p.SelectedEventName,
		PackageType:       p.PackageType,
		PackageTypeName:   p.PackageTypeName,
		Accommodation:     p.Accommodation,
		AccommodationName: p.AccommodationName,

		CheckIn:  canonicalDate(p.CheckIn),
		CheckOut: canonicalDate(p.CheckOut),
		Nights:   nights,

		Adults:      p.Adults,
		Children:    p.Children,
		PlayerCount: len(p.Players),

		Extras:          strings.Join(p.Extras, ","),
		SpecialRequests: strings.TrimSpace(p.SpecialRequests),
		HearAbout:       strings.TrimSpace(p.HearAbout),

		Currency:        string(est.Currency),
		PlayersTotal:    float64(est.PlayersTotal),
		CompanionsTotal: float64(est.CompanionsTotal),
		TotalPrice:      float64(est.Total),

		Language: string(lang),
		Status:   models.StatusPending,
	}
	for i, pl := range p.Players {
		b.Players = append(b.Players, models.BookingPlayer{
			Number:    i + 1,
			FirstName: strings.TrimSpace(pl.FirstName),
			LastName:  strings.TrimSpace(pl.LastName),
			Age:       pl.Age,
			Phone:     strings.TrimSpace(pl.Phone),
			Email:     strings.TrimSpace(pl.Email),
		})
	}

	if err := repositories.EnsureSchema(s.db()); err != nil {
		return models.Booking{}, domain.InternalError{Err: err}
	}

	id, err := s.bookings().Create(&b)
	if err != nil {
		return models.Booking{}, domain.InternalError{Err: err}
	}
	b.ID = id
	b.CreatedAt = now
	b.UpdatedAt = now

	utils.LogEvent(s.RequestID, "booking", "submit",
		fmt.Sprintf("id=%d ref=%s event=%s players=%d total=%d %s",
			id, b.Reference, b.SelectedEvent, b.PlayerCount, est.Total, est.Currency))
	return b, nil
}

// GetBooking loads one booking with its players.
func (s BookingService) GetBooking(id int64) (models.Booking, error) {
	if id <= 0 {
		return models.Booking{}, domain.ValidationError{Field: "id", Msg: "invalid booking id"}
	}
	return s.bookings().GetByID(id)
}

// ListBookings returns a filtered page plus the total match count.
func (s BookingService) ListBookings(filter models.BookingFilter) ([]models.Booking, int, error) {
	return s.bookings().List(filter)
}

// UpdateStatus moves a booking to a new workflow status.
func (s BookingService) UpdateStatus(id int64, status string) error {
	if id <= 0 {
		return domain.ValidationError{Field: "id", Msg: "invalid booking id"}
	}
	if err := s.bookings().UpdateStatus(id, status); err != nil {
		return err
	}
	utils.LogEvent(s.RequestID, "booking", "update_status", fmt.Sprintf("id=%d status=%s", id, status))
	return nil
}

// Stats aggregates dashboard counters.
func (s BookingService) Stats() (models.BookingStats, error) {
	return s.bookings().Stats()
}

func validatePayload(p bookingform.Payload) error {
	if strings.TrimSpace(p.FirstName) == "" {
		return domain.ValidationError{Field: "firstName", Msg: "first name is required"}
	}
	if strings.TrimSpace(p.LastName) == "" {
		return domain.ValidationError{Field: "lastName", Msg: "last name is required"}
	}
	if !serverEmailRe.MatchString(strings.TrimSpace(p.Email)) {
		return domain.ValidationError{Field: "email", Msg: "Invalid email"}
	}
	in, err := utils.ParseBookingDate(p.CheckIn)
	if err != nil {
		return domain.ValidationError{Field: "checkIn", Msg: "invalid check-in date"}
	}
	out, err := utils.ParseBookingDate(p.CheckOut)
	if err != nil {
		return domain.ValidationError{Field: "checkOut", Msg: "invalid check-out date"}
	}
	if !out.After(in) {
		return domain.ValidationError{Field: "checkOut", Msg: "check-out must be after check-in"}
	}
	if len(p.Players) == 0 {
		return domain.ValidationError{Field: "players", Msg: "at least one player is required"}
	}
	for i, pl := range p.Players {
		if strings.TrimSpace(pl.FirstName) == "" || strings.TrimSpace(pl.LastName) == "" {
			return domain.ValidationError{
				Field: fmt.Sprintf("players.%d", i),
				Msg:   "player name is required",
			}
		}
		if pl.Age < 1 || pl.Age > 120 {
			return domain.ValidationError{
				Field: fmt.Sprintf("players.%d.age", i),
				Msg:   "player age must be between 1 and 120",
			}
		}
	}
	if p.PackageType != "" && !bookingform.ValidPackage(p.PackageType) {
		return domain.ValidationError{Field: "packageType", Msg: "unknown package"}
	}
	if p.Accommodation != "" && !bookingform.ValidAccommodation(p.Accommodation) {
		return domain.ValidationError{Field: "accommodation", Msg: "unknown accommodation"}
	}
	if p.SelectedEvent != "" {
		if _, ok := catalog.Get(p.SelectedEvent); !ok {
			return domain.ValidationError{Field: "selectedEvent", Msg: "unknown event"}
		}
	}
	return nil
}

func payloadNights(p bookingform.Payload) int {
	in, err1 := utils.ParseBookingDate(p.CheckIn)
	out, err2 := utils.ParseBookingDate(p.CheckOut)
	if err1 == nil && err2 == nil && out.After(in) {
		return int((out.Sub(in) + 24*time.Hour - 1) / (24 * time.Hour))
	}
	if p.Nights > 0 {
		return p.Nights
	}
	return bookingform.DefaultNights
}

// canonicalDate re-formats a parsed booking date so storage always holds
// DD/MM/YYYY regardless of how the client padded it.
func canonicalDate(s string) string {
	t, err := utils.ParseBookingDate(s)
	if err != nil {
		return strings.TrimSpace(s)
	}
	return utils.FormatBookingDate(t)
}

func newReference(now time.Time) string {
	return fmt.Sprintf("WHC-%s-%04d", now.Format("20060102"), rand.Intn(10000))
}
