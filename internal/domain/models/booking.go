package models

import "time"

// Booking statuses as stored in MySQL and shown on the admin dashboard.
const (
	StatusPending   = "pending"
	StatusConfirmed = "confirmed"
	StatusCompleted = "completed"
	StatusCancelled = "cancelled"
)

// ValidStatus reports whether s is one of the known booking statuses.
func ValidStatus(s string) bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// Booking is a persisted booking inquiry. Display names (event, package,
// accommodation) are denormalized at submission time so the admin dashboard
// never needs the catalog to render a row.
type Booking struct {
	ID        int64  `json:"id"`
	Reference string `json:"reference"`

	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Country   string `json:"country"`

	SelectedEvent     string `json:"selectedEvent"`
	SelectedEventName string `json:"selectedEventName"`
	PackageType       string `json:"packageType"`
	PackageTypeName   string `json:"packageTypeName"`
	Accommodation     string `json:"accommodation"`
	AccommodationName string `json:"accommodationName"`

	CheckIn  string `json:"checkIn"`  // DD/MM/YYYY as entered
	CheckOut string `json:"checkOut"` // DD/MM/YYYY as entered
	Nights   int    `json:"nights"`

	Adults      int `json:"adults"`
	Children    int `json:"children"`
	PlayerCount int `json:"playerCount"`

	Extras          string `json:"extras"` // comma separated identifiers
	SpecialRequests string `json:"specialRequests"`
	HearAbout       string `json:"hearAbout"`

	Currency        string  `json:"currency"`
	PlayersTotal    float64 `json:"playersTotal"`
	CompanionsTotal float64 `json:"companionsTotal"`
	TotalPrice      float64 `json:"totalPrice"`

	Language string `json:"language"`
	Status   string `json:"status"`

	Players []BookingPlayer `json:"players,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// BookingPlayer is one participant row attached to a booking.
type BookingPlayer struct {
	ID        int64  `json:"id"`
	BookingID int64  `json:"bookingId"`
	Number    int    `json:"number"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Age       int    `json:"age"`
	Phone     string `json:"phone,omitempty"`
	Email     string `json:"email,omitempty"`
}

// BookingFilter narrows admin list queries.
type BookingFilter struct {
	Status string
	Search string // matches name or email
	Page   int
	Limit  int
}

// BookingUpdate carries the mutable admin-side fields. Nil means unchanged.
type BookingUpdate struct {
	Status          *string
	SpecialRequests *string
}

// BookingStats feeds the admin dashboard cards and charts.
type BookingStats struct {
	Total           int                `json:"total"`
	Today           int                `json:"today"`
	ByStatus        map[string]int     `json:"byStatus"`
	RevenueByStatus map[string]float64 `json:"revenueByStatus"` // THB
}
