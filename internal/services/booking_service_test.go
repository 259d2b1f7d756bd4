package services

import (
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"

	"wargameshc/internal/bookingform"
	"wargameshc/internal/domain"
	"wargameshc/internal/repositories"
)

var submitNow = time.Date(2026, 1, 15, 12, 0, 0, 0, time.UTC)

func validSubmission() bookingform.Payload {
	return bookingform.Payload{
		FirstName: "Arthur",
		LastName:  "Wellesley",
		Email:     "arthur@example.com",
		Phone:     "+66 081 234 5678",
		CheckIn:   "10/03/2026",
		CheckOut:  "13/03/2026",
		Adults:    1,
		Players: []bookingform.PayloadPlayer{
			{Number: 1, FirstName: "Arthur", LastName: "Wellesley", Age: 57},
			{Number: 2, FirstName: "Michel", LastName: "Ney", Age: 45},
		},
		PackageType:   bookingform.PackageCampaignWeekend,
		Accommodation: bookingform.AccommodationBasic,
		Language:      "th",
		// Client-side numbers are display-only; the service recomputes them.
		Nights: 99,
	}
}

func expectSchemaPresent(mock sqlmock.Sqlmock) {
	mock.ExpectQuery("information_schema\\.tables").WithArgs("bookings").
		WillReturnRows(sqlmock.NewRows([]string{"table_name"}).AddRow("bookings"))
	mock.ExpectQuery("information_schema\\.columns").WithArgs("bookings", "hear_about").
		WillReturnRows(sqlmock.NewRows([]string{"column_name"}).AddRow("hear_about"))
	for _, table := range []string{"booking_players", "users"} {
		mock.ExpectQuery("information_schema\\.tables").WithArgs(table).
			WillReturnRows(sqlmock.NewRows([]string{"table_name"}).AddRow(table))
	}
}

func TestBookingServiceSubmitInquiry(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	expectSchemaPresent(mock)
	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO bookings").
		WillReturnResult(sqlmock.NewResult(42, 1))
	mock.ExpectExec("INSERT INTO booking_players").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec("INSERT INTO booking_players").
		WillReturnResult(sqlmock.NewResult(2, 1))
	mock.ExpectCommit()

	svc := BookingService{
		BookingRepo: repositories.BookingRepository{DB: db},
		DB:          db,
		Now:         func() time.Time { return submitNow },
	}
	b, err := svc.SubmitInquiry(validSubmission())
	if err != nil {
		t.Fatalf("SubmitInquiry returned error: %v", err)
	}

	if b.ID != 42 {
		t.Fatalf("booking id = %d, want 42", b.ID)
	}
	if !strings.HasPrefix(b.Reference, "WHC-20260115-") {
		t.Fatalf("reference = %q, want WHC-20260115-XXXX", b.Reference)
	}
	if b.Status != "pending" {
		t.Fatalf("status = %q, want pending", b.Status)
	}

	// Derived fields are recomputed server side, not trusted from the client.
	if b.Nights != 3 {
		t.Fatalf("nights = %d, want 3", b.Nights)
	}
	if b.Currency != "THB" {
		t.Fatalf("currency = %q, want THB", b.Currency)
	}
	if b.PlayersTotal != 2*3*7000 || b.CompanionsTotal != 1*3*3500 {
		t.Fatalf("totals = %v / %v", b.PlayersTotal, b.CompanionsTotal)
	}
	if b.TotalPrice != 2*3*7000+1*3*3500 {
		t.Fatalf("total = %v", b.TotalPrice)
	}
	if b.PlayerCount != 2 || len(b.Players) != 2 {
		t.Fatalf("players = %d/%d", b.PlayerCount, len(b.Players))
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestBookingServiceSubmitInquiryValidation(t *testing.T) {
	svc := BookingService{Now: func() time.Time { return submitNow }}

	cases := []struct {
		name   string
		mutate func(*bookingform.Payload)
	}{
		{"missing first name", func(p *bookingform.Payload) { p.FirstName = " " }},
		{"bad email", func(p *bookingform.Payload) { p.Email = "not-an-email" }},
		{"bad check-in", func(p *bookingform.Payload) { p.CheckIn = "2026-03-10" }},
		{"inverted dates", func(p *bookingform.Payload) { p.CheckIn, p.CheckOut = p.CheckOut, p.CheckIn }},
		{"no players", func(p *bookingform.Payload) { p.Players = nil }},
		{"player age zero", func(p *bookingform.Payload) { p.Players[0].Age = 0 }},
		{"player age 121", func(p *bookingform.Payload) { p.Players[0].Age = 121 }},
		{"unnamed player", func(p *bookingform.Payload) { p.Players[1].LastName = "" }},
		{"unknown package", func(p *bookingform.Payload) { p.PackageType = "luxury" }},
		{"unknown event", func(p *bookingform.Payload) { p.SelectedEvent = "trafalgar" }},
	}
	for _, tc := range cases {
		p := validSubmission()
		tc.mutate(&p)
		if _, err := svc.SubmitInquiry(p); !domain.IsValidation(err) {
			t.Fatalf("%s: error = %v, want ValidationError", tc.name, err)
		}
	}
}

func TestBookingServiceUpdateStatusInvalidID(t *testing.T) {
	svc := BookingService{}
	if err := svc.UpdateStatus(0, "confirmed"); !domain.IsValidation(err) {
		t.Fatalf("UpdateStatus(0) error = %v, want ValidationError", err)
	}
	if _, err := svc.GetBooking(-1); !domain.IsValidation(err) {
		t.Fatalf("GetBooking(-1) error = %v, want ValidationError", err)
	}
}
