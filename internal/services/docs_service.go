package services

import (
	"bytes"
	"fmt"
	"strings"

	intconfig "wargameshc/internal/config"
	"wargameshc/internal/domain/models"
	"wargameshc/internal/repositories"
	"wargameshc/internal/utils"

	"github.com/phpdave11/gofpdf"
)

// DocsService renders the booking confirmation PDF sent to guests and
// downloadable from the admin dashboard.
type DocsService struct {
	BookingRepo repositories.BookingRepository
	RequestID   string
	Loader      func(int64) (models.Booking, error)
}

func (s DocsService) GenerateConfirmation(bookingID int64) ([]byte, string, error) {
	b, err := s.loadBooking(bookingID)
	if err != nil {
		return nil, "", err
	}
	utils.LogEvent(s.RequestID, "docs", "generate_confirmation", fmt.Sprintf("booking_id=%d", bookingID))
	return buildConfirmationPDF(b)
}

func (s DocsService) loadBooking(id int64) (models.Booking, error) {
	if s.Loader != nil {
		return s.Loader(id)
	}
	return s.bookingRepo().GetByID(id)
}

func (s DocsService) bookingRepo() repositories.BookingRepository {
	if s.BookingRepo.DB != nil {
		return s.BookingRepo
	}
	return repositories.BookingRepository{DB: intconfig.DB}
}

func buildConfirmationPDF(b models.Booking) ([]byte, string, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Booking Confirmation", false)
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, "BOOKING CONFIRMATION")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 12)
	lines := []string{
		fmt.Sprintf("Reference      : %s", safe(b.Reference, "-")),
		fmt.Sprintf("Guest          : %s %s", safe(b.FirstName, "-"), b.LastName),
		fmt.Sprintf("Email          : %s", safe(b.Email, "-")),
		fmt.Sprintf("Phone          : %s", safe(b.Phone, "-")),
		fmt.Sprintf("Event          : %s", safe(b.SelectedEventName, "Open booking")),
		fmt.Sprintf("Package        : %s", safe(b.PackageTypeName, "-")),
		fmt.Sprintf("Accommodation  : %s", safe(b.AccommodationName, "-")),
		fmt.Sprintf("Check-in       : %s", safe(b.CheckIn, "-")),
		fmt.Sprintf("Check-out      : %s", safe(b.CheckOut, "-")),
		fmt.Sprintf("Nights         : %d", b.Nights),
		fmt.Sprintf("Players        : %d", b.PlayerCount),
		fmt.Sprintf("Companions     : %d adults, %d children", b.Adults, b.Children),
		fmt.Sprintf("Status         : %s", safe(b.Status, models.StatusPending)),
	}
	if extras := utils.SplitList(b.Extras); len(extras) > 0 {
		lines = append(lines, fmt.Sprintf("Extras         : %s", strings.Join(extras, ", ")))
	}
	for _, l := range lines {
		pdf.Cell(0, 7, l)
		pdf.Ln(7)
	}

	if len(b.Players) > 0 {
		pdf.Ln(4)
		pdf.SetFont("Helvetica", "B", 12)
		pdf.Cell(0, 7, "Participants")
		pdf.Ln(8)
		pdf.SetFont("Helvetica", "", 11)
		for _, p := range b.Players {
			pdf.Cell(0, 6, fmt.Sprintf("%d. %s %s (age %d)", p.Number, p.FirstName, p.LastName, p.Age))
			pdf.Ln(6)
		}
	}

	pdf.Ln(4)
	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 7, "Estimated price")
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 6, fmt.Sprintf("Players total    : %s", formatAmount(b.Currency, int64(b.PlayersTotal))))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Companions total : %s", formatAmount(b.Currency, int64(b.CompanionsTotal))))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Total            : %s", formatAmount(b.Currency, int64(b.TotalPrice))))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "I", 10)
	pdf.MultiCell(0, 6, "This is a booking inquiry confirmation. Our team will contact you within 24 hours to finalize payment and logistics.", "", "", false)
	pdf.Ln(2)
	pdf.Cell(0, 6, "Generated "+utils.FormatDateTime(utils.NowUTC()))

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", err
	}

	filename := fmt.Sprintf("CONFIRMATION_%s.pdf", safeFilenamePart(b.Reference))
	return buf.Bytes(), filename, nil
}

func formatAmount(currency string, amount int64) string {
	if currency == "THB" {
		return utils.FormatBaht(amount)
	}
	return utils.FormatUSD(amount)
}

func safe(s, fallback string) string {
	return utils.FirstNonEmpty(s, fallback)
}

func safeFilenamePart(s string) string {
	out := make([]rune, 0, len(s))
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
			out = append(out, r)
		default:
			out = append(out, '_')
		}
	}
	if len(out) == 0 {
		return "booking"
	}
	return string(out)
}
