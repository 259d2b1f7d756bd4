package repositories

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"

	intdb "wargameshc/internal/db"
	"wargameshc/internal/domain"
	"wargameshc/internal/domain/models"
)

const bookingColumns = `id, reference, first_name, last_name, email, phone, country,
	selected_event, selected_event_name, package_type, package_type_name,
	accommodation, accommodation_name, check_in, check_out, nights,
	adults, children, player_count, extras, COALESCE(special_requests,''),
	hear_about, currency, players_total, companions_total, total_price,
	language, status, created_at, updated_at`

// exchangeRateTHB converts USD bookings into THB for revenue reporting.
const exchangeRateTHB = 35.0

type BookingRepository struct {
	DB *sql.DB
}

// Create stores a booking and its players in one transaction.
func (r BookingRepository) Create(b *models.Booking) (int64, error) {
	tx, err := r.DB.Begin()
	if err != nil {
		return 0, domain.InternalError{Err: err}
	}
	defer tx.Rollback()

	res, err := tx.Exec(`
		INSERT INTO bookings (
			reference, first_name, last_name, email, phone, country,
			selected_event, selected_event_name, package_type, package_type_name,
			accommodation, accommodation_name, check_in, check_out, nights,
			adults, children, player_count, extras, special_requests, hear_about,
			currency, players_total, companions_total, total_price, language, status
		) VALUES (?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?)`,
		b.Reference, b.FirstName, b.LastName, b.Email, b.Phone, b.Country,
		b.SelectedEvent, b.SelectedEventName, b.PackageType, b.PackageTypeName,
		b.Accommodation, b.AccommodationName, b.CheckIn, b.CheckOut, b.Nights,
		b.Adults, b.Children, b.PlayerCount, b.Extras, intdb.NullIfEmpty(b.SpecialRequests), b.HearAbout,
		b.Currency, b.PlayersTotal, b.CompanionsTotal, b.TotalPrice, b.Language, b.Status,
	)
	if err != nil {
		return 0, domain.InternalError{Err: err}
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, domain.InternalError{Err: err}
	}

	for _, p := range b.Players {
		if _, err := tx.Exec(`
			INSERT INTO booking_players (booking_id, number, first_name, last_name, age, phone, email)
			VALUES (?,?,?,?,?,?,?)`,
			id, p.Number, p.FirstName, p.LastName, p.Age, p.Phone, p.Email,
		); err != nil {
			return 0, domain.InternalError{Err: err}
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, domain.InternalError{Err: err}
	}
	return id, nil
}

// GetByID loads one booking with its players.
func (r BookingRepository) GetByID(id int64) (models.Booking, error) {
	var b models.Booking
	if id <= 0 {
		return b, domain.ValidationError{Field: "id", Msg: "must be positive"}
	}

	row := r.DB.QueryRow(`SELECT `+bookingColumns+` FROM bookings WHERE id = ? LIMIT 1`, id)
	if err := scanBooking(row, &b); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return b, domain.NotFoundError{Resource: "booking", Err: err}
		}
		return b, domain.InternalError{Err: err}
	}

	players, err := r.ListPlayers(id)
	if err != nil {
		return b, err
	}
	b.Players = players
	return b, nil
}

// ListPlayers returns the players of a booking in display order.
func (r BookingRepository) ListPlayers(bookingID int64) ([]models.BookingPlayer, error) {
	rows, err := r.DB.Query(`
		SELECT id, booking_id, number, first_name, last_name, age, phone, email
		FROM booking_players
		WHERE booking_id = ?
		ORDER BY number ASC`, bookingID)
	if err != nil {
		return nil, domain.InternalError{Err: err}
	}
	defer rows.Close()

	var players []models.BookingPlayer
	for rows.Next() {
		var p models.BookingPlayer
		if err := rows.Scan(&p.ID, &p.BookingID, &p.Number, &p.FirstName, &p.LastName, &p.Age, &p.Phone, &p.Email); err != nil {
			return nil, domain.InternalError{Err: err}
		}
		players = append(players, p)
	}
	return players, rows.Err()
}

// List returns a page of bookings plus the unpaged total.
func (r BookingRepository) List(filter models.BookingFilter) ([]models.Booking, int, error) {
	where := []string{"1=1"}
	args := []any{}

	if filter.Status != "" {
		where = append(where, "status = ?")
		args = append(args, filter.Status)
	}
	if filter.Search != "" {
		like := "%" + filter.Search + "%"
		where = append(where, "(first_name LIKE ? OR last_name LIKE ? OR email LIKE ? OR reference LIKE ?)")
		args = append(args, like, like, like, like)
	}

	cond := strings.Join(where, " AND ")

	var total int
	if err := r.DB.QueryRow(`SELECT COUNT(*) FROM bookings WHERE `+cond, args...).Scan(&total); err != nil {
		return nil, 0, domain.InternalError{Err: err}
	}

	limit := filter.Limit
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	page := filter.Page
	if page < 1 {
		page = 1
	}
	offset := (page - 1) * limit

	query := fmt.Sprintf(`SELECT %s FROM bookings WHERE %s ORDER BY created_at DESC LIMIT ? OFFSET ?`,
		bookingColumns, cond)
	rows, err := r.DB.Query(query, append(args, limit, offset)...)
	if err != nil {
		return nil, 0, domain.InternalError{Err: err}
	}
	defer rows.Close()

	var out []models.Booking
	for rows.Next() {
		var b models.Booking
		if err := scanBooking(rows, &b); err != nil {
			return nil, 0, domain.InternalError{Err: err}
		}
		out = append(out, b)
	}
	return out, total, rows.Err()
}

// UpdateStatus moves a booking through the admin workflow.
func (r BookingRepository) UpdateStatus(id int64, status string) error {
	if !models.ValidStatus(status) {
		return domain.ValidationError{Field: "status", Msg: "unknown status " + status}
	}
	res, err := r.DB.Exec(`UPDATE bookings SET status = ? WHERE id = ?`, status, id)
	if err != nil {
		return domain.InternalError{Err: err}
	}
	if n, _ := res.RowsAffected(); n == 0 {
		// Either missing or already in the target status; disambiguate.
		var exists int
		if err := r.DB.QueryRow(`SELECT COUNT(*) FROM bookings WHERE id = ?`, id).Scan(&exists); err == nil && exists == 0 {
			return domain.NotFoundError{Resource: "booking"}
		}
	}
	return nil
}

// Stats aggregates the dashboard numbers. Revenue is reported in THB; USD
// bookings convert at a fixed display rate.
func (r BookingRepository) Stats() (models.BookingStats, error) {
	stats := models.BookingStats{
		ByStatus:        map[string]int{},
		RevenueByStatus: map[string]float64{},
	}

	rows, err := r.DB.Query(`
		SELECT status, COUNT(*),
			SUM(CASE WHEN currency = 'USD' THEN total_price * ? ELSE total_price END)
		FROM bookings
		GROUP BY status`, exchangeRateTHB)
	if err != nil {
		return stats, domain.InternalError{Err: err}
	}
	defer rows.Close()

	for rows.Next() {
		var status string
		var count int
		var revenue sql.NullFloat64
		if err := rows.Scan(&status, &count, &revenue); err != nil {
			return stats, domain.InternalError{Err: err}
		}
		stats.ByStatus[status] = count
		stats.RevenueByStatus[status] = revenue.Float64
		stats.Total += count
	}
	if err := rows.Err(); err != nil {
		return stats, domain.InternalError{Err: err}
	}

	if err := r.DB.QueryRow(`SELECT COUNT(*) FROM bookings WHERE DATE(created_at) = CURDATE()`).Scan(&stats.Today); err != nil {
		return stats, domain.InternalError{Err: err}
	}
	return stats, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanBooking(row rowScanner, b *models.Booking) error {
	var extras sql.NullString
	err := row.Scan(
		&b.ID, &b.Reference, &b.FirstName, &b.LastName, &b.Email, &b.Phone, &b.Country,
		&b.SelectedEvent, &b.SelectedEventName, &b.PackageType, &b.PackageTypeName,
		&b.Accommodation, &b.AccommodationName, &b.CheckIn, &b.CheckOut, &b.Nights,
		&b.Adults, &b.Children, &b.PlayerCount, &extras, &b.SpecialRequests,
		&b.HearAbout, &b.Currency, &b.PlayersTotal, &b.CompanionsTotal, &b.TotalPrice,
		&b.Language, &b.Status, &b.CreatedAt, &b.UpdatedAt,
	)
	b.Extras = extras.String
	return err
}
