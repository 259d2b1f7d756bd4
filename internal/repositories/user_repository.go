package repositories

import (
	"database/sql"
	"errors"
	"strings"

	"wargameshc/internal/domain"
	"wargameshc/internal/domain/models"
)

const userColumns = `id, name, username, email, phone, password_hash, role, status, created_at, updated_at`

type UserRepository struct {
	DB *sql.DB
}

// GetByLogin finds a user by email or username for authentication.
func (r UserRepository) GetByLogin(login string) (models.User, error) {
	var u models.User
	row := r.DB.QueryRow(`SELECT `+userColumns+` FROM users WHERE email = ? OR username = ? LIMIT 1`,
		login, login)
	if err := scanUser(row, &u); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return u, domain.NotFoundError{Resource: "user", Err: err}
		}
		return u, domain.InternalError{Err: err}
	}
	return u, nil
}

func (r UserRepository) GetByID(id int64) (models.User, error) {
	var u models.User
	row := r.DB.QueryRow(`SELECT `+userColumns+` FROM users WHERE id = ? LIMIT 1`, id)
	if err := scanUser(row, &u); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return u, domain.NotFoundError{Resource: "user", Err: err}
		}
		return u, domain.InternalError{Err: err}
	}
	return u, nil
}

// Exists reports whether the email or username is already taken.
func (r UserRepository) Exists(email, username string) (bool, error) {
	var n int
	if err := r.DB.QueryRow(`SELECT COUNT(*) FROM users WHERE email = ? OR username = ?`,
		email, username).Scan(&n); err != nil {
		return false, domain.InternalError{Err: err}
	}
	return n > 0, nil
}

func (r UserRepository) Create(u *models.User) (int64, error) {
	res, err := r.DB.Exec(`
		INSERT INTO users (name, username, email, phone, password_hash, role, status)
		VALUES (?,?,?,?,?,?,?)`,
		u.Name, u.Username, u.Email, u.Phone, u.PasswordHash, u.Role, u.Status)
	if err != nil {
		return 0, domain.InternalError{Err: err}
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, domain.InternalError{Err: err}
	}
	return id, nil
}

// List returns a page of users plus the unpaged total.
func (r UserRepository) List(search string, page, limit int) ([]models.User, int, error) {
	where := "1=1"
	args := []any{}
	if search != "" {
		like := "%" + search + "%"
		where = "(name LIKE ? OR username LIKE ? OR email LIKE ?)"
		args = append(args, like, like, like)
	}

	var total int
	if err := r.DB.QueryRow(`SELECT COUNT(*) FROM users WHERE `+where, args...).Scan(&total); err != nil {
		return nil, 0, domain.InternalError{Err: err}
	}

	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if page < 1 {
		page = 1
	}
	offset := (page - 1) * limit

	rows, err := r.DB.Query(`SELECT `+userColumns+` FROM users WHERE `+where+
		` ORDER BY created_at DESC LIMIT ? OFFSET ?`, append(args, limit, offset)...)
	if err != nil {
		return nil, 0, domain.InternalError{Err: err}
	}
	defer rows.Close()

	var out []models.User
	for rows.Next() {
		var u models.User
		if err := scanUser(rows, &u); err != nil {
			return nil, 0, domain.InternalError{Err: err}
		}
		out = append(out, u)
	}
	return out, total, rows.Err()
}

// Update applies the non-nil fields of upd.
func (r UserRepository) Update(id int64, upd models.UserUpdate) error {
	sets := []string{}
	args := []any{}
	add := func(col string, v any) {
		sets = append(sets, col+" = ?")
		args = append(args, v)
	}

	if upd.Name != nil {
		add("name", *upd.Name)
	}
	if upd.Email != nil {
		add("email", *upd.Email)
	}
	if upd.Phone != nil {
		add("phone", *upd.Phone)
	}
	if upd.Role != nil {
		add("role", *upd.Role)
	}
	if upd.Status != nil {
		add("status", *upd.Status)
	}
	if upd.Password != nil {
		add("password_hash", *upd.Password) // already hashed by the service
	}
	if len(sets) == 0 {
		return domain.ValidationError{Msg: "no fields to update"}
	}

	args = append(args, id)
	res, err := r.DB.Exec(`UPDATE users SET `+strings.Join(sets, ", ")+` WHERE id = ?`, args...)
	if err != nil {
		return domain.InternalError{Err: err}
	}
	if n, _ := res.RowsAffected(); n == 0 {
		var exists int
		if err := r.DB.QueryRow(`SELECT COUNT(*) FROM users WHERE id = ?`, id).Scan(&exists); err == nil && exists == 0 {
			return domain.NotFoundError{Resource: "user"}
		}
	}
	return nil
}

func (r UserRepository) Delete(id int64) error {
	res, err := r.DB.Exec(`DELETE FROM users WHERE id = ?`, id)
	if err != nil {
		return domain.InternalError{Err: err}
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.NotFoundError{Resource: "user"}
	}
	return nil
}

// ToggleActive flips active/inactive and returns the new status.
func (r UserRepository) ToggleActive(id int64) (string, error) {
	u, err := r.GetByID(id)
	if err != nil {
		return "", err
	}
	next := "active"
	if u.Status == "active" {
		next = "inactive"
	}
	if _, err := r.DB.Exec(`UPDATE users SET status = ? WHERE id = ?`, next, id); err != nil {
		return "", domain.InternalError{Err: err}
	}
	return next, nil
}

func scanUser(row rowScanner, u *models.User) error {
	return row.Scan(&u.ID, &u.Name, &u.Username, &u.Email, &u.Phone,
		&u.PasswordHash, &u.Role, &u.Status, &u.CreatedAt, &u.UpdatedAt)
}
