package services

import (
	"database/sql/driver"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"golang.org/x/crypto/bcrypt"

	"wargameshc/internal/domain"
	"wargameshc/internal/domain/models"
	"wargameshc/internal/repositories"
)

func serviceUserRow(id int64, status string) *sqlmock.Rows {
	now := time.Date(2026, 1, 10, 9, 0, 0, 0, time.UTC)
	return sqlmock.NewRows([]string{
		"id", "name", "username", "email", "phone", "password_hash",
		"role", "status", "created_at", "updated_at",
	}).AddRow(id, "Desk Staff", "desk", "desk@example.com", "", "x", "staff", status, now, now)
}

// bcryptOf matches any bcrypt hash of the given plain text.
type bcryptOf string

func (m bcryptOf) Match(v driver.Value) bool {
	s, ok := v.(string)
	if !ok {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(s), []byte(m)) == nil
}

func TestUserServiceUpdateHashesPassword(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	plain := "longenough"
	mock.ExpectExec("UPDATE users SET password_hash").
		WithArgs(bcryptOf(plain), int64(7)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery("SELECT .+ FROM users WHERE id").WithArgs(int64(7)).
		WillReturnRows(serviceUserRow(7, "active"))

	svc := UserService{UserRepo: repositories.UserRepository{DB: db}, DB: db}
	u, err := svc.Update(7, models.UserUpdate{Password: &plain})
	if err != nil {
		t.Fatalf("Update error: %v", err)
	}
	if u.ID != 7 {
		t.Fatalf("expected refreshed user 7, got %d", u.ID)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestUserServiceUpdateValidation(t *testing.T) {
	svc := UserService{}
	role := "root"
	if _, err := svc.Update(7, models.UserUpdate{Role: &role}); !domain.IsValidation(err) {
		t.Fatalf("expected validation error for unknown role, got %v", err)
	}
	status := "banned"
	if _, err := svc.Update(7, models.UserUpdate{Status: &status}); !domain.IsValidation(err) {
		t.Fatalf("expected validation error for unknown status, got %v", err)
	}
	short := "short"
	if _, err := svc.Update(7, models.UserUpdate{Password: &short}); !domain.IsValidation(err) {
		t.Fatalf("expected validation error for short password, got %v", err)
	}
	if _, err := svc.Get(0); !domain.IsValidation(err) {
		t.Fatalf("expected validation error for id 0, got %v", err)
	}
	if err := svc.Delete(-3); !domain.IsValidation(err) {
		t.Fatalf("expected validation error for negative id, got %v", err)
	}
}

func TestUserServiceToggleActive(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("SELECT .+ FROM users WHERE id").WithArgs(int64(7)).
		WillReturnRows(serviceUserRow(7, "active"))
	mock.ExpectExec("UPDATE users SET status").WithArgs("inactive", int64(7)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	svc := UserService{UserRepo: repositories.UserRepository{DB: db}, DB: db}
	status, err := svc.ToggleActive(7)
	if err != nil {
		t.Fatalf("ToggleActive error: %v", err)
	}
	if status != "inactive" {
		t.Fatalf("expected inactive after toggle, got %q", status)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}
