package services

import (
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"wargameshc/internal/domain"
	"wargameshc/internal/repositories"
)

const testSecret = "unit-test-secret"

func userRows(mock sqlmock.Sqlmock, status, passwordHash string) {
	now := time.Date(2026, 1, 15, 10, 0, 0, 0, time.UTC)
	mock.ExpectQuery("FROM users WHERE email = \\? OR username").
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "name", "username", "email", "phone", "password_hash", "role", "status", "created_at", "updated_at",
		}).AddRow(1, "Admin", "admin", "admin@example.com", "0812345678", passwordHash, "admin", status, now, now))
}

func TestAuthServiceLogin(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	hash, err := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("bcrypt error: %v", err)
	}
	userRows(mock, "active", string(hash))

	svc := AuthService{
		UserRepo:  repositories.UserRepository{DB: db},
		DB:        db,
		JWTSecret: testSecret,
		Now:       func() time.Time { return time.Date(2026, 1, 15, 12, 0, 0, 0, time.UTC) },
	}
	user, token, err := svc.Login("admin", "secret123")
	if err != nil {
		t.Fatalf("Login returned error: %v", err)
	}
	if user.ID != 1 || user.Role != "admin" {
		t.Fatalf("unexpected user: %+v", user)
	}

	parsed, err := jwt.Parse(token, func(t *jwt.Token) (interface{}, error) {
		return []byte(testSecret), nil
	}, jwt.WithValidMethods([]string{"HS256"}), jwt.WithTimeFunc(svc.Now))
	if err != nil || !parsed.Valid {
		t.Fatalf("token does not verify: %v", err)
	}
	claims := parsed.Claims.(jwt.MapClaims)
	if claims["role"] != "admin" {
		t.Fatalf("token role = %v", claims["role"])
	}
}

func TestAuthServiceLoginRejections(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	hash, _ := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.MinCost)
	svc := AuthService{
		UserRepo:  repositories.UserRepository{DB: db},
		DB:        db,
		JWTSecret: testSecret,
	}

	// Wrong password.
	userRows(mock, "active", string(hash))
	if _, _, err := svc.Login("admin", "wrong"); !errors.Is(err, ErrBadCredentials) {
		t.Fatalf("wrong password error = %v", err)
	}

	// Deactivated account.
	userRows(mock, "inactive", string(hash))
	if _, _, err := svc.Login("admin", "secret123"); !errors.Is(err, ErrBadCredentials) {
		t.Fatalf("inactive account error = %v", err)
	}

	// Unknown account: NotFound becomes the same generic rejection.
	mock.ExpectQuery("FROM users WHERE email = \\? OR username").
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "name", "username", "email", "phone", "password_hash", "role", "status", "created_at", "updated_at",
		}))
	if _, _, err := svc.Login("ghost", "secret123"); !errors.Is(err, ErrBadCredentials) {
		t.Fatalf("unknown account error = %v", err)
	}

	// Empty credentials never touch the database.
	if _, _, err := svc.Login("", ""); !errors.Is(err, ErrBadCredentials) {
		t.Fatalf("empty credentials error = %v", err)
	}
}

func TestAuthServiceRegisterValidation(t *testing.T) {
	svc := AuthService{JWTSecret: testSecret}

	if _, err := svc.Register("", "u", "e@x.com", "", "password1", ""); !domain.IsValidation(err) {
		t.Fatalf("missing name error = %v, want ValidationError", err)
	}
	if _, err := svc.Register("Name", "u", "e@x.com", "", "short", ""); !domain.IsValidation(err) {
		t.Fatalf("short password error = %v, want ValidationError", err)
	}
	if _, err := svc.Register("Name", "u", "e@x.com", "", "password1", "superuser"); !domain.IsValidation(err) {
		t.Fatalf("unknown role error = %v, want ValidationError", err)
	}
}

func TestAuthServiceRegisterConflict(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("SELECT COUNT\\(\\*\\) FROM users").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

	svc := AuthService{UserRepo: repositories.UserRepository{DB: db}, DB: db, JWTSecret: testSecret}
	if _, err := svc.Register("Name", "taken", "taken@x.com", "", "password1", ""); !domain.IsConflict(err) {
		t.Fatalf("duplicate account error = %v, want ConflictError", err)
	}
}
