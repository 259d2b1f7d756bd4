package services

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	intconfig "wargameshc/internal/config"
	"wargameshc/internal/domain"
	"wargameshc/internal/domain/models"
	"wargameshc/internal/repositories"
	"wargameshc/internal/utils"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

const (
	RoleAdmin = "admin"
	RoleStaff = "staff"

	tokenTTL = 24 * time.Hour
)

// ErrBadCredentials keeps login failures indistinguishable between unknown
// account and wrong password.
var ErrBadCredentials = errors.New("invalid email/username or password")

// AuthService handles admin login and account creation.
type AuthService struct {
	UserRepo  repositories.UserRepository
	DB        *sql.DB
	JWTSecret string
	RequestID string
	Now       func() time.Time
}

func (s AuthService) db() *sql.DB {
	if s.DB != nil {
		return s.DB
	}
	return intconfig.DB
}

func (s AuthService) users() repositories.UserRepository {
	if s.UserRepo.DB != nil {
		return s.UserRepo
	}
	return repositories.UserRepository{DB: s.db()}
}

func (s AuthService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

// Login verifies credentials and returns the account with a signed token.
func (s AuthService) Login(login, password string) (models.User, string, error) {
	login = strings.TrimSpace(login)
	if login == "" || password == "" {
		return models.User{}, "", ErrBadCredentials
	}

	u, err := s.users().GetByLogin(login)
	if err != nil {
		if domain.IsNotFound(err) {
			return models.User{}, "", ErrBadCredentials
		}
		return models.User{}, "", err
	}
	if u.Status != "active" {
		return models.User{}, "", ErrBadCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return models.User{}, "", ErrBadCredentials
	}

	token, err := s.signToken(u)
	if err != nil {
		return models.User{}, "", domain.InternalError{Err: err}
	}

	utils.LogEvent(s.RequestID, "auth", "login", fmt.Sprintf("user_id=%d role=%s", u.ID, u.Role))
	return u, token, nil
}

// Register creates a new dashboard account. Role defaults to staff.
func (s AuthService) Register(name, username, email, phone, password, role string) (models.User, error) {
	name = strings.TrimSpace(name)
	username = strings.TrimSpace(username)
	email = strings.TrimSpace(email)
	if name == "" || username == "" || email == "" {
		return models.User{}, domain.ValidationError{Field: "name", Msg: "name, username and email are required"}
	}
	if len(password) < 8 {
		return models.User{}, domain.ValidationError{Field: "password", Msg: "password must be at least 8 characters"}
	}
	if role == "" {
		role = RoleStaff
	}
	if role != RoleAdmin && role != RoleStaff {
		return models.User{}, domain.ValidationError{Field: "role", Msg: "unknown role"}
	}

	exists, err := s.users().Exists(email, username)
	if err != nil {
		return models.User{}, err
	}
	if exists {
		return models.User{}, domain.ConflictError{Resource: "user", Msg: "email or username already registered"}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return models.User{}, domain.InternalError{Err: err}
	}

	u := models.User{
		Name:         name,
		Username:     username,
		Email:        email,
		Phone:        strings.TrimSpace(phone),
		PasswordHash: string(hash),
		Role:         role,
		Status:       "active",
	}
	id, err := s.users().Create(&u)
	if err != nil {
		return models.User{}, err
	}
	u.ID = id

	utils.LogEvent(s.RequestID, "auth", "register", fmt.Sprintf("user_id=%d role=%s", id, role))
	return u, nil
}

// Me loads the account behind an authenticated request.
func (s AuthService) Me(userID int64) (models.User, error) {
	if userID <= 0 {
		return models.User{}, domain.NotFoundError{Resource: "user"}
	}
	return s.users().GetByID(userID)
}

func (s AuthService) signToken(u models.User) (string, error) {
	now := s.now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": u.ID,
		"role":    u.Role,
		"iat":     now.Unix(),
		"exp":     now.Add(tokenTTL).Unix(),
	})
	return token.SignedString([]byte(s.JWTSecret))
}
