package services

import (
	"database/sql"
	"fmt"

	intconfig "wargameshc/internal/config"
	"wargameshc/internal/domain"
	"wargameshc/internal/domain/models"
	"wargameshc/internal/repositories"
	"wargameshc/internal/utils"

	"golang.org/x/crypto/bcrypt"
)

// UserService covers the admin account management screens.
type UserService struct {
	UserRepo  repositories.UserRepository
	DB        *sql.DB
	RequestID string
}

func (s UserService) db() *sql.DB {
	if s.DB != nil {
		return s.DB
	}
	return intconfig.DB
}

func (s UserService) users() repositories.UserRepository {
	if s.UserRepo.DB != nil {
		return s.UserRepo
	}
	return repositories.UserRepository{DB: s.db()}
}

func (s UserService) List(search string, page, limit int) ([]models.User, int, error) {
	return s.users().List(search, page, limit)
}

func (s UserService) Get(id int64) (models.User, error) {
	if id <= 0 {
		return models.User{}, domain.ValidationError{Field: "id", Msg: "invalid user id"}
	}
	return s.users().GetByID(id)
}

// Update applies the non-nil fields. A new password is hashed here so the
// repository only ever sees bcrypt output.
func (s UserService) Update(id int64, upd models.UserUpdate) (models.User, error) {
	if id <= 0 {
		return models.User{}, domain.ValidationError{Field: "id", Msg: "invalid user id"}
	}
	if upd.Role != nil && *upd.Role != RoleAdmin && *upd.Role != RoleStaff {
		return models.User{}, domain.ValidationError{Field: "role", Msg: "unknown role"}
	}
	if upd.Status != nil && *upd.Status != "active" && *upd.Status != "inactive" {
		return models.User{}, domain.ValidationError{Field: "status", Msg: "unknown status"}
	}
	if upd.Password != nil {
		if len(*upd.Password) < 8 {
			return models.User{}, domain.ValidationError{Field: "password", Msg: "password must be at least 8 characters"}
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(*upd.Password), bcrypt.DefaultCost)
		if err != nil {
			return models.User{}, domain.InternalError{Err: err}
		}
		hashed := string(hash)
		upd.Password = &hashed
	}

	if err := s.users().Update(id, upd); err != nil {
		return models.User{}, err
	}
	utils.LogEvent(s.RequestID, "users", "update", fmt.Sprintf("user_id=%d", id))
	return s.users().GetByID(id)
}

func (s UserService) Delete(id int64) error {
	if id <= 0 {
		return domain.ValidationError{Field: "id", Msg: "invalid user id"}
	}
	if err := s.users().Delete(id); err != nil {
		return err
	}
	utils.LogEvent(s.RequestID, "users", "delete", fmt.Sprintf("user_id=%d", id))
	return nil
}

// ToggleActive flips active/inactive and returns the new status.
func (s UserService) ToggleActive(id int64) (string, error) {
	if id <= 0 {
		return "", domain.ValidationError{Field: "id", Msg: "invalid user id"}
	}
	status, err := s.users().ToggleActive(id)
	if err != nil {
		return "", err
	}
	utils.LogEvent(s.RequestID, "users", "toggle_active", fmt.Sprintf("user_id=%d status=%s", id, status))
	return status, nil
}
