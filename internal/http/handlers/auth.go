package handlers

import (
	"errors"
	"net/http"

	"wargameshc/internal/http/middleware"
	"wargameshc/internal/services"

	"github.com/gin-gonic/gin"
)

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// POST /api/auth/login
func Login(c *gin.Context) {
	var req loginRequest
	if !BindJSONOrError(c, &req) {
		return
	}

	svc := services.AuthService{
		JWTSecret: env.JWTSecret,
		RequestID: middleware.GetRequestID(c),
	}
	user, token, err := svc.Login(req.Email, req.Password)
	if err != nil {
		if errors.Is(err, services.ErrBadCredentials) {
			RespondError(c, http.StatusUnauthorized, "Invalid email/username or password")
			return
		}
		RespondDomainError(c, err)
		return
	}

	RespondSuccess(c, http.StatusOK, gin.H{
		"token": token,
		"user":  user,
	})
}

// GET /api/auth/me
func Me(c *gin.Context) {
	svc := services.AuthService{
		JWTSecret: env.JWTSecret,
		RequestID: middleware.GetRequestID(c),
	}
	user, err := svc.Me(middleware.GetUserID(c))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	RespondSuccess(c, http.StatusOK, user)
}

type registerRequest struct {
	Name     string `json:"name"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

// POST /api/auth/register (admin only)
func Register(c *gin.Context) {
	var req registerRequest
	if !BindJSONOrError(c, &req) {
		return
	}

	svc := services.AuthService{
		JWTSecret: env.JWTSecret,
		RequestID: middleware.GetRequestID(c),
	}
	user, err := svc.Register(req.Name, req.Username, req.Email, req.Phone, req.Password, req.Role)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	RespondSuccess(c, http.StatusCreated, user)
}
