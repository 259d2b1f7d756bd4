package handlers

import (
	"net/http"
	"strconv"

	"wargameshc/internal/domain/models"
	"wargameshc/internal/http/middleware"
	"wargameshc/internal/services"

	"github.com/gin-gonic/gin"
)

func userService(c *gin.Context) services.UserService {
	return services.UserService{RequestID: middleware.GetRequestID(c)}
}

func paramID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		RespondError(c, http.StatusBadRequest, "invalid id")
		return 0, false
	}
	return id, true
}

// GET /api/users?search=&page=&limit=
func GetUsers(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

	users, total, err := userService(c).List(c.Query("search"), page, limit)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	RespondSuccess(c, http.StatusOK, gin.H{
		"users": users,
		"total": total,
		"page":  page,
		"limit": limit,
	})
}

// GET /api/users/:id
func GetUserByID(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	user, err := userService(c).Get(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	RespondSuccess(c, http.StatusOK, user)
}

type updateUserRequest struct {
	Name     *string `json:"name"`
	Email    *string `json:"email"`
	Phone    *string `json:"phone"`
	Role     *string `json:"role"`
	Status   *string `json:"status"`
	Password *string `json:"password"`
}

// PUT /api/users/:id
func UpdateUser(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	var req updateUserRequest
	if !BindJSONOrError(c, &req) {
		return
	}

	user, err := userService(c).Update(id, models.UserUpdate{
		Name:     req.Name,
		Email:    req.Email,
		Phone:    req.Phone,
		Role:     req.Role,
		Status:   req.Status,
		Password: req.Password,
	})
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	RespondSuccess(c, http.StatusOK, user)
}

// DELETE /api/users/:id
func DeleteUser(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	if id == middleware.GetUserID(c) {
		RespondError(c, http.StatusBadRequest, "cannot delete your own account")
		return
	}
	if err := userService(c).Delete(id); err != nil {
		RespondDomainError(c, err)
		return
	}
	RespondSuccess(c, http.StatusOK, gin.H{"deleted": true})
}

// PUT /api/users/:id/toggle-active
func ToggleUserActive(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	if id == middleware.GetUserID(c) {
		RespondError(c, http.StatusBadRequest, "cannot deactivate your own account")
		return
	}
	status, err := userService(c).ToggleActive(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	RespondSuccess(c, http.StatusOK, gin.H{"id": id, "status": status})
}
