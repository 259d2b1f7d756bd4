package handlers

import (
	"net/http"

	"wargameshc/internal/domain"

	"github.com/gin-gonic/gin"
)

// RespondDomainError maps domain errors to HTTP status codes using the
// standard envelope. Internal details never leak to the client.
func RespondDomainError(c *gin.Context, err error) {
	switch {
	case domain.IsValidation(err):
		RespondError(c, http.StatusBadRequest, err.Error())
	case domain.IsNotFound(err):
		RespondError(c, http.StatusNotFound, err.Error())
	case domain.IsConflict(err):
		RespondError(c, http.StatusConflict, err.Error())
	default:
		RespondError(c, http.StatusInternalServerError, "something went wrong")
	}
}
