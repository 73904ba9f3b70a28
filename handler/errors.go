package handler

import (
	"errors"

	"noteful/usecase"
	"noteful/utils"

	"github.com/gin-gonic/gin"
)

// respondError maps domain errors to HTTP statuses. Anything
// unrecognized becomes a 500 with no internals leaked.
func respondError(c *gin.Context, err error) {
	var refErr *usecase.RefError
	var signupErr *usecase.SignupError

	switch {
	case errors.As(err, &refErr):
		utils.BadRequest(c, refErr.Error())
	case errors.As(err, &signupErr):
		utils.UnprocessableEntity(c, signupErr.Error())
	case errors.Is(err, usecase.ErrNotFound):
		utils.NotFound(c, "Not Found")
	case errors.Is(err, usecase.ErrUnauthorized):
		utils.Unauthorized(c, "Unauthorized")
	default:
		utils.TrackError("internal")
		utils.InternalError(c, "Internal Server Error")
	}
}
