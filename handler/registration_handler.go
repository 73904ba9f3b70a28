package handler

import (
	"encoding/json"
	"errors"
	"fmt"

	"noteful/dto"
	"noteful/usecase"
	"noteful/utils"

	"github.com/gin-gonic/gin"
)

// RegistrationHandler creates a new account. The password digest never
// appears in the response body.
func RegistrationHandler(c *gin.Context, userService *usecase.UserService) {
	var req dto.SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		// A wrong-typed field gets the same message the string checks
		// would have produced.
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) && typeErr.Field != "" {
			utils.UnprocessableEntity(c, fmt.Sprintf("'%s' is not a non-empty string", typeErr.Field))
			return
		}
		utils.BadRequest(c, "Invalid request body")
		return
	}

	user, err := userService.SignUp(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	location := c.Request.URL.Path + "/" + user.UserID
	utils.Created(c, location, dto.ToUserResponse(user))
}
