package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"noteful/dto"
	"noteful/model"
	"noteful/repository"
	"noteful/services"
	"noteful/utils"
)

type UserService struct {
	UsersRepo repository.Users
	Hasher    services.Hasher
}

// SignUp validates the signup payload, hashes the password, and
// persists the new user. Validation failures return *SignupError with
// the exact message for the offending field; nothing is persisted on
// invalid input.
func (svc *UserService) SignUp(ctx context.Context, req *dto.SignupRequest) (*model.User, error) {
	if err := validateSignup(req); err != nil {
		return nil, err
	}

	existing, err := svc.UsersRepo.FindUserByUsername(ctx, *req.Username)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, &SignupError{Message: "Username already exists"}
	}

	digest, err := svc.Hasher.Hash(*req.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &model.User{
		UserID:    utils.NewID(),
		Username:  *req.Username,
		Password:  digest,
		Fullname:  strings.TrimSpace(req.Fullname),
		CreatedAt: time.Now(),
	}

	if err := svc.UsersRepo.AddUser(ctx, user); err != nil {
		// The unique index closes the race left by the lookup above.
		if errors.Is(err, repository.ErrDuplicateUsername) {
			return nil, &SignupError{Message: "Username already exists"}
		}
		return nil, err
	}

	return user, nil
}

// VerifyCredentials checks a username/password pair against the stored
// digest. Unknown user and wrong password return the same error.
func (svc *UserService) VerifyCredentials(ctx context.Context, username, password string) (*model.User, error) {
	user, err := svc.UsersRepo.FindUserByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if user == nil || !svc.Hasher.Verify(user.Password, password) {
		return nil, ErrUnauthorized
	}
	return user, nil
}

func validateSignup(req *dto.SignupRequest) error {
	fields := []struct {
		name  string
		value *string
	}{
		{"username", req.Username},
		{"password", req.Password},
	}

	for _, field := range fields {
		if field.value == nil {
			return &SignupError{Message: fmt.Sprintf("Missing '%s' in request body", field.name)}
		}
	}
	for _, field := range fields {
		if *field.value == "" {
			return &SignupError{Message: fmt.Sprintf("'%s' is not a non-empty string", field.name)}
		}
	}
	for _, field := range fields {
		if *field.value != strings.TrimSpace(*field.value) {
			return &SignupError{Message: fmt.Sprintf("Invalid '%s', remove beginning or ending whitespace", field.name)}
		}
	}

	if len(*req.Password) < 8 {
		return &SignupError{Message: "Invalid password - must be at least 8 characters long"}
	}
	if len(*req.Password) > 72 {
		return &SignupError{Message: "Invalid password- must be less than 72 characters"}
	}

	return nil
}
