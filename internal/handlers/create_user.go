package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/sbilibin2017/gw-users-items/internal/models"
	"github.com/sbilibin2017/gw-users-items/internal/passwords"
	"github.com/sbilibin2017/gw-users-items/internal/services"
)

//go:generate mockgen -source=create_user.go -destination=create_user_mock.go -package=handlers

// UserCreator defines the interface that the service must implement.
type UserCreator interface {
	CreateUser(ctx context.Context, email, password string) (*models.User, error)
}

// UserCreateRequest represents the JSON body for user creation
// swagger:model UserCreateRequest
type UserCreateRequest struct {
	// Email
	// required: true
	// default: a@x.com
	Email string `json:"email" validate:"required,email"`

	// Password, at most 72 bytes
	// required: true
	// default: secret
	Password string `json:"password" validate:"required,maxbytes=72"`
}

// NewCreateUserHandler returns an HTTP handler for user creation.
// @Summary Create a user
// @Description Creates an active user. The password is hashed before storing and never returned.
// @Tags users
// @Accept json
// @Produce json
// @Param userCreateRequest body handlers.UserCreateRequest true "User creation request"
// @Success 200 {object} models.User "Created user"
// @Failure 400 {object} handlers.ErrorResponse "Email already registered"
// @Failure 422 {object} handlers.ErrorResponse "Invalid request"
// @Router /users/ [post]
func NewCreateUserHandler(svc UserCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req UserCreateRequest
		if err := decodeBody(r, &req); err != nil {
			writeError(w, http.StatusUnprocessableEntity, err.Error())
			return
		}

		user, err := svc.CreateUser(r.Context(), req.Email, req.Password)
		switch {
		case errors.Is(err, services.ErrEmailAlreadyRegistered):
			writeError(w, http.StatusBadRequest, "Email already registered")
			return
		case errors.Is(err, passwords.ErrPasswordTooLong):
			writeError(w, http.StatusUnprocessableEntity, "password: failed on 'maxbytes'")
			return
		case err != nil:
			writeInternalError(w, r, "failed to create user", err)
			return
		}

		writeJSON(w, http.StatusOK, user)
	}
}
