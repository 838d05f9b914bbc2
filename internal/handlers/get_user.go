package handlers

import (
	"context"
	"net/http"

	"github.com/sbilibin2017/gw-users-items/internal/models"
)

//go:generate mockgen -source=get_user.go -destination=get_user_mock.go -package=handlers

// UserGetter defines the interface that the service must implement.
type UserGetter interface {
	GetUser(ctx context.Context, id int64) (*models.User, error)
}

// UserByEmailGetter defines the interface that the service must implement.
type UserByEmailGetter interface {
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
}

// NewGetUserHandler returns an HTTP handler reading a user by id.
// @Summary Get a user
// @Tags users
// @Produce json
// @Param user_id path int true "User ID"
// @Success 200 {object} models.User
// @Failure 404 {object} handlers.ErrorResponse "User not found"
// @Failure 422 {object} handlers.ErrorResponse "Invalid user id"
// @Router /users/{user_id} [get]
func NewGetUserHandler(svc UserGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := parseUserID(r)
		if err != nil {
			writeError(w, http.StatusUnprocessableEntity, err.Error())
			return
		}

		user, err := svc.GetUser(r.Context(), id)
		if err != nil {
			writeInternalError(w, r, "failed to get user", err)
			return
		}
		if user == nil {
			writeError(w, http.StatusNotFound, "User not found")
			return
		}

		writeJSON(w, http.StatusOK, user)
	}
}

// NewGetUserByEmailHandler returns an HTTP handler reading a user by email.
// @Summary Get a user by email
// @Tags users
// @Produce json
// @Param email path string true "User email"
// @Success 200 {object} models.User
// @Failure 404 {object} handlers.ErrorResponse "User not found"
// @Router /users/email/{email} [get]
func NewGetUserByEmailHandler(svc UserByEmailGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, err := svc.GetUserByEmail(r.Context(), pathParam(r, "email"))
		if err != nil {
			writeInternalError(w, r, "failed to get user by email", err)
			return
		}
		if user == nil {
			writeError(w, http.StatusNotFound, "User not found")
			return
		}

		writeJSON(w, http.StatusOK, user)
	}
}
