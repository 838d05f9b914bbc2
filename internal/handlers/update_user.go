package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/sbilibin2017/gw-users-items/internal/models"
	"github.com/sbilibin2017/gw-users-items/internal/services"
)

//go:generate mockgen -source=update_user.go -destination=update_user_mock.go -package=handlers

// UserUpdater defines the interface that the service must implement.
type UserUpdater interface {
	UpdateUser(ctx context.Context, id int64, upd models.UserUpdate) (*models.User, error)
}

// UserUpdateRequest represents the JSON body for a user update.
// Omitted or null fields keep their stored value.
// swagger:model UserUpdateRequest
type UserUpdateRequest struct {
	// New email
	// default: b@x.com
	Email *string `json:"email" validate:"omitempty,email"`

	// Active flag
	// default: false
	IsActive *bool `json:"is_active"`
}

// NewUpdateUserHandler returns an HTTP handler updating a user.
// @Summary Update a user
// @Description Writes only the fields present in the body.
// @Tags users
// @Accept json
// @Produce json
// @Param user_id path int true "User ID"
// @Param userUpdateRequest body handlers.UserUpdateRequest true "User update request"
// @Success 200 {object} models.User "Updated user"
// @Failure 400 {object} handlers.ErrorResponse "Email already registered"
// @Failure 404 {object} handlers.ErrorResponse "User not found"
// @Failure 422 {object} handlers.ErrorResponse "Invalid request"
// @Router /users/{user_id} [put]
func NewUpdateUserHandler(svc UserUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := parseUserID(r)
		if err != nil {
			writeError(w, http.StatusUnprocessableEntity, err.Error())
			return
		}

		var req UserUpdateRequest
		if err := decodeBody(r, &req); err != nil {
			writeError(w, http.StatusUnprocessableEntity, err.Error())
			return
		}

		user, err := svc.UpdateUser(r.Context(), id, models.UserUpdate{
			Email:    req.Email,
			IsActive: req.IsActive,
		})
		switch {
		case errors.Is(err, services.ErrEmailAlreadyRegistered):
			writeError(w, http.StatusBadRequest, "Email already registered")
			return
		case err != nil:
			writeInternalError(w, r, "failed to update user", err)
			return
		case user == nil:
			writeError(w, http.StatusNotFound, "User not found")
			return
		}

		writeJSON(w, http.StatusOK, user)
	}
}
