package handlers

import (
	"context"
	"net/http"

	"github.com/sbilibin2017/gw-users-items/internal/models"
)

//go:generate mockgen -source=delete_user.go -destination=delete_user_mock.go -package=handlers

// UserDeleter defines the interface that the service must implement.
type UserDeleter interface {
	DeleteUser(ctx context.Context, id int64) (*models.User, error)
}

// NewDeleteUserHandler returns an HTTP handler deleting a user together with its items.
// @Summary Delete a user
// @Tags users
// @Produce json
// @Param user_id path int true "User ID"
// @Success 200 {object} handlers.MessageResponse "User deleted successfully"
// @Failure 404 {object} handlers.ErrorResponse "User not found"
// @Failure 422 {object} handlers.ErrorResponse "Invalid user id"
// @Router /users/{user_id} [delete]
func NewDeleteUserHandler(svc UserDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := parseUserID(r)
		if err != nil {
			writeError(w, http.StatusUnprocessableEntity, err.Error())
			return
		}

		user, err := svc.DeleteUser(r.Context(), id)
		if err != nil {
			writeInternalError(w, r, "failed to delete user", err)
			return
		}
		if user == nil {
			writeError(w, http.StatusNotFound, "User not found")
			return
		}

		writeJSON(w, http.StatusOK, MessageResponse{Message: "User deleted successfully"})
	}
}
