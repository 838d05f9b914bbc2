package handlers

import (
	"context"
	"net/http"

	"github.com/sbilibin2017/gw-users-items/internal/models"
)

//go:generate mockgen -source=list_users.go -destination=list_users_mock.go -package=handlers

// UsersLister defines the interface that the service must implement.
type UsersLister interface {
	ListUsers(ctx context.Context, skip, limit uint64) ([]models.User, error)
}

// NewListUsersHandler returns an HTTP handler listing users.
// @Summary List users
// @Tags users
// @Produce json
// @Param skip query int false "Number of users to skip" default(0)
// @Param limit query int false "Maximum number of users" default(100)
// @Success 200 {array} models.User
// @Failure 422 {object} handlers.ErrorResponse "Invalid pagination"
// @Router /users/ [get]
func NewListUsersHandler(svc UsersLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		skip, limit, err := parsePagination(r)
		if err != nil {
			writeError(w, http.StatusUnprocessableEntity, err.Error())
			return
		}

		users, err := svc.ListUsers(r.Context(), skip, limit)
		if err != nil {
			writeInternalError(w, r, "failed to list users", err)
			return
		}

		writeJSON(w, http.StatusOK, users)
	}
}
