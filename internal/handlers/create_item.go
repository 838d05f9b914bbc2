package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/sbilibin2017/gw-users-items/internal/models"
	"github.com/sbilibin2017/gw-users-items/internal/services"
)

//go:generate mockgen -source=create_item.go -destination=create_item_mock.go -package=handlers

// ItemCreator defines the interface that the service must implement.
type ItemCreator interface {
	CreateItem(ctx context.Context, title string, description *string, ownerID int64) (*models.Item, error)
}

// ItemCreateRequest represents the JSON body for item creation
// swagger:model ItemCreateRequest
type ItemCreateRequest struct {
	// Title
	// required: true
	// default: Book
	Title string `json:"title" validate:"required"`

	// Optional description
	// default: A paperback
	Description *string `json:"description"`
}

// NewCreateItemHandler returns an HTTP handler creating an item for a user.
// @Summary Create an item for a user
// @Tags items
// @Accept json
// @Produce json
// @Param user_id path int true "Owner ID"
// @Param itemCreateRequest body handlers.ItemCreateRequest true "Item creation request"
// @Success 200 {object} models.Item "Created item"
// @Failure 404 {object} handlers.ErrorResponse "User not found"
// @Failure 422 {object} handlers.ErrorResponse "Invalid request"
// @Router /users/{user_id}/items/ [post]
func NewCreateItemHandler(svc ItemCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ownerID, err := parseUserID(r)
		if err != nil {
			writeError(w, http.StatusUnprocessableEntity, err.Error())
			return
		}

		var req ItemCreateRequest
		if err := decodeBody(r, &req); err != nil {
			writeError(w, http.StatusUnprocessableEntity, err.Error())
			return
		}

		item, err := svc.CreateItem(r.Context(), req.Title, req.Description, ownerID)
		switch {
		case errors.Is(err, services.ErrUserNotFound):
			writeError(w, http.StatusNotFound, "User not found")
			return
		case err != nil:
			writeInternalError(w, r, "failed to create item", err)
			return
		}

		writeJSON(w, http.StatusOK, item)
	}
}
