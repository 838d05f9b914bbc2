package handlers

import (
	"context"
	"net/http"

	"github.com/sbilibin2017/gw-users-items/internal/models"
)

//go:generate mockgen -source=list_items.go -destination=list_items_mock.go -package=handlers

// ItemsLister defines the interface that the service must implement.
type ItemsLister interface {
	ListItems(ctx context.Context, skip, limit uint64) ([]models.Item, error)
}

// NewListItemsHandler returns an HTTP handler listing items of all users.
// @Summary List items
// @Tags items
// @Produce json
// @Param skip query int false "Number of items to skip" default(0)
// @Param limit query int false "Maximum number of items" default(100)
// @Success 200 {array} models.Item
// @Failure 422 {object} handlers.ErrorResponse "Invalid pagination"
// @Router /items/ [get]
func NewListItemsHandler(svc ItemsLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		skip, limit, err := parsePagination(r)
		if err != nil {
			writeError(w, http.StatusUnprocessableEntity, err.Error())
			return
		}

		items, err := svc.ListItems(r.Context(), skip, limit)
		if err != nil {
			writeInternalError(w, r, "failed to list items", err)
			return
		}

		writeJSON(w, http.StatusOK, items)
	}
}
