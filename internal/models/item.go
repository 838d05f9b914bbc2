package models

// ItemDB represents a row of the items table
type ItemDB struct {
	ID          int64   `db:"id"`          // Primary key
	Title       string  `db:"title"`       // Item title
	Description *string `db:"description"` // Optional description, NULL when absent
	OwnerID     int64   `db:"owner_id"`    // References users.id
}

// Item is the public representation of an item
// swagger:model Item
type Item struct {
	// example: 1
	ID int64 `json:"id"`

	// example: Book
	Title string `json:"title"`

	// example: A paperback
	Description *string `json:"description"`

	// example: 1
	OwnerID int64 `json:"owner_id"`
}

// NewItem builds the public item from its row.
func NewItem(row *ItemDB) *Item {
	return &Item{
		ID:          row.ID,
		Title:       row.Title,
		Description: row.Description,
		OwnerID:     row.OwnerID,
	}
}
