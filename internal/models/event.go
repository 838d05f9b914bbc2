package models

// Event types published on the lifecycle topic.
const (
	EventUserCreated = "user.created"
	EventUserUpdated = "user.updated"
	EventUserDeleted = "user.deleted"
	EventItemCreated = "item.created"
)

// Event describes a committed change to a user or an item.
type Event struct {
	EventID   string `json:"event_id"`          // EventID is a unique identifier of the event.
	Type      string `json:"type"`              // Type is one of the Event* constants.
	Timestamp int64  `json:"timestamp"`         // Timestamp is the Unix time (seconds) of the change.
	UserID    int64  `json:"user_id"`           // UserID is the user the change belongs to.
	ItemID    int64  `json:"item_id,omitempty"` // ItemID is set for item events only.
}
