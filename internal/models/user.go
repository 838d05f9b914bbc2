package models

// UserDB represents a row of the users table
type UserDB struct {
	ID             int64  `db:"id"`              // Primary key
	Email          string `db:"email"`           // Unique email
	HashedPassword string `db:"hashed_password"` // bcrypt hash, never serialized
	IsActive       bool   `db:"is_active"`       // Account flag, true on creation
}

// User is the public representation of a user together with the items it owns
// swagger:model User
type User struct {
	// example: 1
	ID int64 `json:"id"`

	// example: a@x.com
	Email string `json:"email"`

	// example: true
	IsActive bool `json:"is_active"`

	Items []Item `json:"items"`
}

// UserUpdate holds the fields a client may change on a user.
// A nil field is left untouched.
type UserUpdate struct {
	Email    *string
	IsActive *bool
}

// Empty reports whether the update carries no field at all.
func (u UserUpdate) Empty() bool {
	return u.Email == nil && u.IsActive == nil
}

// NewUser builds the public user from its row and owned items.
func NewUser(row *UserDB, items []ItemDB) *User {
	user := &User{
		ID:       row.ID,
		Email:    row.Email,
		IsActive: row.IsActive,
		Items:    make([]Item, 0, len(items)),
	}
	for i := range items {
		user.Items = append(user.Items, *NewItem(&items[i]))
	}
	return user
}
