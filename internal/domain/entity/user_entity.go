package entity

import "time"

// User is the record of identity owned by the user directory.
// Users are immutable after creation and never deleted by this system.
type User struct {
	ID        string
	Name      string
	Email     string
	CreatedAt time.Time
}
