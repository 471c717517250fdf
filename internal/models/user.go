package models

// User owns projects. The password hash stays in the database layer and is
// never carried on this struct.
type User struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

// GetID returns the user's identifier
func (u *User) GetID() int64 {
	return u.ID
}
