package models

import "time"

// User is a registered account. The password digest is never serialized
// to clients.
type User struct {
	ID           int64     `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// UserUpdate enumerates the columns a client may change. Nil fields are
// left untouched; Password, when set, is hashed before it reaches the store.
type UserUpdate struct {
	Username *string `json:"username"`
	Email    *string `json:"email"`
	Password *string `json:"password"`
}

// Empty reports whether the update would change nothing.
func (u *UserUpdate) Empty() bool {
	return u.Username == nil && u.Email == nil && u.Password == nil
}

// UserPatch is the store-level form of UserUpdate: the password has already
// been hashed by the service layer.
type UserPatch struct {
	Username     *string
	Email        *string
	PasswordHash *string
}

// Empty reports whether the patch would change nothing.
func (p *UserPatch) Empty() bool {
	return p.Username == nil && p.Email == nil && p.PasswordHash == nil
}
