package models

import "time"

// Note is a user-owned text note. AuthorName is populated by the store's
// join against users and is not a column of the notes table.
type Note struct {
	ID         int64     `json:"id"`
	UserID     int64     `json:"user_id"`
	Title      string    `json:"title"`
	Content    string    `json:"content"`
	IsPublic   bool      `json:"is_public"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
	AuthorName string    `json:"author_name"`
}

// NoteCreate carries the client-settable fields of a new note. Ownership
// and timestamps are assigned server-side.
type NoteCreate struct {
	Title    string `json:"title"`
	Content  string `json:"content"`
	IsPublic bool   `json:"is_public"`
}

// NoteUpdate enumerates the columns a client may change on its own note.
// Nil fields are left untouched.
type NoteUpdate struct {
	Title    *string `json:"title"`
	Content  *string `json:"content"`
	IsPublic *bool   `json:"is_public"`
}

// Empty reports whether the update would change nothing.
func (u *NoteUpdate) Empty() bool {
	return u.Title == nil && u.Content == nil && u.IsPublic == nil
}
