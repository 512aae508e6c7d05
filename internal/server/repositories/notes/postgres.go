// Package notes provides the PostgreSQL-backed note store with
// ownership/visibility-aware queries.
package notes

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/noteshare/internal/common"
	"github.com/dmitrijs2005/noteshare/internal/dbx"
	"github.com/dmitrijs2005/noteshare/internal/server/models"
)

// PostgresRepository implements note storage over a dbx.DBTX (*sql.DB or *sql.Tx).
type PostgresRepository struct {
	db dbx.DBTX
}

// NewPostgresRepository constructs a repository bound to the given DBTX.
func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// joinedColumns is the SELECT list used by every read path; author_name
// comes from the join against users.
const joinedColumns = `n.id, n.user_id, n.title, COALESCE(n.content, ''), n.is_public, n.created_at, n.updated_at,
		        u.username AS author_name`

func scanNote(row *sql.Row) (*models.Note, error) {
	note := &models.Note{}
	err := row.Scan(&note.ID, &note.UserID, &note.Title, &note.Content, &note.IsPublic,
		&note.CreatedAt, &note.UpdatedAt, &note.AuthorName)
	if err != nil {
		return nil, err
	}
	return note, nil
}

func (r *PostgresRepository) queryNotes(ctx context.Context, query string, args ...any) ([]*models.Note, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var result []*models.Note
	for rows.Next() {
		var item models.Note
		if err := rows.Scan(&item.ID, &item.UserID, &item.Title, &item.Content, &item.IsPublic,
			&item.CreatedAt, &item.UpdatedAt, &item.AuthorName); err != nil {
			return nil, err
		}
		result = append(result, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// Create inserts the note and resolves the author name in the same
// statement, so a concurrent owner deletion cannot split the two reads.
func (r *PostgresRepository) Create(ctx context.Context, ownerID int64, note *models.NoteCreate) (*models.Note, error) {

	query :=
		`INSERT INTO notes (user_id, title, content, is_public)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id, user_id, title, COALESCE(content, ''), is_public, created_at, updated_at,
		           (SELECT username FROM users WHERE id = $1) AS author_name
		 `

	created, err := scanNote(r.db.QueryRowContext(ctx, query,
		ownerID, note.Title, note.Content, note.IsPublic))
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return created, nil
}

// FindByID returns the note when the viewer owns it or it is public; with a
// nil viewer only public notes match.
func (r *PostgresRepository) FindByID(ctx context.Context, id int64, viewerID *int64) (*models.Note, error) {
	var (
		query string
		args  []any
	)

	if viewerID != nil {
		query =
			`SELECT ` + joinedColumns + `
			 FROM notes n
			 JOIN users u ON n.user_id = u.id
			 WHERE n.id = $1 AND (n.user_id = $2 OR n.is_public = TRUE)
			 `
		args = []any{id, *viewerID}
	} else {
		query =
			`SELECT ` + joinedColumns + `
			 FROM notes n
			 JOIN users u ON n.user_id = u.id
			 WHERE n.id = $1 AND n.is_public = TRUE
			 `
		args = []any{id}
	}

	note, err := scanNote(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return note, nil
}

// FindByOwner returns the owner's notes, most recently updated first.
func (r *PostgresRepository) FindByOwner(ctx context.Context, ownerID int64) ([]*models.Note, error) {
	query :=
		`SELECT ` + joinedColumns + `
		 FROM notes n
		 JOIN users u ON n.user_id = u.id
		 WHERE n.user_id = $1
		 ORDER BY n.updated_at DESC
		 `
	return r.queryNotes(ctx, query, ownerID)
}

// FindPublic returns every public note, most recently created first.
func (r *PostgresRepository) FindPublic(ctx context.Context) ([]*models.Note, error) {
	query :=
		`SELECT ` + joinedColumns + `
		 FROM notes n
		 JOIN users u ON n.user_id = u.id
		 WHERE n.is_public = TRUE
		 ORDER BY n.created_at DESC
		 `
	return r.queryNotes(ctx, query)
}

// Search matches the term against title or content, case-insensitively.
// Scope follows FindByID: owner plus public with a viewer, public only
// without one.
func (r *PostgresRepository) Search(ctx context.Context, term string, viewerID *int64) ([]*models.Note, error) {
	pattern := "%" + term + "%"

	if viewerID != nil {
		query :=
			`SELECT ` + joinedColumns + `
			 FROM notes n
			 JOIN users u ON n.user_id = u.id
			 WHERE (n.user_id = $1 OR n.is_public = TRUE)
			   AND (n.title ILIKE $2 OR n.content ILIKE $2)
			 ORDER BY n.updated_at DESC
			 `
		return r.queryNotes(ctx, query, *viewerID, pattern)
	}

	query :=
		`SELECT ` + joinedColumns + `
		 FROM notes n
		 JOIN users u ON n.user_id = u.id
		 WHERE n.is_public = TRUE
		   AND (n.title ILIKE $1 OR n.content ILIKE $1)
		 ORDER BY n.created_at DESC
		 `
	return r.queryNotes(ctx, query, pattern)
}

// Update applies the non-nil fields to the owner's note. A note owned by
// someone else matches no row and yields common.ErrorNotFound, same as a
// missing id.
func (r *PostgresRepository) Update(ctx context.Context, id, ownerID int64, update *models.NoteUpdate) (*models.Note, error) {
	if update == nil || update.Empty() {
		return nil, common.ErrorNotFound
	}

	set := make([]string, 0, 3)
	args := []any{id, ownerID}
	next := 3

	appendField := func(column string, value any) {
		set = append(set, fmt.Sprintf("%s = $%d", column, next))
		args = append(args, value)
		next++
	}
	if update.Title != nil {
		appendField("title", *update.Title)
	}
	if update.Content != nil {
		appendField("content", *update.Content)
	}
	if update.IsPublic != nil {
		appendField("is_public", *update.IsPublic)
	}

	query := fmt.Sprintf(
		`UPDATE notes SET %s
		 WHERE id = $1 AND user_id = $2
		 RETURNING id, user_id, title, COALESCE(content, ''), is_public, created_at, updated_at,
		           (SELECT username FROM users WHERE id = $2) AS author_name`,
		strings.Join(set, ", "))

	note, err := scanNote(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return note, nil
}

// Delete removes the owner's note; the same ownership gate as Update applies.
func (r *PostgresRepository) Delete(ctx context.Context, id, ownerID int64) (bool, error) {
	query :=
		`DELETE FROM notes
		 WHERE id = $1 AND user_id = $2
		 `
	res, err := r.db.ExecContext(ctx, query, id, ownerID)
	if err != nil {
		return false, fmt.Errorf("db error: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("rows affected error: %w", err)
	}
	return n > 0, nil
}

// CountByOwner returns how many notes the owner has, private ones included.
func (r *PostgresRepository) CountByOwner(ctx context.Context, ownerID int64) (int64, error) {
	query :=
		`SELECT COUNT(*) FROM notes
		 WHERE user_id = $1
		 `
	var count int64
	if err := r.db.QueryRowContext(ctx, query, ownerID).Scan(&count); err != nil {
		return 0, fmt.Errorf("db error: %w", err)
	}
	return count, nil
}
