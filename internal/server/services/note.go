package services

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/noteshare/internal/dbx"
	"github.com/dmitrijs2005/noteshare/internal/server/models"
	"github.com/dmitrijs2005/noteshare/internal/server/repositories/repomanager"
)

// NoteService provides note operations on top of the visibility-aware store.
// Ownership checks live in the store's WHERE clauses; this layer only binds
// repositories and passes identity through.
type NoteService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

// NewNoteService constructs a NoteService bound to the database.
func NewNoteService(db *sql.DB, m repomanager.RepositoryManager) *NoteService {
	return &NoteService{db: db, repomanager: m}
}

// Create stores a new note owned by ownerID.
func (s *NoteService) Create(ctx context.Context, ownerID int64, note *models.NoteCreate) (*models.Note, error) {
	repo := s.repomanager.Notes(s.db)
	return repo.Create(ctx, ownerID, note)
}

// Get returns the note if the viewer may see it; common.ErrorNotFound
// otherwise, whether the note is missing or merely private to someone else.
func (s *NoteService) Get(ctx context.Context, id int64, viewerID *int64) (*models.Note, error) {
	repo := s.repomanager.Notes(s.db)
	return repo.FindByID(ctx, id, viewerID)
}

// ListMine returns the owner's notes, most recently updated first, together
// with the owner's total note count. Both reads run in one read-only
// transaction so the count always matches the list.
func (s *NoteService) ListMine(ctx context.Context, ownerID int64) ([]*models.Note, int64, error) {
	var (
		notes []*models.Note
		count int64
	)

	err := dbx.WithTx(ctx, s.db, &sql.TxOptions{ReadOnly: true}, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repomanager.Notes(tx)
		var err error
		if notes, err = repo.FindByOwner(ctx, ownerID); err != nil {
			return err
		}
		count, err = repo.CountByOwner(ctx, ownerID)
		return err
	})
	if err != nil {
		return nil, 0, err
	}

	return notes, count, nil
}

// ListPublic returns every public note, most recently created first.
func (s *NoteService) ListPublic(ctx context.Context) ([]*models.Note, error) {
	repo := s.repomanager.Notes(s.db)
	return repo.FindPublic(ctx)
}

// Search returns notes visible to the viewer whose title or content contains
// the term, case-insensitively.
func (s *NoteService) Search(ctx context.Context, term string, viewerID *int64) ([]*models.Note, error) {
	repo := s.repomanager.Notes(s.db)
	return repo.Search(ctx, term, viewerID)
}

// Update applies the supplied fields to the owner's note.
func (s *NoteService) Update(ctx context.Context, id, ownerID int64, update *models.NoteUpdate) (*models.Note, error) {
	repo := s.repomanager.Notes(s.db)
	return repo.Update(ctx, id, ownerID, update)
}

// Delete removes the owner's note.
func (s *NoteService) Delete(ctx context.Context, id, ownerID int64) (bool, error) {
	repo := s.repomanager.Notes(s.db)
	return repo.Delete(ctx, id, ownerID)
}
