package notes

import (
	"context"

	"github.com/dmitrijs2005/noteshare/internal/server/models"
)

// Repository is the visibility-aware note store. Read and write operations
// that take a viewer or owner never distinguish "missing" from "forbidden":
// both surface as a not-found.
type Repository interface {
	Create(ctx context.Context, ownerID int64, note *models.NoteCreate) (*models.Note, error)
	FindByID(ctx context.Context, id int64, viewerID *int64) (*models.Note, error)
	FindByOwner(ctx context.Context, ownerID int64) ([]*models.Note, error)
	FindPublic(ctx context.Context) ([]*models.Note, error)
	Search(ctx context.Context, term string, viewerID *int64) ([]*models.Note, error)
	Update(ctx context.Context, id, ownerID int64, update *models.NoteUpdate) (*models.Note, error)
	Delete(ctx context.Context, id, ownerID int64) (bool, error)
	CountByOwner(ctx context.Context, ownerID int64) (int64, error)
}
