package users

import (
	"context"

	"github.com/dmitrijs2005/noteshare/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, username, email, passwordHash string) (*models.User, error)
	FindByID(ctx context.Context, id int64) (*models.User, error)
	FindByUsername(ctx context.Context, username string) (*models.User, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	FindAll(ctx context.Context) ([]*models.User, error)
	Update(ctx context.Context, id int64, patch *models.UserPatch) (*models.User, error)
	Delete(ctx context.Context, id int64) (bool, error)
}
