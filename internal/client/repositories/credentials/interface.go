package credentials

import (
	"context"

	"github.com/dmitrijs2005/storefront/internal/client/models"
)

const (
	KeyToken = "token"
	KeyUser  = "user"
)

// Repository stores one token/identity pair. Load returns ("", nil, nil)
// when nothing complete is stored.
type Repository interface {
	Save(ctx context.Context, token string, identity models.Identity) error
	Load(ctx context.Context) (string, *models.Identity, error)
	Clear(ctx context.Context) error
}
