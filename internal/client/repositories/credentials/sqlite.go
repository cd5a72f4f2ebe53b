package credentials

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/dmitrijs2005/storefront/internal/client/models"
	"github.com/dmitrijs2005/storefront/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/storefront/internal/dbx"
)

type SQLiteRepository struct {
	db *sql.DB
}

func NewSQLiteRepository(db *sql.DB) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func (r *SQLiteRepository) Save(ctx context.Context, token string, identity models.Identity) error {
	user, err := json.Marshal(identity)
	if err != nil {
		return fmt.Errorf("encode user: %w", err)
	}
	return dbx.WithTx(ctx, r.db, func(ctx context.Context, tx dbx.DBTX) error {
		repo := metadata.NewSQLiteRepository(tx)
		if err := repo.Set(ctx, KeyToken, []byte(token)); err != nil {
			return err
		}
		return repo.Set(ctx, KeyUser, user)
	})
}

func (r *SQLiteRepository) Load(ctx context.Context) (string, *models.Identity, error) {
	var (
		token string
		ident *models.Identity
	)
	err := dbx.WithTx(ctx, r.db, func(ctx context.Context, tx dbx.DBTX) error {
		repo := metadata.NewSQLiteRepository(tx)
		rawToken, err := repo.Get(ctx, KeyToken)
		if err != nil {
			return err
		}
		rawUser, err := repo.Get(ctx, KeyUser)
		if err != nil {
			return err
		}
		if len(rawToken) == 0 || len(rawUser) == 0 {
			return nil
		}
		var u models.Identity
		if err := json.Unmarshal(rawUser, &u); err != nil {
			return fmt.Errorf("decode stored user: %w", err)
		}
		token, ident = string(rawToken), &u
		return nil
	})
	if err != nil {
		return "", nil, err
	}
	return token, ident, nil
}

func (r *SQLiteRepository) Clear(ctx context.Context) error {
	return metadata.NewSQLiteRepository(r.db).Delete(ctx, KeyToken, KeyUser)
}
