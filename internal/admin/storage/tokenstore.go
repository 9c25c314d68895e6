package storage

import (
	"context"
	"database/sql"
	"time"

	"github.com/dmitrijs2005/qradmin/internal/common"
)

const tokenSavedAtKey = common.TokenMetadataKey + "SavedAt"

// TokenStore persists the admin bearer token.
type TokenStore struct {
	db  *sql.DB
	now func() time.Time
}

func NewTokenStore(db *sql.DB) *TokenStore {
	return &TokenStore{db: db, now: time.Now}
}

// Load returns the stored token, or "" when none is stored.
func (s *TokenStore) Load(ctx context.Context) (string, error) {
	v, err := NewMetadataRepository(s.db).Get(ctx, common.TokenMetadataKey)
	if err != nil {
		return "", err
	}
	return string(v), nil
}

// SavedAt reports when the current token was written.
func (s *TokenStore) SavedAt(ctx context.Context) (time.Time, bool, error) {
	v, err := NewMetadataRepository(s.db).Get(ctx, tokenSavedAtKey)
	if err != nil || v == nil {
		return time.Time{}, false, err
	}
	t, err := time.Parse(time.RFC3339Nano, string(v))
	if err != nil {
		return time.Time{}, false, nil
	}
	return t, true, nil
}

func (s *TokenStore) Save(ctx context.Context, token string) error {
	return WithTx(ctx, s.db, func(ctx context.Context, tx DBTX) error {
		repo := NewMetadataRepository(tx)
		if err := repo.Set(ctx, common.TokenMetadataKey, []byte(token)); err != nil {
			return err
		}
		return repo.Set(ctx, tokenSavedAtKey, []byte(s.now().UTC().Format(time.RFC3339Nano)))
	})
}

func (s *TokenStore) Clear(ctx context.Context) error {
	return WithTx(ctx, s.db, func(ctx context.Context, tx DBTX) error {
		repo := NewMetadataRepository(tx)
		if err := repo.Delete(ctx, common.TokenMetadataKey); err != nil {
			return err
		}
		return repo.Delete(ctx, tokenSavedAtKey)
	})
}
