package storage

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/dmitrijs2005/qradmin/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenStore_Lifecycle(t *testing.T) {
	db := openTestDB(t)
	s := NewTokenStore(db)
	fixed := time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)
	s.now = func() time.Time { return fixed }
	ctx := context.Background()

	tok, err := s.Load(ctx)
	require.NoError(t, err)
	assert.Empty(t, tok)

	require.NoError(t, s.Save(ctx, "jwt-abc"))

	tok, err = s.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, "jwt-abc", tok)

	at, ok, err := s.SavedAt(ctx)
	require.NoError(t, err)
	require.True(t, ok)
	assert.True(t, fixed.Equal(at))

	// stored under the well-known key
	raw, err := NewMetadataRepository(db).Get(ctx, common.TokenMetadataKey)
	require.NoError(t, err)
	assert.Equal(t, []byte("jwt-abc"), raw)

	require.NoError(t, s.Clear(ctx))
	tok, err = s.Load(ctx)
	require.NoError(t, err)
	assert.Empty(t, tok)

	_, ok, err = s.SavedAt(ctx)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestWithTx_RollsBackOnError(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()
	boom := errors.New("boom")

	err := WithTx(ctx, db, func(ctx context.Context, tx DBTX) error {
		require.NoError(t, NewMetadataRepository(tx).Set(ctx, "x", []byte("1")))
		return boom
	})
	require.ErrorIs(t, err, boom)

	v, err := NewMetadataRepository(db).Get(ctx, "x")
	require.NoError(t, err)
	assert.Nil(t, v)
}

func TestWithTx_RollsBackAndRethrowsPanic(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	require.Panics(t, func() {
		_ = WithTx(ctx, db, func(ctx context.Context, tx DBTX) error {
			_ = NewMetadataRepository(tx).Set(ctx, "y", []byte("1"))
			panic("kaboom")
		})
	})

	v, err := NewMetadataRepository(db).Get(ctx, "y")
	require.NoError(t, err)
	assert.Nil(t, v)
}
