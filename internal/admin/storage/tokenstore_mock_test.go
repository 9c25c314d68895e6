package storage

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"
)

func newStoreWithMock(t *testing.T) (*TokenStore, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	s := NewTokenStore(db)
	s.now = func() time.Time { return time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC) }
	return s, mock
}

const upsertQ = `(?s)^\s*INSERT\s+INTO\s+metadata\b.*ON\s+CONFLICT`

func TestTokenStore_SaveWritesBothKeysInOneTx(t *testing.T) {
	s, mock := newStoreWithMock(t)

	mock.ExpectBegin()
	mock.ExpectExec(upsertQ).WithArgs("adminToken", []byte("tok")).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(upsertQ).WithArgs("adminTokenSavedAt", []byte("2024-05-01T12:00:00Z")).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	require.NoError(t, s.Save(context.Background(), "tok"))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestTokenStore_SaveRollsBackOnSecondWrite(t *testing.T) {
	s, mock := newStoreWithMock(t)

	mock.ExpectBegin()
	mock.ExpectExec(upsertQ).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(upsertQ).WillReturnError(errors.New("disk full"))
	mock.ExpectRollback()

	err := s.Save(context.Background(), "tok")
	require.ErrorContains(t, err, "failed to set metadata[adminTokenSavedAt]: disk full")
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestTokenStore_ClearBeginError(t *testing.T) {
	s, mock := newStoreWithMock(t)

	mock.ExpectBegin().WillReturnError(sql.ErrConnDone)

	require.ErrorIs(t, s.Clear(context.Background()), sql.ErrConnDone)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestTokenStore_ClearCommitError(t *testing.T) {
	s, mock := newStoreWithMock(t)

	mock.ExpectBegin()
	mock.ExpectExec(`(?s)^\s*DELETE\s+FROM\s+metadata`).WithArgs("adminToken").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`(?s)^\s*DELETE\s+FROM\s+metadata`).WithArgs("adminTokenSavedAt").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit().WillReturnError(errors.New("locked"))

	require.ErrorContains(t, s.Clear(context.Background()), "locked")
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestTokenStore_LoadQueryError(t *testing.T) {
	s, mock := newStoreWithMock(t)

	mock.ExpectQuery(`SELECT\s+value\s+FROM\s+metadata`).WithArgs("adminToken").WillReturnError(errors.New("io"))

	_, err := s.Load(context.Background())
	require.ErrorContains(t, err, "failed to get metadata[adminToken]: io")
	require.NoError(t, mock.ExpectationsWereMet())
}
