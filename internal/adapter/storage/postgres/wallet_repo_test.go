package postgres

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func walletColumns() []string {
	return []string{"id", "owner_id", "external_id", "created_at", "updated_at"}
}

func TestWalletRepo_GetByID(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewWalletRepo(mock)
	now := time.Now().UTC().Truncate(time.Microsecond)
	id, owner := uuid.New(), uuid.New()

	mock.ExpectQuery("SELECT .+ FROM wallets WHERE id").
		WithArgs(id).
		WillReturnRows(pgxmock.NewRows(walletColumns()).AddRow(id, owner, strPtr("w-remote"), now, now))

	w, err := repo.GetByID(context.Background(), id)
	require.NoError(t, err)
	require.NotNil(t, w)
	assert.Equal(t, owner, w.OwnerID)

	ref, ok := w.Ref()
	require.True(t, ok)
	assert.Equal(t, id, ref.LocalID)
	assert.Equal(t, "w-remote", ref.RemoteID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWalletRepo_GetByID_NotRegisteredRemotely(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewWalletRepo(mock)
	now := time.Now().UTC()
	id := uuid.New()

	mock.ExpectQuery("SELECT .+ FROM wallets WHERE id").
		WithArgs(id).
		WillReturnRows(pgxmock.NewRows(walletColumns()).AddRow(id, uuid.New(), (*string)(nil), now, now))

	w, err := repo.GetByID(context.Background(), id)
	require.NoError(t, err)
	_, ok := w.Ref()
	assert.False(t, ok)
}

func TestWalletRepo_GetByID_NotFound(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewWalletRepo(mock)
	id := uuid.New()

	mock.ExpectQuery("SELECT .+ FROM wallets WHERE id").
		WithArgs(id).
		WillReturnError(pgx.ErrNoRows)

	w, err := repo.GetByID(context.Background(), id)
	assert.NoError(t, err)
	assert.Nil(t, w)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWalletRepo_GetByID_QueryError(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewWalletRepo(mock)
	id := uuid.New()

	mock.ExpectQuery("SELECT .+ FROM wallets WHERE id").
		WithArgs(id).
		WillReturnError(errors.New("connection refused"))

	_, err = repo.GetByID(context.Background(), id)
	assert.ErrorContains(t, err, "get wallet by id")
}
