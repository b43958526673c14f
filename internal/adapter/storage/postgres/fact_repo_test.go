package postgres

import (
	"context"
	"testing"
	"time"

	"offpay/internal/core/domain"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFactRepo_Record_InTransaction(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewFactRepo(mock)
	now := time.Now().UTC().Truncate(time.Microsecond)
	f := &domain.Fact{
		Kind:         domain.FactSettlement,
		Actor:        "0xpayer",
		Counterparty: "0xshop",
		Asset:        "APT",
		Amount:       100000,
		Fee:          1000,
		CommitHash:   "abc123",
		CreatedAt:    now,
	}

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO facts").
		WithArgs(f.Kind, f.Actor, f.Counterparty, f.Asset, f.Amount, f.Fee, f.CommitHash, f.CreatedAt).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	tx, err := mock.Begin(context.Background())
	require.NoError(t, err)

	assert.NoError(t, repo.Record(context.Background(), tx, f))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFactRepo_Record_WithoutTransaction(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewFactRepo(mock)
	now := time.Now().UTC().Truncate(time.Microsecond)
	f := &domain.Fact{
		Kind:      domain.FactPrecommit,
		Actor:     "0xmerchant",
		Asset:     "APT",
		Amount:    500,
		CreatedAt: now,
	}

	mock.ExpectExec("INSERT INTO facts").
		WithArgs(f.Kind, f.Actor, f.Counterparty, f.Asset, f.Amount, f.Fee, f.CommitHash, f.CreatedAt).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	assert.NoError(t, repo.Record(context.Background(), nil, f))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFactRepo_ListRecent(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewFactRepo(mock)
	now := time.Now().UTC().Truncate(time.Microsecond)

	rows := pgxmock.NewRows([]string{"id", "kind", "actor", "counterparty", "asset_id", "amount", "fee", "commit_hash", "created_at"}).
		AddRow(int64(2), domain.FactWithdraw, domain.Address("0xalice"), domain.Address(""), domain.AssetID("APT"), int64(50), int64(0), "", now).
		AddRow(int64(1), domain.FactDeposit, domain.Address("0xalice"), domain.Address(""), domain.AssetID("APT"), int64(100), int64(0), "", now)

	mock.ExpectQuery("SELECT .+ FROM facts ORDER BY id DESC").
		WithArgs(10).
		WillReturnRows(rows)

	facts, err := repo.ListRecent(context.Background(), 10)
	require.NoError(t, err)
	require.Len(t, facts, 2)
	assert.Equal(t, domain.FactWithdraw, facts[0].Kind)
	assert.Equal(t, int64(2), facts[0].ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}
