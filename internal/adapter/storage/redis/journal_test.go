package redis

import (
	"context"
	"testing"
	"time"

	"banking-core/internal/core/domain"
	"banking-core/pkg/money"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReconciliationJournal_RecordAndList(t *testing.T) {
	s := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: s.Addr()})
	journal := NewReconciliationJournal(client)
	ctx := context.Background()

	first := domain.OrphanedMutation{
		CorrelationID:   "corr-1",
		Operation:       "transfer",
		RemoteID:        "remote-tx-1",
		SenderWallet:    "w-from",
		RecipientWallet: "w-to",
		Amount:          money.MustParse("10.00"),
		Error:           "commit tx: connection reset",
		OccurredAt:      time.Date(2026, 10, 1, 12, 0, 0, 0, time.UTC),
	}
	second := first
	second.CorrelationID = "corr-2"
	second.Operation = "emit_asset"

	require.NoError(t, journal.Record(ctx, first))
	require.NoError(t, journal.Record(ctx, second))

	entries, err := journal.List(ctx, 10)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "corr-2", entries[0].CorrelationID, "newest first")
	assert.Equal(t, "corr-1", entries[1].CorrelationID)
	assert.Equal(t, "10.00", entries[1].Amount.String())
	assert.Equal(t, first.OccurredAt, entries[1].OccurredAt)

	limited, err := journal.List(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, limited, 1)

	assert.Equal(t, time.Duration(0), s.TTL("reconciliation:orphans"), "entries never expire")
}

func TestReconciliationJournal_Empty(t *testing.T) {
	s := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: s.Addr()})

	entries, err := NewReconciliationJournal(client).List(context.Background(), 0)
	require.NoError(t, err)
	assert.Empty(t, entries)
}
