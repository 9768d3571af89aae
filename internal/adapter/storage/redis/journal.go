package redis

import (
	"context"
	"encoding/json"
	"fmt"

	"banking-core/internal/core/domain"

	goredis "github.com/redis/go-redis/v9"
)

// ReconciliationJournal implements ports.ReconciliationJournal as a Redis
// list, newest entry first. Entries never expire; an operator clears them.
type ReconciliationJournal struct {
	client *goredis.Client
	key    string
}

// NewReconciliationJournal creates a journal on the reconciliation:orphans list.
func NewReconciliationJournal(client *goredis.Client) *ReconciliationJournal {
	return &ReconciliationJournal{
		client: client,
		key:    "reconciliation:orphans",
	}
}

// Record pushes one orphaned mutation.
func (j *ReconciliationJournal) Record(ctx context.Context, m domain.OrphanedMutation) error {
	payload, err := json.Marshal(m)
	if err != nil {
		return fmt.Errorf("encode orphaned mutation: %w", err)
	}
	if err := j.client.LPush(ctx, j.key, payload).Err(); err != nil {
		return fmt.Errorf("redis journal push: %w", err)
	}
	return nil
}

// List returns up to limit entries, newest first.
func (j *ReconciliationJournal) List(ctx context.Context, limit int) ([]domain.OrphanedMutation, error) {
	if limit <= 0 {
		limit = domain.DefaultPageLimit
	}
	raw, err := j.client.LRange(ctx, j.key, 0, int64(limit-1)).Result()
	if err != nil {
		return nil, fmt.Errorf("redis journal range: %w", err)
	}

	entries := make([]domain.OrphanedMutation, 0, len(raw))
	for _, item := range raw {
		var m domain.OrphanedMutation
		if err := json.Unmarshal([]byte(item), &m); err != nil {
			return nil, fmt.Errorf("decode orphaned mutation: %w", err)
		}
		entries = append(entries, m)
	}
	return entries, nil
}
