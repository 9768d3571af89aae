package redis

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/go-redsync/redsync/v4"
	rsgoredis "github.com/go-redsync/redsync/v4/redis/goredis/v9"
	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

// ErrLockNotAcquired is returned when the wallet stayed locked for the
// whole wait window.
var ErrLockNotAcquired = errors.New("wallet lock not acquired")

const (
	lockPollInterval = 25 * time.Millisecond
	releaseTimeout   = time.Second
)

// WalletLock implements ports.WalletLocker on a single-node redsync mutex.
// The holder's random value guards release, so an expired lock re-taken by
// someone else is left alone.
type WalletLock struct {
	rs     *redsync.Redsync
	prefix string
	ttl    time.Duration
	tries  int
	log    zerolog.Logger
}

// NewWalletLock creates a lock whose keys expire after ttl; Acquire gives up
// after wait.
func NewWalletLock(client *goredis.Client, ttl, wait time.Duration, log zerolog.Logger) *WalletLock {
	tries := int(wait/lockPollInterval) + 1
	return &WalletLock{
		rs:     redsync.New(rsgoredis.NewPool(client)),
		prefix: "lock:wallet:",
		ttl:    ttl,
		tries:  tries,
		log:    log,
	}
}

// Acquire blocks until the wallet is free, the wait window passes or ctx ends.
func (l *WalletLock) Acquire(ctx context.Context, walletID string) (func(), error) {
	key := l.prefix + walletID
	mutex := l.rs.NewMutex(key,
		redsync.WithExpiry(l.ttl),
		redsync.WithTries(l.tries),
		redsync.WithRetryDelay(lockPollInterval),
	)

	if err := mutex.LockContext(ctx); err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		return nil, fmt.Errorf("%w: %s: %v", ErrLockNotAcquired, walletID, err)
	}
	return l.releaser(mutex), nil
}

func (l *WalletLock) releaser(mutex *redsync.Mutex) func() {
	var once sync.Once
	return func() {
		once.Do(func() {
			// Detached from the caller's ctx, which may already be cancelled.
			ctx, cancel := context.WithTimeout(context.Background(), releaseTimeout)
			defer cancel()
			if ok, err := mutex.UnlockContext(ctx); !ok || err != nil {
				l.log.Warn().Err(err).Str("key", mutex.Name()).Msg("wallet lock release failed; it will expire")
			}
		})
	}
}
