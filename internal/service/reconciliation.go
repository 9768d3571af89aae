package service

import (
	"context"
	"errors"
	"time"

	"banking-core/internal/core/domain"
	"banking-core/internal/core/ports"
	"banking-core/pkg/apperror"

	"github.com/rs/zerolog"
)

// orphanReporter surfaces remote mutations that could not be recorded
// locally. It never retries the remote side.
type orphanReporter struct {
	journal ports.ReconciliationJournal
	log     zerolog.Logger
}

func (r orphanReporter) report(ctx context.Context, m domain.OrphanedMutation, cause error) {
	m.Error = cause.Error()
	m.OccurredAt = time.Now().UTC()

	r.log.Error().
		Err(cause).
		Str("correlation_id", m.CorrelationID).
		Str("operation", m.Operation).
		Str("remote_id", m.RemoteID).
		Str("sender_wallet", m.SenderWallet).
		Str("recipient_wallet", m.RecipientWallet).
		Str("amount", m.Amount.String()).
		Msg("remote mutation accepted but not recorded locally, manual reconciliation required")

	// The request context may already be cancelled; the journal entry must still land.
	if err := r.journal.Record(context.WithoutCancel(ctx), m); err != nil {
		r.log.Error().Err(err).Str("correlation_id", m.CorrelationID).Msg("failed to journal orphaned mutation")
	}
}

// rejected maps a failed ledger mutation. A 2xx the client could not read may
// have been applied, so it is journaled instead of reported as a rejection.
func (r orphanReporter) rejected(ctx context.Context, m domain.OrphanedMutation, operation string, err error) *apperror.AppError {
	if errors.Is(err, domain.ErrUnreadableReply) {
		r.report(ctx, m, err)
		return apperror.ErrRemoteOutcomeUnknown(operation, err)
	}
	return apperror.ErrRemoteLedger(operation, err)
}
