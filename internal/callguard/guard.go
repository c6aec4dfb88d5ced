package callguard

//go:generate go run go.uber.org/mock/mockgen@latest -source=interfaces.go -destination=mocks_test.go -package=callguard

import (
	"context"
	"errors"
	"fmt"

	"call-server/internal/observability"
	"call-server/internal/store"
)

// completedCallLimit is a lifetime cap per phone number, not a rolling window.
const completedCallLimit = 3

var (
	ErrUnverifiedCaller = errors.New("callguard: phone number is not verified")
	ErrCallLimitReached = errors.New("callguard: completed call limit reached")
	ErrCallInProgress   = errors.New("callguard: a call with this number is already in progress")
)

// Guard enforces who may talk to the service and how often.
type Guard struct {
	store    Store
	provider ProviderLookup
	logger   *observability.Logger
}

func New(store Store, provider ProviderLookup, logger *observability.Logger) Guard {
	return Guard{
		store:    store,
		provider: provider,
		logger:   logger,
	}
}

// Authorize resolves the external party of the call and requires them to be a
// verified user. For inbound calls that is the caller, for outbound calls the
// dialed number.
func (g Guard) Authorize(ctx context.Context, direction, from, to string) (store.VerifiedUser, error) {
	counterpart := from
	if direction != store.CallDirectionInbound {
		counterpart = to
	}

	user, err := g.store.GetVerifiedUserByPhone(ctx, counterpart)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			ctx = observability.WithFields(ctx, observability.Field{Key: "phone", Value: counterpart})
			g.logger.Warn(ctx, "rejecting call from unverified number")
			return store.VerifiedUser{}, ErrUnverifiedCaller
		}
		return store.VerifiedUser{}, fmt.Errorf("failed to look up verified user: %w", err)
	}
	return user, nil
}

// CheckRateLimit rejects numbers that have already completed their quota of
// calls.
func (g Guard) CheckRateLimit(ctx context.Context, phone string) error {
	count, err := g.store.CountCompletedCallsByPhone(ctx, phone)
	if err != nil {
		return fmt.Errorf("failed to count completed calls: %w", err)
	}
	if count >= completedCallLimit {
		ctx = observability.WithFields(ctx, observability.Field{Key: "phone", Value: phone})
		g.logger.Warn(ctx, "call limit reached for number")
		return ErrCallLimitReached
	}
	return nil
}

// CheckNotBusy verifies that no call with the number is currently live. If the
// ledger shows a non-terminal call it is reconciled against the provider
// before the number is declared busy, since status callbacks can be lost.
func (g Guard) CheckNotBusy(ctx context.Context, phone string) error {
	latest, err := g.store.GetLatestCallByPhone(ctx, phone)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil
		}
		return fmt.Errorf("failed to load latest call: %w", err)
	}
	if store.IsTerminalCallStatus(latest.Status) {
		return nil
	}

	record, err := g.provider.LatestCallTo(ctx, phone)
	if err != nil {
		return fmt.Errorf("failed to reconcile call with provider: %w", err)
	}
	if record == nil {
		// Ledger row has no counterpart at the provider. Treat the number as free.
		return nil
	}
	if record.Status != latest.Status {
		latest, err = g.store.UpsertCallStatus(ctx, store.UpsertCallParams{
			SID:       record.SID,
			WithPhone: phone,
			Status:    record.Status,
			Direction: record.Direction,
		})
		if err != nil {
			return fmt.Errorf("failed to update reconciled call: %w", err)
		}
	}
	if !store.IsTerminalCallStatus(latest.Status) {
		return ErrCallInProgress
	}
	return nil
}
