package callguard

import (
	"context"

	"call-server/internal/clients/twilio"
	"call-server/internal/store"
)

// Store defines the database operations required by the guard.
type Store interface {
	GetVerifiedUserByPhone(ctx context.Context, phone string) (store.VerifiedUser, error)
	CountCompletedCallsByPhone(ctx context.Context, phone string) (int, error)
	GetLatestCallByPhone(ctx context.Context, phone string) (store.Call, error)
	UpsertCallStatus(ctx context.Context, params store.UpsertCallParams) (store.Call, error)
}

// ProviderLookup resolves the provider's view of the most recent call to a
// number. It is the source of truth when the local ledger is stale.
type ProviderLookup interface {
	LatestCallTo(ctx context.Context, phone string) (*twilio.CallRecord, error)
}
