package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"
)

// Call statuses as delivered by the telephony provider.
const (
	CallStatusQueued     = "queued"
	CallStatusRinging    = "ringing"
	CallStatusInProgress = "in-progress"
	CallStatusCompleted  = "completed"
	CallStatusBusy       = "busy"
	CallStatusFailed     = "failed"
	CallStatusCanceled   = "canceled"
	CallStatusNoAnswer   = "no-answer"
)

const (
	CallDirectionInbound     = "inbound"
	CallDirectionOutboundAPI = "outbound-api"
)

// IsTerminalCallStatus reports whether no further lifecycle transition is
// expected after the given status.
func IsTerminalCallStatus(status string) bool {
	switch status {
	case CallStatusCompleted, CallStatusBusy, CallStatusFailed, CallStatusCanceled, CallStatusNoAnswer:
		return true
	}
	return false
}

type Call struct {
	SID         string    `db:"sid"`
	WithPhone   string    `db:"with_phone"`
	Status      string    `db:"status"`
	Direction   string    `db:"direction"`
	CallSummary string    `db:"call_summary"`
	CreatedAt   time.Time `db:"created_at"`
	UpdatedAt   time.Time `db:"updated_at"`
}

type UpsertCallParams struct {
	SID       string
	WithPhone string
	Status    string
	Direction string
}

// The conditional update keeps terminal statuses sticky: a row already in a
// terminal status only accepts a redelivery of that same status, which makes
// duplicate and out-of-order webhook delivery safe without a read-modify-write.
const sqlUpsertCallStatus = `
INSERT INTO calls (sid, with_phone, status, direction, call_summary, created_at, updated_at)
VALUES ($1, $2, $3, $4, '', NOW(), NOW())
ON CONFLICT (sid) DO UPDATE
SET status = EXCLUDED.status,
    updated_at = NOW()
WHERE calls.status NOT IN ('completed', 'busy', 'failed', 'canceled', 'no-answer')
   OR calls.status = EXCLUDED.status
RETURNING sid, with_phone, status, direction, call_summary, created_at, updated_at`

func (s *Store) UpsertCallStatus(ctx context.Context, params UpsertCallParams) (Call, error) {
	var call Call
	err := s.db.GetContext(ctx, &call, sqlUpsertCallStatus,
		params.SID, params.WithPhone, params.Status, params.Direction)
	if err == nil {
		return call, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		s.logger.Error(ctx, "failed to upsert call status", err)
		return Call{}, fmt.Errorf("failed to upsert call status: %w", err)
	}

	// The conditional update skipped the write because the row is already in
	// a different terminal status. Return the row as it stands.
	call, err = s.GetCallBySID(ctx, params.SID)
	if err != nil {
		return Call{}, fmt.Errorf("failed to load call after rejected transition: %w", err)
	}
	return call, nil
}

const sqlGetCallBySID = `
SELECT sid, with_phone, status, direction, call_summary, created_at, updated_at
FROM calls WHERE sid = $1`

func (s *Store) GetCallBySID(ctx context.Context, sid string) (Call, error) {
	var call Call
	err := s.db.GetContext(ctx, &call, sqlGetCallBySID, sid)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Call{}, ErrNotFound
		}
		s.logger.Error(ctx, "failed to get call by sid", err)
		return Call{}, fmt.Errorf("failed to get call by sid: %w", err)
	}
	return call, nil
}

const sqlGetLatestCallByPhone = `
SELECT sid, with_phone, status, direction, call_summary, created_at, updated_at
FROM calls WHERE with_phone = $1
ORDER BY created_at DESC
LIMIT 1`

func (s *Store) GetLatestCallByPhone(ctx context.Context, phone string) (Call, error) {
	var call Call
	err := s.db.GetContext(ctx, &call, sqlGetLatestCallByPhone, phone)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Call{}, ErrNotFound
		}
		s.logger.Error(ctx, "failed to get latest call by phone", err)
		return Call{}, fmt.Errorf("failed to get latest call by phone: %w", err)
	}
	return call, nil
}

const sqlCountCompletedCallsByPhone = `
SELECT COUNT(*) FROM calls WHERE with_phone = $1 AND status = 'completed'`

func (s *Store) CountCompletedCallsByPhone(ctx context.Context, phone string) (int, error) {
	var count int
	err := s.db.GetContext(ctx, &count, sqlCountCompletedCallsByPhone, phone)
	if err != nil {
		s.logger.Error(ctx, "failed to count completed calls", err)
		return 0, fmt.Errorf("failed to count completed calls: %w", err)
	}
	return count, nil
}

// The summary is written at most once; a second write for the same call is a
// silent no-op.
const sqlSetCallSummary = `
UPDATE calls SET call_summary = $1, updated_at = NOW()
WHERE sid = $2 AND call_summary = ''`

func (s *Store) SetCallSummary(ctx context.Context, sid, summary string) error {
	_, err := s.db.ExecContext(ctx, sqlSetCallSummary, summary, sid)
	if err != nil {
		s.logger.Error(ctx, "failed to set call summary", err)
		return fmt.Errorf("failed to set call summary: %w", err)
	}
	return nil
}
