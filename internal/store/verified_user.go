package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// VerifiedUser maps a phone number to the permission record controlling what
// the call agent may do with it.
type VerifiedUser struct {
	Phone          string         `db:"phone"`
	Email          sql.NullString `db:"email"`
	DoNotSendEmail bool           `db:"do_not_send_email"`
	Metadata       string         `db:"metadata"`
	ServerMetadata string         `db:"server_metadata"`
}

const sqlGetVerifiedUserByPhone = `
SELECT phone, email, do_not_send_email, metadata, server_metadata
FROM verified_users WHERE phone = $1`

func (s *Store) GetVerifiedUserByPhone(ctx context.Context, phone string) (VerifiedUser, error) {
	var user VerifiedUser
	err := s.db.GetContext(ctx, &user, sqlGetVerifiedUserByPhone, phone)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return VerifiedUser{}, ErrNotFound
		}
		s.logger.Error(ctx, "failed to get verified user by phone", err)
		return VerifiedUser{}, fmt.Errorf("failed to get verified user by phone: %w", err)
	}
	return user, nil
}
