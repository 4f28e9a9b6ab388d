package db

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/shandysiswandi/innkeep/internal/identity/entity"
	"github.com/shandysiswandi/innkeep/internal/pkg/goerror"
)

func (s *DB) UpdateUser(ctx context.Context, user entity.PatchUser, hash string) (err error) {
	ctx, span := s.startSpan(ctx, "UpdateUser")
	defer func() { s.endSpan(span, err) }()

	err = s.inTx(ctx, func(tx pgx.Tx) error {
		updateUser := `
			UPDATE users
			SET email = $2, phone = NULLIF($3, ''), full_name = $4, status = $5,
				updated_by = $6, updated_at = NOW()
			WHERE id = $1 AND deleted_at IS NULL`

		tag, err := tx.Exec(ctx, updateUser, user.ID, user.Email, user.Phone,
			user.FullName, user.Status, user.UpdatedBy)
		if err != nil {
			return err
		}
		if tag.RowsAffected() == 0 {
			return goerror.ErrNotFound
		}

		// empty hash keeps the current credential
		if hash == "" {
			return nil
		}

		updateCredential := `
			UPDATE user_credentials
			SET password = $2, updated_at = NOW()
			WHERE user_id = $1`

		_, err = tx.Exec(ctx, updateCredential, user.ID, hash)
		return err
	})

	return err
}

func (s *DB) UpdateUserProfile(ctx context.Context, id int64, fullName, phone string) (err error) {
	ctx, span := s.startSpan(ctx, "UpdateUserProfile")
	defer func() { s.endSpan(span, err) }()

	query := `
		UPDATE users
		SET full_name = $2, phone = NULLIF($3, ''), updated_by = $1, updated_at = NOW()
		WHERE id = $1 AND deleted_at IS NULL`

	tag, err := s.conn.Exec(ctx, query, id, fullName, phone)
	if err != nil {
		return s.mapError(err)
	}
	if tag.RowsAffected() == 0 {
		return goerror.ErrNotFound
	}

	return nil
}

func (s *DB) UpdateUserCredential(ctx context.Context, userID int64, hash string) (err error) {
	ctx, span := s.startSpan(ctx, "UpdateUserCredential")
	defer func() { s.endSpan(span, err) }()

	query := `
		UPDATE user_credentials
		SET password = $2, updated_at = NOW()
		WHERE user_id = $1`

	tag, err := s.conn.Exec(ctx, query, userID, hash)
	if err != nil {
		return s.mapError(err)
	}
	if tag.RowsAffected() == 0 {
		return goerror.ErrNotFound
	}

	return nil
}

// RevokeRefreshToken is idempotent, revoking an unknown token is not an error.
func (s *DB) RevokeRefreshToken(ctx context.Context, token string) (err error) {
	ctx, span := s.startSpan(ctx, "RevokeRefreshToken")
	defer func() { s.endSpan(span, err) }()

	query := `
		UPDATE refresh_tokens
		SET revoked = TRUE
		WHERE token = $1 AND NOT revoked`

	_, err = s.conn.Exec(ctx, query, token)
	return s.mapError(err)
}

func (s *DB) MarkUserDeleted(ctx context.Context, id, byID int64) (err error) {
	ctx, span := s.startSpan(ctx, "MarkUserDeleted")
	defer func() { s.endSpan(span, err) }()

	err = s.inTx(ctx, func(tx pgx.Tx) error {
		markDeleted := `
			UPDATE users
			SET deleted_at = NOW(), deleted_by = $2, updated_by = $2, updated_at = NOW()
			WHERE id = $1 AND deleted_at IS NULL`

		tag, err := tx.Exec(ctx, markDeleted, id, byID)
		if err != nil {
			return err
		}
		if tag.RowsAffected() == 0 {
			return goerror.ErrNotFound
		}

		revokeTokens := `
			UPDATE refresh_tokens
			SET revoked = TRUE
			WHERE user_id = $1 AND NOT revoked`

		_, err = tx.Exec(ctx, revokeTokens, id)
		return err
	})

	return err
}
