package db

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/shandysiswandi/innkeep/internal/identity/entity"
	"github.com/shandysiswandi/innkeep/internal/pkg/goerror"
)

// RotateRefreshToken revokes the old token and inserts its replacement in one
// transaction so a crash cannot leave both tokens usable.
func (s *DB) RotateRefreshToken(ctx context.Context, ro entity.RotateRefreshToken) (err error) {
	ctx, span := s.startSpan(ctx, "RotateRefreshToken")
	defer func() { s.endSpan(span, err) }()

	err = s.inTx(ctx, func(tx pgx.Tx) error {
		revoke := `
			UPDATE refresh_tokens
			SET revoked = TRUE
			WHERE id = $1 AND NOT revoked`

		tag, err := tx.Exec(ctx, revoke, ro.OldID)
		if err != nil {
			return err
		}
		if tag.RowsAffected() == 0 {
			return goerror.ErrNotFound
		}

		insert := `
			INSERT INTO refresh_tokens (id, user_id, token, expires_at)
			VALUES ($1, $2, $3, $4)`

		_, err = tx.Exec(ctx, insert, ro.NewID, ro.UserID, ro.NewToken, ro.NewExpiresAt)
		return err
	})

	return err
}
