package db

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/shandysiswandi/innkeep/internal/identity/entity"
)

func (s *DB) CreateUser(ctx context.Context, user entity.NewUser, hash string) (err error) {
	ctx, span := s.startSpan(ctx, "CreateUser")
	defer func() { s.endSpan(span, err) }()

	err = s.inTx(ctx, func(tx pgx.Tx) error {
		insertUser := `
			INSERT INTO users (id, email, phone, full_name, status, created_by, updated_by)
			VALUES ($1, $2, NULLIF($3, ''), $4, $5, $6, $7)`

		if _, err := tx.Exec(ctx, insertUser, user.ID, user.Email, user.Phone,
			user.FullName, user.Status, user.CreatedBy, user.UpdatedBy); err != nil {
			return err
		}

		insertCredential := `
			INSERT INTO user_credentials (user_id, password)
			VALUES ($1, $2)`

		_, err := tx.Exec(ctx, insertCredential, user.ID, hash)
		return err
	})

	return err
}

func (s *DB) CreateRefreshToken(ctx context.Context, in entity.RefreshToken) (err error) {
	ctx, span := s.startSpan(ctx, "CreateRefreshToken")
	defer func() { s.endSpan(span, err) }()

	query := `
		INSERT INTO refresh_tokens (id, user_id, token, expires_at)
		VALUES ($1, $2, $3, $4)`

	_, err = s.conn.Exec(ctx, query, in.ID, in.UserID, in.Token, in.ExpiresAt)
	return s.mapError(err)
}
