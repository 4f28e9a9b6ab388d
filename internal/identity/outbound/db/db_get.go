package db

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/shandysiswandi/innkeep/internal/identity/entity"
)

func (s *DB) GetUserLoginInfo(ctx context.Context, email string) (_ *entity.UserLoginInfo, err error) {
	ctx, span := s.startSpan(ctx, "GetUserLoginInfo")
	defer func() { s.endSpan(span, err) }()

	query := `
		SELECT u.id, u.email, u.status, c.password
		FROM users u
		JOIN user_credentials c ON c.user_id = u.id
		WHERE u.email = $1 AND u.deleted_at IS NULL`

	var info entity.UserLoginInfo
	err = s.conn.QueryRow(ctx, query, email).
		Scan(&info.ID, &info.Email, &info.Status, &info.Password)
	if err != nil {
		return nil, s.mapError(err)
	}

	return &info, nil
}

// GetUserByIdentifier looks a user up by email or phone number.
func (s *DB) GetUserByIdentifier(ctx context.Context, identifier string) (_ *entity.User, err error) {
	ctx, span := s.startSpan(ctx, "GetUserByIdentifier")
	defer func() { s.endSpan(span, err) }()

	query := `
		SELECT id, email, COALESCE(phone, ''), full_name, status, updated_at
		FROM users
		WHERE (email = $1 OR phone = $1) AND deleted_at IS NULL`

	return s.scanUser(s.conn.QueryRow(ctx, query, identifier))
}

func (s *DB) GetUserByEmail(ctx context.Context, email string) (_ *entity.User, err error) {
	ctx, span := s.startSpan(ctx, "GetUserByEmail")
	defer func() { s.endSpan(span, err) }()

	query := `
		SELECT id, email, COALESCE(phone, ''), full_name, status, updated_at
		FROM users
		WHERE email = $1 AND deleted_at IS NULL`

	return s.scanUser(s.conn.QueryRow(ctx, query, email))
}

func (s *DB) GetUserByID(ctx context.Context, id int64) (_ *entity.User, err error) {
	ctx, span := s.startSpan(ctx, "GetUserByID")
	defer func() { s.endSpan(span, err) }()

	query := `
		SELECT id, email, COALESCE(phone, ''), full_name, status, updated_at
		FROM users
		WHERE id = $1 AND deleted_at IS NULL`

	return s.scanUser(s.conn.QueryRow(ctx, query, id))
}

func (s *DB) scanUser(row pgx.Row) (*entity.User, error) {
	var user entity.User
	if err := row.Scan(&user.ID, &user.Email, &user.Phone, &user.FullName,
		&user.Status, &user.UpdatedAt); err != nil {
		return nil, s.mapError(err)
	}

	return &user, nil
}

var userSortColumns = map[string]string{
	"email":      "email",
	"full_name":  "full_name",
	"status":     "status",
	"created_at": "created_at",
	"updated_at": "updated_at",
}

func (s *DB) GetUserList(ctx context.Context, filter entity.UserListFilterData) (_ []entity.User, _ int64, err error) {
	ctx, span := s.startSpan(ctx, "GetUserList")
	defer func() { s.endSpan(span, err) }()

	conds := []string{"deleted_at IS NULL"}
	args := []any{}

	if filter.IsFilterBySearch {
		args = append(args, "%"+filter.Search+"%")
		conds = append(conds, fmt.Sprintf("(email ILIKE $%d OR full_name ILIKE $%d)", len(args), len(args)))
	}
	if filter.IsFilterByStatus {
		args = append(args, filter.Statuses)
		conds = append(conds, fmt.Sprintf("status = ANY($%d)", len(args)))
	}
	if !filter.DateFrom.IsZero() {
		args = append(args, filter.DateFrom)
		conds = append(conds, fmt.Sprintf("created_at >= $%d", len(args)))
	}
	if !filter.DateTo.IsZero() {
		args = append(args, filter.DateTo)
		conds = append(conds, fmt.Sprintf("created_at <= $%d", len(args)))
	}

	where := strings.Join(conds, " AND ")

	var count int64
	countQuery := "SELECT COUNT(*) FROM users WHERE " + where
	if err = s.conn.QueryRow(ctx, countQuery, args...).Scan(&count); err != nil {
		return nil, 0, s.mapError(err)
	}

	orderBy, ok := userSortColumns[filter.OrderBy]
	if !ok {
		orderBy = "created_at"
	}
	direction := "DESC"
	if strings.EqualFold(filter.OrderDirection, "asc") {
		direction = "ASC"
	}

	args = append(args, filter.Size, filter.Page)
	listQuery := fmt.Sprintf(`
		SELECT id, email, COALESCE(phone, ''), full_name, status, updated_at
		FROM users
		WHERE %s
		ORDER BY %s %s
		LIMIT $%d OFFSET $%d`, where, orderBy, direction, len(args)-1, len(args))

	rows, err := s.conn.Query(ctx, listQuery, args...)
	if err != nil {
		return nil, 0, s.mapError(err)
	}
	defer rows.Close()

	users := make([]entity.User, 0, filter.Size)
	for rows.Next() {
		var user entity.User
		if err = rows.Scan(&user.ID, &user.Email, &user.Phone, &user.FullName,
			&user.Status, &user.UpdatedAt); err != nil {
			return nil, 0, s.mapError(err)
		}
		users = append(users, user)
	}
	if err = rows.Err(); err != nil {
		return nil, 0, s.mapError(err)
	}

	return users, count, nil
}

func (s *DB) GetUserRefreshToken(ctx context.Context, token string) (_ *entity.UserRefreshToken, err error) {
	ctx, span := s.startSpan(ctx, "GetUserRefreshToken")
	defer func() { s.endSpan(span, err) }()

	query := `
		SELECT u.id, u.email, u.status, r.id, r.token, r.revoked, r.expires_at
		FROM refresh_tokens r
		JOIN users u ON u.id = r.user_id
		WHERE r.token = $1 AND u.deleted_at IS NULL`

	var urt entity.UserRefreshToken
	err = s.conn.QueryRow(ctx, query, token).Scan(
		&urt.UserID, &urt.UserEmail, &urt.UserStatus,
		&urt.RefreshID, &urt.RefreshToken, &urt.RefreshRevoked, &urt.RefreshExpiresAt,
	)
	if err != nil {
		return nil, s.mapError(err)
	}

	return &urt, nil
}
