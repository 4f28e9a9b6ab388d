package db

import (
	"context"
	"fmt"

	"github.com/shandysiswandi/innkeep/internal/hotel/entity"
	"github.com/shandysiswandi/innkeep/internal/pkg/goerror"
)

func (s *DB) GetGuestList(ctx context.Context, filter entity.GuestListFilterData) (_ []entity.Guest, _ int64, err error) {
	ctx, span := s.startSpan(ctx, "GetGuestList")
	defer func() { s.endSpan(span, err) }()

	where := "deleted_at IS NULL"
	args := []any{}
	if filter.IsFilterBySearch {
		args = append(args, "%"+filter.Search+"%")
		where += " AND (full_name ILIKE $1 OR email ILIKE $1)"
	}

	var count int64
	if err = s.conn.QueryRow(ctx, "SELECT COUNT(*) FROM guests WHERE "+where, args...).Scan(&count); err != nil {
		return nil, 0, s.mapError(err)
	}

	args = append(args, filter.Size, filter.Page)

	query := fmt.Sprintf(`
		SELECT id, full_name, email, COALESCE(phone, ''), COALESCE(address, ''),
			COALESCE(notes, ''), updated_at
		FROM guests
		WHERE %s
		ORDER BY created_at DESC
		LIMIT $%d OFFSET $%d`, where, len(args)-1, len(args))

	rows, err := s.conn.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, s.mapError(err)
	}
	defer rows.Close()

	guests := make([]entity.Guest, 0, filter.Size)
	for rows.Next() {
		var g entity.Guest
		if err = rows.Scan(&g.ID, &g.FullName, &g.Email, &g.Phone, &g.Address,
			&g.Notes, &g.UpdatedAt); err != nil {
			return nil, 0, s.mapError(err)
		}
		guests = append(guests, g)
	}
	if err = rows.Err(); err != nil {
		return nil, 0, s.mapError(err)
	}

	return guests, count, nil
}

func (s *DB) GetGuestByID(ctx context.Context, id int64) (_ *entity.Guest, err error) {
	ctx, span := s.startSpan(ctx, "GetGuestByID")
	defer func() { s.endSpan(span, err) }()

	query := `
		SELECT id, full_name, email, COALESCE(phone, ''), COALESCE(address, ''),
			COALESCE(notes, ''), updated_at
		FROM guests
		WHERE id = $1 AND deleted_at IS NULL`

	var g entity.Guest
	err = s.conn.QueryRow(ctx, query, id).Scan(&g.ID, &g.FullName, &g.Email,
		&g.Phone, &g.Address, &g.Notes, &g.UpdatedAt)
	if err != nil {
		return nil, s.mapError(err)
	}

	return &g, nil
}

func (s *DB) CreateGuest(ctx context.Context, guest entity.NewGuest) (err error) {
	ctx, span := s.startSpan(ctx, "CreateGuest")
	defer func() { s.endSpan(span, err) }()

	query := `
		INSERT INTO guests (id, full_name, email, phone, address, notes, created_by, updated_by)
		VALUES ($1, $2, $3, NULLIF($4, ''), NULLIF($5, ''), NULLIF($6, ''), $7, $8)`

	_, err = s.conn.Exec(ctx, query, guest.ID, guest.FullName, guest.Email,
		guest.Phone, guest.Address, guest.Notes, guest.CreatedBy, guest.UpdatedBy)
	return s.mapError(err)
}

func (s *DB) UpdateGuest(ctx context.Context, guest entity.PatchGuest) (err error) {
	ctx, span := s.startSpan(ctx, "UpdateGuest")
	defer func() { s.endSpan(span, err) }()

	query := `
		UPDATE guests
		SET full_name = $2, email = $3, phone = NULLIF($4, ''), address = NULLIF($5, ''),
			notes = NULLIF($6, ''), updated_by = $7, updated_at = NOW()
		WHERE id = $1 AND deleted_at IS NULL`

	tag, err := s.conn.Exec(ctx, query, guest.ID, guest.FullName, guest.Email,
		guest.Phone, guest.Address, guest.Notes, guest.UpdatedBy)
	if err != nil {
		return s.mapError(err)
	}
	if tag.RowsAffected() == 0 {
		return goerror.ErrNotFound
	}

	return nil
}

func (s *DB) MarkGuestDeleted(ctx context.Context, id, byID int64) (err error) {
	ctx, span := s.startSpan(ctx, "MarkGuestDeleted")
	defer func() { s.endSpan(span, err) }()

	query := `
		UPDATE guests
		SET deleted_at = NOW(), updated_by = $2, updated_at = NOW()
		WHERE id = $1 AND deleted_at IS NULL`

	tag, err := s.conn.Exec(ctx, query, id, byID)
	if err != nil {
		return s.mapError(err)
	}
	if tag.RowsAffected() == 0 {
		return goerror.ErrNotFound
	}

	return nil
}
