package db

import (
	"context"

	"github.com/shandysiswandi/innkeep/internal/hotel/entity"
	"github.com/shandysiswandi/innkeep/internal/pkg/goerror"
)

func (s *DB) GetPromotionList(ctx context.Context, size, page int32) (_ []entity.Promotion, _ int64, err error) {
	ctx, span := s.startSpan(ctx, "GetPromotionList")
	defer func() { s.endSpan(span, err) }()

	var count int64
	if err = s.conn.QueryRow(ctx,
		"SELECT COUNT(*) FROM promotions WHERE deleted_at IS NULL").Scan(&count); err != nil {
		return nil, 0, s.mapError(err)
	}

	query := `
		SELECT id, title, COALESCE(description, ''), discount_percent, terms,
			starts_at, ends_at, active, updated_at
		FROM promotions
		WHERE deleted_at IS NULL
		ORDER BY starts_at DESC
		LIMIT $1 OFFSET $2`

	rows, err := s.conn.Query(ctx, query, size, page)
	if err != nil {
		return nil, 0, s.mapError(err)
	}
	defer rows.Close()

	promos := make([]entity.Promotion, 0, size)
	for rows.Next() {
		var p entity.Promotion
		if err = rows.Scan(&p.ID, &p.Title, &p.Description, &p.DiscountPercent,
			&p.Terms, &p.StartsAt, &p.EndsAt, &p.Active, &p.UpdatedAt); err != nil {
			return nil, 0, s.mapError(err)
		}
		promos = append(promos, p)
	}
	if err = rows.Err(); err != nil {
		return nil, 0, s.mapError(err)
	}

	return promos, count, nil
}

func (s *DB) GetPromotionByID(ctx context.Context, id int64) (_ *entity.Promotion, err error) {
	ctx, span := s.startSpan(ctx, "GetPromotionByID")
	defer func() { s.endSpan(span, err) }()

	query := `
		SELECT id, title, COALESCE(description, ''), discount_percent, terms,
			starts_at, ends_at, active, updated_at
		FROM promotions
		WHERE id = $1 AND deleted_at IS NULL`

	var p entity.Promotion
	err = s.conn.QueryRow(ctx, query, id).Scan(&p.ID, &p.Title, &p.Description,
		&p.DiscountPercent, &p.Terms, &p.StartsAt, &p.EndsAt, &p.Active, &p.UpdatedAt)
	if err != nil {
		return nil, s.mapError(err)
	}

	return &p, nil
}

func (s *DB) CreatePromotion(ctx context.Context, promo entity.NewPromotion) (err error) {
	ctx, span := s.startSpan(ctx, "CreatePromotion")
	defer func() { s.endSpan(span, err) }()

	query := `
		INSERT INTO promotions (id, title, description, discount_percent, terms,
			starts_at, ends_at, active, created_by, updated_by)
		VALUES ($1, $2, NULLIF($3, ''), $4, $5, $6, $7, $8, $9, $10)`

	_, err = s.conn.Exec(ctx, query, promo.ID, promo.Title, promo.Description,
		promo.DiscountPercent, promo.Terms, promo.StartsAt, promo.EndsAt,
		promo.Active, promo.CreatedBy, promo.UpdatedBy)
	return s.mapError(err)
}

func (s *DB) UpdatePromotion(ctx context.Context, promo entity.PatchPromotion) (err error) {
	ctx, span := s.startSpan(ctx, "UpdatePromotion")
	defer func() { s.endSpan(span, err) }()

	query := `
		UPDATE promotions
		SET title = $2, description = NULLIF($3, ''), discount_percent = $4, terms = $5,
			starts_at = $6, ends_at = $7, active = $8, updated_by = $9, updated_at = NOW()
		WHERE id = $1 AND deleted_at IS NULL`

	tag, err := s.conn.Exec(ctx, query, promo.ID, promo.Title, promo.Description,
		promo.DiscountPercent, promo.Terms, promo.StartsAt, promo.EndsAt,
		promo.Active, promo.UpdatedBy)
	if err != nil {
		return s.mapError(err)
	}
	if tag.RowsAffected() == 0 {
		return goerror.ErrNotFound
	}

	return nil
}

func (s *DB) MarkPromotionDeleted(ctx context.Context, id, byID int64) (err error) {
	ctx, span := s.startSpan(ctx, "MarkPromotionDeleted")
	defer func() { s.endSpan(span, err) }()

	query := `
		UPDATE promotions
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
