package usecase

import (
	"context"
	"log/slog"
	"strings"

	"github.com/shandysiswandi/innkeep/internal/audit/entity"
	"github.com/shandysiswandi/innkeep/internal/pkg/goerror"
	"github.com/shandysiswandi/innkeep/internal/shared/constant"
)

type ActivityListInput struct {
	Entity string
	Size   int32
	Page   int32
}

type ActivityListOutput struct {
	Activities []entity.Activity
	Total      int64
	Size       int32
	Page       int32
}

func (s *Usecase) ActivityList(ctx context.Context, in ActivityListInput) (*ActivityListOutput, error) {
	ctx, span := s.startSpan(ctx, "ActivityList")
	defer span.End()

	if _, err := s.authenticatedAndAuthorized(ctx, constant.PermAuditTrail, constant.PermActRead); err != nil {
		return nil, err
	}

	if in.Size <= 0 {
		in.Size = 10
	}
	if in.Size > 100 {
		in.Size = 100
	}
	if in.Page <= 0 {
		in.Page = 1
	}

	ent := strings.TrimSpace(in.Entity)
	activities, total, err := s.repoDB.GetActivityList(ctx, entity.ActivityListFilterData{
		IsFilterByEntity: ent != "",
		Entity:           ent,
		Size:             in.Size,
		Page:             (in.Page - 1) * in.Size,
	})
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo get activity list", "error", err)
		return nil, goerror.NewServer(err)
	}

	return &ActivityListOutput{
		Activities: activities,
		Total:      total,
		Size:       in.Size,
		Page:       in.Page,
	}, nil
}
