package usecase

import (
	"context"
	"log/slog"
	"strconv"

	"github.com/shandysiswandi/innkeep/internal/hotel/entity"
	"github.com/shandysiswandi/innkeep/internal/pkg/goerror"
	"github.com/shandysiswandi/innkeep/internal/shared/constant"
)

type FeedbackListInput struct {
	Statuses []string
	Size     int32
	Page     int32
}

type FeedbackListOutput struct {
	Feedbacks []entity.Feedback
	Total     int64
	Size      int32
	Page      int32
}

func (s *Usecase) FeedbackList(ctx context.Context, in FeedbackListInput) (*FeedbackListOutput, error) {
	ctx, span := s.startSpan(ctx, "FeedbackList")
	defer span.End()

	if _, err := s.authenticatedAndAuthorized(ctx, constant.PermHotelFeedback, constant.PermActRead); err != nil {
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

	statuses := make([]int16, 0, len(in.Statuses))
	for _, raw := range in.Statuses {
		num, err := strconv.ParseInt(raw, 10, 16)
		if err != nil {
			return nil, goerror.NewInvalidFormat("status must be a number")
		}
		if entity.FeedbackStatus(num).IsUnknown() {
			return nil, goerror.NewInvalidFormat("status is not recognized")
		}
		statuses = append(statuses, int16(num))
	}

	feedbacks, total, err := s.repoDB.GetFeedbackList(ctx, entity.FeedbackListFilterData{
		IsFilterByStatus: len(statuses) > 0,
		Statuses:         statuses,
		Size:             in.Size,
		Page:             (in.Page - 1) * in.Size,
	})
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo get feedback list", "error", err)
		return nil, goerror.NewServer(err)
	}

	return &FeedbackListOutput{
		Feedbacks: feedbacks,
		Total:     total,
		Size:      in.Size,
		Page:      in.Page,
	}, nil
}
