package usecase

import (
	"context"
	"errors"
	"log/slog"
	"strconv"

	"github.com/shandysiswandi/innkeep/internal/hotel/entity"
	"github.com/shandysiswandi/innkeep/internal/pkg/goerror"
	"github.com/shandysiswandi/innkeep/internal/shared/constant"
)

type FeedbackModerateInput struct {
	ID     int64 `validate:"required,gt=0"`
	Status int16 `validate:"required"`
}

// FeedbackModerate publishes or hides a pending feedback entry.
func (s *Usecase) FeedbackModerate(ctx context.Context, in FeedbackModerateInput) error {
	ctx, span := s.startSpan(ctx, "FeedbackModerate")
	defer span.End()

	clm, err := s.authenticatedAndAuthorized(ctx, constant.PermHotelFeedback, constant.PermActUpdate)
	if err != nil {
		return err
	}

	if err := s.validator.Validate(in); err != nil {
		return goerror.NewInvalidInput(err)
	}

	status := entity.FeedbackStatus(in.Status)
	if status.IsUnknown() {
		return goerror.NewInvalidInput(nil, "status", "status is not recognized")
	}

	if err := s.repoDB.UpdateFeedbackStatus(ctx, in.ID, status, clm.UserID); err != nil {
		if errors.Is(err, goerror.ErrNotFound) {
			return goerror.NewBusiness("feedback not found", goerror.CodeNotFound)
		}
		slog.ErrorContext(ctx, "failed to repo update feedback status", "id", in.ID, "error", err)
		return goerror.NewServer(err)
	}

	s.recordActivity(ctx, clm.UserID, "feedback_moderated", "feedback", strconv.FormatInt(in.ID, 10))

	return nil
}
