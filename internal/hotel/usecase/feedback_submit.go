package usecase

import (
	"context"
	"log/slog"
	"strings"

	"github.com/shandysiswandi/innkeep/internal/hotel/entity"
	"github.com/shandysiswandi/innkeep/internal/pkg/goerror"
)

type FeedbackSubmitInput struct {
	GuestName string `validate:"required,min=2,max=100"`
	Email     string `validate:"omitempty,email"`
	Rating    int16  `validate:"required,gte=1,lte=5"`
	Comment   string `validate:"required,min=3,max=2000"`
}

// FeedbackSubmit accepts feedback from the public site, no authentication.
// New entries start in pending and stay invisible until moderated.
func (s *Usecase) FeedbackSubmit(ctx context.Context, in FeedbackSubmitInput) error {
	ctx, span := s.startSpan(ctx, "FeedbackSubmit")
	defer span.End()

	in.Email = strings.TrimSpace(strings.ToLower(in.Email))

	if err := s.validator.Validate(in); err != nil {
		return goerror.NewInvalidInput(err)
	}

	if err := s.repoDB.CreateFeedback(ctx, entity.NewFeedback{
		ID:        s.uid.Generate(),
		GuestName: strings.TrimSpace(in.GuestName),
		Email:     in.Email,
		Rating:    in.Rating,
		Comment:   strings.TrimSpace(in.Comment),
	}); err != nil {
		slog.ErrorContext(ctx, "failed to repo create feedback", "error", err)
		return goerror.NewServer(err)
	}

	return nil
}
