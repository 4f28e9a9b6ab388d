package inbound

import (
	"github.com/samber/lo"
	"github.com/shandysiswandi/innkeep/internal/hotel/entity"
	"github.com/shandysiswandi/innkeep/internal/hotel/usecase"
	"github.com/shandysiswandi/innkeep/internal/pkg/router"
)

// @Summary Submit feedback
// @Description Accepts guest feedback from the public site. New entries await moderation.
// @Tags Hotel, Feedback
// @Accept json
// @Produce json
// @Param request body FeedbackSubmitRequest true "Feedback payload"
// @Success 200 {object} router.successResponse{data=FeedbackSubmitResponse} "Feedback accepted"
// @Failure 400 {object} router.errorResponse "Invalid request body"
// @Failure 422 {object} router.errorResponse "Validation error"
// @Failure 500 {object} router.errorResponse "Internal server error"
// @Router /api/v1/hotel/feedback [post]
func (h *HTTPEndpoint) FeedbackSubmit(r *router.Request) (any, error) {
	var req FeedbackSubmitRequest
	if err := r.DecodeBody(&req); err != nil {
		return nil, err
	}

	if err := h.uc.FeedbackSubmit(r.Context(), usecase.FeedbackSubmitInput{
		GuestName: req.GuestName,
		Email:     req.Email,
		Rating:    req.Rating,
		Comment:   req.Comment,
	}); err != nil {
		return nil, err
	}

	return &FeedbackSubmitResponse{}, nil
}

// @Summary List feedback
// @Description Returns a paginated list of feedback with optional status filters.
// @Tags Hotel, Feedback
// @Security BearerAuth
// @Produce json
// @Param status query []int false "Filter by statuses (1=pending|2=published|3=hidden)"
// @Param size query int false "Pagination size"
// @Param page query int false "Pagination page"
// @Success 200 {object} router.successResponse{data=FeedbacksResponse} "Feedback list"
// @Failure 400 {object} router.errorResponse "Invalid query parameters"
// @Failure 401 {object} router.errorResponse "Unauthorized"
// @Failure 403 {object} router.errorResponse "Forbidden"
// @Failure 500 {object} router.errorResponse "Internal server error"
// @Router /api/v1/hotel/feedback [get]
func (h *HTTPEndpoint) FeedbackList(r *router.Request) (any, error) {
	size, err := r.GetQueryInt32("size")
	if err != nil {
		return nil, err
	}

	page, err := r.GetQueryInt32("page")
	if err != nil {
		return nil, err
	}

	resp, err := h.uc.FeedbackList(r.Context(), usecase.FeedbackListInput{
		Statuses: r.GetQueries("status"),
		Size:     size,
		Page:     page,
	})
	if err != nil {
		return nil, err
	}

	return FeedbacksResponse{
		Total: resp.Total,
		Size:  resp.Size,
		Page:  resp.Page,
		Feedbacks: lo.Map(resp.Feedbacks, func(item entity.Feedback, _ int) FeedbackResponse {
			return FeedbackResponse{
				ID:        item.ID,
				GuestName: item.GuestName,
				Email:     item.Email,
				Rating:    item.Rating,
				Comment:   item.Comment,
				Status:    item.Status.String(),
				CreatedAt: item.CreatedAt,
			}
		}),
	}, nil
}

// @Summary Moderate feedback
// @Description Publishes or hides a feedback entry.
// @Tags Hotel, Feedback
// @Security BearerAuth
// @Accept json
// @Param id path int true "Feedback ID"
// @Param request body FeedbackModerateRequest true "Moderation payload"
// @Success 204 "No Content"
// @Failure 400 {object} router.errorResponse "Invalid request body"
// @Failure 401 {object} router.errorResponse "Unauthorized"
// @Failure 403 {object} router.errorResponse "Forbidden"
// @Failure 404 {object} router.errorResponse "Feedback not found"
// @Failure 422 {object} router.errorResponse "Validation error"
// @Failure 500 {object} router.errorResponse "Internal server error"
// @Router /api/v1/hotel/feedback/{id}/status [put]
func (h *HTTPEndpoint) FeedbackModerate(r *router.Request) (any, error) {
	id, err := r.GetParamInt64("id")
	if err != nil {
		return nil, err
	}

	var req FeedbackModerateRequest
	if err := r.DecodeBody(&req); err != nil {
		return nil, err
	}

	return nil, h.uc.FeedbackModerate(r.Context(), usecase.FeedbackModerateInput{
		ID:     id,
		Status: req.Status,
	})
}
