package inbound

import (
	"github.com/samber/lo"
	"github.com/shandysiswandi/innkeep/internal/hotel/entity"
	"github.com/shandysiswandi/innkeep/internal/hotel/usecase"
	"github.com/shandysiswandi/innkeep/internal/pkg/router"
)

// @Summary List promotions
// @Description Returns a paginated list of promotions.
// @Tags Hotel, Promotions
// @Security BearerAuth
// @Produce json
// @Param size query int false "Pagination size"
// @Param page query int false "Pagination page"
// @Success 200 {object} router.successResponse{data=PromotionsResponse} "Promotion list"
// @Failure 401 {object} router.errorResponse "Unauthorized"
// @Failure 403 {object} router.errorResponse "Forbidden"
// @Failure 500 {object} router.errorResponse "Internal server error"
// @Router /api/v1/hotel/promotions [get]
func (h *HTTPEndpoint) PromotionList(r *router.Request) (any, error) {
	size, err := r.GetQueryInt32("size")
	if err != nil {
		return nil, err
	}

	page, err := r.GetQueryInt32("page")
	if err != nil {
		return nil, err
	}

	resp, err := h.uc.PromotionList(r.Context(), usecase.PromotionListInput{
		Size: size,
		Page: page,
	})
	if err != nil {
		return nil, err
	}

	return PromotionsResponse{
		Total: resp.Total,
		Size:  resp.Size,
		Page:  resp.Page,
		Promotions: lo.Map(resp.Promotions, func(item entity.Promotion, _ int) PromotionResponse {
			return toPromotionResponse(item)
		}),
	}, nil
}

// @Summary Get promotion detail
// @Description Returns promotion details, including JSON terms, for a given ID.
// @Tags Hotel, Promotions
// @Security BearerAuth
// @Produce json
// @Param id path int true "Promotion ID"
// @Success 200 {object} router.successResponse{data=PromotionDetailResponse} "Promotion detail"
// @Failure 401 {object} router.errorResponse "Unauthorized"
// @Failure 403 {object} router.errorResponse "Forbidden"
// @Failure 404 {object} router.errorResponse "Promotion not found"
// @Failure 500 {object} router.errorResponse "Internal server error"
// @Router /api/v1/hotel/promotions/{id} [get]
func (h *HTTPEndpoint) PromotionDetail(r *router.Request) (any, error) {
	id, err := r.GetParamInt64("id")
	if err != nil {
		return nil, err
	}

	resp, err := h.uc.PromotionDetail(r.Context(), usecase.PromotionDetailInput{ID: id})
	if err != nil {
		return nil, err
	}

	return PromotionDetailResponse{Promotion: toPromotionResponse(resp.Promotion)}, nil
}

// @Summary Create promotion
// @Description Creates a new promotion. Supports an Idempotency-Key header.
// @Tags Hotel, Promotions
// @Security BearerAuth
// @Accept json
// @Param Idempotency-Key header string false "Idempotency key"
// @Param request body PromotionRequest true "Promotion payload"
// @Success 204 "No Content"
// @Failure 400 {object} router.errorResponse "Invalid request body"
// @Failure 401 {object} router.errorResponse "Unauthorized"
// @Failure 403 {object} router.errorResponse "Forbidden"
// @Failure 422 {object} router.errorResponse "Validation error"
// @Failure 500 {object} router.errorResponse "Internal server error"
// @Router /api/v1/hotel/promotions [post]
func (h *HTTPEndpoint) PromotionCreate(r *router.Request) (any, error) {
	var req PromotionRequest
	if err := r.DecodeBody(&req); err != nil {
		return nil, err
	}

	return nil, h.uc.PromotionCreate(r.Context(), usecase.PromotionCreateInput{
		IdempotencyKey:  r.Header.Get(headerIdempotencyKey),
		Title:           req.Title,
		Description:     req.Description,
		DiscountPercent: req.DiscountPercent,
		Terms:           req.Terms,
		StartsAt:        req.StartsAt,
		EndsAt:          req.EndsAt,
		Active:          req.Active,
	})
}

// @Summary Update promotion
// @Description Updates a promotion by ID.
// @Tags Hotel, Promotions
// @Security BearerAuth
// @Accept json
// @Param id path int true "Promotion ID"
// @Param request body PromotionRequest true "Promotion payload"
// @Success 204 "No Content"
// @Failure 400 {object} router.errorResponse "Invalid request body"
// @Failure 401 {object} router.errorResponse "Unauthorized"
// @Failure 403 {object} router.errorResponse "Forbidden"
// @Failure 404 {object} router.errorResponse "Promotion not found"
// @Failure 422 {object} router.errorResponse "Validation error"
// @Failure 500 {object} router.errorResponse "Internal server error"
// @Router /api/v1/hotel/promotions/{id} [put]
func (h *HTTPEndpoint) PromotionUpdate(r *router.Request) (any, error) {
	id, err := r.GetParamInt64("id")
	if err != nil {
		return nil, err
	}

	var req PromotionRequest
	if err := r.DecodeBody(&req); err != nil {
		return nil, err
	}

	return nil, h.uc.PromotionUpdate(r.Context(), usecase.PromotionUpdateInput{
		ID:              id,
		Title:           req.Title,
		Description:     req.Description,
		DiscountPercent: req.DiscountPercent,
		Terms:           req.Terms,
		StartsAt:        req.StartsAt,
		EndsAt:          req.EndsAt,
		Active:          req.Active,
	})
}

// @Summary Delete promotion
// @Description Deletes a promotion by ID.
// @Tags Hotel, Promotions
// @Security BearerAuth
// @Param id path int true "Promotion ID"
// @Success 204 "No Content"
// @Failure 401 {object} router.errorResponse "Unauthorized"
// @Failure 403 {object} router.errorResponse "Forbidden"
// @Failure 404 {object} router.errorResponse "Promotion not found"
// @Failure 500 {object} router.errorResponse "Internal server error"
// @Router /api/v1/hotel/promotions/{id} [delete]
func (h *HTTPEndpoint) PromotionDelete(r *router.Request) (any, error) {
	id, err := r.GetParamInt64("id")
	if err != nil {
		return nil, err
	}

	return nil, h.uc.PromotionDelete(r.Context(), usecase.PromotionDeleteInput{ID: id})
}

func toPromotionResponse(item entity.Promotion) PromotionResponse {
	return PromotionResponse{
		ID:              item.ID,
		Title:           item.Title,
		Description:     item.Description,
		DiscountPercent: item.DiscountPercent,
		Terms:           item.Terms,
		StartsAt:        item.StartsAt,
		EndsAt:          item.EndsAt,
		Active:          item.Active,
		UpdatedAt:       item.UpdatedAt,
	}
}
