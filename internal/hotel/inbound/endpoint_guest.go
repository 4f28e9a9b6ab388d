package inbound

import (
	"github.com/samber/lo"
	"github.com/shandysiswandi/innkeep/internal/hotel/entity"
	"github.com/shandysiswandi/innkeep/internal/hotel/usecase"
	"github.com/shandysiswandi/innkeep/internal/pkg/router"
)

// HTTPEndpoint exposes HTTP handlers for guests, promotions, feedback, and blogs.
type HTTPEndpoint struct {
	uc uc
}

const headerIdempotencyKey = "Idempotency-Key"

// @Summary List guests
// @Description Returns a paginated list of guests with optional search.
// @Tags Hotel, Guests
// @Security BearerAuth
// @Produce json
// @Param search query string false "Search by name or email"
// @Param size query int false "Pagination size"
// @Param page query int false "Pagination page"
// @Success 200 {object} router.successResponse{data=GuestsResponse} "Guest list"
// @Failure 401 {object} router.errorResponse "Unauthorized"
// @Failure 403 {object} router.errorResponse "Forbidden"
// @Failure 500 {object} router.errorResponse "Internal server error"
// @Router /api/v1/hotel/guests [get]
func (h *HTTPEndpoint) GuestList(r *router.Request) (any, error) {
	size, err := r.GetQueryInt32("size")
	if err != nil {
		return nil, err
	}

	page, err := r.GetQueryInt32("page")
	if err != nil {
		return nil, err
	}

	resp, err := h.uc.GuestList(r.Context(), usecase.GuestListInput{
		Search: r.GetQuery("search"),
		Size:   size,
		Page:   page,
	})
	if err != nil {
		return nil, err
	}

	return GuestsResponse{
		Total: resp.Total,
		Size:  resp.Size,
		Page:  resp.Page,
		Guests: lo.Map(resp.Guests, func(item entity.Guest, _ int) GuestResponse {
			return toGuestResponse(item)
		}),
	}, nil
}

// @Summary Get guest detail
// @Description Returns guest details for a given guest ID.
// @Tags Hotel, Guests
// @Security BearerAuth
// @Produce json
// @Param id path int true "Guest ID"
// @Success 200 {object} router.successResponse{data=GuestDetailResponse} "Guest detail"
// @Failure 401 {object} router.errorResponse "Unauthorized"
// @Failure 403 {object} router.errorResponse "Forbidden"
// @Failure 404 {object} router.errorResponse "Guest not found"
// @Failure 500 {object} router.errorResponse "Internal server error"
// @Router /api/v1/hotel/guests/{id} [get]
func (h *HTTPEndpoint) GuestDetail(r *router.Request) (any, error) {
	id, err := r.GetParamInt64("id")
	if err != nil {
		return nil, err
	}

	resp, err := h.uc.GuestDetail(r.Context(), usecase.GuestDetailInput{ID: id})
	if err != nil {
		return nil, err
	}

	return GuestDetailResponse{Guest: toGuestResponse(resp.Guest)}, nil
}

// @Summary Create guest
// @Description Creates a new guest record. Supports an Idempotency-Key header.
// @Tags Hotel, Guests
// @Security BearerAuth
// @Accept json
// @Param Idempotency-Key header string false "Idempotency key"
// @Param request body GuestRequest true "Guest payload"
// @Success 204 "No Content"
// @Failure 400 {object} router.errorResponse "Invalid request body"
// @Failure 401 {object} router.errorResponse "Unauthorized"
// @Failure 403 {object} router.errorResponse "Forbidden"
// @Failure 409 {object} router.errorResponse "Guest email already registered"
// @Failure 422 {object} router.errorResponse "Validation error"
// @Failure 500 {object} router.errorResponse "Internal server error"
// @Router /api/v1/hotel/guests [post]
func (h *HTTPEndpoint) GuestCreate(r *router.Request) (any, error) {
	var req GuestRequest
	if err := r.DecodeBody(&req); err != nil {
		return nil, err
	}

	return nil, h.uc.GuestCreate(r.Context(), usecase.GuestCreateInput{
		IdempotencyKey: r.Header.Get(headerIdempotencyKey),
		FullName:       req.FullName,
		Email:          req.Email,
		Phone:          req.Phone,
		Address:        req.Address,
		Notes:          req.Notes,
	})
}

// @Summary Update guest
// @Description Updates a guest by ID.
// @Tags Hotel, Guests
// @Security BearerAuth
// @Accept json
// @Param id path int true "Guest ID"
// @Param request body GuestRequest true "Guest payload"
// @Success 204 "No Content"
// @Failure 400 {object} router.errorResponse "Invalid request body"
// @Failure 401 {object} router.errorResponse "Unauthorized"
// @Failure 403 {object} router.errorResponse "Forbidden"
// @Failure 404 {object} router.errorResponse "Guest not found"
// @Failure 422 {object} router.errorResponse "Validation error"
// @Failure 500 {object} router.errorResponse "Internal server error"
// @Router /api/v1/hotel/guests/{id} [put]
func (h *HTTPEndpoint) GuestUpdate(r *router.Request) (any, error) {
	id, err := r.GetParamInt64("id")
	if err != nil {
		return nil, err
	}

	var req GuestRequest
	if err := r.DecodeBody(&req); err != nil {
		return nil, err
	}

	return nil, h.uc.GuestUpdate(r.Context(), usecase.GuestUpdateInput{
		ID:       id,
		FullName: req.FullName,
		Email:    req.Email,
		Phone:    req.Phone,
		Address:  req.Address,
		Notes:    req.Notes,
	})
}

// @Summary Delete guest
// @Description Deletes a guest by ID.
// @Tags Hotel, Guests
// @Security BearerAuth
// @Param id path int true "Guest ID"
// @Success 204 "No Content"
// @Failure 401 {object} router.errorResponse "Unauthorized"
// @Failure 403 {object} router.errorResponse "Forbidden"
// @Failure 404 {object} router.errorResponse "Guest not found"
// @Failure 500 {object} router.errorResponse "Internal server error"
// @Router /api/v1/hotel/guests/{id} [delete]
func (h *HTTPEndpoint) GuestDelete(r *router.Request) (any, error) {
	id, err := r.GetParamInt64("id")
	if err != nil {
		return nil, err
	}

	return nil, h.uc.GuestDelete(r.Context(), usecase.GuestDeleteInput{ID: id})
}

func toGuestResponse(item entity.Guest) GuestResponse {
	return GuestResponse{
		ID:        item.ID,
		FullName:  item.FullName,
		Email:     item.Email,
		Phone:     item.Phone,
		Address:   item.Address,
		Notes:     item.Notes,
		UpdatedAt: item.UpdatedAt,
	}
}
