package inbound

import (
	"time"

	"github.com/samber/lo"
	"github.com/shandysiswandi/innkeep/internal/audit/entity"
	"github.com/shandysiswandi/innkeep/internal/audit/usecase"
	"github.com/shandysiswandi/innkeep/internal/pkg/router"
)

func RegisterHTTPEndpoint(r *router.Router, uc uc) {
	end := &HTTPEndpoint{uc: uc}

	r.GET("/api/v1/audit/activities", end.ActivityList)
}

type HTTPEndpoint struct {
	uc uc
}

type ActivityResponse struct {
	ID         int64     `json:"id,string"`
	Actor      int64     `json:"actor,string"`
	Action     string    `json:"action"`
	Entity     string    `json:"entity"`
	EntityID   string    `json:"entity_id"`
	OccurredAt time.Time `json:"occurred_at"`
	RecordedAt time.Time `json:"recorded_at"`
}

type ActivitiesResponse struct {
	Page       int32              `json:"page"`
	Size       int32              `json:"size"`
	Total      int64              `json:"total"`
	Activities []ActivityResponse `json:"activities"`
}

// @Summary List audit activities
// @Description Returns a paginated audit trail with an optional entity filter.
// @Tags Audit
// @Security BearerAuth
// @Produce json
// @Param entity query string false "Filter by entity name"
// @Param size query int false "Pagination size"
// @Param page query int false "Pagination page"
// @Success 200 {object} router.successResponse{data=ActivitiesResponse} "Activity list"
// @Failure 401 {object} router.errorResponse "Unauthorized"
// @Failure 403 {object} router.errorResponse "Forbidden"
// @Failure 500 {object} router.errorResponse "Internal server error"
// @Router /api/v1/audit/activities [get]
func (h *HTTPEndpoint) ActivityList(r *router.Request) (any, error) {
	size, err := r.GetQueryInt32("size")
	if err != nil {
		return nil, err
	}

	page, err := r.GetQueryInt32("page")
	if err != nil {
		return nil, err
	}

	resp, err := h.uc.ActivityList(r.Context(), usecase.ActivityListInput{
		Entity: r.GetQuery("entity"),
		Size:   size,
		Page:   page,
	})
	if err != nil {
		return nil, err
	}

	return ActivitiesResponse{
		Total: resp.Total,
		Size:  resp.Size,
		Page:  resp.Page,
		Activities: lo.Map(resp.Activities, func(item entity.Activity, _ int) ActivityResponse {
			return ActivityResponse{
				ID:         item.ID,
				Actor:      item.Actor,
				Action:     item.Action,
				Entity:     item.Entity,
				EntityID:   item.EntityID,
				OccurredAt: item.OccurredAt,
				RecordedAt: item.RecordedAt,
			}
		}),
	}, nil
}
