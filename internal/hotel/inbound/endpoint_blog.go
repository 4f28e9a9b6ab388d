package inbound

import (
	"bytes"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/samber/lo"
	"github.com/shandysiswandi/innkeep/internal/hotel/entity"
	"github.com/shandysiswandi/innkeep/internal/hotel/usecase"
	"github.com/shandysiswandi/innkeep/internal/pkg/goerror"
	"github.com/shandysiswandi/innkeep/internal/pkg/router"
)

// @Summary List blogs
// @Description Returns a paginated list of published blog posts.
// @Tags Hotel, Blogs
// @Produce json
// @Param search query string false "Search by title"
// @Param size query int false "Pagination size"
// @Param page query int false "Pagination page"
// @Success 200 {object} router.successResponse{data=BlogsResponse} "Blog list"
// @Failure 500 {object} router.errorResponse "Internal server error"
// @Router /api/v1/hotel/blogs [get]
func (h *HTTPEndpoint) BlogList(r *router.Request) (any, error) {
	size, err := r.GetQueryInt32("size")
	if err != nil {
		return nil, err
	}

	page, err := r.GetQueryInt32("page")
	if err != nil {
		return nil, err
	}

	resp, err := h.uc.BlogList(r.Context(), usecase.BlogListInput{
		Search: r.GetQuery("search"),
		Size:   size,
		Page:   page,
	})
	if err != nil {
		return nil, err
	}

	return BlogsResponse{
		Total: resp.Total,
		Size:  resp.Size,
		Page:  resp.Page,
		Blogs: lo.Map(resp.Blogs, func(item entity.Blog, _ int) BlogResponse {
			// body omitted from listings
			return BlogResponse{
				ID:        item.ID,
				Title:     item.Title,
				Slug:      item.Slug,
				CoverURL:  item.CoverURL,
				AuthorID:  item.AuthorID,
				CreatedAt: item.CreatedAt,
				UpdatedAt: item.UpdatedAt,
			}
		}),
	}, nil
}

// @Summary Get blog detail
// @Description Returns a full blog post for a given ID.
// @Tags Hotel, Blogs
// @Produce json
// @Param id path int true "Blog ID"
// @Success 200 {object} router.successResponse{data=BlogDetailResponse} "Blog detail"
// @Failure 404 {object} router.errorResponse "Blog not found"
// @Failure 500 {object} router.errorResponse "Internal server error"
// @Router /api/v1/hotel/blogs/{id} [get]
func (h *HTTPEndpoint) BlogDetail(r *router.Request) (any, error) {
	id, err := r.GetParamInt64("id")
	if err != nil {
		return nil, err
	}

	resp, err := h.uc.BlogDetail(r.Context(), usecase.BlogDetailInput{ID: id})
	if err != nil {
		return nil, err
	}

	return BlogDetailResponse{Blog: BlogResponse{
		ID:        resp.Blog.ID,
		Title:     resp.Blog.Title,
		Slug:      resp.Blog.Slug,
		Body:      resp.Blog.Body,
		CoverURL:  resp.Blog.CoverURL,
		AuthorID:  resp.Blog.AuthorID,
		CreatedAt: resp.Blog.CreatedAt,
		UpdatedAt: resp.Blog.UpdatedAt,
	}}, nil
}

// @Summary Create blog
// @Description Creates a new blog post. Supports an Idempotency-Key header.
// @Tags Hotel, Blogs
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param Idempotency-Key header string false "Idempotency key"
// @Param request body BlogCreateRequest true "Blog payload"
// @Success 200 {object} router.successResponse{data=BlogCreateResponse} "Created blog"
// @Failure 400 {object} router.errorResponse "Invalid request body"
// @Failure 401 {object} router.errorResponse "Unauthorized"
// @Failure 403 {object} router.errorResponse "Forbidden"
// @Failure 409 {object} router.errorResponse "Blog slug already exists"
// @Failure 422 {object} router.errorResponse "Validation error"
// @Failure 500 {object} router.errorResponse "Internal server error"
// @Router /api/v1/hotel/blogs [post]
func (h *HTTPEndpoint) BlogCreate(r *router.Request) (any, error) {
	var req BlogCreateRequest
	if err := r.DecodeBody(&req); err != nil {
		return nil, err
	}

	resp, err := h.uc.BlogCreate(r.Context(), usecase.BlogCreateInput{
		IdempotencyKey: r.Header.Get(headerIdempotencyKey),
		Title:          req.Title,
		Body:           req.Body,
	})
	if err != nil {
		return nil, err
	}

	return BlogCreateResponse{ID: resp.ID, Slug: resp.Slug}, nil
}

// @Summary Upload blog cover
// @Description Uploads a cover image for a blog post via multipart form field "cover".
// @Tags Hotel, Blogs
// @Security BearerAuth
// @Accept mpfd
// @Param id path int true "Blog ID"
// @Param cover formData file true "Cover image (jpeg, png, webp)"
// @Success 204 "No Content"
// @Failure 400 {object} router.errorResponse "Invalid multipart body"
// @Failure 401 {object} router.errorResponse "Unauthorized"
// @Failure 403 {object} router.errorResponse "Forbidden"
// @Failure 404 {object} router.errorResponse "Blog not found"
// @Failure 422 {object} router.errorResponse "Unsupported content type or size"
// @Failure 500 {object} router.errorResponse "Internal server error"
// @Router /api/v1/hotel/blogs/{id}/cover [put]
func (h *HTTPEndpoint) BlogUpdateCover(r *router.Request) (any, error) {
	ctx := r.Context()

	id, err := r.GetParamInt64("id")
	if err != nil {
		return nil, err
	}

	file, err := r.StreamSingleFile("cover")
	if err != nil {
		return nil, err
	}
	defer func() {
		if err := file.Close(); err != nil {
			slog.ErrorContext(ctx, "failed to close file", "error", err)
		}
	}()

	head := make([]byte, 512)
	n, err := file.Read(head)
	if err != nil && !errors.Is(err, io.EOF) {
		return nil, goerror.NewInvalidFormat()
	}

	return nil, h.uc.BlogUpdateCover(ctx, usecase.BlogUpdateCoverInput{
		ID:          id,
		File:        io.MultiReader(bytes.NewReader(head[:n]), file),
		ContentType: http.DetectContentType(head[:n]),
	})
}

// @Summary Delete blog
// @Description Deletes a blog post by ID.
// @Tags Hotel, Blogs
// @Security BearerAuth
// @Param id path int true "Blog ID"
// @Success 204 "No Content"
// @Failure 401 {object} router.errorResponse "Unauthorized"
// @Failure 403 {object} router.errorResponse "Forbidden"
// @Failure 404 {object} router.errorResponse "Blog not found"
// @Failure 500 {object} router.errorResponse "Internal server error"
// @Router /api/v1/hotel/blogs/{id} [delete]
func (h *HTTPEndpoint) BlogDelete(r *router.Request) (any, error) {
	id, err := r.GetParamInt64("id")
	if err != nil {
		return nil, err
	}

	return nil, h.uc.BlogDelete(r.Context(), usecase.BlogDeleteInput{ID: id})
}
