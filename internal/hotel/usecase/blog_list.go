package usecase

import (
	"context"
	"log/slog"
	"strings"

	"github.com/shandysiswandi/innkeep/internal/hotel/entity"
	"github.com/shandysiswandi/innkeep/internal/pkg/goerror"
)

type BlogListInput struct {
	Search string
	Size   int32
	Page   int32
}

type BlogListOutput struct {
	Blogs []entity.Blog
	Total int64
	Size  int32
	Page  int32
}

// BlogList is public, it backs the marketing site.
func (s *Usecase) BlogList(ctx context.Context, in BlogListInput) (*BlogListOutput, error) {
	ctx, span := s.startSpan(ctx, "BlogList")
	defer span.End()

	if in.Size <= 0 {
		in.Size = 10
	}
	if in.Size > 100 {
		in.Size = 100
	}
	if in.Page <= 0 {
		in.Page = 1
	}

	search := strings.TrimSpace(in.Search)
	blogs, total, err := s.repoDB.GetBlogList(ctx, entity.BlogListFilterData{
		IsFilterBySearch: search != "",
		Search:           search,
		Size:             in.Size,
		Page:             (in.Page - 1) * in.Size,
	})
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo get blog list", "error", err)
		return nil, goerror.NewServer(err)
	}

	return &BlogListOutput{
		Blogs: blogs,
		Total: total,
		Size:  in.Size,
		Page:  in.Page,
	}, nil
}
