package usecase

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/shandysiswandi/innkeep/internal/pkg/goerror"
	"github.com/shandysiswandi/innkeep/internal/pkg/storage"
	"github.com/shandysiswandi/innkeep/internal/shared/constant"
)

//nolint:gochecknoglobals // global for fast reuse
var coverContentTypeExt = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/webp": ".webp",
}

var errCoverTooLarge = errors.New("cover exceeds max size")

type BlogUpdateCoverInput struct {
	ID          int64 `validate:"required,gt=0"`
	File        io.Reader
	ContentType string
}

// BlogUpdateCover uploads a cover image to object storage and stores its URL.
func (s *Usecase) BlogUpdateCover(ctx context.Context, in BlogUpdateCoverInput) error {
	ctx, span := s.startSpan(ctx, "BlogUpdateCover")
	defer span.End()

	clm, err := s.authenticatedAndAuthorized(ctx, constant.PermHotelBlogs, constant.PermActUpdate)
	if err != nil {
		return err
	}

	if err := s.validator.Validate(in); err != nil {
		return goerror.NewInvalidInput(err)
	}

	if in.File == nil {
		return goerror.NewInvalidInput(nil, "cover", "cover file is required")
	}

	contentType := strings.ToLower(strings.TrimSpace(in.ContentType))
	ext, ok := coverContentTypeExt[contentType]
	if !ok {
		return goerror.NewInvalidInput(nil, "cover", "unsupported cover content type")
	}

	if _, err := s.repoDB.GetBlogByID(ctx, in.ID); err != nil {
		if errors.Is(err, goerror.ErrNotFound) {
			return goerror.NewBusiness("blog not found", goerror.CodeNotFound)
		}
		slog.ErrorContext(ctx, "failed to repo get blog by id", "id", in.ID, "error", err)
		return goerror.NewServer(err)
	}

	bucket := strings.TrimSpace(s.cfg.GetString("modules.hotel.blog_bucket"))
	baseURL := strings.TrimSpace(s.cfg.GetString("modules.hotel.blog_base_url"))
	maxSize := s.cfg.GetInt64("modules.hotel.blog_cover_max_size_bytes")
	key := fmt.Sprintf("covers/%d/%s%s", in.ID, s.uuid.Generate(), ext)

	reader := &maxBytesReader{r: in.File, max: maxSize}
	if _, err := s.storage.PutObject(ctx, bucket, key, reader, storage.PutOptions{
		Size:        -1,
		ContentType: contentType,
		Metadata:    map[string]string{"blog_id": strconv.FormatInt(in.ID, 10)},
	}); err != nil {
		if errors.Is(err, errCoverTooLarge) {
			return goerror.NewInvalidInput(errCoverTooLarge)
		}
		slog.ErrorContext(ctx, "failed to upload blog cover", "id", in.ID, "error", err)
		return goerror.NewServer(err)
	}

	coverURL := baseURL + "/" + key
	if err := s.repoDB.UpdateBlogCover(ctx, in.ID, coverURL); err != nil {
		slog.ErrorContext(ctx, "failed to repo update blog cover", "id", in.ID, "error", err)
		return goerror.NewServer(err)
	}

	s.recordActivity(ctx, clm.UserID, "blog_cover_updated", "blog", strconv.FormatInt(in.ID, 10))

	return nil
}

type maxBytesReader struct {
	r     io.Reader
	max   int64
	read  int64
	buf   [1]byte
	ended bool
}

func (m *maxBytesReader) Read(p []byte) (int, error) {
	if m.read >= m.max {
		if m.ended {
			return 0, errCoverTooLarge
		}

		n, err := m.r.Read(m.buf[:])
		if n > 0 {
			m.ended = true
			return 0, errCoverTooLarge
		}
		if err == nil {
			m.ended = true
			return 0, errCoverTooLarge
		}
		return 0, err
	}

	remaining := m.max - m.read
	if int64(len(p)) > remaining {
		p = p[:remaining]
	}

	n, err := m.r.Read(p)
	m.read += int64(n)
	return n, err
}
