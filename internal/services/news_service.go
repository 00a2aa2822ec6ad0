package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"localnews/internal/models"
	"localnews/internal/repository"
	"localnews/internal/slug"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	DefaultPage  = 1
	DefaultLimit = 6
	MaxLimit     = 100

	// maxOffset bounds the row offset sent to the store; any page past it is
	// necessarily empty.
	maxOffset = 1<<31 - 1
)

var (
	ErrValidation   = errors.New("validation failed")
	ErrNotFound     = errors.New("news not found")
	ErrSlugConflict = errors.New("slug already exists")
)

// ArticleInput carries the editable fields of a create or update request.
// Blank Image or YoutubeVideoID mean "no value".
type ArticleInput struct {
	Title          string
	Slug           string
	Content        string
	Image          string
	YoutubeVideoID string
}

func (in ArticleInput) validate(requireMedia bool) error {
	var missing []string
	if strings.TrimSpace(in.Title) == "" {
		missing = append(missing, "title")
	}
	if strings.TrimSpace(in.Content) == "" {
		missing = append(missing, "content")
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: %s required", ErrValidation, strings.Join(missing, " and "))
	}
	if requireMedia && strings.TrimSpace(in.Image) == "" && strings.TrimSpace(in.YoutubeVideoID) == "" {
		return fmt.Errorf("%w: either image or YouTube video is required", ErrValidation)
	}
	return nil
}

type Page struct {
	Items []models.Article
	Total int64
	Page  int
	Limit int
}

func (p *Page) TotalPages() int {
	if p.Limit <= 0 {
		return 0
	}
	return int((p.Total + int64(p.Limit) - 1) / int64(p.Limit))
}

// NormalizePage applies the defaults to values below 1 and caps limit at
// MaxLimit. Large pages are kept as requested.
func NormalizePage(page, limit int) (int, int) {
	if page < 1 {
		page = DefaultPage
	}
	if limit < 1 {
		limit = DefaultLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}
	return page, limit
}

// offset returns the rows skipped before page, saturating at maxOffset.
func offset(page, limit int) int {
	if page-1 > maxOffset/limit {
		return maxOffset
	}
	return (page - 1) * limit
}

type NewsService struct {
	repo  repository.ArticleRepository
	slugs *slug.Assigner
	log   *zap.Logger
}

func NewNewsService(repo repository.ArticleRepository, log *zap.Logger) *NewsService {
	return &NewsService{
		repo:  repo,
		slugs: slug.NewAssigner(repo),
		log:   log,
	}
}

func (s *NewsService) List(ctx context.Context, page, limit int) (*Page, error) {
	return s.Search(ctx, "", page, limit)
}

// Search matches query against titles only. An empty query lists everything.
func (s *NewsService) Search(ctx context.Context, query string, page, limit int) (*Page, error) {
	page, limit = NormalizePage(page, limit)

	items, total, err := s.repo.List(ctx, query, offset(page, limit), limit)
	if err != nil {
		return nil, err
	}
	return &Page{Items: items, Total: total, Page: page, Limit: limit}, nil
}

func (s *NewsService) Count(ctx context.Context) (int64, error) {
	return s.repo.Count(ctx)
}

func (s *NewsService) GetBySlug(ctx context.Context, slug string) (*models.Article, error) {
	return mapNotFound(s.repo.FindBySlug(ctx, slug))
}

func (s *NewsService) GetByID(ctx context.Context, id string) (*models.Article, error) {
	return mapNotFound(s.repo.FindByID(ctx, id))
}

func (s *NewsService) Create(ctx context.Context, in ArticleInput) (*models.Article, error) {
	if err := in.validate(true); err != nil {
		return nil, err
	}
	video, err := NormalizeYoutubeID(in.YoutubeVideoID)
	if err != nil {
		return nil, err
	}

	article := &models.Article{
		ID:             uuid.NewString(),
		Title:          in.Title,
		Content:        in.Content,
		Image:          optional(in.Image),
		YoutubeVideoID: video,
	}
	base := slug.Base(in.Slug, in.Title, "news-"+article.ID[:8])

	// The pre-check in Next can race with another insert; the unique index
	// decides, and a lost race resumes probing at the next suffix.
	for from := 0; from < slug.MaxAttempts; {
		candidate, n, err := s.slugs.Next(ctx, base, "", from)
		if err != nil {
			return nil, fmt.Errorf("assign slug: %w", err)
		}

		article.Slug = candidate
		err = s.repo.Create(ctx, article)
		if err == nil {
			return article, nil
		}
		if !errors.Is(err, repository.ErrDuplicateSlug) {
			return nil, err
		}

		s.log.Debug("slug taken concurrently, retrying", zap.String("slug", candidate))
		from = n + 1
	}
	return nil, fmt.Errorf("assign slug: %w", slug.ErrExhausted)
}

// Update replaces the article identified by key (id or slug). Image and
// YoutubeVideoID are replaced wholesale, so leaving them blank clears them.
func (s *NewsService) Update(ctx context.Context, key string, in ArticleInput) (*models.Article, error) {
	if err := in.validate(false); err != nil {
		return nil, err
	}
	video, err := NormalizeYoutubeID(in.YoutubeVideoID)
	if err != nil {
		return nil, err
	}

	article, err := s.resolve(ctx, key)
	if err != nil {
		return nil, err
	}

	if newSlug := strings.TrimSpace(in.Slug); strings.Trim(newSlug, "-") != "" && newSlug != article.Slug {
		if utf8.RuneCountInString(newSlug) > slug.MaxLen {
			return nil, fmt.Errorf("%w: slug longer than %d characters", ErrValidation, slug.MaxLen)
		}
		taken, err := s.repo.SlugExists(ctx, newSlug, article.ID)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, fmt.Errorf("%w: %s", ErrSlugConflict, newSlug)
		}
		article.Slug = newSlug
	}

	article.Title = in.Title
	article.Content = in.Content
	article.Image = optional(in.Image)
	article.YoutubeVideoID = video

	if err := s.repo.Update(ctx, article); err != nil {
		switch {
		case errors.Is(err, repository.ErrDuplicateSlug):
			return nil, fmt.Errorf("%w: %s", ErrSlugConflict, article.Slug)
		case errors.Is(err, repository.ErrNotFound):
			return nil, ErrNotFound
		}
		return nil, err
	}
	return article, nil
}

func (s *NewsService) Delete(ctx context.Context, key string) error {
	article, err := s.resolve(ctx, key)
	if err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, article.ID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrNotFound
		}
		return err
	}
	return nil
}

// resolve finds the target of an update or delete. Keys shaped like a UUID
// are looked up as ids first; everything else is treated as a slug.
func (s *NewsService) resolve(ctx context.Context, key string) (*models.Article, error) {
	if _, err := uuid.Parse(key); err == nil {
		article, err := s.repo.FindByID(ctx, key)
		if !errors.Is(err, repository.ErrNotFound) {
			return mapNotFound(article, err)
		}
	}
	return mapNotFound(s.repo.FindBySlug(ctx, key))
}

func mapNotFound(article *models.Article, err error) (*models.Article, error) {
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return article, nil
}

func optional(s string) *string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	return &s
}
