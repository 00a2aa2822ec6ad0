package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"localnews/internal/cache"
	"localnews/internal/models"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mattn/go-sqlite3"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var (
	ErrNotFound      = errors.New("article not found")
	ErrDuplicateSlug = errors.New("slug already taken")
)

type ArticleRepository interface {
	Create(ctx context.Context, article *models.Article) error
	Update(ctx context.Context, article *models.Article) error
	Delete(ctx context.Context, id string) error
	FindByID(ctx context.Context, id string) (*models.Article, error)
	FindBySlug(ctx context.Context, slug string) (*models.Article, error)
	SlugExists(ctx context.Context, slug, excludeID string) (bool, error)
	// List returns one page of articles, newest first, whose title contains
	// query case-insensitively (all articles when query is empty), plus the
	// total number of matches.
	List(ctx context.Context, query string, offset, limit int) ([]models.Article, int64, error)
	Count(ctx context.Context) (int64, error)
}

type articleRepository struct {
	db    *gorm.DB
	cache *cache.RedisClient
	log   *zap.Logger
}

func NewArticleRepository(db *gorm.DB, log *zap.Logger) ArticleRepository {
	return &articleRepository{db: db, log: log}
}

func NewCachedArticleRepository(db *gorm.DB, c *cache.RedisClient, log *zap.Logger) ArticleRepository {
	return &articleRepository{db: db, cache: c, log: log}
}

func (r *articleRepository) Create(ctx context.Context, article *models.Article) error {
	if err := r.db.WithContext(ctx).Create(article).Error; err != nil {
		if isDuplicateKey(err) {
			return fmt.Errorf("%w: %s", ErrDuplicateSlug, article.Slug)
		}
		return fmt.Errorf("create article: %w", err)
	}
	r.invalidate(ctx, article.ID)
	return nil
}

// Update replaces every mutable column, so nil Image or YoutubeVideoID clear
// the stored value.
func (r *articleRepository) Update(ctx context.Context, article *models.Article) error {
	previousSlug := r.currentSlug(ctx, article.ID)

	result := r.db.WithContext(ctx).
		Model(article).
		Select("title", "slug", "content", "image", "youtube_video_id", "updated_at").
		Updates(article)
	if result.Error != nil {
		if isDuplicateKey(result.Error) {
			return fmt.Errorf("%w: %s", ErrDuplicateSlug, article.Slug)
		}
		return fmt.Errorf("update article %s: %w", article.ID, result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}

	r.invalidate(ctx, article.ID, previousSlug, article.Slug)
	return nil
}

func (r *articleRepository) Delete(ctx context.Context, id string) error {
	slug := r.currentSlug(ctx, id)

	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.Article{})
	if result.Error != nil {
		return fmt.Errorf("delete article %s: %w", id, result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}

	r.invalidate(ctx, id, slug)
	return nil
}

func (r *articleRepository) FindByID(ctx context.Context, id string) (*models.Article, error) {
	if r.cache != nil {
		if a, ok, err := r.cache.ArticleByID(ctx, id); err == nil && ok {
			return a, nil
		} else if err != nil {
			r.log.Warn("cache read failed", zap.String("id", id), zap.Error(err))
		}
	}
	return r.findOne(ctx, "id = ?", id)
}

func (r *articleRepository) FindBySlug(ctx context.Context, slug string) (*models.Article, error) {
	if r.cache != nil {
		if a, ok, err := r.cache.ArticleBySlug(ctx, slug); err == nil && ok {
			return a, nil
		} else if err != nil {
			r.log.Warn("cache read failed", zap.String("slug", slug), zap.Error(err))
		}
	}
	return r.findOne(ctx, "slug = ?", slug)
}

func (r *articleRepository) findOne(ctx context.Context, cond string, arg string) (*models.Article, error) {
	var article models.Article
	if err := r.db.WithContext(ctx).Where(cond, arg).Take(&article).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("find article: %w", err)
	}

	if r.cache != nil {
		if err := r.cache.StoreArticle(ctx, &article); err != nil {
			r.log.Warn("cache write failed", zap.String("id", article.ID), zap.Error(err))
		}
	}
	return &article, nil
}

func (r *articleRepository) SlugExists(ctx context.Context, slug, excludeID string) (bool, error) {
	var n int64
	q := r.db.WithContext(ctx).Model(&models.Article{}).Where("slug = ?", slug)
	if excludeID != "" {
		q = q.Where("id <> ?", excludeID)
	}
	if err := q.Count(&n).Error; err != nil {
		return false, fmt.Errorf("check slug %q: %w", slug, err)
	}
	return n > 0, nil
}

func (r *articleRepository) List(ctx context.Context, query string, offset, limit int) ([]models.Article, int64, error) {
	filter := titleContains(query)

	var total int64
	if err := r.db.WithContext(ctx).Model(&models.Article{}).Scopes(filter).Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("count articles: %w", err)
	}

	articles := make([]models.Article, 0, limit)
	err := r.db.WithContext(ctx).
		Scopes(filter).
		Order("created_at DESC").
		Order("id DESC").
		Offset(offset).
		Limit(limit).
		Find(&articles).Error
	if err != nil {
		return nil, 0, fmt.Errorf("list articles: %w", err)
	}
	return articles, total, nil
}

func (r *articleRepository) Count(ctx context.Context) (int64, error) {
	if r.cache != nil {
		if n, ok, err := r.cache.Count(ctx); err == nil && ok {
			return n, nil
		}
	}

	var n int64
	if err := r.db.WithContext(ctx).Model(&models.Article{}).Count(&n).Error; err != nil {
		return 0, fmt.Errorf("count articles: %w", err)
	}

	if r.cache != nil {
		if err := r.cache.StoreCount(ctx, n); err != nil {
			r.log.Warn("cache write failed", zap.Error(err))
		}
	}
	return n, nil
}

// currentSlug looks up the stored slug so its cache entry can be dropped.
// It is a no-op without a cache.
func (r *articleRepository) currentSlug(ctx context.Context, id string) string {
	if r.cache == nil {
		return ""
	}
	var slugs []string
	r.db.WithContext(ctx).Model(&models.Article{}).
		Where("id = ?", id).
		Limit(1).
		Pluck("slug", &slugs)
	if len(slugs) == 0 {
		return ""
	}
	return slugs[0]
}

func (r *articleRepository) invalidate(ctx context.Context, id string, slugs ...string) {
	if r.cache == nil {
		return
	}
	if err := r.cache.InvalidateArticle(ctx, id, slugs...); err != nil {
		r.log.Warn("cache invalidation failed", zap.String("id", id), zap.Error(err))
	}
}

func titleContains(query string) func(*gorm.DB) *gorm.DB {
	query = strings.TrimSpace(query)
	pattern := "%" + escapeLike(strings.ToLower(query)) + "%"
	return func(tx *gorm.DB) *gorm.DB {
		if query == "" {
			return tx
		}
		return tx.Where("LOWER(title) LIKE ? ESCAPE '\\'", pattern)
	}
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}

func isDuplicateKey(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}

	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) {
		return sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique
	}
	return false
}
