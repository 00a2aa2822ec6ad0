package services

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"
	"sync"
	"testing"
	"unicode/utf8"

	"localnews/internal/mocks"
	"localnews/internal/models"
	"localnews/internal/repository"
	"localnews/internal/slug"
	"localnews/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const testImage = "data:image/png;base64,iVBORw0KGgo="

func newTestService(t *testing.T) (*NewsService, repository.ArticleRepository) {
	repo := repository.NewArticleRepository(testutil.NewTestDB(t), zap.NewNop())
	return NewNewsService(repo, zap.NewNop()), repo
}

func TestCreateDerivesSlugFromTitle(t *testing.T) {
	svc, _ := newTestService(t)

	article, err := svc.Create(context.Background(), ArticleInput{
		Title:   "Hello World",
		Content: "Para1\nPara2",
		Image:   testImage,
	})
	require.NoError(t, err)

	assert.Equal(t, "hello-world", article.Slug)
	assert.Equal(t, "Hello World", article.Title)
	assert.Equal(t, "Para1\nPara2", article.Content)
	require.NotNil(t, article.Image)
	assert.Equal(t, testImage, *article.Image)
	assert.Nil(t, article.YoutubeVideoID)
}

func TestCreateAppendsSuffixOnConflict(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	var slugs []string
	for i := 0; i < 3; i++ {
		a, err := svc.Create(ctx, ArticleInput{Title: "Same Title", Content: "x", Image: testImage})
		require.NoError(t, err)
		slugs = append(slugs, a.Slug)
	}
	assert.Equal(t, []string{"same-title", "same-title-1", "same-title-2"}, slugs)
}

func TestCreateUsesSuppliedSlug(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	a, err := svc.Create(ctx, ArticleInput{Title: "Anything", Slug: "custom", Content: "x", Image: testImage})
	require.NoError(t, err)
	assert.Equal(t, "custom", a.Slug)

	b, err := svc.Create(ctx, ArticleInput{Title: "Other", Slug: "custom", Content: "x", Image: testImage})
	require.NoError(t, err)
	assert.Equal(t, "custom-1", b.Slug)
}

func TestCreateKeepsLongSlugsWithinColumn(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	title := strings.Repeat("word ", 80)
	first, err := svc.Create(ctx, ArticleInput{Title: title, Content: "x", Image: testImage})
	require.NoError(t, err)
	second, err := svc.Create(ctx, ArticleInput{Title: title, Content: "x", Image: testImage})
	require.NoError(t, err)
	assert.LessOrEqual(t, utf8.RuneCountInString(first.Slug), slug.MaxLen)
	assert.Equal(t, first.Slug+"-1", second.Slug)

	supplied := strings.Repeat("s", slug.MaxLen)
	a, err := svc.Create(ctx, ArticleInput{Title: "t", Slug: supplied, Content: "x", Image: testImage})
	require.NoError(t, err)
	b, err := svc.Create(ctx, ArticleInput{Title: "t", Slug: supplied, Content: "x", Image: testImage})
	require.NoError(t, err)

	assert.Equal(t, supplied, a.Slug)
	assert.Equal(t, slug.MaxLen, utf8.RuneCountInString(b.Slug))
	assert.True(t, strings.HasSuffix(b.Slug, "-1"))
	assert.NotEqual(t, a.Slug, b.Slug)
}

func TestUpdateRejectsOverlongSlug(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	a, err := svc.Create(ctx, ArticleInput{Title: "Short", Content: "x", Image: testImage})
	require.NoError(t, err)

	_, err = svc.Update(ctx, a.ID, ArticleInput{Title: "Short", Slug: strings.Repeat("s", slug.MaxLen+1), Content: "x"})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestCreateFallsBackWhenTitleHasNoSlugCharacters(t *testing.T) {
	svc, _ := newTestService(t)

	a, err := svc.Create(context.Background(), ArticleInput{Title: "!!!", Slug: "--", Content: "x", Image: testImage})
	require.NoError(t, err)
	assert.Equal(t, "news-"+a.ID[:8], a.Slug)
}

func TestCreateValidation(t *testing.T) {
	tests := []struct {
		name  string
		input ArticleInput
	}{
		{"missing title", ArticleInput{Content: "x", Image: testImage}},
		{"blank title", ArticleInput{Title: "   ", Content: "x", Image: testImage}},
		{"missing content", ArticleInput{Title: "t", Image: testImage}},
		{"no media", ArticleInput{Title: "t", Content: "x"}},
		{"bad video", ArticleInput{Title: "t", Content: "x", YoutubeVideoID: "https://example.com/watch"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, repo := newTestService(t)

			_, err := svc.Create(context.Background(), tt.input)
			assert.ErrorIs(t, err, ErrValidation)

			n, err := repo.Count(context.Background())
			require.NoError(t, err)
			assert.Zero(t, n)
		})
	}
}

func TestCreateExtractsYoutubeID(t *testing.T) {
	svc, repo := newTestService(t)
	ctx := context.Background()

	a, err := svc.Create(ctx, ArticleInput{Title: "Video", Content: "x", YoutubeVideoID: "https://youtu.be/abcdefghijk"})
	require.NoError(t, err)

	stored, err := repo.FindBySlug(ctx, a.Slug)
	require.NoError(t, err)
	require.NotNil(t, stored.YoutubeVideoID)
	assert.Equal(t, "abcdefghijk", *stored.YoutubeVideoID)
	assert.Nil(t, stored.Image)
}

func TestConcurrentCreatesGetDistinctSlugs(t *testing.T) {
	svc, repo := newTestService(t)
	ctx := context.Background()
	const n = 8

	var wg sync.WaitGroup
	results := make(chan string, n)
	errs := make(chan error, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			a, err := svc.Create(ctx, ArticleInput{Title: "Breaking News", Content: "x", Image: testImage})
			if err != nil {
				errs <- err
				return
			}
			results <- a.Slug
		}()
	}
	wg.Wait()
	close(results)
	close(errs)

	for err := range errs {
		t.Fatalf("create failed: %v", err)
	}

	want := map[string]bool{"breaking-news": true}
	for i := 1; i < n; i++ {
		want[fmt.Sprintf("breaking-news-%d", i)] = true
	}
	got := map[string]bool{}
	for s := range results {
		assert.False(t, got[s], "duplicate slug %s", s)
		got[s] = true
	}
	assert.Equal(t, want, got)

	total, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(n), total)
}

func TestCreateRetriesWhenInsertLosesRace(t *testing.T) {
	repo := new(mocks.MockArticleRepository)
	svc := NewNewsService(repo, zap.NewNop())
	ctx := context.Background()

	repo.On("SlugExists", ctx, "race", "").Return(false, nil).Once()
	repo.On("Create", ctx, mock.MatchedBy(func(a *models.Article) bool { return a.Slug == "race" })).
		Return(fmt.Errorf("%w: race", repository.ErrDuplicateSlug)).Once()
	repo.On("SlugExists", ctx, "race-1", "").Return(false, nil).Once()
	repo.On("Create", ctx, mock.MatchedBy(func(a *models.Article) bool { return a.Slug == "race-1" })).
		Return(nil).Once()

	a, err := svc.Create(ctx, ArticleInput{Title: "Race", Content: "x", Image: testImage})
	require.NoError(t, err)
	assert.Equal(t, "race-1", a.Slug)
	repo.AssertExpectations(t)
}

func TestCreateStorageError(t *testing.T) {
	repo := new(mocks.MockArticleRepository)
	svc := NewNewsService(repo, zap.NewNop())
	ctx := context.Background()
	boom := errors.New("connection reset")

	repo.On("SlugExists", ctx, "story", "").Return(false, boom)

	_, err := svc.Create(ctx, ArticleInput{Title: "Story", Content: "x", Image: testImage})
	assert.ErrorIs(t, err, boom)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestUpdateByIDAndSlug(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	a, err := svc.Create(ctx, ArticleInput{Title: "Original", Content: "x", Image: testImage, YoutubeVideoID: "abcdefghijk"})
	require.NoError(t, err)

	updated, err := svc.Update(ctx, a.ID, ArticleInput{Title: "Edited", Content: "y", Image: testImage})
	require.NoError(t, err)
	assert.Equal(t, "Edited", updated.Title)
	assert.Equal(t, "original", updated.Slug, "slug is kept when not supplied")
	assert.Nil(t, updated.YoutubeVideoID, "omitted video is cleared")

	updated, err = svc.Update(ctx, "original", ArticleInput{Title: "Via slug", Content: "z", Slug: "renamed"})
	require.NoError(t, err)
	assert.Equal(t, "renamed", updated.Slug)
	assert.Nil(t, updated.Image, "omitted image is cleared")

	fetched, err := svc.GetBySlug(ctx, "renamed")
	require.NoError(t, err)
	assert.Equal(t, a.ID, fetched.ID)
	assert.Equal(t, "Via slug", fetched.Title)
}

func TestUpdateSlugConflict(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, ArticleInput{Title: "A", Slug: "foo", Content: "x", Image: testImage})
	require.NoError(t, err)
	b, err := svc.Create(ctx, ArticleInput{Title: "B", Slug: "bar", Content: "x", Image: testImage})
	require.NoError(t, err)

	_, err = svc.Update(ctx, b.ID, ArticleInput{Title: "B", Slug: "foo", Content: "x"})
	assert.ErrorIs(t, err, ErrSlugConflict)

	stored, err := svc.GetByID(ctx, b.ID)
	require.NoError(t, err)
	assert.Equal(t, "bar", stored.Slug)
}

func TestUpdateKeepsOwnSlug(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	a, err := svc.Create(ctx, ArticleInput{Title: "A", Slug: "foo", Content: "x", Image: testImage})
	require.NoError(t, err)

	updated, err := svc.Update(ctx, a.ID, ArticleInput{Title: "A2", Slug: "foo", Content: "x"})
	require.NoError(t, err)
	assert.Equal(t, "foo", updated.Slug)
}

func TestUpdateErrors(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.Update(ctx, "missing", ArticleInput{Title: "t", Content: "c"})
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = svc.Update(ctx, "8d3c1a4e-0000-4000-8000-000000000000", ArticleInput{Title: "t", Content: "c"})
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = svc.Update(ctx, "missing", ArticleInput{Title: "", Content: "c"})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestDeleteByIDAndSlug(t *testing.T) {
	svc, repo := newTestService(t)
	ctx := context.Background()

	a, err := svc.Create(ctx, ArticleInput{Title: "One", Content: "x", Image: testImage})
	require.NoError(t, err)
	b, err := svc.Create(ctx, ArticleInput{Title: "Two", Content: "x", Image: testImage})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, a.ID))
	require.NoError(t, svc.Delete(ctx, b.Slug))
	assert.ErrorIs(t, svc.Delete(ctx, b.Slug), ErrNotFound)

	n, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestSearchAndPagination(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	for i := 0; i < 13; i++ {
		title := fmt.Sprintf("Council meeting %d", i)
		if i%2 == 0 {
			title = fmt.Sprintf("Weather update %d", i)
		}
		_, err := svc.Create(ctx, ArticleInput{Title: title, Content: "x", Image: testImage})
		require.NoError(t, err)
	}

	page, err := svc.List(ctx, 3, 6)
	require.NoError(t, err)
	assert.Len(t, page.Items, 1)
	assert.Equal(t, 3, page.TotalPages())
	assert.Equal(t, int64(13), page.Total)

	page, err = svc.List(ctx, 4, 6)
	require.NoError(t, err)
	assert.Empty(t, page.Items)

	page, err = svc.Search(ctx, "weather", 1, 6)
	require.NoError(t, err)
	assert.Equal(t, int64(7), page.Total)
	for _, a := range page.Items {
		assert.True(t, strings.HasPrefix(a.Title, "Weather"))
	}

	page, err = svc.Search(ctx, "", 0, 0)
	require.NoError(t, err)
	assert.Equal(t, DefaultPage, page.Page)
	assert.Equal(t, DefaultLimit, page.Limit)
	assert.Len(t, page.Items, DefaultLimit)
}

func TestNormalizePage(t *testing.T) {
	tests := []struct {
		page, limit         int
		wantPage, wantLimit int
	}{
		{1, 6, 1, 6},
		{0, 0, DefaultPage, DefaultLimit},
		{-3, -1, DefaultPage, DefaultLimit},
		{2, 500, 2, MaxLimit},
		{5_000_000, 6, 5_000_000, 6},
	}
	for _, tt := range tests {
		page, limit := NormalizePage(tt.page, tt.limit)
		assert.Equal(t, tt.wantPage, page)
		assert.Equal(t, tt.wantLimit, limit)
	}
}

func TestSearchFarPastTheEnd(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, ArticleInput{Title: "Only one", Content: "x", Image: testImage})
	require.NoError(t, err)

	for _, requested := range []int{2_000_000, math.MaxInt} {
		page, err := svc.List(ctx, requested, MaxLimit)
		require.NoError(t, err)
		assert.Equal(t, requested, page.Page, "requested page is reported back")
		assert.Empty(t, page.Items)
		assert.Equal(t, int64(1), page.Total)
	}
}

func TestOffsetSaturates(t *testing.T) {
	assert.Equal(t, 0, offset(1, 6))
	assert.Equal(t, 12, offset(3, 6))
	assert.Equal(t, maxOffset, offset(math.MaxInt, MaxLimit))
}

func TestTotalPages(t *testing.T) {
	assert.Equal(t, 0, (&Page{Total: 0, Limit: 6}).TotalPages())
	assert.Equal(t, 1, (&Page{Total: 6, Limit: 6}).TotalPages())
	assert.Equal(t, 3, (&Page{Total: 13, Limit: 6}).TotalPages())
}
