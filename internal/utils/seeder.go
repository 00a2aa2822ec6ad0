package utils

import (
	"context"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"localnews/internal/models"
	"localnews/internal/services"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

const (
	DefaultNumArticles = 24
	progressEvery      = 10
)

// 1x1 transparent PNG.
const placeholderImage = "data:image/png;base64,iVBORw0KGgoAAAANSUhEUgAAAAEAAAABCAQAAAC1HAwCAAAAC0lEQVR42mNkYAAAAAYAAjCB0C8AAAAASUVORK5CYII="

var (
	seedPlaces = []string{"Riverside", "Old Town", "Harbour", "Market Street", "North Hill", "Station Road"}
	seedTopics = []string{
		"council approves new budget",
		"road closed for repairs",
		"school fair raises funds",
		"flood warning issued",
		"library extends opening hours",
		"new bus route announced",
		"farmers market returns",
	}
	seedVideos = []string{"dQw4w9WgXcQ", "M7lc1UVf-VE", "aqz-KE-bpKQ"}
)

// SeedArticles creates n sample articles through the news service, so slugs
// are assigned exactly as they are for the API. It returns how many were
// created before any error.
func SeedArticles(ctx context.Context, svc *services.NewsService, n int, r *rand.Rand, log *zap.Logger) (int, error) {
	start := time.Now()

	for i := 0; i < n; i++ {
		article, err := svc.Create(ctx, generateArticle(i, r))
		if err != nil {
			return i, fmt.Errorf("failed to create article %d: %w", i, err)
		}
		log.Debug("seeded article", zap.String("slug", article.Slug))

		if (i+1)%progressEvery == 0 {
			log.Info("seeding progress", zap.Int("created", i+1), zap.Int("total", n))
		}
	}

	log.Info("seeding complete", zap.Int("created", n), zap.Duration("elapsed", time.Since(start)))
	return n, nil
}

// ClearArticles deletes every article and returns how many were removed.
func ClearArticles(ctx context.Context, db *gorm.DB) (int64, error) {
	result := db.WithContext(ctx).Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&models.Article{})
	if result.Error != nil {
		return 0, fmt.Errorf("failed to clear articles: %w", result.Error)
	}
	return result.RowsAffected, nil
}

func generateArticle(index int, r *rand.Rand) services.ArticleInput {
	place := seedPlaces[r.Intn(len(seedPlaces))]
	topic := seedTopics[r.Intn(len(seedTopics))]

	in := services.ArticleInput{
		Title:   place + ": " + strings.ToUpper(topic[:1]) + topic[1:],
		Content: generateContent(place, topic, r),
	}
	// Alternate media so both kinds show up in the list.
	if index%2 == 0 {
		in.Image = placeholderImage
	} else {
		in.YoutubeVideoID = "https://youtu.be/" + seedVideos[r.Intn(len(seedVideos))]
	}
	return in
}

func generateContent(place, topic string, r *rand.Rand) string {
	paragraphs := []string{
		fmt.Sprintf("Residents of %s heard this week that the %s.", place, topic),
		"Officials said more details would follow at the next public meeting.",
		fmt.Sprintf("Around %d people attended the first briefing.", 20+r.Intn(180)),
	}
	return strings.Join(paragraphs[:2+r.Intn(2)], "\n")
}
