package services

import (
	"context"
	"strings"
	"unicode"

	"blogdeck/cmd/internal/logger"
	"blogdeck/config"
	"blogdeck/eventbus"
	"blogdeck/feeder"
	"blogdeck/models"
	"blogdeck/parser"
)

// NewsStore is the post surface the importer needs. Imported items are
// keyed by source link so re-running an import refreshes instead of
// duplicating.
type NewsStore interface {
	UpsertBySourceLink(ctx context.Context, p *models.Post) (int64, error)
}

// ImportResultDTO summarizes a feed import run.
type ImportResultDTO struct {
	Source   string `json:"source"`
	Fetched  int    `json:"fetched"`
	Imported int    `json:"imported"`
	Failed   int    `json:"failed"`
}

// NewsImportService pulls the configured RSS feeds and stores each item
// as an unpublished news post for admin review.
type NewsImportService struct {
	posts        NewsStore
	bus          eventbus.EventBus
	feeds        []config.FeedSource
	itemsPerFeed int
}

func NewNewsImportService(posts NewsStore, bus eventbus.EventBus, feeds []config.FeedSource) *NewsImportService {
	return &NewsImportService{posts: posts, bus: bus, feeds: feeds, itemsPerFeed: 20}
}

// ImportAll fetches every configured feed. A feed that fails to fetch
// is reported in its result and does not stop the others.
func (s *NewsImportService) ImportAll(ctx context.Context, actorID int64) ([]ImportResultDTO, error) {
	results := make([]ImportResultDTO, 0, len(s.feeds))
	for _, src := range s.feeds {
		res := s.importFeed(ctx, src)
		results = append(results, res)

		ev, err := eventbus.NewEvent(eventbus.EventNewsImported, actorID, 0, map[string]any{
			"source":   src.Name,
			"imported": res.Imported,
			"failed":   res.Failed,
		})
		if err == nil {
			if err := s.bus.Publish(ctx, eventbus.TopicAdminActivity, ev); err != nil {
				logger.Log.Warnf("failed to publish news import event: %v", err)
			}
		}
	}
	return results, nil
}

func (s *NewsImportService) importFeed(ctx context.Context, src config.FeedSource) ImportResultDTO {
	res := ImportResultDTO{Source: src.Name}

	items, err := feeder.FetchRssFeeds(src.RSSURL, s.itemsPerFeed)
	if err != nil {
		logger.Log.Errorf("failed to fetch feed %s: %v", src.Name, err)
		return res
	}
	res.Fetched = len(items)

	for _, item := range items {
		if ctx.Err() != nil {
			break
		}

		body := item.Content
		if body == "" {
			body = item.Description
		}
		text := parser.ExtractTextFromHTMLWithReadability(body)
		if text == "" {
			text = parser.PlainText(body)
		}

		p := &models.Post{
			Type:        models.PostTypeNews,
			Title:       item.Title,
			Slug:        slugify(item.Title),
			Body:        text,
			Excerpt:     parser.Excerpt(body, 280),
			Published:   false,
			PublishedAt: item.PublishedAt,
			SourceName:  src.Name,
			SourceLink:  item.Link,
		}
		if _, err := s.posts.UpsertBySourceLink(ctx, p); err != nil {
			logger.Log.Errorf("failed to upsert news item %q: %v", item.Link, err)
			res.Failed++
			continue
		}
		res.Imported++
	}
	return res
}

// slugify lowercases the title and collapses everything that is not a
// letter or digit into single hyphens.
func slugify(title string) string {
	var b strings.Builder
	prevHyphen := true
	for _, r := range strings.ToLower(title) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
			prevHyphen = false
			continue
		}
		if !prevHyphen {
			b.WriteByte('-')
			prevHyphen = true
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}
