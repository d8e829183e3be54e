package main

import (
	"context"
	"log"
	"time"

	"blogdeck/cmd/internal/logger"
	"blogdeck/config"
	"blogdeck/db"
	"blogdeck/eventbus"
	"blogdeck/repositories"

	"blogdeck/cmd/api/services"
)

// newsfetch는 설정된 RSS 피드를 주기적으로 가져와 뉴스 포스트로 저장하는
// 단독 워커이다. 관리자가 API로 수동 임포트하는 것과 같은 경로를 탄다.
func main() {
	config.InitApp()
	logger.InitFromEnv("LOG_LEVEL")

	ctx := context.Background()
	if err := db.Init(ctx); err != nil {
		log.Fatal("failed to initialize MongoDB:", err)
	}

	bus, err := eventbus.FromEnv()
	if err != nil {
		log.Fatal(err)
	}
	defer bus.Close()

	posts := repositories.NewPostRepository(db.Database())
	svc := services.NewNewsImportService(posts, bus, config.GetConfig().Feeds)

	// 첫 실행은 즉시 1회 수행
	if err := runOnce(ctx, svc); err != nil {
		log.Printf("newsfetch runOnce error: %v", err)
	}

	// 이후 매시 정각마다 수행
	for {
		now := time.Now()
		nextHour := now.Truncate(time.Hour).Add(time.Hour)
		sleepDur := time.Until(nextHour)
		if sleepDur <= 0 {
			sleepDur = time.Minute // fallback
		}
		log.Printf("newsfetch sleeping until %s", nextHour.Format(time.RFC3339))
		time.Sleep(sleepDur)
		if err := runOnce(ctx, svc); err != nil {
			log.Printf("newsfetch runOnce error: %v", err)
		}
	}
}

func runOnce(ctx context.Context, svc *services.NewsImportService) error {
	results, err := svc.ImportAll(ctx, 0)
	if err != nil {
		return err
	}
	for _, res := range results {
		logger.InfoWithFields("feed import finished", logger.Fields{
			"source":   res.Source,
			"fetched":  res.Fetched,
			"imported": res.Imported,
			"failed":   res.Failed,
		})
	}
	return nil
}
