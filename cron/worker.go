package cron

import (
	"context"
	"log"
	"time"

	"iscort/config"
	"iscort/services/ranking"

	"github.com/hibiken/asynq"
)

const TypeRankingRecompute = "ranking:recompute"

// InitRankingWorker runs the async worker and the periodic scheduler in the
// background. The worker recomputes every aggregate, score, and leaderboard
// position whenever a recompute task fires.
func InitRankingWorker(rankingSvc ranking.RankingService) {
	redisOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	}

	srv := asynq.NewServer(
		redisOpts,
		asynq.Config{
			Concurrency: 1,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(TypeRankingRecompute, handleRecomputeTask(rankingSvc))

	go func() {
		log.Println("[RankingWorker] Starting async worker...")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				log.Printf("[RankingWorker] Attempt %d/%d failed to start worker: %v", attempts, maxAttempts, err)

				if attempts == maxAttempts {
					log.Fatal("[RankingWorker] Max retry attempts reached. Exiting.")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second)
			} else {
				break
			}
		}
	}()

	go runScheduler(redisOpts)
}

func handleRecomputeTask(rankingSvc ranking.RankingService) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		log.Println("[RankingWorker] Recomputing rankings...")
		if err := rankingSvc.RecomputeAll(ctx); err != nil {
			log.Printf("[RankingWorker] Recompute failed: %v", err)
			return err
		}
		return nil
	}
}

// runScheduler registers the periodic recompute task using the configured
// cron expression.
func runScheduler(redisOpts asynq.RedisClientOpt) {
	scheduler := asynq.NewScheduler(redisOpts, nil)

	spec := config.AppConfig.RankingRefreshSchedule
	if spec == "" {
		spec = "@every 6h"
	}
	if _, err := scheduler.Register(spec, asynq.NewTask(TypeRankingRecompute, nil)); err != nil {
		log.Printf("[RankingScheduler] Failed to register recompute task: %v", err)
		return
	}

	if err := scheduler.Run(); err != nil {
		log.Printf("[RankingScheduler] Scheduler stopped: %v", err)
	}
}

// EnqueueRecompute pushes an immediate ranking recompute task.
func EnqueueRecompute() error {
	client := asynq.NewClient(asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	})
	defer client.Close()

	_, err := client.Enqueue(asynq.NewTask(TypeRankingRecompute, nil))
	return err
}
