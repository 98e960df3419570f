package cron

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"shootflow/config"
	"shootflow/models"
	"shootflow/services/board"
	"shootflow/services/tasks"
	"shootflow/utils"

	"github.com/go-redis/redis/v8"
	"github.com/hibiken/asynq"
)

// InitSyncWorker runs the shoot poll-sync worker in background: it re-fetches
// the shoot list from the remote authority on a schedule, which is how status
// changes made elsewhere become visible here.
func InitSyncWorker(boardSvc board.BoardService) {
	redisOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisSyncQueueDB,
	}

	srv := asynq.NewServer(
		redisOpts,
		asynq.Config{
			Concurrency: 2,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(tasks.TypeShootSync, handleShootSyncTask(boardSvc))

	// Start Redis health monitor
	go monitorRedisConnection()

	// Start the periodic enqueuer.
	go enqueueSyncLoop(redisOpts)

	// Start async worker with retry logic
	go func() {
		log.Println("[SyncWorker] Starting async worker...")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				log.Printf("[SyncWorker] Attempt %d/%d failed to start worker: %v", attempts, maxAttempts, err)

				if attempts == maxAttempts {
					log.Fatal("[SyncWorker] Max retry attempts reached. Exiting.")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second) // Exponential backoff
			} else {
				break
			}
		}
	}()
}

func handleShootSyncTask(boardSvc board.BoardService) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		var p tasks.ShootSyncPayload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			log.Printf("[SyncHandler] Invalid payload: %v", err)
			return err
		}

		auth, err := serviceAuthContext()
		if err != nil {
			log.Printf("[SyncHandler] Failed to build service credentials: %v", err)
			return err
		}

		n, err := boardSvc.RefreshFromAuthority(ctx, auth)
		if err != nil {
			log.Printf("[SyncHandler] Shoot sync failed: %v", err)
			return err
		}
		log.Printf("[SyncHandler] Synced %d shoots from authority (requested by %s)", n, p.RequestedBy)
		return nil
	}
}

// serviceAuthContext mints the worker's own session for authority calls.
func serviceAuthContext() (models.AuthContext, error) {
	token, err := utils.GenerateToken("sync-worker", string(models.RoleSuperAdmin), time.Hour)
	if err != nil {
		return models.AuthContext{}, err
	}
	return models.AuthContext{
		UserID: "sync-worker",
		Role:   models.RoleSuperAdmin,
		Token:  token,
	}, nil
}

// enqueueSyncLoop schedules a sync task at the configured interval.
func enqueueSyncLoop(redisOpts asynq.RedisClientOpt) {
	client := asynq.NewClient(redisOpts)
	defer client.Close()

	interval := time.Duration(config.AppConfig.ShootSyncIntervalMins) * time.Minute
	if interval <= 0 {
		interval = 5 * time.Minute
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for range ticker.C {
		task, opts, err := tasks.NewShootSyncTask("scheduler", time.Now())
		if err != nil {
			log.Printf("[SyncWorker] Failed to build sync task: %v", err)
			continue
		}
		if _, err := client.Enqueue(task, opts...); err != nil {
			log.Printf("[SyncWorker] Failed to enqueue sync task: %v", err)
		}
	}
}

// monitorRedisConnection pings Redis periodically to detect failures at runtime.
func monitorRedisConnection() {
	client := redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisSyncQueueDB,
	})

	ctx := context.Background()

	for {
		if err := client.Ping(ctx).Err(); err != nil {
			log.Printf("[SyncWorker] Redis connection lost: %v", err)
		}
		time.Sleep(10 * time.Second)
	}
}
