package cron

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"doctorsportal/config"
	"doctorsportal/models"
	"doctorsportal/services/notification"
	"doctorsportal/services/tasks"

	"github.com/go-redis/redis/v8"
	"github.com/hibiken/asynq"
)

// InitEmailWorker runs the async email worker in the background.
func InitEmailWorker(notifSvc notification.NotificationService) {
	redisOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	}

	srv := asynq.NewServer(
		redisOpts,
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(tasks.TypeSendEmail, handleEmailTask(notifSvc))

	// Start Redis health monitor
	go monitorRedisConnection()

	// Start async worker with retry logic. The worker is best-effort: if it
	// cannot start it disables itself and dispatchers fall back to direct
	// sends, it never takes the booking server down.
	go func() {
		log.Println("[EmailWorker] starting async worker...")
		runWithRetry(func() error { return srv.Run(mux) })
	}()
}

var startRetryBackoff = 2 * time.Second

// runWithRetry keeps attempting to start the worker with a growing backoff.
// After five failures it gives up and returns; it must never exit the
// process over a notification outage.
func runWithRetry(run func() error) {
	const maxAttempts = 5

	for attempts := 1; attempts <= maxAttempts; attempts++ {
		err := run()
		if err == nil {
			return
		}
		log.Printf("[EmailWorker] attempt %d/%d failed to start worker: %v", attempts, maxAttempts, err)
		time.Sleep(time.Duration(attempts) * startRetryBackoff)
	}
	log.Printf("[EmailWorker] max retry attempts reached, worker disabled; emails fall back to direct send")
}

func handleEmailTask(notifSvc notification.NotificationService) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		var p models.EmailPayload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			log.Printf("[EmailWorker] invalid payload: %v", err)
			return err
		}

		var err error
		switch p.Kind {
		case models.EmailKindPaymentReceipt:
			err = notifSvc.SendPaymentReceipt(ctx, p)
		case models.EmailKindBookingConfirmation:
			err = notifSvc.SendBookingConfirmation(ctx, p)
		default:
			log.Printf("[EmailWorker] unknown payload kind: %s", p.Kind)
			return nil
		}

		if err != nil {
			log.Printf("[EmailWorker] failed to send %s email to %s: %v", p.Kind, p.Email, err)
		}
		return err
	}
}

// monitorRedisConnection pings Redis periodically to detect failures at runtime.
func monitorRedisConnection() {
	client := redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	})

	ctx := context.Background()

	for {
		if err := client.Ping(ctx).Err(); err != nil {
			log.Printf("[EmailWorker] Redis connection lost: %v", err)
		}
		time.Sleep(10 * time.Second)
	}
}
