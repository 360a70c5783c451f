package cron

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"yourclean/config"
	"yourclean/models"
	"yourclean/services/notification"
	"yourclean/services/order"

	"github.com/hibiken/asynq"
)

// InitOrderNotifyWorker runs the async worker delivering new-order push
// notifications to staff devices.
func InitOrderNotifyWorker(notifSvc notification.NotificationService) {
	redisOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	}

	srv := asynq.NewServer(
		redisOpts,
		asynq.Config{
			Concurrency: 5,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(order.TypeOrderNotify, handleOrderNotifyTask(notifSvc))

	go func() {
		log.Println("[OrderNotifyWorker] starting async worker...")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				log.Printf("[OrderNotifyWorker] attempt %d/%d failed to start worker: %v", attempts, maxAttempts, err)

				if attempts == maxAttempts {
					log.Fatal("[OrderNotifyWorker] max retry attempts reached, exiting")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second)
			} else {
				break
			}
		}
	}()
}

func handleOrderNotifyTask(notifSvc notification.NotificationService) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		var p models.OrderNotifyPayload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			log.Printf("[OrderNotifyHandler] invalid payload: %v", err)
			return err
		}

		data := map[string]string{
			"orderId": p.OrderID,
		}
		if err := notifSvc.NotifyStaff(ctx, p.Title, p.Body, data); err != nil {
			log.Printf("[OrderNotifyHandler] failed to notify staff for order %s: %v", p.OrderID, err)
			return err
		}
		return nil
	}
}
