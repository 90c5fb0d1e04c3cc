package tasks

import (
	"context"
	"encoding/json"
	"time"

	"doctorsportal/models"
	"doctorsportal/services/notification"
	"doctorsportal/utils"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

const TypeSendEmail = "email:send"

// NewEmailTask wraps an email payload into an asynq task.
func NewEmailTask(payload models.EmailPayload) (*asynq.Task, []asynq.Option, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, nil, err
	}
	task := asynq.NewTask(TypeSendEmail, b)
	opts := []asynq.Option{asynq.MaxRetry(3), asynq.Timeout(30 * time.Second)}

	return task, opts, nil
}

// AsynqDispatcher enqueues email payloads on the Redis-backed task queue.
// When the queue is unreachable it falls back to a direct best-effort send so
// a Redis outage degrades delivery, not bookings.
type AsynqDispatcher struct {
	Client   *asynq.Client
	Fallback notification.NotificationService
}

// DispatchEmail hands the payload to the queue. It never returns an error:
// the booking or payment that triggered it is already durable and must not
// be affected by delivery problems.
func (d *AsynqDispatcher) DispatchEmail(p models.EmailPayload) {
	logger := utils.GetLogger()

	task, opts, err := NewEmailTask(p)
	if err != nil {
		logger.Error("failed to build email task", zap.Error(err), zap.String("email", p.Email))
		return
	}

	if d.Client != nil {
		_, err := d.Client.Enqueue(task, opts...)
		if err == nil {
			return
		}
		logger.Warn("failed to enqueue email task, sending directly",
			zap.Error(err), zap.String("email", p.Email))
	}

	if d.Fallback == nil {
		logger.Error("no email fallback configured, dropping message", zap.String("email", p.Email))
		return
	}

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := sendByKind(ctx, d.Fallback, p); err != nil {
			logger.Error("direct email send failed", zap.Error(err), zap.String("email", p.Email))
		}
	}()
}

func sendByKind(ctx context.Context, svc notification.NotificationService, p models.EmailPayload) error {
	switch p.Kind {
	case models.EmailKindPaymentReceipt:
		return svc.SendPaymentReceipt(ctx, p)
	default:
		return svc.SendBookingConfirmation(ctx, p)
	}
}
