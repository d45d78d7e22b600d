package auditqueue

import (
	"agenda-service/internal/app/contracts"
	"agenda-service/internal/pkg/constvars"
	"agenda-service/internal/pkg/exceptions"
	"context"
	"sync"
	"time"

	"github.com/goccy/go-json"
	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

var (
	auditQueueServiceInstance contracts.AuditQueueService
	onceAuditQueueService     sync.Once
)

type auditQueueService struct {
	channel   *amqp.Channel
	queueName string
	Log       *zap.Logger
}

// NewAuditQueueService declares the durable audit queue and returns a
// publisher bound to it. Declaration is idempotent on the broker side.
func NewAuditQueueService(conn *amqp.Connection, queueName string, logger *zap.Logger) (contracts.AuditQueueService, error) {
	var initErr error
	onceAuditQueueService.Do(func() {
		channel, err := conn.Channel()
		if err != nil {
			initErr = exceptions.ErrAuditPublish(err)
			return
		}

		_, err = channel.QueueDeclare(
			queueName,
			true,
			false,
			false,
			false,
			nil,
		)
		if err != nil {
			initErr = exceptions.ErrAuditPublish(err)
			return
		}

		auditQueueServiceInstance = &auditQueueService{
			channel:   channel,
			queueName: queueName,
			Log:       logger,
		}
	})
	return auditQueueServiceInstance, initErr
}

func (s *auditQueueService) Publish(ctx context.Context, message contracts.AuditMessage) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	if message.Timestamp == "" {
		message.Timestamp = time.Now().UTC().Format(time.RFC3339)
	}

	body, err := json.Marshal(message)
	if err != nil {
		return exceptions.ErrCannotMarshalJSON(err)
	}

	err = s.channel.PublishWithContext(ctx,
		"",
		s.queueName,
		false,
		false,
		amqp.Publishing{
			ContentType:  constvars.MIMEApplicationJSON,
			DeliveryMode: amqp.Persistent,
			Body:         body,
		},
	)
	if err != nil {
		s.Log.Error("auditQueueService.Publish error publishing audit message",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingQueueKey, s.queueName),
			zap.String(constvars.LoggingAuditActionKey, message.Action),
			zap.Error(err),
		)
		return exceptions.ErrAuditPublish(err)
	}

	s.Log.Info("auditQueueService.Publish audit message published",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingQueueKey, s.queueName),
		zap.String(constvars.LoggingAuditActionKey, message.Action),
		zap.String(constvars.LoggingEventIDKey, message.EventID),
	)
	return nil
}
