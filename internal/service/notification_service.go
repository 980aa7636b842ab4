package service

import (
	"context"
	"encoding/json"
	"fmt"

	"visus-api/internal/delivery/dto"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

// EventCallbackCreated is the event type published for new callback requests.
const EventCallbackCreated = "callback.created"

// CallbackEvent is the message body published to subscribers.
type CallbackEvent struct {
	Type    string                       `json:"type"`
	Payload *dto.CallbackRequestResponse `json:"payload"`
}

// NotificationService tells clinic staff tooling about new callback requests.
type NotificationService interface {
	NotifyCallbackCreated(ctx context.Context, request *dto.CallbackRequestResponse) error
}

type redisNotificationService struct {
	client  redis.UniversalClient
	channel string
	log     *logrus.Logger
}

// NewRedisNotificationService publishes events on a Redis pub/sub channel.
func NewRedisNotificationService(client redis.UniversalClient, channel string, log *logrus.Logger) NotificationService {
	return &redisNotificationService{
		client:  client,
		channel: channel,
		log:     log,
	}
}

func (s *redisNotificationService) NotifyCallbackCreated(ctx context.Context, request *dto.CallbackRequestResponse) error {
	body, err := json.Marshal(CallbackEvent{Type: EventCallbackCreated, Payload: request})
	if err != nil {
		return fmt.Errorf("marshal callback event: %w", err)
	}

	receivers, err := s.client.Publish(ctx, s.channel, body).Result()
	if err != nil {
		return fmt.Errorf("publish to %s: %w", s.channel, err)
	}

	s.log.Debugf("Published %s for callback %d to %d subscribers", EventCallbackCreated, request.ID, receivers)
	return nil
}

type noopNotificationService struct{}

// NewNoopNotificationService is used when no Redis is configured.
func NewNoopNotificationService() NotificationService {
	return noopNotificationService{}
}

func (noopNotificationService) NotifyCallbackCreated(context.Context, *dto.CallbackRequestResponse) error {
	return nil
}
