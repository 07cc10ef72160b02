package producers

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/wagslane/go-rabbitmq"

	"github.com/Nazarious-ucu/weather-dashboard/pkg/messaging"
)

type publisher interface {
	PublishWithContext(ctx context.Context, data []byte, routingKeys []string, optionFuncs ...func(*rabbitmq.PublishOptions)) error
}

// Producer publishes city list changes to RabbitMQ.
type Producer struct {
	prod publisher
	log  zerolog.Logger
	now  func() time.Time
}

func NewProducer(prod publisher, logger zerolog.Logger) *Producer {
	return &Producer{
		prod: prod,
		log:  logger.With().Str("component", "Producer").Logger(),
		now:  time.Now,
	}
}

func (p *Producer) Publish(ctx context.Context, routingKey []string, body []byte) error {
	if err := p.prod.PublishWithContext(
		ctx,
		body,
		routingKey,
		rabbitmq.WithPublishOptionsContentType("application/json"),
		rabbitmq.WithPublishOptionsMandatory,
		rabbitmq.WithPublishOptionsPersistentDelivery,
		rabbitmq.WithPublishOptionsExchange(messaging.ExchangeName),
	); err != nil {
		p.log.Error().Ctx(ctx).Err(err).Strs("routing_key", routingKey).Msg("failed to publish message")
		return err
	}
	p.log.Debug().Ctx(ctx).Strs("routing_key", routingKey).Msg("message published")
	return nil
}

func (p *Producer) CitiesChanged(ctx context.Context, action, city string, cities []string) error {
	event := messaging.CitiesChangedEvent{
		ID:     uuid.NewString(),
		Action: action,
		City:   city,
		Cities: cities,
		At:     p.now().UTC(),
	}

	body, err := json.Marshal(event)
	if err != nil {
		p.log.Error().Ctx(ctx).Err(err).Msg("failed to marshal cities event")
		return err
	}

	return p.Publish(ctx, []string{messaging.CitiesRoutingKey}, body)
}

// Noop stands in for Producer when messaging is disabled.
type Noop struct{}

func (Noop) CitiesChanged(context.Context, string, string, []string) error { return nil }
