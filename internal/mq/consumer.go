package mq

import (
	"context"
	"encoding/json"
	"fmt"

	"sitepulse/internal/config"

	"github.com/apache/rocketmq-client-go/v2"
	"github.com/apache/rocketmq-client-go/v2/consumer"
	"github.com/apache/rocketmq-client-go/v2/primitive"
	"github.com/rs/zerolog/log"
)

// VisitHandler records one visit message. Returning an error asks the broker to redeliver.
type VisitHandler func(ctx context.Context, msg *VisitMessage) error

// Consumer consumes visit messages from RocketMQ
type Consumer struct {
	client  rocketmq.PushConsumer
	topic   string
	group   string
	handler VisitHandler
	started bool
}

// NewConsumer creates a new RocketMQ push consumer
func NewConsumer(cfg *config.RocketMQConfig, handler VisitHandler) (*Consumer, error) {
	c, err := rocketmq.NewPushConsumer(
		consumer.WithNameServer([]string{cfg.NameServer}),
		consumer.WithConsumerModel(consumer.Clustering),
		consumer.WithGroupName(cfg.Group),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create RocketMQ consumer: %w", err)
	}

	return &Consumer{
		client:  c,
		topic:   cfg.Topic,
		group:   cfg.Group,
		handler: handler,
	}, nil
}

// Subscribe subscribes to visit messages on the topic and starts consuming
func (c *Consumer) Subscribe() error {
	if c.started {
		return nil
	}

	selector := consumer.MessageSelector{Type: consumer.TAG, Expression: VisitTag}
	if err := c.client.Subscribe(c.topic, selector, c.consume); err != nil {
		return fmt.Errorf("failed to subscribe to topic: %w", err)
	}

	if err := c.client.Start(); err != nil {
		return fmt.Errorf("failed to start consumer: %w", err)
	}

	c.started = true
	log.Info().Str("topic", c.topic).Str("group", c.group).Msg("RocketMQ consumer started")

	return nil
}

func (c *Consumer) consume(ctx context.Context, msgs ...*primitive.MessageExt) (consumer.ConsumeResult, error) {
	for _, msg := range msgs {
		var visit VisitMessage
		if err := json.Unmarshal(msg.Body, &visit); err != nil {
			// Redelivery cannot fix a malformed body.
			log.Error().Err(err).Str("msg_id", msg.MsgId).Msg("Dropping malformed visit message")
			continue
		}

		log.Debug().
			Str("msg_id", msg.MsgId).
			Str("public_id", visit.PublicID).
			Msg("Processing visit")

		if c.handler != nil {
			if err := c.handler(ctx, &visit); err != nil {
				log.Error().Err(err).Str("msg_id", msg.MsgId).Msg("Handler failed")
				return consumer.ConsumeRetryLater, err
			}
		}
	}
	return consumer.ConsumeSuccess, nil
}

// Close shuts the consumer down
func (c *Consumer) Close() error {
	if c != nil && c.client != nil {
		return c.client.Shutdown()
	}
	return nil
}
