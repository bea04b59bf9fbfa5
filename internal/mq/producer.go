package mq

import (
	"context"
	"encoding/json"
	"fmt"

	"sitepulse/internal/config"

	"github.com/apache/rocketmq-client-go/v2"
	"github.com/apache/rocketmq-client-go/v2/primitive"
	"github.com/apache/rocketmq-client-go/v2/producer"
	"github.com/rs/zerolog/log"
)

// Producer publishes visit messages to RocketMQ
type Producer struct {
	client rocketmq.Producer
	topic  string
}

// NewProducer creates and starts a RocketMQ producer
func NewProducer(cfg *config.RocketMQConfig) (*Producer, error) {
	p, err := rocketmq.NewProducer(
		producer.WithNameServer([]string{cfg.NameServer}),
		producer.WithRetry(3),
		producer.WithGroupName(cfg.Group+"_producer"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create RocketMQ producer: %w", err)
	}

	if err := p.Start(); err != nil {
		return nil, fmt.Errorf("failed to start RocketMQ producer: %w", err)
	}

	log.Info().Str("topic", cfg.Topic).Msg("RocketMQ producer started")

	return &Producer{
		client: p,
		topic:  cfg.Topic,
	}, nil
}

// SendVisit publishes a visit message keyed by its site public id
func (p *Producer) SendVisit(ctx context.Context, msg *VisitMessage) error {
	if p == nil {
		return nil
	}

	m, err := p.newMessage(msg)
	if err != nil {
		return err
	}

	result, err := p.client.SendSync(ctx, m)
	if err != nil {
		return fmt.Errorf("failed to send message: %w", err)
	}

	log.Debug().
		Str("msg_id", result.MsgID).
		Str("public_id", msg.PublicID).
		Msg("Visit sent to RocketMQ")

	return nil
}

func (p *Producer) newMessage(msg *VisitMessage) (*primitive.Message, error) {
	body, err := json.Marshal(msg)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal message: %w", err)
	}

	m := primitive.NewMessage(p.topic, body)
	m.WithTag(VisitTag)
	m.WithKeys([]string{msg.PublicID})
	return m, nil
}

// Close shuts the producer down
func (p *Producer) Close() error {
	if p != nil && p.client != nil {
		return p.client.Shutdown()
	}
	return nil
}
