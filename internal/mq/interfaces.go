package mq

import (
	"context"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/mq_mock.go -package=mocks -exclude_interfaces=ConsumerInterface

// ProducerInterface defines the interface for message production
type ProducerInterface interface {
	SendVisit(ctx context.Context, msg *VisitMessage) error
	Close() error
}

// ConsumerInterface defines the interface for message consumption
type ConsumerInterface interface {
	Subscribe() error
	Close() error
}

var (
	_ ProducerInterface = (*Producer)(nil)
	_ ConsumerInterface = (*Consumer)(nil)
)
