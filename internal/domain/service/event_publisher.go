package service

import (
	"context"
	"time"
)

// StoreCreatedEvent is published once a store and its owner link are committed.
type StoreCreatedEvent struct {
	RequestID          string    `json:"request_id,omitempty"` // For distributed tracing
	StoreID            string    `json:"store_id"`
	StoreName          string    `json:"store_name"`
	RegistrationNumber string    `json:"registration_number"`
	Category           string    `json:"category"`
	OwnerID            string    `json:"owner_id"`
	OwnerEmail         string    `json:"owner_email"`
	CreatedAt          time.Time `json:"created_at"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishStoreCreated publishes a store provisioning event.
	PublishStoreCreated(ctx context.Context, event *StoreCreatedEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
