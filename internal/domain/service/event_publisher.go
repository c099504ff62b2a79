package service

import (
	"context"
	"time"
)

// TapEvent is the message published for every confirmed tap, for downstream
// consumers such as reporting pipelines.
type TapEvent struct {
	RequestID string    `json:"request_id,omitempty"` // For distributed tracing
	RecordID  string    `json:"record_id"`
	SubjectID string    `json:"subject_id"`
	Venue     string    `json:"venue"`
	TUPTID    string    `json:"tuptId"`
	TapStatus string    `json:"tapStatus,omitempty"`
	TaggedAt  time.Time `json:"taggedAt"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishTapEvent publishes a confirmed tap for async processing
	PublishTapEvent(ctx context.Context, event *TapEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
