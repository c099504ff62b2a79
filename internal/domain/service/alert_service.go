package service

import "context"

// AlertService defines the interface for pushing tap alerts to a subject's
// mobile device.
type AlertService interface {
	// SendAlert sends a push notification to a single device token.
	SendAlert(ctx context.Context, token, title, body string, data map[string]string) error
}
