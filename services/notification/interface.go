package notification

import "context"

// NotificationService delivers push notifications to staff devices.
type NotificationService interface {
	NotifyStaff(ctx context.Context, title, body string, data map[string]string) error
}
