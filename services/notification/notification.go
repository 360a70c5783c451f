package notification

import (
	"context"
	"fmt"

	"firebase.google.com/go/v4/messaging"
	"go.uber.org/zap"
)

// FCMNotificationService pushes to the staff device tokens configured for
// the company. Delivery failures for individual tokens are logged, not fatal.
type FCMNotificationService struct {
	Client      *messaging.Client
	StaffTokens []string
	Logger      *zap.Logger
}

// NotifyStaff sends the notification to every configured staff device.
func (s *FCMNotificationService) NotifyStaff(ctx context.Context, title, body string, data map[string]string) error {
	if s.Client == nil || len(s.StaffTokens) == 0 {
		s.Logger.Debug("notification: no FCM client or staff tokens configured, skipping push")
		return nil
	}

	var failed int
	for _, token := range s.StaffTokens {
		msg := &messaging.Message{
			Token: token,
			Notification: &messaging.Notification{
				Title: title,
				Body:  body,
			},
			Data: data,
		}
		if _, err := s.Client.Send(ctx, msg); err != nil {
			failed++
			s.Logger.Warn("notification: failed to push to staff device",
				zap.String("token", token), zap.Error(err))
		}
	}
	if failed == len(s.StaffTokens) {
		return fmt.Errorf("notification: all %d staff pushes failed", failed)
	}
	return nil
}
