package admin

import (
	"context"
	"fmt"

	"rentify/models"
)

// Notifications returns the full admin feed, oldest first.
func (s *DefaultAdminService) Notifications(ctx context.Context) ([]models.Notification, error) {
	return s.Repo.GetNotifications(ctx)
}

// MarkRead flips a single notification's read flag. The flip is one-way:
// a read notification never becomes unread again. Unknown ids are a no-op.
func (s *DefaultAdminService) MarkRead(ctx context.Context, notificationID string) error {
	err := s.Repo.MutateNotifications(ctx, func(notes []models.Notification) ([]models.Notification, error) {
		for i := range notes {
			if notes[i].ID == notificationID {
				notes[i].Read = true
			}
		}
		return notes, nil
	})
	if err != nil {
		return fmt.Errorf("mark read: %w", err)
	}
	return nil
}

// MarkAllRead marks the entire feed read. Calling it again is a no-op and
// never resurrects a read notification.
func (s *DefaultAdminService) MarkAllRead(ctx context.Context) error {
	err := s.Repo.MutateNotifications(ctx, func(notes []models.Notification) ([]models.Notification, error) {
		for i := range notes {
			notes[i].Read = true
		}
		return notes, nil
	})
	if err != nil {
		return fmt.Errorf("mark all read: %w", err)
	}
	return nil
}
