package notification

import "context"

// Notifier delivers rendered messages to the hotel's chat channel.
type Notifier interface {
	SendMessage(ctx context.Context, chatID, text string) error
}
