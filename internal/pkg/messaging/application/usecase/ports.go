package usecase

import "context"

// Publisher is the slice of the delivery fabric the pipeline needs: deliver a
// payload to every live connection on a user's channel. An empty channel is a
// no-op; the return value is the number of deliveries.
type Publisher interface {
	Publish(channelUserID string, payload []byte) int
}

// WordSource supplies the current blocked-word list for moderation.
type WordSource interface {
	Words(ctx context.Context) ([]string, error)
}
