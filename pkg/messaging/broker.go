package messaging

import "context"

// Broker publishes care events to downstream consumers.
type Broker interface {
	Publish(ctx context.Context, channel string, payload []byte) error
	Close() error
}
