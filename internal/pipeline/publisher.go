package pipeline

import "context"

// Publisher hands encoded records to the message broker.
type Publisher interface {
	// Publish sends payload to topic under key. Delivery is at least once: the
	// same record may be published again on re-delivery of a notification,
	// and consumers deduplicate by key.
	Publish(ctx context.Context, topic string, key, payload []byte) error
}
