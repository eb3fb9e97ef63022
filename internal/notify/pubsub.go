package notify

import (
	"context"
	"fmt"

	"cloud.google.com/go/pubsub"
)

// PubSubProvider implements the Provider interface for Google Cloud Pub/Sub.
type PubSubProvider struct {
	Client *pubsub.Client
	Topic  *pubsub.Topic
}

// NewPubSubProvider creates a Pub/Sub client and a handle to the configured
// topic. It authenticates using Application Default Credentials and verifies
// the topic exists before returning.
func NewPubSubProvider(ctx context.Context, projectID, topicID string) (*PubSubProvider, error) {
	client, err := pubsub.NewClient(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to create pubsub client: %w", err)
	}

	topic := client.Topic(topicID)
	exists, err := topic.Exists(ctx)
	if err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to check for topic existence: %w", err)
	}
	if !exists {
		_ = client.Close()
		return nil, fmt.Errorf("pubsub topic %q does not exist in project %q", topicID, projectID)
	}

	return &PubSubProvider{Client: client, Topic: topic}, nil
}

// Publish sends a message carrying the cycle ID. The actual send happens
// asynchronously; the client batches and retries in the background.
func (p *PubSubProvider) Publish(ctx context.Context, cycleID string) error {
	p.Topic.Publish(ctx, &pubsub.Message{Data: []byte(cycleID)})
	return nil
}

// Close stops the topic's publish goroutines and closes the client.
func (p *PubSubProvider) Close() error {
	p.Topic.Stop()
	if err := p.Client.Close(); err != nil {
		return fmt.Errorf("failed to close pubsub client: %w", err)
	}
	return nil
}
