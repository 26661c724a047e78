package pubsub

import (
	"context"
	"fmt"
	"sync"

	"profilesync/internal/errors"

	"cloud.google.com/go/pubsub/v2"
	pubsubpb "cloud.google.com/go/pubsub/v2/apiv1/pubsubpb"
)

// googleTransport publishes to Google Cloud Pub/Sub topics
type googleTransport struct {
	client *pubsub.Client

	mu         sync.Mutex
	publishers map[string]*pubsub.Publisher
}

// newGoogleTransport connects to projectID and checks that every topic exists.
func newGoogleTransport(ctx context.Context, projectID string, topicIDs ...string) (*googleTransport, error) {
	client, err := pubsub.NewClient(ctx, projectID)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	for _, topicID := range topicIDs {
		topicPath := fmt.Sprintf("projects/%s/topics/%s", projectID, topicID)
		if _, err := client.TopicAdminClient.GetTopic(ctx, &pubsubpb.GetTopicRequest{Topic: topicPath}); err != nil {
			_ = client.Close()

			return nil, errors.Wrapf(err, "failed to get topic %s", topicID)
		}
	}

	return &googleTransport{
		client:     client,
		publishers: make(map[string]*pubsub.Publisher),
	}, nil
}

func (t *googleTransport) publisher(topicID string) *pubsub.Publisher {
	t.mu.Lock()
	defer t.mu.Unlock()

	publisher, ok := t.publishers[topicID]
	if !ok {
		publisher = t.client.Publisher(topicID)
		t.publishers[topicID] = publisher
	}

	return publisher
}

func (t *googleTransport) send(ctx context.Context, msg *message) (string, error) {
	result := t.publisher(msg.destination).Publish(ctx, &pubsub.Message{
		Data:       msg.data,
		Attributes: msg.attributes,
	})

	serverID, err := result.Get(ctx)
	if err != nil {
		return "", errors.WithStack(err)
	}

	return serverID, nil
}

func (t *googleTransport) close() error {
	t.mu.Lock()
	for _, publisher := range t.publishers {
		publisher.Stop()
	}
	t.mu.Unlock()

	return errors.WithStack(t.client.Close())
}
