// Package pubsub publishes domain events to Google Pub/Sub, or to local HTTP
// endpoints during development.
package pubsub

import (
	"context"
	"log/slog"

	"profilesync/config"
	"profilesync/internal/domain/constants"
	"profilesync/internal/domain/service"
	"profilesync/internal/errors"

	"go.uber.org/fx"
)

// PublisherParams holds dependencies for EventPublisher, injected by Fx
type PublisherParams struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewEventPublisher creates an EventPublisher based on configuration
func NewEventPublisher(params PublisherParams) (service.EventPublisher, error) {
	cfg := params.Config.PubSub
	logger := params.Logger

	if cfg == nil || cfg.Provider == "" || cfg.Provider == constants.PubSubProviderNone {
		logger.Info("PubSub not configured, events are not published")

		return newEventPublisher(nil, nil, logger), nil
	}

	var (
		t      transport
		routes map[string]string
	)

	switch cfg.Provider {
	case constants.PubSubProviderLocal:
		routes = map[string]string{
			eventProfileSynced: cfg.LocalEndpoint,
			eventSyncRequested: cfg.LocalSyncEndpoint,
		}
		logger.Info("Using local HTTP transport for Pub/Sub",
			slog.String("events_endpoint", cfg.LocalEndpoint),
			slog.String("sync_endpoint", cfg.LocalSyncEndpoint),
		)
		t = newLocalHTTPTransport()

	case constants.PubSubProviderGoogle:
		if cfg.ProjectID == "" {
			return nil, errors.New("project ID is required for google provider")
		}
		routes = map[string]string{
			eventProfileSynced: cfg.TopicID,
			eventSyncRequested: cfg.SyncTopicID,
		}
		topics := make([]string, 0, len(routes))
		for _, topicID := range routes {
			if topicID != "" {
				topics = append(topics, topicID)
			}
		}
		if len(topics) == 0 {
			return nil, errors.New("at least one topic ID is required for google provider")
		}

		gt, err := newGoogleTransport(params.Ctx, cfg.ProjectID, topics...)
		if err != nil {
			return nil, err
		}
		logger.Info("Using Google Pub/Sub transport",
			slog.String("project_id", cfg.ProjectID),
			slog.Any("topics", topics),
		)
		t = gt

	default:
		return nil, errors.Errorf("unknown pubsub provider: %s", cfg.Provider)
	}

	publisher := newEventPublisher(t, routes, logger)

	// Register lifecycle hook to close publisher on shutdown
	params.Lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			logger.Info("Closing EventPublisher")

			return publisher.Close()
		},
	})

	return publisher, nil
}
