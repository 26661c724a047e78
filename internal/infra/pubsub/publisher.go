package pubsub

import (
	"context"
	"encoding/json"
	"log/slog"
	"strconv"

	domainerrors "profilesync/internal/domain/errors"
	"profilesync/internal/domain/service"
	"profilesync/internal/errors"
)

// Event types, also sent as the event_type attribute.
const (
	eventProfileSynced = "profile.synced"
	eventSyncRequested = "sync.requested"
)

// message is one encoded event on its way to a destination.
type message struct {
	destination string
	data        []byte
	attributes  map[string]string
}

// transport delivers encoded messages. The destination is a topic ID for
// Google Pub/Sub and a URL for the local HTTP transport.
type transport interface {
	send(ctx context.Context, msg *message) (string, error)
	close() error
}

// eventPublisher encodes domain events and routes them by type. An event
// type without a route is not published.
type eventPublisher struct {
	transport transport
	routes    map[string]string
	logger    *slog.Logger
}

func newEventPublisher(t transport, routes map[string]string, logger *slog.Logger) *eventPublisher {
	return &eventPublisher{transport: t, routes: routes, logger: logger}
}

// PublishProfileSynced announces a persisted snapshot. Without a route the
// event is dropped.
func (p *eventPublisher) PublishProfileSynced(ctx context.Context, event *service.ProfileSyncedEvent) error {
	attributes := map[string]string{
		"user_id":          event.UserID,
		"unresolved_count": strconv.Itoa(event.UnresolvedCount),
	}

	_, err := p.publish(ctx, eventProfileSynced, event, event.RequestID, attributes)
	if errors.Is(err, errNoRoute) {
		p.logger.Debug("[PubSub] No destination for profile synced events, skipping",
			slog.String("user_id", event.UserID),
		)

		return nil
	}

	return err
}

// PublishSyncRequested queues a background synchronization. Without a route
// background synchronization is unavailable.
func (p *eventPublisher) PublishSyncRequested(ctx context.Context, event *service.SyncRequestedEvent) error {
	_, err := p.publish(ctx, eventSyncRequested, event, event.RequestID, map[string]string{
		"user_id": event.UserID,
	})
	if errors.Is(err, errNoRoute) {
		return domainerrors.ErrBackgroundSyncUnavailable.WithDetails("no sync request destination configured")
	}

	return err
}

var errNoRoute = errors.New("no route for event type")

func (p *eventPublisher) publish(ctx context.Context, eventType string, event any, requestID string, attributes map[string]string) (string, error) {
	destination := p.routes[eventType]
	if destination == "" || p.transport == nil {
		return "", errNoRoute
	}

	data, err := json.Marshal(event)
	if err != nil {
		return "", errors.WithStack(err)
	}

	attributes["event_type"] = eventType
	if requestID != "" {
		attributes["request_id"] = requestID
	}

	id, err := p.transport.send(ctx, &message{destination: destination, data: data, attributes: attributes})
	if err != nil {
		return "", errors.Wrapf(err, "publish %s", eventType)
	}

	p.logger.Info("[PubSub] Event published",
		slog.String("event_type", eventType),
		slog.String("message_id", id),
		slog.String("user_id", attributes["user_id"]),
	)

	return id, nil
}

// Close releases transport resources
func (p *eventPublisher) Close() error {
	if p.transport == nil {
		return nil
	}

	return p.transport.close()
}
