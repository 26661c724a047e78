package pubsub

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"profilesync/config"
	"profilesync/internal/domain/constants"
	"profilesync/internal/domain/entity"
	domainerrors "profilesync/internal/domain/errors"
	"profilesync/internal/domain/service"
	"profilesync/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type pushRecorder struct {
	messages   []PushMessage
	requestIDs []string
	status     int
}

func newPushServer(t *testing.T, rec *pushRecorder) *httptest.Server {
	t.Helper()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var msg PushMessage
		if err := json.NewDecoder(r.Body).Decode(&msg); err != nil {
			w.WriteHeader(http.StatusBadRequest)

			return
		}
		rec.messages = append(rec.messages, msg)
		rec.requestIDs = append(rec.requestIDs, r.Header.Get("X-Request-Id"))
		if rec.status != 0 {
			w.WriteHeader(rec.status)

			return
		}
		w.WriteHeader(http.StatusNoContent)
	}))
	t.Cleanup(server.Close)

	return server
}

func decodeData[T any](t *testing.T, msg PushMessage) T {
	t.Helper()

	data, err := base64.StdEncoding.DecodeString(msg.Message.Data)
	require.NoError(t, err)

	var out T
	require.NoError(t, json.Unmarshal(data, &out))

	return out
}

func TestEventPublisher_PublishProfileSynced(t *testing.T) {
	rec := &pushRecorder{}
	server := newPushServer(t, rec)

	publisher := newEventPublisher(newLocalHTTPTransport(), map[string]string{
		eventProfileSynced: server.URL,
	}, discardLogger())

	event := &service.ProfileSyncedEvent{
		RequestID:       "req-1",
		UserID:          "user-1",
		SyncedAt:        time.Now().UTC(),
		SyncedFields:    []string{"name"},
		ConflictFields:  []string{"location"},
		UnresolvedCount: 1,
	}
	require.NoError(t, publisher.PublishProfileSynced(context.Background(), event))

	require.Len(t, rec.messages, 1)
	msg := rec.messages[0]
	assert.Equal(t, "req-1", rec.requestIDs[0])
	assert.Equal(t, "profile.synced", msg.Message.Attributes["event_type"])
	assert.Equal(t, "1", msg.Message.Attributes["unresolved_count"])
	assert.Equal(t, "user-1", msg.Message.Attributes["user_id"])
	assert.NotEmpty(t, msg.Message.MessageID)
	assert.Equal(t, "projects/local/subscriptions/profile.synced", msg.Subscription)

	decoded := decodeData[service.ProfileSyncedEvent](t, msg)
	assert.Equal(t, []string{"location"}, decoded.ConflictFields)
}

func TestEventPublisher_PublishSyncRequested(t *testing.T) {
	rec := &pushRecorder{}
	server := newPushServer(t, rec)

	publisher := newEventPublisher(newLocalHTTPTransport(), map[string]string{
		eventSyncRequested: server.URL,
	}, discardLogger())

	event := &service.SyncRequestedEvent{
		UserID:    "user-2",
		Selection: entity.SyncSelection{GitHub: []string{entity.SectionRepositories}},
	}
	require.NoError(t, publisher.PublishSyncRequested(context.Background(), event))

	require.Len(t, rec.messages, 1)
	msg := rec.messages[0]
	assert.Empty(t, rec.requestIDs[0])
	assert.Equal(t, "sync.requested", msg.Message.Attributes["event_type"])
	_, hasRequestID := msg.Message.Attributes["request_id"]
	assert.False(t, hasRequestID)

	decoded := decodeData[service.SyncRequestedEvent](t, msg)
	assert.Equal(t, "user-2", decoded.UserID)
	assert.Equal(t, []string{entity.SectionRepositories}, decoded.Selection.GitHub)
}

func TestEventPublisher_MissingRoutes(t *testing.T) {
	publisher := newEventPublisher(nil, nil, discardLogger())

	err := publisher.PublishProfileSynced(context.Background(), &service.ProfileSyncedEvent{UserID: "u"})
	assert.NoError(t, err)

	err = publisher.PublishSyncRequested(context.Background(), &service.SyncRequestedEvent{UserID: "u"})
	assert.ErrorIs(t, err, domainerrors.ErrBackgroundSyncUnavailable)

	assert.NoError(t, publisher.Close())
}

func TestEventPublisher_NonSuccessStatus(t *testing.T) {
	rec := &pushRecorder{status: http.StatusServiceUnavailable}
	server := newPushServer(t, rec)

	publisher := newEventPublisher(newLocalHTTPTransport(), map[string]string{
		eventProfileSynced: server.URL,
		eventSyncRequested: server.URL,
	}, discardLogger())

	err := publisher.PublishProfileSynced(context.Background(), &service.ProfileSyncedEvent{UserID: "u"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "publish profile.synced")

	err = publisher.PublishSyncRequested(context.Background(), &service.SyncRequestedEvent{UserID: "u"})
	require.Error(t, err)
	_, isAppError := errors.AsType[domainerrors.AppError](err)
	assert.False(t, isAppError)
}

func TestNewEventPublisher(t *testing.T) {
	tests := []struct {
		name    string
		cfg     *config.PubSubConfig
		wantErr string
	}{
		{name: "nil config", cfg: nil},
		{name: "none", cfg: &config.PubSubConfig{Provider: constants.PubSubProviderNone}},
		{
			name: "local",
			cfg: &config.PubSubConfig{
				Provider:          constants.PubSubProviderLocal,
				LocalSyncEndpoint: "http://localhost:8081/push",
			},
		},
		{
			name:    "google without project",
			cfg:     &config.PubSubConfig{Provider: constants.PubSubProviderGoogle, TopicID: "t"},
			wantErr: "project ID is required",
		},
		{
			name:    "google without topics",
			cfg:     &config.PubSubConfig{Provider: constants.PubSubProviderGoogle, ProjectID: "p"},
			wantErr: "at least one topic ID",
		},
		{
			name:    "unknown provider",
			cfg:     &config.PubSubConfig{Provider: "kafka"},
			wantErr: "unknown pubsub provider",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lc := fxtest.NewLifecycle(t)
			publisher, err := NewEventPublisher(PublisherParams{
				Lc:     lc,
				Ctx:    context.Background(),
				Config: &config.Config{PubSub: tt.cfg},
				Logger: discardLogger(),
			})

			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)

				return
			}

			require.NoError(t, err)
			assert.NotNil(t, publisher)
			lc.RequireStart().RequireStop()
		})
	}
}
