package handler

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"profilesync/config"
	deliverycontext "profilesync/internal/delivery/context"
	"profilesync/internal/domain/constants"
	"profilesync/internal/domain/entity"
	domainerrors "profilesync/internal/domain/errors"
	"profilesync/internal/domain/service"
	"profilesync/internal/errors"
	mockusecase "profilesync/internal/mocks/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newPushHandler(t *testing.T) (*PushHandler, *mockusecase.MockSyncUsecase) {
	t.Helper()

	syncUC := mockusecase.NewMockSyncUsecase(t)
	cfg := &config.Config{PubSub: &config.PubSubConfig{Provider: constants.PubSubProviderNone}}
	h := NewPushHandler(PushHandlerParams{
		Config: cfg,
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
		SyncUC: syncUC,
	})

	return h, syncUC
}

func pushBody(t *testing.T, event any, attributes map[string]string) string {
	t.Helper()

	data, err := json.Marshal(event)
	require.NoError(t, err)

	var msg PubSubMessage
	msg.Message.Data = base64.StdEncoding.EncodeToString(data)
	msg.Message.MessageID = "msg-1"
	msg.Message.Attributes = attributes
	msg.Subscription = "projects/demo/subscriptions/sync-requests"

	body, err := json.Marshal(msg)
	require.NoError(t, err)

	return string(body)
}

func push(t *testing.T, h *PushHandler, body string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, "/push", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := echo.New().NewContext(req, rec)

	require.NoError(t, h.HandlePush(c))

	return rec
}

func TestPushHandler_HandlePush(t *testing.T) {
	userID := uuid.New()
	event := service.SyncRequestedEvent{
		UserID:    userID.String(),
		Selection: entity.SyncSelection{GitHub: []string{entity.SectionRepositories}},
	}

	tests := []struct {
		name       string
		setup      func(m *mockusecase.MockSyncUsecase)
		wantStatus int
	}{
		{
			name: "successful sync is acknowledged",
			setup: func(m *mockusecase.MockSyncUsecase) {
				m.EXPECT().SynchronizeData(mock.Anything, userID, event.Selection).
					Return(&entity.SyncResult{Success: true, SyncedFields: []string{"name"}}, nil).Once()
			},
			wantStatus: http.StatusOK,
		},
		{
			name: "rate limited provider is retried",
			setup: func(m *mockusecase.MockSyncUsecase) {
				m.EXPECT().SynchronizeData(mock.Anything, userID, event.Selection).
					Return(&entity.SyncResult{Failure: &entity.SyncFailure{
						Provider: entity.ProviderGitHub,
						Code:     domainerrors.ErrRateLimitExceeded.ErrorCode(),
						Message:  "slow down",
					}}, nil).Once()
			},
			wantStatus: http.StatusServiceUnavailable,
		},
		{
			name: "disconnected provider is dropped",
			setup: func(m *mockusecase.MockSyncUsecase) {
				m.EXPECT().SynchronizeData(mock.Anything, userID, event.Selection).
					Return(&entity.SyncResult{Failure: &entity.SyncFailure{
						Provider: entity.ProviderLinkedIn,
						Code:     domainerrors.ErrNotAuthenticated.ErrorCode(),
						Message:  "not connected",
					}}, nil).Once()
			},
			wantStatus: http.StatusOK,
		},
		{
			name: "invalid selection is dropped",
			setup: func(m *mockusecase.MockSyncUsecase) {
				m.EXPECT().SynchronizeData(mock.Anything, userID, event.Selection).
					Return(nil, domainerrors.ErrValidationFailed.WithDetails("unknown section")).Once()
			},
			wantStatus: http.StatusOK,
		},
		{
			name: "storage failure is retried",
			setup: func(m *mockusecase.MockSyncUsecase) {
				m.EXPECT().SynchronizeData(mock.Anything, userID, event.Selection).
					Return(nil, domainerrors.NewStorageError(errors.New("disk full"), "save snapshot")).Once()
			},
			wantStatus: http.StatusServiceUnavailable,
		},
		{
			name: "storage failure reported in the result is retried",
			setup: func(m *mockusecase.MockSyncUsecase) {
				m.EXPECT().SynchronizeData(mock.Anything, userID, event.Selection).
					Return(&entity.SyncResult{Failure: &entity.SyncFailure{
						Provider: entity.ProviderGitHub,
						Code:     domainerrors.CodeStorageFailed,
						Message:  "cache unavailable",
					}}, nil).Once()
			},
			wantStatus: http.StatusServiceUnavailable,
		},
		{
			name: "unexpected error is retried",
			setup: func(m *mockusecase.MockSyncUsecase) {
				m.EXPECT().SynchronizeData(mock.Anything, userID, event.Selection).
					Return(nil, context.Canceled).Once()
			},
			wantStatus: http.StatusServiceUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, syncUC := newPushHandler(t)
			tt.setup(syncUC)

			rec := push(t, h, pushBody(t, event, nil))
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestPushHandler_MalformedMessages(t *testing.T) {
	t.Run("invalid json", func(t *testing.T) {
		h, _ := newPushHandler(t)

		rec := push(t, h, `{"message":`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("invalid base64", func(t *testing.T) {
		h, _ := newPushHandler(t)

		rec := push(t, h, `{"message":{"data":"%%%"}}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("invalid user id is acknowledged without syncing", func(t *testing.T) {
		h, _ := newPushHandler(t)

		rec := push(t, h, pushBody(t, service.SyncRequestedEvent{UserID: "not-a-uuid"}, nil))
		assert.Equal(t, http.StatusOK, rec.Code)
	})
}

func TestPushHandler_PropagatesRequestID(t *testing.T) {
	h, syncUC := newPushHandler(t)
	userID := uuid.New()

	var gotRequestID string
	syncUC.EXPECT().SynchronizeData(mock.Anything, userID, entity.SyncSelection{}).
		Run(func(ctx context.Context, _ uuid.UUID, _ entity.SyncSelection) {
			gotRequestID = deliverycontext.GetRequestIDFromContext(ctx)
		}).
		Return(&entity.SyncResult{Success: true}, nil).Once()

	event := service.SyncRequestedEvent{UserID: userID.String(), RequestID: "from-event"}
	rec := push(t, h, pushBody(t, event, map[string]string{"request_id": "from-attributes"}))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "from-attributes", gotRequestID)
}

func TestPushHandler_VerifiesPushAuth(t *testing.T) {
	h, _ := newPushHandler(t)
	h.verifyPushAuth = true
	h.verify = func(*http.Request) error { return errors.New("bad token") }

	rec := push(t, h, pushBody(t, service.SyncRequestedEvent{UserID: uuid.NewString()}, nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestVerifyPubSubToken_RejectsMalformedHeaders(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/push", nil)
	require.Error(t, verifyPubSubToken(req))

	req.Header.Set(echo.HeaderAuthorization, "Basic abc")
	require.Error(t, verifyPubSubToken(req))
}
