package handler

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"profilesync/config"
	deliverycontext "profilesync/internal/delivery/context"
	"profilesync/internal/domain/constants"
	"profilesync/internal/domain/entity"
	domainerrors "profilesync/internal/domain/errors"
	"profilesync/internal/domain/service"
	"profilesync/internal/errors"
	"profilesync/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
	"google.golang.org/api/idtoken"
)

// PubSubMessage represents the structure of a Pub/Sub push message
type PubSubMessage struct {
	Message struct {
		Data        string            `json:"data"`
		Attributes  map[string]string `json:"attributes,omitempty"`
		MessageID   string            `json:"messageId"`
		PublishTime string            `json:"publishTime"`
	} `json:"message"`
	Subscription string `json:"subscription"`
}

// retryableError wraps an error to indicate it should trigger a Pub/Sub retry
type retryableError struct {
	err error
}

func (e *retryableError) Error() string {
	return fmt.Sprintf("retryable: %v", e.err)
}

func (e *retryableError) Unwrap() error {
	return e.err
}

// newRetryableError wraps an error as retryable
func newRetryableError(err error) error {
	return &retryableError{err: err}
}

// isRetryableError checks if an error is retryable
func isRetryableError(err error) bool {
	_, ok := errors.AsType[*retryableError](err)

	return ok
}

// retryableCodes are failure codes a later delivery may get past.
var retryableCodes = map[string]bool{
	domainerrors.ErrProviderAPI.ErrorCode():       true,
	domainerrors.ErrRateLimitExceeded.ErrorCode(): true,
	domainerrors.ErrInternalError.ErrorCode():     true,
	domainerrors.CodeStorageFailed:                true,
}

// PushHandler handles Pub/Sub push messages requesting background synchronization
type PushHandler struct {
	verifyPushAuth bool
	verify         func(*http.Request) error
	logger         *slog.Logger
	syncUC         usecase.SyncUsecase
}

// PushHandlerParams holds dependencies for the PushHandler
type PushHandlerParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
	SyncUC usecase.SyncUsecase
}

// NewPushHandler creates a new Pub/Sub push handler
func NewPushHandler(params PushHandlerParams) *PushHandler {
	// Determine if we need to verify push auth based on config
	verifyPushAuth := params.Config.PubSub != nil &&
		params.Config.PubSub.Provider == constants.PubSubProviderGoogle &&
		params.Config.Env.Env != constants.EnvDevelop

	return &PushHandler{
		verifyPushAuth: verifyPushAuth,
		verify:         verifyPubSubToken,
		logger:         params.Logger,
		syncUC:         params.SyncUC,
	}
}

// HandlePush handles incoming Pub/Sub push messages
func (h *PushHandler) HandlePush(c echo.Context) error {
	ctx := c.Request().Context()

	// Verify Pub/Sub token in production for Google provider
	if h.verifyPushAuth {
		if err := h.verify(c.Request()); err != nil {
			h.logger.Warn("[Worker] Invalid Pub/Sub token", slog.Any("error", err))

			return c.NoContent(http.StatusUnauthorized)
		}
	}

	// Parse Pub/Sub message
	var pushMsg PubSubMessage
	if err := c.Bind(&pushMsg); err != nil {
		h.logger.Error("[Worker] Failed to parse push message", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	// Decode base64 message data
	data, err := base64.StdEncoding.DecodeString(pushMsg.Message.Data)
	if err != nil {
		h.logger.Error("[Worker] Failed to decode message data", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	var event service.SyncRequestedEvent
	if err := json.Unmarshal(data, &event); err != nil {
		h.logger.Error("[Worker] Failed to parse sync request", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	userID, err := uuid.Parse(event.UserID)
	if err != nil || userID == uuid.Nil {
		// Redelivery cannot fix a bad user ID; acknowledge and drop it.
		h.logger.Error("[Worker] Invalid user ID in sync request",
			slog.String("user_id", event.UserID),
			slog.String("message_id", pushMsg.Message.MessageID),
		)

		return c.NoContent(http.StatusOK)
	}

	// Extract request_id for distributed tracing
	// Priority: message attributes > event field > existing context
	requestID := h.extractRequestID(ctx, &pushMsg, &event)
	reqLogger := h.logger.With(
		slog.String("request_id", requestID),
		slog.String("user_id", userID.String()),
	)
	ctx = deliverycontext.WithRequestID(ctx, requestID)
	ctx = deliverycontext.WithLogger(ctx, reqLogger)

	reqLogger.Info("[Worker] Processing sync request",
		slog.String("message_id", pushMsg.Message.MessageID),
	)

	result, err := h.processSync(ctx, userID, event.Selection)
	if err != nil {
		reqLogger.Error("[Worker] Failed to synchronize",
			slog.Any("error", err),
			slog.Bool("retryable", isRetryableError(err)),
		)
		// Return 503 for retryable errors to trigger Pub/Sub retry
		// Return 200 for non-retryable errors to prevent infinite retries
		if isRetryableError(err) {
			return c.NoContent(http.StatusServiceUnavailable)
		}

		return c.NoContent(http.StatusOK)
	}

	reqLogger.Info("[Worker] Sync request processed",
		slog.Int("synced_fields", len(result.SyncedFields)),
		slog.Int("conflicts", len(result.Conflicts)),
	)

	return c.NoContent(http.StatusOK)
}

// extractRequestID extracts request_id from message attributes, event, or generates a new one
func (h *PushHandler) extractRequestID(ctx context.Context, pushMsg *PubSubMessage, event *service.SyncRequestedEvent) string {
	if requestID, ok := pushMsg.Message.Attributes["request_id"]; ok && requestID != "" {
		return requestID
	}

	if event.RequestID != "" {
		return event.RequestID
	}

	// Set by RequestIDMiddleware from the X-Request-Id header
	if requestID := deliverycontext.GetRequestIDFromContext(ctx); requestID != "" {
		return requestID
	}

	return uuid.New().String()
}

// processSync runs one synchronization and classifies its failure.
func (h *PushHandler) processSync(ctx context.Context, userID uuid.UUID, selection entity.SyncSelection) (*entity.SyncResult, error) {
	result, err := h.syncUC.SynchronizeData(ctx, userID, selection)
	if err != nil {
		if appErr, ok := errors.AsType[domainerrors.AppError](err); ok && !retryableCodes[appErr.ErrorCode()] {
			return nil, err
		}

		return nil, newRetryableError(err)
	}

	if !result.Success && result.Failure != nil {
		failure := errors.Errorf("%s: %s (%s)", result.Failure.Provider, result.Failure.Message, result.Failure.Code)
		if retryableCodes[result.Failure.Code] {
			return nil, newRetryableError(failure)
		}

		return nil, failure
	}

	return result, nil
}

// verifyPubSubToken verifies the JWT token from Google Pub/Sub push requests
// Reference: https://cloud.google.com/pubsub/docs/push#authenticating_standard_push_requests
func verifyPubSubToken(req *http.Request) error {
	authHeader := req.Header.Get(echo.HeaderAuthorization)
	if authHeader == "" {
		return errors.New("missing authorization header")
	}

	token, found := strings.CutPrefix(authHeader, "Bearer ")
	if !found {
		return errors.New("invalid authorization header format")
	}

	// The audience is the URL of this endpoint
	scheme := "https"
	if req.TLS == nil {
		scheme = "http" // For local development
	}
	audience := fmt.Sprintf("%s://%s%s", scheme, req.Host, req.URL.Path)

	payload, err := idtoken.Validate(req.Context(), token, audience)
	if err != nil {
		return errors.Wrap(err, "failed to validate token")
	}

	if payload.Issuer != "accounts.google.com" && payload.Issuer != "https://accounts.google.com" {
		return errors.Errorf("invalid issuer: %s", payload.Issuer)
	}

	if emailVerified, ok := payload.Claims["email_verified"].(bool); ok && !emailVerified {
		return errors.New("email not verified")
	}

	return nil
}
