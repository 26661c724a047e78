package pubsub

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"time"

	"profilesync/internal/errors"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const localPushTimeout = 30 * time.Second

// PushMessage is the envelope Google Pub/Sub uses when pushing to HTTP
// endpoints. The local transport sends the same shape.
type PushMessage struct {
	Message struct {
		Data        string            `json:"data"`
		Attributes  map[string]string `json:"attributes,omitempty"`
		MessageID   string            `json:"messageId"`
		PublishTime string            `json:"publishTime"`
	} `json:"message"`
	Subscription string `json:"subscription"`
}

// localHTTPTransport simulates push subscriptions for development by posting
// each message straight to its destination URL.
type localHTTPTransport struct {
	httpClient *http.Client
	now        func() time.Time
}

func newLocalHTTPTransport() *localHTTPTransport {
	return &localHTTPTransport{
		httpClient: &http.Client{Timeout: localPushTimeout},
		now:        time.Now,
	}
}

func (t *localHTTPTransport) send(ctx context.Context, msg *message) (string, error) {
	var push PushMessage
	push.Subscription = "projects/local/subscriptions/" + msg.attributes["event_type"]
	push.Message.Data = base64.StdEncoding.EncodeToString(msg.data)
	push.Message.Attributes = msg.attributes
	push.Message.MessageID = uuid.NewString()
	push.Message.PublishTime = t.now().UTC().Format(time.RFC3339)

	body, err := json.Marshal(push)
	if err != nil {
		return "", errors.WithStack(err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, msg.destination, bytes.NewReader(body))
	if err != nil {
		return "", errors.WithStack(err)
	}
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if requestID := msg.attributes["request_id"]; requestID != "" {
		req.Header.Set(echo.HeaderXRequestID, requestID)
	}

	resp, err := t.httpClient.Do(req)
	if err != nil {
		return "", errors.WithStack(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", errors.Errorf("push endpoint returned non-success status: %d", resp.StatusCode)
	}

	return push.Message.MessageID, nil
}

func (t *localHTTPTransport) close() error {
	t.httpClient.CloseIdleConnections()

	return nil
}
