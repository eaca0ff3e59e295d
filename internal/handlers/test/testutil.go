package test

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/diegoclair/slack-send-later/internal/handlers"
	"github.com/diegoclair/slack-send-later/mocks"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const (
	SigningSecret     = "test-signing-secret"
	VerificationToken = "test-token"
	InstallURL        = "https://example.com/install"
)

type ServiceMocks struct {
	MessageServiceMock *mocks.MockMessageService
	DataManagerMock    *mocks.MockDataManager
}

func newMocks(t *testing.T) (ServiceMocks, *gomock.Controller) {
	t.Helper()

	ctrl := gomock.NewController(t)
	return ServiceMocks{
		MessageServiceMock: mocks.NewMockMessageService(ctrl),
		DataManagerMock:    mocks.NewMockDataManager(ctrl),
	}, ctrl
}

// GetHandlerTest builds a handler that verifies request signatures.
func GetHandlerTest(t *testing.T) (m ServiceMocks, handler *handlers.SlackHandler, ctrl *gomock.Controller) {
	t.Helper()

	m, ctrl = newMocks(t)
	handler = handlers.New(m.MessageServiceMock, handlers.Options{
		SigningSecret: SigningSecret,
		InstallURL:    InstallURL,
		Logger:        zerolog.Nop(),
	})

	return
}

// GetTokenHandlerTest builds a handler that only has the legacy verification token.
func GetTokenHandlerTest(t *testing.T) (m ServiceMocks, handler *handlers.SlackHandler, ctrl *gomock.Controller) {
	t.Helper()

	m, ctrl = newMocks(t)
	handler = handlers.New(m.MessageServiceMock, handlers.Options{
		VerificationToken: VerificationToken,
		InstallURL:        InstallURL,
		Logger:            zerolog.Nop(),
	})

	return
}

// CommandForm returns the form Slack posts for a slash command
func CommandForm(command, text string) url.Values {
	return url.Values{
		"token":        {VerificationToken},
		"team_id":      {"T123456789"},
		"team_domain":  {"test-team"},
		"channel_id":   {"C123456789"},
		"channel_name": {"general"},
		"user_id":      {"U123456789"},
		"user_name":    {"test-user"},
		"command":      {command},
		"text":         {text},
		"response_url": {"https://hooks.slack.com/commands/test"},
		"trigger_id":   {"test-trigger-id"},
	}
}

// ActionForm wraps an interactive message payload the way Slack posts it
func ActionForm(t *testing.T, callbackID, actionName string) url.Values {
	t.Helper()

	payload, err := json.Marshal(map[string]any{
		"type":         "interactive_message",
		"token":        VerificationToken,
		"callback_id":  callbackID,
		"team":         map[string]string{"id": "T123456789"},
		"user":         map[string]string{"id": "U123456789"},
		"channel":      map[string]string{"id": "C123456789"},
		"response_url": "https://hooks.slack.com/actions/test",
		"actions":      []map[string]string{{"name": actionName, "type": "button"}},
	})
	require.NoError(t, err)

	return url.Values{"payload": {string(payload)}}
}

// CreateSlackRequest creates a properly signed Slack request
func CreateSlackRequest(t *testing.T, path, contentType, body, signingSecret string) *http.Request {
	t.Helper()

	req, err := http.NewRequest(http.MethodPost, path, strings.NewReader(body))
	require.NoError(t, err)

	req.Header.Set("Content-Type", contentType)

	timestamp := strconv.FormatInt(time.Now().Unix(), 10)
	req.Header.Set("X-Slack-Request-Timestamp", timestamp)

	sig := generateSlackSignature(signingSecret, timestamp, body)
	req.Header.Set("X-Slack-Signature", sig)

	return req
}

func generateSlackSignature(signingSecret, timestamp, body string) string {
	baseString := fmt.Sprintf("v0:%s:%s", timestamp, body)
	h := hmac.New(sha256.New, []byte(signingSecret))
	h.Write([]byte(baseString))
	signature := hex.EncodeToString(h.Sum(nil))
	return fmt.Sprintf("v0=%s", signature)
}

func CreateTestRecorder() *httptest.ResponseRecorder {
	return httptest.NewRecorder()
}
