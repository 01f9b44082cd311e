package test

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
	"github.com/whestprvcj-prog/gest-o-de-equipes-frotas/internal/handlers"
	"github.com/whestprvcj-prog/gest-o-de-equipes-frotas/mocks"
	"go.uber.org/mock/gomock"
)

const SigningSecret = "test-signing-secret"

type ServiceMocks struct {
	TeamServiceMock *mocks.MockTeamService
	RosterMock      *mocks.MockRoster
	StopBookMock    *mocks.MockStopBook
}

func newServiceMocks(ctrl *gomock.Controller) ServiceMocks {
	return ServiceMocks{
		TeamServiceMock: mocks.NewMockTeamService(ctrl),
		RosterMock:      mocks.NewMockRoster(ctrl),
		StopBookMock:    mocks.NewMockStopBook(ctrl),
	}
}

func GetHandlerTest(t *testing.T) (m ServiceMocks, handler *handlers.SlackHandler, ctrl *gomock.Controller) {
	t.Helper()

	ctrl = gomock.NewController(t)
	m = newServiceMocks(ctrl)
	handler = handlers.NewSlackHandler(m.TeamServiceMock, m.RosterMock, SigningSecret, zerolog.Nop())

	return
}

// GetRouterTest builds the full echo router over mocks. The voice bridge is
// left unconfigured.
func GetRouterTest(t *testing.T) (m ServiceMocks, e *echo.Echo, ctrl *gomock.Controller) {
	t.Helper()

	ctrl = gomock.NewController(t)
	m = newServiceMocks(ctrl)
	e = handlers.NewRouter(handlers.Handlers{
		Team:  handlers.NewTeamHandler(m.TeamServiceMock),
		Voice: handlers.NewVoiceHandler(nil, m.StopBookMock, zerolog.Nop()),
		Print: handlers.NewPrintHandler(m.TeamServiceMock, time.UTC),
		Slack: handlers.NewSlackHandler(m.TeamServiceMock, m.RosterMock, SigningSecret, zerolog.Nop()),
	}, zerolog.Nop())

	return
}

// CreateSlackRequest creates a properly signed Slack slash command request
func CreateSlackRequest(t *testing.T, command, text, channelID, userID, signingSecret string) *http.Request {
	t.Helper()

	form := url.Values{
		"token":        {"test-token"},
		"team_id":      {"T123456789"},
		"team_domain":  {"test-team"},
		"channel_id":   {channelID},
		"channel_name": {"frotas"},
		"user_id":      {userID},
		"user_name":    {"test-user"},
		"command":      {command},
		"text":         {text},
		"response_url": {"https://hooks.slack.com/commands/test"},
		"trigger_id":   {"test-trigger-id"},
	}

	body := form.Encode()

	req, err := http.NewRequest(http.MethodPost, "/slack/commands", strings.NewReader(body))
	require.NoError(t, err)

	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	timestamp := strconv.FormatInt(time.Now().Unix(), 10)
	req.Header.Set("X-Slack-Request-Timestamp", timestamp)
	req.Header.Set("X-Slack-Signature", generateSlackSignature(signingSecret, timestamp, body))

	return req
}

// CreateJSONRequest builds an API request with a JSON body
func CreateJSONRequest(t *testing.T, method, target, body string) *http.Request {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
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
