package slack

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/diegoclair/slack-send-later/internal/domain/contract"
	"github.com/slack-go/slack"
)

// Sender posts messages with the token of the user who scheduled them, so the
// message shows up as written by that user.
type Sender struct {
	apiURL     string
	httpClient *http.Client
}

var _ contract.Sender = (*Sender)(nil)

// NewSender builds a sender. An empty apiURL keeps the Slack default.
func NewSender(apiURL string, httpClient *http.Client) *Sender {
	if apiURL != "" && !strings.HasSuffix(apiURL, "/") {
		apiURL += "/"
	}
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Sender{apiURL: apiURL, httpClient: httpClient}
}

func (s *Sender) client(accessToken string) *slack.Client {
	opts := []slack.Option{slack.OptionHTTPClient(s.httpClient)}
	if s.apiURL != "" {
		opts = append(opts, slack.OptionAPIURL(s.apiURL))
	}
	return slack.New(accessToken, opts...)
}

func (s *Sender) Send(ctx context.Context, accessToken, channelID, text string) error {
	_, _, err := s.client(accessToken).PostMessageContext(
		ctx,
		channelID,
		slack.MsgOptionText(text, false),
		slack.MsgOptionAsUser(true),
		slack.MsgOptionLinkNames(true),
	)
	if err != nil {
		return fmt.Errorf("failed to post message to %s: %w", channelID, err)
	}
	return nil
}
