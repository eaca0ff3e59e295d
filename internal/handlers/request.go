package handlers

import (
	"bytes"
	"crypto/subtle"
	"encoding/json"
	"fmt"
	"io"
	"mime"
	"net/http"
	"net/url"

	"github.com/diegoclair/slack-send-later/internal/domain"
	"github.com/diegoclair/slack-send-later/internal/domain/entity"
	"github.com/slack-go/slack"
)

const (
	contentTypeForm = "application/x-www-form-urlencoded"
	contentTypeJSON = "application/json"

	maxBodyBytes = 1 << 20
)

// commandRequest is a slash command invocation, whichever encoding Slack used.
type commandRequest struct {
	Token       string `json:"token"`
	TeamID      string `json:"team_id"`
	TeamDomain  string `json:"team_domain"`
	ChannelID   string `json:"channel_id"`
	ChannelName string `json:"channel_name"`
	UserID      string `json:"user_id"`
	UserName    string `json:"user_name"`
	Command     string `json:"command"`
	Text        string `json:"text"`
	ResponseURL string `json:"response_url"`
}

func (c commandRequest) sendRequest() entity.SendRequest {
	return entity.SendRequest{
		TeamID:      c.TeamID,
		TeamDomain:  c.TeamDomain,
		ChannelID:   c.ChannelID,
		ChannelName: c.ChannelName,
		UserID:      c.UserID,
		UserName:    c.UserName,
		Command:     c.Command,
		Text:        c.Text,
		ResponseURL: c.ResponseURL,
	}
}

func validationErr(format string, args ...any) error {
	return fmt.Errorf("%w: %s", domain.ErrValidation, fmt.Sprintf(format, args...))
}

func readBody(w http.ResponseWriter, r *http.Request) ([]byte, error) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		return nil, validationErr("read body: %v", err)
	}
	r.Body = io.NopCloser(bytes.NewBuffer(body))
	return body, nil
}

func mediaType(r *http.Request) string {
	mt, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if err != nil {
		return ""
	}
	return mt
}

// parseCommandRequest resolves a form or JSON encoded slash command. Any other
// content type is rejected.
func parseCommandRequest(r *http.Request, body []byte) (commandRequest, error) {
	var req commandRequest

	switch mediaType(r) {
	case contentTypeForm:
		s, err := slack.SlashCommandParse(r)
		if err != nil {
			return req, validationErr("parse slash command: %v", err)
		}
		req = commandRequest{
			Token:       s.Token,
			TeamID:      s.TeamID,
			TeamDomain:  s.TeamDomain,
			ChannelID:   s.ChannelID,
			ChannelName: s.ChannelName,
			UserID:      s.UserID,
			UserName:    s.UserName,
			Command:     s.Command,
			Text:        s.Text,
			ResponseURL: s.ResponseURL,
		}
	case contentTypeJSON:
		if err := json.Unmarshal(body, &req); err != nil {
			return req, validationErr("decode json command: %v", err)
		}
	default:
		return req, validationErr("unsupported content type %q", r.Header.Get("Content-Type"))
	}

	if req.TeamID == "" || req.UserID == "" || req.ChannelID == "" || req.Command == "" {
		return req, validationErr("missing team, user, channel or command")
	}

	return req, nil
}

// parseInteraction reads the form-encoded "payload" field of an interactive action.
func parseInteraction(r *http.Request, body []byte) (slack.InteractionCallback, error) {
	var cb slack.InteractionCallback

	if mediaType(r) != contentTypeForm {
		return cb, validationErr("unsupported content type %q", r.Header.Get("Content-Type"))
	}
	values, err := url.ParseQuery(string(body))
	if err != nil {
		return cb, validationErr("parse form: %v", err)
	}
	payload := values.Get("payload")
	if payload == "" {
		return cb, validationErr("missing payload")
	}
	if err := json.Unmarshal([]byte(payload), &cb); err != nil {
		return cb, validationErr("decode payload: %v", err)
	}

	return cb, nil
}

// verifySignature checks the request signature when a signing secret is configured.
func (h *SlackHandler) verifySignature(r *http.Request, body []byte) error {
	if h.signingSecret == "" {
		return nil
	}

	verifier, err := slack.NewSecretsVerifier(r.Header, h.signingSecret)
	if err != nil {
		return validationErr("signature headers: %v", err)
	}
	if _, err := verifier.Write(body); err != nil {
		return validationErr("signature: %v", err)
	}
	if err := verifier.Ensure(); err != nil {
		return validationErr("signature: %v", err)
	}

	return nil
}

// verifyToken is the legacy check, used only when no signing secret is set.
func (h *SlackHandler) verifyToken(token string) error {
	if h.signingSecret != "" {
		return nil
	}
	if h.verificationToken == "" || subtle.ConstantTimeCompare([]byte(token), []byte(h.verificationToken)) != 1 {
		return validationErr("verification token mismatch")
	}
	return nil
}
