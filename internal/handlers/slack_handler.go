package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/diegoclair/slack-send-later/internal/domain"
	"github.com/diegoclair/slack-send-later/internal/domain/contract"
	"github.com/diegoclair/slack-send-later/internal/domain/entity"
	slackcmd "github.com/diegoclair/slack-send-later/internal/domain/slack"
	"github.com/rs/zerolog"
	"github.com/slack-go/slack"
	"github.com/slack-go/slack/slackevents"
)

const deleteActionName = "delete"

type Options struct {
	SigningSecret     string
	VerificationToken string
	InstallURL        string
	Logger            zerolog.Logger
}

type SlackHandler struct {
	messages          contract.MessageService
	signingSecret     string
	verificationToken string
	installURL        string
	log               zerolog.Logger
}

func New(messages contract.MessageService, opts Options) *SlackHandler {
	return &SlackHandler{
		messages:          messages,
		signingSecret:     opts.SigningSecret,
		verificationToken: opts.VerificationToken,
		installURL:        opts.InstallURL,
		log:               opts.Logger,
	}
}

func (h *SlackHandler) HandleSlashCommand(w http.ResponseWriter, r *http.Request) {
	body, err := readBody(w, r)
	if err != nil {
		h.rejectRequest(w, http.StatusBadRequest, err)
		return
	}

	if err := h.verifySignature(r, body); err != nil {
		h.rejectRequest(w, http.StatusUnauthorized, err)
		return
	}

	req, err := parseCommandRequest(r, body)
	if err != nil {
		h.rejectRequest(w, http.StatusBadRequest, err)
		return
	}

	if err := h.verifyToken(req.Token); err != nil {
		h.rejectRequest(w, http.StatusUnauthorized, err)
		return
	}

	cmd, err := slackcmd.ParseCommand(req.Command, req.Text)
	if err != nil {
		h.log.Warn().Err(err).Str("command", req.Command).Msg("unknown slash command")
		h.respond(w, http.StatusOK, ephemeral(domain.HelpText))
		return
	}

	h.respond(w, http.StatusOK, h.handleCommand(r.Context(), cmd, req))
}

func (h *SlackHandler) handleCommand(ctx context.Context, cmd *slackcmd.Command, req commandRequest) *slack.Msg {
	switch cmd.Type {
	case slackcmd.CmdSend:
		return h.handleSend(ctx, req)
	case slackcmd.CmdList:
		return h.handleList(ctx, req, cmd.Inline)
	case slackcmd.CmdDelete:
		return ephemeral(h.deleteMessage(ctx, req.TeamID, req.UserID, cmd.ID))
	default:
		return ephemeral(domain.HelpText)
	}
}

func (h *SlackHandler) handleSend(ctx context.Context, req commandRequest) *slack.Msg {
	msg, err := h.messages.Schedule(ctx, req.sendRequest())
	switch {
	case err == nil:
		resp := ephemeral(domain.MsgAck)
		resp.Attachments = []slack.Attachment{h.messageAttachment(msg, false)}
		return resp

	case errors.Is(err, domain.ErrNoDateFound):
		resp := ephemeral(domain.MsgNoDate)
		resp.Attachments = []slack.Attachment{{
			AuthorName: channelLabel(req.ChannelName),
			Text:       req.Text,
			MarkdownIn: []string{"text", "pretext"},
		}}
		return resp

	case errors.Is(err, domain.ErrEmptyMessage):
		return ephemeral(domain.MsgNoMessage + req.Text)

	case errors.Is(err, domain.ErrCredentialMissing):
		return ephemeral(fmt.Sprintf(domain.MsgMissingTokenTmpl, h.installURL))

	default:
		h.log.Error().Err(err).
			Str("team_id", req.TeamID).
			Str("user_id", req.UserID).
			Msg("failed to schedule message")
		return ephemeral(domain.MsgGenericError)
	}
}

func (h *SlackHandler) handleList(ctx context.Context, req commandRequest, inline bool) *slack.Msg {
	messages, err := h.messages.List(ctx, req.TeamID, req.UserID)
	if err != nil {
		h.log.Error().Err(err).
			Str("team_id", req.TeamID).
			Str("user_id", req.UserID).
			Msg("failed to list messages")
		return ephemeral(domain.MsgListFailed)
	}

	var resp *slack.Msg
	if len(messages) == 0 {
		resp = ephemeral(domain.MsgNoMessages)
	} else {
		resp = ephemeral(domain.MsgListHeader)
		for _, msg := range messages {
			resp.Attachments = append(resp.Attachments, h.messageAttachment(msg, true))
		}
	}

	if inline {
		resp.ResponseType = slack.ResponseTypeInChannel
	}
	return resp
}

// deleteMessage runs an owner-scoped delete and returns the text to show the user.
func (h *SlackHandler) deleteMessage(ctx context.Context, teamID, userID, id string) string {
	if id == "" {
		return domain.MsgMissingID
	}

	_, err := h.messages.Delete(ctx, teamID, userID, id)
	switch {
	case err == nil:
		return domain.MsgDeleted + id
	case errors.Is(err, domain.ErrMessageNotFound):
		return domain.MsgDeleteNotFound + id
	case errors.Is(err, domain.ErrAlreadyHandled):
		return domain.MsgAlreadyHandled + id
	case errors.Is(err, domain.ErrValidation):
		return domain.MsgMissingID
	default:
		h.log.Error().Err(err).Str("id", id).Msg("failed to delete message")
		return domain.MsgDeleteFailed + id
	}
}

// HandleAction serves the Delete button attached to listed messages.
func (h *SlackHandler) HandleAction(w http.ResponseWriter, r *http.Request) {
	body, err := readBody(w, r)
	if err != nil {
		h.rejectRequest(w, http.StatusBadRequest, err)
		return
	}

	if err := h.verifySignature(r, body); err != nil {
		h.rejectRequest(w, http.StatusUnauthorized, err)
		return
	}

	cb, err := parseInteraction(r, body)
	if err != nil {
		h.rejectRequest(w, http.StatusBadRequest, err)
		return
	}

	if err := h.verifyToken(cb.Token); err != nil {
		h.rejectRequest(w, http.StatusUnauthorized, err)
		return
	}

	if !isDeleteAction(cb) {
		w.WriteHeader(http.StatusOK)
		return
	}

	resp := ephemeral(h.deleteMessage(r.Context(), cb.Team.ID, cb.User.ID, cb.CallbackID))
	resp.ReplaceOriginal = false
	h.respond(w, http.StatusOK, resp)
}

func isDeleteAction(cb slack.InteractionCallback) bool {
	if cb.Type != slack.InteractionTypeInteractionMessage {
		return false
	}
	for _, action := range cb.ActionCallback.AttachmentActions {
		if action != nil && action.Name == deleteActionName {
			return true
		}
	}
	return false
}

// HandleEvents answers the Events API url_verification handshake. Other events are
// acknowledged and logged.
func (h *SlackHandler) HandleEvents(w http.ResponseWriter, r *http.Request) {
	body, err := readBody(w, r)
	if err != nil {
		h.rejectRequest(w, http.StatusBadRequest, err)
		return
	}

	if err := h.verifySignature(r, body); err != nil {
		h.rejectRequest(w, http.StatusUnauthorized, err)
		return
	}

	var envelope struct {
		Token     string `json:"token"`
		Type      string `json:"type"`
		Challenge string `json:"challenge"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil {
		h.rejectRequest(w, http.StatusBadRequest, validationErr("decode event: %v", err))
		return
	}
	if err := h.verifyToken(envelope.Token); err != nil {
		h.rejectRequest(w, http.StatusUnauthorized, err)
		return
	}

	if envelope.Type == slackevents.URLVerification {
		w.Header().Set("Content-Type", "text/plain")
		w.Write([]byte(envelope.Challenge))
		return
	}

	// verified events are always acknowledged, Slack retries anything else
	event, err := slackevents.ParseEvent(json.RawMessage(body), slackevents.OptionNoVerifyToken())
	if err != nil {
		h.log.Warn().Err(err).Str("type", envelope.Type).Msg("failed to parse event")
	} else {
		h.log.Debug().Str("team_id", event.TeamID).Str("event", event.InnerEvent.Type).Msg("event received")
	}
	w.WriteHeader(http.StatusOK)
}

func (h *SlackHandler) messageAttachment(msg *entity.ScheduledMessage, withDelete bool) slack.Attachment {
	a := slack.Attachment{
		AuthorName: channelLabel(msg.Payload.ChannelName),
		Title:      h.messages.FormatDate(msg),
		Text:       msg.Payload.CleanText,
		Footer:     "Message ID: " + msg.ID,
		MarkdownIn: []string{"text", "pretext"},
	}

	if withDelete {
		a.CallbackID = msg.ID
		a.Actions = []slack.AttachmentAction{{
			Name: deleteActionName,
			Text: "Delete",
			Type: "button",
			Confirm: &slack.ConfirmationField{
				Title: "Are you sure?",
				Text:  "Click 'Okay' to delete message " + msg.ID,
			},
		}}
	}

	return a
}

func channelLabel(name string) string {
	return "Channel: #" + name
}

func ephemeral(text string) *slack.Msg {
	return &slack.Msg{
		ResponseType: slack.ResponseTypeEphemeral,
		Text:         text,
	}
}

func (h *SlackHandler) rejectRequest(w http.ResponseWriter, status int, err error) {
	h.log.Warn().Err(err).Int("status", status).Msg("rejected slack request")
	h.respond(w, status, ephemeral(domain.MsgValidationError))
}

func (h *SlackHandler) respond(w http.ResponseWriter, status int, msg *slack.Msg) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(msg); err != nil {
		h.log.Error().Err(err).Msg("failed to write response")
	}
}
