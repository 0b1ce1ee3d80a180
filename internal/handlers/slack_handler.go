package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/mensabot/mensa-bot/internal/domain"
	"github.com/mensabot/mensa-bot/internal/domain/contract"
	"github.com/mensabot/mensa-bot/internal/domain/dates"
	"github.com/mensabot/mensa-bot/internal/domain/entity"
	slackcmd "github.com/mensabot/mensa-bot/internal/domain/slack"
	"github.com/slack-go/slack"
)

type SlackHandler struct {
	menuService   contract.MenuService
	signingSecret string
	cutover       dates.TimeOfDay
	logger        *slog.Logger
}

func New(menuService contract.MenuService, signingSecret string, cutover dates.TimeOfDay, logger *slog.Logger) *SlackHandler {
	return &SlackHandler{
		menuService:   menuService,
		signingSecret: signingSecret,
		cutover:       cutover,
		logger:        logger,
	}
}

func (h *SlackHandler) HandleSlashCommand(w http.ResponseWriter, r *http.Request) {
	// Verify request from Slack
	body, err := io.ReadAll(r.Body)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	r.Body = io.NopCloser(bytes.NewBuffer(body))

	// Verify Slack signature
	verifier, err := slack.NewSecretsVerifier(r.Header, h.signingSecret)
	if err != nil {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	if _, err := verifier.Write(body); err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	if err := verifier.Ensure(); err != nil {
		h.logger.Warn("Rejected slash command with invalid signature", "error", err)
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	s, err := slack.SlashCommandParse(r)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	cmd := slackcmd.ParseCommand(s.Text)
	h.logger.Debug("Slash command received", "channel", s.ChannelID, "command", string(cmd.Type), "arg", cmd.Arg)

	response := h.handleCommand(r.Context(), cmd, &s)

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(response); err != nil {
		h.logger.Error("Failed to encode slash command response", "error", err)
	}
}

func (h *SlackHandler) handleCommand(ctx context.Context, cmd *slackcmd.Command, slashCmd *slack.SlashCommand) *slack.Msg {
	switch cmd.Type {
	case slackcmd.CmdShow:
		return h.handleShow(ctx, cmd, slashCmd)
	case slackcmd.CmdSubscribe:
		return h.handleSubscribe(ctx, slashCmd)
	case slackcmd.CmdUnsubscribe:
		return h.handleUnsubscribe(ctx, slashCmd)
	case slackcmd.CmdHelp:
		return h.handleHelp()
	default:
		return h.createErrorResponse("Unknown command. Use `/mensa help` to see the available commands.")
	}
}

func (h *SlackHandler) handleShow(ctx context.Context, cmd *slackcmd.Command, slashCmd *slack.SlashCommand) *slack.Msg {
	answer, err := h.menuService.ShowMenu(ctx, slashCmd.ChannelID, cmd.Arg)
	if err != nil {
		var formatErr *domain.DateFormatError
		if errors.As(err, &formatErr) {
			return h.createErrorResponse(fmt.Sprintf("I can't read the date %q. Use dd.mm.yyyy, e.g. 24.12.2024, or a keyword like `tomorrow`.", formatErr.Input))
		}
		h.logger.Error("Failed to show menu", "channel", slashCmd.ChannelID, "arg", cmd.Arg, "error", err)
		return h.createErrorResponse("Error loading the menu, please try again later")
	}

	if answer.Delivered {
		return &slack.Msg{
			ResponseType: slack.ResponseTypeEphemeral,
			Text:         "📬 The new menu was just posted to this channel.",
		}
	}

	if answer.Menu == nil {
		return &slack.Msg{
			ResponseType: slack.ResponseTypeEphemeral,
			Text:         fmt.Sprintf("🤷 No menu found for %s.", answer.Criterion),
		}
	}

	return menuResponse(*answer.Menu)
}

func menuResponse(menu entity.Menu) *slack.Msg {
	text, blocks := slackcmd.MenuMessage(menu)
	return &slack.Msg{
		ResponseType: slack.ResponseTypeInChannel,
		Text:         text,
		Blocks:       slack.Blocks{BlockSet: blocks},
	}
}

func (h *SlackHandler) handleSubscribe(ctx context.Context, slashCmd *slack.SlashCommand) *slack.Msg {
	added, err := h.menuService.Subscribe(ctx, slashCmd.ChannelID)
	if err != nil {
		h.logger.Error("Failed to subscribe", "channel", slashCmd.ChannelID, "error", err)
		return h.createErrorResponse("Error subscribing this channel")
	}

	if !added {
		return &slack.Msg{
			ResponseType: slack.ResponseTypeEphemeral,
			Text:         "ℹ️ This channel is already subscribed.",
		}
	}
	return &slack.Msg{
		ResponseType: slack.ResponseTypeInChannel,
		Text:         "✅ This channel will now receive new menus.",
	}
}

func (h *SlackHandler) handleUnsubscribe(ctx context.Context, slashCmd *slack.SlashCommand) *slack.Msg {
	removed, err := h.menuService.Unsubscribe(ctx, slashCmd.ChannelID)
	if err != nil {
		h.logger.Error("Failed to unsubscribe", "channel", slashCmd.ChannelID, "error", err)
		return h.createErrorResponse("Error unsubscribing this channel")
	}

	if !removed {
		return &slack.Msg{
			ResponseType: slack.ResponseTypeEphemeral,
			Text:         "ℹ️ This channel was not subscribed.",
		}
	}
	return &slack.Msg{
		ResponseType: slack.ResponseTypeInChannel,
		Text:         "👋 This channel will no longer receive new menus.",
	}
}

func (h *SlackHandler) handleHelp() *slack.Msg {
	return &slack.Msg{
		ResponseType: slack.ResponseTypeEphemeral,
		Text:         slackcmd.GetHelpText(h.cutover),
	}
}

func (h *SlackHandler) createErrorResponse(message string) *slack.Msg {
	return &slack.Msg{
		ResponseType: slack.ResponseTypeEphemeral,
		Text:         fmt.Sprintf("❌ %s", message),
	}
}
