package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"cloud.google.com/go/civil"
	"github.com/rs/zerolog"
	"github.com/slack-go/slack"
	"github.com/whestprvcj-prog/gest-o-de-equipes-frotas/internal/domain"
	"github.com/whestprvcj-prog/gest-o-de-equipes-frotas/internal/domain/contract"
	"github.com/whestprvcj-prog/gest-o-de-equipes-frotas/internal/domain/schedule"
	slackcmd "github.com/whestprvcj-prog/gest-o-de-equipes-frotas/internal/domain/slack"
)

type SlackHandler struct {
	team          contract.TeamService
	roster        contract.Roster
	signingSecret string
	log           zerolog.Logger
}

func NewSlackHandler(team contract.TeamService, roster contract.Roster, signingSecret string, log zerolog.Logger) *SlackHandler {
	return &SlackHandler{
		team:          team,
		roster:        roster,
		signingSecret: signingSecret,
		log:           log,
	}
}

func (h *SlackHandler) HandleSlashCommand(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	r.Body = io.NopCloser(bytes.NewBuffer(body))

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
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	s, err := slack.SlashCommandParse(r)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	cmd, err := slackcmd.ParseCommand(s.Text)
	if err != nil {
		h.respondWithError(w, err.Error())
		return
	}

	h.log.Debug().Str("command", string(cmd.Type)).Str("user", s.UserID).Msg("slash command received")
	response := h.handleCommand(r.Context(), cmd)

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(response)
}

func (h *SlackHandler) handleCommand(ctx context.Context, cmd *slackcmd.Command) *slack.Msg {
	switch cmd.Type {
	case slackcmd.CmdMembers:
		return h.handleMembers()
	case slackcmd.CmdFleets:
		return h.handleFleets(cmd)
	case slackcmd.CmdTimeOffs:
		return h.handleTimeOffs()
	case slackcmd.CmdAvailable:
		return h.handleAvailable(cmd)
	case slackcmd.CmdPost:
		return h.handlePost(ctx, cmd)
	case slackcmd.CmdHelp:
		return h.handleHelp()
	default:
		return h.createErrorResponse("Comando não reconhecido")
	}
}

func (h *SlackHandler) handleMembers() *slack.Msg {
	members := h.team.ListMembers()
	if len(members) == 0 {
		return &slack.Msg{
			ResponseType: slack.ResponseTypeEphemeral,
			Text:         "Nenhum colaborador cadastrado.",
		}
	}

	var list strings.Builder
	list.WriteString("*Colaboradores:*\n")
	for i, m := range members {
		fmt.Fprintf(&list, "%d. %s - %s (%s)\n", i+1, m.Name, m.Role.Label(), m.SubRole)
	}
	if h.team.CountByRole(domain.RoleDriver) == 0 {
		list.WriteString("\n⚠️ Nenhum motorista cadastrado.")
	}

	return &slack.Msg{
		ResponseType: slack.ResponseTypeEphemeral,
		Text:         list.String(),
	}
}

func (h *SlackHandler) handleFleets(cmd *slackcmd.Command) *slack.Msg {
	date, err := h.dateArg(cmd.Args, 0)
	if err != nil {
		return h.createErrorResponse(err.Error())
	}

	return &slack.Msg{
		ResponseType: slack.ResponseTypeEphemeral,
		Text:         h.roster.RosterMessage(date),
	}
}

func (h *SlackHandler) handleTimeOffs() *slack.Msg {
	byDay := schedule.TimeOffsByDay(h.team.ListTimeOffs())

	var list strings.Builder
	for _, day := range domain.DaysOfWeek {
		var names []string
		for _, entry := range byDay[day] {
			if m, ok := h.team.GetMember(entry.MemberID); ok {
				names = append(names, m.Name)
			}
		}
		if len(names) > 0 {
			fmt.Fprintf(&list, "*%s:* %s\n", day.Label(), strings.Join(names, ", "))
		}
	}

	if list.Len() == 0 {
		return &slack.Msg{
			ResponseType: slack.ResponseTypeEphemeral,
			Text:         "Nenhuma folga agendada.",
		}
	}

	return &slack.Msg{
		ResponseType: slack.ResponseTypeEphemeral,
		Text:         "*Folgas semanais:*\n" + list.String(),
	}
}

func (h *SlackHandler) handleAvailable(cmd *slackcmd.Command) *slack.Msg {
	if len(cmd.Args) == 0 {
		return h.createErrorResponse("Informe a função: `/rotafacil disponiveis motorista [AAAA-MM-DD]`")
	}

	role, ok := domain.ParseRole(cmd.Args[0])
	if !ok {
		return h.createErrorResponse(fmt.Sprintf("Função inválida: %s", cmd.Args[0]))
	}

	date, err := h.dateArg(cmd.Args, 1)
	if err != nil {
		return h.createErrorResponse(err.Error())
	}

	available := h.team.AvailableMembers(role, date)
	heading := fmt.Sprintf("*%s disponíveis em %s (%s):*",
		role.Label(), date.In(time.UTC).Format(domain.DisplayDateLayout), schedule.DayOfWeekOf(date).Label())
	if len(available) == 0 {
		return &slack.Msg{
			ResponseType: slack.ResponseTypeEphemeral,
			Text:         heading + "\nNinguém disponível.",
		}
	}

	var list strings.Builder
	list.WriteString(heading)
	for _, m := range available {
		list.WriteString("\n• " + m.Name)
		if h.team.IsOnTimeOff(m.ID, date) {
			list.WriteString(" ⚠️ folga")
		}
	}

	return &slack.Msg{
		ResponseType: slack.ResponseTypeEphemeral,
		Text:         list.String(),
	}
}

func (h *SlackHandler) handlePost(ctx context.Context, cmd *slackcmd.Command) *slack.Msg {
	date, err := h.dateArg(cmd.Args, 0)
	if err != nil {
		return h.createErrorResponse(err.Error())
	}

	if err := h.roster.PostRoster(ctx, date); err != nil {
		h.log.Error().Err(err).Str("date", date.String()).Msg("failed to post roster on demand")
		return h.createErrorResponse(fmt.Sprintf("Erro ao publicar a rota: %v", err))
	}

	return &slack.Msg{
		ResponseType: slack.ResponseTypeEphemeral,
		Text:         "✅ Rota publicada.",
	}
}

// dateArg reads an optional YYYY-MM-DD argument, defaulting to today
func (h *SlackHandler) dateArg(args []string, idx int) (civil.Date, error) {
	if len(args) <= idx {
		return h.roster.Today(), nil
	}
	date, err := schedule.ParseDate(args[idx])
	if err != nil {
		return civil.Date{}, fmt.Errorf("Data inválida: %s (use AAAA-MM-DD)", args[idx])
	}
	return date, nil
}

func (h *SlackHandler) handleHelp() *slack.Msg {
	return &slack.Msg{
		ResponseType: slack.ResponseTypeEphemeral,
		Text:         slackcmd.GetHelpText(),
	}
}

func (h *SlackHandler) createErrorResponse(message string) *slack.Msg {
	return &slack.Msg{
		ResponseType: slack.ResponseTypeEphemeral,
		Text:         fmt.Sprintf("❌ %s", message),
	}
}

func (h *SlackHandler) respondWithError(w http.ResponseWriter, message string) {
	response := h.createErrorResponse(message)
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(response)
}
