package service

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"cloud.google.com/go/civil"
	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"
	"github.com/slack-go/slack"
	"github.com/whestprvcj-prog/gest-o-de-equipes-frotas/internal/domain"
	"github.com/whestprvcj-prog/gest-o-de-equipes-frotas/internal/domain/contract"
	"github.com/whestprvcj-prog/gest-o-de-equipes-frotas/internal/domain/schedule"
	"github.com/whestprvcj-prog/gest-o-de-equipes-frotas/internal/observability"
)

// SchedulerConfig controls the daily roster post
type SchedulerConfig struct {
	ChannelID string
	// Spec is a standard five-field cron expression, e.g. "0 6 * * 1-6"
	Spec     string
	Location *time.Location
}

// scheduler posts the day's fleets to a Slack channel on a cron schedule
type scheduler struct {
	team        contract.TeamService
	slackClient contract.SlackClient
	cfg         SchedulerConfig
	log         zerolog.Logger
	now         func() time.Time

	mu      sync.Mutex
	cron    *cron.Cron
	running bool
}

func newScheduler(team contract.TeamService, slackClient contract.SlackClient, cfg SchedulerConfig, log zerolog.Logger) *scheduler {
	if cfg.Location == nil {
		cfg.Location = time.Local
	}
	return &scheduler{
		team:        team,
		slackClient: slackClient,
		cfg:         cfg,
		log:         log,
		now:         time.Now,
	}
}

// Start registers the roster job. It does nothing when no channel or Slack
// client is configured.
func (s *scheduler) Start() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.running {
		return nil
	}
	if s.cfg.ChannelID == "" || s.cfg.Spec == "" || s.slackClient == nil {
		s.log.Info().Msg("roster scheduler disabled")
		return nil
	}

	c := cron.New(cron.WithLocation(s.cfg.Location))
	if _, err := c.AddFunc(s.cfg.Spec, s.runJob); err != nil {
		return fmt.Errorf("invalid roster schedule %q: %w", s.cfg.Spec, err)
	}
	c.Start()

	s.cron = c
	s.running = true
	s.log.Info().Str("spec", s.cfg.Spec).Str("channel", s.cfg.ChannelID).Msg("roster scheduler started")
	return nil
}

func (s *scheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.running {
		return
	}
	<-s.cron.Stop().Done()
	s.running = false
	s.log.Info().Msg("roster scheduler stopped")
}

func (s *scheduler) Today() civil.Date {
	return civil.DateOf(s.now().In(s.cfg.Location))
}

func (s *scheduler) runJob() {
	today := s.Today()
	if err := s.PostRoster(context.Background(), today); err != nil {
		s.log.Error().Err(err).Str("date", today.String()).Msg("failed to post roster")
	}
}

// PostRoster sends the roster of date to the configured channel
func (s *scheduler) PostRoster(ctx context.Context, date civil.Date) error {
	if s.slackClient == nil || s.cfg.ChannelID == "" {
		return fmt.Errorf("roster channel is not configured")
	}

	message := s.RosterMessage(date)
	_, _, err := s.slackClient.PostMessage(
		s.cfg.ChannelID,
		slack.MsgOptionText(message, false),
		slack.MsgOptionAsUser(false),
	)
	observability.RecordRosterPost(err == nil)
	if err != nil {
		return fmt.Errorf("failed to send Slack message: %w", err)
	}

	s.log.Info().Str("channel", s.cfg.ChannelID).Str("date", date.String()).Msg("roster posted")
	return nil
}

// RosterMessage renders the fleets of date as Slack mrkdwn. Crew members who
// are working on their weekly day off are flagged.
func (s *scheduler) RosterMessage(date civil.Date) string {
	header := fmt.Sprintf("🚚 *Rota para o dia %s (%s)*",
		date.In(time.UTC).Format(domain.DisplayDateLayout),
		schedule.DayOfWeekOf(date).Label())

	fleets := s.team.FleetsOn(date)
	if len(fleets) == 0 {
		return header + "\n\nNenhuma frota configurada."
	}

	var b strings.Builder
	b.WriteString(header)
	b.WriteString("\n")
	for _, f := range fleets {
		fmt.Fprintf(&b, "\n• *%s*: %s %s", f.Name, domain.RoleDriver.Label(), s.crewName(f.DriverID, date))
		if f.AssistantID != "" {
			fmt.Fprintf(&b, " | %s %s", domain.RoleAssistant.Label(), s.crewName(f.AssistantID, date))
		}
	}
	return b.String()
}

func (s *scheduler) crewName(memberID string, date civil.Date) string {
	name := "N/A"
	if m, ok := s.team.GetMember(memberID); ok {
		name = m.Name
	}
	if s.team.IsOnTimeOff(memberID, date) {
		name += " ⚠️ folga"
	}
	return name
}
