package service

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/whestprvcj-prog/gest-o-de-equipes-frotas/internal/domain/contract"
)

type Instance struct {
	Team      *teamService
	Stops     *stopBook
	Scheduler *scheduler
}

// NewInstance loads the persisted team state and wires the services around
// it. slackClient may be nil when Slack is not configured.
func NewInstance(ctx context.Context, repo contract.TeamRepo, slackClient contract.SlackClient, cfg SchedulerConfig, log zerolog.Logger) *Instance {
	teamService := newTeam(ctx, repo, log.With().Str("service", "team").Logger())

	return &Instance{
		Team:      teamService,
		Stops:     newStopBook(log.With().Str("service", "stops").Logger()),
		Scheduler: newScheduler(teamService, slackClient, cfg, log.With().Str("service", "scheduler").Logger()),
	}
}
