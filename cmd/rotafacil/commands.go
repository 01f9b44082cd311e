package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/slack-go/slack"
	"github.com/spf13/cobra"
	"github.com/whestprvcj-prog/gest-o-de-equipes-frotas/internal/config"
	"github.com/whestprvcj-prog/gest-o-de-equipes-frotas/internal/database"
	"github.com/whestprvcj-prog/gest-o-de-equipes-frotas/internal/domain/contract"
	"github.com/whestprvcj-prog/gest-o-de-equipes-frotas/internal/domain/schedule"
	"github.com/whestprvcj-prog/gest-o-de-equipes-frotas/internal/domain/service"
	"github.com/whestprvcj-prog/gest-o-de-equipes-frotas/internal/observability"
	"github.com/whestprvcj-prog/gest-o-de-equipes-frotas/internal/persistence"
	"github.com/whestprvcj-prog/gest-o-de-equipes-frotas/internal/printview"
	"github.com/whestprvcj-prog/gest-o-de-equipes-frotas/migrator/sqlite"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply the SQLite schema migrations",
	RunE: func(cmd *cobra.Command, args []string) error {
		if cfg.StorageDriver != config.StorageSQLite {
			return fmt.Errorf("migrations only apply to the %s driver", config.StorageSQLite)
		}

		db, err := database.New(cfg.DatabasePath)
		if err != nil {
			return fmt.Errorf("failed to initialize database: %w", err)
		}
		defer db.Close()

		if err := sqlite.Migrate(db.DB()); err != nil {
			return err
		}
		logger.Info().Str("path", cfg.DatabasePath).Msg("migrations completed successfully")
		return nil
	},
}

var printOutput string

var printCmd = &cobra.Command{
	Use:       "print fleets|timeoffs",
	Short:     "Render a printable schedule as HTML",
	Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
	ValidArgs: []string{"fleets", "timeoffs"},
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, closeFn, err := loadServices(cmd)
		if err != nil {
			return err
		}
		defer closeFn()

		render := printview.Fleets
		if args[0] == "timeoffs" {
			render = printview.TimeOffs
		}

		var out io.Writer = cmd.OutOrStdout()
		if printOutput != "" {
			f, err := os.Create(printOutput)
			if err != nil {
				return fmt.Errorf("failed to create %s: %w", printOutput, err)
			}
			defer f.Close()
			out = f
		}

		return render(out, svc.Team.Snapshot(), time.Now().In(location()))
	},
}

var rosterPost bool

var rosterCmd = &cobra.Command{
	Use:   "roster [YYYY-MM-DD]",
	Short: "Show the roster of a day, or post it to Slack with --post",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, closeFn, err := loadServices(cmd)
		if err != nil {
			return err
		}
		defer closeFn()

		date := svc.Scheduler.Today()
		if len(args) == 1 {
			if date, err = schedule.ParseDate(args[0]); err != nil {
				return err
			}
		}

		if rosterPost {
			return svc.Scheduler.PostRoster(cmd.Context(), date)
		}
		_, err = fmt.Fprintln(cmd.OutOrStdout(), svc.Scheduler.RosterMessage(date))
		return err
	},
}

func init() {
	printCmd.Flags().StringVarP(&printOutput, "output", "o", "", "write the HTML to this file instead of stdout")
	rosterCmd.Flags().BoolVar(&rosterPost, "post", false, "post the roster to ROSTER_CHANNEL_ID")
}

// loadServices opens storage and loads the team state for one-shot commands
func loadServices(cmd *cobra.Command) (*service.Instance, func(), error) {
	dm, err := openStorage(cmd.Context())
	if err != nil {
		return nil, nil, err
	}
	return newServices(cmd.Context(), dm, location()), func() { _ = dm.Close() }, nil
}

func newServices(ctx context.Context, dm contract.DataManager, loc *time.Location) *service.Instance {
	var slackClient contract.SlackClient
	if cfg.SlackEnabled() {
		slackClient = slack.New(cfg.SlackBotToken)
	}

	repo := persistence.New(dm, observability.Component(logger, "persistence"))
	return service.NewInstance(ctx, repo, slackClient, service.SchedulerConfig{
		ChannelID: cfg.RosterChannelID,
		Spec:      cfg.RosterSchedule,
		Location:  loc,
	}, logger)
}
