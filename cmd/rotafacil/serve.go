package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"github.com/whestprvcj-prog/gest-o-de-equipes-frotas/internal/handlers"
	"github.com/whestprvcj-prog/gest-o-de-equipes-frotas/internal/observability"
	"github.com/whestprvcj-prog/gest-o-de-equipes-frotas/internal/voice"
	"github.com/whestprvcj-prog/gest-o-de-equipes-frotas/internal/voice/gemini"
)

const shutdownTimeout = 10 * time.Second

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API, Slack commands and the daily roster",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()
		return serve(ctx)
	},
}

func serve(ctx context.Context) error {
	observability.RegisterMetrics()
	loc := location()

	dm, err := openStorage(ctx)
	if err != nil {
		return err
	}
	defer dm.Close()

	svc := newServices(ctx, dm, loc)

	if err := svc.Scheduler.Start(); err != nil {
		return err
	}
	defer svc.Scheduler.Stop()

	var bridge handlers.VoiceBridge
	if cfg.VoiceEnabled() {
		voiceLog := observability.Component(logger, "voice")
		b := voice.NewBridge(
			gemini.NewDialer(cfg.GeminiEndpoint, cfg.GeminiAPIKey, voiceLog),
			svc.Stops,
			voice.Config{Model: cfg.GeminiModel},
			voiceLog,
		)
		defer b.Disconnect()
		bridge = b
	} else {
		logger.Info().Msg("GEMINI_API_KEY not set, voice assistant disabled")
	}

	h := handlers.Handlers{
		Team:  handlers.NewTeamHandler(svc.Team),
		Voice: handlers.NewVoiceHandler(bridge, svc.Stops, observability.Component(logger, "relay")),
		Print: handlers.NewPrintHandler(svc.Team, loc),
	}
	if cfg.SlackSigningSecret != "" {
		h.Slack = handlers.NewSlackHandler(svc.Team, svc.Scheduler, cfg.SlackSigningSecret, observability.Component(logger, "slack"))
	}

	e := handlers.NewRouter(h, observability.Component(logger, "http"))

	errCh := make(chan error, 1)
	go func() {
		logger.Info().Str("port", cfg.Port).Msg("server starting")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return e.Shutdown(shutdownCtx)
}
