package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	"github.com/whestprvcj-prog/gest-o-de-equipes-frotas/internal/observability"
)

// Handlers groups everything mounted on the HTTP server. Slack is nil when
// no signing secret is configured.
type Handlers struct {
	Team  *TeamHandler
	Voice *VoiceHandler
	Print *PrintHandler
	Slack *SlackHandler
}

func NewRouter(h Handlers, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middleware.Recover())
	e.Use(observability.RequestLogger(log))
	e.Use(observability.RequestMetrics())

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "OK")
	})
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	api := e.Group("/api")
	h.Team.Register(api)
	h.Voice.Register(api)
	h.Print.Register(e.Group("/print"))

	if h.Slack != nil {
		e.POST("/slack/commands", echo.WrapHandler(http.HandlerFunc(h.Slack.HandleSlashCommand)))
	}

	return e
}
