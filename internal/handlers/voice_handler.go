package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"github.com/whestprvcj-prog/gest-o-de-equipes-frotas/internal/domain/contract"
	"github.com/whestprvcj-prog/gest-o-de-equipes-frotas/internal/voice"
	"github.com/whestprvcj-prog/gest-o-de-equipes-frotas/internal/voice/relay"
)

// VoiceBridge is the part of voice.Bridge the HTTP layer drives
type VoiceBridge interface {
	Status() voice.Status
	Connect(ctx context.Context, devices voice.AudioDevices) error
	Disconnect()
}

type VoiceHandler struct {
	bridge   VoiceBridge
	stops    contract.StopBook
	upgrader websocket.Upgrader
	log      zerolog.Logger
}

// NewVoiceHandler serves the stop list and the browser audio relay. bridge
// is nil when no speech service is configured.
func NewVoiceHandler(bridge VoiceBridge, stops contract.StopBook, log zerolog.Logger) *VoiceHandler {
	return &VoiceHandler{
		bridge: bridge,
		stops:  stops,
		log:    log,
	}
}

func (h *VoiceHandler) Register(g *echo.Group) {
	g.GET("/stops", h.ListStops)
	g.GET("/voice/status", h.Status)
	g.POST("/voice/disconnect", h.Disconnect)
	g.GET("/voice/stream", h.Stream)
}

func (h *VoiceHandler) ListStops(c echo.Context) error {
	return c.JSON(http.StatusOK, h.stops.ListStops())
}

func (h *VoiceHandler) Status(c echo.Context) error {
	if h.bridge == nil {
		return c.JSON(http.StatusOK, voice.Status{Name: voice.StateDisconnected.String()})
	}
	return c.JSON(http.StatusOK, h.bridge.Status())
}

func (h *VoiceHandler) Disconnect(c echo.Context) error {
	if h.bridge != nil {
		h.bridge.Disconnect()
	}
	return c.NoContent(http.StatusNoContent)
}

// Stream upgrades to a websocket and uses the browser as microphone and
// speaker for a new speech session. The session ends with the socket: when
// Run returns the capture stream closes and the bridge tears itself down.
func (h *VoiceHandler) Stream(c echo.Context) error {
	if h.bridge == nil {
		return c.JSON(http.StatusServiceUnavailable, &HTTPError{Err: "voice assistant is not configured"})
	}
	if h.bridge.Status().State != voice.StateDisconnected {
		return c.JSON(http.StatusConflict, &HTTPError{Err: "a voice session is already active"})
	}

	ws, err := h.upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		h.log.Warn().Err(err).Msg("failed to upgrade voice stream")
		return nil
	}

	conn := relay.New(ws, h.log)
	defer conn.Close()

	ctx := c.Request().Context()
	if err := h.bridge.Connect(ctx, conn); err != nil {
		if errors.Is(err, voice.ErrAlreadyActive) {
			_ = conn.CloseWith(websocket.CloseTryAgainLater, "a voice session is already active")
			return nil
		}
		h.log.Error().Err(err).Msg("failed to start voice session")
		_ = conn.CloseWith(websocket.CloseInternalServerErr, "failed to start voice session")
		return nil
	}

	if err := conn.Run(ctx); err != nil {
		h.log.Warn().Err(err).Msg("voice stream ended with error")
	}
	return nil
}
