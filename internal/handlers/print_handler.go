package handlers

import (
	"bytes"
	"io"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/whestprvcj-prog/gest-o-de-equipes-frotas/internal/domain/contract"
	"github.com/whestprvcj-prog/gest-o-de-equipes-frotas/internal/domain/entity"
	"github.com/whestprvcj-prog/gest-o-de-equipes-frotas/internal/printview"
)

type renderFunc func(w io.Writer, snapshot entity.Snapshot, now time.Time) error

// PrintHandler serves the printable schedules as HTML
type PrintHandler struct {
	team contract.TeamService
	now  func() time.Time
}

func NewPrintHandler(team contract.TeamService, loc *time.Location) *PrintHandler {
	return &PrintHandler{
		team: team,
		now:  func() time.Time { return time.Now().In(loc) },
	}
}

func (h *PrintHandler) Register(g *echo.Group) {
	g.GET("/fleets", h.page(printview.Fleets))
	g.GET("/timeoffs", h.page(printview.TimeOffs))
}

func (h *PrintHandler) page(render renderFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		var buf bytes.Buffer
		if err := render(&buf, h.team.Snapshot(), h.now()); err != nil {
			return writeError(c, err)
		}
		return c.HTMLBlob(http.StatusOK, buf.Bytes())
	}
}
