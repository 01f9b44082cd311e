package handlers

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/whestprvcj-prog/gest-o-de-equipes-frotas/internal/domain"
	"github.com/whestprvcj-prog/gest-o-de-equipes-frotas/internal/domain/contract"
	"github.com/whestprvcj-prog/gest-o-de-equipes-frotas/internal/domain/entity"
	"github.com/whestprvcj-prog/gest-o-de-equipes-frotas/internal/domain/schedule"
)

// TeamHandler exposes members, fleets, time-off and availability as JSON
type TeamHandler struct {
	team contract.TeamService
}

func NewTeamHandler(team contract.TeamService) *TeamHandler {
	return &TeamHandler{team: team}
}

func (h *TeamHandler) Register(g *echo.Group) {
	g.GET("/members", h.ListMembers)
	g.POST("/members", h.AddMember)
	g.GET("/members/:id", h.GetMember)
	g.DELETE("/members/:id", h.RemoveMember)

	g.GET("/fleets", h.ListFleets)
	g.POST("/fleets", h.AddFleet)
	g.DELETE("/fleets/:id", h.RemoveFleet)

	g.GET("/timeoffs", h.ListTimeOffs)
	g.POST("/timeoffs", h.AddTimeOff)
	g.DELETE("/timeoffs/:id", h.RemoveTimeOff)

	g.GET("/availability", h.Availability)
}

type membersResponse struct {
	Members []entity.TeamMember `json:"members"`
	Counts  map[domain.Role]int `json:"counts"`
}

func (h *TeamHandler) ListMembers(c echo.Context) error {
	counts := make(map[domain.Role]int, len(domain.Roles))
	for _, role := range domain.Roles {
		counts[role] = h.team.CountByRole(role)
	}
	return c.JSON(http.StatusOK, membersResponse{Members: h.team.ListMembers(), Counts: counts})
}

func (h *TeamHandler) GetMember(c echo.Context) error {
	m, ok := h.team.GetMember(c.Param("id"))
	if !ok {
		return writeError(c, fmt.Errorf("member %s: %w", c.Param("id"), domain.ErrNotFound))
	}
	return c.JSON(http.StatusOK, m)
}

func (h *TeamHandler) AddMember(c echo.Context) error {
	var in entity.MemberInput
	if err := c.Bind(&in); err != nil {
		return badRequest(c, "invalid member payload")
	}
	if role, ok := domain.ParseRole(string(in.Role)); ok {
		in.Role = role
	}

	m, err := h.team.AddMember(c.Request().Context(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, m)
}

func (h *TeamHandler) RemoveMember(c echo.Context) error {
	if err := h.team.RemoveMember(c.Request().Context(), c.Param("id")); err != nil {
		return writeError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

// ListFleets returns every fleet, or only those of ?date=YYYY-MM-DD
func (h *TeamHandler) ListFleets(c echo.Context) error {
	raw := c.QueryParam("date")
	if raw == "" {
		return c.JSON(http.StatusOK, h.team.ListFleets())
	}

	date, err := schedule.ParseDate(raw)
	if err != nil {
		return badRequest(c, err.Error())
	}
	return c.JSON(http.StatusOK, h.team.FleetsOn(date))
}

// AddFleet answers 409 with the conflict list when the crew is off that day
// and the request does not carry confirm=true.
func (h *TeamHandler) AddFleet(c echo.Context) error {
	var in entity.FleetInput
	if err := c.Bind(&in); err != nil {
		return badRequest(c, "invalid fleet payload")
	}

	f, err := h.team.AddFleet(c.Request().Context(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, f)
}

func (h *TeamHandler) RemoveFleet(c echo.Context) error {
	if err := h.team.RemoveFleet(c.Request().Context(), c.Param("id")); err != nil {
		return writeError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *TeamHandler) ListTimeOffs(c echo.Context) error {
	return c.JSON(http.StatusOK, h.team.ListTimeOffs())
}

func (h *TeamHandler) AddTimeOff(c echo.Context) error {
	var in entity.TimeOffInput
	if err := c.Bind(&in); err != nil {
		return badRequest(c, "invalid time-off payload")
	}
	if day, ok := domain.ParseDayOfWeek(string(in.DayOfWeek)); ok {
		in.DayOfWeek = day
	}

	entry, err := h.team.AddTimeOff(c.Request().Context(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, entry)
}

func (h *TeamHandler) RemoveTimeOff(c echo.Context) error {
	if err := h.team.RemoveTimeOff(c.Request().Context(), c.Param("id")); err != nil {
		return writeError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

type availabilityResponse struct {
	Role      domain.Role         `json:"role"`
	Date      string              `json:"date"`
	DayOfWeek domain.DayOfWeek    `json:"dayOfWeek"`
	Members   []entity.TeamMember `json:"members"`
	// OnTimeOff lists the ids of available members who are off that weekday
	OnTimeOff []string `json:"onTimeOff"`
}

// Availability lists members of ?role= not yet assigned to a fleet on ?date=
func (h *TeamHandler) Availability(c echo.Context) error {
	role, ok := domain.ParseRole(c.QueryParam("role"))
	if !ok {
		return badRequest(c, fmt.Sprintf("invalid role %q", c.QueryParam("role")))
	}
	date, err := schedule.ParseDate(c.QueryParam("date"))
	if err != nil {
		return badRequest(c, err.Error())
	}

	members := h.team.AvailableMembers(role, date)
	resp := availabilityResponse{
		Role:      role,
		Date:      date.String(),
		DayOfWeek: schedule.DayOfWeekOf(date),
		Members:   members,
		OnTimeOff: []string{},
	}
	for _, m := range members {
		if h.team.IsOnTimeOff(m.ID, date) {
			resp.OnTimeOff = append(resp.OnTimeOff, m.ID)
		}
	}
	return c.JSON(http.StatusOK, resp)
}
