// Package printview renders the printable fleet and time-off schedules as
// standalone pt-BR HTML pages.
package printview

import (
	"fmt"
	"io"
	"time"

	"github.com/samber/lo"
	"github.com/whestprvcj-prog/gest-o-de-equipes-frotas/internal/domain"
	"github.com/whestprvcj-prog/gest-o-de-equipes-frotas/internal/domain/entity"
	"github.com/whestprvcj-prog/gest-o-de-equipes-frotas/internal/domain/schedule"
)

const (
	FleetsTitle   = "Escala de Frotas"
	TimeOffsTitle = "Escala de Folgas Semanais"

	EmptyFleets   = "Nenhuma frota configurada."
	EmptyTimeOffs = "Nenhuma folga agendada."
)

type page struct {
	Title       string
	GeneratedAt string
	Empty       string
	Columns     []string
	BoldFirst   bool
	Groups      []group
}

type group struct {
	Title string
	Rows  []row
}

type row struct {
	Cells []string
	// Tag is the css class of the last cell, if any
	Tag string
}

// Fleets writes the fleet schedule: one table per date in ascending order.
// A missing driver shows as N/A, a missing assistant as "-".
func Fleets(w io.Writer, snapshot entity.Snapshot, now time.Time) error {
	members := lo.KeyBy(snapshot.Members, func(m entity.TeamMember) string { return m.ID })

	p := page{
		Title:       FleetsTitle,
		GeneratedAt: generatedAt(now),
		Empty:       EmptyFleets,
		Columns:     []string{"Frota", "Motorista Responsável", "Auxiliar"},
		BoldFirst:   true,
	}
	for _, date := range schedule.SortedDates(snapshot.Fleets) {
		g := group{Title: fmt.Sprintf("Rota para o dia %s (%s)",
			date.In(time.UTC).Format(domain.DisplayDateLayout),
			schedule.DayOfWeekOf(date).Label())}

		for _, f := range schedule.FleetsOn(snapshot.Fleets, date) {
			driver, assistant := "N/A", "-"
			if m, ok := members[f.DriverID]; ok {
				driver = m.Name
			}
			if m, ok := members[f.AssistantID]; ok && f.AssistantID != "" {
				assistant = m.Name
			}
			g.Rows = append(g.Rows, row{Cells: []string{f.Name, driver, assistant}})
		}
		p.Groups = append(p.Groups, g)
	}

	return render(w, p)
}

// TimeOffs writes the weekly time-off schedule grouped Monday to Sunday.
// Entries whose member no longer exists are left out.
func TimeOffs(w io.Writer, snapshot entity.Snapshot, now time.Time) error {
	members := lo.KeyBy(snapshot.Members, func(m entity.TeamMember) string { return m.ID })
	byDay := schedule.TimeOffsByDay(snapshot.TimeOffs)

	p := page{
		Title:       TimeOffsTitle,
		GeneratedAt: generatedAt(now),
		Empty:       EmptyTimeOffs,
		Columns:     []string{"Colaborador", "Função"},
	}
	for _, day := range domain.DaysOfWeek {
		entries := byDay[day]
		g := group{Title: day.Label()}
		for _, entry := range entries {
			m, ok := members[entry.MemberID]
			if !ok {
				continue
			}
			g.Rows = append(g.Rows, row{Cells: []string{m.Name, m.Role.Label()}, Tag: tagClass(m.Role)})
		}
		if len(g.Rows) > 0 {
			p.Groups = append(p.Groups, g)
		}
	}

	return render(w, p)
}

func tagClass(role domain.Role) string {
	if role == domain.RoleDriver {
		return "tag-motorista"
	}
	return "tag-auxiliar"
}

func generatedAt(now time.Time) string {
	return now.Format("02/01/2006") + " às " + now.Format("15:04:05")
}

func render(w io.Writer, p page) error {
	if err := pageTemplate.Execute(w, p); err != nil {
		return fmt.Errorf("failed to render print view: %w", err)
	}
	return nil
}
