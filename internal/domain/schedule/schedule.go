// Package schedule holds the pure availability rules used when assembling
// fleets: weekday derivation, weekly time-off lookup and per-date assignment.
package schedule

import (
	"fmt"
	"sort"
	"time"

	"cloud.google.com/go/civil"
	"github.com/samber/lo"
	"github.com/whestprvcj-prog/gest-o-de-equipes-frotas/internal/domain"
	"github.com/whestprvcj-prog/gest-o-de-equipes-frotas/internal/domain/entity"
)

// ParseDate parses a YYYY-MM-DD calendar day
func ParseDate(value string) (civil.Date, error) {
	date, err := civil.ParseDate(value)
	if err != nil {
		return civil.Date{}, fmt.Errorf("invalid date %q, use YYYY-MM-DD: %w", value, err)
	}
	if !date.IsValid() {
		return civil.Date{}, fmt.Errorf("invalid date %q", value)
	}
	return date, nil
}

// DayOfWeekOf maps a calendar day to its weekday. The date is rebuilt from
// its components in UTC so the caller's time zone can never shift the day.
func DayOfWeekOf(date civil.Date) domain.DayOfWeek {
	weekday := time.Date(date.Year, date.Month, date.Day, 0, 0, 0, 0, time.UTC).Weekday()
	if weekday == time.Sunday {
		return domain.Sunday
	}
	return domain.DaysOfWeek[weekday-1]
}

// Today returns the current calendar day in loc
func Today(loc *time.Location) civil.Date {
	return civil.DateOf(time.Now().In(loc))
}

// IsOnTimeOff reports whether the member has a time-off entry on the
// weekday of date.
func IsOnTimeOff(entries []entity.TimeOffEntry, memberID string, date civil.Date) bool {
	day := DayOfWeekOf(date)
	return lo.ContainsBy(entries, func(e entity.TimeOffEntry) bool {
		return e.MemberID == memberID && e.DayOfWeek == day
	})
}

// FleetsOn returns the fleets scheduled for exactly date, in insertion order
func FleetsOn(fleets []entity.Fleet, date civil.Date) []entity.Fleet {
	return lo.Filter(fleets, func(f entity.Fleet, _ int) bool {
		return f.Date == date
	})
}

// AssignedOn returns the ids of every driver and assistant working on date
func AssignedOn(fleets []entity.Fleet, date civil.Date) map[string]struct{} {
	assigned := make(map[string]struct{})
	for _, f := range FleetsOn(fleets, date) {
		if f.DriverID != "" {
			assigned[f.DriverID] = struct{}{}
		}
		if f.AssistantID != "" {
			assigned[f.AssistantID] = struct{}{}
		}
	}
	return assigned
}

// AvailableMembers returns the members with role who are not already in a
// fleet on date. Time-off does not remove anyone from the list; it only
// triggers a confirmation when the fleet is created.
func AvailableMembers(members []entity.TeamMember, fleets []entity.Fleet, role domain.Role, date civil.Date) []entity.TeamMember {
	assigned := AssignedOn(fleets, date)
	return lo.Filter(members, func(m entity.TeamMember, _ int) bool {
		_, busy := assigned[m.ID]
		return m.Role == role && !busy
	})
}

// TimeOffConflicts lists the crew members of a prospective fleet who are off
// on the fleet's weekday. The driver is always reported before the assistant.
func TimeOffConflicts(entries []entity.TimeOffEntry, members []entity.TeamMember, date civil.Date, driverID, assistantID string) []domain.Conflict {
	day := DayOfWeekOf(date)
	crew := []struct {
		id       string
		position domain.Position
	}{
		{driverID, domain.PositionDriver},
		{assistantID, domain.PositionAssistant},
	}

	var conflicts []domain.Conflict
	for _, c := range crew {
		if c.id == "" || !IsOnTimeOff(entries, c.id, date) {
			continue
		}
		conflict := domain.Conflict{
			MemberID:  c.id,
			Position:  c.position,
			Date:      date,
			DayOfWeek: day,
		}
		if m, ok := lo.Find(members, func(m entity.TeamMember) bool { return m.ID == c.id }); ok {
			conflict.MemberName = m.Name
		}
		conflicts = append(conflicts, conflict)
	}
	return conflicts
}

// WithTimeOff returns entries with entry added, dropping any previous entry
// for the same (member, weekday) pair.
func WithTimeOff(entries []entity.TimeOffEntry, entry entity.TimeOffEntry) []entity.TimeOffEntry {
	kept := lo.Reject(entries, func(e entity.TimeOffEntry, _ int) bool {
		return e.MemberID == entry.MemberID && e.DayOfWeek == entry.DayOfWeek
	})
	return append(kept, entry)
}

// SortedDates returns the distinct fleet dates in ascending order
func SortedDates(fleets []entity.Fleet) []civil.Date {
	dates := lo.Uniq(lo.Map(fleets, func(f entity.Fleet, _ int) civil.Date {
		return f.Date
	}))
	sort.Slice(dates, func(i, j int) bool {
		return dates[i].Before(dates[j])
	})
	return dates
}

// TimeOffsByDay groups entries per weekday, keeping insertion order inside
// each group.
func TimeOffsByDay(entries []entity.TimeOffEntry) map[domain.DayOfWeek][]entity.TimeOffEntry {
	return lo.GroupBy(entries, func(e entity.TimeOffEntry) domain.DayOfWeek {
		return e.DayOfWeek
	})
}
