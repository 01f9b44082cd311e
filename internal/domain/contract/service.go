package contract

import (
	"context"

	"cloud.google.com/go/civil"
	"github.com/whestprvcj-prog/gest-o-de-equipes-frotas/internal/domain"
	"github.com/whestprvcj-prog/gest-o-de-equipes-frotas/internal/domain/entity"
)

// TeamService is the only mutation surface for members, fleets and time-off
type TeamService interface {
	AddMember(ctx context.Context, in entity.MemberInput) (*entity.TeamMember, error)
	RemoveMember(ctx context.Context, memberID string) error
	ListMembers() []entity.TeamMember
	GetMember(memberID string) (*entity.TeamMember, bool)
	CountByRole(role domain.Role) int

	AddFleet(ctx context.Context, in entity.FleetInput) (*entity.Fleet, error)
	RemoveFleet(ctx context.Context, fleetID string) error
	ListFleets() []entity.Fleet
	FleetsOn(date civil.Date) []entity.Fleet

	AddTimeOff(ctx context.Context, in entity.TimeOffInput) (*entity.TimeOffEntry, error)
	RemoveTimeOff(ctx context.Context, entryID string) error
	ListTimeOffs() []entity.TimeOffEntry

	AvailableMembers(role domain.Role, date civil.Date) []entity.TeamMember
	IsOnTimeOff(memberID string, date civil.Date) bool
	Snapshot() entity.Snapshot
}

// StopBook is the capability set the voice bridge needs over delivery stops
type StopBook interface {
	AddStop(args entity.AddStopArgs) (*entity.DeliveryStop, error)
	RemoveStop(customerName string) int
	ListStops() []entity.DeliveryStop
}

// Roster renders and publishes the daily fleet roster
type Roster interface {
	// Today is the current calendar day in the roster's time zone
	Today() civil.Date
	RosterMessage(date civil.Date) string
	PostRoster(ctx context.Context, date civil.Date) error
}
