package service

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"sync"

	"cloud.google.com/go/civil"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/samber/lo"
	"github.com/whestprvcj-prog/gest-o-de-equipes-frotas/internal/domain"
	"github.com/whestprvcj-prog/gest-o-de-equipes-frotas/internal/domain/contract"
	"github.com/whestprvcj-prog/gest-o-de-equipes-frotas/internal/domain/entity"
	"github.com/whestprvcj-prog/gest-o-de-equipes-frotas/internal/domain/schedule"
)

// teamService owns the members, fleets and time-off collections. Every
// mutation builds the next state, persists the touched collections and only
// then swaps it in, so memory never runs ahead of storage.
type teamService struct {
	mu    sync.RWMutex
	repo  contract.TeamRepo
	log   zerolog.Logger
	newID func() string

	members  []entity.TeamMember
	fleets   []entity.Fleet
	timeOffs []entity.TimeOffEntry
}

func newTeam(ctx context.Context, repo contract.TeamRepo, log zerolog.Logger) *teamService {
	snapshot := repo.Load(ctx)
	log.Info().
		Int("members", len(snapshot.Members)).
		Int("fleets", len(snapshot.Fleets)).
		Int("time_offs", len(snapshot.TimeOffs)).
		Msg("team state loaded")

	return &teamService{
		repo:     repo,
		log:      log,
		newID:    uuid.NewString,
		members:  snapshot.Members,
		fleets:   snapshot.Fleets,
		timeOffs: snapshot.TimeOffs,
	}
}

func (s *teamService) AddMember(ctx context.Context, in entity.MemberInput) (*entity.TeamMember, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: name is required", domain.ErrInvalidMember)
	}
	if !in.Role.Valid() {
		return nil, fmt.Errorf("%w: unknown role %q", domain.ErrInvalidMember, in.Role)
	}

	subRole := strings.TrimSpace(in.SubRole)
	if subRole == "" {
		subRole = in.Role.DefaultSubRole()
	}

	member := entity.TeamMember{
		ID:      s.newID(),
		Name:    name,
		Role:    in.Role,
		SubRole: subRole,
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.snapshotLocked()
	next.Members = append(next.Members, member)
	if err := s.commitLocked(ctx, next, contract.CollectionMembers); err != nil {
		return nil, err
	}

	s.log.Info().Str("member_id", member.ID).Str("role", string(member.Role)).Msg("member registered")
	return &member, nil
}

// RemoveMember deletes the member and their time-off entries. Fleets that
// reference the member are left untouched.
func (s *teamService) RemoveMember(ctx context.Context, memberID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !lo.ContainsBy(s.members, func(m entity.TeamMember) bool { return m.ID == memberID }) {
		return nil
	}

	next := s.snapshotLocked()
	next.Members = lo.Reject(next.Members, func(m entity.TeamMember, _ int) bool {
		return m.ID == memberID
	})
	next.TimeOffs = lo.Reject(next.TimeOffs, func(t entity.TimeOffEntry, _ int) bool {
		return t.MemberID == memberID
	})
	if err := s.commitLocked(ctx, next, contract.CollectionMembers, contract.CollectionTimeOffs); err != nil {
		return err
	}

	s.log.Info().Str("member_id", memberID).Msg("member removed")
	return nil
}

func (s *teamService) ListMembers() []entity.TeamMember {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.members)
}

func (s *teamService) GetMember(memberID string) (*entity.TeamMember, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	member, ok := lo.Find(s.members, func(m entity.TeamMember) bool { return m.ID == memberID })
	if !ok {
		return nil, false
	}
	return &member, true
}

func (s *teamService) CountByRole(role domain.Role) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return lo.CountBy(s.members, func(m entity.TeamMember) bool { return m.Role == role })
}

// AddFleet creates a fleet for the chosen crew. The driver and assistant must
// be available on the date. When either is on a weekly day off the call
// fails with *domain.ConfirmationRequiredError unless in.Confirm is set.
func (s *teamService) AddFleet(ctx context.Context, in entity.FleetInput) (*entity.Fleet, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: name is required", domain.ErrInvalidFleet)
	}
	if in.DriverID == "" {
		return nil, fmt.Errorf("%w: driver is required", domain.ErrInvalidFleet)
	}
	if !in.Date.IsValid() {
		return nil, fmt.Errorf("%w: date is required", domain.ErrInvalidFleet)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.checkCrewLocked(in); err != nil {
		return nil, err
	}

	conflicts := schedule.TimeOffConflicts(s.timeOffs, s.members, in.Date, in.DriverID, in.AssistantID)
	if len(conflicts) > 0 && !in.Confirm {
		return nil, &domain.ConfirmationRequiredError{Conflicts: conflicts}
	}

	fleet := entity.Fleet{
		ID:          s.newID(),
		Name:        name,
		Date:        in.Date,
		DriverID:    in.DriverID,
		AssistantID: in.AssistantID,
	}

	next := s.snapshotLocked()
	next.Fleets = append(next.Fleets, fleet)
	if err := s.commitLocked(ctx, next, contract.CollectionFleets); err != nil {
		return nil, err
	}

	event := s.log.Info().Str("fleet_id", fleet.ID).Str("date", fleet.Date.String())
	if len(conflicts) > 0 {
		event = event.Int("confirmed_conflicts", len(conflicts))
	}
	event.Msg("fleet created")
	return &fleet, nil
}

// checkCrewLocked mirrors the assignment form: only members of the right role
// who are still free on the date can be picked.
func (s *teamService) checkCrewLocked(in entity.FleetInput) error {
	drivers := schedule.AvailableMembers(s.members, s.fleets, domain.RoleDriver, in.Date)
	if !lo.ContainsBy(drivers, func(m entity.TeamMember) bool { return m.ID == in.DriverID }) {
		return fmt.Errorf("%w: driver %s is not available on %s", domain.ErrInvalidFleet, in.DriverID, in.Date)
	}

	if in.AssistantID == "" {
		return nil
	}
	assistants := schedule.AvailableMembers(s.members, s.fleets, domain.RoleAssistant, in.Date)
	if !lo.ContainsBy(assistants, func(m entity.TeamMember) bool { return m.ID == in.AssistantID }) {
		return fmt.Errorf("%w: assistant %s is not available on %s", domain.ErrInvalidFleet, in.AssistantID, in.Date)
	}
	return nil
}

func (s *teamService) RemoveFleet(ctx context.Context, fleetID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !lo.ContainsBy(s.fleets, func(f entity.Fleet) bool { return f.ID == fleetID }) {
		return nil
	}

	next := s.snapshotLocked()
	next.Fleets = lo.Reject(next.Fleets, func(f entity.Fleet, _ int) bool {
		return f.ID == fleetID
	})
	if err := s.commitLocked(ctx, next, contract.CollectionFleets); err != nil {
		return err
	}

	s.log.Info().Str("fleet_id", fleetID).Msg("fleet removed")
	return nil
}

func (s *teamService) ListFleets() []entity.Fleet {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.fleets)
}

func (s *teamService) FleetsOn(date civil.Date) []entity.Fleet {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return schedule.FleetsOn(s.fleets, date)
}

// AddTimeOff schedules a weekly day off, replacing any entry the member
// already had for that weekday.
func (s *teamService) AddTimeOff(ctx context.Context, in entity.TimeOffInput) (*entity.TimeOffEntry, error) {
	if in.MemberID == "" {
		return nil, fmt.Errorf("%w: member is required", domain.ErrInvalidTimeOff)
	}
	if !in.DayOfWeek.Valid() {
		return nil, fmt.Errorf("%w: unknown day of week %q", domain.ErrInvalidTimeOff, in.DayOfWeek)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if !lo.ContainsBy(s.members, func(m entity.TeamMember) bool { return m.ID == in.MemberID }) {
		return nil, fmt.Errorf("%w: member %s is not registered", domain.ErrInvalidTimeOff, in.MemberID)
	}

	entry := entity.TimeOffEntry{
		ID:        s.newID(),
		MemberID:  in.MemberID,
		DayOfWeek: in.DayOfWeek,
	}

	next := s.snapshotLocked()
	next.TimeOffs = schedule.WithTimeOff(next.TimeOffs, entry)
	if err := s.commitLocked(ctx, next, contract.CollectionTimeOffs); err != nil {
		return nil, err
	}

	s.log.Info().Str("member_id", entry.MemberID).Str("day", string(entry.DayOfWeek)).Msg("time off scheduled")
	return &entry, nil
}

func (s *teamService) RemoveTimeOff(ctx context.Context, entryID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !lo.ContainsBy(s.timeOffs, func(t entity.TimeOffEntry) bool { return t.ID == entryID }) {
		return nil
	}

	next := s.snapshotLocked()
	next.TimeOffs = lo.Reject(next.TimeOffs, func(t entity.TimeOffEntry, _ int) bool {
		return t.ID == entryID
	})
	return s.commitLocked(ctx, next, contract.CollectionTimeOffs)
}

func (s *teamService) ListTimeOffs() []entity.TimeOffEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.timeOffs)
}

func (s *teamService) AvailableMembers(role domain.Role, date civil.Date) []entity.TeamMember {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return schedule.AvailableMembers(s.members, s.fleets, role, date)
}

func (s *teamService) IsOnTimeOff(memberID string, date civil.Date) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return schedule.IsOnTimeOff(s.timeOffs, memberID, date)
}

func (s *teamService) Snapshot() entity.Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshotLocked()
}

func (s *teamService) snapshotLocked() entity.Snapshot {
	return entity.Snapshot{
		Members:  slices.Clone(s.members),
		Fleets:   slices.Clone(s.fleets),
		TimeOffs: slices.Clone(s.timeOffs),
	}
}

func (s *teamService) commitLocked(ctx context.Context, next entity.Snapshot, collections ...contract.Collection) error {
	if err := s.repo.Save(ctx, next, collections...); err != nil {
		return fmt.Errorf("failed to save team state: %w", err)
	}
	s.members = next.Members
	s.fleets = next.Fleets
	s.timeOffs = next.TimeOffs
	return nil
}
