package domain

import (
	"errors"
	"fmt"
	"strings"

	"cloud.google.com/go/civil"
)

var (
	ErrInvalidMember  = errors.New("invalid team member")
	ErrInvalidFleet   = errors.New("invalid fleet")
	ErrInvalidTimeOff = errors.New("invalid time-off entry")
	ErrInvalidStop    = errors.New("invalid delivery stop")
	ErrNotFound       = errors.New("not found")
)

// Position is the seat a member occupies in a fleet
type Position string

const (
	PositionDriver    Position = "driver"
	PositionAssistant Position = "assistant"
)

// Conflict describes a crew member scheduled on one of their weekly days off
type Conflict struct {
	MemberID   string     `json:"memberId"`
	MemberName string     `json:"memberName"`
	Position   Position   `json:"position"`
	Date       civil.Date `json:"date"`
	DayOfWeek  DayOfWeek  `json:"dayOfWeek"`
}

func (c Conflict) String() string {
	name := c.MemberName
	if name == "" {
		name = c.MemberID
	}
	return fmt.Sprintf("%s %s is off on %s (%s)", c.Position, name, c.Date, c.DayOfWeek)
}

// ConfirmationRequiredError is returned when a fleet would put someone to
// work on their day off and the caller did not confirm it.
type ConfirmationRequiredError struct {
	Conflicts []Conflict
}

func (e *ConfirmationRequiredError) Error() string {
	parts := make([]string, 0, len(e.Conflicts))
	for _, c := range e.Conflicts {
		parts = append(parts, c.String())
	}
	return "confirmation required: " + strings.Join(parts, "; ")
}
