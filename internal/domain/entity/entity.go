package entity

import (
	"time"

	"cloud.google.com/go/civil"
	"github.com/whestprvcj-prog/gest-o-de-equipes-frotas/internal/domain"
)

type TeamMember struct {
	ID      string      `json:"id"`
	Name    string      `json:"name"`
	Role    domain.Role `json:"role"`
	SubRole string      `json:"subRole"`
}

type Fleet struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Date        civil.Date `json:"date"`
	DriverID    string     `json:"driverId"`
	AssistantID string     `json:"assistantId,omitempty"`
}

// TimeOffEntry marks a member as off on the same weekday every week
type TimeOffEntry struct {
	ID        string           `json:"id"`
	MemberID  string           `json:"memberId"`
	DayOfWeek domain.DayOfWeek `json:"dayOfWeek"`
}

type DeliveryStop struct {
	ID           string            `json:"id"`
	CustomerName string            `json:"customerName"`
	Address      string            `json:"address"`
	Notes        string            `json:"notes,omitempty"`
	Status       domain.StopStatus `json:"status"`
	Timestamp    time.Time         `json:"timestamp"`
}

// Snapshot is the full persisted team state
type Snapshot struct {
	Members  []TeamMember
	Fleets   []Fleet
	TimeOffs []TimeOffEntry
}
