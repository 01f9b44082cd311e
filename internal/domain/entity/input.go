package entity

import (
	"cloud.google.com/go/civil"
	"github.com/whestprvcj-prog/gest-o-de-equipes-frotas/internal/domain"
)

type MemberInput struct {
	Name    string      `json:"name"`
	Role    domain.Role `json:"role"`
	SubRole string      `json:"subRole"`
}

type FleetInput struct {
	Name        string     `json:"name"`
	Date        civil.Date `json:"date"`
	DriverID    string     `json:"driverId"`
	AssistantID string     `json:"assistantId,omitempty"`

	// Confirm acknowledges time-off conflicts for the chosen crew
	Confirm bool `json:"confirm"`
}

type TimeOffInput struct {
	MemberID  string           `json:"memberId"`
	DayOfWeek domain.DayOfWeek `json:"dayOfWeek"`
}

// AddStopArgs are the arguments of the addDeliveryStop voice action
type AddStopArgs struct {
	CustomerName string `json:"customerName"`
	Address      string `json:"address"`
	Notes        string `json:"notes,omitempty"`
}

// RemoveStopArgs are the arguments of the removeDeliveryStop voice action
type RemoveStopArgs struct {
	CustomerName string `json:"customerName"`
}
