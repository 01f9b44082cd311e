package domain

import (
	"strings"
)

// DayOfWeek is one of the seven fixed weekday labels used by time-off entries
type DayOfWeek string

const (
	Monday    DayOfWeek = "Monday"
	Tuesday   DayOfWeek = "Tuesday"
	Wednesday DayOfWeek = "Wednesday"
	Thursday  DayOfWeek = "Thursday"
	Friday    DayOfWeek = "Friday"
	Saturday  DayOfWeek = "Saturday"
	Sunday    DayOfWeek = "Sunday"
)

// DaysOfWeek lists the weekdays in ISO 8601 order (Monday first)
var DaysOfWeek = []DayOfWeek{Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday}

// weekdayLabels maps each day to the pt-BR label shown in print views and Slack
var weekdayLabels = map[DayOfWeek]string{
	Monday:    "Segunda-feira",
	Tuesday:   "Terça-feira",
	Wednesday: "Quarta-feira",
	Thursday:  "Quinta-feira",
	Friday:    "Sexta-feira",
	Saturday:  "Sábado",
	Sunday:    "Domingo",
}

// WeekdayNumbers maps ISO 8601 weekday numbers as strings to days
var WeekdayNumbers = map[string]DayOfWeek{
	"1": Monday,
	"2": Tuesday,
	"3": Wednesday,
	"4": Thursday,
	"5": Friday,
	"6": Saturday,
	"7": Sunday,
}

func (d DayOfWeek) Valid() bool {
	_, ok := weekdayLabels[d]
	return ok
}

// Label returns the pt-BR name of the day
func (d DayOfWeek) Label() string {
	if label, ok := weekdayLabels[d]; ok {
		return label
	}
	return string(d)
}

// ParseDayOfWeek accepts the English name, the pt-BR label (with or without
// the "-feira" suffix) or the ISO weekday number.
func ParseDayOfWeek(value string) (DayOfWeek, bool) {
	v := strings.ToLower(strings.TrimSpace(value))
	if v == "" {
		return "", false
	}
	if day, ok := WeekdayNumbers[v]; ok {
		return day, true
	}
	for _, day := range DaysOfWeek {
		label := strings.ToLower(weekdayLabels[day])
		if v == strings.ToLower(string(day)) || v == label || v == strings.TrimSuffix(label, "-feira") {
			return day, true
		}
	}
	return "", false
}

// Role is the fixed team role enumeration
type Role string

const (
	RoleDriver    Role = "Driver"
	RoleAssistant Role = "Assistant"
	RoleOperator  Role = "Operator"
)

// Roles lists the roles in display order
var Roles = []Role{RoleDriver, RoleAssistant, RoleOperator}

var roleLabels = map[Role]string{
	RoleDriver:    "Motorista",
	RoleAssistant: "Auxiliar",
	RoleOperator:  "Operador",
}

// SubRoles is the catalog of sub-role labels offered for each role. The first
// entry is the default when a member is registered without one.
var SubRoles = map[Role][]string{
	RoleDriver:    {"Motorista", "Motorista I", "Motorista Granel"},
	RoleAssistant: {"Auxiliar de Distribuição"},
	RoleOperator:  {"Operador Granel"},
}

func (r Role) Valid() bool {
	_, ok := roleLabels[r]
	return ok
}

// Label returns the pt-BR name of the role
func (r Role) Label() string {
	if label, ok := roleLabels[r]; ok {
		return label
	}
	return string(r)
}

// DefaultSubRole returns the first catalog entry for the role
func (r Role) DefaultSubRole() string {
	if subRoles := SubRoles[r]; len(subRoles) > 0 {
		return subRoles[0]
	}
	return ""
}

// ParseRole accepts the English or pt-BR role name, case-insensitively
func ParseRole(value string) (Role, bool) {
	v := strings.ToLower(strings.TrimSpace(value))
	for _, role := range Roles {
		if v == strings.ToLower(string(role)) || v == strings.ToLower(roleLabels[role]) {
			return role, true
		}
	}
	return "", false
}

// StopStatus is the lifecycle status of a delivery stop
type StopStatus string

const (
	StopPending   StopStatus = "PENDING"
	StopCompleted StopStatus = "COMPLETED"
	StopFailed    StopStatus = "FAILED"
)

// DateLayout is the wire format of calendar days
const DateLayout = "2006-01-02"

// DisplayDateLayout is the pt-BR day/month/year format used in print views
const DisplayDateLayout = "02/01/2006"
