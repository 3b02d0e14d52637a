package workflow

import (
	"fmt"

	"talentpipe-backend/internal/model"
)

// StageSLADays is the expected maximum number of days an application should
// sit in each stage. Terminal statuses carry no SLA.
var StageSLADays = map[model.ApplicationStatus]int{
	model.StatusReceived:           2,
	model.StatusScreening:          5,
	model.StatusPhoneInterview:     3,
	model.StatusTechnicalInterview: 7,
	model.StatusFinalInterview:     5,
	model.StatusOfferExtended:      5,
}

// NoSLASentinel is the numeric default for read paths that render a SLA
// figure for statuses without one
const NoSLASentinel = 999

// StageSLA returns the SLA in days for a status; ok is false when the
// status has none
func StageSLA(s model.ApplicationStatus) (int, bool) {
	sla, ok := StageSLADays[s]
	return sla, ok
}

// SLAStatus classifies the application against its stage SLA:
// "OVERDUE by N days", "AT_LIMIT", "ON_TRACK (N days remaining)", or
// "NO_SLA" for statuses without one.
func (e *Engine) SLAStatus(a model.Application) string {
	sla, ok := StageSLADays[a.Status]
	if !ok {
		return "NO_SLA"
	}
	days := e.DaysInCurrentStage(a)
	switch {
	case days > sla:
		return fmt.Sprintf("OVERDUE by %d days", days-sla)
	case days == sla:
		return "AT_LIMIT"
	default:
		return fmt.Sprintf("ON_TRACK (%d days remaining)", sla-days)
	}
}

// StageDuration is the time-in-stage report for one application
type StageDuration struct {
	ApplicationID   string                  `json:"application_id"`
	Status          model.ApplicationStatus `json:"status"`
	DaysInStage     int                     `json:"days_in_stage"`
	ExpectedSLADays int                     `json:"expected_sla_days"`
	SLABreached     bool                    `json:"sla_breached"`
	BreachByDays    int                     `json:"breach_by_days"`
}

// Duration reports how long the application has sat in its current stage
// compared to the expected SLA
func (e *Engine) Duration(a model.Application) StageDuration {
	days := e.DaysInCurrentStage(a)
	sla := StageSLADays[a.Status]
	d := StageDuration{
		ApplicationID:   a.ID,
		Status:          a.Status,
		DaysInStage:     days,
		ExpectedSLADays: sla,
	}
	if sla > 0 && days > sla {
		d.SLABreached = true
		d.BreachByDays = days - sla
	}
	return d
}
