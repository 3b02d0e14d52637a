// Package workflow implements the application status state machine: the
// transition table, the sole status mutator, and SLA/staleness tracking over
// the append-only history log.
package workflow

import (
	"time"

	"go.uber.org/zap"

	"talentpipe-backend/internal/apperr"
	"talentpipe-backend/internal/model"
	"talentpipe-backend/internal/store"
)

// Transitions is the allowed next-status table. RECEIVED is the unique
// initial state; statuses with no outgoing transitions are terminal.
var Transitions = map[model.ApplicationStatus][]model.ApplicationStatus{
	model.StatusReceived:           {model.StatusScreening, model.StatusRejected, model.StatusWithdrawn},
	model.StatusScreening:          {model.StatusPhoneInterview, model.StatusRejected, model.StatusWithdrawn},
	model.StatusPhoneInterview:     {model.StatusTechnicalInterview, model.StatusRejected, model.StatusWithdrawn},
	model.StatusTechnicalInterview: {model.StatusFinalInterview, model.StatusRejected, model.StatusWithdrawn},
	model.StatusFinalInterview:     {model.StatusOfferExtended, model.StatusRejected, model.StatusWithdrawn},
	model.StatusOfferExtended:      {model.StatusOfferAccepted, model.StatusOfferDeclined, model.StatusWithdrawn},
	model.StatusOfferAccepted:      {model.StatusHired},
	model.StatusHired:              {},
	model.StatusRejected:           {},
	model.StatusWithdrawn:          {},
	model.StatusOfferDeclined:      {},
}

// AllowedNext returns the statuses reachable from s
func AllowedNext(s model.ApplicationStatus) []model.ApplicationStatus {
	next := Transitions[s]
	out := make([]model.ApplicationStatus, len(next))
	copy(out, next)
	return out
}

// IsTerminal reports whether s has no outgoing transitions
func IsTerminal(s model.ApplicationStatus) bool {
	return len(Transitions[s]) == 0
}

// Engine applies status transitions and tracks stage SLAs. It is the sole
// writer of application status, history, and interview round.
type Engine struct {
	store *store.Store
	log   *zap.Logger
	now   func() time.Time
}

// NewEngine binds the engine to a store
func NewEngine(s *store.Store, log *zap.Logger) *Engine {
	if log == nil {
		log = zap.NewNop()
	}
	return &Engine{store: s, log: log, now: time.Now}
}

// ApplyTransition moves the application to newStatus, appending a history
// entry and bumping the interview round on the two interview stages. A
// target not reachable from the current status is rejected.
func (e *Engine) ApplyTransition(id string, newStatus model.ApplicationStatus, actor, reason string) (model.Application, error) {
	a, err := e.store.FindApplication(id)
	if err != nil {
		return model.Application{}, err
	}

	allowed := false
	for _, next := range Transitions[a.Status] {
		if next == newStatus {
			allowed = true
			break
		}
	}
	if !allowed {
		return model.Application{}, apperr.InvalidArgument(
			"invalid transition: %s -> %s", a.Status, newStatus)
	}

	history := make([]model.StatusHistoryEntry, len(a.StatusHistory), len(a.StatusHistory)+1)
	copy(history, a.StatusHistory)
	a.StatusHistory = append(history, model.StatusHistoryEntry{
		Status:    newStatus,
		ChangedAt: e.now(),
		ChangedBy: actor,
		Reason:    reason,
	})
	a.Status = newStatus
	if newStatus == model.StatusTechnicalInterview || newStatus == model.StatusFinalInterview {
		a.CurrentInterviewRound++
	}
	e.store.SaveApplication(a)

	e.log.Info("application transition",
		zap.String("application_id", a.ID),
		zap.String("status", string(newStatus)),
		zap.String("actor", actor))

	return a, nil
}

// LastStatusChange is the timestamp of the most recent history entry, or
// AppliedAt when the history is empty
func (e *Engine) LastStatusChange(a model.Application) time.Time {
	last := a.AppliedAt
	for _, h := range a.StatusHistory {
		if h.ChangedAt.After(last) {
			last = h.ChangedAt
		}
	}
	return last
}

// DaysInCurrentStage is the number of whole days since the last status change
func (e *Engine) DaysInCurrentStage(a model.Application) int {
	return int(e.now().Sub(e.LastStatusChange(a)).Hours() / 24)
}

// FindStuck returns non-terminal applications whose time since the last
// status change exceeds thresholdDays, ordered by id ascending
func (e *Engine) FindStuck(thresholdDays int) []model.Application {
	cutoff := e.now().AddDate(0, 0, -thresholdDays)
	stuck := []model.Application{}
	for _, a := range e.store.ListApplications() {
		if !IsTerminal(a.Status) && e.LastStatusChange(a).Before(cutoff) {
			stuck = append(stuck, a)
		}
	}
	return stuck
}
