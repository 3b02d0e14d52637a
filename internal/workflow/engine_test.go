package workflow

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"talentpipe-backend/internal/apperr"
	"talentpipe-backend/internal/model"
	"talentpipe-backend/internal/store"
)

var testBase = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func newTestEngine(t *testing.T) (*store.Store, *Engine) {
	t.Helper()
	s := store.NewWithClock(func() time.Time { return testBase })
	e := NewEngine(s, nil)
	e.now = func() time.Time { return testBase }
	return s, e
}

func TestApplyTransition_success(t *testing.T) {
	s, e := newTestEngine(t)

	// A003 is seeded in SCREENING
	a, err := e.ApplyTransition("A003", model.StatusPhoneInterview, "recruiter-1", "Resume looks good")
	require.NoError(t, err)

	assert.Equal(t, model.StatusPhoneInterview, a.Status)
	last := a.StatusHistory[len(a.StatusHistory)-1]
	assert.Equal(t, model.StatusPhoneInterview, last.Status)
	assert.Equal(t, "recruiter-1", last.ChangedBy)
	assert.Equal(t, "Resume looks good", last.Reason)
	assert.Equal(t, 0, a.CurrentInterviewRound, "phone interview must not bump the round")

	stored, err := s.FindApplication("A003")
	require.NoError(t, err)
	assert.Equal(t, a.Status, stored.Status)
	assert.Len(t, stored.StatusHistory, 3)
}

func TestApplyTransition_invalidTransition(t *testing.T) {
	_, e := newTestEngine(t)

	// SCREENING cannot jump straight to a technical interview
	_, err := e.ApplyTransition("A003", model.StatusTechnicalInterview, "recruiter-1", "skipping ahead")
	require.Error(t, err)
	assert.True(t, apperr.IsInvalidArgument(err))
}

func TestApplyTransition_terminalHasNoExit(t *testing.T) {
	_, e := newTestEngine(t)

	// A005 is seeded HIRED
	for _, next := range model.AllStatuses {
		_, err := e.ApplyTransition("A005", next, "recruiter-3", "should fail")
		assert.Error(t, err, "HIRED -> %s must be rejected", next)
	}
}

func TestApplyTransition_notFound(t *testing.T) {
	_, e := newTestEngine(t)

	_, err := e.ApplyTransition("A999", model.StatusScreening, "system", "")
	require.Error(t, err)
	assert.True(t, apperr.IsNotFound(err))
}

func TestApplyTransition_roundIncrementsOnlyOnInterviewStages(t *testing.T) {
	_, e := newTestEngine(t)

	steps := []struct {
		next      model.ApplicationStatus
		wantRound int
	}{
		{model.StatusPhoneInterview, 0},
		{model.StatusTechnicalInterview, 1},
		{model.StatusFinalInterview, 2},
		{model.StatusOfferExtended, 2},
		{model.StatusOfferAccepted, 2},
		{model.StatusHired, 2},
	}

	round := 0
	for _, step := range steps {
		a, err := e.ApplyTransition("A003", step.next, "recruiter-1", "advance")
		require.NoError(t, err)
		assert.Equal(t, step.wantRound, a.CurrentInterviewRound, "round after %s", step.next)
		assert.GreaterOrEqual(t, a.CurrentInterviewRound, round, "round must be non-decreasing")
		round = a.CurrentInterviewRound

		last := a.StatusHistory[len(a.StatusHistory)-1]
		assert.Equal(t, a.Status, last.Status, "history tail must equal current status")
	}
}

func TestAllowedNext(t *testing.T) {
	assert.Equal(t,
		[]model.ApplicationStatus{model.StatusOfferAccepted, model.StatusOfferDeclined, model.StatusWithdrawn},
		AllowedNext(model.StatusOfferExtended))
	assert.Empty(t, AllowedNext(model.StatusRejected))
}

func TestIsTerminal(t *testing.T) {
	for _, s := range []model.ApplicationStatus{
		model.StatusHired, model.StatusRejected, model.StatusWithdrawn, model.StatusOfferDeclined,
	} {
		assert.True(t, IsTerminal(s), "%s", s)
	}
	assert.False(t, IsTerminal(model.StatusReceived))
	assert.False(t, IsTerminal(model.StatusOfferAccepted))
}

func TestLastStatusChange_emptyHistoryFallsBackToAppliedAt(t *testing.T) {
	s, e := newTestEngine(t)

	applied := testBase.AddDate(0, 0, -4)
	s.SaveApplication(model.Application{
		ID: "A900", CandidateID: "C001", JobID: "J001",
		Status: model.StatusReceived, AppliedAt: applied,
	})
	a, err := s.FindApplication("A900")
	require.NoError(t, err)
	assert.Equal(t, applied, e.LastStatusChange(a))
	assert.Equal(t, 4, e.DaysInCurrentStage(a))
}

func TestFindStuck(t *testing.T) {
	_, e := newTestEngine(t)

	// Seeded non-terminal last changes: A001 3d, A002 7d, A003 7d, A004 5d, A007 1d
	stuck := e.FindStuck(5)
	ids := make([]string, 0, len(stuck))
	for _, a := range stuck {
		ids = append(ids, a.ID)
	}
	assert.Equal(t, []string{"A002", "A003"}, ids)
}

func TestFindStuck_excludesTerminal(t *testing.T) {
	s, e := newTestEngine(t)

	// A non-terminal application untouched for 10 days is stuck at 7...
	s.SaveApplication(model.Application{
		ID: "A901", CandidateID: "C001", JobID: "J001",
		Status: model.StatusScreening, AppliedAt: testBase.AddDate(0, 0, -10),
	})
	// ...a HIRED one with the same age is not
	s.SaveApplication(model.Application{
		ID: "A902", CandidateID: "C002", JobID: "J001",
		Status: model.StatusHired, AppliedAt: testBase.AddDate(0, 0, -10),
	})

	stuck := e.FindStuck(7)
	ids := make([]string, 0, len(stuck))
	for _, a := range stuck {
		ids = append(ids, a.ID)
	}
	assert.Contains(t, ids, "A901")
	assert.NotContains(t, ids, "A902")
}
