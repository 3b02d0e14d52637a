package controller

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"talentpipe-backend/internal/testutil"
)

func TestGetJob_success(t *testing.T) {
	r, pc := newTestController()
	r.GET("/job/:id", pc.GetJob)

	rec, resp := testutil.MakeJSONRequest(nil, r, "/job/J001", http.MethodGet)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Senior Software Engineer", resp["title"])
	assert.Equal(t, "Engineering", resp["department"])
	assert.Equal(t, "Sarah Connor", resp["hiring_manager_name"])
}

func TestGetJob_notFound(t *testing.T) {
	r, pc := newTestController()
	r.GET("/job/:id", pc.GetJob)

	rec, _ := testutil.MakeJSONRequest(nil, r, "/job/J999", http.MethodGet)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestListOpenJobs(t *testing.T) {
	r, pc := newTestController()
	r.GET("/job", pc.ListOpenJobs)

	rec, resp := testutil.MakeListRequest(r, "/job")

	assert.Equal(t, http.StatusOK, rec.Code)
	require.Len(t, resp, 2, "J003 is FILLED")
	assert.Equal(t, "J001", resp[0]["id"])
	assert.Equal(t, "J002", resp[1]["id"])
}

func TestListOpenJobs_departmentFilter(t *testing.T) {
	r, pc := newTestController()
	r.GET("/job", pc.ListOpenJobs)

	rec, resp := testutil.MakeListRequest(r, "/job?department=Data%20Science")

	assert.Equal(t, http.StatusOK, rec.Code)
	require.Len(t, resp, 1)
	assert.Equal(t, "J002", resp[0]["id"])
}

func TestGetJobApplications(t *testing.T) {
	r, pc := newTestController()
	r.GET("/job/:id/applications", pc.GetJobApplications)

	rec, resp := testutil.MakeListRequest(r, "/job/J001/applications")

	assert.Equal(t, http.StatusOK, rec.Code)
	require.Len(t, resp, 4)
	assert.Equal(t, "A007", resp[0]["id"], "most recently applied first")
}

func TestGetJobApplications_jobNotFound(t *testing.T) {
	r, pc := newTestController()
	r.GET("/job/:id/applications", pc.GetJobApplications)

	rec, _ := testutil.MakeJSONRequest(nil, r, "/job/J999/applications", http.MethodGet)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGetSkillsGap(t *testing.T) {
	r, pc := newTestController()
	r.GET("/match/:candidate_id/:job_id", pc.GetSkillsGap)

	rec, resp := testutil.MakeJSONRequest(nil, r, "/match/C002/J001", http.MethodGet)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Bob Smith", resp["candidate_name"])
	// no required overlap, no preferred overlap, 5 years of experience
	assert.Equal(t, float64(5), resp["overall_score"])
	assert.Equal(t, "WEAK_MATCH", resp["recommendation"])

	missing, ok := resp["required_missing"].([]interface{})
	require.True(t, ok)
	assert.Len(t, missing, 4)
}

func TestGetSkillsGap_notFound(t *testing.T) {
	r, pc := newTestController()
	r.GET("/match/:candidate_id/:job_id", pc.GetSkillsGap)

	rec, _ := testutil.MakeJSONRequest(nil, r, "/match/C999/J001", http.MethodGet)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGetWorkflowTransitions_fullGraph(t *testing.T) {
	r, pc := newTestController()
	r.GET("/workflow/transitions", pc.GetWorkflowTransitions)

	rec, resp := testutil.MakeJSONRequest(nil, r, "/workflow/transitions", http.MethodGet)

	assert.Equal(t, http.StatusOK, rec.Code)
	states, ok := resp["states"].([]interface{})
	require.True(t, ok)
	assert.Len(t, states, 11)

	terminal, ok := resp["terminal_states"].([]interface{})
	require.True(t, ok)
	assert.Len(t, terminal, 4)
}

func TestGetWorkflowTransitions_fromState(t *testing.T) {
	r, pc := newTestController()
	r.GET("/workflow/transitions", pc.GetWorkflowTransitions)

	rec, resp := testutil.MakeJSONRequest(nil, r, "/workflow/transitions?from=OFFER_EXTENDED", http.MethodGet)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, false, resp["is_terminal"])
	assert.Equal(t, float64(5), resp["expected_sla_days"])

	next, ok := resp["allowed_next"].([]interface{})
	require.True(t, ok)
	assert.Equal(t, []interface{}{"OFFER_ACCEPTED", "OFFER_DECLINED", "WITHDRAWN"}, next)
}

func TestGetWorkflowTransitions_invalidFrom(t *testing.T) {
	r, pc := newTestController()
	r.GET("/workflow/transitions", pc.GetWorkflowTransitions)

	rec, _ := testutil.MakeJSONRequest(nil, r, "/workflow/transitions?from=NOWHERE", http.MethodGet)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
