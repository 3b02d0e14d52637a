package matching

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"talentpipe-backend/internal/apperr"
	"talentpipe-backend/internal/model"
	"talentpipe-backend/internal/store"
)

func fixedStore() *store.Store {
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	return store.NewWithClock(func() time.Time { return base })
}

func TestScore_partialMatch(t *testing.T) {
	c := model.Candidate{
		ID: "Cx", Name: "Test Candidate",
		Skills:            []string{"Java", "AWS"},
		YearsOfExperience: 8,
	}
	j := model.Job{
		ID: "Jx", Title: "Test Job",
		RequiredSkills:  []string{"Java", "Kubernetes"},
		PreferredSkills: []string{"AWS"},
	}

	r := Score(c, j)
	// 35 (1/2 required) + 20 (1/1 preferred) + 8 (experience)
	assert.Equal(t, 63, r.OverallScore)
	assert.Equal(t, PartialMatch, r.Recommendation)
	assert.Equal(t, []string{"Java"}, r.RequiredMatched)
	assert.Equal(t, []string{"Kubernetes"}, r.RequiredMissing)
	assert.Equal(t, []string{"AWS"}, r.PreferredMatched)
	assert.Equal(t, 8, r.YearsOfExperience)
}

func TestScore_emptyRequiredIsFullCredit(t *testing.T) {
	c := model.Candidate{ID: "Cx", Skills: []string{"Go"}, YearsOfExperience: 12}
	j := model.Job{ID: "Jx"}

	r := Score(c, j)
	// 100 (vacuous required) + 0 (no preferred) + 10 (capped experience),
	// capped at 100
	assert.Equal(t, 100, r.OverallScore)
	assert.Equal(t, StrongMatch, r.Recommendation)
}

func TestMatchScore_capped(t *testing.T) {
	s := fixedStore()
	s.AddCandidate(model.Candidate{
		ID: "C900", Name: "Perfect Fit",
		Skills:            []string{"Java", "Spring Boot", "Microservices", "AWS", "Kafka", "Kubernetes", "System Design"},
		YearsOfExperience: 15,
	})

	r, err := NewMatcher(s).MatchScore("C900", "J001")
	require.NoError(t, err)
	// raw 70 + 20 + 10 = 100; never exceeds it
	assert.Equal(t, 100, r.OverallScore)
	assert.Equal(t, StrongMatch, r.Recommendation)
}

func TestScore_caseInsensitiveSkills(t *testing.T) {
	c := model.Candidate{ID: "Cx", Skills: []string{"java", "aws"}}
	j := model.Job{ID: "Jx", RequiredSkills: []string{"Java", "AWS"}}

	r := Score(c, j)
	assert.Equal(t, []string{"Java", "AWS"}, r.RequiredMatched)
	assert.Empty(t, r.RequiredMissing)
}

func TestScore_experienceComponent(t *testing.T) {
	j := model.Job{ID: "Jx", RequiredSkills: []string{"Java"}}

	junior := Score(model.Candidate{Skills: []string{"Java"}, YearsOfExperience: 0}, j)
	assert.Equal(t, 70, junior.OverallScore)

	veteran := Score(model.Candidate{Skills: []string{"Java"}, YearsOfExperience: 25}, j)
	assert.Equal(t, 80, veteran.OverallScore, "experience credit is flat past 10 years")
}

func TestScore_deterministic(t *testing.T) {
	c := model.Candidate{ID: "Cx", Skills: []string{"Java", "AWS"}, YearsOfExperience: 8}
	j := model.Job{ID: "Jx", RequiredSkills: []string{"Java", "Kubernetes"}, PreferredSkills: []string{"AWS"}}

	first := Score(c, j)
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, Score(c, j))
	}
}

func TestMatchScore_notFound(t *testing.T) {
	m := NewMatcher(fixedStore())

	_, err := m.MatchScore("C999", "J001")
	require.Error(t, err)
	assert.True(t, apperr.IsNotFound(err))

	_, err = m.MatchScore("C001", "J999")
	require.Error(t, err)
	assert.True(t, apperr.IsNotFound(err))
}

func TestFindMatchingJobs_filtersAndOrders(t *testing.T) {
	m := NewMatcher(fixedStore())

	all, err := m.FindMatchingJobs("C001", 0)
	require.NoError(t, err)
	// J003 is FILLED and never scored; J001 85 beats J002 15
	require.Len(t, all, 2)
	assert.Equal(t, "J001", all[0].JobID)
	assert.Equal(t, 85, all[0].OverallScore)
	assert.Equal(t, StrongMatch, all[0].Recommendation)
	assert.Equal(t, "J002", all[1].JobID)
	assert.Equal(t, 15, all[1].OverallScore)
	assert.Equal(t, WeakMatch, all[1].Recommendation)

	strong, err := m.FindMatchingJobs("C001", 40)
	require.NoError(t, err)
	require.Len(t, strong, 1)
	assert.Equal(t, "J001", strong[0].JobID)
}

func TestFindMatchingJobs_candidateNotFound(t *testing.T) {
	m := NewMatcher(fixedStore())

	_, err := m.FindMatchingJobs("C999", 0)
	require.Error(t, err)
	assert.True(t, apperr.IsNotFound(err))
}
