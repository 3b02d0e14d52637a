// Package matching computes candidate-job compatibility scores from
// required/preferred skill overlap and experience. Scoring is pure: it never
// mutates the store and always returns the same result for the same inputs.
package matching

import (
	"math"
	"sort"
	"strings"

	"talentpipe-backend/internal/model"
	"talentpipe-backend/internal/store"
)

// Recommendation buckets for the overall score
const (
	StrongMatch  = "STRONG_MATCH"
	PartialMatch = "PARTIAL_MATCH"
	WeakMatch    = "WEAK_MATCH"
)

// Result is the match score breakdown for one candidate-job pair
type Result struct {
	CandidateID       string   `json:"candidate_id"`
	CandidateName     string   `json:"candidate_name"`
	JobID             string   `json:"job_id"`
	JobTitle          string   `json:"job_title"`
	OverallScore      int      `json:"overall_score"`
	RequiredMatched   []string `json:"required_matched"`
	RequiredMissing   []string `json:"required_missing"`
	PreferredMatched  []string `json:"preferred_matched"`
	YearsOfExperience int      `json:"years_of_experience"`
	Recommendation    string   `json:"recommendation"`
}

// Score computes the 0-100 compatibility between a candidate and a job.
//
// Required skills carry 70 points scaled by coverage; an empty required list
// is vacuously satisfied and earns the full 100. Preferred skills carry a
// 20-point bonus (0 when the list is empty). Experience adds up to 10
// points, linear to 10 years and flat beyond. The sum is rounded and capped
// at 100.
func Score(c model.Candidate, j model.Job) Result {
	candidateSkills := make(map[string]bool, len(c.Skills))
	for _, s := range c.Skills {
		candidateSkills[strings.ToLower(s)] = true
	}

	requiredMatched := []string{}
	requiredMissing := []string{}
	for _, s := range j.RequiredSkills {
		if candidateSkills[strings.ToLower(s)] {
			requiredMatched = append(requiredMatched, s)
		} else {
			requiredMissing = append(requiredMissing, s)
		}
	}
	preferredMatched := []string{}
	for _, s := range j.PreferredSkills {
		if candidateSkills[strings.ToLower(s)] {
			preferredMatched = append(preferredMatched, s)
		}
	}

	requiredScore := 100.0
	if len(j.RequiredSkills) > 0 {
		requiredScore = float64(len(requiredMatched)) / float64(len(j.RequiredSkills)) * 70
	}
	preferredScore := 0.0
	if len(j.PreferredSkills) > 0 {
		preferredScore = float64(len(preferredMatched)) / float64(len(j.PreferredSkills)) * 20
	}
	expScore := math.Min(float64(c.YearsOfExperience), 10)

	overall := int(math.Round(requiredScore + preferredScore + expScore))
	if overall > 100 {
		overall = 100
	}

	recommendation := WeakMatch
	switch {
	case overall >= 70:
		recommendation = StrongMatch
	case overall >= 50:
		recommendation = PartialMatch
	}

	return Result{
		CandidateID:       c.ID,
		CandidateName:     c.Name,
		JobID:             j.ID,
		JobTitle:          j.Title,
		OverallScore:      overall,
		RequiredMatched:   requiredMatched,
		RequiredMissing:   requiredMissing,
		PreferredMatched:  preferredMatched,
		YearsOfExperience: c.YearsOfExperience,
		Recommendation:    recommendation,
	}
}

// Matcher resolves entity ids against the store before scoring
type Matcher struct {
	store *store.Store
}

// NewMatcher binds the matcher to a store
func NewMatcher(s *store.Store) *Matcher {
	return &Matcher{store: s}
}

// MatchScore scores one candidate against one job, failing only on an
// unresolvable id
func (m *Matcher) MatchScore(candidateID, jobID string) (Result, error) {
	c, err := m.store.FindCandidate(candidateID)
	if err != nil {
		return Result{}, err
	}
	j, err := m.store.FindJob(jobID)
	if err != nil {
		return Result{}, err
	}
	return Score(c, j), nil
}

// FindMatchingJobs scores the candidate against every open job and returns
// results at or above minScore, best first; ties break on job id for
// deterministic output
func (m *Matcher) FindMatchingJobs(candidateID string, minScore int) ([]Result, error) {
	c, err := m.store.FindCandidate(candidateID)
	if err != nil {
		return nil, err
	}
	results := []Result{}
	for _, j := range m.store.OpenJobs() {
		r := Score(c, j)
		if r.OverallScore >= minScore {
			results = append(results, r)
		}
	}
	sort.Slice(results, func(i, k int) bool {
		if results[i].OverallScore != results[k].OverallScore {
			return results[i].OverallScore > results[k].OverallScore
		}
		return results[i].JobID < results[k].JobID
	})
	return results, nil
}
