package store

import (
	"talentpipe-backend/internal/apperr"
	"talentpipe-backend/internal/model"
)

// AssessmentsByCandidate returns a candidate's assessment results, most
// recently completed first
func (s *Store) AssessmentsByCandidate(candidateID string) []model.AssessmentResult {
	return filtered(&s.assessments,
		func(a model.AssessmentResult) bool { return a.CandidateID == candidateID },
		func(a, b model.AssessmentResult) bool { return a.CompletedAt.After(b.CompletedAt) })
}

// AssessmentsByApplication returns an application's assessment results, most
// recently completed first
func (s *Store) AssessmentsByApplication(applicationID string) []model.AssessmentResult {
	return filtered(&s.assessments,
		func(a model.AssessmentResult) bool { return a.ApplicationID == applicationID },
		func(a, b model.AssessmentResult) bool { return a.CompletedAt.After(b.CompletedAt) })
}

// LatestAssessmentByType returns the candidate's most recent assessment of
// the given type
func (s *Store) LatestAssessmentByType(candidateID string, t model.AssessmentType) (model.AssessmentResult, error) {
	results := s.AssessmentsByCandidate(candidateID)
	for _, a := range results {
		if a.Type == t {
			return a, nil
		}
	}
	return model.AssessmentResult{}, apperr.NotFound("assessment", candidateID+"/"+string(t))
}

// AverageScorePercent averages the candidate's assessment score percentages.
// The second return is false when the candidate has no assessments.
func (s *Store) AverageScorePercent(candidateID string) (float64, bool) {
	results := s.AssessmentsByCandidate(candidateID)
	if len(results) == 0 {
		return 0, false
	}
	sum := 0.0
	for _, a := range results {
		sum += a.ScorePercent()
	}
	return sum / float64(len(results)), true
}
