package model

import "time"

var (
	AssessmentCodingChallenge    = AssessmentType("CODING_CHALLENGE")
	AssessmentSystemDesign       = AssessmentType("SYSTEM_DESIGN")
	AssessmentTechnicalScreening = AssessmentType("TECHNICAL_SCREENING")
	AssessmentBehavioral         = AssessmentType("BEHAVIORAL")
	AssessmentTakeHomeProject    = AssessmentType("TAKE_HOME_PROJECT")
)

// AssessmentType is the kind of evaluation a candidate completed
type AssessmentType string

// ParseAssessmentType validates a raw assessment type string from a request
func ParseAssessmentType(raw string) (AssessmentType, bool) {
	switch t := AssessmentType(raw); t {
	case AssessmentCodingChallenge, AssessmentSystemDesign,
		AssessmentTechnicalScreening, AssessmentBehavioral,
		AssessmentTakeHomeProject:
		return t, true
	}
	return "", false
}

// AssessmentResult records one completed assessment.
// Percentile is supplied by the assessment platform, not computed here.
type AssessmentResult struct {
	ID            string         `json:"id"`
	CandidateID   string         `json:"candidate_id"`
	ApplicationID string         `json:"application_id"`
	Type          AssessmentType `json:"type"`
	Score         float64        `json:"score"`
	MaxScore      float64        `json:"max_score"`
	Percentile    int            `json:"percentile"`
	CompletedAt   time.Time      `json:"completed_at"`
	Summary       string         `json:"summary"`
	Breakdown     map[string]any `json:"breakdown"`
}

// ScorePercent is the raw score as a percentage of the maximum, 0 when
// MaxScore is not positive
func (a AssessmentResult) ScorePercent() float64 {
	if a.MaxScore <= 0 {
		return 0
	}
	return a.Score / a.MaxScore * 100
}
