package model

import (
	"strings"
	"time"
)

var (
	// CandidateActive indicates the candidate is actively in the pipeline
	CandidateActive = CandidateStatus("ACTIVE")
	// CandidateInactive indicates the candidate paused their search
	CandidateInactive = CandidateStatus("INACTIVE")
	// CandidateHired indicates the candidate accepted an offer and started
	CandidateHired = CandidateStatus("HIRED")
	// CandidateBlacklisted indicates the candidate may not be considered again
	CandidateBlacklisted = CandidateStatus("BLACKLISTED")
)

// CandidateStatus is the lifecycle status of a candidate record
type CandidateStatus string

// ParseCandidateStatus validates a raw status string from a request
func ParseCandidateStatus(raw string) (CandidateStatus, bool) {
	switch s := CandidateStatus(raw); s {
	case CandidateActive, CandidateInactive, CandidateHired, CandidateBlacklisted:
		return s, true
	}
	return "", false
}

// Candidate represents a candidate profile in the ATS.
// Records are immutable once stored except for Status, which is replaced
// wholesale on update.
type Candidate struct {
	ID                string          `json:"id"`
	Name              string          `json:"name"`
	Email             string          `json:"email"`
	Phone             string          `json:"phone"`
	Location          string          `json:"location"`
	Skills            []string        `json:"skills"`
	YearsOfExperience int             `json:"years_of_experience"`
	CurrentRole       string          `json:"current_role"`
	CurrentCompany    string          `json:"current_company"`
	Status            CandidateStatus `json:"status"`
	Summary           string          `json:"summary"`
	LinkedinURL       string          `json:"linkedin_url"`
	CreatedAt         time.Time       `json:"created_at"`
}

// HasSkill reports whether the candidate lists the skill, case-insensitively
func (c Candidate) HasSkill(skill string) bool {
	for _, s := range c.Skills {
		if strings.EqualFold(s, skill) {
			return true
		}
	}
	return false
}
