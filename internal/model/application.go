package model

import "time"

var (
	// StatusReceived is the unique initial workflow state
	StatusReceived = ApplicationStatus("RECEIVED")
	// StatusScreening indicates a recruiter is reviewing the profile
	StatusScreening = ApplicationStatus("SCREENING")
	// StatusPhoneInterview indicates the phone screen stage
	StatusPhoneInterview = ApplicationStatus("PHONE_INTERVIEW")
	// StatusTechnicalInterview indicates the technical evaluation stage
	StatusTechnicalInterview = ApplicationStatus("TECHNICAL_INTERVIEW")
	// StatusFinalInterview indicates the hiring-team interview stage
	StatusFinalInterview = ApplicationStatus("FINAL_INTERVIEW")
	// StatusOfferExtended indicates a formal offer has been made
	StatusOfferExtended = ApplicationStatus("OFFER_EXTENDED")
	// StatusOfferAccepted indicates the candidate accepted the offer
	StatusOfferAccepted = ApplicationStatus("OFFER_ACCEPTED")
	// StatusOfferDeclined is terminal: the candidate declined the offer
	StatusOfferDeclined = ApplicationStatus("OFFER_DECLINED")
	// StatusHired is terminal: offer accepted and position filled
	StatusHired = ApplicationStatus("HIRED")
	// StatusRejected is terminal: the application was not selected
	StatusRejected = ApplicationStatus("REJECTED")
	// StatusWithdrawn is terminal: the candidate withdrew
	StatusWithdrawn = ApplicationStatus("WITHDRAWN")
)

// ApplicationStatus is one state of the application workflow
type ApplicationStatus string

// AllStatuses lists every workflow state in pipeline order
var AllStatuses = []ApplicationStatus{
	StatusReceived, StatusScreening, StatusPhoneInterview,
	StatusTechnicalInterview, StatusFinalInterview, StatusOfferExtended,
	StatusOfferAccepted, StatusOfferDeclined, StatusHired,
	StatusRejected, StatusWithdrawn,
}

// ParseApplicationStatus validates a raw status string from a request
func ParseApplicationStatus(raw string) (ApplicationStatus, bool) {
	for _, s := range AllStatuses {
		if s == ApplicationStatus(raw) {
			return s, true
		}
	}
	return "", false
}

var (
	SourceLinkedin = ApplicationSource("LINKEDIN")
	SourceReferral = ApplicationSource("REFERRAL")
	SourceDirect   = ApplicationSource("DIRECT")
	SourceAgency   = ApplicationSource("AGENCY")
	SourceJobBoard = ApplicationSource("JOB_BOARD")
)

// ApplicationSource is the channel the application came through
type ApplicationSource string

// StatusHistoryEntry is one entry of an application's append-only history.
// Entries are ordered by ChangedAt ascending; the last entry's status always
// equals the owning application's current status.
type StatusHistoryEntry struct {
	Status    ApplicationStatus `json:"status"`
	ChangedAt time.Time         `json:"changed_at"`
	ChangedBy string            `json:"changed_by"`
	Reason    string            `json:"reason"`
}

// RecruiterNote is a free-text note attached to an application.
// Notes are append-only and never edited or deleted.
type RecruiterNote struct {
	ID            string    `json:"id"`
	ApplicationID string    `json:"application_id"`
	Note          string    `json:"note"`
	AuthorID      string    `json:"author_id"`
	AuthorName    string    `json:"author_name"`
	CreatedAt     time.Time `json:"created_at"`
}

// Application represents a candidate's application to a job.
// CandidateID and JobID are plain foreign keys; dangling references are a
// valid, reportable state.
type Application struct {
	ID                    string               `json:"id"`
	CandidateID           string               `json:"candidate_id"`
	JobID                 string               `json:"job_id"`
	Status                ApplicationStatus    `json:"status"`
	Source                ApplicationSource    `json:"source"`
	AppliedAt             time.Time            `json:"applied_at"`
	CurrentInterviewRound int                  `json:"current_interview_round"`
	StatusHistory         []StatusHistoryEntry `json:"status_history"`
	Notes                 []RecruiterNote      `json:"notes"`
}

// LatestNote returns the most recently created note, if any
func (a Application) LatestNote() (RecruiterNote, bool) {
	if len(a.Notes) == 0 {
		return RecruiterNote{}, false
	}
	latest := a.Notes[0]
	for _, n := range a.Notes[1:] {
		if n.CreatedAt.After(latest.CreatedAt) {
			latest = n
		}
	}
	return latest, true
}
