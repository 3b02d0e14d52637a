package model

import "time"

var (
	// JobOpen indicates the requisition is accepting applications
	JobOpen = JobStatus("OPEN")
	// JobFilled indicates the position has been filled
	JobFilled = JobStatus("FILLED")
	// JobClosed indicates the requisition was closed without a hire
	JobClosed = JobStatus("CLOSED")
	// JobOnHold indicates hiring is paused
	JobOnHold = JobStatus("ON_HOLD")
)

// JobStatus is the lifecycle status of a job requisition
type JobStatus string

var (
	JobFullTime   = JobType("FULL_TIME")
	JobPartTime   = JobType("PART_TIME")
	JobContract   = JobType("CONTRACT")
	JobInternship = JobType("INTERNSHIP")
)

// JobType is the employment type of a requisition
type JobType string

// Job represents a job requisition.
// RequiredSkills gate the bulk of a candidate's match score; PreferredSkills
// contribute a smaller bonus.
type Job struct {
	ID                string    `json:"id"`
	Title             string    `json:"title"`
	Department        string    `json:"department"`
	Location          string    `json:"location"`
	Type              JobType   `json:"type"`
	Status            JobStatus `json:"status"`
	Description       string    `json:"description"`
	RequiredSkills    []string  `json:"required_skills"`
	PreferredSkills   []string  `json:"preferred_skills"`
	SalaryRange       string    `json:"salary_range"`
	HiringManagerID   string    `json:"hiring_manager_id"`
	HiringManagerName string    `json:"hiring_manager_name"`
	OpenedAt          time.Time `json:"opened_at"`
}
