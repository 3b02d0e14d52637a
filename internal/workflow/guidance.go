package workflow

import "talentpipe-backend/internal/model"

// Guidance is the candidate-facing explanation of a pipeline stage
type Guidance struct {
	WhatIsHappening string   `json:"what_is_happening"`
	CandidateAction string   `json:"candidate_action"`
	TypicalWait     string   `json:"typical_wait"`
	PossibleNext    []string `json:"possible_next"`
}

var stageGuidance = map[model.ApplicationStatus]Guidance{
	model.StatusReceived: {
		WhatIsHappening: "Your application has been submitted and is queued for recruiter review.",
		CandidateAction: "No action needed. Sit tight.",
		TypicalWait:     "3-5 business days",
		PossibleNext:    []string{"Move to Screening", "Rejection if not a profile fit"},
	},
	model.StatusScreening: {
		WhatIsHappening: "A recruiter is reviewing your profile against the job requirements.",
		CandidateAction: "Ensure your LinkedIn and profile are current. You may receive an email to schedule a call.",
		TypicalWait:     "5-7 business days",
		PossibleNext:    []string{"Phone Interview invitation", "Rejection with feedback"},
	},
	model.StatusPhoneInterview: {
		WhatIsHappening: "You are in or have completed a phone screen with the recruiter.",
		CandidateAction: "Prepare a concise pitch: role motivation, key highlights, availability.",
		TypicalWait:     "3-5 business days after call",
		PossibleNext:    []string{"Technical Interview / Assessment", "Rejection"},
	},
	model.StatusTechnicalInterview: {
		WhatIsHappening: "You are in the technical evaluation phase (coding challenge, system design, or take-home).",
		CandidateAction: "Review fundamentals relevant to the job's required skills. Practice on the assessment platform if a link was sent.",
		TypicalWait:     "7-10 business days",
		PossibleNext:    []string{"Final Interview with hiring team", "Rejection with technical feedback"},
	},
	model.StatusFinalInterview: {
		WhatIsHappening: "You are meeting the hiring team, engineering leadership, or executive stakeholders.",
		CandidateAction: "Prepare STAR stories, questions about the team/roadmap, and salary expectations.",
		TypicalWait:     "5-7 business days",
		PossibleNext:    []string{"Offer Extended", "Rejection"},
	},
	model.StatusOfferExtended: {
		WhatIsHappening: "A formal offer has been made. The ball is in your court.",
		CandidateAction: "Review compensation, equity, benefits. Respond within the deadline (usually 5 business days).",
		TypicalWait:     "Your decision",
		PossibleNext:    []string{"Accept -> Hired", "Decline -> Process closes"},
	},
	model.StatusHired: {
		WhatIsHappening: "Congratulations. Offer accepted and position filled.",
		CandidateAction: "Complete onboarding paperwork and prepare for your start date.",
		TypicalWait:     "N/A",
		PossibleNext:    []string{},
	},
	model.StatusRejected: {
		WhatIsHappening: "Your application was not selected to move forward at this time.",
		CandidateAction: "Request feedback if not provided. Continue building skills. You may reapply after 6 months.",
		TypicalWait:     "N/A",
		PossibleNext:    []string{"Reapply after 6 months", "Apply to a different role"},
	},
}

// GuidanceFor returns stage guidance for a status, with a generic fallback
// for stages that have none
func GuidanceFor(s model.ApplicationStatus) Guidance {
	if g, ok := stageGuidance[s]; ok {
		return g
	}
	return Guidance{
		WhatIsHappening: "Status: " + string(s),
		CandidateAction: "Contact your recruiter for details.",
		TypicalWait:     "Varies",
		PossibleNext:    []string{},
	}
}
