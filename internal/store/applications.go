package store

import (
	"fmt"

	"talentpipe-backend/internal/apperr"
	"talentpipe-backend/internal/model"
)

// FindApplication looks up an application by id
func (s *Store) FindApplication(id string) (model.Application, error) {
	a, ok := s.applications.get(id)
	if !ok {
		return model.Application{}, apperr.NotFound("application", id)
	}
	return a, nil
}

// ListApplications returns every application sorted by id ascending
func (s *Store) ListApplications() []model.Application {
	return filtered(&s.applications,
		func(model.Application) bool { return true },
		func(a, b model.Application) bool { return a.ID < b.ID })
}

// ApplicationsByCandidate returns the candidate's applications, most
// recently applied first
func (s *Store) ApplicationsByCandidate(candidateID string) []model.Application {
	return filtered(&s.applications,
		func(a model.Application) bool { return a.CandidateID == candidateID },
		func(a, b model.Application) bool { return a.AppliedAt.After(b.AppliedAt) })
}

// ApplicationsByJob returns a requisition's applications, most recently
// applied first
func (s *Store) ApplicationsByJob(jobID string) []model.Application {
	return filtered(&s.applications,
		func(a model.Application) bool { return a.JobID == jobID },
		func(a, b model.Application) bool { return a.AppliedAt.After(b.AppliedAt) })
}

// ApplicationsByStatus returns applications in the given workflow state,
// sorted by id
func (s *Store) ApplicationsByStatus(status model.ApplicationStatus) []model.Application {
	return filtered(&s.applications,
		func(a model.Application) bool { return a.Status == status },
		func(a, b model.Application) bool { return a.ID < b.ID })
}

// SaveApplication swaps in a new application snapshot. The workflow engine
// is the sole caller for status mutations.
func (s *Store) SaveApplication(a model.Application) {
	s.applications.put(a.ID, a)
}

// AddNote appends a recruiter note to the application. Note ids come from a
// shared atomic counter, so concurrent appends never collide.
func (s *Store) AddNote(applicationID, note, authorID, authorName string) (model.Application, error) {
	a, ok := s.applications.get(applicationID)
	if !ok {
		return model.Application{}, apperr.NotFound("application", applicationID)
	}
	n := model.RecruiterNote{
		ID:            fmt.Sprintf("N%d", s.noteSeq.Add(1)),
		ApplicationID: applicationID,
		Note:          note,
		AuthorID:      authorID,
		AuthorName:    authorName,
		CreatedAt:     s.now(),
	}
	notes := make([]model.RecruiterNote, len(a.Notes), len(a.Notes)+1)
	copy(notes, a.Notes)
	a.Notes = append(notes, n)
	s.applications.put(applicationID, a)
	return a, nil
}

// PipelineStats counts applications per workflow state
func (s *Store) PipelineStats() map[model.ApplicationStatus]int {
	stats := map[model.ApplicationStatus]int{}
	for _, a := range s.applications.snapshot() {
		stats[a.Status]++
	}
	return stats
}
