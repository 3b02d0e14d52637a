package store

import (
	"strings"

	"talentpipe-backend/internal/apperr"
	"talentpipe-backend/internal/model"
)

// JobSearch carries optional filters for open-job discovery
type JobSearch struct {
	Skills     []string
	Location   string
	Department string
}

// FindJob looks up a job requisition by id
func (s *Store) FindJob(id string) (model.Job, error) {
	j, ok := s.jobs.get(id)
	if !ok {
		return model.Job{}, apperr.NotFound("job", id)
	}
	return j, nil
}

// ListJobs returns every requisition sorted by id ascending
func (s *Store) ListJobs() []model.Job {
	return filtered(&s.jobs,
		func(model.Job) bool { return true },
		func(a, b model.Job) bool { return a.ID < b.ID })
}

// OpenJobs returns requisitions currently accepting applications, by id
func (s *Store) OpenJobs() []model.Job {
	return filtered(&s.jobs,
		func(j model.Job) bool { return j.Status == model.JobOpen },
		func(a, b model.Job) bool { return a.ID < b.ID })
}

// JobsByDepartment returns requisitions for the department, case-insensitive
func (s *Store) JobsByDepartment(department string) []model.Job {
	return filtered(&s.jobs,
		func(j model.Job) bool { return strings.EqualFold(j.Department, department) },
		func(a, b model.Job) bool { return a.ID < b.ID })
}

// SearchOpenJobs filters open requisitions by any-skill match over required
// and preferred skills, location substring, and department
func (s *Store) SearchOpenJobs(q JobSearch) []model.Job {
	location := strings.ToLower(q.Location)
	return filtered(&s.jobs,
		func(j model.Job) bool {
			if j.Status != model.JobOpen {
				return false
			}
			if len(q.Skills) > 0 && !jobListsAny(j, q.Skills) {
				return false
			}
			if location != "" && !strings.Contains(strings.ToLower(j.Location), location) {
				return false
			}
			if q.Department != "" && !strings.EqualFold(j.Department, q.Department) {
				return false
			}
			return true
		},
		func(a, b model.Job) bool { return a.ID < b.ID })
}

func jobListsAny(j model.Job, skills []string) bool {
	for _, skill := range skills {
		for _, rs := range j.RequiredSkills {
			if strings.EqualFold(rs, skill) {
				return true
			}
		}
		for _, ps := range j.PreferredSkills {
			if strings.EqualFold(ps, skill) {
				return true
			}
		}
	}
	return false
}
