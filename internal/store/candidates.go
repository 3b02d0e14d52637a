package store

import (
	"sort"
	"strings"

	"github.com/google/uuid"

	"talentpipe-backend/internal/apperr"
	"talentpipe-backend/internal/model"
)

// CandidateSearch carries the optional filters for SearchCandidates.
// Zero values mean "no filter".
type CandidateSearch struct {
	Query         string
	Skills        []string
	MinExperience int
	Location      string
}

// FindCandidate looks up a candidate by id
func (s *Store) FindCandidate(id string) (model.Candidate, error) {
	c, ok := s.candidates.get(id)
	if !ok {
		return model.Candidate{}, apperr.NotFound("candidate", id)
	}
	return c, nil
}

// ListCandidates returns every candidate sorted by id ascending
func (s *Store) ListCandidates() []model.Candidate {
	return filtered(&s.candidates,
		func(model.Candidate) bool { return true },
		func(a, b model.Candidate) bool { return a.ID < b.ID })
}

// CandidatePage returns up to pageSize candidates, in id order, strictly
// after the afterID cursor. An empty afterID starts from the beginning.
// pageSize is bounded to [1, 100]; values outside fall back to 20.
func (s *Store) CandidatePage(afterID string, pageSize int) []model.Candidate {
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}
	all := s.ListCandidates()
	start := 0
	if afterID != "" {
		for i, c := range all {
			if c.ID == afterID {
				start = i + 1
				break
			}
		}
	}
	end := start + pageSize
	if end > len(all) {
		end = len(all)
	}
	return all[start:end]
}

// SearchCandidates filters by case-insensitive substring over
// name/role/summary, any-skill intersection, minimum experience, and
// location substring; results are sorted by id.
func (s *Store) SearchCandidates(q CandidateSearch) []model.Candidate {
	query := strings.ToLower(q.Query)
	location := strings.ToLower(q.Location)
	return filtered(&s.candidates,
		func(c model.Candidate) bool {
			if query != "" &&
				!strings.Contains(strings.ToLower(c.Name), query) &&
				!strings.Contains(strings.ToLower(c.CurrentRole), query) &&
				!strings.Contains(strings.ToLower(c.Summary), query) {
				return false
			}
			if len(q.Skills) > 0 {
				any := false
				for _, skill := range q.Skills {
					if c.HasSkill(skill) {
						any = true
						break
					}
				}
				if !any {
					return false
				}
			}
			if c.YearsOfExperience < q.MinExperience {
				return false
			}
			if location != "" && !strings.Contains(strings.ToLower(c.Location), location) {
				return false
			}
			return true
		},
		func(a, b model.Candidate) bool { return a.ID < b.ID })
}

// CandidatesByStatus returns candidates with the given lifecycle status,
// sorted by id
func (s *Store) CandidatesByStatus(status model.CandidateStatus) []model.Candidate {
	return filtered(&s.candidates,
		func(c model.Candidate) bool { return c.Status == status },
		func(a, b model.Candidate) bool { return a.ID < b.ID })
}

// AddCandidate stores a new candidate record. A missing id is assigned; a
// missing status defaults to ACTIVE; CreatedAt is stamped if zero.
func (s *Store) AddCandidate(c model.Candidate) model.Candidate {
	if c.ID == "" {
		c.ID = "C-" + uuid.NewString()
	}
	if c.Status == "" {
		c.Status = model.CandidateActive
	}
	if c.CreatedAt.IsZero() {
		c.CreatedAt = s.now()
	}
	s.candidates.put(c.ID, c)
	return c
}

// UpdateCandidateStatus replaces the candidate's lifecycle status wholesale
func (s *Store) UpdateCandidateStatus(id string, status model.CandidateStatus) (model.Candidate, error) {
	c, ok := s.candidates.get(id)
	if !ok {
		return model.Candidate{}, apperr.NotFound("candidate", id)
	}
	c.Status = status
	s.candidates.put(id, c)
	return c, nil
}

// AllSkills returns the distinct, sorted union of every candidate's skills
func (s *Store) AllSkills() []string {
	seen := map[string]bool{}
	for _, c := range s.candidates.snapshot() {
		for _, skill := range c.Skills {
			seen[skill] = true
		}
	}
	out := make([]string, 0, len(seen))
	for skill := range seen {
		out = append(out, skill)
	}
	sort.Strings(out)
	return out
}
