// Package store holds the in-memory entity collections and their read
// accessors. The Store is constructed once and passed by reference into
// every component; there is no ambient singleton.
package store

import (
	"sort"
	"sync"
	"sync/atomic"
	"time"

	"talentpipe-backend/internal/model"
)

// collection is a concurrent keyed set of immutable entity snapshots.
// Writes swap the whole value, so a reader never observes a half-applied
// update and writers to different keys do not block each other.
type collection[T any] struct {
	m sync.Map
}

func (c *collection[T]) get(id string) (T, bool) {
	v, ok := c.m.Load(id)
	if !ok {
		var zero T
		return zero, false
	}
	return v.(T), true
}

func (c *collection[T]) put(id string, v T) {
	c.m.Store(id, v)
}

// snapshot returns an unordered copy of every value
func (c *collection[T]) snapshot() []T {
	var out []T
	c.m.Range(func(_, v any) bool {
		out = append(out, v.(T))
		return true
	})
	return out
}

func (c *collection[T]) size() int {
	n := 0
	c.m.Range(func(_, _ any) bool {
		n++
		return true
	})
	return n
}

// filtered returns every value matching keep, sorted by less
func filtered[T any](c *collection[T], keep func(T) bool, less func(a, b T) bool) []T {
	out := []T{}
	for _, v := range c.snapshot() {
		if keep(v) {
			out = append(out, v)
		}
	}
	sort.Slice(out, func(i, j int) bool { return less(out[i], out[j]) })
	return out
}

// Store owns the entity collections for the hiring pipeline
type Store struct {
	candidates   collection[model.Candidate]
	jobs         collection[model.Job]
	applications collection[model.Application]
	assessments  collection[model.AssessmentResult]

	noteSeq atomic.Int64
	now     func() time.Time
}

// New returns a store seeded with the demo dataset, timestamped relative to
// the wall clock
func New() *Store {
	return NewWithClock(time.Now)
}

// NewWithClock is New with an injectable clock, for deterministic tests
func NewWithClock(now func() time.Time) *Store {
	s := &Store{now: now}
	s.noteSeq.Store(100)
	s.seed(now())
	return s
}

// Health reports entity counts, served on the health endpoint
func (s *Store) Health() map[string]any {
	return map[string]any{
		"status":       "up",
		"candidates":   s.candidates.size(),
		"jobs":         s.jobs.size(),
		"applications": s.applications.size(),
		"assessments":  s.assessments.size(),
	}
}
