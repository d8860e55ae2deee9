// Package store holds the in-memory record stores. Data lives for the
// process lifetime only; losing it on restart is intended behaviour.
package store

import (
	"sync"
	"time"

	"github.com/avolkhin/complaintbot/internal/domain"
)

// Complaints is the process-scoped complaint store. Ids are sequential and
// never reused; records are never deleted.
type Complaints struct {
	mu   sync.RWMutex
	seq  int64
	byID map[int64]*domain.Complaint
}

// NewComplaints constructs an empty complaint store.
func NewComplaints() *Complaints {
	return &Complaints{byID: make(map[int64]*domain.Complaint)}
}

// Create allocates the next id and inserts a complaint with status submitted.
// It never fails.
func (s *Complaints) Create(d domain.Draft, photoFileID string) *domain.Complaint {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.seq++
	cmp := &domain.Complaint{
		ID:          s.seq,
		UserID:      d.UserID,
		Username:    d.Username,
		Batch:       d.Batch,
		Subject:     d.Subject,
		LectureName: d.LectureName,
		PhotoFileID: photoFileID,
		Status:      domain.StatusSubmitted,
		CreatedAt:   time.Now(),
	}
	s.byID[cmp.ID] = cmp
	return snapshot(cmp)
}

// Get returns a copy of the complaint, if it exists. Callers never see the
// stored record; only SetStatus mutates it.
func (s *Complaints) Get(id int64) (*domain.Complaint, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	cmp, ok := s.byID[id]
	if !ok {
		return nil, false
	}
	return snapshot(cmp), true
}

// SetStatus overwrites the status unconditionally and reports whether the id
// existed. Any status may follow any other.
func (s *Complaints) SetStatus(id int64, st domain.Status) (*domain.Complaint, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cmp, ok := s.byID[id]
	if !ok {
		return nil, false
	}
	cmp.Status = st
	return snapshot(cmp), true
}

// List returns copies of all complaints in ascending id order.
func (s *Complaints) List() []*domain.Complaint {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*domain.Complaint, 0, len(s.byID))
	for id := int64(1); id <= s.seq; id++ {
		if cmp, ok := s.byID[id]; ok {
			out = append(out, snapshot(cmp))
		}
	}
	return out
}

// Len reports the number of stored complaints.
func (s *Complaints) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.byID)
}

func snapshot(cmp *domain.Complaint) *domain.Complaint {
	cp := *cmp
	return &cp
}
