// Package flow implements the complaint submission conversation: a per-user
// finite state machine walking batch, subject, lecture name, and screenshot.
package flow

import (
	"fmt"
	"strings"

	"github.com/avolkhin/complaintbot/core/telegram/state"
	"github.com/avolkhin/complaintbot/internal/domain"
	"github.com/avolkhin/complaintbot/internal/store"
)

// Conversation states, keyed per user in the session manager.
const (
	StateAwaitingBatch   state.State = "complaint_batch"
	StateAwaitingSubject state.State = "complaint_subject"
	StateAwaitingLecture state.State = "complaint_lecture"
	StateAwaitingPhoto   state.State = "complaint_photo"
)

const draftKey = "complaint_draft"

// Machine drives the submission flow. All transition methods validate the
// user's current state first; rejected input leaves state and draft untouched.
type Machine struct {
	states     state.Manager
	complaints *store.Complaints
	catalog    *store.Catalog
}

// NewMachine wires the machine to its stores.
func NewMachine(states state.Manager, complaints *store.Complaints, catalog *store.Catalog) *Machine {
	return &Machine{states: states, complaints: complaints, catalog: catalog}
}

// Begin starts a fresh draft, silently discarding any in-progress one.
func (m *Machine) Begin(userID int64, username *string) {
	m.states.Clear(userID)
	m.states.SetTemp(userID, draftKey, &domain.Draft{UserID: userID, Username: username})
	m.states.SetState(userID, StateAwaitingBatch)
}

// SelectBatch records the batch choice. Only honored while awaiting a batch
// and only for a configured batch name.
func (m *Machine) SelectBatch(userID int64, batch string) error {
	if m.states.GetState(userID) != StateAwaitingBatch {
		return fmt.Errorf("%w: not awaiting batch", domain.ErrValidationRejected)
	}
	if !m.catalog.HasBatch(batch) {
		return fmt.Errorf("%w: unknown batch %q", domain.ErrValidationRejected, batch)
	}
	draft, ok := m.draft(userID)
	if !ok {
		return fmt.Errorf("%w: no active draft", domain.ErrValidationRejected)
	}
	draft.Batch = batch
	m.states.SetState(userID, StateAwaitingSubject)
	return nil
}

// SelectSubject records the subject choice once a batch is set.
func (m *Machine) SelectSubject(userID int64, subject string) error {
	if m.states.GetState(userID) != StateAwaitingSubject {
		return fmt.Errorf("%w: not awaiting subject", domain.ErrValidationRejected)
	}
	if !m.catalog.HasSubject(subject) {
		return fmt.Errorf("%w: unknown subject %q", domain.ErrValidationRejected, subject)
	}
	draft, ok := m.draft(userID)
	if !ok {
		return fmt.Errorf("%w: no active draft", domain.ErrValidationRejected)
	}
	draft.Subject = subject
	m.states.SetState(userID, StateAwaitingLecture)
	return nil
}

// SetLectureName stores the trimmed lecture name. Empty or whitespace-only
// input is rejected without a transition.
func (m *Machine) SetLectureName(userID int64, name string) error {
	if m.states.GetState(userID) != StateAwaitingLecture {
		return fmt.Errorf("%w: not awaiting lecture name", domain.ErrValidationRejected)
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("%w: empty lecture name", domain.ErrValidationRejected)
	}
	draft, ok := m.draft(userID)
	if !ok {
		return fmt.Errorf("%w: no active draft", domain.ErrValidationRejected)
	}
	draft.LectureName = name
	m.states.SetState(userID, StateAwaitingPhoto)
	return nil
}

// AttachPhoto finalizes the draft into a Complaint and ends the conversation.
func (m *Machine) AttachPhoto(userID int64, photoFileID string) (*domain.Complaint, error) {
	if m.states.GetState(userID) != StateAwaitingPhoto {
		return nil, fmt.Errorf("%w: not awaiting photo", domain.ErrValidationRejected)
	}
	if photoFileID == "" {
		return nil, fmt.Errorf("%w: missing photo reference", domain.ErrValidationRejected)
	}
	draft, ok := m.draft(userID)
	if !ok || !draft.Complete() {
		return nil, fmt.Errorf("%w: incomplete draft", domain.ErrValidationRejected)
	}
	cmp := m.complaints.Create(*draft, photoFileID)
	m.states.Clear(userID)
	return cmp, nil
}

// Cancel destroys the draft without creating a complaint and reports whether
// a conversation was active.
func (m *Machine) Cancel(userID int64) bool {
	active := m.states.InProgress(userID)
	m.states.Clear(userID)
	return active
}

// Draft returns a copy of the user's in-progress draft.
func (m *Machine) Draft(userID int64) (domain.Draft, bool) {
	draft, ok := m.draft(userID)
	if !ok {
		return domain.Draft{}, false
	}
	return *draft, true
}

// StateOf reports the user's current conversation state.
func (m *Machine) StateOf(userID int64) state.State {
	return m.states.GetState(userID)
}

func (m *Machine) draft(userID int64) (*domain.Draft, bool) {
	v, ok := m.states.GetTemp(userID, draftKey)
	if !ok {
		return nil, false
	}
	draft, ok := v.(*domain.Draft)
	return draft, ok
}
