package flow

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avolkhin/complaintbot/core/telegram/state"
	"github.com/avolkhin/complaintbot/internal/domain"
	"github.com/avolkhin/complaintbot/internal/store"
)

func newTestMachine() (*Machine, *store.Store) {
	st := store.New()
	st.Catalog.Seed(
		[]string{"master quest 2026", "Ace ipm crash course"},
		[]string{"Quant", "VARC"},
	)
	return NewMachine(state.NewMemoryManager(), st.Complaints, st.Catalog), st
}

func TestMachineHappyPath(t *testing.T) {
	m, st := newTestMachine()
	username := "student"
	m.Begin(100, &username)

	require.Equal(t, StateAwaitingBatch, m.StateOf(100))
	require.NoError(t, m.SelectBatch(100, "master quest 2026"))
	require.Equal(t, StateAwaitingSubject, m.StateOf(100))
	require.NoError(t, m.SelectSubject(100, "Quant"))
	require.Equal(t, StateAwaitingLecture, m.StateOf(100))
	require.NoError(t, m.SetLectureName(100, "  Percentages 101  "))
	require.Equal(t, StateAwaitingPhoto, m.StateOf(100))

	cmp, err := m.AttachPhoto(100, "photo-file-id")
	require.NoError(t, err)

	assert.Equal(t, int64(1), cmp.ID)
	assert.Equal(t, int64(100), cmp.UserID)
	require.NotNil(t, cmp.Username)
	assert.Equal(t, "student", *cmp.Username)
	assert.Equal(t, "master quest 2026", cmp.Batch)
	assert.Equal(t, "Quant", cmp.Subject)
	assert.Equal(t, "Percentages 101", cmp.LectureName)
	assert.Equal(t, "photo-file-id", cmp.PhotoFileID)
	assert.Equal(t, domain.StatusSubmitted, cmp.Status)

	// Conversation is over; the session is gone.
	assert.Equal(t, state.StateIdle, m.StateOf(100))
	assert.Equal(t, 1, st.Complaints.Len())
}

func TestMachineRejectsOutOfOrderInput(t *testing.T) {
	m, st := newTestMachine()
	m.Begin(100, nil)

	// Skipping ahead must not move the conversation.
	err := m.SelectSubject(100, "Quant")
	require.True(t, errors.Is(err, domain.ErrValidationRejected))
	assert.Equal(t, StateAwaitingBatch, m.StateOf(100))

	err = m.SetLectureName(100, "Percentages 101")
	require.True(t, errors.Is(err, domain.ErrValidationRejected))

	_, err = m.AttachPhoto(100, "photo-file-id")
	require.True(t, errors.Is(err, domain.ErrValidationRejected))
	assert.Equal(t, 0, st.Complaints.Len())
}

func TestMachineRejectsWithoutConversation(t *testing.T) {
	m, _ := newTestMachine()

	err := m.SelectBatch(100, "master quest 2026")
	assert.True(t, errors.Is(err, domain.ErrValidationRejected))
}

func TestMachineRejectsUnknownCatalogValues(t *testing.T) {
	m, _ := newTestMachine()
	m.Begin(100, nil)

	err := m.SelectBatch(100, "no such batch")
	require.True(t, errors.Is(err, domain.ErrValidationRejected))
	assert.Equal(t, StateAwaitingBatch, m.StateOf(100))

	require.NoError(t, m.SelectBatch(100, "master quest 2026"))
	err = m.SelectSubject(100, "History")
	require.True(t, errors.Is(err, domain.ErrValidationRejected))
	assert.Equal(t, StateAwaitingSubject, m.StateOf(100))
}

func TestMachineRejectsEmptyLectureName(t *testing.T) {
	m, _ := newTestMachine()
	m.Begin(100, nil)
	require.NoError(t, m.SelectBatch(100, "master quest 2026"))
	require.NoError(t, m.SelectSubject(100, "Quant"))

	err := m.SetLectureName(100, "   ")
	require.True(t, errors.Is(err, domain.ErrValidationRejected))
	assert.Equal(t, StateAwaitingLecture, m.StateOf(100))

	require.NoError(t, m.SetLectureName(100, "Percentages 101"))
}

func TestMachineBeginDiscardsDraft(t *testing.T) {
	m, _ := newTestMachine()
	m.Begin(100, nil)
	require.NoError(t, m.SelectBatch(100, "master quest 2026"))
	require.NoError(t, m.SelectSubject(100, "Quant"))

	// Starting over silently drops everything collected so far.
	m.Begin(100, nil)
	assert.Equal(t, StateAwaitingBatch, m.StateOf(100))

	draft, ok := m.Draft(100)
	require.True(t, ok)
	assert.Empty(t, draft.Batch)
	assert.Empty(t, draft.Subject)
}

func TestMachineCancel(t *testing.T) {
	m, st := newTestMachine()

	assert.False(t, m.Cancel(100))

	m.Begin(100, nil)
	assert.True(t, m.Cancel(100))
	assert.Equal(t, state.StateIdle, m.StateOf(100))

	_, ok := m.Draft(100)
	assert.False(t, ok)
	assert.Equal(t, 0, st.Complaints.Len())
}

func TestMachineIsolatesUsers(t *testing.T) {
	m, _ := newTestMachine()

	m.Begin(100, nil)
	m.Begin(200, nil)

	require.NoError(t, m.SelectBatch(100, "master quest 2026"))
	require.NoError(t, m.SelectSubject(100, "Quant"))

	// The second user is still at the beginning.
	assert.Equal(t, StateAwaitingBatch, m.StateOf(200))
	err := m.SelectSubject(200, "VARC")
	assert.True(t, errors.Is(err, domain.ErrValidationRejected))

	draft, ok := m.Draft(100)
	require.True(t, ok)
	assert.Equal(t, "Quant", draft.Subject)
}
