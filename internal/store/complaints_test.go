package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avolkhin/complaintbot/internal/domain"
)

func testDraft(userID int64) domain.Draft {
	username := "student"
	return domain.Draft{
		UserID:      userID,
		Username:    &username,
		Batch:       "master quest 2026",
		Subject:     "Quant",
		LectureName: "Percentages 101",
	}
}

func TestComplaintsCreate(t *testing.T) {
	s := NewComplaints()

	first := s.Create(testDraft(100), "photo-1")
	second := s.Create(testDraft(200), "photo-2")

	assert.Equal(t, int64(1), first.ID)
	assert.Equal(t, int64(2), second.ID)
	assert.Equal(t, domain.StatusSubmitted, first.Status)
	assert.Equal(t, "photo-1", first.PhotoFileID)
	assert.False(t, first.CreatedAt.IsZero())
	assert.Equal(t, 2, s.Len())
}

func TestComplaintsGetReturnsCopy(t *testing.T) {
	s := NewComplaints()
	created := s.Create(testDraft(100), "photo-1")

	got, ok := s.Get(created.ID)
	require.True(t, ok)

	// Mutating the returned record must not leak into the store.
	got.Status = domain.StatusResolved
	got.LectureName = "tampered"

	again, ok := s.Get(created.ID)
	require.True(t, ok)
	assert.Equal(t, domain.StatusSubmitted, again.Status)
	assert.Equal(t, "Percentages 101", again.LectureName)
}

func TestComplaintsGetMissing(t *testing.T) {
	s := NewComplaints()
	_, ok := s.Get(42)
	assert.False(t, ok)
}

func TestComplaintsSetStatus(t *testing.T) {
	s := NewComplaints()
	created := s.Create(testDraft(100), "photo-1")

	updated, ok := s.SetStatus(created.ID, domain.StatusSeen)
	require.True(t, ok)
	assert.Equal(t, domain.StatusSeen, updated.Status)

	// Any status may replace any other, including going backwards.
	updated, ok = s.SetStatus(created.ID, domain.StatusSend)
	require.True(t, ok)
	assert.Equal(t, domain.StatusSend, updated.Status)

	_, ok = s.SetStatus(999, domain.StatusSeen)
	assert.False(t, ok)
}

func TestComplaintsListOrder(t *testing.T) {
	s := NewComplaints()
	for i := 0; i < 5; i++ {
		s.Create(testDraft(int64(100+i)), "photo")
	}

	list := s.List()
	require.Len(t, list, 5)
	for i, cmp := range list {
		assert.Equal(t, int64(i+1), cmp.ID)
	}
}

func TestCatalogSeed(t *testing.T) {
	c := NewCatalog()
	c.Seed(
		[]string{" batch a ", "", "batch b"},
		[]string{"Quant", "  "},
	)

	assert.Equal(t, []string{"batch a", "batch b"}, c.Batches())
	assert.Equal(t, []string{"Quant"}, c.Subjects())

	assert.True(t, c.HasBatch("batch a"))
	assert.False(t, c.HasBatch("batch c"))
	assert.True(t, c.HasSubject("Quant"))
	assert.False(t, c.HasSubject("quant"))
}

func TestCatalogCopies(t *testing.T) {
	c := NewCatalog()
	c.Seed([]string{"batch a"}, []string{"Quant"})

	batches := c.Batches()
	batches[0] = "tampered"
	assert.True(t, c.HasBatch("batch a"))
	assert.False(t, c.HasBatch("tampered"))
}
