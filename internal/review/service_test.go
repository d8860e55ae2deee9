package review

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avolkhin/complaintbot/internal/domain"
	"github.com/avolkhin/complaintbot/internal/store"
)

const reviewerID = int64(777)

func newTestService() (*Service, *store.Complaints) {
	complaints := store.NewComplaints()
	return NewService(complaints, reviewerID), complaints
}

func submit(complaints *store.Complaints, userID int64) *domain.Complaint {
	return complaints.Create(domain.Draft{
		UserID:      userID,
		Batch:       "master quest 2026",
		Subject:     "Quant",
		LectureName: "Percentages 101",
	}, "photo-file-id")
}

func TestUpdateStatusUnauthorized(t *testing.T) {
	svc, complaints := newTestService()
	cmp := submit(complaints, 100)

	_, err := svc.UpdateStatus(context.Background(), 100, cmp.ID, "seen", nil)
	require.True(t, errors.Is(err, domain.ErrUnauthorized))

	// The record is untouched.
	got, ok := complaints.Get(cmp.ID)
	require.True(t, ok)
	assert.Equal(t, domain.StatusSubmitted, got.Status)
}

func TestUpdateStatusUnknownToken(t *testing.T) {
	svc, complaints := newTestService()
	cmp := submit(complaints, 100)

	_, err := svc.UpdateStatus(context.Background(), reviewerID, cmp.ID, "rejected", nil)
	require.True(t, errors.Is(err, domain.ErrValidationRejected))

	got, _ := complaints.Get(cmp.ID)
	assert.Equal(t, domain.StatusSubmitted, got.Status)
}

func TestUpdateStatusNotFound(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.UpdateStatus(context.Background(), reviewerID, 42, "seen", nil)
	assert.True(t, errors.Is(err, domain.ErrNotFound))
}

func TestUpdateStatusNotifies(t *testing.T) {
	svc, complaints := newTestService()
	cmp := submit(complaints, 100)

	var notified *domain.Complaint
	res, err := svc.UpdateStatus(context.Background(), reviewerID, cmp.ID, "Seen", func(c *domain.Complaint) error {
		notified = c
		return nil
	})
	require.NoError(t, err)
	assert.False(t, res.NotifyFailed)
	assert.Equal(t, domain.StatusSeen, res.Complaint.Status)

	require.NotNil(t, notified)
	assert.Equal(t, cmp.ID, notified.ID)
	assert.Equal(t, domain.StatusSeen, notified.Status)
}

func TestUpdateStatusAnyTransition(t *testing.T) {
	svc, complaints := newTestService()
	cmp := submit(complaints, 100)
	ctx := context.Background()

	// No ordering between statuses; forward, backward, and repeat all apply.
	for _, token := range []string{"resolved", "send", "send", "approved"} {
		res, err := svc.UpdateStatus(ctx, reviewerID, cmp.ID, token, nil)
		require.NoError(t, err)
		assert.Equal(t, domain.Status(token), res.Complaint.Status)
	}
}

func TestUpdateStatusNotifyFailureKeepsChange(t *testing.T) {
	svc, complaints := newTestService()
	cmp := submit(complaints, 100)

	res, err := svc.UpdateStatus(context.Background(), reviewerID, cmp.ID, "approved", func(*domain.Complaint) error {
		return domain.ErrNotificationFailed
	})
	require.NoError(t, err)
	assert.True(t, res.NotifyFailed)

	got, ok := complaints.Get(cmp.ID)
	require.True(t, ok)
	assert.Equal(t, domain.StatusApproved, got.Status)
}

func TestAll(t *testing.T) {
	svc, complaints := newTestService()
	assert.Empty(t, svc.All())

	submit(complaints, 100)
	submit(complaints, 200)

	all := svc.All()
	require.Len(t, all, 2)
	assert.Equal(t, int64(1), all[0].ID)
	assert.Equal(t, int64(2), all[1].ID)
}

func TestIsReviewer(t *testing.T) {
	svc, _ := newTestService()
	assert.True(t, svc.IsReviewer(reviewerID))
	assert.False(t, svc.IsReviewer(100))
}
