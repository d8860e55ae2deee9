// Package review implements the reviewer-side status workflow: authorizing
// the reviewer, applying status changes, and pushing notifications.
package review

import (
	"context"
	"fmt"

	"github.com/avolkhin/complaintbot/core/logger"
	"github.com/avolkhin/complaintbot/internal/domain"
	"github.com/avolkhin/complaintbot/internal/store"
	"log/slog"
)

// NotifyFunc delivers a status change to the submitter.
type NotifyFunc func(cmp *domain.Complaint) error

// Result carries the outcome of a status update. NotifyFailed is set when the
// change was applied but the submitter could not be reached.
type Result struct {
	Complaint    *domain.Complaint
	NotifyFailed bool
}

// Service applies status transitions on behalf of the configured reviewer.
type Service struct {
	complaints *store.Complaints
	reviewerID int64
}

// NewService wires the review workflow to its store.
func NewService(complaints *store.Complaints, reviewerID int64) *Service {
	return &Service{complaints: complaints, reviewerID: reviewerID}
}

// UpdateStatus validates the actor, parses the status token, applies the
// change, and notifies the submitter. Any status may replace any other;
// repeating the current status is allowed and re-notifies. Notification
// failure does not roll the change back.
func (s *Service) UpdateStatus(ctx context.Context, actorID, complaintID int64, token string, notify NotifyFunc) (*Result, error) {
	if actorID != s.reviewerID {
		logger.SVCReview.LogAttrs(ctx, slog.LevelWarn, "status.update",
			slog.String("status", "denied"),
			slog.Int64("user_id", actorID),
			slog.Int64("complaint_id", complaintID),
		)
		return nil, fmt.Errorf("%w: user %d is not the reviewer", domain.ErrUnauthorized, actorID)
	}

	st, err := domain.ParseStatus(token)
	if err != nil {
		return nil, err
	}

	cmp, ok := s.complaints.SetStatus(complaintID, st)
	if !ok {
		return nil, fmt.Errorf("%w: complaint %d", domain.ErrNotFound, complaintID)
	}

	res := &Result{Complaint: cmp}
	if notify != nil {
		if err := notify(cmp); err != nil {
			logger.SVCReview.LogAttrs(ctx, slog.LevelWarn, "status.update",
				slog.String("status", "notify_failed"),
				slog.Int64("complaint_id", cmp.ID),
				slog.Int64("user_id", cmp.UserID),
				slog.String("err", err.Error()),
			)
			res.NotifyFailed = true
		}
	}

	logger.SVCReview.LogAttrs(ctx, slog.LevelInfo, "status.update",
		slog.String("status", "ok"),
		slog.Int64("complaint_id", cmp.ID),
		slog.String("new_status", string(cmp.Status)),
	)
	return res, nil
}

// All returns every stored complaint in submission order.
func (s *Service) All() []*domain.Complaint {
	return s.complaints.List()
}

// IsReviewer reports whether the user is the configured reviewer.
func (s *Service) IsReviewer(userID int64) bool {
	return userID == s.reviewerID
}
