// Package domain defines the complaint submission records shared by the
// conversation flow, the record store, and the review workflow.
package domain

import (
	"fmt"
	"strings"
	"time"
)

// Status is the review lifecycle position of a complaint.
type Status string

const (
	// StatusSubmitted is assigned on creation and never by a reviewer button.
	StatusSubmitted Status = "submitted"
	StatusSend      Status = "send"
	StatusSeen      Status = "seen"
	StatusApproved  Status = "approved"
	StatusResolved  Status = "resolved"
)

// ReviewStatuses are the statuses offered to the reviewer, in keyboard order.
var ReviewStatuses = []Status{StatusSend, StatusSeen, StatusApproved, StatusResolved}

var knownStatuses = map[Status]struct{}{
	StatusSubmitted: {},
	StatusSend:      {},
	StatusSeen:      {},
	StatusApproved:  {},
	StatusResolved:  {},
}

// ParseStatus validates a status token against the closed enumeration.
func ParseStatus(token string) (Status, error) {
	st := Status(strings.ToLower(strings.TrimSpace(token)))
	if _, ok := knownStatuses[st]; !ok {
		return "", fmt.Errorf("%w: unknown status %q", ErrValidationRejected, token)
	}
	return st, nil
}

// Title renders the status for user-facing messages.
func (s Status) Title() string {
	if s == "" {
		return ""
	}
	return strings.ToUpper(string(s[:1])) + string(s[1:])
}

// Draft is the per-user in-progress submission. Fields fill strictly in
// order batch, subject, lecture name; the flow machine enforces the order.
type Draft struct {
	UserID      int64
	Username    *string
	Batch       string
	Subject     string
	LectureName string
}

// Complete reports whether all text fields have been collected.
func (d *Draft) Complete() bool {
	return d != nil && d.Batch != "" && d.Subject != "" && d.LectureName != ""
}

// Complaint is a finalized submission. Immutable except Status, which only
// the record store rewrites on behalf of the review workflow.
type Complaint struct {
	ID          int64
	UserID      int64
	Username    *string
	Batch       string
	Subject     string
	LectureName string
	PhotoFileID string
	Status      Status
	CreatedAt   time.Time
}
