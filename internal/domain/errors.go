package domain

// Error is a coded domain error. The code feeds the router's handler
// summaries via the Code() contract.
type Error struct {
	code string
	msg  string
}

// Error implements the error interface.
func (e *Error) Error() string { return e.msg }

// Code returns the stable machine-readable error code.
func (e *Error) Code() string { return e.code }

var (
	// ErrValidationRejected marks input rejected at the current step; the
	// flow re-prompts and keeps all state unchanged.
	ErrValidationRejected = &Error{code: "validation_rejected", msg: "input rejected at the current step"}
	// ErrUnauthorized marks a status-change attempt by a non-privileged actor.
	ErrUnauthorized = &Error{code: "unauthorized", msg: "actor is not authorized for this action"}
	// ErrNotFound marks an operation on a complaint id that was never issued.
	ErrNotFound = &Error{code: "not_found", msg: "complaint not found"}
	// ErrNotificationFailed marks an undeliverable submitter notification.
	// The status change it follows stays applied.
	ErrNotificationFailed = &Error{code: "notification_failed", msg: "submitter notification failed"}
)
