// Package notify pushes complaint messages outward: forwarding finished
// complaints to the reviewer and informing submitters about status changes.
package notify

import (
	"fmt"

	"github.com/avolkhin/complaintbot/core/logger"
	tghelpers "github.com/avolkhin/complaintbot/core/telegram/helpers"
	"github.com/avolkhin/complaintbot/internal/domain"
	"log/slog"

	tele "gopkg.in/telebot.v4"
)

// CallbackStatus is the callback key carried by the reviewer status buttons.
// Payload layout: "<complaint id>|<status token>".
const CallbackStatus = "cmp_status"

// Notifier delivers complaint messages to the reviewer and to submitters.
type Notifier struct {
	reviewerID int64
}

// New constructs a notifier targeting the configured reviewer chat.
func New(reviewerID int64) *Notifier {
	return &Notifier{reviewerID: reviewerID}
}

// ForwardToReviewer sends the complaint screenshot followed by the summary
// with status buttons to the reviewer chat. Delivery rides the async sender;
// failures are logged by the dispatcher and never bubble into the flow.
func (n *Notifier) ForwardToReviewer(c tele.Context, cmp *domain.Complaint) error {
	reviewer := &tele.User{ID: n.reviewerID}
	if err := tghelpers.SendPhotoTo(c, reviewer, cmp.PhotoFileID); err != nil {
		return err
	}
	return tghelpers.SendMDTo(c, reviewer, ReviewSummary(cmp), StatusKeyboard(cmp.ID))
}

// NotifyStatus synchronously informs the submitter about a status change so
// the caller can observe delivery failure. The failure is non-fatal by
// design: the status change it follows stays applied.
func (n *Notifier) NotifyStatus(c tele.Context, cmp *domain.Complaint) error {
	submitter := &tele.User{ID: cmp.UserID}
	opts := &tele.SendOptions{ParseMode: tele.ModeMarkdown}
	if _, err := c.Bot().Send(submitter, statusChangedText(cmp), opts); err != nil {
		logger.SVCNotify.LogAttrs(tghelpers.BuildContext(c), slog.LevelWarn, "notify.submitter.fail",
			slog.Int64("complaint_id", cmp.ID),
			slog.Int64("user_id", cmp.UserID),
			slog.String("err", err.Error()),
		)
		return fmt.Errorf("%w: %v", domain.ErrNotificationFailed, err)
	}
	return nil
}

func statusChangedText(cmp *domain.Complaint) string {
	return fmt.Sprintf(`📊 **Complaint Status Updated**

🆔 **Complaint ID:** `+"`%d`"+`
📊 **New Status:** %s

Your complaint about:
• Subject: %s
• Lecture: %s

Thank you for your patience! 🙏`,
		cmp.ID, cmp.Status.Title(), cmp.Subject, escapeMD(cmp.LectureName))
}
