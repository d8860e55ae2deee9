package review

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/avolkhin/complaintbot/core/telegram/callbacks"
	tghelpers "github.com/avolkhin/complaintbot/core/telegram/helpers"
	"github.com/avolkhin/complaintbot/internal/domain"
	"github.com/avolkhin/complaintbot/internal/notify"

	tele "gopkg.in/telebot.v4"
)

// Handlers exposes the reviewer actions over Telegram.
type Handlers struct {
	service  *Service
	notifier *notify.Notifier
}

// NewHandlers wires the reviewer handlers.
func NewHandlers(service *Service, notifier *notify.Notifier) *Handlers {
	return &Handlers{service: service, notifier: notifier}
}

// HandleStatusCallback processes a status button tap on a complaint card.
// Payload layout: "<complaint id>|<status token>".
func (h *Handlers) HandleStatusCallback(c tele.Context) error {
	parts, err := callbacks.PayloadParts(c, "|")
	if err != nil || len(parts) != 2 {
		return c.Respond(&tele.CallbackResponse{Text: "Malformed action"})
	}
	complaintID, err := strconv.ParseInt(parts[0], 10, 64)
	if err != nil {
		return c.Respond(&tele.CallbackResponse{Text: "Malformed action"})
	}

	ctx := tghelpers.BuildContext(c)
	res, err := h.service.UpdateStatus(ctx, tghelpers.SenderID(c), complaintID, parts[1], func(cmp *domain.Complaint) error {
		return h.notifier.NotifyStatus(c, cmp)
	})
	switch {
	case errors.Is(err, domain.ErrUnauthorized):
		return c.Respond(&tele.CallbackResponse{
			Text:      "❌ You are not authorized to perform this action.",
			ShowAlert: true,
		})
	case errors.Is(err, domain.ErrNotFound):
		return c.Respond(&tele.CallbackResponse{
			Text:      "❌ Complaint not found.",
			ShowAlert: true,
		})
	case errors.Is(err, domain.ErrValidationRejected):
		return c.Respond(&tele.CallbackResponse{Text: "Unknown status"})
	case err != nil:
		return err
	}

	cmp := res.Complaint
	if err := tghelpers.EditMD(c, notify.ReviewSummary(cmp), notify.StatusKeyboard(cmp.ID)); err != nil {
		// Repeating the current status leaves the card unchanged; Telegram
		// rejects the no-op edit.
		if !errors.Is(err, tele.ErrSameMessageContent) {
			if sendErr := tghelpers.SendMD(c, statusAppliedText(cmp, res.NotifyFailed)); sendErr != nil {
				return sendErr
			}
		}
	}

	if res.NotifyFailed {
		return c.Respond(&tele.CallbackResponse{
			Text:      "⚠️ Could not notify user (user may have blocked the bot).",
			ShowAlert: true,
		})
	}
	return c.Respond(&tele.CallbackResponse{
		Text: fmt.Sprintf("Status updated to: %s", cmp.Status.Title()),
	})
}

// HandlePending lists every stored complaint for the reviewer.
func (h *Handlers) HandlePending(c tele.Context) error {
	all := h.service.All()
	if len(all) == 0 {
		return tghelpers.SendMD(c, "📭 No complaints have been submitted yet.")
	}

	var b strings.Builder
	fmt.Fprintf(&b, "📋 **Complaints (%d)**\n", len(all))
	for _, cmp := range all {
		fmt.Fprintf(&b, "\n🆔 `%d` • %s\n• %s / %s / %s\n",
			cmp.ID, cmp.Status.Title(), cmp.Batch, cmp.Subject, cmp.LectureName)
	}
	return tghelpers.SendMD(c, b.String())
}

func statusAppliedText(cmp *domain.Complaint, notifyFailed bool) string {
	if notifyFailed {
		return fmt.Sprintf("✅ Status updated to: %s\n⚠️ User could not be notified.", cmp.Status.Title())
	}
	return fmt.Sprintf("✅ Status updated to: %s\nUser has been notified.", cmp.Status.Title())
}
