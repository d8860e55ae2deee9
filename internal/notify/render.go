package notify

import (
	"fmt"

	"github.com/avolkhin/complaintbot/core/telegram/format"
	"github.com/avolkhin/complaintbot/core/telegram/keyboard"
	"github.com/avolkhin/complaintbot/internal/domain"

	tele "gopkg.in/telebot.v4"
)

// ReviewSummary renders the reviewer-facing complaint card.
func ReviewSummary(cmp *domain.Complaint) string {
	return fmt.Sprintf(`🆘 **New Complaint Submitted**

👤 **User Details:**
• User ID: `+"`%d`"+`
• Username: @%s

📚 **Complaint Details:**
• Batch: %s
• Subject: %s
• Lecture Name: %s

📊 **Status:** %s
🆔 **Complaint ID:** `+"`%d`"+`

Please review and update the status accordingly.`,
		cmp.UserID,
		escapeMD(format.DerefString(cmp.Username, "No username")),
		cmp.Batch,
		cmp.Subject,
		escapeMD(cmp.LectureName),
		cmp.Status.Title(),
		cmp.ID,
	)
}

// StatusKeyboard offers the reviewer status actions, two buttons per row.
func StatusKeyboard(complaintID int64) *tele.ReplyMarkup {
	btns := make([]keyboard.InlineBtn, 0, len(domain.ReviewStatuses))
	for _, st := range domain.ReviewStatuses {
		btns = append(btns, keyboard.InlineBtn{
			Text:   st.Title(),
			Unique: CallbackStatus,
			Data:   fmt.Sprintf("%d|%s", complaintID, st),
		})
	}
	return keyboard.InlineButtonsNPerRow(btns, 2)
}

// escapeMD guards user-supplied text embedded in Markdown messages.
func escapeMD(text string) string {
	escaped, err := format.EscapeMarkdown(text, format.MarkdownV1, "")
	if err != nil {
		return text
	}
	return escaped
}
