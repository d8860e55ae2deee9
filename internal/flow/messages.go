package flow

import (
	"fmt"

	"github.com/avolkhin/complaintbot/core/telegram/keyboard"
	"github.com/avolkhin/complaintbot/internal/domain"

	tele "gopkg.in/telebot.v4"
)

// Callback keys used by the submission flow keyboards.
const (
	CallbackBatch   = "cmp_batch"
	CallbackSubject = "cmp_subject"
	CallbackRestart = "cmp_restart"
)

func welcomeText(firstName string) string {
	return fmt.Sprintf(`👋 Hello %s!

Welcome to the Complaint Bot. I will help you submit a complaint about a lecture.

📋 Please select your batch:`, firstName)
}

func batchSelectedText(batch string) string {
	return fmt.Sprintf(`✅ Batch selected: %s

📚 Now please select the subject:`, batch)
}

func subjectSelectedText(subject string) string {
	return fmt.Sprintf(`✅ Subject selected: %s

✍️ Please type the name of the lecture you want to complain about:`, subject)
}

func lectureSavedText(draft domain.Draft) string {
	return fmt.Sprintf(`✅ Lecture name saved: %s

📝 Your complaint so far:
• Batch: %s
• Subject: %s
• Lecture: %s

📸 Finally, please send a screenshot of the issue:`,
		draft.LectureName, draft.Batch, draft.Subject, draft.LectureName)
}

func submittedText(cmp *domain.Complaint) string {
	return fmt.Sprintf(`🎉 Complaint submitted successfully!

🆔 Your complaint ID: `+"`%d`"+`

📝 Summary:
• Batch: %s
• Subject: %s
• Lecture: %s

You will be notified when the status of your complaint changes. Thank you! 🙏`,
		cmp.ID, cmp.Batch, cmp.Subject, cmp.LectureName)
}

const (
	cancelledText      = "❌ Complaint cancelled. Use /start to begin a new one."
	nothingToCancel    = "Nothing to cancel. Use /start to begin submitting a complaint."
	restartText        = "🔄 Starting over. Please select your batch:"
	chooseBatchText    = "📋 Please select your batch using the buttons above."
	chooseSubjectText  = "📚 Please select the subject using the buttons above."
	invalidLectureText = "❌ Please enter a valid lecture name:"
	notAPhotoText      = "❌ Please send an image file (screenshot). Other file types are not accepted."
)

// batchKeyboard lists every batch on its own row and appends a restart button.
func batchKeyboard(batches []string) *tele.ReplyMarkup {
	btns := make([]keyboard.InlineBtn, 0, len(batches)+1)
	for _, b := range batches {
		btns = append(btns, keyboard.InlineBtn{Text: b, Unique: CallbackBatch, Data: b})
	}
	btns = append(btns, keyboard.InlineBtn{Text: "🔄 Start Over", Unique: CallbackRestart, Data: "restart"})
	return keyboard.InlineButtons(btns)
}

func subjectKeyboard(subjects []string) *tele.ReplyMarkup {
	btns := make([]keyboard.InlineBtn, 0, len(subjects))
	for _, s := range subjects {
		btns = append(btns, keyboard.InlineBtn{Text: s, Unique: CallbackSubject, Data: s})
	}
	return keyboard.InlineButtons(btns)
}
