package app

import (
	tghelpers "github.com/avolkhin/complaintbot/core/telegram/helpers"
	"github.com/avolkhin/complaintbot/core/telegram/ui"

	tele "gopkg.in/telebot.v4"
)

const unknownInputText = `❓ I don't understand that command.

Use /start to begin submitting a complaint.`

// fallbacks answers updates that match no command, callback, or active
// conversation.
type fallbacks struct{}

var _ ui.FallbackProvider = fallbacks{}

func (fallbacks) UnknownText() tele.HandlerFunc {
	return func(c tele.Context) error {
		return tghelpers.SendMD(c, unknownInputText)
	}
}

func (fallbacks) UnknownPhoto() tele.HandlerFunc {
	return func(c tele.Context) error {
		return tghelpers.SendMD(c, unknownInputText)
	}
}

func (fallbacks) UnknownDocument() tele.HandlerFunc {
	return func(c tele.Context) error {
		return tghelpers.SendMD(c, unknownInputText)
	}
}

func (fallbacks) UnknownCallback() tele.HandlerFunc {
	return func(c tele.Context) error {
		return c.Respond(&tele.CallbackResponse{Text: "Unsupported action"})
	}
}
