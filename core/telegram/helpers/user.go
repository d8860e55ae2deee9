package helpers

import tele "gopkg.in/telebot.v4"

// SenderID returns the Telegram user id of the update sender, or 0 when absent.
func SenderID(c tele.Context) int64 {
	if c == nil || c.Sender() == nil {
		return 0
	}
	return c.Sender().ID
}

// SenderUsername returns the sender's username, or nil when the account has none.
func SenderUsername(c tele.Context) *string {
	if c == nil || c.Sender() == nil || c.Sender().Username == "" {
		return nil
	}
	username := c.Sender().Username
	return &username
}
