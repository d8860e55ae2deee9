package middleware

import (
	"github.com/avolkhin/complaintbot/core/logger"
	tghelpers "github.com/avolkhin/complaintbot/core/telegram/helpers"
	"github.com/avolkhin/complaintbot/core/telegram/state"
	"log/slog"

	tele "gopkg.in/telebot.v4"
)

// StateGetter is the minimal interface required from an FSM manager.
type StateGetter interface {
	GetState(userID int64) state.State
}

// State returns a middleware that checks if user is in the expected FSM state.
func State(mgr StateGetter, expected state.State) tele.MiddlewareFunc {
	return func(next tele.HandlerFunc) tele.HandlerFunc {
		return func(c tele.Context) error {
			userID := c.Sender().ID
			current := mgr.GetState(userID)
			ctx := tghelpers.BuildContext(c)
			if current == expected {
				logger.TG.LogAttrs(ctx, slog.LevelDebug, "fsm.match",
					slog.Int64("user_id", userID),
					slog.String("state", string(current)),
					slog.String("expected", string(expected)),
					slog.String("rid", logger.RIDFrom(ctx)),
				)
				return next(c)
			}
			logger.TG.LogAttrs(ctx, slog.LevelDebug, "fsm.skip",
				slog.Int64("user_id", userID),
				slog.String("state", string(current)),
				slog.String("expected", string(expected)),
				slog.String("rid", logger.RIDFrom(ctx)),
			)
			// Ignore the update if the user is in a different state
			return nil
		}
	}
}
