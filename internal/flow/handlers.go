package flow

import (
	"errors"

	"github.com/avolkhin/complaintbot/core/logger"
	"github.com/avolkhin/complaintbot/core/telegram/callbacks"
	tghelpers "github.com/avolkhin/complaintbot/core/telegram/helpers"
	"github.com/avolkhin/complaintbot/core/telegram/state"
	"github.com/avolkhin/complaintbot/internal/domain"
	"github.com/avolkhin/complaintbot/internal/notify"
	"github.com/avolkhin/complaintbot/internal/store"
	"log/slog"

	tele "gopkg.in/telebot.v4"
)

// Handlers renders the submission conversation over Telegram. All flow
// decisions live in Machine; handlers only translate updates and replies.
type Handlers struct {
	machine  *Machine
	catalog  *store.Catalog
	notifier *notify.Notifier
}

// NewHandlers wires the conversation handlers.
func NewHandlers(machine *Machine, catalog *store.Catalog, notifier *notify.Notifier) *Handlers {
	return &Handlers{machine: machine, catalog: catalog, notifier: notifier}
}

// HandleStart opens a fresh submission, discarding any draft in progress.
func (h *Handlers) HandleStart(c tele.Context) error {
	userID := tghelpers.SenderID(c)
	h.machine.Begin(userID, tghelpers.SenderUsername(c))

	firstName := ""
	if c.Sender() != nil {
		firstName = c.Sender().FirstName
	}
	return tghelpers.SendMD(c, welcomeText(firstName), batchKeyboard(h.catalog.Batches()))
}

// HandleCancel aborts the current submission if one is active.
func (h *Handlers) HandleCancel(c tele.Context) error {
	if h.machine.Cancel(tghelpers.SenderID(c)) {
		return tghelpers.SendMD(c, cancelledText)
	}
	return tghelpers.SendMD(c, nothingToCancel)
}

// HandleRestart resets the conversation back to batch selection.
func (h *Handlers) HandleRestart(c tele.Context) error {
	userID := tghelpers.SenderID(c)
	h.machine.Begin(userID, tghelpers.SenderUsername(c))
	return tghelpers.EditOrSendMD(c, restartText, batchKeyboard(h.catalog.Batches()))
}

// HandleBatchSelect records the tapped batch and advances to subject choice.
func (h *Handlers) HandleBatchSelect(c tele.Context) error {
	userID := tghelpers.SenderID(c)
	batch := callbacks.CallbackPayload(c)
	if err := h.machine.SelectBatch(userID, batch); err != nil {
		return h.ignoreRejected(c, "batch.select", err)
	}
	return tghelpers.EditOrSendMD(c, batchSelectedText(batch), subjectKeyboard(h.catalog.Subjects()))
}

// HandleSubjectSelect records the tapped subject and asks for the lecture name.
func (h *Handlers) HandleSubjectSelect(c tele.Context) error {
	userID := tghelpers.SenderID(c)
	subject := callbacks.CallbackPayload(c)
	if err := h.machine.SelectSubject(userID, subject); err != nil {
		return h.ignoreRejected(c, "subject.select", err)
	}
	return tghelpers.EditOrSendMD(c, subjectSelectedText(subject))
}

// RegisterStates binds a handler to every conversation state so the message
// router can dispatch in-progress updates.
func (h *Handlers) RegisterStates() {
	state.RegisterHandler(StateAwaitingBatch, h.handleAwaitingBatch)
	state.RegisterHandler(StateAwaitingSubject, h.handleAwaitingSubject)
	state.RegisterHandler(StateAwaitingLecture, h.handleAwaitingLecture)
	state.RegisterHandler(StateAwaitingPhoto, h.handleAwaitingPhoto)
}

// Text arrives while the flow expects a button tap: re-show the keyboard.
func (h *Handlers) handleAwaitingBatch(c tele.Context) error {
	return tghelpers.SendMD(c, chooseBatchText, batchKeyboard(h.catalog.Batches()))
}

func (h *Handlers) handleAwaitingSubject(c tele.Context) error {
	return tghelpers.SendMD(c, chooseSubjectText, subjectKeyboard(h.catalog.Subjects()))
}

func (h *Handlers) handleAwaitingLecture(c tele.Context) error {
	userID := tghelpers.SenderID(c)
	if err := h.machine.SetLectureName(userID, c.Text()); err != nil {
		if errors.Is(err, domain.ErrValidationRejected) {
			return tghelpers.SendMD(c, invalidLectureText)
		}
		return err
	}
	draft, _ := h.machine.Draft(userID)
	return tghelpers.SendMD(c, lectureSavedText(draft))
}

func (h *Handlers) handleAwaitingPhoto(c tele.Context) error {
	userID := tghelpers.SenderID(c)
	msg := c.Message()
	if msg == nil || msg.Photo == nil {
		return tghelpers.SendMD(c, notAPhotoText)
	}

	cmp, err := h.machine.AttachPhoto(userID, msg.Photo.FileID)
	if err != nil {
		if errors.Is(err, domain.ErrValidationRejected) {
			return h.ignoreRejected(c, "photo.attach", err)
		}
		return err
	}

	logger.SVCFlow.LogAttrs(tghelpers.BuildContext(c), slog.LevelInfo, "complaint.submitted",
		slog.Int64("complaint_id", cmp.ID),
		slog.Int64("user_id", cmp.UserID),
		slog.String("batch", cmp.Batch),
		slog.String("subject", cmp.Subject),
	)

	if err := tghelpers.SendMD(c, submittedText(cmp)); err != nil {
		return err
	}
	return h.notifier.ForwardToReviewer(c, cmp)
}

// ignoreRejected drops out-of-order or stale input without replying. Stale
// callbacks are common when a user taps an old keyboard after finishing.
func (h *Handlers) ignoreRejected(c tele.Context, event string, err error) error {
	if !errors.Is(err, domain.ErrValidationRejected) {
		return err
	}
	logger.SVCFlow.LogAttrs(tghelpers.BuildContext(c), slog.LevelDebug, event,
		slog.Int64("user_id", tghelpers.SenderID(c)),
		slog.String("status", "rejected"),
		slog.String("cause", err.Error()),
	)
	return nil
}
