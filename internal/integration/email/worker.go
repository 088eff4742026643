package email

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/ledgerline/backend/internal/application/adapter"
	"github.com/ledgerline/backend/internal/domain/entity"
	domainerror "github.com/ledgerline/backend/internal/domain/error"
)

// Worker polls for corporate events whose reminder window has opened and
// sends a reminder email for each.
type Worker struct {
	events       adapter.CorporateEventRepository
	sender       adapter.EmailSender
	recipient    string
	pollInterval time.Duration
}

// WorkerConfig holds configuration for the reminder worker.
type WorkerConfig struct {
	Recipient    string
	PollInterval time.Duration
}

// DefaultWorkerConfig returns the default worker configuration.
func DefaultWorkerConfig() WorkerConfig {
	return WorkerConfig{
		PollInterval: time.Hour,
	}
}

// NewWorker creates a new reminder worker.
func NewWorker(events adapter.CorporateEventRepository, sender adapter.EmailSender, config WorkerConfig) *Worker {
	return &Worker{
		events:       events,
		sender:       sender,
		recipient:    config.Recipient,
		pollInterval: config.PollInterval,
	}
}

// Start begins the worker loop. It blocks until the context is cancelled.
func (w *Worker) Start(ctx context.Context) {
	slog.Info("Reminder worker started",
		"poll_interval", w.pollInterval,
		"recipient", w.recipient,
	)

	ticker := time.NewTicker(w.pollInterval)
	defer ticker.Stop()

	// Process immediately on start, then on ticker
	w.processDue(ctx)

	for {
		select {
		case <-ctx.Done():
			slog.Info("Reminder worker shutting down")
			return
		case <-ticker.C:
			w.processDue(ctx)
		}
	}
}

// processDue fetches due reminders and sends one email per event.
func (w *Worker) processDue(ctx context.Context) {
	now := time.Now().UTC()

	due, err := w.events.FindDueReminders(ctx, now)
	if err != nil {
		slog.Error("Failed to find due reminders", "error", err)
		return
	}
	if len(due) == 0 {
		return
	}

	slog.Debug("Processing due reminders", "count", len(due))

	for _, event := range due {
		select {
		case <-ctx.Done():
			return
		default:
			w.remind(ctx, event, now)
		}
	}
}

// remind sends the reminder for one event and stamps it as reminded.
// Permanently failed sends are stamped too so the worker does not loop on
// a bad address forever; temporary failures are retried on the next tick.
func (w *Worker) remind(ctx context.Context, event *entity.CorporateEvent, now time.Time) {
	logger := slog.With(
		"event_id", event.ID,
		"event_type", event.EventType,
		"event_date", event.EventDate,
	)

	_, err := w.sender.Send(ctx, adapter.SendEmailInput{
		To:      w.recipient,
		Subject: reminderSubject(event),
		HTML:    reminderHTML(event),
		Text:    reminderText(event),
	})
	if err != nil {
		var emailErr *domainerror.EmailError
		if errors.As(err, &emailErr) && emailErr.Code == domainerror.ErrCodeTemporaryEmailFailure {
			logger.Warn("Reminder send failed, will retry", "error", err)
			return
		}
		logger.Error("Reminder send failed permanently", "error", err)
	} else {
		logger.Info("Reminder sent")
	}

	if err := w.events.MarkReminded(ctx, event.ID, now); err != nil {
		logger.Error("Failed to mark event as reminded", "error", err)
	}
}
