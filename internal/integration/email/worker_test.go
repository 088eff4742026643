package email

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/ledgerline/backend/internal/application/adapter"
	"github.com/ledgerline/backend/internal/domain/entity"
	domainerror "github.com/ledgerline/backend/internal/domain/error"
)

type fakeEventRepo struct {
	due      []*entity.CorporateEvent
	reminded []uuid.UUID
}

func (f *fakeEventRepo) Create(ctx context.Context, e *entity.CorporateEvent) error { return nil }
func (f *fakeEventRepo) FindByUser(ctx context.Context, userID string) ([]*entity.CorporateEvent, error) {
	return nil, nil
}
func (f *fakeEventRepo) FindByID(ctx context.Context, userID string, id uuid.UUID) (*entity.CorporateEvent, error) {
	return nil, domainerror.ErrEventNotFound
}
func (f *fakeEventRepo) Update(ctx context.Context, e *entity.CorporateEvent) error { return nil }
func (f *fakeEventRepo) Delete(ctx context.Context, userID string, id uuid.UUID) error {
	return nil
}
func (f *fakeEventRepo) FindDueReminders(ctx context.Context, now time.Time) ([]*entity.CorporateEvent, error) {
	return f.due, nil
}
func (f *fakeEventRepo) MarkReminded(ctx context.Context, id uuid.UUID, at time.Time) error {
	f.reminded = append(f.reminded, id)
	return nil
}

type fakeSender struct {
	sent []adapter.SendEmailInput
	err  error
}

func (f *fakeSender) Send(ctx context.Context, input adapter.SendEmailInput) (*adapter.SendEmailResult, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.sent = append(f.sent, input)
	return &adapter.SendEmailResult{ProviderID: "email_123"}, nil
}

func dueEvent(title string) *entity.CorporateEvent {
	return entity.NewCorporateEvent(
		"auth0|owner", title, "Annual filing with the registry",
		time.Date(2026, 4, 15, 0, 0, 0, 0, time.UTC),
		entity.EventTypeFiling, true, 7,
	)
}

func TestWorkerSendsAndMarksReminded(t *testing.T) {
	event := dueEvent("Annual report")
	repo := &fakeEventRepo{due: []*entity.CorporateEvent{event}}
	sender := &fakeSender{}

	w := NewWorker(repo, sender, WorkerConfig{Recipient: "ops@example.com", PollInterval: time.Hour})
	w.processDue(context.Background())

	if len(sender.sent) != 1 {
		t.Fatalf("expected 1 email, got %d", len(sender.sent))
	}
	if sender.sent[0].To != "ops@example.com" {
		t.Errorf("unexpected recipient %q", sender.sent[0].To)
	}
	if len(repo.reminded) != 1 || repo.reminded[0] != event.ID {
		t.Fatalf("expected event marked reminded")
	}
}

func TestWorkerRetriesTemporaryFailure(t *testing.T) {
	event := dueEvent("Annual report")
	repo := &fakeEventRepo{due: []*entity.CorporateEvent{event}}
	sender := &fakeSender{err: domainerror.NewEmailError(
		domainerror.ErrCodeTemporaryEmailFailure, "temporary email failure", nil,
	)}

	w := NewWorker(repo, sender, WorkerConfig{Recipient: "ops@example.com", PollInterval: time.Hour})
	w.processDue(context.Background())

	if len(repo.reminded) != 0 {
		t.Fatal("temporary failure must leave the event unmarked")
	}
}

func TestWorkerMarksPermanentFailure(t *testing.T) {
	event := dueEvent("Annual report")
	repo := &fakeEventRepo{due: []*entity.CorporateEvent{event}}
	sender := &fakeSender{err: domainerror.NewEmailError(
		domainerror.ErrCodePermanentEmailFailure, "permanent email failure", nil,
	)}

	w := NewWorker(repo, sender, WorkerConfig{Recipient: "ops@example.com", PollInterval: time.Hour})
	w.processDue(context.Background())

	if len(repo.reminded) != 1 {
		t.Fatal("permanent failure must still mark the event to stop retry loops")
	}
}

func TestReminderSubject(t *testing.T) {
	event := dueEvent("Annual report")
	got := reminderSubject(event)
	want := "Filing: Annual report on Apr 15, 2026"
	if got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}
