package persistence

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/ledgerline/backend/internal/domain/entity"
	domainerror "github.com/ledgerline/backend/internal/domain/error"
	"github.com/ledgerline/backend/internal/integration/persistence/model"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	err = db.AutoMigrate(
		&model.RecurringTransactionModel{},
		&model.ManualTransactionModel{},
		&model.BusinessEntityModel{},
		&model.DomainRecordModel{},
		&model.CorporateEventModel{},
	)
	if err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}
	return db
}

func TestRecurringRepositoryOwnerScoping(t *testing.T) {
	db := newTestDB(t)
	repo := NewRecurringRepository(db)
	ctx := context.Background()

	mine := entity.NewRecurringTransaction(
		"auth0|owner", "Hosting", 2500, entity.RecurringKindExpense,
		entity.FrequencyMonthly, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		nil, "Infrastructure", "CAD", true,
	)
	theirs := entity.NewRecurringTransaction(
		"auth0|other", "Hosting", 2500, entity.RecurringKindExpense,
		entity.FrequencyMonthly, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		nil, "Infrastructure", "CAD", true,
	)
	if err := repo.Create(ctx, mine); err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if err := repo.Create(ctx, theirs); err != nil {
		t.Fatalf("create failed: %v", err)
	}

	listed, err := repo.FindByUser(ctx, "auth0|owner")
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(listed) != 1 || listed[0].ID != mine.ID {
		t.Fatalf("expected only the owner's rule, got %d", len(listed))
	}

	if _, err := repo.FindByID(ctx, "auth0|owner", theirs.ID); !errors.Is(err, domainerror.ErrRecurringNotFound) {
		t.Errorf("expected not found for foreign rule, got %v", err)
	}
	if err := repo.Delete(ctx, "auth0|owner", theirs.ID); !errors.Is(err, domainerror.ErrRecurringNotFound) {
		t.Errorf("expected not found deleting foreign rule, got %v", err)
	}
}

func TestRecurringRepositoryFindActive(t *testing.T) {
	db := newTestDB(t)
	repo := NewRecurringRepository(db)
	ctx := context.Background()

	active := entity.NewRecurringTransaction(
		"auth0|owner", "Salary", 500000, entity.RecurringKindIncome,
		entity.FrequencyBiweekly, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		nil, "Payroll", "CAD", true,
	)
	paused := entity.NewRecurringTransaction(
		"auth0|owner", "Old subscription", 900, entity.RecurringKindExpense,
		entity.FrequencyMonthly, time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC),
		nil, "Software", "CAD", false,
	)
	for _, tx := range []*entity.RecurringTransaction{active, paused} {
		if err := repo.Create(ctx, tx); err != nil {
			t.Fatalf("create failed: %v", err)
		}
	}

	got, err := repo.FindActiveByUser(ctx, "auth0|owner")
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(got) != 1 || got[0].ID != active.ID {
		t.Fatalf("expected only the active rule, got %d", len(got))
	}
}

func TestBusinessEntityUpsertKeepsOneRow(t *testing.T) {
	db := newTestDB(t)
	repo := NewBusinessEntityRepository(db)
	ctx := context.Background()

	first := &entity.BusinessEntity{
		ID:          uuid.New(),
		UserID:      "auth0|owner",
		CompanyName: "Acme Inc.",
		CreatedAt:   time.Now().UTC(),
		UpdatedAt:   time.Now().UTC(),
	}
	if err := repo.Upsert(ctx, first); err != nil {
		t.Fatalf("upsert failed: %v", err)
	}

	second := &entity.BusinessEntity{
		ID:          first.ID,
		UserID:      "auth0|owner",
		CompanyName: "Acme Holdings Inc.",
		CreatedAt:   first.CreatedAt,
		UpdatedAt:   time.Now().UTC(),
	}
	if err := repo.Upsert(ctx, second); err != nil {
		t.Fatalf("upsert failed: %v", err)
	}

	var count int64
	if err := db.Model(&model.BusinessEntityModel{}).Count(&count).Error; err != nil {
		t.Fatalf("count failed: %v", err)
	}
	if count != 1 {
		t.Fatalf("expected one row after upsert, got %d", count)
	}

	got, err := repo.FindByUser(ctx, "auth0|owner")
	if err != nil {
		t.Fatalf("find failed: %v", err)
	}
	if got.CompanyName != "Acme Holdings Inc." {
		t.Errorf("expected updated company name, got %q", got.CompanyName)
	}
}

func TestDomainRepositoryOrdersByExpiration(t *testing.T) {
	db := newTestDB(t)
	repo := NewDomainRepository(db)
	ctx := context.Background()

	far := time.Date(2027, 6, 1, 0, 0, 0, 0, time.UTC)
	near := time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC)

	undated := entity.NewDomainRecord("auth0|owner", "parked.example", "Namecheap", nil, false, "parked", "")
	later := entity.NewDomainRecord("auth0|owner", "later.example", "Namecheap", &far, true, "marketing", "")
	sooner := entity.NewDomainRecord("auth0|owner", "sooner.example", "Cloudflare", &near, true, "primary", "")
	for _, d := range []*entity.DomainRecord{undated, later, sooner} {
		if err := repo.Create(ctx, d); err != nil {
			t.Fatalf("create failed: %v", err)
		}
	}

	got, err := repo.FindByUser(ctx, "auth0|owner")
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("expected 3 domains, got %d", len(got))
	}
	if got[0].DomainName != "sooner.example" || got[1].DomainName != "later.example" || got[2].DomainName != "parked.example" {
		t.Errorf("unexpected order: %s, %s, %s", got[0].DomainName, got[1].DomainName, got[2].DomainName)
	}
}

func TestCorporateEventReminderFlow(t *testing.T) {
	db := newTestDB(t)
	repo := NewCorporateEventRepository(db)
	ctx := context.Background()

	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	due := entity.NewCorporateEvent(
		"auth0|owner", "Annual report filing", "", now.AddDate(0, 0, 5),
		entity.EventTypeFiling, true, 7,
	)
	notYet := entity.NewCorporateEvent(
		"auth0|owner", "AGM", "", now.AddDate(0, 0, 30),
		entity.EventTypeMeeting, true, 7,
	)
	silent := entity.NewCorporateEvent(
		"auth0|owner", "Note to self", "", now.AddDate(0, 0, 3),
		entity.EventTypeGeneral, false, 0,
	)
	for _, e := range []*entity.CorporateEvent{due, notYet, silent} {
		if err := repo.Create(ctx, e); err != nil {
			t.Fatalf("create failed: %v", err)
		}
	}

	found, err := repo.FindDueReminders(ctx, now)
	if err != nil {
		t.Fatalf("find due failed: %v", err)
	}
	if len(found) != 1 || found[0].ID != due.ID {
		t.Fatalf("expected exactly the due event, got %d", len(found))
	}

	if err := repo.MarkReminded(ctx, due.ID, now); err != nil {
		t.Fatalf("mark reminded failed: %v", err)
	}

	found, err = repo.FindDueReminders(ctx, now)
	if err != nil {
		t.Fatalf("find due failed: %v", err)
	}
	if len(found) != 0 {
		t.Fatalf("expected no due events after marking, got %d", len(found))
	}
}
