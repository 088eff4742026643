// Package dependency provides dependency injection for the application.
package dependency

import (
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/ledgerline/backend/config"
	"github.com/ledgerline/backend/internal/application/usecase/dashboard"
	"github.com/ledgerline/backend/internal/application/usecase/recurring"
	"github.com/ledgerline/backend/internal/application/usecase/statement"
	"github.com/ledgerline/backend/internal/application/usecase/transaction"
	"github.com/ledgerline/backend/internal/application/usecase/vault"
	"github.com/ledgerline/backend/internal/infra/server/router"
	"github.com/ledgerline/backend/internal/integration/adapters"
	"github.com/ledgerline/backend/internal/integration/email"
	"github.com/ledgerline/backend/internal/integration/entrypoint/controller"
	"github.com/ledgerline/backend/internal/integration/entrypoint/middleware"
	"github.com/ledgerline/backend/internal/integration/persistence"
)

// Injector holds all application dependencies.
type Injector struct {
	Config         *config.Config
	DB             *gorm.DB
	Router         *router.Router
	ReminderWorker *email.Worker
}

// NewInjector creates a new dependency injector with all dependencies wired.
func NewInjector(cfg *config.Config, db *gorm.DB) *Injector {
	// Create repositories
	recurringRepo := persistence.NewRecurringRepository(db)
	transactionRepo := persistence.NewTransactionRepository(db)
	entityRepo := persistence.NewBusinessEntityRepository(db)
	domainRepo := persistence.NewDomainRepository(db)
	eventRepo := persistence.NewCorporateEventRepository(db)

	// Create adapters
	paymentsClient := adapters.NewStripeClient(adapters.StripeClientConfig{
		SecretKey:     cfg.Stripe.SecretKey,
		MaxRetries:    cfg.Stripe.MaxRetries,
		RetryBaseWait: cfg.Stripe.RetryBaseWait,
	})
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	summaryCache := adapters.NewRedisSummaryCache(redisClient)
	pdfRenderer := adapters.NewPDFStatementRenderer()
	emailSender := email.NewResendClient(cfg.Email.ResendAPIKey, cfg.Email.FromName, cfg.Email.FromEmail)

	// Create recurring use cases
	createRecurringUseCase := recurring.NewCreateRecurringUseCase(recurringRepo)
	listRecurringUseCase := recurring.NewListRecurringUseCase(recurringRepo)
	updateRecurringUseCase := recurring.NewUpdateRecurringUseCase(recurringRepo)
	deleteRecurringUseCase := recurring.NewDeleteRecurringUseCase(recurringRepo)
	projectTotalsUseCase := recurring.NewProjectTotalsUseCase(recurringRepo)

	// Create transaction use cases
	createTransactionUseCase := transaction.NewCreateTransactionUseCase(transactionRepo)
	listTransactionsUseCase := transaction.NewListTransactionsUseCase(transactionRepo)
	updateTransactionUseCase := transaction.NewUpdateTransactionUseCase(transactionRepo)
	deleteTransactionUseCase := transaction.NewDeleteTransactionUseCase(transactionRepo)

	// Create vault use cases
	getEntityUseCase := vault.NewGetBusinessEntityUseCase(entityRepo)
	upsertEntityUseCase := vault.NewUpsertBusinessEntityUseCase(entityRepo)
	listDomainsUseCase := vault.NewListDomainsUseCase(domainRepo)
	addDomainUseCase := vault.NewAddDomainUseCase(domainRepo)
	updateDomainUseCase := vault.NewUpdateDomainUseCase(domainRepo)
	deleteDomainUseCase := vault.NewDeleteDomainUseCase(domainRepo)
	listEventsUseCase := vault.NewListEventsUseCase(eventRepo)
	createEventUseCase := vault.NewCreateEventUseCase(eventRepo)
	updateEventUseCase := vault.NewUpdateEventUseCase(eventRepo)
	deleteEventUseCase := vault.NewDeleteEventUseCase(eventRepo)

	// Create dashboard use cases
	summaryUseCase := dashboard.NewGetSummaryUseCase(paymentsClient, summaryCache, cfg.Redis.SummaryTTL)
	trendsUseCase := dashboard.NewGetRevenueTrendsUseCase(paymentsClient, transactionRepo)
	breakdownUseCase := dashboard.NewGetCategoryBreakdownUseCase(paymentsClient, transactionRepo)

	// Create statement use case
	generateStatementUseCase := statement.NewGenerateStatementUseCase(
		paymentsClient,
		transactionRepo,
		pdfRenderer,
		cfg.Statement.CompanyName,
		cfg.Statement.ConversionRate,
		cfg.Statement.HomeCurrency,
	)

	// Create controllers
	healthController := controller.NewHealthController()
	recurringController := controller.NewRecurringController(
		createRecurringUseCase,
		listRecurringUseCase,
		updateRecurringUseCase,
		deleteRecurringUseCase,
		projectTotalsUseCase,
	)
	transactionController := controller.NewTransactionController(
		createTransactionUseCase,
		listTransactionsUseCase,
		updateTransactionUseCase,
		deleteTransactionUseCase,
	)
	vaultController := controller.NewVaultController(
		getEntityUseCase,
		upsertEntityUseCase,
		listDomainsUseCase,
		addDomainUseCase,
		updateDomainUseCase,
		deleteDomainUseCase,
		listEventsUseCase,
		createEventUseCase,
		updateEventUseCase,
		deleteEventUseCase,
	)
	dashboardController := controller.NewDashboardController(
		summaryUseCase,
		trendsUseCase,
		breakdownUseCase,
	)
	statementController := controller.NewStatementController(generateStatementUseCase)

	// Create middleware
	// Higher rate limits under test so suites don't trip the limiter
	var rateLimiter *middleware.RateLimiter
	if cfg.Server.Environment == "e2e" || cfg.Server.Environment == "test" {
		rateLimiter = middleware.NewRateLimiterWithConfig(1000, 1*time.Minute)
	} else {
		rateLimiter = middleware.NewRateLimiter()
	}
	authMiddleware := middleware.NewAuthMiddleware(cfg.Auth.JWTSecret, cfg.Auth.Issuer)
	allowListMiddleware := middleware.NewAllowListMiddleware(cfg.Auth.AllowedEmails)

	// Create router
	r := router.NewRouter(
		healthController,
		recurringController,
		transactionController,
		vaultController,
		dashboardController,
		statementController,
		rateLimiter,
		authMiddleware,
		allowListMiddleware,
	)

	// Create reminder worker
	var reminderWorker *email.Worker
	if cfg.Email.WorkerEnabled && cfg.Email.ReminderTo != "" {
		reminderWorker = email.NewWorker(eventRepo, emailSender, email.WorkerConfig{
			Recipient:    cfg.Email.ReminderTo,
			PollInterval: cfg.Email.PollInterval,
		})
	}

	return &Injector{
		Config:         cfg,
		DB:             db,
		Router:         r,
		ReminderWorker: reminderWorker,
	}
}
