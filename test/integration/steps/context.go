// Package steps provides step definitions for BDD integration tests.
package steps

import (
	"context"
	"net/http/httptest"
	"time"

	"github.com/cucumber/godog"
	"github.com/gin-gonic/gin"

	"github.com/ledgerline/backend/internal/application/usecase/dashboard"
	"github.com/ledgerline/backend/internal/application/usecase/recurring"
	"github.com/ledgerline/backend/internal/application/usecase/statement"
	"github.com/ledgerline/backend/internal/application/usecase/transaction"
	"github.com/ledgerline/backend/internal/application/usecase/vault"
	"github.com/ledgerline/backend/internal/infra/server/router"
	"github.com/ledgerline/backend/internal/integration/adapters"
	"github.com/ledgerline/backend/internal/integration/entrypoint/controller"
	"github.com/ledgerline/backend/internal/integration/entrypoint/middleware"
	"github.com/ledgerline/backend/internal/integration/persistence"
	"github.com/ledgerline/backend/internal/integration/persistence/model"
	"github.com/ledgerline/backend/test/integration/mock"
)

const (
	testJWTSecret = "test-jwt-secret-key-for-testing-purposes"
	testUserID    = "usr_integration"
	allowedEmail  = "owner@ledgerline.test"
)

// InitializeTestSuite sets up resources before any scenarios run.
func InitializeTestSuite(ctx *godog.TestSuiteContext) {
	ctx.BeforeSuite(func() {
		gin.SetMode(gin.TestMode)
	})
}

// InitializeScenario registers all step definitions.
func InitializeScenario(ctx *godog.ScenarioContext) {
	test := &testContext{
		payments: mock.NewPayments(),
		db: mock.NewDb(map[string]any{
			"recurring_transactions": &model.RecurringTransactionModel{},
			"manual_transactions":    &model.ManualTransactionModel{},
			"business_entities":      &model.BusinessEntityModel{},
			"domain_records":         &model.DomainRecordModel{},
			"corporate_events":       &model.CorporateEventModel{},
		}),
	}

	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		test.before()
		return ctx, nil
	})

	ctx.After(func(ctx context.Context, sc *godog.Scenario, err error) (context.Context, error) {
		if test.server != nil {
			test.server.Close()
			test.server = nil
		}
		return ctx, nil
	})

	// Background steps
	ctx.Given(`^the API server is running$`, test.theAPIServerIsRunning)

	// Auth steps
	ctx.Given(`^I am authenticated as "([^"]*)"$`, test.iAmAuthenticatedAs)
	ctx.Given(`^I am not authenticated$`, test.iAmNotAuthenticated)
	ctx.Given(`^my token has expired$`, test.myTokenHasExpired)

	// Fixture steps
	ctx.Given(`^a recurring rule exists named "([^"]*)" with amount (\d+) kind "([^"]*)" frequency "([^"]*)" starting "([^"]*)"$`, test.aRecurringRuleExists)
	ctx.Given(`^a manual transaction exists with amount (\d+) type "([^"]*)" category "([^"]*)" on "([^"]*)"$`, test.aManualTransactionExists)
	ctx.Given(`^a domain record exists named "([^"]*)"$`, test.aDomainRecordExists)
	ctx.Given(`^a corporate event exists titled "([^"]*)" on "([^"]*)"$`, test.aCorporateEventExists)
	ctx.Given(`^the processor has a succeeded charge of (\d+) with fee (\d+) on "([^"]*)"$`, test.theProcessorHasASucceededCharge)
	ctx.Given(`^the payments API is unavailable$`, test.thePaymentsAPIIsUnavailable)

	// Request steps
	ctx.When(`^I send a "([^"]*)" request to "([^"]*)"$`, test.iSendARequestTo)
	ctx.When(`^I send a "([^"]*)" request to "([^"]*)" with body:$`, test.iSendARequestToWithBody)

	// Response assertion steps
	ctx.Then(`^the response status should be (\d+)$`, test.theResponseStatusShouldBe)
	ctx.Then(`^the response should contain "([^"]*)"$`, test.theResponseShouldContain)
	ctx.Then(`^the response field "([^"]*)" should be "([^"]*)"$`, test.theResponseFieldShouldBe)
	ctx.Then(`^the response field "([^"]*)" should exist$`, test.theResponseFieldShouldExist)
	ctx.Then(`^the response content type should be "([^"]*)"$`, test.theResponseContentTypeShouldBe)

	// Database assertion steps
	ctx.Then(`^the db should contain (\d+) objects in the "([^"]*)" table$`, test.theDbShouldContainObjectsInTheTable)
}

// newEngine wires the full application against the scenario database and
// payments stub.
func (t *testContext) newEngine() *gin.Engine {
	recurringRepo := persistence.NewRecurringRepository(t.db.DbConn)
	transactionRepo := persistence.NewTransactionRepository(t.db.DbConn)
	entityRepo := persistence.NewBusinessEntityRepository(t.db.DbConn)
	domainRepo := persistence.NewDomainRepository(t.db.DbConn)
	eventRepo := persistence.NewCorporateEventRepository(t.db.DbConn)

	recurringController := controller.NewRecurringController(
		recurring.NewCreateRecurringUseCase(recurringRepo),
		recurring.NewListRecurringUseCase(recurringRepo),
		recurring.NewUpdateRecurringUseCase(recurringRepo),
		recurring.NewDeleteRecurringUseCase(recurringRepo),
		recurring.NewProjectTotalsUseCase(recurringRepo),
	)
	transactionController := controller.NewTransactionController(
		transaction.NewCreateTransactionUseCase(transactionRepo),
		transaction.NewListTransactionsUseCase(transactionRepo),
		transaction.NewUpdateTransactionUseCase(transactionRepo),
		transaction.NewDeleteTransactionUseCase(transactionRepo),
	)
	vaultController := controller.NewVaultController(
		vault.NewGetBusinessEntityUseCase(entityRepo),
		vault.NewUpsertBusinessEntityUseCase(entityRepo),
		vault.NewListDomainsUseCase(domainRepo),
		vault.NewAddDomainUseCase(domainRepo),
		vault.NewUpdateDomainUseCase(domainRepo),
		vault.NewDeleteDomainUseCase(domainRepo),
		vault.NewListEventsUseCase(eventRepo),
		vault.NewCreateEventUseCase(eventRepo),
		vault.NewUpdateEventUseCase(eventRepo),
		vault.NewDeleteEventUseCase(eventRepo),
	)
	dashboardController := controller.NewDashboardController(
		dashboard.NewGetSummaryUseCase(t.payments, nil, time.Minute),
		dashboard.NewGetRevenueTrendsUseCase(t.payments, transactionRepo),
		dashboard.NewGetCategoryBreakdownUseCase(t.payments, transactionRepo),
	)
	statementController := controller.NewStatementController(
		statement.NewGenerateStatementUseCase(
			t.payments,
			transactionRepo,
			adapters.NewPDFStatementRenderer(),
			"Ledgerline Ventures Inc.",
			"1.36",
			"CAD",
		),
	)

	r := router.NewRouter(
		controller.NewHealthController(),
		recurringController,
		transactionController,
		vaultController,
		dashboardController,
		statementController,
		middleware.NewRateLimiterWithConfig(1000, time.Minute),
		middleware.NewAuthMiddleware(testJWTSecret, ""),
		middleware.NewAllowListMiddleware([]string{allowedEmail}),
	)
	return r.Setup("test")
}

func (t *testContext) startServer() {
	if t.server == nil {
		t.server = httptest.NewServer(t.newEngine())
	}
}
