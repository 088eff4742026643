package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ledgerline/backend/internal/application/usecase/statement"
	domainerror "github.com/ledgerline/backend/internal/domain/error"
	"github.com/ledgerline/backend/internal/integration/entrypoint/dto"
	"github.com/ledgerline/backend/internal/integration/entrypoint/middleware"
)

// StatementController handles statement generation endpoints.
type StatementController struct {
	generateUseCase *statement.GenerateStatementUseCase
}

// NewStatementController creates a new statement controller instance.
func NewStatementController(generateUseCase *statement.GenerateStatementUseCase) *StatementController {
	return &StatementController{
		generateUseCase: generateUseCase,
	}
}

// Generate handles GET /statements requests. Requires start_date and
// end_date query parameters; currency selects the statement currency and
// defaults to the configured home currency.
func (c *StatementController) Generate(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	startDate, endDate, ok := parseWindowQuery(ctx)
	if !ok {
		return
	}

	output, err := c.generateUseCase.Execute(ctx.Request.Context(), statement.GenerateStatementInput{
		UserID:    userID,
		StartDate: startDate,
		EndDate:   endDate,
		Currency:  ctx.Query("currency"),
	})
	if err != nil {
		c.handleStatementError(ctx, err)
		return
	}

	ctx.Header("Content-Disposition", "attachment; filename=\""+output.Filename+"\"")
	ctx.Data(http.StatusOK, "application/pdf", output.Document)
}

// handleStatementError maps statement, dashboard, and payments errors to
// HTTP responses.
func (c *StatementController) handleStatementError(ctx *gin.Context, err error) {
	var stmErr *domainerror.StatementError
	if errors.As(err, &stmErr) {
		ctx.JSON(c.statusForStatementError(stmErr.Code), dto.ErrorResponse{
			Error: stmErr.Message,
			Code:  string(stmErr.Code),
		})
		return
	}

	var dashErr *domainerror.DashboardError
	if errors.As(err, &dashErr) {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: dashErr.Message,
			Code:  string(dashErr.Code),
		})
		return
	}

	var payErr *domainerror.PaymentsError
	if errors.As(err, &payErr) {
		ctx.JSON(http.StatusBadGateway, dto.ErrorResponse{
			Error: payErr.Message,
			Code:  string(payErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// statusForStatementError maps statement error codes to HTTP status codes.
func (c *StatementController) statusForStatementError(code domainerror.StatementErrorCode) int {
	switch code {
	case domainerror.ErrCodeInvalidTargetCurrency,
		domainerror.ErrCodeInvalidConversionRate:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
