package controller

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/ledgerline/backend/internal/application/usecase/dashboard"
	domainerror "github.com/ledgerline/backend/internal/domain/error"
	"github.com/ledgerline/backend/internal/integration/entrypoint/dto"
	"github.com/ledgerline/backend/internal/integration/entrypoint/middleware"
)

// DashboardController handles dashboard aggregation endpoints.
type DashboardController struct {
	summaryUseCase   *dashboard.GetSummaryUseCase
	trendsUseCase    *dashboard.GetRevenueTrendsUseCase
	breakdownUseCase *dashboard.GetCategoryBreakdownUseCase
}

// NewDashboardController creates a new dashboard controller instance.
func NewDashboardController(
	summaryUseCase *dashboard.GetSummaryUseCase,
	trendsUseCase *dashboard.GetRevenueTrendsUseCase,
	breakdownUseCase *dashboard.GetCategoryBreakdownUseCase,
) *DashboardController {
	return &DashboardController{
		summaryUseCase:   summaryUseCase,
		trendsUseCase:    trendsUseCase,
		breakdownUseCase: breakdownUseCase,
	}
}

// GetSummary handles GET /dashboard/summary requests.
func (c *DashboardController) GetSummary(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	output, err := c.summaryUseCase.Execute(ctx.Request.Context(), dashboard.GetSummaryInput{
		UserID: userID,
	})
	if err != nil {
		c.handleDashboardError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToSummaryResponse(output))
}

// GetTrends handles GET /dashboard/trends requests. Requires start_date and
// end_date query parameters; granularity defaults to month.
func (c *DashboardController) GetTrends(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	startDate, endDate, ok := parseWindowQuery(ctx)
	if !ok {
		return
	}

	granularity := dashboard.Granularity(ctx.DefaultQuery("granularity", string(dashboard.GranularityMonth)))

	output, err := c.trendsUseCase.Execute(ctx.Request.Context(), dashboard.GetRevenueTrendsInput{
		UserID:      userID,
		StartDate:   startDate,
		EndDate:     endDate,
		Granularity: granularity,
	})
	if err != nil {
		c.handleDashboardError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToTrendsResponse(granularity, output.Buckets))
}

// GetCategoryBreakdown handles GET /dashboard/categories requests.
func (c *DashboardController) GetCategoryBreakdown(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	startDate, endDate, ok := parseWindowQuery(ctx)
	if !ok {
		return
	}

	output, err := c.breakdownUseCase.Execute(ctx.Request.Context(), dashboard.GetCategoryBreakdownInput{
		UserID:    userID,
		StartDate: startDate,
		EndDate:   endDate,
	})
	if err != nil {
		c.handleDashboardError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToCategoryBreakdownResponse(output.Categories))
}

// parseWindowQuery reads the start_date and end_date query parameters. It
// writes the error response itself and reports false when either is bad.
func parseWindowQuery(ctx *gin.Context) (time.Time, time.Time, bool) {
	startStr := ctx.Query("start_date")
	if startStr == "" {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "start_date is required",
			Code:  string(domainerror.ErrCodeMissingStartDate),
		})
		return time.Time{}, time.Time{}, false
	}
	endStr := ctx.Query("end_date")
	if endStr == "" {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "end_date is required",
			Code:  string(domainerror.ErrCodeMissingEndDate),
		})
		return time.Time{}, time.Time{}, false
	}

	startDate, err := time.Parse("2006-01-02", startStr)
	if err != nil {
		respondBadDate(ctx, string(domainerror.ErrCodeInvalidDateRange))
		return time.Time{}, time.Time{}, false
	}
	endDate, err := time.Parse("2006-01-02", endStr)
	if err != nil {
		respondBadDate(ctx, string(domainerror.ErrCodeInvalidDateRange))
		return time.Time{}, time.Time{}, false
	}
	return startDate, endDate, true
}

// handleDashboardError maps dashboard and payments errors to HTTP responses.
func (c *DashboardController) handleDashboardError(ctx *gin.Context, err error) {
	var dashErr *domainerror.DashboardError
	if errors.As(err, &dashErr) {
		ctx.JSON(c.statusForDashboardError(dashErr.Code), dto.ErrorResponse{
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

// statusForDashboardError maps dashboard error codes to HTTP status codes.
func (c *DashboardController) statusForDashboardError(code domainerror.DashboardErrorCode) int {
	switch code {
	case domainerror.ErrCodeMissingStartDate,
		domainerror.ErrCodeMissingEndDate,
		domainerror.ErrCodeInvalidDateRange,
		domainerror.ErrCodeInvalidGranularity:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
