package controller

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/ledgerline/backend/internal/application/usecase/recurring"
	"github.com/ledgerline/backend/internal/domain/entity"
	domainerror "github.com/ledgerline/backend/internal/domain/error"
	"github.com/ledgerline/backend/internal/integration/entrypoint/dto"
	"github.com/ledgerline/backend/internal/integration/entrypoint/middleware"
)

// RecurringController handles recurring transaction endpoints.
type RecurringController struct {
	createUseCase  *recurring.CreateRecurringUseCase
	listUseCase    *recurring.ListRecurringUseCase
	updateUseCase  *recurring.UpdateRecurringUseCase
	deleteUseCase  *recurring.DeleteRecurringUseCase
	projectUseCase *recurring.ProjectTotalsUseCase
}

// NewRecurringController creates a new recurring controller instance.
func NewRecurringController(
	createUseCase *recurring.CreateRecurringUseCase,
	listUseCase *recurring.ListRecurringUseCase,
	updateUseCase *recurring.UpdateRecurringUseCase,
	deleteUseCase *recurring.DeleteRecurringUseCase,
	projectUseCase *recurring.ProjectTotalsUseCase,
) *RecurringController {
	return &RecurringController{
		createUseCase:  createUseCase,
		listUseCase:    listUseCase,
		updateUseCase:  updateUseCase,
		deleteUseCase:  deleteUseCase,
		projectUseCase: projectUseCase,
	}
}

// List handles GET /recurring requests.
func (c *RecurringController) List(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), recurring.ListRecurringInput{
		UserID: userID,
	})
	if err != nil {
		c.handleRecurringError(ctx, err)
		return
	}

	response := dto.RecurringListResponse{
		Recurring: make([]dto.RecurringResponse, 0, len(output.Transactions)),
	}
	for _, tx := range output.Transactions {
		response.Recurring = append(response.Recurring, dto.ToRecurringResponse(tx))
	}
	ctx.JSON(http.StatusOK, response)
}

// Create handles POST /recurring requests.
func (c *RecurringController) Create(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	var req dto.CreateRecurringRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
			Code:  string(domainerror.ErrCodeMissingRecurringFields),
		})
		return
	}

	startDate, err := time.Parse("2006-01-02", req.StartDate)
	if err != nil {
		respondBadDate(ctx, string(domainerror.ErrCodeInvalidRecurringDate))
		return
	}

	input := recurring.CreateRecurringInput{
		UserID:    userID,
		Name:      req.Name,
		Amount:    req.Amount,
		Kind:      entity.RecurringKind(req.Kind),
		Frequency: entity.Frequency(req.Frequency),
		StartDate: startDate,
		Category:  req.Category,
		Currency:  req.Currency,
		IsActive:  true,
	}
	if req.IsActive != nil {
		input.IsActive = *req.IsActive
	}
	if req.EndDate != nil && *req.EndDate != "" {
		endDate, err := time.Parse("2006-01-02", *req.EndDate)
		if err != nil {
			respondBadDate(ctx, string(domainerror.ErrCodeInvalidRecurringDate))
			return
		}
		input.EndDate = &endDate
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleRecurringError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToRecurringResponse(output.Transaction))
}

// Update handles PATCH /recurring/:id requests.
func (c *RecurringController) Update(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid recurring transaction ID format",
		})
		return
	}

	var req dto.UpdateRecurringRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
		})
		return
	}

	input := recurring.UpdateRecurringInput{
		UserID:       userID,
		ID:           id,
		Name:         req.Name,
		Amount:       req.Amount,
		ClearEndDate: req.ClearEndDate,
		Category:     req.Category,
		Currency:     req.Currency,
		IsActive:     req.IsActive,
	}
	if req.Kind != nil {
		kind := entity.RecurringKind(*req.Kind)
		input.Kind = &kind
	}
	if req.Frequency != nil {
		freq := entity.Frequency(*req.Frequency)
		input.Frequency = &freq
	}
	if req.StartDate != nil {
		startDate, err := time.Parse("2006-01-02", *req.StartDate)
		if err != nil {
			respondBadDate(ctx, string(domainerror.ErrCodeInvalidRecurringDate))
			return
		}
		input.StartDate = &startDate
	}
	if req.EndDate != nil && *req.EndDate != "" {
		endDate, err := time.Parse("2006-01-02", *req.EndDate)
		if err != nil {
			respondBadDate(ctx, string(domainerror.ErrCodeInvalidRecurringDate))
			return
		}
		input.EndDate = &endDate
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleRecurringError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToRecurringResponse(output.Transaction))
}

// Delete handles DELETE /recurring/:id requests.
func (c *RecurringController) Delete(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid recurring transaction ID format",
		})
		return
	}

	if err := c.deleteUseCase.Execute(ctx.Request.Context(), recurring.DeleteRecurringInput{
		UserID: userID,
		ID:     id,
	}); err != nil {
		c.handleRecurringError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// ProjectTotals handles GET /dashboard/recurring-totals requests.
func (c *RecurringController) ProjectTotals(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	startStr := ctx.Query("start_date")
	endStr := ctx.Query("end_date")

	startDate, err := time.Parse("2006-01-02", startStr)
	if err != nil {
		respondBadDate(ctx, string(domainerror.ErrCodeInvalidWindow))
		return
	}
	endDate, err := time.Parse("2006-01-02", endStr)
	if err != nil {
		respondBadDate(ctx, string(domainerror.ErrCodeInvalidWindow))
		return
	}

	output, err := c.projectUseCase.Execute(ctx.Request.Context(), recurring.ProjectTotalsInput{
		UserID:    userID,
		StartDate: startDate,
		EndDate:   endDate,
	})
	if err != nil {
		c.handleRecurringError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToProjectionResponse(startStr, endStr, output))
}

// handleRecurringError maps recurring errors to HTTP responses.
func (c *RecurringController) handleRecurringError(ctx *gin.Context, err error) {
	var recErr *domainerror.RecurringError
	if errors.As(err, &recErr) {
		ctx.JSON(c.statusForRecurringError(recErr.Code), dto.ErrorResponse{
			Error: recErr.Message,
			Code:  string(recErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// statusForRecurringError maps recurring error codes to HTTP status codes.
func (c *RecurringController) statusForRecurringError(code domainerror.RecurringErrorCode) int {
	switch code {
	case domainerror.ErrCodeRecurringNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeInvalidRecurringAmount,
		domainerror.ErrCodeInvalidRecurringKind,
		domainerror.ErrCodeInvalidFrequency,
		domainerror.ErrCodeInvalidRecurringDate,
		domainerror.ErrCodeEndBeforeStart,
		domainerror.ErrCodeInvalidWindow,
		domainerror.ErrCodeMissingRecurringFields:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// respondUnauthenticated writes the shared missing-identity response.
func respondUnauthenticated(ctx *gin.Context) {
	ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
		Error: "User not authenticated",
		Code:  string(domainerror.ErrCodeMissingToken),
	})
}

// respondBadDate writes the shared invalid-date response.
func respondBadDate(ctx *gin.Context, code string) {
	ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
		Error: "Invalid date format. Use YYYY-MM-DD",
		Code:  code,
	})
}
