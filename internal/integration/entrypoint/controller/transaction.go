package controller

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/ledgerline/backend/internal/application/usecase/transaction"
	"github.com/ledgerline/backend/internal/domain/entity"
	domainerror "github.com/ledgerline/backend/internal/domain/error"
	"github.com/ledgerline/backend/internal/integration/entrypoint/dto"
	"github.com/ledgerline/backend/internal/integration/entrypoint/middleware"
)

// TransactionController handles manual transaction endpoints.
type TransactionController struct {
	createUseCase *transaction.CreateTransactionUseCase
	listUseCase   *transaction.ListTransactionsUseCase
	updateUseCase *transaction.UpdateTransactionUseCase
	deleteUseCase *transaction.DeleteTransactionUseCase
}

// NewTransactionController creates a new transaction controller instance.
func NewTransactionController(
	createUseCase *transaction.CreateTransactionUseCase,
	listUseCase *transaction.ListTransactionsUseCase,
	updateUseCase *transaction.UpdateTransactionUseCase,
	deleteUseCase *transaction.DeleteTransactionUseCase,
) *TransactionController {
	return &TransactionController{
		createUseCase: createUseCase,
		listUseCase:   listUseCase,
		updateUseCase: updateUseCase,
		deleteUseCase: deleteUseCase,
	}
}

// List handles GET /transactions requests. startDate and endDate query
// parameters bound the listing when present.
func (c *TransactionController) List(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	input := transaction.ListTransactionsInput{UserID: userID}
	if startStr := ctx.Query("startDate"); startStr != "" {
		startDate, err := time.Parse("2006-01-02", startStr)
		if err != nil {
			respondBadDate(ctx, string(domainerror.ErrCodeInvalidTransactionDate))
			return
		}
		input.StartDate = &startDate
	}
	if endStr := ctx.Query("endDate"); endStr != "" {
		endDate, err := time.Parse("2006-01-02", endStr)
		if err != nil {
			respondBadDate(ctx, string(domainerror.ErrCodeInvalidTransactionDate))
			return
		}
		input.EndDate = &endDate
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleTransactionError(ctx, err)
		return
	}

	response := dto.TransactionListResponse{
		Transactions: make([]dto.TransactionResponse, 0, len(output.Transactions)),
	}
	for _, tx := range output.Transactions {
		response.Transactions = append(response.Transactions, dto.ToTransactionResponse(tx))
	}
	ctx.JSON(http.StatusOK, response)
}

// Create handles POST /transactions requests.
func (c *TransactionController) Create(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	var req dto.CreateTransactionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
		})
		return
	}

	txDate, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		respondBadDate(ctx, string(domainerror.ErrCodeInvalidTransactionDate))
		return
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), transaction.CreateTransactionInput{
		UserID:          userID,
		Amount:          req.Amount,
		Currency:        req.Currency,
		Type:            entity.ManualTransactionType(req.Type),
		Category:        req.Category,
		Description:     req.Description,
		TransactionDate: txDate,
		Notes:           req.Notes,
	})
	if err != nil {
		c.handleTransactionError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToTransactionResponse(output.Transaction))
}

// Update handles PATCH /transactions/:id requests.
func (c *TransactionController) Update(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid transaction ID format",
		})
		return
	}

	var req dto.UpdateTransactionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
		})
		return
	}

	input := transaction.UpdateTransactionInput{
		UserID:      userID,
		ID:          id,
		Amount:      req.Amount,
		Currency:    req.Currency,
		Category:    req.Category,
		Description: req.Description,
		Notes:       req.Notes,
	}
	if req.Type != nil {
		txType := entity.ManualTransactionType(*req.Type)
		input.Type = &txType
	}
	if req.Date != nil {
		txDate, err := time.Parse("2006-01-02", *req.Date)
		if err != nil {
			respondBadDate(ctx, string(domainerror.ErrCodeInvalidTransactionDate))
			return
		}
		input.TransactionDate = &txDate
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleTransactionError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToTransactionResponse(output.Transaction))
}

// Delete handles DELETE /transactions/:id requests.
func (c *TransactionController) Delete(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid transaction ID format",
		})
		return
	}

	if err := c.deleteUseCase.Execute(ctx.Request.Context(), transaction.DeleteTransactionInput{
		UserID: userID,
		ID:     id,
	}); err != nil {
		c.handleTransactionError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// handleTransactionError maps transaction errors to HTTP responses.
func (c *TransactionController) handleTransactionError(ctx *gin.Context, err error) {
	var txErr *domainerror.TransactionError
	if errors.As(err, &txErr) {
		ctx.JSON(c.statusForTransactionError(txErr.Code), dto.ErrorResponse{
			Error: txErr.Message,
			Code:  string(txErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// statusForTransactionError maps transaction error codes to HTTP status codes.
func (c *TransactionController) statusForTransactionError(code domainerror.TransactionErrorCode) int {
	switch code {
	case domainerror.ErrCodeTransactionNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeInvalidTransactionType,
		domainerror.ErrCodeInvalidTransactionDate,
		domainerror.ErrCodeInvalidTransactionAmount,
		domainerror.ErrCodeMissingCategory:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
