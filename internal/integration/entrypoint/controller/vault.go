package controller

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/ledgerline/backend/internal/application/usecase/vault"
	"github.com/ledgerline/backend/internal/domain/entity"
	domainerror "github.com/ledgerline/backend/internal/domain/error"
	"github.com/ledgerline/backend/internal/integration/entrypoint/dto"
	"github.com/ledgerline/backend/internal/integration/entrypoint/middleware"
)

// VaultController handles business entity, domain portfolio, and corporate
// calendar endpoints.
type VaultController struct {
	getEntityUseCase    *vault.GetBusinessEntityUseCase
	upsertEntityUseCase *vault.UpsertBusinessEntityUseCase
	listDomainsUseCase  *vault.ListDomainsUseCase
	addDomainUseCase    *vault.AddDomainUseCase
	updateDomainUseCase *vault.UpdateDomainUseCase
	deleteDomainUseCase *vault.DeleteDomainUseCase
	listEventsUseCase   *vault.ListEventsUseCase
	createEventUseCase  *vault.CreateEventUseCase
	updateEventUseCase  *vault.UpdateEventUseCase
	deleteEventUseCase  *vault.DeleteEventUseCase
}

// NewVaultController creates a new vault controller instance.
func NewVaultController(
	getEntityUseCase *vault.GetBusinessEntityUseCase,
	upsertEntityUseCase *vault.UpsertBusinessEntityUseCase,
	listDomainsUseCase *vault.ListDomainsUseCase,
	addDomainUseCase *vault.AddDomainUseCase,
	updateDomainUseCase *vault.UpdateDomainUseCase,
	deleteDomainUseCase *vault.DeleteDomainUseCase,
	listEventsUseCase *vault.ListEventsUseCase,
	createEventUseCase *vault.CreateEventUseCase,
	updateEventUseCase *vault.UpdateEventUseCase,
	deleteEventUseCase *vault.DeleteEventUseCase,
) *VaultController {
	return &VaultController{
		getEntityUseCase:    getEntityUseCase,
		upsertEntityUseCase: upsertEntityUseCase,
		listDomainsUseCase:  listDomainsUseCase,
		addDomainUseCase:    addDomainUseCase,
		updateDomainUseCase: updateDomainUseCase,
		deleteDomainUseCase: deleteDomainUseCase,
		listEventsUseCase:   listEventsUseCase,
		createEventUseCase:  createEventUseCase,
		updateEventUseCase:  updateEventUseCase,
		deleteEventUseCase:  deleteEventUseCase,
	}
}

// GetEntity handles GET /vault/entity requests. Responds 200 with an empty
// body object when no profile has been saved yet.
func (c *VaultController) GetEntity(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	output, err := c.getEntityUseCase.Execute(ctx.Request.Context(), vault.GetBusinessEntityInput{
		UserID: userID,
	})
	if err != nil {
		c.handleVaultError(ctx, err)
		return
	}

	if output.Entity == nil {
		ctx.JSON(http.StatusOK, gin.H{"entity": nil})
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"entity": dto.ToBusinessEntityResponse(output.Entity)})
}

// UpsertEntity handles PUT /vault/entity requests.
func (c *VaultController) UpsertEntity(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	var req dto.UpsertBusinessEntityRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
		})
		return
	}

	input := vault.UpsertBusinessEntityInput{
		UserID:                 userID,
		CompanyName:            req.CompanyName,
		EntityType:             req.EntityType,
		StateOfIncorporation:   req.StateOfIncorporation,
		FiscalYearEnd:          req.FiscalYearEnd,
		BusinessID:             req.BusinessID,
		IRSEin:                 req.IRSEin,
		RegisteredAgentName:    req.RegisteredAgentName,
		RegisteredAgentAddress: req.RegisteredAgentAddress,
		RegisteredAgentPhone:   req.RegisteredAgentPhone,
	}
	if req.IncorporationDate != nil && *req.IncorporationDate != "" {
		incDate, err := time.Parse("2006-01-02", *req.IncorporationDate)
		if err != nil {
			respondBadDate(ctx, "")
			return
		}
		input.IncorporationDate = &incDate
	}

	output, err := c.upsertEntityUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleVaultError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"entity": dto.ToBusinessEntityResponse(output.Entity)})
}

// ListDomains handles GET /vault/domains requests.
func (c *VaultController) ListDomains(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	output, err := c.listDomainsUseCase.Execute(ctx.Request.Context(), vault.ListDomainsInput{
		UserID: userID,
	})
	if err != nil {
		c.handleVaultError(ctx, err)
		return
	}

	response := dto.DomainListResponse{
		Domains: make([]dto.DomainResponse, 0, len(output.Domains)),
	}
	for _, d := range output.Domains {
		response.Domains = append(response.Domains, dto.ToDomainResponse(d))
	}
	ctx.JSON(http.StatusOK, response)
}

// AddDomain handles POST /vault/domains requests.
func (c *VaultController) AddDomain(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	var req dto.AddDomainRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
		})
		return
	}

	input := vault.AddDomainInput{
		UserID:     userID,
		DomainName: req.DomainName,
		Registrar:  req.Registrar,
		AutoRenew:  req.AutoRenew,
		PrimaryUse: req.PrimaryUse,
		Notes:      req.Notes,
	}
	if req.ExpirationDate != nil && *req.ExpirationDate != "" {
		expDate, err := time.Parse("2006-01-02", *req.ExpirationDate)
		if err != nil {
			respondBadDate(ctx, "")
			return
		}
		input.ExpirationDate = &expDate
	}

	output, err := c.addDomainUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleVaultError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToDomainResponse(output.Domain))
}

// UpdateDomain handles PATCH /vault/domains/:id requests.
func (c *VaultController) UpdateDomain(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid domain ID format",
		})
		return
	}

	var req dto.UpdateDomainRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
		})
		return
	}

	input := vault.UpdateDomainInput{
		UserID:          userID,
		ID:              id,
		DomainName:      req.DomainName,
		Registrar:       req.Registrar,
		ClearExpiration: req.ClearExpiration,
		AutoRenew:       req.AutoRenew,
		PrimaryUse:      req.PrimaryUse,
		Notes:           req.Notes,
	}
	if req.ExpirationDate != nil && *req.ExpirationDate != "" {
		expDate, err := time.Parse("2006-01-02", *req.ExpirationDate)
		if err != nil {
			respondBadDate(ctx, "")
			return
		}
		input.ExpirationDate = &expDate
	}

	output, err := c.updateDomainUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleVaultError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToDomainResponse(output.Domain))
}

// DeleteDomain handles DELETE /vault/domains/:id requests.
func (c *VaultController) DeleteDomain(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid domain ID format",
		})
		return
	}

	if err := c.deleteDomainUseCase.Execute(ctx.Request.Context(), vault.DeleteDomainInput{
		UserID: userID,
		ID:     id,
	}); err != nil {
		c.handleVaultError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// ListEvents handles GET /vault/events requests.
func (c *VaultController) ListEvents(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	output, err := c.listEventsUseCase.Execute(ctx.Request.Context(), vault.ListEventsInput{
		UserID: userID,
	})
	if err != nil {
		c.handleVaultError(ctx, err)
		return
	}

	response := dto.EventListResponse{
		Events: make([]dto.EventResponse, 0, len(output.Events)),
	}
	for _, e := range output.Events {
		response.Events = append(response.Events, dto.ToEventResponse(e))
	}
	ctx.JSON(http.StatusOK, response)
}

// CreateEvent handles POST /vault/events requests.
func (c *VaultController) CreateEvent(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	var req dto.CreateEventRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
		})
		return
	}

	eventDate, err := time.Parse("2006-01-02", req.EventDate)
	if err != nil {
		respondBadDate(ctx, "")
		return
	}

	output, err := c.createEventUseCase.Execute(ctx.Request.Context(), vault.CreateEventInput{
		UserID:       userID,
		Title:        req.Title,
		Description:  req.Description,
		EventDate:    eventDate,
		EventType:    entity.CorporateEventType(req.EventType),
		IsReminder:   req.IsReminder,
		ReminderDays: req.ReminderDays,
	})
	if err != nil {
		c.handleVaultError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToEventResponse(output.Event))
}

// UpdateEvent handles PATCH /vault/events/:id requests.
func (c *VaultController) UpdateEvent(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid event ID format",
		})
		return
	}

	var req dto.UpdateEventRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
		})
		return
	}

	input := vault.UpdateEventInput{
		UserID:       userID,
		ID:           id,
		Title:        req.Title,
		Description:  req.Description,
		IsReminder:   req.IsReminder,
		ReminderDays: req.ReminderDays,
	}
	if req.EventType != nil {
		eventType := entity.CorporateEventType(*req.EventType)
		input.EventType = &eventType
	}
	if req.EventDate != nil {
		eventDate, err := time.Parse("2006-01-02", *req.EventDate)
		if err != nil {
			respondBadDate(ctx, "")
			return
		}
		input.EventDate = &eventDate
	}

	output, err := c.updateEventUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleVaultError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToEventResponse(output.Event))
}

// DeleteEvent handles DELETE /vault/events/:id requests.
func (c *VaultController) DeleteEvent(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid event ID format",
		})
		return
	}

	if err := c.deleteEventUseCase.Execute(ctx.Request.Context(), vault.DeleteEventInput{
		UserID: userID,
		ID:     id,
	}); err != nil {
		c.handleVaultError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// handleVaultError maps vault errors to HTTP responses.
func (c *VaultController) handleVaultError(ctx *gin.Context, err error) {
	var vaultErr *domainerror.VaultError
	if errors.As(err, &vaultErr) {
		ctx.JSON(c.statusForVaultError(vaultErr.Code), dto.ErrorResponse{
			Error: vaultErr.Message,
			Code:  string(vaultErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// statusForVaultError maps vault error codes to HTTP status codes.
func (c *VaultController) statusForVaultError(code domainerror.VaultErrorCode) int {
	switch code {
	case domainerror.ErrCodeBusinessEntityNotFound,
		domainerror.ErrCodeDomainNotFound,
		domainerror.ErrCodeEventNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeMissingDomainName,
		domainerror.ErrCodeMissingEventTitle,
		domainerror.ErrCodeInvalidEventType,
		domainerror.ErrCodeMissingCompanyName:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
