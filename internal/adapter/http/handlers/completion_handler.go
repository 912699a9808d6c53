package handlers

import (
	"errors"
	"log"
	"net/http"

	request "fieldops/internal/adapter/http/dto/request"
	response "fieldops/internal/adapter/http/dto/response"
	"fieldops/internal/infrastructure/platformapi"
	"fieldops/internal/usecase"
	"fieldops/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidCompletionPayload = pkg.NewDomainErrorSimple("INVALID_COMPLETION_INPUT", "Invalid completion payload", http.StatusBadRequest)
)

// CompletionHandler handles HTTP requests for the job-completion workflow.

type CompletionHandler struct {
	usecase usecase.ICompletionUseCase
}

func NewCompletionHandler(uc usecase.ICompletionUseCase) *CompletionHandler {
	return &CompletionHandler{usecase: uc}
}

// StartCompletion opens a new completion session for a job.
func (h *CompletionHandler) StartCompletion(c *gin.Context) {
	var payload request.StartCompletionRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidCompletionPayload.HTTPStatus, errInvalidCompletionPayload.ToHTTPError())
		return
	}

	session, err := h.usecase.Start(c.Request.Context(), payload.ToJob())
	if err != nil {
		log.Printf("[completion][handler] start failed job_id=%s err=%v", payload.Job.ID, err)
		appErr := mapCompletionError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[completion][handler] start success session_id=%s job_id=%s", session.ID, session.Job.ID)

	c.JSON(http.StatusCreated, response.FromCompletionSession(session))
}

// GetCompletion returns the current session snapshot.
func (h *CompletionHandler) GetCompletion(c *gin.Context) {
	session, err := h.usecase.Get(c.Request.Context(), c.Param("session_id"))
	if err != nil {
		appErr := mapCompletionError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromCompletionSession(session))
}

// ToggleService adds or removes a service from the selection. Toggling the
// originally scheduled service is a no-op.
func (h *CompletionHandler) ToggleService(c *gin.Context) {
	var payload request.ToggleServiceRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidCompletionPayload.HTTPStatus, errInvalidCompletionPayload.ToHTTPError())
		return
	}

	session, err := h.usecase.ToggleService(c.Request.Context(), c.Param("session_id"), payload.ServiceID)
	if err != nil {
		appErr := mapCompletionError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromCompletionSession(session))
}

// SetServicePrice edits one selected service's price.
func (h *CompletionHandler) SetServicePrice(c *gin.Context) {
	var payload request.SetPriceRequest
	if err := c.ShouldBindJSON(&payload); err != nil || payload.Price == nil {
		c.JSON(errInvalidCompletionPayload.HTTPStatus, errInvalidCompletionPayload.ToHTTPError())
		return
	}

	session, err := h.usecase.SetServicePrice(c.Request.Context(), c.Param("session_id"), c.Param("service_id"), *payload.Price)
	if err != nil {
		appErr := mapCompletionError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromCompletionSession(session))
}

// MarkServiceFree forces one selected service's price to zero.
func (h *CompletionHandler) MarkServiceFree(c *gin.Context) {
	session, err := h.usecase.MarkServiceFree(c.Request.Context(), c.Param("session_id"), c.Param("service_id"))
	if err != nil {
		appErr := mapCompletionError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromCompletionSession(session))
}

// SelectPayment records the payment method (and amount text for cash/check).
func (h *CompletionHandler) SelectPayment(c *gin.Context) {
	var payload request.SelectPaymentRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidCompletionPayload.HTTPStatus, errInvalidCompletionPayload.ToHTTPError())
		return
	}

	session, err := h.usecase.SelectPayment(c.Request.Context(), c.Param("session_id"), payload.ToSelection())
	if err != nil {
		appErr := mapCompletionError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromCompletionSession(session))
}

// Advance moves the workflow one step forward; from the processing step it
// performs the dispatch.
func (h *CompletionHandler) Advance(c *gin.Context) {
	sessionID := c.Param("session_id")
	session, err := h.usecase.Advance(c.Request.Context(), sessionID)
	if err != nil {
		log.Printf("[completion][handler] advance failed session_id=%s err=%v", sessionID, err)
		appErr := mapCompletionError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromCompletionSession(session))
}

// Retreat moves the workflow one step back.
func (h *CompletionHandler) Retreat(c *gin.Context) {
	session, err := h.usecase.Retreat(c.Request.Context(), c.Param("session_id"))
	if err != nil {
		appErr := mapCompletionError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromCompletionSession(session))
}

// AbandonCompletion closes the dialog and discards the session.
func (h *CompletionHandler) AbandonCompletion(c *gin.Context) {
	if err := h.usecase.Abandon(c.Request.Context(), c.Param("session_id")); err != nil {
		appErr := mapCompletionError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.Status(http.StatusNoContent)
}

func mapCompletionError(err error) *pkg.AppError {
	var apiErr *platformapi.APIError
	switch {
	case errors.Is(err, usecase.ErrInvalidJob):
		return pkg.NewDomainErrorSimple("INVALID_JOB", "Invalid job", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrSessionNotFound):
		return pkg.NewDomainErrorSimple("SESSION_NOT_FOUND", "Completion session not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrUnknownService):
		return pkg.NewDomainErrorSimple("UNKNOWN_SERVICE", "Service is not in the catalog or not selected", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrNoServicesSelected):
		return pkg.NewDomainErrorSimple("NO_SERVICES_SELECTED", "Select at least one service", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidPrice):
		return pkg.NewDomainErrorSimple("INVALID_PRICE", "Every selected service needs a valid price", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrNoPaymentMethod):
		return pkg.NewDomainErrorSimple("NO_PAYMENT_METHOD", "Select a payment method", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidTotal):
		return pkg.NewDomainErrorSimple("INVALID_TOTAL", "Total must be greater than zero for this payment method", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidAmount):
		return pkg.NewDomainErrorSimple("INVALID_AMOUNT", "Enter a valid positive amount", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrAmountMismatch):
		return pkg.NewDomainErrorSimple("AMOUNT_MISMATCH", "Entered amount does not match the total", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrDispatchInFlight):
		return pkg.NewDomainErrorSimple("DISPATCH_IN_FLIGHT", "A dispatch is already in progress", http.StatusConflict)
	case errors.Is(err, usecase.ErrWorkflowComplete):
		return pkg.NewDomainErrorSimple("WORKFLOW_COMPLETE", "Workflow is already complete", http.StatusConflict)
	case errors.Is(err, usecase.ErrCannotRetreat):
		return pkg.NewDomainErrorSimple("CANNOT_RETREAT", "Cannot step back from this step", http.StatusConflict)
	case errors.As(err, &apiErr):
		return pkg.NewDomainError("PLATFORM_API_ERROR", apiErr.Message, err, http.StatusBadGateway)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
