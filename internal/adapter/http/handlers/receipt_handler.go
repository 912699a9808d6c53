package handlers

import (
	"log"
	"net/http"
	"strings"

	response "fieldops/internal/adapter/http/dto/response"
	"fieldops/internal/usecase/interfaces"
	"fieldops/pkg"

	"github.com/gin-gonic/gin"
)

// ReceiptHandler reads dispatch receipts back for the dashboard.

type ReceiptHandler struct {
	repo interfaces.IDispatchReceiptRepository
}

func NewReceiptHandler(repo interfaces.IDispatchReceiptRepository) *ReceiptHandler {
	return &ReceiptHandler{repo: repo}
}

// GetLatestReceiptByJobID returns the most recent dispatch receipt for a job.
func (h *ReceiptHandler) GetLatestReceiptByJobID(c *gin.Context) {
	jobID := strings.TrimSpace(c.Param("job_id"))
	if jobID == "" {
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	receipts, err := h.repo.ListByJobID(c.Request.Context(), jobID)
	if err != nil {
		log.Printf("[receipt][handler] list failed job_id=%s err=%v", jobID, err)
		appErr := pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	if len(receipts) == 0 {
		appErr := pkg.NewDomainErrorSimple("RECEIPT_NOT_FOUND", "Receipt not found", http.StatusNotFound)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	latest := receipts[0]
	for _, r := range receipts[1:] {
		if r.CreatedAt.After(latest.CreatedAt) {
			latest = r
		}
	}
	c.JSON(http.StatusOK, response.FromDispatchReceipt(latest))
}
