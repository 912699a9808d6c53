package interfaces

import (
	"context"
	"encoding/json"

	"fieldops/internal/domain/entities"
)

// InvoiceRequest is the send-itemized-invoice contract
// (POST /api/dashboard/send-invoice). Service carries the human-readable
// itemization string built from each performed service's name and two-decimal
// price.
type InvoiceRequest struct {
	CustomerPhone string  `json:"customerPhone"`
	CustomerEmail string  `json:"customerEmail"`
	CustomerName  string  `json:"customerName"`
	Amount        float64 `json:"amount"`
	Service       string  `json:"service"`
	Notes         string  `json:"notes"`
}

// CompleteJobRequest is the complete-job contract
// (POST /api/tech/jobs/{jobId}/complete).
type CompleteJobRequest struct {
	PaymentMethod     string                      `json:"paymentMethod"`
	Amount            float64                     `json:"amount"`
	ServicesPerformed []entities.PerformedService `json:"servicesPerformed"`
}

// IPlatformAPI abstracts the platform's job/billing REST API, the only
// external collaborator of the workflow.
//
// Dispatch sequencing lives in the usecase: for online payments SendInvoice is
// issued first and a failure there aborts the dispatch before CompleteJob is
// ever attempted. Neither call is retried automatically; retry is always an
// operator action.

type IPlatformAPI interface {
	SendInvoice(ctx context.Context, req InvoiceRequest) error
	CompleteJob(ctx context.Context, jobID string, req CompleteJobRequest) (json.RawMessage, error)
	ListServices(ctx context.Context) ([]entities.CatalogService, error)
	ListAddonServices(ctx context.Context) ([]entities.CatalogService, error)
}
