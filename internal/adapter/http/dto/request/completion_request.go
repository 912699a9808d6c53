package request

import (
	"strings"
	"time"

	"fieldops/internal/domain/entities"
)

// JobPayload is the job record the operator's dialog opens with. The workflow
// treats it as read-only input.
type JobPayload struct {
	ID            string    `json:"id" binding:"required"`
	CustomerName  string    `json:"customer_name"`
	CustomerPhone string    `json:"customer_phone"`
	CustomerEmail string    `json:"customer_email"`
	ServiceID     string    `json:"service_id" binding:"required"`
	ScheduledAt   time.Time `json:"scheduled_at"`
	Notes         string    `json:"notes"`
}

// StartCompletionRequest opens a completion session for a job.
type StartCompletionRequest struct {
	Job JobPayload `json:"job" binding:"required"`
}

func (r StartCompletionRequest) ToJob() entities.Job {
	return entities.Job{
		ID:            strings.TrimSpace(r.Job.ID),
		CustomerName:  strings.TrimSpace(r.Job.CustomerName),
		CustomerPhone: strings.TrimSpace(r.Job.CustomerPhone),
		CustomerEmail: strings.TrimSpace(r.Job.CustomerEmail),
		ServiceID:     strings.TrimSpace(r.Job.ServiceID),
		ScheduledAt:   r.Job.ScheduledAt,
		Notes:         r.Job.Notes,
	}
}

// ToggleServiceRequest adds/removes a catalog service from the selected set.
type ToggleServiceRequest struct {
	ServiceID string `json:"service_id" binding:"required"`
}

// SetPriceRequest edits one selected service's price. Price uses a pointer so
// an explicit 0 survives binding.
type SetPriceRequest struct {
	Price *float64 `json:"price" binding:"required"`
}

// SelectPaymentRequest picks the payment method; amount is the raw operator
// text and only meaningful for cash/check.
type SelectPaymentRequest struct {
	Method string `json:"method" binding:"required"`
	Amount string `json:"amount"`
}

func (r SelectPaymentRequest) ToSelection() entities.PaymentSelection {
	return entities.PaymentSelection{
		Method:        entities.PaymentMethod(strings.ToLower(strings.TrimSpace(r.Method))),
		EnteredAmount: r.Amount,
	}
}
