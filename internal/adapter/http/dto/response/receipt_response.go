package response

import (
	"time"

	"fieldops/internal/domain/entities"
)

type DispatchReceiptResponse struct {
	ReceiptID         string                      `json:"receipt_id"`
	JobID             string                      `json:"job_id"`
	SessionID         string                      `json:"session_id"`
	PaymentMethod     string                      `json:"payment_method"`
	Amount            float64                     `json:"amount"`
	ServicesPerformed []entities.PerformedService `json:"services_performed"`
	CreatedAt         time.Time                   `json:"created_at"`
}

func FromDispatchReceipt(r entities.DispatchReceipt) DispatchReceiptResponse {
	return DispatchReceiptResponse{
		ReceiptID:         r.ID,
		JobID:             r.JobID,
		SessionID:         r.SessionID,
		PaymentMethod:     string(r.PaymentMethod),
		Amount:            r.Amount,
		ServicesPerformed: r.ServicesPerformed,
		CreatedAt:         r.CreatedAt,
	}
}
