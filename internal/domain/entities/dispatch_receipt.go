package entities

import (
	"encoding/json"
	"time"
)

// DispatchReceipt is the audit record written after a successful dispatch.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (job_id-index): job_id
//
// Platform API payload:
//   - PlatformResponseRaw keeps the complete-job response body (JSON) for
//     traceability/audit. Receipts never gate the workflow; they are written
//     best-effort after the transition to the summary step.

type DispatchReceipt struct {
	ID                string             `json:"id"`
	JobID             string             `json:"job_id"`
	SessionID         string             `json:"session_id"`
	PaymentMethod     PaymentMethod      `json:"payment_method"`
	Amount            float64            `json:"amount"`
	ServicesPerformed []PerformedService `json:"services_performed"`

	PlatformResponseRaw json.RawMessage `json:"platform_response_raw,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}

// JobCompletedEvent is published to the message queue after a successful
// dispatch so downstream consumers (dashboard, SMS notifications) can react.
type JobCompletedEvent struct {
	JobID         string        `json:"job_id"`
	SessionID     string        `json:"session_id"`
	CustomerPhone string        `json:"customer_phone"`
	PaymentMethod PaymentMethod `json:"payment_method"`
	Amount        float64       `json:"amount"`
	CompletedAt   time.Time     `json:"completed_at"`
}
